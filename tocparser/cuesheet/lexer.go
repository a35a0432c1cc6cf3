package cuesheet

import "strings"

// tokenize splits a line into whitespace-separated tokens, treating a
// double-quoted span as a single token (quotes stripped). It mirrors
// the token granularity a hand-written Cuesheet lexer produces: enough
// to detect trailing garbage after a statement's expected arguments.
func tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder
	inQuotes := false
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			if !inQuotes {
				flush()
			}
		case !inQuotes && (r == ' ' || r == '\t'):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}
