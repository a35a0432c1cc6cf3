// Package cuesheet parses Cuesheet (.cue) disc table-of-contents files
// into a format.ToC.
package cuesheet

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-accuraterip/arcsdec/arcserr"
	"github.com/go-accuraterip/arcsdec/format"
	"github.com/go-accuraterip/arcsdec/tocparser"
)

// ID is the descriptor identifier this package registers under.
const ID = "cuesheet"

// Reader is the Cuesheet ToCParser backend.
type Reader struct{}

// New constructs a Reader, for use as a format.FileReaderDescriptor
// factory.
func New() format.FileReader { return &Reader{} }

// Close is a no-op: Parse does not hold state between calls.
func (r *Reader) Close() error { return nil }

// Parse reads and interprets path as a Cuesheet, returning the
// accumulated ToC. It rejects trailing non-whitespace after FILE,
// TRACK, INDEX, and CDTEXTFILE statements, and unknown top-level
// statement tags.
func (r *Reader) Parse(path string) (format.ToC, error) {
	f, err := os.Open(path)
	if err != nil {
		return format.ToC{}, arcserr.NewFileReadErrorUnknownPos(err.Error())
	}
	defer f.Close()

	h := tocparser.NewHandler()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	var bytePos int64
	for scanner.Scan() {
		lineNo++
		bytePos += int64(len(scanner.Bytes())) + 1
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens := tokenize(line)
		if err := parseLine(h, tokens); err != nil {
			return format.ToC{}, arcserr.NewInvalidAudioError("cuesheet line %d: %v", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return format.ToC{}, arcserr.NewFileReadError(err.Error(), bytePos+1)
	}

	return h.Finish(), nil
}

// parseLine dispatches a single tokenized statement to the Handler.
func parseLine(h *tocparser.Handler, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	tag := strings.ToUpper(tokens[0])
	switch tag {
	case "REM", "PERFORMER", "TITLE", "CATALOG", "ISRC", "SONGWRITER", "FLAGS":
		// Free-form or unchecked metadata: recognized and accepted.
		return nil

	case "CDTEXTFILE":
		if len(tokens) != 2 {
			return fmt.Errorf("trailing content after CDTEXTFILE")
		}
		return nil

	case "FILE":
		if len(tokens) != 3 {
			return fmt.Errorf("trailing content after FILE")
		}
		h.OnFile(tokens[1])
		return nil

	case "TRACK":
		if len(tokens) != 3 {
			return fmt.Errorf("trailing content after TRACK")
		}
		n, err := strconv.Atoi(tokens[1])
		if err != nil {
			return fmt.Errorf("invalid TRACK number %q", tokens[1])
		}
		h.OnTrack(n)
		return nil

	case "INDEX":
		if len(tokens) != 3 {
			return fmt.Errorf("trailing content after INDEX")
		}
		idx, err := strconv.Atoi(tokens[1])
		if err != nil {
			return fmt.Errorf("invalid INDEX number %q", tokens[1])
		}
		m, s, fr, err := parseMsf(tokens[2])
		if err != nil {
			return err
		}
		switch idx {
		case 0:
			if frames := h.OnIndex00(m, s, fr); frames == tocparser.InvalidFrames {
				return fmt.Errorf("INDEX 00 position %q out of range", tokens[2])
			}
		case 1:
			if frames := h.OnIndex01(m, s, fr); frames == tocparser.InvalidFrames {
				return fmt.Errorf("INDEX 01 position %q out of range", tokens[2])
			}
		default:
			// Higher INDEX numbers (sub-indices) carry no ToC meaning
			// the core's model tracks; recognized and discarded.
		}
		return nil

	case "PREGAP":
		if len(tokens) != 2 {
			return fmt.Errorf("trailing content after PREGAP")
		}
		m, s, fr, err := parseMsf(tokens[1])
		if err != nil {
			return err
		}
		if frames := h.OnPregap(m, s, fr); frames == tocparser.InvalidFrames {
			return fmt.Errorf("PREGAP position %q out of range", tokens[1])
		}
		return nil

	default:
		return fmt.Errorf("unrecognized statement %q", tokens[0])
	}
}

// parseMsf parses an "mm:ss:ff" token into its three integer fields.
func parseMsf(s string) (m, sec, f int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("malformed MSF position %q", s)
	}
	vals := make([]int, 3)
	for i, p := range parts {
		v, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("malformed MSF position %q", s)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], nil
}
