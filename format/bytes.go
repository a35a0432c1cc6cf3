package format

import "strings"

// ByteSeq is a byte pattern: a sequence of reference bytes plus the set
// of positions (relative to the start of the sequence) that are
// wildcards and match any byte.
type ByteSeq struct {
	Bytes     []byte
	Wildcards map[int]struct{}
}

// NewByteSeq builds a ByteSeq with no wildcards.
func NewByteSeq(b []byte) ByteSeq {
	return ByteSeq{Bytes: b}
}

// NewByteSeqWithWildcards builds a ByteSeq, marking the given positions
// (0-based, relative to the sequence) as wildcards.
func NewByteSeqWithWildcards(b []byte, wildcardPositions ...int) ByteSeq {
	wc := make(map[int]struct{}, len(wildcardPositions))
	for _, p := range wildcardPositions {
		wc[p] = struct{}{}
	}
	return ByteSeq{Bytes: b, Wildcards: wc}
}

func (s ByteSeq) isWildcard(i int) bool {
	if s.Wildcards == nil {
		return false
	}
	_, ok := s.Wildcards[i]
	return ok
}

// Bytes is a byte pattern anchored at a file offset: the pair
// (offset, sequence). Two Bytes values are compared positionally over
// their overlap region, taking their respective offsets into account.
type Bytes struct {
	Offset uint32
	Seq    ByteSeq
}

// NewBytes anchors seq at offset.
func NewBytes(offset uint32, seq ByteSeq) Bytes {
	return Bytes{Offset: offset, Seq: seq}
}

// Match reports whether self matches other, where other is anchored at
// otherOffset. An empty self sequence or an empty test sequence matches
// vacuously. A self whose reference bytes lie entirely before the
// compared window begins fails against a non-empty test sequence.
// Mismatches are tolerated at any position where either operand marks
// that position as a wildcard. A self pattern that extends past the end
// of other succeeds only if every position past the end of other is
// itself a wildcard in self.
func (b Bytes) Match(other []byte, otherOffset uint32) bool {
	if len(b.Seq.Bytes) == 0 || len(other) == 0 {
		return true
	}

	start := b.Offset
	if otherOffset > start {
		start = otherOffset
	}

	selfStart := int(start - b.Offset)
	otherStart := int(start - otherOffset)

	if selfStart >= len(b.Seq.Bytes) {
		// self's reference bytes end before the compared window begins:
		// no overlap with a non-empty test sequence.
		return false
	}
	if otherStart >= len(other) {
		// self has bytes to compare but other has none left: only a
		// match if every remaining self byte from here on is a
		// wildcard.
		for i := selfStart; i < len(b.Seq.Bytes); i++ {
			if !b.Seq.isWildcard(i) {
				return false
			}
		}
		return true
	}

	i, j := selfStart, otherStart
	for i < len(b.Seq.Bytes) && j < len(other) {
		if b.Seq.Bytes[i] != other[j] && !b.Seq.isWildcard(i) {
			return false
		}
		i++
		j++
	}

	// self extends past other: the remainder must be all wildcards.
	for ; i < len(b.Seq.Bytes); i++ {
		if !b.Seq.isWildcard(i) {
			return false
		}
	}
	return true
}

// AnyByte is the filler byte placed at wildcard positions of a
// pattern's reference bytes. Match does not treat it specially: a
// position matches any byte only if it is marked as a wildcard, as
// NewByteSeqWithWildcards does.
const AnyByte = 0x00

// SuffixSet is a case-insensitive set of filename suffixes (without the
// leading delimiter), e.g. {"cue"}.
type SuffixSet map[string]struct{}

// NewSuffixSet builds a SuffixSet from a list of suffixes.
func NewSuffixSet(suffixes ...string) SuffixSet {
	s := make(SuffixSet, len(suffixes))
	for _, suf := range suffixes {
		s[strings.ToLower(suf)] = struct{}{}
	}
	return s
}

// Matches reports whether filename ends in one of the set's suffixes,
// using case-insensitive comparison and "." as the delimiter.
func (s SuffixSet) Matches(filename string) bool {
	lower := strings.ToLower(filename)
	idx := strings.LastIndex(lower, ".")
	if idx < 0 {
		return false
	}
	suffix := lower[idx+1:]
	_, ok := s[suffix]
	return ok
}

// Matcher recognizes a Format by filename suffix and/or header bytes.
type Matcher struct {
	format  Format
	codecs  map[Codec]struct{}
	suffix  SuffixSet
	pattern *Bytes
}

// NewMatcher builds a Matcher for format, accepting the given codecs,
// filename suffixes and an optional reference byte pattern. Pass a nil
// pattern for formats with no reliable header signature.
func NewMatcher(f Format, codecs []Codec, suffixes SuffixSet, pattern *Bytes) Matcher {
	cs := make(map[Codec]struct{}, len(codecs))
	for _, c := range codecs {
		cs[c] = struct{}{}
	}
	return Matcher{format: f, codecs: cs, suffix: suffixes, pattern: pattern}
}

// Format returns the format this Matcher recognizes.
func (m Matcher) Format() Format { return m.format }

// Codecs returns the set of codecs this Format may contain.
func (m Matcher) Codecs() map[Codec]struct{} { return m.codecs }

// MatchesFilename reports whether filename's suffix is accepted.
func (m Matcher) MatchesFilename(filename string) bool {
	return m.suffix.Matches(filename)
}

// MatchesBytes reports whether the header bytes match the reference
// pattern. A Matcher with no reference pattern always matches (the
// format is recognized by suffix alone).
func (m Matcher) MatchesBytes(header []byte) bool {
	if m.pattern == nil {
		return true
	}
	return m.pattern.Match(header, 0)
}

// InferredCodec returns the single codec this Matcher's format implies,
// CodecNone if it accepts no codecs (a ToC format), or CodecUnknown if
// codec discrimination within the format is not yet reliable.
func (m Matcher) InferredCodec() Codec {
	switch len(m.codecs) {
	case 0:
		return CodecNone
	case 1:
		for c := range m.codecs {
			return c
		}
	}
	return CodecUnknown
}
