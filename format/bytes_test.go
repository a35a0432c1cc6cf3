package format

import "testing"

func TestBytesMatchExactPrefix(t *testing.T) {
	pattern := NewBytes(0, NewByteSeq([]byte{0x01, 0x02, 0x06, 0x07, 0x4C, 0xF0}))
	other := []byte{0x01, 0x02, 0x06, 0x07, 0x4C, 0xF0, 0xC1}
	if !pattern.Match(other, 0) {
		t.Fatal("expected match against a suffix-extended reference")
	}
}

func TestBytesMatchWildcard(t *testing.T) {
	pattern := NewBytes(0, NewByteSeqWithWildcards(
		[]byte{0x01, 0x00, 0x06, 0x07, 0x4C, 0xF0}, 1))
	other := []byte{0x01, 0x6D, 0x06, 0x07, 0x4C, 0xF0}
	if !pattern.Match(other, 0) {
		t.Fatal("expected wildcard position to match any byte")
	}

	// Altering the byte at a non-wildcard position must break the match.
	broken := []byte{0x01, 0x6D, 0x99, 0x07, 0x4C, 0xF0}
	if pattern.Match(broken, 0) {
		t.Fatal("expected mismatch at non-wildcard position to fail")
	}
}

func TestBytesMatchEmptyPatternIsVacuous(t *testing.T) {
	pattern := NewBytes(3, NewByteSeq(nil))
	if !pattern.Match([]byte{1}, 0) {
		t.Fatal("expected empty pattern to match vacuously")
	}
}

func TestBytesMatchEqualSequenceWithDifferentOffsetFails(t *testing.T) {
	six := []byte{0x01, 0x02, 0x06, 0x07, 0x4C, 0xF0}
	pattern := NewBytes(0, NewByteSeq(six))

	if pattern.Match(six, 6) {
		t.Fatal("expected equal sequence at offset 6 to fail")
	}
	if pattern.Match(six, 7) {
		t.Fatal("expected equal sequence at offset 7 to fail")
	}
}

func TestBytesMatchEmptyOtherIsVacuous(t *testing.T) {
	pattern := NewBytes(0, NewByteSeq([]byte{0x01, 0x02}))
	if !pattern.Match(nil, 0) {
		t.Fatal("expected an empty test sequence to match vacuously")
	}
}

func TestBytesMatchOffsetBeyondReferenceFails(t *testing.T) {
	pattern := NewBytes(10, NewByteSeq([]byte{0x01, 0x02}))
	if pattern.Match([]byte{0, 0, 0, 0, 0}, 0) {
		t.Fatal("expected offset beyond reference length to fail")
	}
}

func TestBytesMatchLongerPatternNeedsTrailingWildcards(t *testing.T) {
	pattern := NewBytes(0, NewByteSeqWithWildcards([]byte{0x01, 0x02, 0x00, 0x00}, 2, 3))
	other := []byte{0x01, 0x02}
	if !pattern.Match(other, 0) {
		t.Fatal("expected trailing wildcards to absorb the missing suffix")
	}

	noWildcard := NewBytes(0, NewByteSeq([]byte{0x01, 0x02, 0x03, 0x04}))
	if noWildcard.Match(other, 0) {
		t.Fatal("expected a longer non-wildcard pattern to fail against a shorter reference")
	}
}

func TestSuffixSetCaseInsensitive(t *testing.T) {
	set := NewSuffixSet("cue")
	if !set.Matches("Album.CUE") {
		t.Fatal("expected case-insensitive suffix match")
	}
	if set.Matches("album.cue.bak") {
		t.Fatal("did not expect a non-terminal suffix to match")
	}
}

func TestMatcherInferredCodec(t *testing.T) {
	wav := NewMatcher(Wav, []Codec{PCM_S16LE}, NewSuffixSet("wav"), nil)
	if got := wav.InferredCodec(); got != PCM_S16LE {
		t.Fatalf("InferredCodec() = %v, want PCM_S16LE", got)
	}

	cue := NewMatcher(CUE, nil, NewSuffixSet("cue"), nil)
	if got := cue.InferredCodec(); got != CodecNone {
		t.Fatalf("InferredCodec() = %v, want CodecNone", got)
	}

	wv := NewMatcher(WV, []Codec{CodecWavpack, CodecUnknown}, NewSuffixSet("wv"), nil)
	if got := wv.InferredCodec(); got != CodecUnknown {
		t.Fatalf("InferredCodec() = %v, want CodecUnknown for a multi-codec format", got)
	}
}

func TestFormatIsAudioFormat(t *testing.T) {
	for _, f := range []Format{Wav, FLAC, APE, CAF, M4A, OGG, WV, AIFF} {
		if !f.IsAudioFormat() {
			t.Fatalf("%v should be an audio format", f)
		}
	}
	for _, f := range []Format{Unknown, CUE, CDRDAO} {
		if f.IsAudioFormat() {
			t.Fatalf("%v should not be an audio format", f)
		}
	}
}
