package format

// OggMatcher and AiffMatcher recognize formats the core's Matchers and
// FileReaderRegistry.InferType must still name, even though no
// AudioReader is registered for either: OGG/Vorbis is a lossy codec
// (explicitly out of scope) and AIFF has no ripping-tool prevalence in
// the CD-DA workflow this core serves. They exist so registry lookups
// and inference never silently misclassify these containers as
// Unknown.
func OggMatcher() Matcher {
	pattern := NewBytes(0, NewByteSeq([]byte("OggS")))
	return NewMatcher(OGG, nil, NewSuffixSet("ogg", "oga"), &pattern)
}

// AiffMatcher recognizes an AIFF/AIFF-C file by its "FORM"..."AIFF"
// chunk descriptor, the big-endian sibling of RIFF/WAVE. Bytes 4-7
// (the chunk size) are wildcarded.
func AiffMatcher() Matcher {
	pattern := NewBytes(0, NewByteSeqWithWildcards(
		[]byte("FORM\x00\x00\x00\x00AIFF"), 4, 5, 6, 7,
	))
	return NewMatcher(AIFF, nil, NewSuffixSet("aiff", "aif"), &pattern)
}
