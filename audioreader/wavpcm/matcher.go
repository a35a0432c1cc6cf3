package wavpcm

import "github.com/go-accuraterip/arcsdec/format"

// Matcher recognizes a WAVE file by its RIFF/WAVE chunk descriptor: the
// 'RIFF' id, any 4-byte chunk size, then the 'WAVE' format id. Bytes
// 4-7 (the chunk size) are wildcarded since they vary per file.
func Matcher() format.Matcher {
	pattern := format.NewBytes(0, format.NewByteSeqWithWildcards(
		[]byte("RIFF\x00\x00\x00\x00WAVE"), 4, 5, 6, 7,
	))
	return format.NewMatcher(
		format.Wav,
		[]format.Codec{format.PCM_S16LE},
		format.NewSuffixSet("wav", "wave"),
		&pattern,
	)
}
