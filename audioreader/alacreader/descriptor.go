package alacreader

import "github.com/go-accuraterip/arcsdec/format"

// Matcher recognizes an M4A/MP4 container by its "ftyp" box at offset
// 4, the standard ISO base media file signature. Bytes 0-3 (the box
// size) and the four-char brand at offset 8 are both wildcarded: ALAC
// is commonly found under several compatible brands ("M4A ", "isom",
// "mp42").
func Matcher() format.Matcher {
	pattern := format.NewBytes(0, format.NewByteSeqWithWildcards(
		[]byte("\x00\x00\x00\x00ftyp\x00\x00\x00\x00"), 0, 1, 2, 3, 8, 9, 10, 11,
	))
	return format.NewMatcher(
		format.M4A,
		[]format.Codec{format.CodecALAC},
		format.NewSuffixSet("m4a", "mp4"),
		&pattern,
	)
}

// Descriptor returns the FileReaderDescriptor registry.Bootstrap wires
// in for ALAC/M4A input.
func Descriptor() format.FileReaderDescriptor {
	return format.NewFileReaderDescriptor(
		ID, "ALAC (M4A)",
		[]format.Format{format.M4A},
		[]format.Codec{format.CodecALAC},
		nil,
		format.AudioInput,
		New,
	)
}
