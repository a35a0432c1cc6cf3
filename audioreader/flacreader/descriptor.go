package flacreader

import "github.com/go-accuraterip/arcsdec/format"

// Matcher recognizes a FLAC stream by its "fLaC" signature at offset 0.
func Matcher() format.Matcher {
	pattern := format.NewBytes(0, format.NewByteSeq([]byte("fLaC")))
	return format.NewMatcher(
		format.FLAC,
		[]format.Codec{format.CodecFLAC},
		format.NewSuffixSet("flac"),
		&pattern,
	)
}

// Descriptor returns the FileReaderDescriptor registry.Bootstrap wires
// in for FLAC input.
func Descriptor() format.FileReaderDescriptor {
	return format.NewFileReaderDescriptor(
		ID, "FLAC",
		[]format.Format{format.FLAC},
		[]format.Codec{format.CodecFLAC},
		nil,
		format.AudioInput,
		New,
	)
}
