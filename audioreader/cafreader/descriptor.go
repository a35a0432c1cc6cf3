package cafreader

import "github.com/go-accuraterip/arcsdec/format"

// Matcher recognizes a CAF file by its "caff" file-type id at offset 0.
func Matcher() format.Matcher {
	pattern := format.NewBytes(0, format.NewByteSeq([]byte("caff")))
	return format.NewMatcher(
		format.CAF,
		[]format.Codec{format.PCM_S16LE},
		format.NewSuffixSet("caf"),
		&pattern,
	)
}

// Descriptor returns the FileReaderDescriptor registry.Bootstrap wires
// in for CAF/PCM input.
func Descriptor() format.FileReaderDescriptor {
	return format.NewFileReaderDescriptor(
		ID, "CAF PCM",
		[]format.Format{format.CAF},
		[]format.Codec{format.PCM_S16LE},
		nil,
		format.AudioInput,
		New,
	)
}
