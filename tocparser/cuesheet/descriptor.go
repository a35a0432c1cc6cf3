package cuesheet

import "github.com/go-accuraterip/arcsdec/format"

// Matcher recognizes a Cuesheet by its ".cue" filename suffix. Cuesheets
// are plain text with no reliable byte signature, so the pattern is nil.
func Matcher() format.Matcher {
	return format.NewMatcher(format.CUE, nil, format.NewSuffixSet("cue"), nil)
}

// Descriptor returns the FileReaderDescriptor registry.Bootstrap wires
// in for Cuesheet input.
func Descriptor() format.FileReaderDescriptor {
	return format.NewFileReaderDescriptor(
		ID, "Cuesheet",
		[]format.Format{format.CUE},
		[]format.Codec{format.CodecNone},
		nil,
		format.ToCInput,
		New,
	)
}
