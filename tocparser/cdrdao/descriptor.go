package cdrdao

import "github.com/go-accuraterip/arcsdec/format"

// Matcher recognizes a CDRDAO/TOC file by its ".toc" filename suffix.
// Like Cuesheets, TOC files are plain text with no byte signature.
func Matcher() format.Matcher {
	return format.NewMatcher(format.CDRDAO, nil, format.NewSuffixSet("toc"), nil)
}

// Descriptor returns the FileReaderDescriptor registry.Bootstrap wires
// in for CDRDAO/TOC input.
func Descriptor() format.FileReaderDescriptor {
	return format.NewFileReaderDescriptor(
		ID, "CDRDAO/TOC",
		[]format.Format{format.CDRDAO},
		[]format.Codec{format.CodecNone},
		nil,
		format.ToCInput,
		New,
	)
}
