package wavpcm

import "github.com/go-accuraterip/arcsdec/format"

// Descriptor returns the FileReaderDescriptor registry.Bootstrap wires
// in for WAVE/PCM input.
func Descriptor() format.FileReaderDescriptor {
	return format.NewFileReaderDescriptor(
		ID,
		"WAVE PCM",
		[]format.Format{format.Wav},
		[]format.Codec{format.PCM_S16LE},
		nil,
		format.AudioInput,
		New,
	)
}
