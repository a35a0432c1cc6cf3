// Package calculators is the thin glue between the core's ToC/audio
// reading machinery and the downstream AccurateRip checksum engine.
// Neither the checksum algorithm nor the ARId identifier scheme is
// implemented here: both belong to the external Calculation engine
// and ARCSCalculator/ARIdCalculator façades this package only drives.
package calculators

import (
	"path/filepath"

	"github.com/go-accuraterip/arcsdec/arcserr"
	"github.com/go-accuraterip/arcsdec/cdda"
	"github.com/go-accuraterip/arcsdec/format"
	"github.com/go-accuraterip/arcsdec/registry"
	"github.com/go-accuraterip/arcsdec/sampleproc"
)

// ARId is a disc identifier derived from a ToC's track layout. The
// core computes only the inputs an AccurateRip ARId is built from
// (track count, offsets, leadout); the identifier's actual checksum
// encoding is the downstream Calculation engine's concern.
type ARId struct {
	TrackCount int
	Offsets    []int32
	Leadout    int32
}

// NewARId builds an ARId from a ToC's identifying fields.
func NewARId(toc format.ToC) ARId {
	return ARId{TrackCount: toc.TrackCount, Offsets: toc.Offsets, Leadout: toc.Leadout}
}

// ChecksumProvider is implemented by a CalculationProcessor that wants
// its accumulated result surfaced through ARCSCalculator.Calculate.
// The result type is opaque to the core: only the attached processor
// and its caller agree on what it means.
type ChecksumProvider interface {
	Checksums() any
}

// ARIdCalculator resolves a ToC's ARId, selecting readers from reg.
type ARIdCalculator struct {
	Registry *registry.Registry
}

// Calculate parses metaPath's ToC and returns its ARId. If the parsed
// ToC is not complete (carries no leadout), the leadout is resolved by
// acquiring the size of the audio file the ToC's last FILE statement
// names, resolved relative to metaPath's directory.
func (c ARIdCalculator) Calculate(metaPath string) (ARId, error) {
	reg := c.registry()

	metaFormat, _ := reg.InferType(metaPath)
	parser, ok := reg.SelectToCParser(metaFormat)
	if !ok {
		return ARId{}, arcserr.NewInputFormatError("no ToC parser registered for %s", metaFormat)
	}
	defer parser.Close()

	toc, err := parser.Parse(metaPath)
	if err != nil {
		return ARId{}, err
	}

	if toc.Complete() {
		return NewARId(toc), nil
	}
	if len(toc.Filenames) == 0 {
		return NewARId(toc), nil
	}

	audioPath := filepath.Join(filepath.Dir(metaPath), toc.Filenames[len(toc.Filenames)-1])
	audioFormat, audioCodec := reg.InferType(audioPath)
	reader, ok := reg.SelectAudioReader(audioFormat, audioCodec)
	if !ok {
		return ARId{}, arcserr.NewInputFormatError("no audio reader registered for %s/%s", audioFormat, audioCodec)
	}
	defer reader.Close()

	size, err := reader.AcquireSize(audioPath)
	if err != nil {
		return ARId{}, err
	}
	toc.Leadout = int32(size.Samples / cdda.SamplesPerFrame)
	return NewARId(toc), nil
}

func (c ARIdCalculator) registry() *registry.Registry {
	if c.Registry != nil {
		return c.Registry
	}
	return registry.Default()
}

// ARCSCalculator computes AccurateRip checksums for an audio file
// against a known ToC by attaching a caller-supplied SampleProcessor
// (the CalculationProcessor) to a selected AudioReader and driving
// ProcessFile.
type ARCSCalculator struct {
	Registry *registry.Registry
}

// Calculate selects an AudioReader for audioPath, attaches processor,
// and runs process_file to completion, returning processor's
// checksums (if it implements ChecksumProvider) alongside the ToC's
// ARId.
func (c ARCSCalculator) Calculate(audioPath string, toc format.ToC, processor sampleproc.SampleProcessor) (any, ARId, error) {
	reg := c.registry()

	audioFormat, audioCodec := reg.InferType(audioPath)
	reader, ok := reg.SelectAudioReader(audioFormat, audioCodec)
	if !ok {
		return nil, ARId{}, arcserr.NewInputFormatError("no audio reader registered for %s/%s", audioFormat, audioCodec)
	}
	defer reader.Close()

	reader.AttachProcessor(processor)
	if err := reader.ProcessFile(audioPath); err != nil {
		return nil, ARId{}, err
	}

	var checksums any
	if cp, ok := processor.(ChecksumProvider); ok {
		checksums = cp.Checksums()
	}
	return checksums, NewARId(toc), nil
}

func (c ARCSCalculator) registry() *registry.Registry {
	if c.Registry != nil {
		return c.Registry
	}
	return registry.Default()
}
