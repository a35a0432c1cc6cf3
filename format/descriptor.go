package format

import "github.com/go-accuraterip/arcsdec/sampleproc"

// InputType distinguishes an audio-sample producer from a ToC producer.
// A FileReaderDescriptor's InputType determines which of AudioReader or
// ToCParser its reader implements.
type InputType int

const (
	AudioInput InputType = iota
	ToCInput
)

// LibraryInfo names a runtime dependency and the resolved path it was
// found at (empty if resolution failed or is unsupported on this
// platform).
type LibraryInfo struct {
	Name string
	Path string
}

// FileReader is the marker interface implemented by every concrete
// reader backend. It carries no behavior of its own: callers type-
// assert to AudioReader or ToCParser based on the owning descriptor's
// InputType.
type FileReader interface {
	// Close releases any resources the reader holds. Readers that open
	// nothing ahead of time may implement this as a no-op.
	Close() error
}

// AudioReader streams a CD-DA-compliant 32-bit interleaved stereo
// sample sequence from an audio file, driving an attached
// SampleProcessor.
type AudioReader interface {
	FileReader

	// AcquireSize reads only what is necessary to determine the
	// leadout position, without invoking any processor callback.
	AcquireSize(path string) (sampleproc.AudioSize, error)

	// ProcessFile streams the file's complete sample sequence through
	// the attached processor, emitting StartInput, UpdateAudioSize,
	// zero or more AppendSamples, then EndInput -- in that order, on
	// every exit path.
	ProcessFile(path string) error

	// AttachProcessor stores processor for the duration of the next
	// ProcessFile call. It must be called before ProcessFile.
	AttachProcessor(processor sampleproc.SampleProcessor)

	// SetSamplesPerRead sets the preferred block size, in samples, for
	// backends where it is configurable. The value is clipped into the
	// supported range.
	SetSamplesPerRead(n int)

	// SamplesPerRead returns the current block size.
	SamplesPerRead() int
}

// ToCParser parses a table-of-contents metadata file (Cuesheet or
// CDRDAO/TOC) into a ToC value.
type ToCParser interface {
	FileReader

	Parse(path string) (ToC, error)
}

// FileReaderDescriptor is a stateless value describing a registered
// reader backend: its identity, the Formats/Codecs it accepts, its
// runtime library dependencies, and a factory for fresh reader
// instances. Descriptors are comparable by ID; NewReader always
// returns an unused, freshly constructed reader.
type FileReaderDescriptor struct {
	ID        string
	Name      string
	Formats   map[Format]struct{}
	Codecs    map[Codec]struct{}
	Libraries []LibraryInfo
	Input     InputType
	NewReader func() FileReader
}

// Accepts reports whether the descriptor's reader can handle the given
// (Format, Codec) pair.
func (d FileReaderDescriptor) Accepts(f Format, c Codec) bool {
	if _, ok := d.Formats[f]; !ok {
		return false
	}
	_, ok := d.Codecs[c]
	return ok
}

// AcceptsFormat reports whether the descriptor's reader handles f,
// ignoring codec.
func (d FileReaderDescriptor) AcceptsFormat(f Format) bool {
	_, ok := d.Formats[f]
	return ok
}

// NewFileReaderDescriptor builds a descriptor from format/codec lists.
func NewFileReaderDescriptor(id, name string, formats []Format, codecs []Codec,
	libs []LibraryInfo, input InputType, factory func() FileReader,
) FileReaderDescriptor {
	fs := make(map[Format]struct{}, len(formats))
	for _, f := range formats {
		fs[f] = struct{}{}
	}
	cs := make(map[Codec]struct{}, len(codecs))
	for _, c := range codecs {
		cs[c] = struct{}{}
	}
	return FileReaderDescriptor{
		ID:        id,
		Name:      name,
		Formats:   fs,
		Codecs:    cs,
		Libraries: libs,
		Input:     input,
		NewReader: factory,
	}
}
