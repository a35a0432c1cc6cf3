package registry

import "github.com/go-accuraterip/arcsdec/format"

// FileReaderSelection composes a DescriptorPreference with a
// FileReaderSelector and returns a descriptor for a (Format, Codec)
// pair from a registry's readers.
type FileReaderSelection struct {
	Selector FileReaderSelector
}

// Get returns the descriptor the composed selector picks, or false if
// none is selected.
func (s FileReaderSelection) Get(f format.Format, c format.Codec,
	readers map[string]format.FileReaderDescriptor,
) (format.FileReaderDescriptor, bool) {
	return s.Selector.Select(f, c, readers)
}

// DefaultAudioSelection is the default selection policy for audio
// inputs: codec-aware preference scoring.
func DefaultAudioSelection() FileReaderSelection {
	return FileReaderSelection{Selector: PreferenceSelector{Preference: DefaultPreference{}}}
}

// DefaultToCSelection is the default selection policy for ToC inputs:
// codec is ignored since ToC formats only ever carry CodecNone.
func DefaultToCSelection() FileReaderSelection {
	return FileReaderSelection{Selector: PreferenceSelector{Preference: FormatPreference{}}}
}

// SelectAudioReader selects and constructs a fresh AudioReader for the
// given (Format, Codec) pair using r's registered descriptors and the
// default audio selection policy.
func (r *Registry) SelectAudioReader(f format.Format, c format.Codec) (format.AudioReader, bool) {
	d, ok := DefaultAudioSelection().Get(f, c, r.Descriptors())
	if !ok {
		return nil, false
	}
	reader, ok := d.NewReader().(format.AudioReader)
	return reader, ok
}

// SelectToCParser selects and constructs a fresh ToCParser for the
// given Format using r's registered descriptors and the default ToC
// selection policy.
func (r *Registry) SelectToCParser(f format.Format) (format.ToCParser, bool) {
	d, ok := DefaultToCSelection().Get(f, format.CodecNone, r.Descriptors())
	if !ok {
		return nil, false
	}
	parser, ok := d.NewReader().(format.ToCParser)
	return parser, ok
}
