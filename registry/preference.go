package registry

import "github.com/go-accuraterip/arcsdec/format"

// MinPreference and MaxPreference bound the score a DescriptorPreference
// returns.
const (
	MinPreference = 0
	MaxPreference = 100
)

// DescriptorPreference scores a descriptor against a (Format, Codec)
// pair. Higher scores are preferred; MinPreference means "will not
// handle this input at all".
type DescriptorPreference interface {
	Preference(f format.Format, c format.Codec, d format.FileReaderDescriptor) int
}

// specializationScore implements the shared formula both built-in
// preferences use: prefer a descriptor that accepts fewer formats and
// codecs (i.e. is more specialized) over one that accepts many.
func specializationScore(d format.FileReaderDescriptor) int {
	score := MaxPreference - 2*(len(d.Formats)-1) - (len(d.Codecs) - 1)
	if score < MinPreference {
		score = MinPreference
	}
	return score
}

// DefaultPreference scores a descriptor by whether it accepts the
// exact (Format, Codec) pair, preferring specialized readers over
// multi-format ones.
type DefaultPreference struct{}

func (DefaultPreference) Preference(f format.Format, c format.Codec, d format.FileReaderDescriptor) int {
	if !d.Accepts(f, c) {
		return MinPreference
	}
	return specializationScore(d)
}

// FormatPreference is like DefaultPreference but ignores Codec in the
// accept check. It exists for inputs where codec recognition is not
// yet reliable (ToC formats report CodecNone only, so this is always
// safe for the default ToC selection).
type FormatPreference struct{}

func (FormatPreference) Preference(f format.Format, _ format.Codec, d format.FileReaderDescriptor) int {
	if !d.AcceptsFormat(f) {
		return MinPreference
	}
	return specializationScore(d)
}
