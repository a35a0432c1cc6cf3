// Package format holds the value types the rest of the core is built
// around: the Format/Codec enumerations, the Bytes/Matcher recognition
// machinery, the FileReaderDescriptor metadata model, and the reader
// interfaces a concrete backend implements.
package format

// Format is the closed set of container/metadata formats the core can
// recognize. Audio formats are those with ordinal >= Wav; CUE and
// CDRDAO are ToC (metadata) formats.
type Format int

const (
	Unknown Format = iota
	CUE
	CDRDAO
	Wav // Audio formats begin here.
	FLAC
	APE
	CAF
	M4A
	OGG
	WV
	AIFF
)

var formatNames = map[Format]string{
	Unknown: "Unknown",
	CUE:     "CUE",
	CDRDAO:  "CDRDAO",
	Wav:     "WAVE",
	FLAC:    "FLAC",
	APE:     "APE",
	CAF:     "CAF",
	M4A:     "M4A",
	OGG:     "OGG",
	WV:      "WV",
	AIFF:    "AIFF",
}

// String returns the human-readable name of the format.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "Unknown"
}

// IsAudioFormat reports whether f can hold decodable audio samples, as
// opposed to being a plain-text ToC format.
func (f Format) IsAudioFormat() bool {
	return f >= Wav
}

// Codec is the closed set of sample encodings the core recognizes
// within an audio Format.
type Codec int

const (
	CodecUnknown Codec = iota
	CodecNone          // used for ToC inputs, which carry no samples
	PCM_S16BE
	PCM_S16BE_PLANAR
	PCM_S16LE
	PCM_S16LE_PLANAR
	PCM_S32BE
	PCM_S32BE_PLANAR
	PCM_S32LE
	PCM_S32LE_PLANAR
	CodecFLAC
	CodecWavpack
	CodecMonkey
	CodecALAC
)

var codecNames = map[Codec]string{
	CodecUnknown:     "Unknown",
	CodecNone:        "None",
	PCM_S16BE:        "PCM_S16BE",
	PCM_S16BE_PLANAR: "PCM_S16BE_PLANAR",
	PCM_S16LE:        "PCM_S16LE",
	PCM_S16LE_PLANAR: "PCM_S16LE_PLANAR",
	PCM_S32BE:        "PCM_S32BE",
	PCM_S32BE_PLANAR: "PCM_S32BE_PLANAR",
	PCM_S32LE:        "PCM_S32LE",
	PCM_S32LE_PLANAR: "PCM_S32LE_PLANAR",
	CodecFLAC:        "FLAC",
	CodecWavpack:     "WAVPACK",
	CodecMonkey:      "MONKEY",
	CodecALAC:        "ALAC",
}

// String returns the human-readable name of the codec.
func (c Codec) String() string {
	if name, ok := codecNames[c]; ok {
		return name
	}
	return "Unknown"
}
