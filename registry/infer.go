package registry

import (
	"github.com/go-accuraterip/arcsdec/bytesio"
	"github.com/go-accuraterip/arcsdec/format"
)

// HeaderProbeLength is the number of leading bytes read to infer a
// file's type: enough for a RIFF/WAVE chunk descriptor (12 bytes) plus
// a 'fmt ' subchunk (24 bytes) plus the 'data' subchunk id and size
// (8 bytes).
const HeaderProbeLength = 44

// InferType reads path's leading HeaderProbeLength bytes and probes
// every registered Matcher, in registration order, returning the first
// Format/Codec pair whose Matcher accepts both the filename and the
// header bytes. It returns (Unknown, Unknown) if no Matcher accepts
// the input.
func (r *Registry) InferType(path string) (format.Format, format.Codec) {
	header, err := bytesio.ReadBytes(path, 0, HeaderProbeLength)
	if err != nil {
		// A file shorter than the probe window can still be a valid,
		// tiny input (an empty Cuesheet, say); fall back to whatever
		// bytes are actually there rather than failing outright.
		header = shortHeader(path)
	}

	for _, m := range r.matchers {
		if m.MatchesBytes(header) && m.MatchesFilename(path) {
			return m.Format(), m.InferredCodec()
		}
	}
	return format.Unknown, format.CodecUnknown
}

// shortHeader best-effort reads as many bytes as are available, for
// files shorter than HeaderProbeLength.
func shortHeader(path string) []byte {
	for n := HeaderProbeLength - 1; n > 0; n-- {
		if b, err := bytesio.ReadBytes(path, 0, n); err == nil {
			return b
		}
	}
	return nil
}
