package tocparser

import "github.com/go-accuraterip/arcsdec/format"

// Handler accumulates ToC state as the Cuesheet lexer walks a metadata
// file (the CDRDAO parser accumulates its ToC directly). Callers drive it with OnIndex01/OnIndex00/OnPregap/
// OnTrack/OnFile as statements are recognized, then call Finish to
// obtain the completed ToC.
type Handler struct {
	offsets   []int32
	lengths   []int32
	filenames []string

	haveFirstIndex01 bool
	prevOffset       int32
	leadout          int32
}

// NewHandler returns an empty Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// OnFile records the filename an upcoming TRACK's audio data lives in.
func (h *Handler) OnFile(name string) {
	h.filenames = append(h.filenames, name)
}

// OnTrack is called when a TRACK statement is recognized. The track
// number itself carries no state the Handler needs to retain: offsets
// and lengths are positional, derived purely from INDEX order.
func (h *Handler) OnTrack(_ int) {}

// OnIndex01 records an INDEX 01 position: the start of a track's
// audio data. It closes out the previous track's length (the gap
// between this position and the previous INDEX 01) and appends a new
// offset.
func (h *Handler) OnIndex01(m, s, f int) int32 {
	frames := MsfToFrames(m, s, f)
	if frames == InvalidFrames {
		return InvalidFrames
	}
	if h.haveFirstIndex01 {
		h.lengths = append(h.lengths, frames-h.prevOffset)
	}
	h.offsets = append(h.offsets, frames)
	h.prevOffset = frames
	h.haveFirstIndex01 = true
	return frames
}

// OnIndex00 records an INDEX 00 (pregap) position. The core's ToC model
// does not carry pregap separately from track offsets, so the position
// is validated but otherwise discarded, matching spec.md's ToC shape
// (offsets/lengths/leadout only).
func (h *Handler) OnIndex00(m, s, f int) int32 { return MsfToFrames(m, s, f) }

// OnPregap records a PREGAP mm:ss:ff statement. Like OnIndex00, it is
// validated but does not affect the resulting ToC's offsets/lengths.
func (h *Handler) OnPregap(m, s, f int) int32 { return MsfToFrames(m, s, f) }

// Finish closes out the last track's length with the sentinel value
// InvalidFrames (no closing INDEX 01 follows the final track) and
// returns the accumulated ToC.
func (h *Handler) Finish() format.ToC {
	if h.haveFirstIndex01 {
		h.lengths = append(h.lengths, InvalidFrames)
	}
	return format.ToC{
		TrackCount: len(h.offsets),
		Offsets:    h.offsets,
		Lengths:    h.lengths,
		Leadout:    h.leadout,
		Filenames:  h.filenames,
	}
}
