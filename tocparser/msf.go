// Package tocparser holds the shared machinery the Cuesheet and CDRDAO
// parsers are built on: MSF-to-frame conversion, used by both, and the
// accumulating Handler the Cuesheet lexer drives.
package tocparser

// InvalidFrames is the sentinel MsfToFrames returns for an
// out-of-domain MSF triple.
const InvalidFrames = -1

// MsfToFrames converts a Minutes:Seconds:Frames position to an absolute
// CD frame count: (m*60+s)*75+f. It returns InvalidFrames unless
// m in [0,99], s in [0,60), and f in [0,75).
func MsfToFrames(m, s, f int) int32 {
	if m < 0 || m > 99 || s < 0 || s >= 60 || f < 0 || f >= 75 {
		return InvalidFrames
	}
	return int32((m*60+s)*75 + f)
}

// FramesToMsf is the inverse of MsfToFrames. It returns (-1,-1,-1) for
// a negative frame count.
func FramesToMsf(frames int32) (m, s, f int) {
	if frames < 0 {
		return -1, -1, -1
	}
	total := int(frames)
	f = total % 75
	total /= 75
	s = total % 60
	m = total / 60
	return m, s, f
}
