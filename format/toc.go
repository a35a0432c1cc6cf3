package format

// ToC is the table-of-contents produced by a ToC parser (Cuesheet or
// CDRDAO/TOC). Offsets and lengths are in CD frames (1/75s units).
// A length of -1 means "unknown, runs to the leadout" (the sentinel
// appended for the last track when no closing INDEX 01 follows it).
type ToC struct {
	TrackCount int
	Offsets    []int32
	Lengths    []int32
	Leadout    int32
	Filenames  []string
}

// Complete reports whether the ToC carries a known leadout position.
func (t ToC) Complete() bool {
	return t.Leadout != 0
}
