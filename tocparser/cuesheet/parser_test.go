package cuesheet

import "testing"

func TestOk01TrackCountAndOffsets(t *testing.T) {
	r := &Reader{}
	toc, err := r.Parse("testdata/ok01.cue")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if toc.TrackCount != 2 {
		t.Fatalf("TrackCount = %d, want 2", toc.TrackCount)
	}
	want := []int32{150, 25072}
	if len(toc.Offsets) != len(want) {
		t.Fatalf("Offsets = %v, want %v", toc.Offsets, want)
	}
	for i, o := range want {
		if toc.Offsets[i] != o {
			t.Errorf("Offsets[%d] = %d, want %d", i, toc.Offsets[i], o)
		}
	}
	if toc.Complete() {
		t.Fatalf("Complete() = true, want false (no leadout in a Cuesheet)")
	}
}

func TestOkFixturesParseWithoutError(t *testing.T) {
	for _, name := range []string{"ok01.cue", "ok02.cue", "ok03.cue"} {
		r := &Reader{}
		if _, err := r.Parse("testdata/" + name); err != nil {
			t.Errorf("Parse(%s): %v", name, err)
		}
	}
}

func TestOk01And03AgreeOnOffsetsDespiteNoTrailingNewline(t *testing.T) {
	r1 := &Reader{}
	toc1, err := r1.Parse("testdata/ok01.cue")
	if err != nil {
		t.Fatalf("Parse ok01: %v", err)
	}
	r3 := &Reader{}
	toc3, err := r3.Parse("testdata/ok03.cue")
	if err != nil {
		t.Fatalf("Parse ok03: %v", err)
	}
	// ok03 is a truncated, no-trailing-newline variant of ok01's first
	// two tracks; its offsets must match ok01's first two offsets.
	if len(toc3.Offsets) < 2 || len(toc1.Offsets) < 2 {
		t.Fatalf("offsets ok03 = %v, ok01 = %v, want at least 2 each", toc3.Offsets, toc1.Offsets)
	}
	for i := 0; i < 2; i++ {
		if toc3.Offsets[i] != toc1.Offsets[i] {
			t.Errorf("ok03 offset %d = %d, want %d", i, toc3.Offsets[i], toc1.Offsets[i])
		}
	}
}

func TestErrorFixturesAllReject(t *testing.T) {
	for _, name := range []string{"error01.cue", "error02.cue", "error03.cue", "error04.cue", "error05.cue"} {
		r := &Reader{}
		if _, err := r.Parse("testdata/" + name); err == nil {
			t.Errorf("Parse(%s): expected error, got nil", name)
		}
	}
}
