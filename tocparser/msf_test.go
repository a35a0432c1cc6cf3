package tocparser

import "testing"

func TestMsfToFrames(t *testing.T) {
	cases := []struct {
		m, s, f int
		want    int32
	}{
		{0, 2, 0, 150},
		{5, 33, 48, 25023},
		{0, 0, 0, 0},
		{-1, 0, 0, InvalidFrames},
		{0, 60, 0, InvalidFrames},
		{0, 0, 75, InvalidFrames},
		{100, 0, 0, InvalidFrames},
	}
	for _, c := range cases {
		if got := MsfToFrames(c.m, c.s, c.f); got != c.want {
			t.Errorf("MsfToFrames(%d,%d,%d) = %d, want %d", c.m, c.s, c.f, got, c.want)
		}
	}
}

func TestFramesToMsfRoundTrip(t *testing.T) {
	for _, want := range []struct{ m, s, f int }{{0, 2, 0}, {5, 33, 48}, {99, 59, 74}} {
		frames := MsfToFrames(want.m, want.s, want.f)
		m, s, f := FramesToMsf(frames)
		if m != want.m || s != want.s || f != want.f {
			t.Errorf("FramesToMsf(%d) = (%d,%d,%d), want (%d,%d,%d)", frames, m, s, f, want.m, want.s, want.f)
		}
	}
}

func TestFramesToMsfNegative(t *testing.T) {
	m, s, f := FramesToMsf(-1)
	if m != -1 || s != -1 || f != -1 {
		t.Errorf("FramesToMsf(-1) = (%d,%d,%d), want (-1,-1,-1)", m, s, f)
	}
}
