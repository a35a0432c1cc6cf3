package registry

import (
	"testing"

	"github.com/go-accuraterip/arcsdec/format"
)

func TestBootstrapRegistersAllTenFormats(t *testing.T) {
	r := Bootstrap()
	for _, f := range []format.Format{
		format.CUE, format.CDRDAO, format.Wav, format.FLAC, format.APE,
		format.CAF, format.M4A, format.OGG, format.WV, format.AIFF,
	} {
		if !r.HasFormat(f) {
			t.Errorf("HasFormat(%s) = false, want true", f)
		}
	}
}

func TestBootstrapSelectorScenarios(t *testing.T) {
	r := Bootstrap()

	cases := []struct {
		name   string
		f      format.Format
		c      format.Codec
		wantID string
	}{
		{"wav pcm", format.Wav, format.PCM_S16LE, "wavpcm"},
		{"flac", format.FLAC, format.CodecFLAC, "flac"},
		{"wavpack", format.WV, format.CodecWavpack, "wavpack"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := DefaultAudioSelection().Get(tc.f, tc.c, r.Descriptors())
			if !ok {
				t.Fatalf("no descriptor selected for %s/%s", tc.f, tc.c)
			}
			if d.ID != tc.wantID {
				t.Errorf("selected id = %q, want %q", d.ID, tc.wantID)
			}
		})
	}
}

func TestBootstrapSelectorCuesheet(t *testing.T) {
	r := Bootstrap()
	d, ok := DefaultToCSelection().Get(format.CUE, format.CodecNone, r.Descriptors())
	if !ok {
		t.Fatal("no ToC parser selected for CUE")
	}
	if d.ID != "cuesheet" {
		t.Errorf("selected id = %q, want %q", d.ID, "cuesheet")
	}
}

func TestDefaultIsLazyAndStable(t *testing.T) {
	a := Default()
	b := Default()
	if a != b {
		t.Error("Default() returned distinct instances across calls")
	}
}
