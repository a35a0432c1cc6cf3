package registry

import (
	"testing"

	"github.com/go-accuraterip/arcsdec/format"
)

func TestPreferenceSelectorTieBreaksDeterministically(t *testing.T) {
	readers := map[string]format.FileReaderDescriptor{
		"zzz": format.NewFileReaderDescriptor("zzz", "Z", []format.Format{format.Wav}, []format.Codec{format.PCM_S16LE}, nil, format.AudioInput, nil),
		"aaa": format.NewFileReaderDescriptor("aaa", "A", []format.Format{format.Wav}, []format.Codec{format.PCM_S16LE}, nil, format.AudioInput, nil),
	}
	sel := PreferenceSelector{Preference: DefaultPreference{}}

	var firstID string
	for i := 0; i < 20; i++ {
		d, ok := sel.Select(format.Wav, format.PCM_S16LE, readers)
		if !ok {
			t.Fatal("expected a selection")
		}
		if i == 0 {
			firstID = d.ID
		} else if d.ID != firstID {
			t.Fatalf("selection changed across calls: %q then %q", firstID, d.ID)
		}
	}
	if firstID != "aaa" {
		t.Errorf("selected %q, want \"aaa\" (sorted-id tie break)", firstID)
	}
}

func TestIdSelectorIgnoresPreference(t *testing.T) {
	readers := map[string]format.FileReaderDescriptor{
		"only": format.NewFileReaderDescriptor("only", "O", []format.Format{format.FLAC}, []format.Codec{format.CodecFLAC}, nil, format.AudioInput, nil),
	}
	sel := IdSelector{ID: "only"}
	d, ok := sel.Select(format.Wav, format.PCM_S16LE, readers)
	if !ok || d.ID != "only" {
		t.Fatalf("IdSelector.Select = %+v, %v", d, ok)
	}
}
