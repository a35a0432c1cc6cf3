package registry

import (
	"testing"

	"github.com/go-accuraterip/arcsdec/format"
)

func TestDefaultPreferenceRejectsUnacceptedPair(t *testing.T) {
	d := format.NewFileReaderDescriptor("x", "X", []format.Format{format.Wav}, []format.Codec{format.PCM_S16LE}, nil, format.AudioInput, nil)
	if got := (DefaultPreference{}).Preference(format.FLAC, format.CodecFLAC, d); got != MinPreference {
		t.Errorf("Preference = %d, want MinPreference", got)
	}
}

func TestSpecializationScorePrefersFewerFormats(t *testing.T) {
	specific := format.NewFileReaderDescriptor("a", "A", []format.Format{format.Wav}, []format.Codec{format.PCM_S16LE}, nil, format.AudioInput, nil)
	broad := format.NewFileReaderDescriptor("b", "B", []format.Format{format.Wav, format.FLAC}, []format.Codec{format.PCM_S16LE}, nil, format.AudioInput, nil)

	scoreSpecific := (DefaultPreference{}).Preference(format.Wav, format.PCM_S16LE, specific)
	scoreBroad := (DefaultPreference{}).Preference(format.Wav, format.PCM_S16LE, broad)
	if scoreSpecific <= scoreBroad {
		t.Errorf("specific score %d should exceed broad score %d", scoreSpecific, scoreBroad)
	}
}
