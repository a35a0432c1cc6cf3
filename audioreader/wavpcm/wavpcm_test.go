package wavpcm

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-accuraterip/arcsdec/arcserr"
	"github.com/go-accuraterip/arcsdec/audioreader"
	"github.com/go-accuraterip/arcsdec/cdda"
	"github.com/go-accuraterip/arcsdec/sampleproc"
)

// buildWav synthesizes a minimal CD-DA-conformant WAVE file with the
// given number of stereo samples, each sample's left channel set to its
// index and its right channel to the negated index, so the test can
// verify sample ordering end to end.
func buildWav(t *testing.T, dir string, samples int) string {
	t.Helper()

	dataSize := samples * cdda.BytesPerSample
	path := filepath.Join(dir, "test01.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	write := func(v any) {
		if err := binary.Write(f, binary.LittleEndian, v); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	f.WriteString("RIFF")
	write(uint32(36 + dataSize))
	f.WriteString("WAVE")

	f.WriteString("fmt ")
	write(uint32(16))
	write(uint16(1))                                    // PCM
	write(uint16(cdda.NumberOfChannels))                // 2
	write(uint32(cdda.SamplesPerSecond))                // 44100
	write(uint32(cdda.SamplesPerSecond * cdda.BytesPerSample)) // byte rate
	write(uint16(cdda.BytesPerSample))                  // block align
	write(uint16(cdda.BitsPerSample))                   // 16

	f.WriteString("data")
	write(uint32(dataSize))

	for i := 0; i < samples; i++ {
		write(int16(i))  // left
		write(int16(-i)) // right
	}

	return path
}

type recordingProcessor struct {
	events   []string
	size     sampleproc.AudioSize
	appended []int32
}

func (r *recordingProcessor) StartInput()                          { r.events = append(r.events, "start") }
func (r *recordingProcessor) UpdateAudioSize(s sampleproc.AudioSize) {
	r.events = append(r.events, "update")
	r.size = s
}
func (r *recordingProcessor) AppendSamples(s []int32) {
	r.events = append(r.events, "append")
	r.appended = append(r.appended, s...)
}
func (r *recordingProcessor) EndInput() { r.events = append(r.events, "end") }

func TestAcquireSizeReportsSampleCount(t *testing.T) {
	path := buildWav(t, t.TempDir(), 1025)

	r := New().(*Reader)
	size, err := r.AcquireSize(path)
	if err != nil {
		t.Fatalf("AcquireSize: %v", err)
	}
	if size.Samples != 1025 {
		t.Fatalf("Samples = %d, want 1025", size.Samples)
	}
}

func TestProcessFileEmitsCallbacksInOrder(t *testing.T) {
	path := buildWav(t, t.TempDir(), 1025)

	r := New().(*Reader)
	proc := &recordingProcessor{}
	r.AttachProcessor(proc)

	if err := r.ProcessFile(path); err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}

	if len(proc.events) < 3 {
		t.Fatalf("too few events: %v", proc.events)
	}
	if proc.events[0] != "start" {
		t.Fatalf("first event = %q, want start", proc.events[0])
	}
	if proc.events[1] != "update" {
		t.Fatalf("second event = %q, want update", proc.events[1])
	}
	if proc.events[len(proc.events)-1] != "end" {
		t.Fatalf("last event = %q, want end", proc.events[len(proc.events)-1])
	}
	for _, e := range proc.events[2 : len(proc.events)-1] {
		if e != "append" {
			t.Fatalf("middle event = %q, want append", e)
		}
	}
	if proc.size.Samples != 1025 {
		t.Fatalf("reported size = %d, want 1025", proc.size.Samples)
	}
	if len(proc.appended) != 1025 {
		t.Fatalf("appended %d samples, want 1025", len(proc.appended))
	}
	for i, v := range proc.appended {
		left := int16(v & 0xffff)
		right := int16(v >> 16)
		if int(left) != i || int(right) != -i {
			t.Fatalf("sample %d = (%d,%d), want (%d,%d)", i, left, right, i, -i)
		}
	}
}

func TestProcessFileRespectsSamplesPerRead(t *testing.T) {
	const samples = 2*audioreader.MinSamplesPerRead + 25
	path := buildWav(t, t.TempDir(), samples)

	r := New().(*Reader)
	r.SetSamplesPerRead(audioreader.MinSamplesPerRead)
	proc := &recordingProcessor{}
	r.AttachProcessor(proc)

	if err := r.ProcessFile(path); err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}

	appendCount := 0
	for _, e := range proc.events {
		if e == "append" {
			appendCount++
		}
	}
	if appendCount != 3 {
		t.Fatalf("append count = %d, want 3 (65536+65536+25)", appendCount)
	}
	if len(proc.appended) != samples {
		t.Fatalf("appended %d samples, want %d", len(proc.appended), samples)
	}
}

func TestRejectsWrongSampleRate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	write := func(v any) { binary.Write(f, binary.LittleEndian, v) }
	f.WriteString("RIFF")
	write(uint32(36))
	f.WriteString("WAVE")
	f.WriteString("fmt ")
	write(uint32(16))
	write(uint16(1))
	write(uint16(2))
	write(uint32(48000)) // wrong rate
	write(uint32(48000 * 4))
	write(uint16(4))
	write(uint16(16))
	f.WriteString("data")
	write(uint32(0))
	f.Close()

	r := New().(*Reader)
	_, err = r.AcquireSize(path)
	if err == nil {
		t.Fatal("expected error for 48kHz input")
	}
	var invalid *arcserr.InvalidAudioError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want *InvalidAudioError", err)
	}
}

func TestProcessFileEndsInputOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "truncated.wav")
	if err := os.WriteFile(path, []byte("RIFF"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	r := New().(*Reader)
	proc := &recordingProcessor{}
	r.AttachProcessor(proc)

	if err := r.ProcessFile(path); err == nil {
		t.Fatal("expected error for truncated file")
	}
	if len(proc.events) == 0 || proc.events[len(proc.events)-1] != "end" {
		t.Fatalf("events = %v, want to end with \"end\"", proc.events)
	}
}
