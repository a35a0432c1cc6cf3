// Package alacreader implements format.AudioReader for ALAC-in-M4A
// input by wrapping github.com/mycophonic/saprobe-alac, validating its
// reported PCM format against the CD-DA layout before streaming it.
package alacreader

import (
	"io"
	"os"
	"time"

	alac "github.com/mycophonic/saprobe-alac"

	"github.com/go-accuraterip/arcsdec/arcserr"
	"github.com/go-accuraterip/arcsdec/audioreader"
	"github.com/go-accuraterip/arcsdec/cdda"
	"github.com/go-accuraterip/arcsdec/format"
	"github.com/go-accuraterip/arcsdec/sampleproc"
)

// ID is the descriptor identifier this package registers under.
const ID = "alac"

// Reader is the ALAC/M4A AudioReader backend.
type Reader struct {
	audioreader.Base
}

// New constructs a Reader, for use as a format.FileReaderDescriptor
// factory.
func New() format.FileReader {
	return &Reader{Base: audioreader.NewBase()}
}

// Close is a no-op: neither AcquireSize nor ProcessFile holds the
// underlying stream open between calls.
func (r *Reader) Close() error { return nil }

// AcquireSize opens path, parses the M4A sample table via the ALAC
// decoder, and returns the container's total sample count.
func (r *Reader) AcquireSize(path string) (sampleproc.AudioSize, error) {
	f, err := os.Open(path)
	if err != nil {
		return sampleproc.AudioSize{}, arcserr.NewFileReadErrorUnknownPos(err.Error())
	}
	defer f.Close()

	dec, err := alac.NewDecoder(f)
	if err != nil {
		return sampleproc.AudioSize{}, arcserr.NewInvalidAudioError("ALAC stream: %v", err)
	}
	pf, err := validateFormat(dec.Format())
	if err != nil {
		return sampleproc.AudioSize{}, err
	}

	samples := int64(dec.Duration()) * int64(pf.sampleRate) / int64(time.Second)
	return sampleproc.NewAudioSizeFromSamples(samples), nil
}

// ProcessFile streams path's decoded PCM through the attached
// processor in blocks of SamplesPerRead, 32-bit interleaved samples.
func (r *Reader) ProcessFile(path string) error {
	r.SignalStart()
	defer r.SignalEnd()

	f, err := os.Open(path)
	if err != nil {
		return arcserr.NewFileReadErrorUnknownPos(err.Error())
	}
	defer f.Close()

	dec, err := alac.NewDecoder(f)
	if err != nil {
		return arcserr.NewInvalidAudioError("ALAC stream: %v", err)
	}
	pf, err := validateFormat(dec.Format())
	if err != nil {
		return err
	}

	samples := int64(dec.Duration()) * int64(pf.sampleRate) / int64(time.Second)
	r.SignalUpdateSize(sampleproc.NewAudioSizeFromSamples(samples))

	raw := make([]byte, pf.frameBytes*r.SamplesPerRead())
	block := make([]int32, r.SamplesPerRead())

	var decoded int64
	for {
		n, readErr := io.ReadFull(dec, raw)
		if n > 0 {
			samples := n / pf.frameBytes
			for i := 0; i < samples; i++ {
				off := i * pf.frameBytes
				left := uint32(uint16(raw[off]) | uint16(raw[off+1])<<8)
				right := uint32(uint16(raw[off+2]) | uint16(raw[off+3])<<8)
				block[i] = int32(left | right<<16)
			}
			r.SignalAppend(block[:samples])
		}
		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			break
		}
		if readErr != nil {
			return arcserr.NewFileReadError("ALAC decode: "+readErr.Error(), decoded+int64(n)+1)
		}
		decoded += int64(n)
	}

	return nil
}

// pcmLayout is the validated, CD-DA-conformant interpretation of an
// ALAC decoder's reported PCMFormat.
type pcmLayout struct {
	frameBytes int
	sampleRate int
}

// validateFormat rejects any ALAC stream that is not CD-DA conformant:
// 44.1kHz, 16-bit, stereo.
func validateFormat(f alac.PCMFormat) (pcmLayout, error) {
	switch {
	case f.Channels != cdda.NumberOfChannels:
		return pcmLayout{}, arcserr.NewInvalidAudioError("ALAC channel count %d, want %d", f.Channels, cdda.NumberOfChannels)
	case f.SampleRate != cdda.SamplesPerSecond:
		return pcmLayout{}, arcserr.NewInvalidAudioError("ALAC sample rate %d, want %d", f.SampleRate, cdda.SamplesPerSecond)
	case f.BitDepth != alac.Depth16:
		return pcmLayout{}, arcserr.NewInvalidAudioError("ALAC bit depth %v, want 16-bit", f.BitDepth)
	}
	return pcmLayout{frameBytes: cdda.BytesPerSample, sampleRate: f.SampleRate}, nil
}
