// Package flacreader implements format.AudioReader for FLAC input by
// wrapping github.com/mewkiz/flac, validating the stream's declared
// rate/channels/depth against the CD-DA layout before streaming it.
package flacreader

import (
	"io"
	"os"

	"github.com/mewkiz/flac"

	"github.com/go-accuraterip/arcsdec/arcserr"
	"github.com/go-accuraterip/arcsdec/audioreader"
	"github.com/go-accuraterip/arcsdec/cdda"
	"github.com/go-accuraterip/arcsdec/format"
	"github.com/go-accuraterip/arcsdec/sampleproc"
)

// ID is the descriptor identifier this package registers under.
const ID = "flac"

// Reader is the FLAC AudioReader backend.
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

// AcquireSize opens path, reads the STREAMINFO block, and returns its
// declared sample count.
func (r *Reader) AcquireSize(path string) (sampleproc.AudioSize, error) {
	f, err := os.Open(path)
	if err != nil {
		return sampleproc.AudioSize{}, arcserr.NewFileReadErrorUnknownPos(err.Error())
	}
	defer f.Close()

	stream, err := flac.NewSeek(f)
	if err != nil {
		return sampleproc.AudioSize{}, arcserr.NewInvalidAudioError("FLAC stream: %v", err)
	}
	defer stream.Close()

	if err := validateStreamInfo(stream); err != nil {
		return sampleproc.AudioSize{}, err
	}
	return sampleproc.NewAudioSizeFromSamples(int64(stream.Info.NSamples)), nil
}

// ProcessFile streams path's frames through the attached processor,
// repacking each decoded stereo frame into 32-bit interleaved samples
// in blocks of SamplesPerRead.
func (r *Reader) ProcessFile(path string) error {
	r.SignalStart()
	defer r.SignalEnd()

	f, err := os.Open(path)
	if err != nil {
		return arcserr.NewFileReadErrorUnknownPos(err.Error())
	}
	defer f.Close()

	stream, err := flac.NewSeek(f)
	if err != nil {
		return arcserr.NewInvalidAudioError("FLAC stream: %v", err)
	}
	defer stream.Close()

	if err := validateStreamInfo(stream); err != nil {
		return err
	}
	r.SignalUpdateSize(sampleproc.NewAudioSizeFromSamples(int64(stream.Info.NSamples)))

	block := make([]int32, 0, r.SamplesPerRead())
	flush := func() {
		if len(block) > 0 {
			r.SignalAppend(block)
			block = block[:0]
		}
	}

	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return arcserr.NewFileReadError("FLAC frame decode: "+err.Error(), currentPos(f))
		}

		n := int(frame.Subframes[0].NSamples)
		for i := 0; i < n; i++ {
			left := uint32(uint16(frame.Subframes[0].Samples[i]))
			right := uint32(uint16(frame.Subframes[1].Samples[i]))
			block = append(block, int32(left|right<<16))
			if len(block) == cap(block) {
				flush()
			}
		}
	}
	flush()

	return nil
}

// currentPos returns f's current read offset, or arcserr.NoBytePos if
// it cannot be determined.
func currentPos(f *os.File) int64 {
	pos, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return arcserr.NoBytePos
	}
	return pos
}

// validateStreamInfo rejects any FLAC stream that is not CD-DA
// conformant: 44.1kHz, 16-bit, stereo.
func validateStreamInfo(stream *flac.Stream) error {
	info := stream.Info
	switch {
	case info.NChannels != cdda.NumberOfChannels:
		return arcserr.NewInvalidAudioError("FLAC channel count %d, want %d", info.NChannels, cdda.NumberOfChannels)
	case info.SampleRate != cdda.SamplesPerSecond:
		return arcserr.NewInvalidAudioError("FLAC sample rate %d, want %d", info.SampleRate, cdda.SamplesPerSecond)
	case info.BitsPerSample != cdda.BitsPerSample:
		return arcserr.NewInvalidAudioError("FLAC bit depth %d, want %d", info.BitsPerSample, cdda.BitsPerSample)
	}
	return nil
}
