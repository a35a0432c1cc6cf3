// Package extreader implements format.AudioReader for codecs with no
// importable pure-Go decoder (WavPack, Monkey's Audio) by shelling out
// to ffmpeg/ffprobe, exactly the external-process adapter pattern used
// elsewhere in the stack for containers with no native decode path.
// Sizing via ffprobe's reported duration is necessarily approximate;
// callers needing an exact sample count should prefer a native reader
// where one exists.
package extreader

import (
	"context"
	"encoding/json"
	"io"
	"os/exec"
	"strconv"
	"time"

	"github.com/go-accuraterip/arcsdec/arcserr"
	"github.com/go-accuraterip/arcsdec/audioreader"
	"github.com/go-accuraterip/arcsdec/cdda"
	"github.com/go-accuraterip/arcsdec/format"
	"github.com/go-accuraterip/arcsdec/sampleproc"
)

// WavpackID and MonkeyID are the descriptor identifiers this package
// registers under, one per codec it adapts.
const (
	WavpackID = "wavpack"
	MonkeyID  = "monkey"
)

// Reader is the ffmpeg-subprocess AudioReader backend. label is used
// only in error messages.
type Reader struct {
	audioreader.Base
	label string
}

// NewWavpack constructs a Reader for WavPack input.
func NewWavpack() format.FileReader {
	return &Reader{Base: audioreader.NewBase(), label: "WavPack"}
}

// NewMonkey constructs a Reader for Monkey's Audio input.
func NewMonkey() format.FileReader {
	return &Reader{Base: audioreader.NewBase(), label: "Monkey's Audio"}
}

// Close is a no-op: no subprocess is kept alive between calls.
func (r *Reader) Close() error { return nil }

type probeResult struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// AcquireSize probes path with ffprobe and approximates the sample
// count from the reported duration at the CD-DA sample rate.
func (r *Reader) AcquireSize(path string) (sampleproc.AudioSize, error) {
	dur, err := probeDuration(path, r.label)
	if err != nil {
		return sampleproc.AudioSize{}, err
	}
	samples := int64(dur.Seconds() * cdda.SamplesPerSecond)
	return sampleproc.NewAudioSizeFromSamples(samples), nil
}

// ProcessFile decodes path by piping ffmpeg's CD-DA-conformant PCM
// output through the attached processor in blocks of SamplesPerRead.
func (r *Reader) ProcessFile(path string) error {
	r.SignalStart()
	defer r.SignalEnd()

	dur, err := probeDuration(path, r.label)
	if err != nil {
		return err
	}
	r.SignalUpdateSize(sampleproc.NewAudioSizeFromSamples(int64(dur.Seconds() * cdda.SamplesPerSecond)))

	ffmpeg, err := exec.LookPath("ffmpeg")
	if err != nil {
		return arcserr.NewInvalidAudioError("%s decode requires ffmpeg on PATH: %v", r.label, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := exec.CommandContext(ctx, ffmpeg,
		"-v", "quiet",
		"-i", path,
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ar", strconv.Itoa(cdda.SamplesPerSecond),
		"-ac", strconv.Itoa(cdda.NumberOfChannels),
		"pipe:1",
	)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return arcserr.NewFileReadErrorUnknownPos("starting ffmpeg: " + err.Error())
	}
	if err := cmd.Start(); err != nil {
		return arcserr.NewFileReadErrorUnknownPos("starting ffmpeg: " + err.Error())
	}

	block := make([]int32, r.SamplesPerRead())
	raw := make([]byte, len(block)*cdda.BytesPerSample)

	var decoded int64
	for {
		n, readErr := io.ReadFull(stdout, raw)
		samples := n / cdda.BytesPerSample
		if samples > 0 {
			for i := 0; i < samples; i++ {
				off := i * cdda.BytesPerSample
				left := uint32(raw[off]) | uint32(raw[off+1])<<8
				right := uint32(raw[off+2]) | uint32(raw[off+3])<<8
				block[i] = int32(left | right<<16)
			}
			r.SignalAppend(block[:samples])
		}
		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			break
		}
		if readErr != nil {
			cmd.Wait()
			return arcserr.NewFileReadError("ffmpeg pipe: "+readErr.Error(), decoded+int64(n)+1)
		}
		decoded += int64(n)
	}

	if err := cmd.Wait(); err != nil {
		return arcserr.NewInvalidAudioError("%s decode failed: %v", r.label, err)
	}
	return nil
}

// probeDuration runs ffprobe on path and returns the reported stream
// duration.
func probeDuration(path, label string) (time.Duration, error) {
	ffprobe, err := exec.LookPath("ffprobe")
	if err != nil {
		return 0, arcserr.NewInvalidAudioError("%s decode requires ffprobe on PATH: %v", label, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, ffprobe,
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-show_format",
		"-select_streams", "a:0",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, arcserr.NewFileReadErrorUnknownPos("ffprobe failed: " + err.Error())
	}

	var result probeResult
	if err := json.Unmarshal(out, &result); err != nil {
		return 0, arcserr.NewInvalidAudioError("parsing ffprobe output: %v", err)
	}
	if len(result.Streams) == 0 {
		return 0, arcserr.NewInvalidAudioError("%s: no audio stream found", label)
	}
	sec, err := strconv.ParseFloat(result.Format.Duration, 64)
	if err != nil || sec <= 0 {
		return 0, arcserr.NewInvalidAudioError("%s: could not determine duration", label)
	}
	return time.Duration(sec * float64(time.Second)), nil
}
