// Package wavpcm implements the core's only dependency-free AudioReader:
// a RIFF/WAVE chunk walker that accepts exactly the CD-DA-conformant
// PCM layout (44.1kHz, 16-bit, stereo, uncompressed) and rejects
// everything else as InvalidAudioError.
package wavpcm

import (
	"errors"
	"io"
	"os"

	"github.com/go-accuraterip/arcsdec/arcserr"
	"github.com/go-accuraterip/arcsdec/audioreader"
	"github.com/go-accuraterip/arcsdec/cdda"
	"github.com/go-accuraterip/arcsdec/format"
	"github.com/go-accuraterip/arcsdec/sampleproc"
)

// ID is the descriptor identifier this package registers under.
const ID = "wavpcm"

// state names the reader's position in the RIFF chunk walk.
type state int

const (
	sInitial state = iota
	sCompletedHeader
	sCompletedFormat
	sCompletedData
)

// Options controls which structural checks beyond the CD-DA field
// values themselves are enforced. Every Options value still rejects a
// non-PCM, non-44.1kHz/16-bit/stereo fmt subchunk: these flags only
// gate the secondary consistency checks a stricter or more permissive
// caller might want to toggle.
type Options struct {
	// RespectHeader requires the RIFF chunk's declared size to equal
	// the file's actual size minus 8.
	RespectHeader bool
	// RespectData requires the data subchunk's declared size to be a
	// multiple of 4 (one stereo sample).
	RespectData bool
	// RespectTrailing continues walking chunks after the data
	// subchunk, failing if a trailing chunk is malformed. When false,
	// the reader stops as soon as the data subchunk has been consumed.
	RespectTrailing bool
}

// DefaultOptions enforces the header and data checks; chunks after the
// data subchunk are not walked.
func DefaultOptions() Options {
	return Options{RespectHeader: true, RespectData: true, RespectTrailing: false}
}

// Reader is the RIFF/WAVE AudioReader backend.
type Reader struct {
	audioreader.Base
	opts Options

	f        *os.File
	state    state
	dataSize int64
}

// New constructs a Reader with DefaultOptions, for use as a
// format.FileReaderDescriptor factory.
func New() format.FileReader {
	return &Reader{Base: audioreader.NewBase(), opts: DefaultOptions()}
}

// NewWithOptions constructs a Reader with a caller-supplied Options.
func NewWithOptions(opts Options) *Reader {
	return &Reader{Base: audioreader.NewBase(), opts: opts}
}

// Close releases the underlying file handle, if one is open.
func (r *Reader) Close() error {
	if r.f == nil {
		return nil
	}
	err := r.f.Close()
	r.f = nil
	r.state = sInitial
	return err
}

// AcquireSize opens path, walks the header through the data subchunk's
// size field, and returns the sample count without streaming any
// sample data or touching the attached processor.
func (r *Reader) AcquireSize(path string) (sampleproc.AudioSize, error) {
	f, err := os.Open(path)
	if err != nil {
		return sampleproc.AudioSize{}, arcserr.NewFileReadErrorUnknownPos(err.Error())
	}
	defer f.Close()

	dataSize, err := readHeader(f, r.opts)
	if err != nil {
		return sampleproc.AudioSize{}, err
	}
	return sampleproc.NewAudioSizeFromBytes(dataSize), nil
}

// ProcessFile streams path's PCM data through the attached processor in
// blocks of SamplesPerRead samples, emitting StartInput, one
// UpdateAudioSize, zero or more AppendSamples (none for an empty data
// subchunk), then EndInput on every exit path.
func (r *Reader) ProcessFile(path string) error {
	r.SignalStart()
	defer r.SignalEnd()

	f, err := os.Open(path)
	if err != nil {
		return arcserr.NewFileReadErrorUnknownPos(err.Error())
	}
	defer f.Close()

	dataSize, err := readHeader(f, r.opts)
	if err != nil {
		return err
	}
	r.SignalUpdateSize(sampleproc.NewAudioSizeFromBytes(dataSize))

	totalSamples := dataSize / cdda.BytesPerSample
	block := make([]int32, r.SamplesPerRead())
	raw := make([]byte, len(block)*cdda.BytesPerSample)

	var samplesLeft = totalSamples
	for samplesLeft > 0 {
		n := int64(len(block))
		if n > samplesLeft {
			n = samplesLeft
		}
		rawN := int(n) * cdda.BytesPerSample
		if err := readFull(f, raw[:rawN], "truncated PCM data"); err != nil {
			return err
		}
		for i := int64(0); i < n; i++ {
			off := i * cdda.BytesPerSample
			left := uint32(raw[off]) | uint32(raw[off+1])<<8
			right := uint32(raw[off+2]) | uint32(raw[off+3])<<8
			block[i] = int32(left | right<<16)
		}
		r.SignalAppend(block[:n])
		samplesLeft -= n
	}

	if r.opts.RespectTrailing {
		if err := walkTrailingChunks(f); err != nil {
			return err
		}
	}

	return nil
}

// readHeader walks the RIFF chunk descriptor, the fmt subchunk, and the
// data subchunk's id/size fields, validating each against the CD-DA
// layout. It leaves f positioned at the first byte of PCM data and
// returns the data subchunk's declared size in bytes.
func readHeader(f *os.File, opts Options) (int64, error) {
	var hdr [12]byte
	if err := readFull(f, hdr[:], "short RIFF header"); err != nil {
		return 0, err
	}
	if string(hdr[0:4]) != "RIFF" {
		return 0, arcserr.NewInvalidAudioError("missing RIFF chunk id")
	}
	if string(hdr[8:12]) != "WAVE" {
		return 0, arcserr.NewInvalidAudioError("missing WAVE format id")
	}
	declaredSize := int64(le32(hdr[4:8]))

	if opts.RespectHeader {
		info, err := f.Stat()
		if err != nil {
			return 0, arcserr.NewFileReadError(err.Error(), bytePosAfter(currentPos(f), 0))
		}
		if declaredSize != info.Size()-8 {
			return 0, arcserr.NewInvalidAudioError(
				"RIFF chunk size %d does not match file size %d", declaredSize, info.Size())
		}
	}

	var fmtHdr [8]byte
	if err := readFull(f, fmtHdr[:], "short fmt subchunk header"); err != nil {
		return 0, err
	}
	if string(fmtHdr[0:4]) != "fmt " {
		return 0, arcserr.NewInvalidAudioError("fmt subchunk must immediately follow the chunk descriptor")
	}
	fmtSize := le32(fmtHdr[4:8])
	if fmtSize != 16 {
		return 0, arcserr.NewInvalidAudioError("fmt subchunk size %d, want 16 (PCM)", fmtSize)
	}

	var fmtBody [16]byte
	if err := readFull(f, fmtBody[:], "short fmt subchunk body"); err != nil {
		return 0, err
	}
	if err := validateFormat(fmtBody); err != nil {
		return 0, err
	}

	var dataHdr [8]byte
	if err := readFull(f, dataHdr[:], "short data subchunk header"); err != nil {
		return 0, err
	}
	if string(dataHdr[0:4]) != "data" {
		return 0, arcserr.NewInvalidAudioError("data subchunk must immediately follow fmt")
	}
	dataSize := int64(le32(dataHdr[4:8]))
	if opts.RespectData && dataSize%cdda.BytesPerSample != 0 {
		return 0, arcserr.NewInvalidAudioError(
			"data subchunk size %d is not a multiple of %d", dataSize, cdda.BytesPerSample)
	}

	return dataSize, nil
}

// validateFormat checks a 16-byte fmt subchunk body against the CD-DA
// PCM layout: format tag 1 (integer PCM), 2 channels, 44100 Hz,
// 176400 bytes/sec average rate, 4-byte block align, 16 bits/sample.
func validateFormat(b [16]byte) error {
	formatTag := le16(b[0:2])
	channels := le16(b[2:4])
	sampleRate := le32(b[4:8])
	byteRate := le32(b[8:12])
	blockAlign := le16(b[12:14])
	bitsPerSample := le16(b[14:16])

	switch {
	case formatTag != 1:
		return arcserr.NewInvalidAudioError("fmt tag %d, want 1 (PCM)", formatTag)
	case channels != cdda.NumberOfChannels:
		return arcserr.NewInvalidAudioError("channel count %d, want %d", channels, cdda.NumberOfChannels)
	case sampleRate != cdda.SamplesPerSecond:
		return arcserr.NewInvalidAudioError("sample rate %d, want %d", sampleRate, cdda.SamplesPerSecond)
	case bitsPerSample != cdda.BitsPerSample:
		return arcserr.NewInvalidAudioError("bits per sample %d, want %d", bitsPerSample, cdda.BitsPerSample)
	case blockAlign != cdda.BytesPerSample:
		return arcserr.NewInvalidAudioError("block align %d, want %d", blockAlign, cdda.BytesPerSample)
	case byteRate != cdda.SamplesPerSecond*cdda.BytesPerSample:
		return arcserr.NewInvalidAudioError("average byte rate %d, want %d", byteRate, cdda.SamplesPerSecond*cdda.BytesPerSample)
	}
	return nil
}

// walkTrailingChunks scans any subchunks following data, validating
// that each carries a well-formed id/size pair and skipping its
// (even-padded) body. It does not interpret trailing chunk contents.
func walkTrailingChunks(f *os.File) error {
	var hdr [8]byte
	for {
		start := currentPos(f)
		n, err := io.ReadFull(f, hdr[:])
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return arcserr.NewFileReadError("short trailing chunk header: "+err.Error(), bytePosAfter(start, n))
		}
		size := int64(le32(hdr[4:8]))
		if size%2 != 0 {
			size++
		}
		seekFrom := currentPos(f)
		if _, err := f.Seek(size, io.SeekCurrent); err != nil {
			return arcserr.NewFileReadError("truncated trailing chunk: "+err.Error(), bytePosAfter(seekFrom, 0))
		}
	}
}

func le16(b []byte) uint16 { return uint16(b[0]) | uint16(b[1])<<8 }
func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
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

// bytePosAfter computes the 1-based position of the first byte past a
// read of n bytes starting at start, or arcserr.NoBytePos if start is
// itself unknown.
func bytePosAfter(start int64, n int) int64 {
	if start == arcserr.NoBytePos {
		return arcserr.NoBytePos
	}
	return start + int64(n) + 1
}

// readFull reads exactly len(buf) bytes from f, returning a
// FileReadError carrying the position of the first byte that could not
// be read on a short or failed read.
func readFull(f *os.File, buf []byte, context string) error {
	start := currentPos(f)
	n, err := io.ReadFull(f, buf)
	if err == nil {
		return nil
	}
	return arcserr.NewFileReadError(context+": "+err.Error(), bytePosAfter(start, n))
}
