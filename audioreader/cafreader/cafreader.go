// Package cafreader implements format.AudioReader for Core Audio
// Format (CAF) PCM input: a lighter-weight chunk walker than wavpcm's,
// since CAF's chunk framing carries an explicit 64-bit size for every
// chunk rather than requiring positional knowledge of what follows.
package cafreader

import (
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/go-accuraterip/arcsdec/arcserr"
	"github.com/go-accuraterip/arcsdec/audioreader"
	"github.com/go-accuraterip/arcsdec/cdda"
	"github.com/go-accuraterip/arcsdec/format"
	"github.com/go-accuraterip/arcsdec/sampleproc"
)

// ID is the descriptor identifier this package registers under.
const ID = "cafpcm"

const formatFlagLittleEndian = 0x2

// Reader is the CAF PCM AudioReader backend.
type Reader struct {
	audioreader.Base
}

// New constructs a Reader, for use as a format.FileReaderDescriptor
// factory.
func New() format.FileReader {
	return &Reader{Base: audioreader.NewBase()}
}

// Close is a no-op: neither AcquireSize nor ProcessFile holds the
// underlying file open between calls.
func (r *Reader) Close() error { return nil }

// desc holds a validated 'desc' chunk's fields relevant to decoding.
type desc struct {
	littleEndian bool
}

// AcquireSize opens path, walks its chunks through 'data', and returns
// the declared PCM payload's sample count.
func (r *Reader) AcquireSize(path string) (sampleproc.AudioSize, error) {
	f, err := os.Open(path)
	if err != nil {
		return sampleproc.AudioSize{}, arcserr.NewFileReadErrorUnknownPos(err.Error())
	}
	defer f.Close()

	_, dataSize, err := walkToData(f)
	if err != nil {
		return sampleproc.AudioSize{}, err
	}
	return sampleproc.NewAudioSizeFromBytes(dataSize), nil
}

// ProcessFile streams path's PCM payload through the attached
// processor in blocks of SamplesPerRead.
func (r *Reader) ProcessFile(path string) error {
	r.SignalStart()
	defer r.SignalEnd()

	f, err := os.Open(path)
	if err != nil {
		return arcserr.NewFileReadErrorUnknownPos(err.Error())
	}
	defer f.Close()

	d, dataSize, err := walkToData(f)
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
		if err := readFull(f, raw[:rawN], "truncated CAF PCM data"); err != nil {
			return err
		}
		for i := int64(0); i < n; i++ {
			off := i * cdda.BytesPerSample
			var left, right uint32
			if d.littleEndian {
				left = uint32(raw[off]) | uint32(raw[off+1])<<8
				right = uint32(raw[off+2]) | uint32(raw[off+3])<<8
			} else {
				left = uint32(raw[off+1]) | uint32(raw[off])<<8
				right = uint32(raw[off+3]) | uint32(raw[off+2])<<8
			}
			block[i] = int32(left | right<<16)
		}
		r.SignalAppend(block[:n])
		samplesLeft -= n
	}

	return nil
}

// walkToData validates the CAF file header and 'desc' chunk, then
// walks subsequent chunks until 'data', leaving f positioned at the
// first byte of PCM payload (past data's leading edit-count field).
// It returns the validated desc and the PCM payload's byte length.
func walkToData(f *os.File) (desc, int64, error) {
	var fileHdr [8]byte
	if err := readFull(f, fileHdr[:], "short CAF file header"); err != nil {
		return desc{}, 0, err
	}
	if string(fileHdr[0:4]) != "caff" {
		return desc{}, 0, arcserr.NewInvalidAudioError("missing 'caff' file type")
	}

	var d desc
	haveDesc := false

	for {
		var chunkHdr [12]byte
		if _, err := io.ReadFull(f, chunkHdr[:]); err != nil {
			return desc{}, 0, arcserr.NewInvalidAudioError("CAF file ended before a 'data' chunk")
		}
		chunkType := string(chunkHdr[0:4])
		chunkSize := int64(binary.BigEndian.Uint64(chunkHdr[4:12]))

		switch chunkType {
		case "desc":
			if chunkSize != 32 {
				return desc{}, 0, arcserr.NewInvalidAudioError("'desc' chunk size %d, want 32", chunkSize)
			}
			var body [32]byte
			if err := readFull(f, body[:], "short 'desc' chunk"); err != nil {
				return desc{}, 0, err
			}
			var err error
			d, err = validateDesc(body)
			if err != nil {
				return desc{}, 0, err
			}
			haveDesc = true

		case "data":
			if !haveDesc {
				return desc{}, 0, arcserr.NewInvalidAudioError("'data' chunk seen before 'desc'")
			}
			var editCount [4]byte
			if err := readFull(f, editCount[:], "short 'data' chunk header"); err != nil {
				return desc{}, 0, err
			}
			dataSize := chunkSize - 4
			if dataSize < 0 || dataSize%cdda.BytesPerSample != 0 {
				return desc{}, 0, arcserr.NewInvalidAudioError("'data' payload size %d is not a multiple of %d", dataSize, cdda.BytesPerSample)
			}
			return d, dataSize, nil

		default:
			if chunkSize < 0 {
				return desc{}, 0, arcserr.NewInvalidAudioError("chunk %q has unsupported streaming size", chunkType)
			}
			seekFrom := currentPos(f)
			if _, err := f.Seek(chunkSize, io.SeekCurrent); err != nil {
				return desc{}, 0, arcserr.NewFileReadError("skipping chunk "+chunkType+": "+err.Error(), bytePosAfter(seekFrom, 0))
			}
		}
	}
}

// validateDesc decodes and validates a 32-byte 'desc' chunk body
// against the CD-DA PCM layout.
func validateDesc(b [32]byte) (desc, error) {
	sampleRate := math.Float64frombits(binary.BigEndian.Uint64(b[0:8]))
	formatID := string(b[8:12])
	formatFlags := binary.BigEndian.Uint32(b[12:16])
	bytesPerPacket := binary.BigEndian.Uint32(b[16:20])
	framesPerPacket := binary.BigEndian.Uint32(b[20:24])
	channelsPerFrame := binary.BigEndian.Uint32(b[24:28])
	bitsPerChannel := binary.BigEndian.Uint32(b[28:32])

	switch {
	case formatID != "lpcm":
		return desc{}, arcserr.NewInvalidAudioError("CAF format %q, want linear PCM", formatID)
	case sampleRate != cdda.SamplesPerSecond:
		return desc{}, arcserr.NewInvalidAudioError("CAF sample rate %v, want %d", sampleRate, cdda.SamplesPerSecond)
	case channelsPerFrame != cdda.NumberOfChannels:
		return desc{}, arcserr.NewInvalidAudioError("CAF channel count %d, want %d", channelsPerFrame, cdda.NumberOfChannels)
	case bitsPerChannel != cdda.BitsPerSample:
		return desc{}, arcserr.NewInvalidAudioError("CAF bit depth %d, want %d", bitsPerChannel, cdda.BitsPerSample)
	case framesPerPacket != 1 || bytesPerPacket != cdda.BytesPerSample:
		return desc{}, arcserr.NewInvalidAudioError("CAF packet layout is not uncompressed interleaved PCM")
	}

	return desc{littleEndian: formatFlags&formatFlagLittleEndian != 0}, nil
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
