// Package bytesio provides the byte-level primitives the rest of the
// core is built on: a bounded file-slice reader and big/little-endian
// integer decoders for 16- and 32-bit fields.
package bytesio

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/go-accuraterip/arcsdec/arcserr"
)

// ReadBytes reads exactly length bytes from path starting at offset.
// If fewer bytes are available, it returns a FileReadError whose BytePos
// is offset+length minus the file size: the number of requested bytes
// that lie past the end of the file.
func ReadBytes(path string, offset int64, length int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, arcserr.NewFileReadErrorUnknownPos(err.Error())
	}
	defer f.Close()

	buf := make([]byte, length)
	n, err := f.ReadAt(buf, offset)
	if err != nil && err != io.EOF {
		return nil, arcserr.NewFileReadErrorUnknownPos(err.Error())
	}
	if n < length {
		info, statErr := f.Stat()
		var fileSize int64
		if statErr == nil {
			fileSize = info.Size()
		}
		bytePos := offset + int64(length) - fileSize
		if bytePos < 1 {
			bytePos = int64(length - n)
		}
		return nil, arcserr.NewFileReadError("truncated read", bytePos)
	}
	return buf, nil
}

// LE16 decodes a little-endian uint16 starting at b[0].
func LE16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }

// LE32 decodes a little-endian uint32 starting at b[0].
func LE32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

// BE16 decodes a big-endian uint16 starting at b[0].
func BE16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }

// BE32 decodes a big-endian uint32 starting at b[0].
func BE32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

// BEString decodes a big-endian 4-char chunk id (e.g. "RIFF") as a string.
func BEString(b []byte) string { return string(b[:4]) }
