package bytesio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-accuraterip/arcsdec/arcserr"
)

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestReadBytesExact(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	path := writeTempFile(t, data)

	got, err := ReadBytes(path, 2, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{3, 4, 5, 6}
	if string(got) != string(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestReadBytesBeyondEOF(t *testing.T) {
	data := []byte{1, 2, 3}
	path := writeTempFile(t, data)

	_, err := ReadBytes(path, 0, 10)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, arcserr.ErrFileRead) {
		t.Fatalf("expected ErrFileRead, got %v", err)
	}
	var fre *arcserr.FileReadError
	if !errors.As(err, &fre) {
		t.Fatalf("expected *FileReadError, got %T", err)
	}
	if want := int64(10 - len(data)); fre.BytePos != want {
		t.Fatalf("got byte_pos %d, want %d", fre.BytePos, want)
	}
}

func TestEndianDecoders(t *testing.T) {
	le := []byte{0x10, 0x00, 0x00, 0x00}
	if LE32(le) != 0x10 {
		t.Fatalf("LE32 = %#x, want 0x10", LE32(le))
	}
	be := []byte{'R', 'I', 'F', 'F'}
	if BEString(be) != "RIFF" {
		t.Fatalf("BEString = %q, want RIFF", BEString(be))
	}
	if BE32([]byte{0x00, 0x00, 0x00, 0x10}) != 0x10 {
		t.Fatalf("BE32 mismatch")
	}
	if LE16([]byte{0x02, 0x00}) != 2 {
		t.Fatalf("LE16 mismatch")
	}
	if BE16([]byte{0x00, 0x02}) != 2 {
		t.Fatalf("BE16 mismatch")
	}
}
