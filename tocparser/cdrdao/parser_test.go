package cdrdao

import (
	"os"
	"testing"
)

func TestParseAlbumToc(t *testing.T) {
	r := &Reader{}
	toc, err := r.Parse("testdata/album.toc")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if toc.TrackCount != 2 {
		t.Fatalf("TrackCount = %d, want 2", toc.TrackCount)
	}
	if toc.Offsets[0] != 150 {
		t.Errorf("Offsets[0] = %d, want 150", toc.Offsets[0])
	}
	if toc.Lengths[0] == 0 {
		t.Errorf("Lengths[0] should be populated from the explicit LENGTH field")
	}
	if len(toc.Filenames) != 2 || toc.Filenames[0] != "album.bin" {
		t.Errorf("Filenames = %v, want [album.bin album.bin]", toc.Filenames)
	}
}

func TestParseRejectsFileOutsideTrack(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bad.toc"
	content := "CD_DA\nFILE \"x.bin\" START 00:00:00 LENGTH 00:01:00\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	r := &Reader{}
	if _, err := r.Parse(path); err == nil {
		t.Fatal("expected error for FILE outside TRACK")
	}
}
