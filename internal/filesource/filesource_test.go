package filesource

import (
	"bytes"
	"io"
	"testing"

	"github.com/absfs/memfs"
)

func TestOpenCreateRoundTrip(t *testing.T) {
	fs, err := memfs.NewFS()
	if err != nil {
		t.Fatalf("memfs.NewFS: %v", err)
	}

	w, err := Create(fs, "/stream.ts")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	want := []byte("transport stream payload")
	if _, err := w.Write(want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := Open(fs, "/stream.ts")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestOpenMissingFile(t *testing.T) {
	fs, err := memfs.NewFS()
	if err != nil {
		t.Fatalf("memfs.NewFS: %v", err)
	}
	if _, err := Open(fs, "/missing.ts"); err == nil {
		t.Fatal("Open of missing file: want error, got nil")
	}
}
