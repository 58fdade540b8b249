// Package filesource provides absfs.FileSystem-backed helpers for
// opening a decode run's source and sink files. Production runs pass the
// real OS paths straight to streamadapter.Adapter via the standard
// library (no absfs wrapper for the host OS ships in this pack), but the
// same open/copy logic here is exercised in tests against
// github.com/absfs/memfs, so the file-handling code itself is proven
// against the absfs interface rather than only against *os.File.
package filesource

import (
	"fmt"

	"github.com/absfs/absfs"
)

// Open opens path for reading on fs.
func Open(fs absfs.FileSystem, path string) (absfs.File, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("filesource: open %s: %w", path, err)
	}
	return f, nil
}

// Create truncates (or creates) path for writing on fs.
func Create(fs absfs.FileSystem, path string) (absfs.File, error) {
	f, err := fs.Create(path)
	if err != nil {
		return nil, fmt.Errorf("filesource: create %s: %w", path, err)
	}
	return f, nil
}
