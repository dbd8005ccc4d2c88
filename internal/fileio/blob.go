package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileBlob persists the profile-set blob as a JSON file on disk with
// atomic, validated writes. A missing file reads as empty, matching a
// scene that has no profile sets yet.
type FileBlob struct {
	Path string
}

// Load reads the blob, nil when the file does not exist.
func (b *FileBlob) Load() ([]byte, error) {
	raw, err := os.ReadFile(b.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profile set %s: %w", b.Path, err)
	}
	return raw, nil
}

// Store writes the blob atomically, validating it parses as JSON first.
func (b *FileBlob) Store(data []byte) error {
	return atomicWrite(b.Path, data, validateJSON)
}
