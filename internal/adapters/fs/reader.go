// Package fs implements file system access for reading input files.
package fs

import (
	"os"
	"unicode/utf8"

	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileReader = (*Reader)(nil)

// Reader implements the FileReader interface using os.ReadFile.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadText reads the whole file at path and checks that it is valid UTF-8.
// The bytes are returned unchanged, including any byte order mark.
func (r *Reader) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return "", domain.Annotate(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}

	if !utf8.Valid(data) {
		return "", domain.Annotate(domain.ErrFileDecodeFailed, "path", path)
	}

	return string(data), nil
}
