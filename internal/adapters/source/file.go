// Package source loads file contents for the search engine.
package source

import (
	"github.com/spf13/afero"

	"github.com/WhimsicallyDandy/minigrep/internal/core/ports"
)

// FileSource implements the ContentSource interface on top of an afero
// filesystem
type FileSource struct {
	fs afero.Fs
}

// NewFileSource creates a ContentSource backed by the OS filesystem
func NewFileSource() ports.ContentSource {
	return NewFileSourceFS(afero.NewOsFs())
}

// NewFileSourceFS creates a ContentSource over the given filesystem. Tests
// use this with an in-memory filesystem.
func NewFileSourceFS(fs afero.Fs) ports.ContentSource {
	return &FileSource{fs: fs}
}

// ReadAll reads the named file fully into memory. The underlying error is
// returned untouched so the caller can surface the cause verbatim.
func (s *FileSource) ReadAll(name string) (string, error) {
	data, err := afero.ReadFile(s.fs, name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
