package source

import (
	"context"
	"os"
	"path/filepath"

	"devops-reference/internal/domain"
)

// FileSource reads assets from a local directory.
type FileSource struct {
	dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// Fetch implements domain.Source. Names may not escape the directory.
func (s *FileSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewSourceUnavailableError(name, err)
	}

	// Rooting the name before cleaning strips any leading "..".
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.Clean("/"+name)))
	if err != nil {
		return nil, domain.NewSourceUnavailableError(name, err)
	}
	return data, nil
}
