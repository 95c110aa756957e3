// internal/storage/file.go
package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

type scoreFile struct {
	BestScore int `json:"best_score"`
}

// FileStore — рекорд в JSON-файле рядом с игрой
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) BestScore(_ context.Context) (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, eris.Wrapf(err, "failed to read %s", s.path)
	}
	var f scoreFile
	if err := json.Unmarshal(data, &f); err != nil {
		return 0, eris.Wrapf(err, "failed to decode %s", s.path)
	}
	return f.BestScore, nil
}

// SaveBestScore пишет во временный файл и переименовывает его
func (s *FileStore) SaveBestScore(_ context.Context, score int) error {
	data, err := json.Marshal(scoreFile{BestScore: score})
	if err != nil {
		return eris.Wrap(err, "failed to encode score")
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".score-*")
	if err != nil {
		return eris.Wrap(err, "failed to create temp file")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return eris.Wrap(err, "failed to write temp file")
	}
	if err := tmp.Close(); err != nil {
		return eris.Wrap(err, "failed to close temp file")
	}
	return eris.Wrapf(os.Rename(tmp.Name(), s.path), "failed to replace %s", s.path)
}

func (s *FileStore) Close() error { return nil }
