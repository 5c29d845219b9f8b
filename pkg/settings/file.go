package settings

import (
	"context"
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// FileStore reads settings from a YAML file on every Load.
// Pair it with Cached to avoid re-reading the file per request.
//
// Example file:
//
//	resend_tokens:
//	  example.com: re_xxxxxxxx
//	  mail.example.org: re_yyyyyyyy
type FileStore struct {
	path string
}

// NewFileStore creates a settings store reading path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load implements Store.
func (s *FileStore) Load(context.Context) (Settings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Settings{}, errors.Join(ErrLoadFailed, err)
	}

	var out Settings
	if err := yaml.Unmarshal(data, &out); err != nil {
		return Settings{}, errors.Join(ErrLoadFailed, err)
	}
	return out.normalize(), nil
}
