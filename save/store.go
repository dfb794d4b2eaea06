// Package save persists the runner's high score between plays.
package save

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
)

// Store holds a single integer high score.
type Store interface {
	Load() (int, error)
	Save(score int) error
}

// DefaultPath is the save file under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("save: config dir: %w", err)
	}
	return filepath.Join(dir, "dogrunner", "save.toml"), nil
}

// File stores the score as `<key> = <int>` in a toml document. Other keys in
// the document are preserved on save.
type File struct {
	Path string
	Key  string
}

func NewFile(path, key string) *File {
	return &File{Path: path, Key: key}
}

// Load returns 0 without error when the file or the key does not exist.
func (f *File) Load() (int, error) {
	doc, err := f.read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	switch v := doc[f.Key].(type) {
	case nil:
		return 0, nil
	case int64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("save: %s: %s is not an integer: %w", f.Path, f.Key, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("save: %s: %s has type %T", f.Path, f.Key, v)
	}
}

func (f *File) Save(score int) error {
	doc, err := f.read()
	if err != nil {
		doc = map[string]any{}
	}
	doc[f.Key] = int64(score)

	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("save: mkdir %s: %w", f.Path, err)
	}
	tmp := f.Path + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("save: create %s: %w", tmp, err)
	}
	if err := toml.NewEncoder(out).Encode(doc); err != nil {
		out.Close()
		return fmt.Errorf("save: encode %s: %w", tmp, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("save: close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("save: rename %s: %w", f.Path, err)
	}
	return nil
}

func (f *File) read() (map[string]any, error) {
	doc := map[string]any{}
	if _, err := toml.DecodeFile(f.Path, &doc); err != nil {
		return nil, fmt.Errorf("save: decode %s: %w", f.Path, err)
	}
	return doc, nil
}

// Memory is an in-process Store. LoadErr and SaveErr, when set, are returned
// instead of touching the value.
type Memory struct {
	mu      sync.Mutex
	value   int
	saves   int
	LoadErr error
	SaveErr error
}

func NewMemory(initial int) *Memory {
	return &Memory{value: initial}
}

func (m *Memory) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return 0, m.LoadErr
	}
	return m.value, nil
}

func (m *Memory) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.value = score
	m.saves++
	return nil
}

// Value returns the stored score, ignoring LoadErr.
func (m *Memory) Value() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value
}

// Saves counts successful writes.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
