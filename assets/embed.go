package assets

import (
	"embed"
	"path/filepath"
	"strings"
)

//go:embed dino/*.png
var FS embed.FS

// Paths names the six sprites the runner needs, relative to the asset FS root.
type Paths struct {
	DogRun    string `yaml:"dog_run"`
	DogRunAlt string `yaml:"dog_run_alt"`
	DogJump   string `yaml:"dog_jump"`
	Tree      string `yaml:"tree"`
	Squirrel  string `yaml:"squirrel"`
	Mountain  string `yaml:"mountain"`
}

// CleanPath turns a sprite path from the tuning file into a key into FS.
func CleanPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "/")
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
