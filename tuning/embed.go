package tuning

import (
	"embed"
	"os"
	"path/filepath"
)

//go:embed *.yaml
var TuningFS embed.FS

// Dir is where on-disk overrides of the embedded files are looked up.
const Dir = "tuning"

// Read returns the named tuning file. A name with a directory part is read from
// disk as given. A bare name prefers a copy under Dir over the embedded default.
func Read(name string) ([]byte, error) {
	if filepath.Base(name) != name {
		return os.ReadFile(name)
	}
	if data, err := os.ReadFile(filepath.Join(Dir, name)); err == nil {
		return data, nil
	}
	return TuningFS.ReadFile(name)
}
