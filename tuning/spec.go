package tuning

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("tuning: invalid value")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Read(filename)
	if err != nil {
		return zero, fmt.Errorf("tuning: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("tuning: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Range is a closed interval written as a two element sequence, `[min, max]`.
type Range struct {
	Min float64
	Max float64
}

func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	var pair []float64
	if err := node.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: range needs exactly two values, got %d", node.Line, len(pair))
	}
	r.Min, r.Max = pair[0], pair[1]
	return nil
}

func (r Range) MarshalYAML() (any, error) {
	return []float64{r.Min, r.Max}, nil
}

// Inset shrinks a rectangle from each edge.
type Inset struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}
