package netfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is an optional override file for the gridroute CLI, letting a
// caller pin down the knobs that the plain-text netlist format itself
// has no room for: the attempt budget and the shuffle seed, and (for
// experimentation) the grid's penalty scalars independent of whatever
// the input file's header specifies.
//
// Every field is a pointer so the zero value ("field absent from the
// YAML document") is distinguishable from an explicit zero.
type Config struct {
	MaxAttempts *int   `yaml:"max_attempts"`
	Seed        *int64 `yaml:"seed"`
	BendPenalty *int   `yaml:"bend_penalty"`
	ViaPenalty  *int   `yaml:"via_penalty"`
}

// LoadConfig reads and parses a YAML Config from path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("netfile: reading config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("netfile: parsing config %q: %w", path, err)
	}

	return &cfg, nil
}
