package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// Profile is an optional TOML file supplying dataset and output defaults.
// Explicit command-line flags take precedence over profile values, profile
// values take precedence over built-in defaults.
type Profile struct {
	Repo      string `toml:"repo"`
	Revision  string `toml:"revision"`
	Extension string `toml:"extension"`
	Count     int    `toml:"count"`
	OutputDir string `toml:"output_dir"`
}

// LoadProfile reads and parses a TOML profile file
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read profile", goerr.V("path", path))
	}

	var p Profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, goerr.Wrap(err, "failed to parse profile", goerr.V("path", path))
	}

	return &p, nil
}

// Apply copies profile values into the configs for every flag the user did
// not set explicitly. isSet reports whether the named flag was given on the
// command line or via environment.
func (p *Profile) Apply(isSet func(name string) bool, dataset *Dataset, output *Output) {
	if p.Repo != "" && !isSet("repo") {
		dataset.RepoID = p.Repo
	}
	if p.Revision != "" && !isSet("revision") {
		dataset.Revision = p.Revision
	}
	if p.Extension != "" && !isSet("ext") {
		dataset.Extension = p.Extension
	}
	if output != nil {
		if p.Count > 0 && !isSet("count") {
			output.Count = p.Count
		}
		if p.OutputDir != "" && !isSet("output-dir") {
			output.Dir = p.OutputDir
		}
	}
}
