// Package config loads cmd/venom's optional YAML configuration file,
// parsed with github.com/goccy/go-yaml, the same library CWBudde-go-dws
// carries for its own DWS config loading.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the handful of settings cmd/venom's subcommands read.
// Flags passed on the command line always override the values here.
type Config struct {
	// OutputMode selects the default rendering for `venom ast`: "tree"
	// (the indented human-readable dump) or "json".
	OutputMode string `yaml:"outputMode"`

	// TabWidth is used only for diagnostic column math when a source
	// file mixes tabs and spaces; it never affects lexing itself.
	TabWidth int `yaml:"tabWidth"`

	// JSONIndent is the indent width used when pretty-printing
	// `venom ast --json` output.
	JSONIndent int `yaml:"jsonIndent"`
}

// Default returns the configuration used when no --config file is given.
func Default() Config {
	return Config{OutputMode: "tree", TabWidth: 8, JSONIndent: 2}
}

// Load reads and parses a YAML config file at path, starting from
// Default() so a partial file only overrides the fields it sets.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
