// Package config loads the settings of the command-line front end
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls how source text is run and what is reported
type Config struct {
	// Prompt is printed before each line read by the REPL
	Prompt string `yaml:"prompt"`
	// DumpTokens prints every scanned token before parsing
	DumpTokens bool `yaml:"dumpTokens"`
	// DumpAST prints every parsed statement before evaluation
	DumpAST bool `yaml:"dumpAST"`
	// Recover reports all syntax errors in a source text instead of only the first
	Recover bool `yaml:"recover"`
	// Verbose enables debug logging of each pipeline stage
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{Prompt: "> "}
}

// Load reads a YAML configuration file. Settings missing from the
// file keep their default values. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer file.Close()

	cfg, err := Parse(file)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML configuration. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, nil
}
