package cmd

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/etnz/backoffice/agent"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is read from the current folder when no other
	// configuration file is given.
	DefaultConfigFile = ".backoffice.yaml"
	// EnvConfig names the configuration file when -config is not set.
	EnvConfig = "BO_CONFIG"
)

// Config holds the settings of bo. Explicit flags override the
// configuration file, which overrides the defaults.
type Config struct {
	SeedDir string `yaml:"seed_dir"`
	Style   string `yaml:"style"`
	Model   string `yaml:"model"`
	Verbose bool   `yaml:"verbose"`
}

func defaults() Config {
	return Config{Style: "auto", Model: agent.DefaultModel}
}

// LoadConfig reads the YAML configuration file at path. If optional, a
// missing file is an empty configuration.
func LoadConfig(path string, optional bool) (Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	if optional && errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("failed to read configuration: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("invalid configuration file %q: %w", path, err)
	}
	return c, nil
}

// merge returns c with the values set in over.
func (c Config) merge(over Config) Config {
	if over.SeedDir != "" {
		c.SeedDir = over.SeedDir
	}
	if over.Style != "" {
		c.Style = over.Style
	}
	if over.Model != "" {
		c.Model = over.Model
	}
	c.Verbose = c.Verbose || over.Verbose
	return c
}

// resolve merges the defaults, the configuration file and the flags
// explicitly set in flags.
func resolve(file Config, flags *flag.FlagSet) Config {
	c := defaults().merge(file)
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed-dir":
			c.SeedDir = f.Value.String()
		case "style":
			c.Style = f.Value.String()
		case "v":
			c.Verbose = f.Value.String() == "true"
		}
	})
	return c
}
