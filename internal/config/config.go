// Package config reads the expect command line configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/buildpacks/expect/engine"
)

type Config struct {
	NoColor bool   `toml:"no-color,omitempty"`
	Verbose bool   `toml:"verbose,omitempty"`
	Output  string `toml:"output,omitempty"`
	Format  Format `toml:"format"`
}

// Format mirrors engine.FormatOptions.
type Format struct {
	MaxLength     int  `toml:"max-length"`
	UseStringer   bool `toml:"use-stringer"`
	TruncatedDiff bool `toml:"truncated-diff"`
}

// DefaultConfigPath is config.toml under $EXPECT_HOME, or ~/.expect.
func DefaultConfigPath() (string, error) {
	home, err := Home()
	if err != nil {
		return "", errors.Wrap(err, "getting expect home")
	}
	return filepath.Join(home, "config.toml"), nil
}

func Home() (string, error) {
	expectHome := os.Getenv("EXPECT_HOME")
	if expectHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "getting user home")
		}
		expectHome = filepath.Join(home, ".expect")
	}
	return expectHome, nil
}

// Default is the configuration used when no file exists: the engine's current
// formatting and human readable output.
func Default() Config {
	current := engine.CurrentFormat()
	return Config{
		Output: "human",
		Format: Format{
			MaxLength:     current.MaxLength,
			UseStringer:   current.UseStringerRepresentation,
			TruncatedDiff: current.TruncatedDiff,
		},
	}
}

// Read decodes the file at path over Default. A missing file is not an error; a key
// the configuration does not know is.
func Read(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, errors.Wrapf(err, "failed to read config file at path %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("unknown configuration elements %s in %s", ParseUndecodedKeys(undecoded), path)
	}
	return cfg, nil
}

// FormatOptions converts the [format] table for the engine.
func (c Config) FormatOptions() engine.FormatOptions {
	return engine.FormatOptions{
		MaxLength:                 c.Format.MaxLength,
		UseStringerRepresentation: c.Format.UseStringer,
		TruncatedDiff:             c.Format.TruncatedDiff,
	}
}

// ApplyFormat configures failure message rendering.
func (c Config) ApplyFormat() {
	engine.Configure(c.FormatOptions())
}
