package config

import (
	"fmt"
)

const (
	FormatBinary = "binary"
	FormatText   = "text"
)

// Config is read from the --config file, ORDLIST_* environment variables
// and the command line, in increasing order of precedence.
type Config struct {
	DumpDir  string `yaml:"dump-dir" mapstructure:"dump-dir"`
	Format   string `yaml:"format" mapstructure:"format"`
	Compress bool   `yaml:"compress" mapstructure:"compress"`
	Capacity int    `yaml:"capacity" mapstructure:"capacity"`
	Seed     uint32 `yaml:"seed" mapstructure:"seed"`
}

func Default() *Config {
	return &Config{
		DumpDir: ".",
		Format:  FormatBinary,
		Seed:    301,
	}
}

func (c *Config) Validate() []error {
	var errs []error
	if c.Format != FormatBinary && c.Format != FormatText {
		errs = append(errs, fmt.Errorf("unknown format %q, want %s or %s", c.Format, FormatBinary, FormatText))
	}
	if c.Compress && c.Format == FormatText {
		errs = append(errs, fmt.Errorf("compress is only supported by the %s format", FormatBinary))
	}
	if c.Capacity < 0 {
		errs = append(errs, fmt.Errorf("capacity must not be negative: %d", c.Capacity))
	}
	if c.DumpDir == "" {
		errs = append(errs, fmt.Errorf("dump-dir must not be empty"))
	}
	return errs
}
