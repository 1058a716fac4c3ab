// Package config defines the configuration types and defaults for
// deb822fmt, the CLI built on top of the deb822 library.
package config

import "strings"

// Config is the top-level CLI configuration.
type Config struct {
	Reformat ReformatConfig `yaml:"reformat"`
}

// ReformatConfig controls how `deb822fmt fmt` reformats a field's value
// when no --interpretation flag is given on the command line.
type ReformatConfig struct {
	// Default is the fallback interpretation name ("whitespace" or
	// "comma") used for a field not listed in WhitespaceFields or
	// CommaFields.
	Default string `yaml:"default"`
	// WhitespaceFields are field names reformatted as whitespace-separated
	// lists by default (case-insensitive), e.g. "Architecture".
	WhitespaceFields []string `yaml:"whitespace_fields"`
	// CommaFields are field names reformatted as comma-separated lists by
	// default (case-insensitive), e.g. "Depends", "Recommends".
	CommaFields []string `yaml:"comma_fields"`
	// OneValuePerLine enables reformat-on-commit's one-value-per-line mode
	// (spec §4.8); when false, values are packed onto as few lines as
	// reformatting still allows.
	OneValuePerLine bool `yaml:"one_value_per_line"`
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Reformat: ReformatConfig{
			Default: "whitespace",
			CommaFields: []string{
				"Depends", "Pre-Depends", "Recommends", "Suggests",
				"Conflicts", "Breaks", "Replaces", "Provides", "Enhances",
				"Build-Depends", "Build-Depends-Indep", "Build-Conflicts",
			},
			WhitespaceFields: []string{"Architecture", "Packages"},
			OneValuePerLine:  true,
		},
	}
}

// InterpretationFor returns "comma", "whitespace", or "" (meaning "not a
// known list field") for name, consulting only the configured field lists;
// it does not fall back to Default, which is left to the caller.
func (c *Config) InterpretationFor(name string) string {
	for _, f := range c.Reformat.CommaFields {
		if strings.EqualFold(f, name) {
			return "comma"
		}
	}
	for _, f := range c.Reformat.WhitespaceFields {
		if strings.EqualFold(f, name) {
			return "whitespace"
		}
	}
	return ""
}
