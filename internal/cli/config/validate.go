package config

import (
	"fmt"
	"unicode/utf8"
)

// Validate checks values that no command could work with.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	if c.Bench.Trials < 1 {
		return fmt.Errorf("bench.trials must be >= 1, got %d", c.Bench.Trials)
	}
	if c.Bench.Workers < 1 {
		return fmt.Errorf("bench.workers must be >= 1, got %d", c.Bench.Workers)
	}
	if len(c.Bench.Lengths) == 0 {
		return fmt.Errorf("bench.lengths must not be empty")
	}
	for _, n := range c.Bench.Lengths {
		if n < 0 {
			return fmt.Errorf("bench.lengths must be >= 0, got %d", n)
		}
	}
	if c.Bench.Alphabet == "" || !utf8.ValidString(c.Bench.Alphabet) {
		return fmt.Errorf("bench.alphabet must be non-empty UTF-8, got %q", c.Bench.Alphabet)
	}

	return nil
}
