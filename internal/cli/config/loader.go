package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// LocalOnly is a flag annotation that keeps a flag out of the config layers.
// Commands use it for flags whose names collide with a config key.
const LocalOnly = "lvalign_local_only"

// flagKeys maps flag names to config keys. Flags not listed here are read by
// their commands directly and never reach koanf.
var flagKeys = map[string]string{
	"costs":      "costs",
	"verbose":    "verbose",
	"log-format": "log_format",
	"input":      "align.input",
	"output":     "align.output",
	"report":     "check.report",
	"solution":   "check.solution",
	"results":    "check.results",
	"lengths":    "bench.lengths",
	"trials":     "bench.trials",
	"seed":       "bench.seed",
	"workers":    "bench.workers",
	"alphabet":   "bench.alphabet",
}

// Loaded is a Config together with the file it was read from, if any.
type Loaded struct {
	*Config
	File string
}

// Load builds the configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
//
// cfgFile names an explicit YAML file, which must exist; when empty,
// DefaultConfigFile in the working directory is used if present.
func Load(cfgFile string, flags *pflag.FlagSet) (*Loaded, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"costs":          DefaultCosts,
		"verbose":        false,
		"log_format":     DefaultLogFormat,
		"align.input":    DefaultInput,
		"align.output":   DefaultOutput,
		"check.report":   DefaultOutput,
		"check.solution": "",
		"check.results":  DefaultResults,
		"bench.lengths":  append([]int(nil), DefaultLengths...),
		"bench.trials":   DefaultTrials,
		"bench.seed":     DefaultSeed,
		"bench.workers":  DefaultWorkers,
		"bench.alphabet": DefaultAlphabet,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := cfgFile
	if used == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			used = DefaultConfigFile
		}
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: LVALIGN_BENCH__TRIALS -> bench.trials
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			if _, local := f.Annotations[LocalOnly]; local {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Loaded{Config: &cfg, File: used}, nil
}

// listKeys are config keys whose env values are comma-separated lists.
var listKeys = map[string]bool{
	"bench.lengths": true,
}

// envKeyValue maps LVALIGN_BENCH__LENGTHS=50,100 to bench.lengths=[50 100].
func envKeyValue(name, value string) (string, interface{}) {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	key = strings.ReplaceAll(key, "__", ".")
	if !listKeys[key] {
		return key, value
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return key, items
}
