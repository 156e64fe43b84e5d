// Package config loads lvalign configuration from defaults, a YAML file,
// LVALIGN_* environment variables and command-line flags.
package config

// Config holds all CLI configuration.
type Config struct {
	Costs     string      `koanf:"costs"`
	Verbose   bool        `koanf:"verbose"`
	LogFormat string      `koanf:"log_format"`
	Align     AlignConfig `koanf:"align"`
	Check     CheckConfig `koanf:"check"`
	Bench     BenchConfig `koanf:"bench"`
}

// AlignConfig configures the align command.
type AlignConfig struct {
	Input  string `koanf:"input"`
	Output string `koanf:"output"`
}

// CheckConfig configures the check command.
type CheckConfig struct {
	Report   string `koanf:"report"`
	Solution string `koanf:"solution"`
	Results  string `koanf:"results"`
}

// BenchConfig configures the bench command.
type BenchConfig struct {
	Lengths  []int  `koanf:"lengths"`
	Trials   int    `koanf:"trials"`
	Seed     int64  `koanf:"seed"`
	Workers  int    `koanf:"workers"`
	Alphabet string `koanf:"alphabet"`
}

// Default configuration values.
const (
	DefaultConfigFile = "lvalign.yaml"
	DefaultCosts      = "imp2cost.txt"
	DefaultInput      = "imp2input.txt"
	DefaultOutput     = "imp2output.txt"
	DefaultResults    = "cost_check_results.txt"
	DefaultLogFormat  = "text"
	DefaultTrials     = 10
	DefaultSeed       = 1
	DefaultWorkers    = 1
	DefaultAlphabet   = "AGTC"

	// EnvPrefix prefixes every environment override. Nested keys use "__":
	// LVALIGN_BENCH__TRIALS -> bench.trials.
	EnvPrefix = "LVALIGN_"
)

// DefaultLengths are the bench input sizes.
var DefaultLengths = []int{500, 1000, 2000, 4000, 5000}
