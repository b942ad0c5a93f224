package domain

import "slices"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "pyprune.yaml"

	// ConfigVersion is the only supported configuration schema version.
	ConfigVersion = "1"

	// DefaultBatchSize is the number of packages removed per batch.
	DefaultBatchSize = 10

	// DefaultSampleSize is the number of packages the environment report lists.
	DefaultSampleSize = 10

	// MinJSONListingVersion is the first pip release supporting "list --format=json".
	MinJSONListingVersion = "9.0"
)

// DefaultPipCommand is the command used to invoke the package manager.
var DefaultPipCommand = []string{"pip"}

// DefaultPythonCommand is the command used to invoke the interpreter.
var DefaultPythonCommand = []string{"python3"}

// Toolchain names the commands for the package manager and the interpreter.
type Toolchain struct {
	Pip    []string
	Python []string
}

// Config is the resolved runtime configuration.
type Config struct {
	// Source is the file the configuration was read from, empty for built-in defaults.
	Source string

	BatchSize  int
	Protection ProtectionRules
	Toolchain  Toolchain
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:  DefaultBatchSize,
		Protection: DefaultProtectionRules(),
		Toolchain: Toolchain{
			Pip:    slices.Clone(DefaultPipCommand),
			Python: slices.Clone(DefaultPythonCommand),
		},
	}
}
