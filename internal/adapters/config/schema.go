package config

// Prunefile represents the structure of the pyprune.yaml configuration file.
type Prunefile struct {
	Version   string       `yaml:"version"`
	BatchSize *int         `yaml:"batch_size"`
	Protected ProtectedDTO `yaml:"protected"`
	Toolchain ToolchainDTO `yaml:"toolchain"`
}

// ProtectedDTO represents the protection rules in the configuration.
type ProtectedDTO struct {
	// InheritDefaults keeps the built-in table when unset or true.
	InheritDefaults *bool    `yaml:"inherit_defaults"`
	Names           []string `yaml:"names"`
	Prefixes        []string `yaml:"prefixes"`
}

// ToolchainDTO represents the external commands in the configuration.
type ToolchainDTO struct {
	Pip    []string `yaml:"pip"`
	Python []string `yaml:"python"`
}
