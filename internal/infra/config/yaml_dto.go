package config

type YAMLConfig struct {
	API   YAMLAPI   `yaml:"api"`
	Paths YAMLPaths `yaml:"paths"`
	Retry YAMLRetry `yaml:"retry"`
}

type YAMLAPI struct {
	BaseURL string `yaml:"base_url"`

	// Token may be set here for convenience; the PIXELS_TOKEN environment
	// variable takes precedence.
	Token string `yaml:"token"`

	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type YAMLPaths struct {
	SnapshotsDir string `yaml:"snapshots_dir"`
}

type YAMLRetry struct {
	MaxAttempts int `yaml:"max_attempts"`
}
