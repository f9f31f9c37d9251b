package domain

import "time"

// DefaultBaseURL is the public Pixels API instance.
const DefaultBaseURL = "https://pixels.pythondiscord.com"

// Config represents the client configuration loaded from pixels.yaml.
type Config struct {
	API   APIConfig
	Paths PathsConfig
	Retry RetryConfig
}

type APIConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type PathsConfig struct {
	SnapshotsDir string
}

type RetryConfig struct {
	// MaxAttempts bounds how many times a single request is issued when the
	// API answers with a cooldown.
	MaxAttempts int
}

// DefaultConfig provides sane defaults if pixels.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: 30 * time.Second,
		},
		Paths: PathsConfig{
			SnapshotsDir: "snapshots",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
		},
	}
}
