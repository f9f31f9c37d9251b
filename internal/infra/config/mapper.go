package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/purefunctor/pixels/internal/domain"
)

// TokenEnvVar is the environment variable consulted for the API token.
const TokenEnvVar = "PIXELS_TOKEN"

// MapConfig validates a YAML config and fills defaults for missing fields.
func MapConfig(path string, dto YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if base := strings.TrimSpace(dto.API.BaseURL); base != "" {
		u, err := url.Parse(base)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return domain.Config{}, invalidField(path, "api.base_url", fmt.Sprintf("not an absolute URL: %q", base))
		}
		cfg.API.BaseURL = strings.TrimRight(base, "/")
	}

	cfg.API.Token = strings.TrimSpace(dto.API.Token)

	if dto.API.TimeoutSeconds < 0 {
		return domain.Config{}, invalidField(path, "api.timeout_seconds", "must not be negative")
	}
	if dto.API.TimeoutSeconds > 0 {
		cfg.API.Timeout = time.Duration(dto.API.TimeoutSeconds) * time.Second
	}

	if dir := strings.TrimSpace(dto.Paths.SnapshotsDir); dir != "" {
		cfg.Paths.SnapshotsDir = dir
	}

	if dto.Retry.MaxAttempts < 0 {
		return domain.Config{}, invalidField(path, "retry.max_attempts", "must not be negative")
	}
	if dto.Retry.MaxAttempts > 0 {
		cfg.Retry.MaxAttempts = dto.Retry.MaxAttempts
	}

	return cfg, nil
}

// ResolveToken returns the API token, favoring the environment variable over
// the config file value.
func ResolveToken(cfg domain.Config) (string, error) {
	if tok := strings.TrimSpace(os.Getenv(TokenEnvVar)); tok != "" {
		return tok, nil
	}
	if cfg.API.Token != "" {
		return cfg.API.Token, nil
	}
	return "", &domain.OpError{
		Op:   "config.resolve_token",
		Kind: domain.KindAuth,
		Err:  fmt.Errorf("no API token: set %s or api.token in pixels.yaml: %w", TokenEnvVar, domain.ErrUnauthorized),
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
