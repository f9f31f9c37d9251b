package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/purefunctor/pixels/internal/domain"
)

// DefaultFileName is the config file searched for by Find.
const DefaultFileName = "pixels.yaml"

// Find locates a pixels.yaml by searching upward from startDir. It returns
// the config file path.
func Find(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "config.find",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "config.find",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If given a file path, start from its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, DefaultFileName)
		if _, err := os.Stat(cfgPath); err == nil {
			return cfgPath, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "config.find",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
