package cli

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/purefunctor/pixels/internal/domain"
	"github.com/purefunctor/pixels/internal/infra/config"
	"github.com/purefunctor/pixels/internal/infra/logger"
	"github.com/purefunctor/pixels/internal/infra/pixelsapi"
)

// appDeps bundles the wiring shared by every command that talks to the API.
type appDeps struct {
	cfg     domain.Config
	root    string
	client  *pixelsapi.Client
	cleanup func() error
}

func newAppDeps(cfgPath string, debug bool) (*appDeps, error) {
	// A .env next to the caller keeps the token out of the shell profile.
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	if cfgPath == "" {
		if found, ferr := config.Find(wd); ferr == nil {
			cfgPath = found
		}
	}

	cfg := domain.DefaultConfig()
	root := wd
	if cfgPath != "" {
		loaded, lerr := config.Load(cfgPath)
		if lerr != nil {
			return nil, lerr
		}
		cfg = loaded
		root = filepath.Dir(cfgPath)
	}

	cleanup, _ := logger.Setup(logger.Config{Root: root, Debug: debug})

	token, terr := config.ResolveToken(cfg)
	if terr != nil {
		if cleanup != nil {
			_ = cleanup()
		}
		return nil, terr
	}
	cfg.API.Token = token

	return &appDeps{
		cfg:     cfg,
		root:    root,
		client:  pixelsapi.New(cfg),
		cleanup: cleanup,
	}, nil
}

func (a *appDeps) close() {
	if a.cleanup != nil {
		_ = a.cleanup()
	}
}
