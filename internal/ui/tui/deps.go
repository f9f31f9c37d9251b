package tui

import (
	"log/slog"
	"time"

	"github.com/purefunctor/pixels/internal/ports"
)

// Deps carries everything the watch screen needs.
type Deps struct {
	API    ports.CanvasAPI
	Limits ports.LimitReporter

	// Interval between canvas refreshes.
	Interval time.Duration

	Logger *slog.Logger
}
