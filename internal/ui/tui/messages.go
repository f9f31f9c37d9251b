package tui

import (
	"time"

	"github.com/purefunctor/pixels/internal/domain"
)

type canvasMsg struct {
	canvas domain.Canvas
	at     time.Time
}

type fetchErrMsg struct {
	err error
}

type refreshMsg struct{}
