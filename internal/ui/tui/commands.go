package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/purefunctor/pixels/internal/usecase"
)

func fetchCanvasCmd(deps Deps) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		canvas, err := usecase.NewFetchCanvas(deps.API).Execute(ctx)
		if err != nil {
			return fetchErrMsg{err: err}
		}
		return canvasMsg{canvas: canvas, at: time.Now()}
	}
}

func scheduleRefreshCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}
