// Package tui implements the live canvas watch screen.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/purefunctor/pixels/internal/domain"
	"github.com/purefunctor/pixels/internal/ui/render"
)

const defaultInterval = 30 * time.Second

type model struct {
	theme Theme
	deps  Deps

	spin     spinner.Model
	fetching bool

	canvas    domain.Canvas
	hasCanvas bool
	fetchedAt time.Time
	err       error

	width  int
	height int
}

// Run starts the watch screen and blocks until the user quits.
func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Interval <= 0 {
		deps.Interval = defaultInterval
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	return model{
		theme:    DefaultTheme(),
		deps:     deps,
		spin:     s,
		fetching: true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, fetchCanvasCmd(m.deps))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			if !m.fetching {
				m.fetching = true
				return m, tea.Batch(m.spin.Tick, fetchCanvasCmd(m.deps))
			}
		}
		return m, nil

	case canvasMsg:
		m.canvas = msg.canvas
		m.hasCanvas = true
		m.fetchedAt = msg.at
		m.err = nil
		m.fetching = false
		if m.deps.Logger != nil {
			m.deps.Logger.Debug("watch.refreshed", "width", msg.canvas.Size().Width, "height", msg.canvas.Size().Height)
		}
		return m, scheduleRefreshCmd(m.deps.Interval)

	case fetchErrMsg:
		m.err = msg.err
		m.fetching = false
		if m.deps.Logger != nil {
			m.deps.Logger.Warn("watch.refresh_failed", "error", msg.err.Error())
		}
		return m, scheduleRefreshCmd(m.deps.Interval)

	case refreshMsg:
		m.fetching = true
		return m, tea.Batch(m.spin.Tick, fetchCanvasCmd(m.deps))

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	title := "Pixels live canvas"
	if m.fetching {
		title += " " + m.spin.View()
	}
	b.WriteString(m.theme.Title.Render(title))
	b.WriteByte('\n')

	if m.err != nil {
		b.WriteString(m.theme.Error.Render(fmt.Sprintf("refresh failed: %v", m.err)))
		b.WriteByte('\n')
	}

	if m.hasCanvas {
		maxWidth := m.width
		if maxWidth <= 0 {
			maxWidth = 80
		}
		b.WriteString(render.Canvas(m.canvas, maxWidth))
		b.WriteByte('\n')
		b.WriteString(m.theme.Status.Render(fmt.Sprintf(
			"%dx%d, fetched %s",
			m.canvas.Size().Width,
			m.canvas.Size().Height,
			m.fetchedAt.Format(time.Kitchen),
		)))
		b.WriteByte('\n')
	} else if m.err == nil {
		b.WriteString(m.theme.Status.Render("fetching canvas..."))
		b.WriteByte('\n')
	}

	if line := m.limitsLine(); line != "" {
		b.WriteString(m.theme.Status.Render(line))
		b.WriteByte('\n')
	}

	b.WriteString(m.theme.Help.Render("r refresh · q quit"))
	return b.String()
}

func (m model) limitsLine() string {
	if m.deps.Limits == nil {
		return ""
	}
	limits := m.deps.Limits.Limits()
	if len(limits) == 0 {
		return ""
	}

	endpoints := make([]string, 0, len(limits))
	for ep := range limits {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	parts := make([]string, 0, len(endpoints))
	for _, ep := range endpoints {
		l := limits[ep]
		if l.OnCooldown() {
			parts = append(parts, fmt.Sprintf("%s: cooldown %s", ep, l.Cooldown))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %d/%d", ep, l.Remaining, l.Limit))
	}
	return strings.Join(parts, "  ")
}
