package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wandb/leetplot/internal/plot"
)

// handleHelp gives the help screen the first look at every message.
func (m *Model) handleHelp(msg tea.Msg) (bool, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && !m.help.IsActive() {
		switch km.String() {
		case "h", "?":
			m.help.Toggle()
			return true, nil
		}
	}

	if !m.help.IsActive() {
		return false, nil
	}
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		help, cmd := m.help.Update(msg)
		m.help = help
		return true, cmd
	}
	return false, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if handler, ok := m.keyMap[normalizeKey(msg.String())]; ok {
		return handler(m, msg)
	}
	return nil
}

func (m *Model) handleQuit(tea.KeyMsg) tea.Cmd {
	m.Finish()
	return tea.Quit
}

func (m *Model) handleReload(tea.KeyMsg) tea.Cmd {
	return m.loadCmd()
}

func (m *Model) handleSelectAll(tea.KeyMsg) tea.Cmd {
	m.chart.SelectAll()
	return nil
}

func (m *Model) handleClearSelection(tea.KeyMsg) tea.Cmd {
	m.chart.ClearSelection()
	m.pressed = false
	return nil
}

func (m *Model) handleZoomIn(tea.KeyMsg) tea.Cmd {
	m.zoomAtCenter(-1)
	return nil
}

func (m *Model) handleZoomOut(tea.KeyMsg) tea.Cmd {
	m.zoomAtCenter(1)
	return nil
}

func (m *Model) handleResetZoom(tea.KeyMsg) tea.Cmd {
	m.chart.ResetZoom()
	return nil
}

func (m *Model) zoomAtCenter(deltaY float64) {
	grid := m.chart.Layout().Grid()
	m.chart.Wheel(deltaY, (grid.X1+grid.X2)/2, (grid.Y1+grid.Y2)/2)
}

// handleMouseMsg routes mouse events over the chart area to the chart.
//
// Cell (x, y) is passed to the chart as the point at the cell's center.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	event := tea.MouseEvent(msg)
	w, h := m.chartSize()
	inside := msg.X >= 0 && msg.X < w && msg.Y >= 0 && msg.Y < h
	x, y := float64(msg.X)+0.5, float64(msg.Y)+0.5

	switch {
	case event.IsWheel():
		if !inside {
			return nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.chart.Wheel(-1, x, y)
		case tea.MouseButtonWheelDown:
			m.chart.Wheel(1, x, y)
		}

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !inside {
			return nil
		}
		m.pressed = true
		m.chart.PointerDown(x, y)

	case msg.Action == tea.MouseActionMotion:
		switch {
		case m.pressed:
			m.chart.PointerMove(x, y)
		case inside:
			m.chart.Hover(x, y)
		default:
			m.chart.HoverEnd()
		}

	case msg.Action == tea.MouseActionRelease:
		if !m.pressed {
			return nil
		}
		m.pressed = false
		m.chart.PointerUp(x, y, msg.Ctrl)
	}

	return nil
}

func (m *Model) renderStatusBar() string {
	statusText := m.buildStatusText()
	helpText := "h: help"

	innerWidth := max(m.width-2*StatusBarPadding, 0)
	spaceForHelp := max(innerWidth-lipgloss.Width(statusText), 0)
	rightAligned := lipgloss.PlaceHorizontal(spaceForHelp, lipgloss.Right, helpText)

	return statusBarStyle.
		Width(m.width).
		MaxWidth(m.width).
		Render(statusText + rightAligned)
}

func (m *Model) buildStatusText() string {
	switch {
	case m.isLoading:
		return fmt.Sprintf("Loading %s...", m.path)
	case m.loadErr != nil:
		return fmt.Sprintf("%s • reload failed: %v", m.path, m.loadErr)
	}

	d := m.chart.Domain()
	text := fmt.Sprintf("%s • %d/%d items • x ≤ %s, y ≤ %s",
		m.path,
		len(m.chart.Items().Items),
		len(m.chart.Data()),
		plot.FormatFixed(d.XMax, m.options.XPrecision),
		plot.FormatFixed(d.YMax, m.options.YPrecision))
	if m.chart.IsZoomed() {
		text += " (zoomed)"
	}

	switch m.chart.SelectionState() {
	case plot.StateSingle:
		text += " • 1 selected"
	case plot.StateMultiple:
		text += fmt.Sprintf(" • %d selected", len(m.chart.Active()))
	}
	return text
}
