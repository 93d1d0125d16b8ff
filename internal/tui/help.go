package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wandb/leetplot/internal/version"
)

// HelpEntry is a single line of the help screen.
type HelpEntry struct {
	Key         string
	Description string
}

var blankLine = HelpEntry{}

// HelpModel is the help screen.
type HelpModel struct {
	viewport viewport.Model
	active   bool
	width    int
	height   int
}

func NewHelp() *HelpModel {
	return &HelpModel{viewport: viewport.New(80, 20)}
}

func (h *HelpModel) content() string {
	entries := []HelpEntry{
		{Key: "leetplot", Description: version.Version},
		blankLine,
	}
	entries = append(entries, helpEntriesFromCategories(ChartKeyBindings())...)

	var sb strings.Builder
	for _, entry := range entries {
		switch {
		case entry.Key == "":
			sb.WriteString("\n")
		case entry.Description == "":
			sb.WriteString(helpSectionStyle.Render(entry.Key) + "\n")
		default:
			sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
				helpKeyStyle.Render(entry.Key),
				helpDescStyle.Render(entry.Description)) + "\n")
		}
	}
	return sb.String()
}

func helpEntriesFromCategories[T any](categories []BindingCategory[T]) []HelpEntry {
	var entries []HelpEntry
	for _, category := range categories {
		entries = append(entries, HelpEntry{Key: category.Name})
		for _, binding := range category.Bindings {
			entries = append(entries, HelpEntry{
				Key:         strings.Join(binding.Keys, ", "),
				Description: binding.Description,
			})
		}
	}
	return entries
}

// SetSize updates the size of the help screen.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = max(height-StatusBarHeight, 0)
	h.viewport.Width = width
	h.viewport.Height = h.height
	if h.active {
		h.viewport.SetContent(h.content())
	}
}

// Toggle shows or hides the help screen.
func (h *HelpModel) Toggle() {
	h.active = !h.active
	if h.active {
		h.viewport.GotoTop()
		h.viewport.SetContent(h.content())
	}
}

func (h *HelpModel) IsActive() bool {
	return h.active
}

// Update handles messages while the help screen is shown.
func (h *HelpModel) Update(msg tea.Msg) (*HelpModel, tea.Cmd) {
	if !h.active {
		return h, nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "h", "?", "esc":
			h.Toggle()
			return h, nil
		case "q", "ctrl+c":
			return h, tea.Quit
		default:
			h.viewport, cmd = h.viewport.Update(msg)
		}
	case tea.MouseMsg:
		h.viewport, cmd = h.viewport.Update(msg)
	}
	return h, cmd
}

func (h *HelpModel) View() string {
	if !h.active {
		return ""
	}
	return lipgloss.Place(h.width, h.height, lipgloss.Left, lipgloss.Top,
		helpContentStyle.Render(h.viewport.View()))
}
