package tui

import "github.com/charmbracelet/lipgloss"

// Layout constants.
const (
	StatusBarHeight  = 1
	StatusBarPadding = 1
	MinChartWidth    = 20
	MinChartHeight   = 6
)

const accentColor = lipgloss.Color("#FCBC32")

var (
	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	milestoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E281FE"))

	activeItemStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	connectorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED9FBB"))

	referenceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	selectionStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#2B3038"}).
			Background(lipgloss.AdaptiveColor{Light: "#4ECDC4", Dark: "#E1F7FA"}).
			Padding(0, StatusBarPadding)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	helpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Width(22)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(accentColor).
				MarginTop(1)

	helpContentStyle = lipgloss.NewStyle().
				MarginLeft(2).
				MarginTop(1)
)
