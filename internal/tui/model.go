// Package tui is the interactive terminal chart viewer.
package tui

import (
	"fmt"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wandb/leetplot/internal/observability"
	"github.com/wandb/leetplot/internal/plot"
)

// Loader reads a dataset file.
type Loader interface {
	Load(path string) ([]plot.Datum, error)
}

// Params configures a Model.
type Params struct {
	// Path is the dataset file to show.
	Path string

	Loader  Loader
	Options plot.Options

	// Reloader delivers file changes. Nil disables live reload.
	Reloader *Reloader

	Logger *observability.CoreLogger
}

// Model is the chart viewer.
//
// Implements tea.Model.
type Model struct {
	path     string
	loader   Loader
	reloader *Reloader
	options  plot.Options

	chart  *plot.Chart
	keyMap map[string]func(*Model, tea.KeyMsg) tea.Cmd
	help   *HelpModel

	width, height int

	isLoading bool
	loadErr   error
	loads     int

	// pressed is true between a left button press and its release.
	pressed bool

	logger *observability.CoreLogger
}

func NewModel(params Params) *Model {
	logger := params.Logger
	if logger == nil {
		logger = observability.NewNoOpLogger()
	}
	logger.Info(fmt.Sprintf("model: creating model for %s", params.Path))

	return &Model{
		path:      params.Path,
		loader:    params.Loader,
		reloader:  params.Reloader,
		options:   params.Options,
		chart:     plot.NewChart(CellOptions(params.Options, 0, 0), CellMeasurer, logger),
		keyMap:    buildKeyMap(ChartKeyBindings()),
		help:      NewHelp(),
		isLoading: true,
		logger:    logger,
	}
}

// Init implements tea.Model.Init.
func (m *Model) Init() tea.Cmd {
	m.logger.Debug("model: Init called")
	return tea.Batch(
		tea.SetWindowTitle("leetplot"),
		m.loadCmd(),
		m.startReloader(),
	)
}

// Update implements tea.Model.Update.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer m.logPanic("Update")

	if handled, cmd := m.handleHelp(msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m, m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.resizeChart()
		return m, nil

	case DataLoadedMsg:
		m.handleDataLoaded(msg)
		return m, nil

	case FileChangedMsg:
		m.logger.Debug("model: dataset changed, reloading")
		return m, tea.Batch(m.loadCmd(), m.reloader.WaitForMsg())

	case reloadTickMsg:
		return m, tea.Batch(
			tea.Tick(reloadInterval, func(time.Time) tea.Msg { return reloadFlushMsg{} }),
			m.reloader.WaitForMsg(),
		)

	case reloadFlushMsg:
		m.reloader.Flush()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.View.
func (m *Model) View() string {
	defer m.logPanic("View")

	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.help.IsActive() {
		return lipgloss.JoinVertical(lipgloss.Left, m.help.View(), m.renderStatusBar())
	}

	var body string
	w, h := m.chartSize()
	switch {
	case m.isLoading:
		body = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, "Loading data...")
	case m.loadErr != nil && len(m.chart.Data()) == 0:
		body = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
			errorStyle.Render(m.loadErr.Error()))
	case w < MinChartWidth || h < MinChartHeight:
		body = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, "Window too small")
	default:
		body = RenderFrame(m.chart.Frame(), w, h)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

// Chart returns the chart shown by the model.
func (m *Model) Chart() *plot.Chart {
	return m.chart
}

// Finish releases the resources held by the model.
func (m *Model) Finish() {
	m.reloader.Finish()
}

// chartSize is the size of the chart area in cells.
func (m *Model) chartSize() (int, int) {
	return m.width, max(m.height-StatusBarHeight, 0)
}

func (m *Model) resizeChart() {
	w, h := m.chartSize()
	m.chart.Resize(float64(w), float64(h))
}

func (m *Model) loadCmd() tea.Cmd {
	path, loader := m.path, m.loader
	if loader == nil {
		return nil
	}
	return func() tea.Msg {
		data, err := loader.Load(path)
		return DataLoadedMsg{Path: path, Data: data, Err: err}
	}
}

func (m *Model) startReloader() tea.Cmd {
	if m.reloader == nil {
		return nil
	}
	if err := m.reloader.Start(m.path); err != nil {
		return nil
	}
	return m.reloader.WaitForMsg()
}

func (m *Model) handleDataLoaded(msg DataLoadedMsg) {
	m.isLoading = false
	if msg.Err != nil {
		// Keep showing the last good data.
		m.loadErr = msg.Err
		m.logger.CaptureError(msg.Err)
		return
	}

	m.loadErr = nil
	m.loads++
	m.chart.SetData(msg.Data)
	m.logger.Debug(fmt.Sprintf("model: loaded %d items", len(msg.Data)))
}

func (m *Model) logPanic(context string) {
	if r := recover(); r != nil {
		m.logger.CaptureError(fmt.Errorf(
			"PANIC in %s: %v\nStack trace:\n%s", context, r, debug.Stack()))
		panic(r)
	}
}
