package tui

import tea "github.com/charmbracelet/bubbletea"

// KeyBinding defines a key binding for a particular target type.
//
// A binding without a Handler is listed in the help screen only.
type KeyBinding[T any] struct {
	Keys        []string
	Description string
	Handler     func(*T, tea.KeyMsg) tea.Cmd
}

// BindingCategory groups related key bindings for the help screen.
type BindingCategory[T any] struct {
	Name     string
	Bindings []KeyBinding[T]
}

// ChartKeyBindings returns the key bindings of the chart view.
func ChartKeyBindings() []BindingCategory[Model] {
	return []BindingCategory[Model]{
		{
			Name: "General",
			Bindings: []KeyBinding[Model]{
				{
					Keys:        []string{"h", "?"},
					Description: "Toggle this help screen",
				},
				{
					Keys:        []string{"q", "ctrl+c"},
					Description: "Quit",
					Handler:     (*Model).handleQuit,
				},
				{
					Keys:        []string{"alt+r"},
					Description: "Reload the dataset",
					Handler:     (*Model).handleReload,
				},
			},
		},
		{
			Name: "Selection",
			Bindings: []KeyBinding[Model]{
				{
					Keys:        []string{"ctrl+a"},
					Description: "Select all visible items",
					Handler:     (*Model).handleSelectAll,
				},
				{
					Keys:        []string{"esc"},
					Description: "Clear the selection",
					Handler:     (*Model).handleClearSelection,
				},
			},
		},
		{
			Name: "Zoom",
			Bindings: []KeyBinding[Model]{
				{
					Keys:        []string{"+", "="},
					Description: "Zoom in at the chart center",
					Handler:     (*Model).handleZoomIn,
				},
				{
					Keys:        []string{"-"},
					Description: "Zoom out at the chart center",
					Handler:     (*Model).handleZoomOut,
				},
				{
					Keys:        []string{"r"},
					Description: "Reset zoom",
					Handler:     (*Model).handleResetZoom,
				},
			},
		},
		mouseCategory[Model](),
	}
}

func mouseCategory[T any]() BindingCategory[T] {
	return BindingCategory[T]{
		Name: "Mouse",
		Bindings: []KeyBinding[T]{
			{
				Keys:        []string{"wheel"},
				Description: "Zoom in/out at the pointer",
			},
			{
				Keys:        []string{"click"},
				Description: "Select an item, or clear on the background",
			},
			{
				Keys:        []string{"ctrl+click"},
				Description: "Toggle an item in the selection",
			},
			{
				Keys:        []string{"drag"},
				Description: "Select items inside a rectangle",
			},
		},
	}
}

func buildKeyMap[T any](categories []BindingCategory[T]) map[string]func(*T, tea.KeyMsg) tea.Cmd {
	keyMap := make(map[string]func(*T, tea.KeyMsg) tea.Cmd)
	for _, category := range categories {
		for _, binding := range category.Bindings {
			if binding.Handler == nil {
				continue
			}
			for _, key := range binding.Keys {
				keyMap[normalizeKey(key)] = binding.Handler
			}
		}
	}
	return keyMap
}

// normalizeKey maps Bubble Tea's KeyMsg.String() to the names used in
// the key map.
func normalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
