package tui

import "github.com/wandb/leetplot/internal/plot"

// DataLoadedMsg carries the result of reading the dataset file.
type DataLoadedMsg struct {
	Path string
	Data []plot.Datum
	Err  error
}

// FileChangedMsg indicates that the dataset file has changed.
type FileChangedMsg struct{}

// reloadTickMsg reports a change held back by the reload rate limit.
type reloadTickMsg struct{}

// reloadFlushMsg fires when a held back reload may run.
type reloadFlushMsg struct{}
