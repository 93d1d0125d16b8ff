// Package dataset reads chart data from files.
//
// Three formats are understood, chosen by file extension:
//
//   - .yaml, .yml and .json: a sequence of rows, or a mapping with
//     "points" and "intervals" sequences. A row is [x, y], [[x1, x2], y],
//     {x, y} or {x1, x2, y}. A flat [x1, x2, y] row is an interval when
//     the kind is pillar.
//   - .csv: one row per datum, x,y for points and x1,x2,y for pillars.
//     A leading row that does not parse as numbers is a header.
package dataset

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/wandb/leetplot/internal/config"
	"github.com/wandb/leetplot/internal/observability/errs"
	"github.com/wandb/leetplot/internal/plot"
)

// Format is a dataset file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// FormatOf returns the format of the file at path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", errs.Newf("dataset: unsupported file type %q", filepath.Ext(path)).
			Attr(slog.String("path", path))
	}
}

// Loader reads datasets from a filesystem.
type Loader struct {
	fs   afero.Fs
	kind config.Kind
}

// NewLoader returns a loader reading from fs. A nil fs is the OS
// filesystem.
func NewLoader(fs afero.Fs, kind config.Kind) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if kind == "" {
		kind = config.KindPoint
	}
	return &Loader{fs: fs, kind: kind}
}

// Load reads and validates the dataset at path.
func (l *Loader) Load(path string) ([]plot.Datum, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := l.fs.Open(path)
	if err != nil {
		return nil, errs.Wrapf(err, "dataset: failed to open").
			Attr(slog.String("path", path))
	}
	defer func() { _ = f.Close() }()

	data, err := Decode(f, format, l.kind)
	if err != nil {
		return nil, errs.Bubblef(err, "dataset: %s", filepath.Base(path)).
			Attr(slog.String("path", path))
	}
	return data, nil
}

// Decode reads a dataset in the given format from r.
func Decode(r io.Reader, format Format, kind config.Kind) ([]plot.Datum, error) {
	var (
		data []plot.Datum
		err  error
	)
	switch format {
	case FormatYAML:
		data, err = decodeYAML(r, kind)
	case FormatCSV:
		data, err = decodeCSV(r, kind)
	default:
		return nil, errs.Newf("dataset: unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if err := Validate(data); err != nil {
		return nil, err
	}
	return data, nil
}

// Validate checks that all values are finite and that every interval
// has X1 <= X2.
func Validate(data []plot.Datum) error {
	for i, d := range data {
		switch v := d.(type) {
		case plot.ValuePoint:
			if !finite(v.X, v.Y) {
				return rowError(i, "non-finite value")
			}
		case plot.ValueInterval:
			if !finite(v.X1, v.X2, v.Y) {
				return rowError(i, "non-finite value")
			}
			if v.X1 > v.X2 {
				return rowError(i, "interval start %v after end %v", v.X1, v.X2)
			}
		}
	}
	return nil
}

func rowError(row int, format string, args ...any) *errs.Error {
	return errs.Newf("row %d: "+format, append([]any{row}, args...)...).
		Attr(slog.Int("row", row))
}
