package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/wandb/leetplot/internal/config"
	"github.com/wandb/leetplot/internal/observability/errs"
	"github.com/wandb/leetplot/internal/plot"
)

func decodeCSV(r io.Reader, kind config.Kind) ([]plot.Datum, error) {
	width := 2
	if kind == config.KindPillar {
		width = 3
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var data []plot.Datum
	for first := true; ; first = false {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return data, nil
		}
		if err != nil {
			return nil, errs.Wrapf(err, "dataset: invalid csv")
		}
		line, _ := cr.FieldPos(0)
		if len(record) < width {
			return nil, errs.Newf("line %d: expected %d columns, got %d", line, width, len(record))
		}

		values, err := parseFields(record[:width])
		if err != nil {
			if first {
				continue // header
			}
			return nil, errs.Wrapf(err, "line %d", line)
		}

		if width == 3 {
			data = append(data, plot.ValueInterval{X1: values[0], X2: values[1], Y: values[2]})
		} else {
			data = append(data, plot.ValuePoint{X: values[0], Y: values[1]})
		}
	}
}

func parseFields(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
