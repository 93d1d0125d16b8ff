package dataset

import (
	"errors"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/wandb/leetplot/internal/config"
	"github.com/wandb/leetplot/internal/observability/errs"
	"github.com/wandb/leetplot/internal/plot"
)

func decodeYAML(r io.Reader, kind config.Kind) ([]plot.Datum, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errs.Wrapf(err, "dataset: invalid document")
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		return decodeRows(root.Content, kind)
	case yaml.MappingNode:
		var data []plot.Datum
		for i := 0; i+1 < len(root.Content); i += 2 {
			key, value := root.Content[i], root.Content[i+1]
			var rowKind config.Kind
			switch key.Value {
			case "points":
				rowKind = config.KindPoint
			case "intervals", "pillars":
				rowKind = config.KindPillar
			default:
				return nil, errs.Newf("line %d: unknown section %q", key.Line, key.Value)
			}
			if value.Kind != yaml.SequenceNode {
				return nil, errs.Newf("line %d: section %q is not a list", value.Line, key.Value)
			}
			rows, err := decodeRows(value.Content, rowKind)
			if err != nil {
				return nil, err
			}
			data = append(data, rows...)
		}
		return data, nil
	default:
		return nil, errs.Newf("line %d: expected a list of rows", root.Line)
	}
}

func decodeRows(rows []*yaml.Node, kind config.Kind) ([]plot.Datum, error) {
	data := make([]plot.Datum, 0, len(rows))
	for _, row := range rows {
		d, err := decodeRow(row, kind)
		if err != nil {
			return nil, err
		}
		data = append(data, d)
	}
	return data, nil
}

func decodeRow(row *yaml.Node, kind config.Kind) (plot.Datum, error) {
	switch row.Kind {
	case yaml.MappingNode:
		return decodeRowMapping(row)
	case yaml.SequenceNode:
		return decodeRowSequence(row, kind)
	default:
		return nil, errs.Newf("line %d: row is not a list or mapping", row.Line)
	}
}

// decodeRowSequence reads [x, y], [[x1, x2], y] or, for pillars,
// [x1, x2, y].
func decodeRowSequence(row *yaml.Node, kind config.Kind) (plot.Datum, error) {
	items := row.Content
	switch {
	case len(items) == 2 && items[0].Kind == yaml.SequenceNode:
		span, err := numbers(items[0].Content)
		if err != nil {
			return nil, err
		}
		if len(span) != 2 {
			return nil, errs.Newf("line %d: interval span needs 2 values", row.Line)
		}
		y, err := number(items[1])
		if err != nil {
			return nil, err
		}
		return plot.ValueInterval{X1: span[0], X2: span[1], Y: y}, nil

	case len(items) == 2:
		v, err := numbers(items)
		if err != nil {
			return nil, err
		}
		return plot.ValuePoint{X: v[0], Y: v[1]}, nil

	case len(items) == 3 && kind == config.KindPillar:
		v, err := numbers(items)
		if err != nil {
			return nil, err
		}
		return plot.ValueInterval{X1: v[0], X2: v[1], Y: v[2]}, nil
	}
	return nil, errs.Newf("line %d: unexpected row of %d values for %s", row.Line, len(items), kind)
}

func decodeRowMapping(row *yaml.Node) (plot.Datum, error) {
	var fields struct {
		X  *float64 `yaml:"x"`
		X1 *float64 `yaml:"x1"`
		X2 *float64 `yaml:"x2"`
		Y  *float64 `yaml:"y"`
	}
	if err := row.Decode(&fields); err != nil {
		return nil, errs.Wrapf(err, "line %d: invalid row", row.Line)
	}

	switch {
	case fields.Y == nil:
		return nil, errs.Newf("line %d: row has no y", row.Line)
	case fields.X != nil:
		return plot.ValuePoint{X: *fields.X, Y: *fields.Y}, nil
	case fields.X1 != nil && fields.X2 != nil:
		return plot.ValueInterval{X1: *fields.X1, X2: *fields.X2, Y: *fields.Y}, nil
	}
	return nil, errs.Newf("line %d: row needs x or x1 and x2", row.Line)
}

func numbers(nodes []*yaml.Node) ([]float64, error) {
	out := make([]float64, len(nodes))
	for i, n := range nodes {
		v, err := number(n)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func number(n *yaml.Node) (float64, error) {
	var v float64
	if n.Kind != yaml.ScalarNode {
		return 0, errs.Newf("line %d: expected a number", n.Line)
	}
	if err := n.Decode(&v); err != nil {
		return 0, errs.Wrapf(err, "line %d: expected a number", n.Line)
	}
	return v, nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
