package dataset_test

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandb/leetplot/internal/config"
	"github.com/wandb/leetplot/internal/dataset"
	"github.com/wandb/leetplot/internal/plot"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestLoad_YAMLRows(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/data/points.yaml", `
- [1, 2]
- [[0.5, 1.5], 3]
- {x: 2, y: 4}
- {x1: 3, x2: 4, y: 1}
`)

	data, err := dataset.NewLoader(fs, config.KindPoint).Load("/data/points.yaml")
	require.NoError(t, err)
	assert.Equal(t, []plot.Datum{
		plot.ValuePoint{X: 1, Y: 2},
		plot.ValueInterval{X1: 0.5, X2: 1.5, Y: 3},
		plot.ValuePoint{X: 2, Y: 4},
		plot.ValueInterval{X1: 3, X2: 4, Y: 1},
	}, data)
}

func TestLoad_JSONSections(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "chart.json", `{"points": [[1, 2]], "intervals": [[0, 1, 5]]}`)

	data, err := dataset.NewLoader(fs, config.KindPoint).Load("chart.json")
	require.NoError(t, err)
	assert.Equal(t, []plot.Datum{
		plot.ValuePoint{X: 1, Y: 2},
		plot.ValueInterval{X1: 0, X2: 1, Y: 5},
	}, data)
}

func TestLoad_CSV(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "points.csv", "x,y\n1,2\n# skipped\n2, 4.5\n")
	writeFile(t, fs, "pillars.csv", "0,1,2\n1,3,4\n")

	points, err := dataset.NewLoader(fs, config.KindPoint).Load("points.csv")
	require.NoError(t, err)
	assert.Equal(t, []plot.Datum{
		plot.ValuePoint{X: 1, Y: 2},
		plot.ValuePoint{X: 2, Y: 4.5},
	}, points)

	pillars, err := dataset.NewLoader(fs, config.KindPillar).Load("pillars.csv")
	require.NoError(t, err)
	assert.Equal(t, []plot.Datum{
		plot.ValueInterval{X1: 0, X2: 1, Y: 2},
		plot.ValueInterval{X1: 1, X2: 3, Y: 4},
	}, pillars)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "inverted.yaml", "- [[3, 1], 2]\n")
	writeFile(t, fs, "nan.yaml", "- [.nan, 2]\n")
	writeFile(t, fs, "short.csv", "1,2\n3\n")
	writeFile(t, fs, "text.csv", "x,y\n1,two\n")
	writeFile(t, fs, "scalar.yaml", "42\n")
	writeFile(t, fs, "data.txt", "1,2\n")

	loader := dataset.NewLoader(fs, config.KindPoint)
	tests := []struct {
		path string
		want string
	}{
		{"inverted.yaml", "row 0: interval start 3 after end 1"},
		{"nan.yaml", "row 0: non-finite value"},
		{"short.csv", "expected 2 columns"},
		{"text.csv", "line 2"},
		{"scalar.yaml", "expected a list of rows"},
		{"data.txt", "unsupported file type"},
		{"missing.yaml", "failed to open"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()

			_, err := loader.Load(tc.path)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestDecode_EmptyDocument(t *testing.T) {
	t.Parallel()

	data, err := dataset.Decode(strings.NewReader(""), dataset.FormatYAML, config.KindPoint)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, dataset.Validate([]plot.Datum{
		plot.ValueInterval{X1: 1, X2: 1, Y: 0},
	}))
	assert.Error(t, dataset.Validate([]plot.Datum{
		plot.ValuePoint{X: 0, Y: 1},
		plot.ValueInterval{X1: 2, X2: 1, Y: 0},
	}))
}
