package render_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wandb/leetplot/cmd/leetplot/root/render"
	"github.com/wandb/leetplot/internal/cliutil"
	"github.com/wandb/leetplot/internal/observabilitytest"
)

const pointsCSV = "x,y\n1,2\n2,4\n3,1\n"

func newEnv(t *testing.T, files map[string]string) *cliutil.Env {
	t.Helper()

	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}

	env := cliutil.NewEnv(viper.New())
	env.Fs = fs
	env.Logger = observabilitytest.NewTestLogger(t)
	return env
}

func run(t *testing.T, env *cliutil.Env, args ...string) (string, error) {
	t.Helper()

	cmd := render.NewRenderCmd(env)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender_JSON(t *testing.T) {
	t.Parallel()

	env := newEnv(t, map[string]string{
		"/data/a.csv":  pointsCSV,
		"/data/b.yaml": "- [1, 1]\n- [4, 8]\n",
	})

	out, err := run(t, env, "/data/a.csv", "/data/b.yaml")
	require.NoError(t, err)

	var results []render.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)

	a, b := results[0], results[1]
	assert.Equal(t, "/data/a.csv", a.Path)
	assert.Equal(t, 3, a.Points)
	assert.Equal(t, 3.0, a.Frame.Domain.XMax)
	assert.Equal(t, 4.0, a.Frame.Domain.YMax)
	assert.Len(t, a.Frame.Items, 3)
	assert.Len(t, a.Frame.Axes, 2)
	assert.Nil(t, a.Frame.Info)
	require.NotNil(t, a.Density)
	assert.Greater(t, *a.Density, 0.0)

	assert.Equal(t, "/data/b.yaml", b.Path)
	assert.Equal(t, 8.0, b.Frame.Domain.YMax)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRender_SelectAllAndZoom(t *testing.T) {
	t.Parallel()

	env := newEnv(t, map[string]string{"/a.csv": pointsCSV})

	out, err := run(t, env, "/a.csv", "--select-all", "--zoom", "1", "--format", "yaml")
	require.NoError(t, err)

	var results []render.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)

	frame := results[0].Frame
	assert.Less(t, frame.Domain.XMax, 3.0)
	assert.Less(t, frame.Domain.YMax, 4.0)
	require.NotNil(t, frame.Info)
	assert.NotEmpty(t, frame.Info.Lines)
	for _, item := range frame.Items {
		assert.True(t, item.Active)
	}
}

func TestRender_Template(t *testing.T) {
	t.Parallel()

	env := newEnv(t, map[string]string{"/a.csv": pointsCSV})

	out, err := run(t, env, "/a.csv", "--template", "{{range .}}{{.points}} {{.frame.domain.xMax}}{{end}}")
	require.NoError(t, err)
	assert.Equal(t, "3 3\n", out)
}

func TestRender_Overrides(t *testing.T) {
	t.Parallel()

	env := newEnv(t, map[string]string{"/a.csv": "0,1,2\n3,4,5\n"})

	out, err := run(t, env, "/a.csv", "--set", "kind=pillar", "--set", "x_steps=2")
	require.NoError(t, err)

	var results []render.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Len(t, results[0].Frame.XDivides, 2)
	for _, item := range results[0].Frame.Items {
		assert.EqualValues(t, "rect", item.Kind)
	}
}

func TestRender_Text(t *testing.T) {
	t.Parallel()

	env := newEnv(t, map[string]string{"/a.csv": pointsCSV})

	out, err := run(t, env, "/a.csv", "--text", "--columns", "40", "--rows", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "/a.csv\n")
	assert.Contains(t, out, "└")
	assert.Contains(t, out, "●")
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"/missing.csv"}},
		{"unknown format", []string{"/a.txt"}},
		{"all zero", []string{"/zero.csv"}},
		{"invalid override", []string{"/a.csv", "--set", "colour=red"}},
		{"text too small", []string{"/a.csv", "--text", "--columns", "5"}},
		{"unknown output format", []string{"/a.csv", "--format", "xml"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newEnv(t, map[string]string{
				"/a.csv":    pointsCSV,
				"/a.txt":    "1 2",
				"/zero.csv": "0,0\n",
			})

			_, err := run(t, env, tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestRender_ZoomedToZeroDomain(t *testing.T) {
	t.Parallel()

	env := newEnv(t, map[string]string{"/a.csv": "0,0\n1,2\n2,4\n3,1\n"})

	out, err := run(t, env, "/a.csv", "--zoom", "30")
	require.NoError(t, err)

	var results []render.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)

	r := results[0]
	assert.Zero(t, r.Frame.Domain.XMax)
	assert.Zero(t, r.Frame.Domain.YMax)
	require.Len(t, r.Frame.Items, 1)
	assert.False(t, r.Frame.Items[0].Valid)
	assert.Equal(t, 1, r.Unplaced)
	assert.Nil(t, r.Density)
}
