package cliutil_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandb/leetplot/internal/cliutil"
)

type sample struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

func output(t *testing.T, v any, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cliutil.HandleOutput(cmd, v)
		},
	}
	cliutil.AddOutputFlags(cmd)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestHandleOutput(t *testing.T) {
	t.Parallel()

	v := sample{Name: "loss", Value: 1.5}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"json by default", nil, "{\n  \"name\": \"loss\",\n  \"value\": 1.5\n}\n"},
		{"yaml", []string{"--format", "yaml"}, "name: loss\nvalue: 1.5\n"},
		{"template uses json keys", []string{"--template", "{{.name}}={{.value}}"}, "loss=1.5\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := output(t, v, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestHandleOutput_Errors(t *testing.T) {
	t.Parallel()

	_, err := output(t, sample{}, "--format", "toml")
	assert.ErrorContains(t, err, `unknown output format "toml"`)

	_, err = output(t, sample{}, "--template", "{{.name")
	assert.ErrorContains(t, err, "failed to parse template")
}

func TestApplyOverrides(t *testing.T) {
	t.Parallel()

	v := viper.New()
	err := cliutil.ApplyOverrides(v, map[string]string{
		"x-steps":        "10",
		"connect_points": "true",
		"kind":           "pillar",
	}, []string{"connect_points", "kind", "x_steps"})
	require.NoError(t, err)

	assert.Equal(t, 10.0, v.Get("x_steps"))
	assert.Equal(t, true, v.Get("connect_points"))
	assert.Equal(t, "pillar", v.Get("kind"))

	err = cliutil.ApplyOverrides(v, map[string]string{"color": "red"}, []string{"kind"})
	assert.ErrorContains(t, err, "invalid config key: color")
}

func TestGetString(t *testing.T) {
	t.Setenv("LEETPLOT_TEST_VALUE", "from-env")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("value", "", "")

	assert.Equal(t, "from-env", cliutil.GetString(cmd, "value", "LEETPLOT_TEST_VALUE"))

	require.NoError(t, cmd.Flags().Set("value", "from-flag"))
	assert.Equal(t, "from-flag", cliutil.GetString(cmd, "value", "LEETPLOT_TEST_VALUE"))
}
