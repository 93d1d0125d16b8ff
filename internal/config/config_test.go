package config_test

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandb/leetplot/internal/config"
	"github.com/wandb/leetplot/internal/plot"
)

func readYAML(t *testing.T, content string) *viper.Viper {
	t.Helper()

	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(content)))
	return v
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, config.KindPoint, cfg.Kind)
	assert.Equal(t, plot.DefaultOptions(), cfg.ChartOptions())
}

func TestLoad_FromYAML(t *testing.T) {
	t.Parallel()

	v := readYAML(t, `
kind: pillar
width: 800
x_steps: 10
y_steps: 0
x_precision: 42
x_max_value: 7.5
x_milestones: divides
y_milestones: [1, 2.5]
connect_points: true
`)

	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, config.KindPillar, cfg.Kind)
	opts := cfg.ChartOptions()
	assert.Equal(t, 800.0, opts.Width)
	assert.Equal(t, 10, opts.XSteps)
	assert.Equal(t, config.MinSteps, opts.YSteps)
	assert.Equal(t, config.MaxPrecision, opts.XPrecision)
	require.NotNil(t, opts.XMaxValue)
	assert.Equal(t, 7.5, *opts.XMaxValue)
	assert.Nil(t, opts.YMaxValue)
	assert.Equal(t, plot.MilestoneSource{Mode: plot.MilestonesDivides}, opts.XMilestones)
	assert.Equal(t,
		plot.MilestoneSource{Mode: plot.MilestonesExplicit, Values: []float64{1, 2.5}},
		opts.YMilestones)
	assert.True(t, opts.ConnectPoints)
}

func TestLoad_RejectsUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := config.Load(readYAML(t, "kind: bubble\n"))
	assert.ErrorContains(t, err, "unknown kind")
}

func TestLoad_RejectsBadMilestones(t *testing.T) {
	t.Parallel()

	_, err := config.Load(readYAML(t, "x_milestones: sometimes\n"))
	assert.ErrorContains(t, err, "x_milestones")
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("LEETPLOT_Y_STEPS", "7")
	t.Setenv("LEETPLOT_Y_MAX_VALUE", "12")
	t.Setenv("LEETPLOT_X_MILESTONES", "0.5, 1")

	cfg, err := config.Load(viper.New())
	require.NoError(t, err)

	opts := cfg.ChartOptions()
	assert.Equal(t, 7, opts.YSteps)
	require.NotNil(t, opts.YMaxValue)
	assert.Equal(t, 12.0, *opts.YMaxValue)
	assert.Equal(t, []float64{0.5, 1}, opts.XMilestones.Values)
}

func TestParseMilestones(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     any
		want    plot.MilestoneSource
		wantErr bool
	}{
		{"absent", nil, plot.MilestoneSource{}, false},
		{"none", "none", plot.MilestoneSource{}, false},
		{"values", "Values", plot.MilestoneSource{Mode: plot.MilestonesValues}, false},
		{"divides", "divides", plot.MilestoneSource{Mode: plot.MilestonesDivides}, false},
		{
			"list",
			[]any{1, 2.5, "3"},
			plot.MilestoneSource{Mode: plot.MilestonesExplicit, Values: []float64{1, 2.5, 3}},
			false,
		},
		{"bad string", "often", plot.MilestoneSource{}, true},
		{"bad item", []any{true}, plot.MilestoneSource{}, true},
		{"bad type", 3, plot.MilestoneSource{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := config.ParseMilestones(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestKeys(t *testing.T) {
	t.Parallel()

	keys := config.Keys()
	assert.Contains(t, keys, "kind")
	assert.Contains(t, keys, "x_steps")
	assert.Contains(t, keys, "y_milestones")
	assert.IsIncreasing(t, keys)
}
