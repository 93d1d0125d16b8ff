// Package config loads chart configuration from viper.
package config

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/wandb/leetplot/internal/observability/errs"
	"github.com/wandb/leetplot/internal/plot"
)

// EnvPrefix is the prefix of environment variables read by viper.
const EnvPrefix = "LEETPLOT"

// Step and precision limits applied by Normalize.
const (
	MinSteps, MaxSteps         = 1, 50
	MinPrecision, MaxPrecision = 0, 10
)

// Kind is how dataset rows are interpreted.
type Kind string

const (
	// KindPoint reads rows as (x, y) points.
	KindPoint Kind = "point"
	// KindPillar reads rows as (x1, x2, y) intervals.
	KindPillar Kind = "pillar"
)

// Config is the chart configuration.
type Config struct {
	Kind Kind `mapstructure:"kind"`

	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`

	XSteps int `mapstructure:"x_steps"`
	YSteps int `mapstructure:"y_steps"`

	DivideLength float64 `mapstructure:"divide_length"`
	Spacing      float64 `mapstructure:"spacing"`
	FontSize     float64 `mapstructure:"font_size"`
	InfoFontSize float64 `mapstructure:"info_font_size"`

	ZoomXStep float64 `mapstructure:"zoom_x_step"`
	ZoomYStep float64 `mapstructure:"zoom_y_step"`

	XPrecision     int `mapstructure:"x_precision"`
	YPrecision     int `mapstructure:"y_precision"`
	InfoXPrecision int `mapstructure:"info_x_precision"`
	InfoYPrecision int `mapstructure:"info_y_precision"`

	// XMaxValue and YMaxValue override the data maxima when set.
	XMaxValue *float64 `mapstructure:"x_max_value"`
	YMaxValue *float64 `mapstructure:"y_max_value"`

	// XMilestones and YMilestones are "values", "divides", a list of
	// numbers, or unset.
	XMilestones any `mapstructure:"x_milestones"`
	YMilestones any `mapstructure:"y_milestones"`

	PointRadius   float64 `mapstructure:"point_radius"`
	ConnectPoints bool    `mapstructure:"connect_points"`

	xMilestones plot.MilestoneSource
	yMilestones plot.MilestoneSource
}

// optionalKeys have no default and are bound to the environment
// explicitly so that Unmarshal sees them.
var optionalKeys = []string{
	"x_max_value",
	"y_max_value",
	"x_milestones",
	"y_milestones",
}

// Keys returns every configuration key in sorted order.
func Keys() []string {
	v := viper.New()
	SetDefaults(v)
	keys := append(v.AllKeys(), optionalKeys...)
	slices.Sort(keys)
	return keys
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	d := plot.DefaultOptions()
	v.SetDefault("kind", string(KindPoint))
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("x_steps", d.XSteps)
	v.SetDefault("y_steps", d.YSteps)
	v.SetDefault("divide_length", d.DivideLength)
	v.SetDefault("spacing", d.Spacing)
	v.SetDefault("font_size", d.FontSize)
	v.SetDefault("info_font_size", d.InfoFontSize)
	v.SetDefault("zoom_x_step", d.ZoomXStep)
	v.SetDefault("zoom_y_step", d.ZoomYStep)
	v.SetDefault("x_precision", d.XPrecision)
	v.SetDefault("y_precision", d.YPrecision)
	v.SetDefault("info_x_precision", d.InfoXPrecision)
	v.SetDefault("info_y_precision", d.InfoYPrecision)
	v.SetDefault("point_radius", d.PointRadius)
	v.SetDefault("connect_points", d.ConnectPoints)
}

// Load reads the configuration held by v.
//
// Environment variables prefixed with LEETPLOT_ override file values.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	for _, key := range optionalKeys {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errs.Wrapf(err, "config: failed to decode")
	}

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize clamps numeric fields into their valid ranges and validates
// the kind and milestone specs.
func (c *Config) Normalize() error {
	switch c.Kind {
	case "":
		c.Kind = KindPoint
	case KindPoint, KindPillar:
	default:
		return errs.Newf("config: unknown kind %q", c.Kind).
			Attr(slog.String("kind", string(c.Kind)))
	}

	c.XSteps = clampInt(c.XSteps, MinSteps, MaxSteps)
	c.YSteps = clampInt(c.YSteps, MinSteps, MaxSteps)
	c.XPrecision = clampInt(c.XPrecision, MinPrecision, MaxPrecision)
	c.YPrecision = clampInt(c.YPrecision, MinPrecision, MaxPrecision)
	c.InfoXPrecision = clampInt(c.InfoXPrecision, MinPrecision, MaxPrecision)
	c.InfoYPrecision = clampInt(c.InfoYPrecision, MinPrecision, MaxPrecision)

	c.Width = math.Max(c.Width, 0)
	c.Height = math.Max(c.Height, 0)
	c.DivideLength = math.Max(c.DivideLength, 0)
	c.Spacing = math.Max(c.Spacing, 0)
	c.FontSize = math.Max(c.FontSize, 0)
	c.InfoFontSize = math.Max(c.InfoFontSize, 0)
	c.ZoomXStep = math.Max(c.ZoomXStep, 0)
	c.ZoomYStep = math.Max(c.ZoomYStep, 0)
	c.PointRadius = math.Max(c.PointRadius, 0)

	var err error
	if c.xMilestones, err = ParseMilestones(c.XMilestones); err != nil {
		return errs.Wrapf(err, "config: x_milestones")
	}
	if c.yMilestones, err = ParseMilestones(c.YMilestones); err != nil {
		return errs.Wrapf(err, "config: y_milestones")
	}
	return nil
}

// ChartOptions converts the configuration into chart options.
func (c *Config) ChartOptions() plot.Options {
	return plot.Options{
		Width:          c.Width,
		Height:         c.Height,
		XSteps:         c.XSteps,
		YSteps:         c.YSteps,
		DivideLength:   c.DivideLength,
		Spacing:        c.Spacing,
		FontSize:       c.FontSize,
		InfoFontSize:   c.InfoFontSize,
		ZoomXStep:      c.ZoomXStep,
		ZoomYStep:      c.ZoomYStep,
		XPrecision:     c.XPrecision,
		YPrecision:     c.YPrecision,
		InfoXPrecision: c.InfoXPrecision,
		InfoYPrecision: c.InfoYPrecision,
		XMaxValue:      c.XMaxValue,
		YMaxValue:      c.YMaxValue,
		XMilestones:    c.xMilestones,
		YMilestones:    c.yMilestones,
		PointRadius:    c.PointRadius,
		ConnectPoints:  c.ConnectPoints,
	}
}

// ParseMilestones interprets a milestone setting.
//
// Strings other than "values" and "divides" are read as a comma separated
// list of numbers, which is how lists arrive from environment variables.
func ParseMilestones(raw any) (plot.MilestoneSource, error) {
	switch v := raw.(type) {
	case nil:
		return plot.MilestoneSource{}, nil
	case string:
		s := strings.TrimSpace(v)
		switch strings.ToLower(s) {
		case "", "none":
			return plot.MilestoneSource{}, nil
		case "values":
			return plot.MilestoneSource{Mode: plot.MilestonesValues}, nil
		case "divides":
			return plot.MilestoneSource{Mode: plot.MilestonesDivides}, nil
		}
		fields := strings.Split(s, ",")
		values := make([]float64, 0, len(fields))
		for _, f := range fields {
			n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return plot.MilestoneSource{}, errs.Newf(
					"invalid milestone spec %q", v)
			}
			values = append(values, n)
		}
		return explicit(values), nil
	case []float64:
		return explicit(v), nil
	case []any:
		values := make([]float64, 0, len(v))
		for _, item := range v {
			n, err := toFloat(item)
			if err != nil {
				return plot.MilestoneSource{}, err
			}
			values = append(values, n)
		}
		return explicit(values), nil
	default:
		return plot.MilestoneSource{}, errs.Newf(
			"invalid milestone spec of type %T", raw)
	}
}

func explicit(values []float64) plot.MilestoneSource {
	return plot.MilestoneSource{Mode: plot.MilestonesExplicit, Values: values}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, errs.Newf("invalid milestone value %q", n)
		}
		return f, nil
	default:
		return 0, errs.Newf("invalid milestone value %s", fmt.Sprint(v))
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
