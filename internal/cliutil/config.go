package cliutil

import (
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/wandb/leetplot/internal/observability/errs"
)

// ApplyOverrides sets each "key=value" override on v.
//
// Values that parse as numbers or booleans are converted, everything else
// stays a string. Keys must be in validKeys.
func ApplyOverrides(v *viper.Viper, overrides map[string]string, validKeys []string) error {
	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		normalized := strings.ReplaceAll(strings.ToLower(key), "-", "_")
		if !slices.Contains(validKeys, normalized) {
			return errs.Newf(
				"invalid config key: %s. Valid keys are: %v", key, validKeys)
		}
		v.Set(normalized, ParseScalar(overrides[key]))
	}
	return nil
}

// ParseScalar converts a command line value to a float64 or bool when it
// looks like one.
func ParseScalar(value string) any {
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value
}
