package cliutil

import (
	"os"

	"github.com/spf13/cobra"
)

// GetString returns the value of a string flag, falling back to the
// environment variable env when the flag is empty.
func GetString(cmd *cobra.Command, flag, env string) string {
	if value, _ := cmd.Flags().GetString(flag); value != "" {
		return value
	}
	return os.Getenv(env)
}
