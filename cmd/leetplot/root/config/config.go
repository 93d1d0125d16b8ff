package config

import (
	"github.com/spf13/cobra"

	"github.com/wandb/leetplot/cmd/leetplot/root/config/set"
	"github.com/wandb/leetplot/internal/cliutil"
	chartconfig "github.com/wandb/leetplot/internal/config"
)

func NewConfigCmd(env *cliutil.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Configuration commands",
		Long:  `Commands for managing the chart configuration file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(set.NewSetCmd(env))
	cmd.AddCommand(newShowCmd(env))

	return cmd
}

func newShowCmd(env *cliutil.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := chartconfig.Load(env.Viper); err != nil {
				return err
			}

			settings := make(map[string]any)
			for _, key := range chartconfig.Keys() {
				settings[key] = env.Viper.Get(key)
			}
			return cliutil.HandleOutput(cmd, settings)
		},
	}

	cliutil.AddOutputFlags(cmd)

	return cmd
}
