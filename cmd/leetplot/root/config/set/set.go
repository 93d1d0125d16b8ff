package set

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wandb/leetplot/internal/cliutil"
	"github.com/wandb/leetplot/internal/config"
	"github.com/wandb/leetplot/internal/observability/errs"
)

func NewSetCmd(env *cliutil.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  `Set a configuration value that will be persisted in the config file.`,
		Example: heredoc.Doc(`
			# Use ten divides on the x axis
			$ leetplot config set x_steps 10

			# Draw milestone lines at each divide
			$ leetplot config set y_milestones divides
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			if err := cliutil.ApplyOverrides(
				env.Viper,
				map[string]string{key: value},
				config.Keys(),
			); err != nil {
				return err
			}

			// Reject values that would fail to load later.
			if _, err := config.Load(env.Viper); err != nil {
				return err
			}

			if err := env.Viper.WriteConfig(); err != nil {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) {
					return errs.Wrapf(err, "failed to write config")
				}
				if err := env.Viper.SafeWriteConfig(); err != nil {
					return errs.Wrapf(err, "failed to write config")
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully set %s = %s\n", key, value)
			return nil
		},
	}

	return cmd
}
