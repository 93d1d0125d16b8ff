package version

import (
	"runtime"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/wandb/leetplot/internal/cliutil"
	"github.com/wandb/leetplot/internal/version"
)

// NewVersionCmd creates a command that displays version information.
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  `Display the version, git commit, and build date of leetplot.`,
		Example: heredoc.Doc(`
			$ leetplot version
			$ leetplot version --format yaml
			$ leetplot version --template '{{.version}}'
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.HandleOutput(cmd, map[string]any{
				"version":     version.Version,
				"gitCommit":   version.GitCommit,
				"buildDate":   version.BuildDate,
				"environment": version.Environment(),
				"goVersion":   runtime.Version(),
			})
		},
	}

	cliutil.AddOutputFlags(cmd)

	return cmd
}
