package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wandb/leetplot/cmd/leetplot/root"
	"github.com/wandb/leetplot/internal/cliutil"
)

var cfgFile string

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() int {
	cmd := root.NewRootCmd(cliutil.NewEnv(viper.GetViper()))

	cobra.OnInitialize(initConfig)
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.leetplot.yaml)")

	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".leetplot")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		fmt.Fprintln(os.Stderr, "Can't read config:", err)
		os.Exit(1)
	}
}
