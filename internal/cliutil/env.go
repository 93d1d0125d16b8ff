package cliutil

import (
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/wandb/leetplot/internal/observability"
)

// Env is the state shared by the leetplot commands.
//
// Logger is replaced by the root command once flags are parsed.
type Env struct {
	Viper  *viper.Viper
	Fs     afero.Fs
	Logger *observability.CoreLogger
}

// NewEnv returns an Env reading files from the OS with a no-op logger.
func NewEnv(v *viper.Viper) *Env {
	if v == nil {
		v = viper.New()
	}
	return &Env{
		Viper:  v,
		Fs:     afero.NewOsFs(),
		Logger: observability.NewNoOpLogger(),
	}
}

// FullScreenAnnotation marks commands that own the terminal. Their logs
// are not written to stderr.
const FullScreenAnnotation = "leetplot/fullscreen"
