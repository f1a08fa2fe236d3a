package cmd

import (
	"fmt"
	"os"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kubev2v/filter-clauses/internal/config"
)

const envPrefix = "CLAUSES"

func NewRootCommand(cfg *config.Configuration) *cobra.Command {
	root := &cobra.Command{
		Use:           "filter-clauses",
		Short:         "Build SQL where and group by clauses from filter selections",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: cobrautil.CommandStack(
			loadEnvFile(cfg),
			cobrautil.SyncViperPreRunE(envPrefix),
			func(cmd *cobra.Command, args []string) error {
				return setupLogger(cfg.LogLevel, cfg.LogFormat)
			},
		),
	}

	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (console, json)")
	root.PersistentFlags().StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "Optional dotenv file exported before flags are resolved")

	root.AddCommand(NewRunCommand(cfg), NewRenderCommand(cfg))
	return root
}

func Execute() {
	cfg := config.NewConfigurationWithOptionsAndDefaults()
	if err := NewRootCommand(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadEnvFile exports the dotenv file so the viper sync that follows sees its values.
func loadEnvFile(cfg *config.Configuration) cobrautil.CobraRunFunc {
	return func(cmd *cobra.Command, args []string) error {
		if cfg.EnvFile == "" {
			return nil
		}
		if err := config.LoadEnvFile(cfg.EnvFile); err != nil {
			return fmt.Errorf("loading env file: %w", err)
		}
		return nil
	}
}

func setupLogger(level, format string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zcfg := zap.NewProductionConfig()
	if format == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.Encoding = format

	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}
