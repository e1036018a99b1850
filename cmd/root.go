// Package cmd provides the command-line interface for winston.
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/winston-cli/winston/internal/config"
	"github.com/winston-cli/winston/internal/logging"
	"github.com/winston-cli/winston/internal/version"
)

var (
	cfgFile string
	verbose bool
	logger  = logging.NewNop()
)

// Execute runs the root command. Called once from main.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd creates and returns the root command for winston.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "winston",
		Short: "winston is a command-line ChatGPT client",
		Long: `winston sends prompts to an OpenAI-compatible completion API.

The API key can come from the --api-key flag, the OPENAI_API_KEY environment
variable, or the config file at $XDG_CONFIG_HOME/winston/config.toml
(~/.config/winston/config.toml when XDG_CONFIG_HOME is unset). Flags beat
environment variables, which beat the config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/winston/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	}

	rootCmd.AddCommand(newAskCmd())
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// configPath returns the explicit --config path, or the derived default.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}

// resolveConfig merges CLI flags, the environment snapshot and the config
// file into one validated record.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := configPath()
	if err != nil {
		return config.Config{}, err
	}

	filePart, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	cli := partialFromFlags(cmd)
	env := config.EnvPartial(os.LookupEnv)

	cfg, err := config.Resolve(cli, env, &filePart, config.Defaults())
	if err != nil {
		return config.Config{}, err
	}

	logger.Debug("configuration resolved",
		zap.String("config_file", path),
		zap.String("endpoint", cfg.Endpoint),
		zap.String("model", cfg.Model),
		zap.Int("max_tokens", cfg.MaxTokens),
	)
	return cfg, nil
}
