// Package cli defines the command-line interface for mkempty.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShivamKR12/GameEngine/internal/env"
	"github.com/ShivamKR12/GameEngine/internal/logging"
)

// Options stores global CLI options shared between commands.
type Options struct {
	EnvFile  string
	LogLevel logging.Level
}

// Execute builds the root command, runs it with the provided args and logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.New(os.Stderr, logging.LevelInfo)
	}

	rootOpts := &Options{LogLevel: logging.LevelInfo}

	rootCmd := newRootCommand(rootOpts)
	rootCmd.SetArgs(args)

	ctx := context.WithValue(context.Background(), loggerKey{}, logger)
	return rootCmd.ExecuteContext(ctx)
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands.
func newRootCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mkempty",
		Short:         "mkempty creates or truncates files to zero bytes",
		Long:          "mkempty guarantees that an empty file exists at every target path. Existing files are truncated, missing files are created, parent directories are never created.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var base rootEnv
			if err := parseEnv(&base); err != nil {
				return err
			}
			if !cmd.Flags().Changed("env-file") && envPresent("MKEMPTY_ENV_FILE") {
				opts.EnvFile = base.EnvFile
			}
			if err := env.ApplyEnvFile(opts.EnvFile); err != nil {
				return err
			}
			// the env file may carry MKEMPTY_* defaults of its own
			if err := parseEnv(&base); err != nil {
				return err
			}

			levelValue := cmd.Flag("log-level").Value.String()
			if !cmd.Flags().Changed("log-level") && envPresent("MKEMPTY_LOG_LEVEL") {
				levelValue = base.LogLevel
			}
			level, err := logging.ParseLevel(levelValue)
			if err != nil {
				return err
			}
			opts.LogLevel = level

			logger := logging.New(cmd.ErrOrStderr(), opts.LogLevel)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", opts.LogLevel.String(), "env_file", opts.EnvFile)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "Path to a dotenv file exported before reading MKEMPTY_* variables")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newCreateCommand(),
		newClassifyCommand(),
	)

	return cmd
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.New(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.New(os.Stderr, logging.LevelInfo)
}
