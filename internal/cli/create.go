package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ShivamKR12/GameEngine/internal/config"
	"github.com/ShivamKR12/GameEngine/internal/env"
	"github.com/ShivamKR12/GameEngine/internal/filecreator"
)

// newCreateCommand creates the "create" subcommand that empties or creates every target.
func newCreateCommand() *cobra.Command {
	var (
		manifestPath string
		vars         string
		strict       bool
	)

	cmd := &cobra.Command{
		Use:     "create [path...]",
		Aliases: []string{"touch"},
		Short:   "Create or truncate files to zero bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			var envVars createEnv
			if err := parseEnv(&envVars); err != nil {
				return err
			}
			if !cmd.Flags().Changed("manifest") && envPresent("MKEMPTY_MANIFEST") {
				manifestPath = envVars.Manifest
			}
			if !cmd.Flags().Changed("vars") && envPresent("MKEMPTY_VARS") {
				vars = envVars.Vars
			}
			if !cmd.Flags().Changed("strict") && envPresent("MKEMPTY_STRICT") {
				strict = envVars.Strict
			}

			targets, err := collectTargets(logger, args, manifestPath, vars)
			if err != nil {
				return err
			}
			if len(targets) == 0 {
				return fmt.Errorf("no targets: pass one or more paths or --manifest")
			}

			results := filecreator.New().CreateAll(targets)
			for _, res := range results {
				logResult(logger, res)
			}
			if err := filecreator.Report(cmd.OutOrStdout(), results...); err != nil {
				return err
			}

			failed := filecreator.Failed(results)
			logger.Debug("targets processed", "total", len(results), "failed", failed)
			if strict && failed > 0 {
				return fmt.Errorf("%d of %d targets failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Path to a YAML manifest listing targets")
	cmd.Flags().StringVar(&vars, "vars", "", "Manifest template variables in k=v,k2=v2 format")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when any target fails")

	return cmd
}

// collectTargets returns argument targets followed by manifest targets.
func collectTargets(logger *slog.Logger, args []string, manifestPath, vars string) ([]string, error) {
	targets := append([]string(nil), args...)
	if manifestPath == "" {
		return targets, nil
	}

	userVars, err := env.ParseInlineVars(vars)
	if err != nil {
		return nil, err
	}

	m, err := config.LoadManifest(manifestPath, config.LoadOptions{UserVars: userVars})
	if err != nil {
		return nil, err
	}
	logger.Debug("manifest loaded", "path", manifestPath, "targets", len(m.Targets), "base_dir", m.BaseDir)

	return append(targets, m.Targets...), nil
}

func logResult(logger *slog.Logger, res filecreator.Result) {
	if res.OK() {
		logger.Debug("target created", "path", res.Path)
		return
	}
	logger.Debug("target failed", "path", res.Path, "kind", res.Kind, "error", res.Err)
}
