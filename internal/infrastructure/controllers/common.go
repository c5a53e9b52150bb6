package controllers

import (
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
	domainRepos "github.com/rios0rios0/mvntester/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/mvntester/internal/infrastructure/repositories"
)

// loadSettings applies the persistent flags shared by every subcommand.
func loadSettings(cmd *cobra.Command, loader entities.SettingsLoader) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")

	switch {
	case verbose:
		logger.SetLevel(logger.DebugLevel)
	case quiet:
		logger.SetLevel(logger.WarnLevel)
	}

	settings, err := loader(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}

func targetDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// resolveReport picks the --format flag when set, otherwise the configured default.
func resolveReport(
	cmd *cobra.Command,
	settings *entities.Settings,
	registry *infraRepos.ReportRegistry,
) (domainRepos.ReportRepository, error) {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = settings.Report.Format
	}
	report, err := registry.Get(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrInvalidInput, err)
	}
	return report, nil
}

func output(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
