package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/mvntester/internal/domain/commands"
	"github.com/rios0rios0/mvntester/internal/domain/entities"
	infraRepos "github.com/rios0rios0/mvntester/internal/infrastructure/repositories"
)

// ScanController handles the "scan" subcommand.
type ScanController struct {
	command  commands.Scan
	loader   entities.SettingsLoader
	registry *infraRepos.ReportRegistry
}

// NewScanController creates a new ScanController.
func NewScanController(
	command commands.Scan,
	loader entities.SettingsLoader,
	registry *infraRepos.ReportRegistry,
) *ScanController {
	return &ScanController{command: command, loader: loader, registry: registry}
}

// GetBind returns the Cobra command metadata for the scan controller.
func (it *ScanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "scan [dir]",
		Short: "List which artifacts of a group each project depends on",
		Long: `Run the dependency tree of every Maven project below dir and list the
artifacts of the given group it pulls in. Transitive dependencies of a
matched artifact are not reported. Nothing is written.`,
	}
}

// AddFlags adds the scan-specific flags to the given Cobra command.
func (it *ScanController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("group", "g", "", "groupId to look for (required)")
	cmd.Flags().StringP("format", "f", "", "Report format (table, wiki, yaml)")
}

// Execute runs the group scan and renders the usages.
func (it *ScanController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd, it.loader)
	if err != nil {
		return err
	}
	report, err := resolveReport(cmd, settings, it.registry)
	if err != nil {
		return err
	}

	groupID, _ := cmd.Flags().GetString("group")
	usages, err := it.command.Execute(cmd.Context(), settings, commands.ScanOptions{
		TargetDir: targetDir(args),
		GroupID:   groupID,
	})
	if err != nil {
		return err
	}

	if err = report.WriteUsages(output(cmd), usages); err != nil {
		return fmt.Errorf("failed to write %s report: %w", report.Name(), err)
	}
	return nil
}
