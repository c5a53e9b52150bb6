package controllers

import (
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/mvntester/internal/domain/commands"
	"github.com/rios0rios0/mvntester/internal/domain/entities"
	infraRepos "github.com/rios0rios0/mvntester/internal/infrastructure/repositories"
)

// ErrProjectsFailed is returned when the run completed but some project failed.
var ErrProjectsFailed = errors.New("some projects failed")

// PinController handles the "pin" subcommand.
type PinController struct {
	command  commands.Pin
	loader   entities.SettingsLoader
	registry *infraRepos.ReportRegistry
}

// NewPinController creates a new PinController.
func NewPinController(
	command commands.Pin,
	loader entities.SettingsLoader,
	registry *infraRepos.ReportRegistry,
) *PinController {
	return &PinController{command: command, loader: loader, registry: registry}
}

// GetBind returns the Cobra command metadata for the pin controller.
func (it *PinController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "pin [dir]",
		Short: "Pin dependency versions and rebuild the affected projects",
		Long: `Walk every Maven project below dir, find the ones whose dependency tree
contains any of the given artifacts, pin those artifacts to the requested
versions through dependencyManagement and rebuild the projects.

Without --artifact every project is rebuilt, optionally with a new
compiler language level.

Examples:
  mvntester pin . --jdk 17 --artifact org.slf4j:slf4j-api:2.0.13
  mvntester pin ~/src --jdk ">=17" --mvn 3.9 --artifact g:a:v --copy --format wiki`,
	}
}

// AddFlags adds the pin-specific flags to the given Cobra command.
func (it *PinController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("jdk", "", "Required JDK version prefix or constraint (e.g. 17 or \">=17\")")
	cmd.Flags().String("mvn", "", "Required Maven version prefix or constraint")
	cmd.Flags().StringArrayP("artifact", "a", nil, "Artifact to pin as groupId:artifactId:version (repeatable)")
	cmd.Flags().String("language-level", "", "Compiler source/target level (default: --jdk when it is a plain version)")
	cmd.Flags().Bool("skip-build", false, "Rewrite pom.xml files without rebuilding")
	cmd.Flags().Bool("skip-verify", false, "Do not check that the artifacts exist in the search index")
	cmd.Flags().Bool("copy", false, "Work on a temporary copy of dir")
	cmd.Flags().Bool("keep-workspace", false, "Keep the temporary copy after the run")
	cmd.Flags().Bool("forward-only", false, "Match artifacts in order, consuming the tree report")
	cmd.Flags().StringP("format", "f", "", "Report format (table, wiki, yaml)")
}

// Execute runs the pin flow and renders the results.
func (it *PinController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd, it.loader)
	if err != nil {
		return err
	}
	report, err := resolveReport(cmd, settings, it.registry)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	opts := commands.PinOptions{TargetDir: targetDir(args)}
	opts.JDK, _ = flags.GetString("jdk")
	opts.Maven, _ = flags.GetString("mvn")
	opts.Artifacts, _ = flags.GetStringArray("artifact")
	opts.LanguageLevel, _ = flags.GetString("language-level")
	opts.DryRun, _ = flags.GetBool("dry-run")
	opts.SkipBuild, _ = flags.GetBool("skip-build")
	opts.SkipVerify, _ = flags.GetBool("skip-verify")
	opts.Copy, _ = flags.GetBool("copy")
	opts.KeepWorkspace, _ = flags.GetBool("keep-workspace")
	opts.ForwardOnly, _ = flags.GetBool("forward-only")
	opts.Artifacts = splitArtifacts(opts.Artifacts)

	results, err := it.command.Execute(cmd.Context(), settings, opts)
	if err != nil {
		return err
	}

	if err = report.WriteProjects(output(cmd), results); err != nil {
		return fmt.Errorf("failed to write %s report: %w", report.Name(), err)
	}

	failed := 0
	for _, result := range results {
		if result.Failed() {
			failed++
		}
	}
	if failed > 0 {
		logger.Debugf("[pin] %d of %d projects failed", failed, len(results))
		return fmt.Errorf("%w: %d of %d", ErrProjectsFailed, failed, len(results))
	}
	return nil
}

// splitArtifacts accepts both repeated flags and comma-separated lists.
func splitArtifacts(raws []string) []string {
	artifacts := make([]string, 0, len(raws))
	for _, raw := range raws {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				artifacts = append(artifacts, part)
			}
		}
	}
	return artifacts
}
