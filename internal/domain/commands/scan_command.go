package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
	"github.com/rios0rios0/mvntester/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/mvntester/internal/infrastructure/repositories"
)

// Scan is the interface for the scan command.
type Scan interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ScanOptions) ([]entities.GroupUsage, error)
}

// ScanOptions holds runtime options for a group scan.
type ScanOptions struct {
	TargetDir string
	GroupID   string
}

// ScanCommand reports, per project, which artifacts of a group are pulled
// in. Nothing is written.
type ScanCommand struct {
	mavenFactory infraRepos.MavenFactory
	projects     repositories.ProjectRepository
}

// NewScanCommand creates a new ScanCommand.
func NewScanCommand(
	mavenFactory infraRepos.MavenFactory,
	projects repositories.ProjectRepository,
) *ScanCommand {
	return &ScanCommand{
		mavenFactory: mavenFactory,
		projects:     projects,
	}
}

// Execute scans every project below opts.TargetDir.
func (it *ScanCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ScanOptions,
) ([]entities.GroupUsage, error) {
	groupID := strings.TrimSpace(opts.GroupID)
	if groupID == "" || strings.Contains(groupID, ":") {
		return nil, fmt.Errorf("%w: a single groupId is required, got %q", entities.ErrInvalidInput, opts.GroupID)
	}
	if err := validateTargetDir(opts.TargetDir); err != nil {
		return nil, err
	}

	projects, err := it.projects.Discover(ctx, opts.TargetDir, settings.Workspace)
	if err != nil {
		return nil, fmt.Errorf("failed to discover projects in %s: %w", opts.TargetDir, err)
	}
	if len(projects) == 0 {
		return nil, fmt.Errorf("%w: no projects found at %s", entities.ErrInvalidInput, opts.TargetDir)
	}
	logger.Infof("[scan] Found %d projects.", len(projects))

	maven := it.mavenFactory(settings.Maven)
	usages := make([]entities.GroupUsage, 0, len(projects))
	for _, dir := range projects {
		usage := entities.GroupUsage{Path: relativePath(opts.TargetDir, dir), GroupID: groupID}

		lines, treeErr := maven.DependencyTree(ctx, dir)
		if treeErr != nil {
			logger.Warnf("[scan] Dependency tree failed for %s: %v", usage.Path, treeErr)
			usage.Err = treeErr
		}
		usage.ArtifactIDs = entities.FindArtifactsForGroup(groupID, lines)

		logger.Debugf("[scan] %s uses %d artifacts of %s", usage.Path, len(usage.ArtifactIDs), groupID)
		usages = append(usages, usage)
	}

	return usages, nil
}
