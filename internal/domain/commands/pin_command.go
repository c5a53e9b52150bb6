package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
	"github.com/rios0rios0/mvntester/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/mvntester/internal/infrastructure/repositories"
)

// Pin is the interface for the pin command.
type Pin interface {
	Execute(ctx context.Context, settings *entities.Settings, opts PinOptions) ([]entities.ProjectResult, error)
}

// PinOptions holds runtime options for a single pin run.
type PinOptions struct {
	TargetDir     string
	JDK           string   // plain version prefix or semver constraint
	Maven         string   // plain version prefix or semver constraint
	Artifacts     []string // groupId:artifactId:version triples
	LanguageLevel string   // compiler source/target; defaults to JDK when it is a plain version
	DryRun        bool
	SkipBuild     bool
	SkipVerify    bool // do not query the artifact index
	Copy          bool // work on a temporary copy of TargetDir
	KeepWorkspace bool
	ForwardOnly   bool
}

// PinCommand orchestrates the full flow:
// validate inputs -> discover projects -> scan each tree -> rewrite -> rebuild.
type PinCommand struct {
	mavenFactory    infraRepos.MavenFactory
	artifactFactory infraRepos.ArtifactFactory
	projects        repositories.ProjectRepository
	workspaces      repositories.WorkspaceRepository
}

// NewPinCommand creates a new PinCommand.
func NewPinCommand(
	mavenFactory infraRepos.MavenFactory,
	artifactFactory infraRepos.ArtifactFactory,
	projects repositories.ProjectRepository,
	workspaces repositories.WorkspaceRepository,
) *PinCommand {
	return &PinCommand{
		mavenFactory:    mavenFactory,
		artifactFactory: artifactFactory,
		projects:        projects,
		workspaces:      workspaces,
	}
}

// pinPlan is everything decided before the first project is touched.
type pinPlan struct {
	maven         repositories.MavenRepository
	overrides     []entities.VersionOverride
	candidates    []entities.Coordinate
	languageLevel string
	mode          entities.MatchMode
}

// Execute validates the inputs, then processes every project sequentially.
// Input and environment problems abort the run; per-project problems are
// recorded in the returned results.
func (it *PinCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts PinOptions,
) ([]entities.ProjectResult, error) {
	plan, err := it.plan(ctx, settings, opts)
	if err != nil {
		return nil, err
	}

	workDir, cleanup, err := it.prepareWorkspace(settings, opts, plan)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	logger.Info("[pin] Scanning for projects...")
	projects, err := it.projects.Discover(ctx, workDir, settings.Workspace)
	if err != nil {
		return nil, fmt.Errorf("failed to discover projects in %s: %w", opts.TargetDir, err)
	}
	if len(projects) == 0 {
		return nil, fmt.Errorf("%w: no projects found at %s", entities.ErrInvalidInput, opts.TargetDir)
	}
	logger.Infof("[pin] Found %d projects.", len(projects))

	results := make([]entities.ProjectResult, 0, len(projects))
	for _, dir := range projects {
		results = append(results, it.processProject(ctx, settings, opts, plan, workDir, dir))
	}

	logSummary(results, plan, opts)
	return results, nil
}

// plan performs every fail-fast validation.
func (it *PinCommand) plan(
	ctx context.Context,
	settings *entities.Settings,
	opts PinOptions,
) (*pinPlan, error) {
	overrides, err := entities.ParseVersionOverrides(opts.Artifacts)
	if err != nil {
		return nil, err
	}

	if err = validateTargetDir(opts.TargetDir); err != nil {
		return nil, err
	}

	maven := it.mavenFactory(settings.Maven)
	if err = verifyToolchain(ctx, maven, opts); err != nil {
		return nil, err
	}

	if !opts.SkipVerify {
		if err = it.verifyArtifacts(ctx, settings, overrides); err != nil {
			return nil, err
		}
	}

	candidates := make([]entities.Coordinate, 0, len(overrides))
	for _, override := range overrides {
		candidates = append(candidates, override.Coordinate())
	}

	mode := settings.MatchMode()
	if opts.ForwardOnly {
		mode = entities.MatchForwardOnly
	}

	return &pinPlan{
		maven:         maven,
		overrides:     overrides,
		candidates:    candidates,
		languageLevel: resolveLanguageLevel(opts),
		mode:          mode,
	}, nil
}

func validateTargetDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: invalid target directory: %s", entities.ErrInvalidInput, dir)
	}
	return nil
}

func verifyToolchain(ctx context.Context, maven repositories.MavenRepository, opts PinOptions) error {
	requirements := entities.ToolchainRequirements(opts.JDK, opts.Maven)
	if len(requirements) == 0 {
		return nil
	}

	output, err := maven.Version(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to query the toolchain version: %w", entities.ErrEnvironmentMismatch, err)
	}
	return entities.CheckToolchain(output, requirements)
}

func (it *PinCommand) verifyArtifacts(
	ctx context.Context,
	settings *entities.Settings,
	overrides []entities.VersionOverride,
) error {
	if len(overrides) == 0 {
		return nil
	}

	artifacts := it.artifactFactory(settings.Repository)
	for _, override := range overrides {
		logger.Infof("[pin] Checking artifact %s.", override)
		exists, err := artifacts.Exists(ctx, override)
		if err != nil {
			return fmt.Errorf("failed to check artifact %s: %w", override, err)
		}
		if !exists {
			return fmt.Errorf("%w: artifact %s not found", entities.ErrInvalidInput, override)
		}
		logger.Debugf("[pin] Appending %s to artifact list.", override)
	}
	return nil
}

func resolveLanguageLevel(opts PinOptions) string {
	if opts.LanguageLevel != "" {
		return opts.LanguageLevel
	}
	if opts.JDK != "" && !entities.IsVersionConstraint(opts.JDK) {
		return opts.JDK
	}
	return ""
}

// prepareWorkspace returns the directory to work on and its cleanup.
func (it *PinCommand) prepareWorkspace(
	settings *entities.Settings,
	opts PinOptions,
	plan *pinPlan,
) (string, func(), error) {
	noop := func() {}
	if opts.DryRun {
		return opts.TargetDir, noop, nil
	}

	if !opts.Copy {
		mutates := len(plan.overrides) > 0 || plan.languageLevel != ""
		if dirty, err := it.workspaces.IsDirty(opts.TargetDir); err != nil {
			logger.Debugf("[pin] Could not inspect Git status of %s: %v", opts.TargetDir, err)
		} else if dirty && mutates {
			logger.Warnf("[pin] %s has uncommitted changes; pom.xml files will be rewritten in place", opts.TargetDir)
		}
		return opts.TargetDir, noop, nil
	}

	logger.Debugf("[pin] Copying %s to temp dir...", opts.TargetDir)
	workDir, err := it.workspaces.Prepare(opts.TargetDir, settings.Workspace)
	if err != nil {
		return "", noop, fmt.Errorf("failed to prepare workspace: %w", err)
	}
	logger.Debugf("[pin] Working on %s", workDir)

	if opts.KeepWorkspace {
		return workDir, func() { logger.Infof("[pin] Workspace kept at %s", workDir) }, nil
	}
	return workDir, func() {
		logger.Debugf("[pin] Removing %s", workDir)
		if cleanupErr := it.workspaces.Cleanup(workDir); cleanupErr != nil {
			logger.Warnf("[pin] Failed to remove %s: %v", workDir, cleanupErr)
		}
	}, nil
}

// processProject scans, rewrites and rebuilds one project. It never fails
// the run: every problem ends up in the returned result.
func (it *PinCommand) processProject(
	ctx context.Context,
	settings *entities.Settings,
	opts PinOptions,
	plan *pinPlan,
	workDir, dir string,
) entities.ProjectResult {
	result := entities.ProjectResult{Path: relativePath(workDir, dir)}

	if len(plan.overrides) > 0 {
		lines, treeErr := plan.maven.DependencyTree(ctx, dir)
		if treeErr != nil {
			logger.Warnf("[pin] Dependency tree failed for %s: %v", result.Path, treeErr)
			result.Err = fmt.Errorf("dependency tree: %w", treeErr)
			return result
		}

		result.Matched = entities.IsAnyPresent(plan.candidates, lines, plan.mode)
		if len(result.Matched) == 0 {
			logger.Debugf("[pin] No dependency found for %s", result.Path)
			return result
		}
		logger.Debugf("[pin] Project %s uses %v", result.Path, result.Matched)
	}

	doc, err := it.projects.Load(dir, settings.Workspace)
	if err != nil {
		logger.Errorf("[pin] Failed to load %s: %v", result.Path, err)
		result.Err = err
		return result
	}

	if result.Identity, err = doc.Identity(); err != nil {
		logger.Errorf("[pin] Skipping %s: %v", result.Path, err)
		result.Err = err
		return result
	}

	changed, err := rewriteDocument(doc, selectOverrides(plan.overrides, result.Matched), plan.languageLevel)
	if err != nil {
		logger.Errorf("[pin] Failed to rewrite %s: %v", result.Path, err)
		result.Err = err
		return result
	}

	if opts.DryRun {
		logDryRun(result, changed, plan, opts)
		return result
	}

	if changed {
		logger.Debugf("[pin] Updating dependencies for %s", result.Path)
		if saveErr := it.projects.Save(dir, settings.Workspace, doc); saveErr != nil {
			logger.Errorf("[pin] Failed to save %s: %v", result.Path, saveErr)
			result.Err = fmt.Errorf("%w: %w", entities.ErrPersistence, saveErr)
			return result
		}
		result.Rewritten = true
	}

	if opts.SkipBuild {
		return result
	}

	logger.Infof("[pin] Building %s...", result.Path)
	succeeded, buildErr := plan.maven.Build(ctx, dir)
	switch {
	case buildErr != nil:
		result.Build = entities.BuildFailed
		result.Err = fmt.Errorf("%w: %w", entities.ErrBuildFailure, buildErr)
	case !succeeded:
		result.Build = entities.BuildFailed
		result.Err = fmt.Errorf("%w: %s did not report success", entities.ErrBuildFailure, result.Path)
	default:
		result.Build = entities.BuildSucceeded
	}
	logger.Infof("[pin] Build of %s: %s", result.Path, result.Build)

	return result
}

// rewriteDocument applies the overrides and language level, reporting whether
// anything was requested at all.
func rewriteDocument(
	doc *entities.PomDocument,
	overrides []entities.VersionOverride,
	languageLevel string,
) (bool, error) {
	changed := false

	if len(overrides) > 0 {
		warnDowngrades(doc, overrides)
		if _, err := entities.RewriteVersions(doc, overrides); err != nil {
			return false, err
		}
		changed = true
	}

	if languageLevel != "" {
		if _, err := entities.SetLanguageLevel(doc, languageLevel); err != nil {
			return false, err
		}
		changed = true
	}

	return changed, nil
}

// selectOverrides keeps the overrides whose coordinate was found in the project.
func selectOverrides(overrides []entities.VersionOverride, matched []entities.Coordinate) []entities.VersionOverride {
	keys := make(map[string]bool, len(matched))
	for _, coordinate := range matched {
		keys[coordinate.Key()] = true
	}

	selected := make([]entities.VersionOverride, 0, len(matched))
	for _, override := range overrides {
		if keys[override.Coordinate().Key()] {
			selected = append(selected, override)
		}
	}
	return selected
}

func warnDowngrades(doc *entities.PomDocument, overrides []entities.VersionOverride) {
	for _, override := range overrides {
		current := doc.ManagedVersion(override.GroupID, override.ArtifactID)
		if current != "" && isOlderVersion(override.Version, current) {
			logger.Warnf(
				"[pin] %s is managed at %s; pinning it to the older %s",
				override.Coordinate().Key(), current, override.Version,
			)
		}
	}
}

// isOlderVersion compares semver-shaped versions; anything else is never older.
func isOlderVersion(candidate, current string) bool {
	c, cur := normalizeVersion(candidate), normalizeVersion(current)
	if semver.IsValid(c) && semver.IsValid(cur) {
		return semver.Compare(c, cur) < 0
	}
	return false
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

func relativePath(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return dir
	}
	return rel
}

func logDryRun(result entities.ProjectResult, changed bool, plan *pinPlan, opts PinOptions) {
	if changed {
		logger.Infof(
			"[pin] [DRY RUN] Would pin %v (language level %q) in %s",
			selectOverrides(plan.overrides, result.Matched), plan.languageLevel, result.Path,
		)
	}
	if !opts.SkipBuild {
		logger.Infof("[pin] [DRY RUN] Would build %s", result.Path)
	}
}

func logSummary(results []entities.ProjectResult, plan *pinPlan, opts PinOptions) {
	eligible, failed := 0, 0
	for _, result := range results {
		if len(plan.overrides) == 0 || len(result.Matched) > 0 {
			eligible++
		}
		if result.Failed() {
			failed++
		}
	}

	if len(plan.overrides) > 0 && eligible == 0 {
		logger.Warnf("[pin] No project uses the specified dependencies: %v", opts.Artifacts)
	}
	logger.Infof("[pin] %d projects are eligible to build, %d failed.", eligible, failed)
}

// IsFatal reports whether err aborted the run before any project was touched.
func IsFatal(err error) bool {
	return errors.Is(err, entities.ErrInvalidInput) || errors.Is(err, entities.ErrEnvironmentMismatch)
}
