package maven

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
	"github.com/rios0rios0/mvntester/internal/domain/repositories"
)

// CLIMavenRepository implements repositories.MavenRepository by running the
// configured Maven command. The project directory is set on each process
// instead of changing the working directory of this one.
type CLIMavenRepository struct {
	settings entities.MavenSettings
}

// NewMavenRepository creates a Maven collaborator for the given settings.
func NewMavenRepository(settings entities.MavenSettings) repositories.MavenRepository {
	return &CLIMavenRepository{settings: settings}
}

// DependencyTree runs the dependency-tree goal in dir.
func (r *CLIMavenRepository) DependencyTree(ctx context.Context, dir string) ([]string, error) {
	output, err := r.run(ctx, dir, r.settings.TreeArgs)
	lines := splitLines(output)
	if err != nil {
		return lines, fmt.Errorf("dependency tree in %s: %w", dir, err)
	}
	return lines, nil
}

// Build runs a clean build in dir. A non-zero exit status is a failed build,
// not an error; errors are reserved for commands that could not run at all.
func (r *CLIMavenRepository) Build(ctx context.Context, dir string) (bool, error) {
	output, err := r.run(ctx, dir, r.settings.BuildArgs)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Debugf("[maven] Build in %s exited with %d:\n%s", dir, exitErr.ExitCode(), output)
			return false, nil
		}
		return false, fmt.Errorf("build in %s: %w", dir, err)
	}

	if r.settings.SuccessMarker == "" {
		return true, nil
	}
	return strings.Contains(output, r.settings.SuccessMarker), nil
}

// Version runs the version report of the toolchain.
func (r *CLIMavenRepository) Version(ctx context.Context) ([]string, error) {
	output, err := r.run(ctx, "", r.settings.VersionArgs)
	if err != nil {
		return nil, fmt.Errorf("version report: %w", err)
	}
	return splitLines(output), nil
}

func (r *CLIMavenRepository) run(ctx context.Context, dir, args string) (string, error) {
	argv, err := r.commandLine(args)
	if err != nil {
		return "", err
	}

	if r.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.settings.Timeout)
		defer cancel()
	}

	logger.Debugf("[maven] Running %s in %q", shellquote.Join(argv...), dir)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // command comes from the user's settings
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	return string(output), err
}

// commandLine splits the configured command and arguments with shell quoting rules.
func (r *CLIMavenRepository) commandLine(args string) ([]string, error) {
	base, err := shellquote.Split(r.settings.Command)
	if err != nil {
		return nil, fmt.Errorf("invalid maven command %q: %w", r.settings.Command, err)
	}
	if len(base) == 0 {
		return nil, errors.New("maven command is empty")
	}

	extra, err := shellquote.Split(args)
	if err != nil {
		return nil, fmt.Errorf("invalid maven arguments %q: %w", args, err)
	}
	return append(base, extra...), nil
}

func splitLines(output string) []string {
	output = strings.TrimRight(output, "\n")
	if output == "" {
		return nil
	}
	return strings.Split(output, "\n")
}
