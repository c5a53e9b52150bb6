package repositories

import "context"

// MavenRepository abstracts the build tool. Every call that concerns a project
// receives the project directory explicitly; the process working directory is
// never changed.
type MavenRepository interface {
	// DependencyTree returns the lines of the project's dependency-tree report.
	// A failing tool still returns whatever it printed together with the error.
	DependencyTree(ctx context.Context, dir string) ([]string, error)

	// Build runs a clean build and reports whether it succeeded.
	Build(ctx context.Context, dir string) (bool, error)

	// Version returns the lines of the tool's version report.
	Version(ctx context.Context) ([]string, error)
}
