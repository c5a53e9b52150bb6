package repositories

import (
	"context"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
)

// ProjectRepository discovers projects and loads/stores their pom.xml.
type ProjectRepository interface {
	// Discover returns every directory below root that holds a project descriptor.
	Discover(ctx context.Context, root string, settings entities.WorkspaceSettings) ([]string, error)

	// Load reads the descriptor of the project in dir.
	Load(dir string, settings entities.WorkspaceSettings) (*entities.PomDocument, error)

	// Save replaces the descriptor of the project in dir atomically.
	Save(dir string, settings entities.WorkspaceSettings, doc *entities.PomDocument) error
}

// WorkspaceRepository manages the directory tree a run works on.
type WorkspaceRepository interface {
	// Prepare copies root to a temporary directory, skipping excluded
	// directories, and returns the copy's path.
	Prepare(root string, settings entities.WorkspaceSettings) (string, error)

	// Cleanup removes a directory created by Prepare.
	Cleanup(dir string) error

	// IsDirty reports whether root belongs to a Git worktree with uncommitted changes.
	IsDirty(root string) (bool, error)
}
