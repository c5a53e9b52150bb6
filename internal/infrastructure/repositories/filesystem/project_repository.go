package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
	"github.com/rios0rios0/mvntester/internal/domain/repositories"
)

const defaultFileMode = 0o644

// FileProjectRepository implements repositories.ProjectRepository on the local file system.
type FileProjectRepository struct{}

// NewProjectRepository creates a file system project repository.
func NewProjectRepository() repositories.ProjectRepository {
	return &FileProjectRepository{}
}

// Discover walks root and returns every directory holding the project
// descriptor, skipping excluded directory names.
func (r *FileProjectRepository) Discover(
	ctx context.Context,
	root string,
	settings entities.WorkspaceSettings,
) ([]string, error) {
	var dirs []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !entry.IsDir() {
			return nil
		}
		if path != root && slices.Contains(settings.ExcludeDirs, entry.Name()) {
			return filepath.SkipDir
		}
		if info, statErr := os.Stat(filepath.Join(path, settings.PomFile)); statErr == nil && info.Mode().IsRegular() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dirs, nil
}

// Load reads and parses the descriptor in dir.
func (r *FileProjectRepository) Load(dir string, settings entities.WorkspaceSettings) (*entities.PomDocument, error) {
	file, err := os.Open(filepath.Join(dir, settings.PomFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", settings.PomFile, err)
	}
	defer file.Close()

	return entities.ReadPomDocument(file)
}

// Save writes doc next to the descriptor and renames it over the original,
// so a failure never leaves a partially written file behind.
func (r *FileProjectRepository) Save(
	dir string,
	settings entities.WorkspaceSettings,
	doc *entities.PomDocument,
) (err error) {
	target := filepath.Join(dir, settings.PomFile)

	mode := fs.FileMode(defaultFileMode)
	if info, statErr := os.Stat(target); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+settings.PomFile+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = doc.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err = os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", tmpName, err)
	}
	if err = os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("failed to replace %s: %w", target, err)
	}
	return nil
}
