package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-git/go-git/v5"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
	"github.com/rios0rios0/mvntester/internal/domain/repositories"
)

const tempDirPattern = "mvntester-*"

// GitWorkspaceRepository implements repositories.WorkspaceRepository with
// temporary copies on disk and go-git for worktree inspection.
type GitWorkspaceRepository struct{}

// NewWorkspaceRepository creates a workspace repository.
func NewWorkspaceRepository() repositories.WorkspaceRepository {
	return &GitWorkspaceRepository{}
}

// Prepare copies root into a fresh temporary directory.
func (r *GitWorkspaceRepository) Prepare(root string, settings entities.WorkspaceSettings) (string, error) {
	dest, err := os.MkdirTemp("", tempDirPattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}

	if copyErr := copyTree(root, dest, settings.ExcludeDirs); copyErr != nil {
		_ = os.RemoveAll(dest)
		return "", fmt.Errorf("failed to copy %s: %w", root, copyErr)
	}
	return dest, nil
}

// Cleanup removes dir and everything below it.
func (r *GitWorkspaceRepository) Cleanup(dir string) error {
	return os.RemoveAll(dir)
}

// IsDirty reports uncommitted changes in the worktree containing root.
// A directory outside any repository is never dirty.
func (r *GitWorkspaceRepository) IsDirty(root string) (bool, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to open repository at %s: %w", root, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to open worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read worktree status: %w", err)
	}
	return !status.IsClean(), nil
}

func copyTree(src, dest string, excluded []string) error {
	return filepath.WalkDir(src, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		switch {
		case entry.IsDir():
			if path != src && slices.Contains(excluded, entry.Name()) {
				return filepath.SkipDir
			}
			info, infoErr := entry.Info()
			if infoErr != nil {
				return infoErr
			}
			return os.MkdirAll(target, info.Mode().Perm())
		case entry.Type()&fs.ModeSymlink != 0:
			link, linkErr := os.Readlink(path)
			if linkErr != nil {
				return linkErr
			}
			return os.Symlink(link, target)
		case entry.Type().IsRegular():
			return copyFile(path, target)
		default:
			return nil
		}
	})
}

func copyFile(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
