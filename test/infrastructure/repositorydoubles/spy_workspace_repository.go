//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/mvntester/internal/domain/entities"
	"github.com/rios0rios0/mvntester/internal/domain/repositories"
)

// SpyWorkspaceRepository implements repositories.WorkspaceRepository as a configurable spy.
type SpyWorkspaceRepository struct {
	// --- Prepare ---
	PreparedDir  string
	PrepareErr   error
	PrepareCalls []string

	// --- Cleanup ---
	Cleaned []string

	// --- IsDirty ---
	Dirty    bool
	DirtyErr error
}

var _ repositories.WorkspaceRepository = (*SpyWorkspaceRepository)(nil)

func (w *SpyWorkspaceRepository) Prepare(root string, _ entities.WorkspaceSettings) (string, error) {
	w.PrepareCalls = append(w.PrepareCalls, root)
	return w.PreparedDir, w.PrepareErr
}

func (w *SpyWorkspaceRepository) Cleanup(dir string) error {
	w.Cleaned = append(w.Cleaned, dir)
	return nil
}

func (w *SpyWorkspaceRepository) IsDirty(_ string) (bool, error) {
	return w.Dirty, w.DirtyErr
}
