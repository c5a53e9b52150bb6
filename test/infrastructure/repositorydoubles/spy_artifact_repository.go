//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
	"github.com/rios0rios0/mvntester/internal/domain/repositories"
)

// SpyArtifactRepository implements repositories.ArtifactRepository as a configurable spy.
// Every artifact exists unless listed in Missing.
type SpyArtifactRepository struct {
	Missing   map[string]bool // "g:a:v" -> not published
	ExistsErr error
	Checked   []entities.VersionOverride
}

var _ repositories.ArtifactRepository = (*SpyArtifactRepository)(nil)

func (a *SpyArtifactRepository) Exists(_ context.Context, override entities.VersionOverride) (bool, error) {
	a.Checked = append(a.Checked, override)
	if a.ExistsErr != nil {
		return false, a.ExistsErr
	}
	return !a.Missing[override.String()], nil
}
