package repositories

import (
	"context"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
)

// ArtifactRepository answers whether an artifact version was published.
type ArtifactRepository interface {
	// Exists returns true when exactly one record matches the override.
	Exists(ctx context.Context, override entities.VersionOverride) (bool, error)
}
