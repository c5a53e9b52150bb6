package repositories

import (
	"github.com/rios0rios0/mvntester/internal/domain/entities"
	domainRepos "github.com/rios0rios0/mvntester/internal/domain/repositories"
)

// MavenFactory builds the build-tool collaborator for the loaded settings.
type MavenFactory func(settings entities.MavenSettings) domainRepos.MavenRepository

// ArtifactFactory builds the artifact index collaborator for the loaded settings.
type ArtifactFactory func(settings entities.RepositorySettings) domainRepos.ArtifactRepository
