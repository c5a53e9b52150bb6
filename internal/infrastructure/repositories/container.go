package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/mvntester/internal/domain/repositories"
	centralRepo "github.com/rios0rios0/mvntester/internal/infrastructure/repositories/central"
	fsRepo "github.com/rios0rios0/mvntester/internal/infrastructure/repositories/filesystem"
	mavenRepo "github.com/rios0rios0/mvntester/internal/infrastructure/repositories/maven"
	reportRepo "github.com/rios0rios0/mvntester/internal/infrastructure/repositories/report"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Collaborators that depend on settings are provided as factories
	if err := container.Provide(func() MavenFactory {
		return mavenRepo.NewMavenRepository
	}); err != nil {
		return err
	}
	if err := container.Provide(func() ArtifactFactory {
		return centralRepo.NewArtifactRepository
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.ProjectRepository {
		return fsRepo.NewProjectRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.WorkspaceRepository {
		return fsRepo.NewWorkspaceRepository()
	}); err != nil {
		return err
	}

	// Register report registry with all output formats
	if err := container.Provide(func() *ReportRegistry {
		reg := NewReportRegistry()
		reg.Register(reportRepo.NewTableReportRepository())
		reg.Register(reportRepo.NewWikiReportRepository())
		reg.Register(reportRepo.NewYAMLReportRepository())
		return reg
	}); err != nil {
		return err
	}

	return nil
}
