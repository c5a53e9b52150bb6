//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
	"github.com/rios0rios0/mvntester/internal/domain/repositories"
)

// SpyReportRepository implements repositories.ReportRepository and records what it rendered.
type SpyReportRepository struct {
	ReportName string
	WriteErr   error
	Projects   []entities.ProjectResult
	Usages     []entities.GroupUsage
}

var _ repositories.ReportRepository = (*SpyReportRepository)(nil)

func (r *SpyReportRepository) Name() string { return r.ReportName }

func (r *SpyReportRepository) WriteProjects(_ io.Writer, results []entities.ProjectResult) error {
	r.Projects = results
	return r.WriteErr
}

func (r *SpyReportRepository) WriteUsages(_ io.Writer, usages []entities.GroupUsage) error {
	r.Usages = usages
	return r.WriteErr
}
