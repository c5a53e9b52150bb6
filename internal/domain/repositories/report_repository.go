package repositories

import (
	"io"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
)

// ReportRepository renders run results in one output format.
type ReportRepository interface {
	Name() string
	WriteProjects(w io.Writer, results []entities.ProjectResult) error
	WriteUsages(w io.Writer, usages []entities.GroupUsage) error
}
