package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
	"github.com/rios0rios0/mvntester/internal/domain/repositories"
)

const (
	colorSuccess = lipgloss.Color("42")
	colorFailure = lipgloss.Color("196")
	colorMuted   = lipgloss.Color("245")
	colorBorder  = lipgloss.Color("240")

	buildColumn = 4
)

// TableReportRepository renders results as a bordered terminal table.
type TableReportRepository struct{}

// NewTableReportRepository creates the default terminal report.
func NewTableReportRepository() repositories.ReportRepository {
	return &TableReportRepository{}
}

func (r *TableReportRepository) Name() string { return "table" }

// WriteProjects renders one row per project.
func (r *TableReportRepository) WriteProjects(w io.Writer, results []entities.ProjectResult) error {
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		rows = append(rows, []string{
			result.Path,
			result.Identity.GroupID,
			result.Identity.ArtifactID,
			joinCoordinates(result.Matched),
			result.Build.String(),
			errorText(result.Err),
		})
	}

	t := newTable().
		Headers("PROJECT", "GROUP", "ARTIFACT", "MATCHED", "BUILD", "ERROR").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			if col != buildColumn || row >= len(results) {
				return style
			}
			switch results[row].Build {
			case entities.BuildSucceeded:
				return style.Foreground(colorSuccess)
			case entities.BuildFailed:
				return style.Foreground(colorFailure)
			default:
				return style.Foreground(colorMuted)
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// WriteUsages renders one row per project with the artifacts found.
func (r *TableReportRepository) WriteUsages(w io.Writer, usages []entities.GroupUsage) error {
	rows := make([][]string, 0, len(usages))
	for _, usage := range usages {
		rows = append(rows, []string{
			usage.Path,
			usage.GroupID,
			strings.Join(usage.ArtifactIDs, ", "),
			errorText(usage.Err),
		})
	}

	t := newTable().
		Headers("PROJECT", "GROUP", "ARTIFACTS", "ERROR").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			return style
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder))
}

func joinCoordinates(coordinates []entities.Coordinate) string {
	parts := make([]string, 0, len(coordinates))
	for _, coordinate := range coordinates {
		parts = append(parts, coordinate.String())
	}
	return strings.Join(parts, ", ")
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
