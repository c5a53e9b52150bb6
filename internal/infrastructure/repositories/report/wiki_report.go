package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
	"github.com/rios0rios0/mvntester/internal/domain/repositories"
)

const (
	wikiSuccess = `style="background: #ACE1AF" | Success`
	wikiFailure = `style="background: #FFC1CC" | FAIL`
	wikiUnknown = `style="background: #E5E4E2" | Not built`
)

// WikiReportRepository renders results as a MediaWiki table for build pages.
type WikiReportRepository struct{}

// NewWikiReportRepository creates the MediaWiki report.
func NewWikiReportRepository() repositories.ReportRepository {
	return &WikiReportRepository{}
}

func (r *WikiReportRepository) Name() string { return "wiki" }

// WriteProjects writes group, artifact, organization, result and notes per project.
func (r *WikiReportRepository) WriteProjects(w io.Writer, results []entities.ProjectResult) error {
	var sb strings.Builder

	sb.WriteString("{| class=\"wikitable sortable\"\n")
	sb.WriteString("! Group !! Artifact !! Organization !! Result !! Matched !! Notes\n")
	for _, result := range results {
		sb.WriteString("|-\n")
		writeCell(&sb, result.Identity.GroupID)
		writeCell(&sb, fallback(result.Identity.ArtifactID, result.Path))
		writeCell(&sb, result.Identity.Organization)
		sb.WriteString("| " + wikiResult(result) + "\n")
		writeCell(&sb, joinCoordinates(result.Matched))
		writeCell(&sb, errorText(result.Err))
	}
	sb.WriteString("|}\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteUsages writes one row per project with the artifacts found.
func (r *WikiReportRepository) WriteUsages(w io.Writer, usages []entities.GroupUsage) error {
	var sb strings.Builder

	sb.WriteString("{| class=\"wikitable sortable\"\n")
	sb.WriteString("! Project !! Group !! Artifacts\n")
	for _, usage := range usages {
		sb.WriteString("|-\n")
		writeCell(&sb, usage.Path)
		writeCell(&sb, usage.GroupID)
		writeCell(&sb, strings.Join(usage.ArtifactIDs, ", "))
	}
	sb.WriteString("|}\n")

	_, err := fmt.Fprint(w, sb.String())
	return err
}

func wikiResult(result entities.ProjectResult) string {
	switch result.Build {
	case entities.BuildSucceeded:
		return wikiSuccess
	case entities.BuildFailed:
		return wikiFailure
	default:
		if result.Err != nil {
			return wikiFailure
		}
		return wikiUnknown
	}
}

// writeCell escapes the characters MediaWiki treats as cell separators.
func writeCell(sb *strings.Builder, value string) {
	value = strings.ReplaceAll(value, "|", "&#124;")
	value = strings.ReplaceAll(value, "\n", " ")
	sb.WriteString("| " + value + "\n")
}

func fallback(value, alternative string) string {
	if value == "" {
		return alternative
	}
	return value
}
