package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
	"github.com/rios0rios0/mvntester/internal/domain/repositories"
)

// YAMLReportRepository renders results as a YAML document for scripts.
type YAMLReportRepository struct{}

type projectRecord struct {
	Path         string                `yaml:"path"`
	GroupID      string                `yaml:"groupId,omitempty"`
	ArtifactID   string                `yaml:"artifactId,omitempty"`
	Organization string                `yaml:"organization,omitempty"`
	Matched      []entities.Coordinate `yaml:"matched,omitempty"`
	Rewritten    bool                  `yaml:"rewritten"`
	Build        string                `yaml:"build"`
	Error        string                `yaml:"error,omitempty"`
}

type usageRecord struct {
	Path      string   `yaml:"path"`
	GroupID   string   `yaml:"groupId"`
	Artifacts []string `yaml:"artifacts"`
	Error     string   `yaml:"error,omitempty"`
}

// NewYAMLReportRepository creates the YAML report.
func NewYAMLReportRepository() repositories.ReportRepository {
	return &YAMLReportRepository{}
}

func (r *YAMLReportRepository) Name() string { return "yaml" }

// WriteProjects encodes one record per project.
func (r *YAMLReportRepository) WriteProjects(w io.Writer, results []entities.ProjectResult) error {
	records := make([]projectRecord, 0, len(results))
	for _, result := range results {
		records = append(records, projectRecord{
			Path:         result.Path,
			GroupID:      result.Identity.GroupID,
			ArtifactID:   result.Identity.ArtifactID,
			Organization: result.Identity.Organization,
			Matched:      result.Matched,
			Rewritten:    result.Rewritten,
			Build:        result.Build.String(),
			Error:        errorText(result.Err),
		})
	}
	return encode(w, records)
}

// WriteUsages encodes one record per project.
func (r *YAMLReportRepository) WriteUsages(w io.Writer, usages []entities.GroupUsage) error {
	records := make([]usageRecord, 0, len(usages))
	for _, usage := range usages {
		artifacts := usage.ArtifactIDs
		if artifacts == nil {
			artifacts = []string{}
		}
		records = append(records, usageRecord{
			Path:      usage.Path,
			GroupID:   usage.GroupID,
			Artifacts: artifacts,
			Error:     errorText(usage.Err),
		})
	}
	return encode(w, records)
}

func encode(w io.Writer, value any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2) //nolint:mnd // conventional YAML indentation
	if err := encoder.Encode(value); err != nil {
		return err
	}
	return encoder.Close()
}
