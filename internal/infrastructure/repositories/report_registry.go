package repositories

import (
	"fmt"
	"slices"

	domainRepos "github.com/rios0rios0/mvntester/internal/domain/repositories"
)

// ReportRegistry manages all registered report formats.
type ReportRegistry struct {
	reports map[string]domainRepos.ReportRepository
}

// NewReportRegistry creates an empty report registry.
func NewReportRegistry() *ReportRegistry {
	return &ReportRegistry{
		reports: make(map[string]domainRepos.ReportRepository),
	}
}

// Register adds a report under its name.
func (r *ReportRegistry) Register(report domainRepos.ReportRepository) {
	r.reports[report.Name()] = report
}

// Get returns the report with the given name.
func (r *ReportRegistry) Get(name string) (domainRepos.ReportRepository, error) {
	report, ok := r.reports[name]
	if !ok {
		return nil, fmt.Errorf("unknown report format: %q (available: %v)", name, r.Names())
	}
	return report, nil
}

// Names returns the sorted list of registered report names.
func (r *ReportRegistry) Names() []string {
	names := make([]string, 0, len(r.reports))
	for name := range r.reports {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
