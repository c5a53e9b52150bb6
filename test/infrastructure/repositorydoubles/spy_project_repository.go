//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
	"github.com/rios0rios0/mvntester/internal/domain/repositories"
)

// SpyProjectRepository implements repositories.ProjectRepository over in-memory pom.xml contents.
type SpyProjectRepository struct {
	// --- Discover ---
	Projects    []string
	DiscoverErr error

	// --- Load ---
	Documents map[string]string // dir -> pom.xml content
	LoadErr   error
	LoadCalls []string

	// --- Save ---
	SaveErr error
	Saved   map[string]string // dir -> serialized document
}

var _ repositories.ProjectRepository = (*SpyProjectRepository)(nil)

func (p *SpyProjectRepository) Discover(
	_ context.Context, _ string, _ entities.WorkspaceSettings,
) ([]string, error) {
	return p.Projects, p.DiscoverErr
}

func (p *SpyProjectRepository) Load(dir string, _ entities.WorkspaceSettings) (*entities.PomDocument, error) {
	p.LoadCalls = append(p.LoadCalls, dir)
	if p.LoadErr != nil {
		return nil, p.LoadErr
	}
	return entities.ParsePomDocument([]byte(p.Documents[dir]))
}

func (p *SpyProjectRepository) Save(dir string, _ entities.WorkspaceSettings, doc *entities.PomDocument) error {
	if p.SaveErr != nil {
		return p.SaveErr
	}
	data, err := doc.Bytes()
	if err != nil {
		return err
	}
	if p.Saved == nil {
		p.Saved = make(map[string]string)
	}
	p.Saved[dir] = string(data)
	return nil
}

// SaveCount returns how many documents were persisted.
func (p *SpyProjectRepository) SaveCount() int {
	return len(p.Saved)
}
