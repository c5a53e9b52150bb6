//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/mvntester/internal/domain/repositories"
)

// SpyMavenRepository implements repositories.MavenRepository as a configurable spy.
type SpyMavenRepository struct {
	// --- DependencyTree ---
	Trees     map[string][]string // dir -> report lines
	TreeErrs  map[string]error    // dir -> error
	TreeCalls []string

	// --- Build ---
	BuildFailures map[string]bool // dir -> build reports failure
	BuildErr      error
	BuildCalls    []string

	// --- Version ---
	VersionOutput []string
	VersionErr    error
	VersionCalls  int
}

var _ repositories.MavenRepository = (*SpyMavenRepository)(nil)

func (m *SpyMavenRepository) DependencyTree(_ context.Context, dir string) ([]string, error) {
	m.TreeCalls = append(m.TreeCalls, dir)
	return m.Trees[dir], m.TreeErrs[dir]
}

func (m *SpyMavenRepository) Build(_ context.Context, dir string) (bool, error) {
	m.BuildCalls = append(m.BuildCalls, dir)
	if m.BuildErr != nil {
		return false, m.BuildErr
	}
	return !m.BuildFailures[dir], nil
}

func (m *SpyMavenRepository) Version(_ context.Context) ([]string, error) {
	m.VersionCalls++
	return m.VersionOutput, m.VersionErr
}
