//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/mvntester/internal/domain/commands"
	"github.com/rios0rios0/mvntester/internal/domain/entities"
)

// StubScanCommand is a stub implementation of commands.Scan.
type StubScanCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Usages           []entities.GroupUsage
	LastOpts         commands.ScanOptions
}

var _ commands.Scan = (*StubScanCommand)(nil)

func (s *StubScanCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.ScanOptions,
) ([]entities.GroupUsage, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Usages, s.ExecuteErr
}
