//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/mvntester/internal/domain/commands"
	"github.com/rios0rios0/mvntester/internal/domain/entities"
)

// StubPinCommand is a stub implementation of commands.Pin.
type StubPinCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Results          []entities.ProjectResult
	LastSettings     *entities.Settings
	LastOpts         commands.PinOptions
}

var _ commands.Pin = (*StubPinCommand)(nil)

func (s *StubPinCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.PinOptions,
) ([]entities.ProjectResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Results, s.ExecuteErr
}
