//go:build unit

package controllers_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
	"github.com/rios0rios0/mvntester/internal/infrastructure/controllers"
	infraRepos "github.com/rios0rios0/mvntester/internal/infrastructure/repositories"
	"github.com/rios0rios0/mvntester/test/domain/commanddoubles"
	doubles "github.com/rios0rios0/mvntester/test/infrastructure/repositorydoubles"
)

// newCommand mounts controller the way main does, with the root persistent flags.
func newCommand(controller entities.Controller) *cobra.Command {
	bind := controller.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use: bind.Use,
		RunE: func(command *cobra.Command, arguments []string) error {
			return controller.Execute(command, arguments)
		},
	}
	cmd.PersistentFlags().String("config", "", "")
	cmd.PersistentFlags().Bool("dry-run", false, "")
	cmd.PersistentFlags().Bool("quiet", false, "")
	cmd.PersistentFlags().Bool("verbose", false, "")
	controller.AddFlags(cmd)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetContext(context.Background())
	return cmd
}

func defaultLoader(_ string) (*entities.Settings, error) {
	return entities.DefaultSettings(), nil
}

func newRegistry(spies ...*doubles.SpyReportRepository) *infraRepos.ReportRegistry {
	reg := infraRepos.NewReportRegistry()
	for _, spy := range spies {
		reg.Register(spy)
	}
	return reg
}

func TestPinController(t *testing.T) {
	t.Parallel()

	t.Run("should pass the flags to the command and render the results", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPinCommand{
			Results: []entities.ProjectResult{{Path: "shop", Build: entities.BuildSucceeded}},
		}
		table := &doubles.SpyReportRepository{ReportName: "table"}
		cmd := newCommand(controllers.NewPinController(stub, defaultLoader, newRegistry(table)))
		cmd.SetArgs([]string{
			"projects",
			"--jdk", "17",
			"--mvn", "3.9",
			"--artifact", "org.slf4j:slf4j-api:2.0.13,junit:junit:4.13.2",
			"-a", "com.google.guava:guava:33.0.0-jre",
			"--dry-run",
			"--forward-only",
		})

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "projects", stub.LastOpts.TargetDir)
		assert.Equal(t, "17", stub.LastOpts.JDK)
		assert.Equal(t, "3.9", stub.LastOpts.Maven)
		assert.Equal(t, []string{
			"org.slf4j:slf4j-api:2.0.13",
			"junit:junit:4.13.2",
			"com.google.guava:guava:33.0.0-jre",
		}, stub.LastOpts.Artifacts)
		assert.True(t, stub.LastOpts.DryRun)
		assert.True(t, stub.LastOpts.ForwardOnly)
		assert.Equal(t, stub.Results, table.Projects)
	})

	t.Run("should default to the current directory", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPinCommand{}
		cmd := newCommand(controllers.NewPinController(
			stub, defaultLoader, newRegistry(&doubles.SpyReportRepository{ReportName: "table"}),
		))
		cmd.SetArgs([]string{})

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, ".", stub.LastOpts.TargetDir)
	})

	t.Run("should use the format flag over the configured one", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPinCommand{}
		table := &doubles.SpyReportRepository{ReportName: "table"}
		wiki := &doubles.SpyReportRepository{ReportName: "wiki"}
		results := []entities.ProjectResult{{Path: "shop"}}
		stub.Results = results
		cmd := newCommand(controllers.NewPinController(stub, defaultLoader, newRegistry(table, wiki)))
		cmd.SetArgs([]string{"--format", "wiki"})

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, results, wiki.Projects)
		assert.Nil(t, table.Projects)
	})

	t.Run("should reject an unknown format before running", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPinCommand{}
		cmd := newCommand(controllers.NewPinController(stub, defaultLoader, newRegistry()))
		cmd.SetArgs([]string{"--format", "html"})

		// when
		err := cmd.Execute()

		// then
		require.ErrorIs(t, err, entities.ErrInvalidInput)
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should return fatal command errors", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPinCommand{ExecuteErr: entities.ErrEnvironmentMismatch}
		table := &doubles.SpyReportRepository{ReportName: "table"}
		cmd := newCommand(controllers.NewPinController(stub, defaultLoader, newRegistry(table)))
		cmd.SetArgs([]string{})

		// when
		err := cmd.Execute()

		// then
		require.ErrorIs(t, err, entities.ErrEnvironmentMismatch)
		assert.Nil(t, table.Projects)
	})

	t.Run("should fail after reporting when a project failed", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPinCommand{Results: []entities.ProjectResult{
			{Path: "shop", Build: entities.BuildSucceeded},
			{Path: "billing", Build: entities.BuildFailed},
		}}
		table := &doubles.SpyReportRepository{ReportName: "table"}
		cmd := newCommand(controllers.NewPinController(stub, defaultLoader, newRegistry(table)))
		cmd.SetArgs([]string{})

		// when
		err := cmd.Execute()

		// then
		require.ErrorIs(t, err, controllers.ErrProjectsFailed)
		assert.Len(t, table.Projects, 2)
	})

	t.Run("should fail when the settings cannot be loaded", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPinCommand{}
		loader := func(string) (*entities.Settings, error) { return nil, errors.New("bad yaml") }
		cmd := newCommand(controllers.NewPinController(stub, loader, newRegistry()))
		cmd.SetArgs([]string{"--config", "broken.yaml"})

		// when
		err := cmd.Execute()

		// then
		require.ErrorContains(t, err, "bad yaml")
		assert.Zero(t, stub.ExecuteCallCount)
	})
}
