//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
)

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should provide defaults without a file", func(t *testing.T) {
		t.Parallel()

		// given, when
		settings, err := entities.NewSettings("")

		// then
		require.NoError(t, err)
		assert.Equal(t, "mvn", settings.Maven.Command)
		assert.Equal(t, "--batch-mode dependency:tree", settings.Maven.TreeArgs)
		assert.Equal(t, "BUILD SUCCESS", settings.Maven.SuccessMarker)
		assert.Equal(t, 30*time.Minute, settings.Maven.Timeout)
		assert.Equal(t, "https://search.maven.org", settings.Repository.URL)
		assert.Equal(t, "pom.xml", settings.Workspace.PomFile)
		assert.Contains(t, settings.Workspace.ExcludeDirs, "target")
		assert.Equal(t, "table", settings.Report.Format)
		assert.Equal(t, entities.MatchFullScan, settings.MatchMode())
	})

	t.Run("should read values from a file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), ".mvntester.yaml")
		content := `maven:
  command: ./mvnw
  timeout: 5m
scan:
  forward_only: true
report:
  format: wiki
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "./mvnw", settings.Maven.Command)
		assert.Equal(t, 5*time.Minute, settings.Maven.Timeout)
		assert.Equal(t, "BUILD SUCCESS", settings.Maven.SuccessMarker)
		assert.Equal(t, entities.MatchForwardOnly, settings.MatchMode())
		assert.Equal(t, "wiki", settings.Report.Format)
	})

	t.Run("should let environment variables override values", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("MVNTESTER_MAVEN_COMMAND", "/opt/maven/bin/mvn")

		// when
		settings, err := entities.NewSettings("")

		// then
		require.NoError(t, err)
		assert.Equal(t, "/opt/maven/bin/mvn", settings.Maven.Command)
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
	})

	t.Run("should reject an invalid cache size", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "mvntester.yaml")
		require.NoError(t, os.WriteFile(path, []byte("repository:\n  cache_size: 0\n"), 0o600))

		// when
		_, err := entities.NewSettings(path)

		// then
		require.ErrorContains(t, err, "cache_size")
	})
}
