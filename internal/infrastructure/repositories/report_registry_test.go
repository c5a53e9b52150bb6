//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/mvntester/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/mvntester/test/infrastructure/repositorydoubles"
)

func TestReportRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should register and retrieve a report by name", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewReportRegistry()
		reg.Register(&doubles.SpyReportRepository{ReportName: "table"})

		// when
		report, err := reg.Get("table")

		// then
		require.NoError(t, err)
		assert.Equal(t, "table", report.Name())
	})

	t.Run("should fail for an unknown report", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewReportRegistry()
		reg.Register(&doubles.SpyReportRepository{ReportName: "table"})

		// when
		report, err := reg.Get("html")

		// then
		require.ErrorContains(t, err, "table")
		assert.Nil(t, report)
	})

	t.Run("should list registered report names sorted", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewReportRegistry()
		reg.Register(&doubles.SpyReportRepository{ReportName: "yaml"})
		reg.Register(&doubles.SpyReportRepository{ReportName: "table"})
		reg.Register(&doubles.SpyReportRepository{ReportName: "wiki"})

		// when
		names := reg.Names()

		// then
		assert.Equal(t, []string{"table", "wiki", "yaml"}, names)
	})
}
