//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
)

func TestSetLanguageLevel(t *testing.T) {
	t.Parallel()

	t.Run("should create build plugins with a compiler plugin", func(t *testing.T) {
		t.Parallel()

		// given
		doc := mustParse(t, minimalPom)

		// when
		result, err := entities.SetLanguageLevel(doc, "17")

		// then
		require.NoError(t, err)
		project, err := result.Project()
		require.NoError(t, err)
		plugins := result.Path(project, "build", "plugins", "plugin")
		require.Len(t, plugins, 1)
		assert.Equal(t, "org.apache.maven.plugins", result.ChildText(plugins[0], "groupId"))
		assert.Equal(t, "maven-compiler-plugin", result.ChildText(plugins[0], "artifactId"))
		configuration := result.Child(plugins[0], "configuration")
		require.NotNil(t, configuration)
		assert.Equal(t, "17", result.ChildText(configuration, "source"))
		assert.Equal(t, "17", result.ChildText(configuration, "target"))
	})

	t.Run("should replace existing compiler plugins and keep the others", func(t *testing.T) {
		t.Parallel()

		// given
		doc := mustParse(t, `<project xmlns="http://maven.apache.org/POM/4.0.0">
    <build>
        <plugins>
            <plugin>
                <artifactId>maven-compiler-plugin</artifactId>
                <configuration>
                    <source>1.8</source>
                    <target>1.8</target>
                </configuration>
            </plugin>
            <plugin>
                <groupId>org.apache.maven.plugins</groupId>
                <artifactId>maven-surefire-plugin</artifactId>
            </plugin>
            <plugin>
                <groupId>org.codehaus.mojo</groupId>
                <artifactId>maven-compiler-plugin</artifactId>
            </plugin>
        </plugins>
    </build>
</project>`)

		// when
		result, err := entities.SetLanguageLevel(doc, "21")

		// then
		require.NoError(t, err)
		project, err := result.Project()
		require.NoError(t, err)
		plugins := result.Path(project, "build", "plugins", "plugin")
		require.Len(t, plugins, 3)
		assert.Equal(t, "maven-surefire-plugin", result.ChildText(plugins[0], "artifactId"))
		assert.Equal(t, "org.codehaus.mojo", result.ChildText(plugins[1], "groupId"))
		assert.Equal(t, "21", result.ChildText(result.Child(plugins[2], "configuration"), "source"))
	})

	t.Run("should be idempotent", func(t *testing.T) {
		t.Parallel()

		// given
		once, err := entities.SetLanguageLevel(mustParse(t, inlinePinnedPom), "17")
		require.NoError(t, err)
		first := mustBytes(t, once)

		// when
		twice, err := entities.SetLanguageLevel(mustParse(t, first), "17")

		// then
		require.NoError(t, err)
		assert.Equal(t, first, mustBytes(t, twice))
	})

	t.Run("should reject an empty level", func(t *testing.T) {
		t.Parallel()

		// given
		doc := mustParse(t, minimalPom)

		// when
		_, err := entities.SetLanguageLevel(doc, "")

		// then
		require.ErrorIs(t, err, entities.ErrInvalidInput)
	})

	t.Run("should reject a malformed document", func(t *testing.T) {
		t.Parallel()

		// given
		doc := mustParse(t, `<project/>`)

		// when
		_, err := entities.SetLanguageLevel(doc, "17")

		// then
		require.ErrorIs(t, err, entities.ErrMalformedDocument)
	})
}
