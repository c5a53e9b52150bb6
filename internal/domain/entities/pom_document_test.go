//go:build unit

package entities_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/mvntester/internal/domain/entities"
)

const minimalPom = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
    <modelVersion>4.0.0</modelVersion>
    <groupId>com.acme</groupId>
    <artifactId>shop</artifactId>
    <version>1.0</version>
</project>
`

func TestPomDocumentRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("should serialize an untouched document byte for byte", func(t *testing.T) {
		t.Parallel()

		// given
		input := `<?xml version="1.0" encoding="UTF-8"?>
<!-- shop build -->
<project xmlns="http://maven.apache.org/POM/4.0.0" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <modelVersion>4.0.0</modelVersion>
  <artifactId>shop</artifactId>
  <properties>
    <java.version>17</java.version>
  </properties>
</project>
`

		// when
		doc, err := entities.ParsePomDocument([]byte(input))
		require.NoError(t, err)
		output, err := doc.Bytes()

		// then
		require.NoError(t, err)
		assert.Equal(t, input, string(output))
	})

	t.Run("should read from a reader and write to a writer", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := entities.ReadPomDocument(bytes.NewBufferString(minimalPom))
		require.NoError(t, err)
		var buf bytes.Buffer

		// when
		_, err = doc.WriteTo(&buf)

		// then
		require.NoError(t, err)
		assert.Equal(t, minimalPom, buf.String())
	})

	t.Run("should reject text that is not XML", func(t *testing.T) {
		t.Parallel()

		// given
		input := []byte("<project><unclosed></project>")

		// when
		_, err := entities.ParsePomDocument(input)

		// then
		require.ErrorIs(t, err, entities.ErrMalformedDocument)
	})
}

func TestPomDocumentProject(t *testing.T) {
	t.Parallel()

	t.Run("should fail when the document has no root", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := entities.ParsePomDocument([]byte(`<?xml version="1.0"?>`))
		require.NoError(t, err)

		// when
		_, err = doc.Project()

		// then
		require.ErrorIs(t, err, entities.ErrMalformedDocument)
	})

	t.Run("should fail when the root is not a project", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := entities.ParsePomDocument([]byte(`<settings xmlns="http://maven.apache.org/POM/4.0.0"/>`))
		require.NoError(t, err)

		// when
		_, err = doc.Project()

		// then
		require.ErrorIs(t, err, entities.ErrMalformedDocument)
	})

	t.Run("should fail when the project is outside the namespace", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := entities.ParsePomDocument([]byte(`<project><artifactId>shop</artifactId></project>`))
		require.NoError(t, err)

		// when
		_, err = doc.Identity()

		// then
		require.ErrorIs(t, err, entities.ErrMalformedDocument)
	})

	t.Run("should accept a prefixed project", func(t *testing.T) {
		t.Parallel()

		// given
		input := `<pom:project xmlns:pom="http://maven.apache.org/POM/4.0.0">` +
			`<pom:artifactId>shop</pom:artifactId></pom:project>`
		doc, err := entities.ParsePomDocument([]byte(input))
		require.NoError(t, err)

		// when
		identity, err := doc.Identity()

		// then
		require.NoError(t, err)
		assert.Equal(t, "shop", identity.ArtifactID)
	})
}

func TestPomDocumentQueries(t *testing.T) {
	t.Parallel()

	input := `<project xmlns="http://maven.apache.org/POM/4.0.0">
    <parent>
        <groupId>com.acme</groupId>
        <artifactId>parent</artifactId>
        <version>7</version>
    </parent>
    <artifactId>shop</artifactId>
    <organization>
        <name>ACME Corp</name>
    </organization>
    <dependencies>
        <dependency>
            <groupId>org.slf4j</groupId>
            <artifactId>slf4j-api</artifactId>
        </dependency>
        <x:dependency xmlns:x="urn:other">
            <x:groupId>org.slf4j</x:groupId>
            <x:artifactId>slf4j-api</x:artifactId>
        </x:dependency>
    </dependencies>
    <dependencyManagement>
        <dependencies>
            <dependency>
                <groupId>org.slf4j</groupId>
                <artifactId>slf4j-api</artifactId>
                <version>1.7.36</version>
            </dependency>
        </dependencies>
    </dependencyManagement>
</project>`

	t.Run("should fall back to the parent for groupId and version", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := entities.ParsePomDocument([]byte(input))
		require.NoError(t, err)

		// when
		identity, err := doc.Identity()

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ProjectIdentity{
			GroupID:      "com.acme",
			ArtifactID:   "shop",
			Version:      "7",
			Organization: "ACME Corp",
		}, identity)
	})

	t.Run("should only see elements of the project namespace", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := entities.ParsePomDocument([]byte(input))
		require.NoError(t, err)
		project, err := doc.Project()
		require.NoError(t, err)
		dependencies := doc.Child(project, "dependencies")

		// when
		matches := doc.FindDependencies(dependencies, "org.slf4j", "slf4j-api")

		// then
		assert.Len(t, matches, 1)
	})

	t.Run("should walk nested paths", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := entities.ParsePomDocument([]byte(input))
		require.NoError(t, err)
		project, err := doc.Project()
		require.NoError(t, err)

		// when
		managed := doc.Path(project, "dependencyManagement", "dependencies", "dependency")

		// then
		require.Len(t, managed, 1)
		assert.Equal(t, "1.7.36", doc.ChildText(managed[0], "version"))
		assert.Equal(t, "1.7.36", doc.ManagedVersion("org.slf4j", "slf4j-api"))
		assert.Empty(t, doc.ManagedVersion("org.slf4j", "jul-to-slf4j"))
	})
}

func TestPomDocumentMutators(t *testing.T) {
	t.Parallel()

	t.Run("should indent appended children like their siblings", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := entities.ParsePomDocument([]byte(minimalPom))
		require.NoError(t, err)
		project, err := doc.Project()
		require.NoError(t, err)

		// when
		doc.AppendChild(project, "packaging", "pom")
		output, err := doc.Bytes()

		// then
		require.NoError(t, err)
		assert.Contains(t, string(output), "    <version>1.0</version>\n    <packaging>pom</packaging>\n</project>")
	})

	t.Run("should reuse the namespace prefix of the parent", func(t *testing.T) {
		t.Parallel()

		// given
		input := `<pom:project xmlns:pom="http://maven.apache.org/POM/4.0.0"></pom:project>`
		doc, err := entities.ParsePomDocument([]byte(input))
		require.NoError(t, err)
		project, err := doc.Project()
		require.NoError(t, err)

		// when
		child := doc.EnsureChild(project, "build")

		// then
		assert.Equal(t, "pom", child.Space)
		assert.Same(t, child, doc.Child(project, "build"))
	})

	t.Run("should declare the namespace when the parent is in another one", func(t *testing.T) {
		t.Parallel()

		// given
		input := `<project xmlns="http://maven.apache.org/POM/4.0.0"><x:extra xmlns:x="urn:other"/></project>`
		doc, err := entities.ParsePomDocument([]byte(input))
		require.NoError(t, err)
		project, err := doc.Project()
		require.NoError(t, err)
		extra := project.ChildElements()[0]

		// when
		child := doc.AppendChild(extra, "note", "kept")

		// then
		assert.Empty(t, child.Space)
		assert.Equal(t, entities.PomNamespace, child.SelectAttrValue("xmlns", ""))
	})

	t.Run("should remove a child together with its indentation", func(t *testing.T) {
		t.Parallel()

		// given
		doc, err := entities.ParsePomDocument([]byte(minimalPom))
		require.NoError(t, err)
		project, err := doc.Project()
		require.NoError(t, err)

		// when
		doc.RemoveChild(project, doc.Child(project, "version"))
		output, err := doc.Bytes()

		// then
		require.NoError(t, err)
		assert.Contains(t, string(output), "    <artifactId>shop</artifactId>\n</project>")
	})
}

func TestPomDocumentEqual(t *testing.T) {
	t.Parallel()

	t.Run("should ignore indentation differences", func(t *testing.T) {
		t.Parallel()

		// given
		left, err := entities.ParsePomDocument([]byte(minimalPom))
		require.NoError(t, err)
		right, err := entities.ParsePomDocument([]byte(
			`<?xml version="1.0" encoding="UTF-8"?><project xmlns="http://maven.apache.org/POM/4.0.0">` +
				`<modelVersion>4.0.0</modelVersion><groupId>com.acme</groupId>` +
				`<artifactId>shop</artifactId><version>1.0</version></project>`,
		))
		require.NoError(t, err)

		// when
		equal := left.Equal(right)

		// then
		assert.True(t, equal)
	})

	t.Run("should see different text", func(t *testing.T) {
		t.Parallel()

		// given
		left, err := entities.ParsePomDocument([]byte(minimalPom))
		require.NoError(t, err)
		right, err := entities.ParsePomDocument(bytes.Replace([]byte(minimalPom), []byte("1.0<"), []byte("2.0<"), 1))
		require.NoError(t, err)

		// when
		equal := left.Equal(right)

		// then
		assert.False(t, equal)
	})
}
