//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/mvntester/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// VersionOverrideBuilder helps create test overrides with a fluent interface.
type VersionOverrideBuilder struct {
	*testkit.BaseBuilder
	groupID    string
	artifactID string
	version    string
}

// NewVersionOverrideBuilder creates a new override builder with sensible defaults.
func NewVersionOverrideBuilder() *VersionOverrideBuilder {
	return &VersionOverrideBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		groupID:     "org.slf4j",
		artifactID:  "slf4j-api",
		version:     "2.0.13",
	}
}

// WithGroupID sets the groupId.
func (b *VersionOverrideBuilder) WithGroupID(groupID string) *VersionOverrideBuilder {
	b.groupID = groupID
	return b
}

// WithArtifactID sets the artifactId.
func (b *VersionOverrideBuilder) WithArtifactID(artifactID string) *VersionOverrideBuilder {
	b.artifactID = artifactID
	return b
}

// WithVersion sets the version.
func (b *VersionOverrideBuilder) WithVersion(version string) *VersionOverrideBuilder {
	b.version = version
	return b
}

// Build creates the override (satisfies testkit.Builder interface).
func (b *VersionOverrideBuilder) Build() interface{} {
	return b.BuildOverride()
}

// BuildOverride creates the override with a concrete return type.
func (b *VersionOverrideBuilder) BuildOverride() entities.VersionOverride {
	return entities.VersionOverride{
		GroupID:    b.groupID,
		ArtifactID: b.artifactID,
		Version:    b.version,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *VersionOverrideBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.groupID = "org.slf4j"
	b.artifactID = "slf4j-api"
	b.version = "2.0.13"
	return b
}

// Clone creates a deep copy of the VersionOverrideBuilder.
func (b *VersionOverrideBuilder) Clone() testkit.Builder {
	return &VersionOverrideBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		groupID:     b.groupID,
		artifactID:  b.artifactID,
		version:     b.version,
	}
}
