package entities

import (
	"fmt"
	"regexp"
	"strings"
)

// coordinatePartPattern matches a single groupId, artifactId or version segment.
var coordinatePartPattern = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)

// Coordinate identifies a Maven library. Identity is groupId:artifactId;
// the version is carried as payload only.
type Coordinate struct {
	GroupID    string `yaml:"groupId"`
	ArtifactID string `yaml:"artifactId"`
	Version    string `yaml:"version,omitempty"`
}

// Key returns the identity used for matching, "groupId:artifactId".
func (c Coordinate) Key() string {
	return c.GroupID + ":" + c.ArtifactID
}

func (c Coordinate) String() string {
	if c.Version == "" {
		return c.Key()
	}
	return c.Key() + ":" + c.Version
}

// VersionOverride pins a coordinate to a version.
type VersionOverride struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// Coordinate returns the override as a coordinate carrying its version.
func (o VersionOverride) Coordinate() Coordinate {
	return Coordinate{GroupID: o.GroupID, ArtifactID: o.ArtifactID, Version: o.Version}
}

func (o VersionOverride) String() string {
	return o.Coordinate().String()
}

// ParseVersionOverride parses a "groupId:artifactId:version" triple.
func ParseVersionOverride(raw string) (VersionOverride, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 3 { //nolint:mnd // groupId:artifactId:version
		return VersionOverride{}, fmt.Errorf(
			"%w: artifact %q is not in the expected format groupId:artifactId:version",
			ErrInvalidInput, raw,
		)
	}
	for _, part := range parts {
		if !coordinatePartPattern.MatchString(part) {
			return VersionOverride{}, fmt.Errorf(
				"%w: artifact %q contains an empty or invalid segment", ErrInvalidInput, raw,
			)
		}
	}
	return VersionOverride{GroupID: parts[0], ArtifactID: parts[1], Version: parts[2]}, nil
}

// ParseVersionOverrides parses every triple, failing on the first malformed one.
func ParseVersionOverrides(raws []string) ([]VersionOverride, error) {
	overrides := make([]VersionOverride, 0, len(raws))
	for _, raw := range raws {
		override, err := ParseVersionOverride(raw)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, override)
	}
	return overrides, nil
}
