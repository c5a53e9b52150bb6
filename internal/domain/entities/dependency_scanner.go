package entities

import (
	"slices"
	"strings"
)

// MatchMode selects how IsAnyPresent walks the report.
type MatchMode int

const (
	// MatchFullScan searches the whole buffered report for every candidate.
	MatchFullScan MatchMode = iota

	// MatchForwardOnly consumes the report once: each candidate is searched
	// only after the line where the previous candidate was found, so a
	// candidate whose line appears earlier in the report is missed. An
	// unmatched candidate consumes the rest of the report.
	MatchForwardOnly
)

// FindArtifactsForGroup returns the artifactIds of groupID that appear in
// the report, counting only the top-most occurrence of each subtree: once a
// line matches, every deeper line below it is skipped until the report
// climbs back to the matched depth or above.
func FindArtifactsForGroup(groupID string, lines []string) []string {
	var found []string
	suppressed := false
	suppressedDepth := 0

	for line := range ParseTree(slices.Values(lines)) {
		if line.IsRoot() {
			continue
		}
		if suppressed && line.PrefixLength > suppressedDepth {
			continue
		}
		suppressed = false

		if line.GroupID != groupID {
			continue
		}
		if !slices.Contains(found, line.ArtifactID) {
			found = append(found, line.ArtifactID)
		}
		suppressed = true
		suppressedDepth = line.PrefixLength
	}

	return found
}

// IsAnyPresent returns the candidates whose "groupId:artifactId:" appears in
// the report, in candidate order. The version of each candidate is kept.
func IsAnyPresent(candidates []Coordinate, lines []string, mode MatchMode) []Coordinate {
	var present []Coordinate
	cursor := 0

	for _, candidate := range candidates {
		needle := candidate.Key() + ":"

		start := 0
		if mode == MatchForwardOnly {
			start = cursor
		}

		idx := indexOfLine(lines[min(start, len(lines)):], needle)
		if idx < 0 {
			if mode == MatchForwardOnly {
				cursor = len(lines)
			}
			continue
		}

		present = append(present, candidate)
		if mode == MatchForwardOnly {
			cursor = start + idx + 1
		}
	}

	return present
}

func indexOfLine(lines []string, needle string) int {
	return slices.IndexFunc(lines, func(line string) bool {
		return strings.Contains(line, needle)
	})
}
