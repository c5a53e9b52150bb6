package entities

import (
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"
)

// logLevelPattern matches the "[INFO] " tag Maven puts in front of every report line.
var logLevelPattern = regexp.MustCompile(`^\[[A-Z]+\] ?`)

// TreeLine is one dependency node of a "mvn dependency:tree" report.
// PrefixLength is the number of indentation and tree-drawing runes in front
// of the coordinate; a larger value means a deeper node.
type TreeLine struct {
	PrefixLength int
	GroupID      string
	ArtifactID   string
	Packaging    string
	Classifier   string
	Version      string
	Scope        string
}

// IsRoot reports whether the line is the report root, i.e. the project itself.
func (l TreeLine) IsRoot() bool {
	return l.PrefixLength == 0
}

// Coordinate returns the library coordinate described by the line.
func (l TreeLine) Coordinate() Coordinate {
	return Coordinate{GroupID: l.GroupID, ArtifactID: l.ArtifactID, Version: l.Version}
}

// ParseTree lazily decomposes report lines. Lines that do not carry a
// coordinate (banners, warnings, download progress, omitted duplicates)
// produce nothing.
func ParseTree(lines iter.Seq[string]) iter.Seq[TreeLine] {
	return func(yield func(TreeLine) bool) {
		for line := range lines {
			parsed, ok := ParseTreeLine(line)
			if !ok {
				continue
			}
			if !yield(parsed) {
				return
			}
		}
	}
}

// ParseTreeLine decomposes a single report line.
func ParseTreeLine(line string) (TreeLine, bool) {
	line = strings.TrimRight(line, "\r\n")
	line = logLevelPattern.ReplaceAllString(line, "")

	body := strings.TrimLeftFunc(line, isTreePrefixRune)
	prefixLength := utf8.RuneCountInString(line[:len(line)-len(body)])

	token, _, _ := strings.Cut(body, " ")
	fields := strings.Split(token, ":")

	var parsed TreeLine
	switch len(fields) {
	case 4: //nolint:mnd // groupId:artifactId:packaging:version
		parsed = TreeLine{Packaging: fields[2], Version: fields[3]}
	case 5: //nolint:mnd // groupId:artifactId:packaging:version:scope
		parsed = TreeLine{Packaging: fields[2], Version: fields[3], Scope: fields[4]}
	case 6: //nolint:mnd // groupId:artifactId:packaging:classifier:version:scope
		parsed = TreeLine{Packaging: fields[2], Classifier: fields[3], Version: fields[4], Scope: fields[5]}
	default:
		return TreeLine{}, false
	}

	for _, field := range fields {
		if !coordinatePartPattern.MatchString(field) {
			return TreeLine{}, false
		}
	}

	parsed.PrefixLength = prefixLength
	parsed.GroupID = fields[0]
	parsed.ArtifactID = fields[1]
	return parsed, true
}

func isTreePrefixRune(r rune) bool {
	switch r {
	case ' ', '\t', '|', '+', '-', '\\', '`', '│', '├', '└', '─', '┬':
		return true
	default:
		return false
	}
}
