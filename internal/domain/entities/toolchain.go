package entities

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const minVersionPrefix = 2

var (
	javaVersionPattern  = regexp.MustCompile(`Java version: (\S+)`)
	mavenVersionPattern = regexp.MustCompile(`Apache Maven (\S+)`)
	numericPrefix       = regexp.MustCompile(`^\d+(?:\.\d+)*`)
)

// VersionRequirement ties a line pattern of the toolchain version report to
// the value the user asked for. Requirements are evaluated in slice order.
type VersionRequirement struct {
	Name     string
	Pattern  *regexp.Regexp
	Expected string
}

// ToolchainRequirements builds the requirements for the versions that were set.
func ToolchainRequirements(jdk, maven string) []VersionRequirement {
	var requirements []VersionRequirement
	if jdk != "" {
		requirements = append(requirements, VersionRequirement{Name: "Java", Pattern: javaVersionPattern, Expected: jdk})
	}
	if maven != "" {
		requirements = append(requirements, VersionRequirement{Name: "Maven", Pattern: mavenVersionPattern, Expected: maven})
	}
	return requirements
}

// CheckToolchain verifies the output of "mvn -version" against requirements.
// A plain expected version ("1.8", "3.9.6") must share its prefix with the
// installed one and be at least two characters long; anything with an
// operator (">=17", "~3.9") is a semver constraint.
func CheckToolchain(output []string, requirements []VersionRequirement) error {
	for _, requirement := range requirements {
		installed, found := findInstalledVersion(output, requirement.Pattern)
		if !found {
			return fmt.Errorf(
				"%w: could not detect the installed %s version; given version was %s",
				ErrEnvironmentMismatch, requirement.Name, requirement.Expected,
			)
		}

		ok, err := versionSatisfies(installed, requirement.Expected)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf(
				"%w: system has %s %s; given version was %s",
				ErrEnvironmentMismatch, requirement.Name, installed, requirement.Expected,
			)
		}
	}
	return nil
}

// IsVersionConstraint reports whether expected is a range rather than a plain version.
func IsVersionConstraint(expected string) bool {
	return strings.ContainsAny(expected, "<>=~^*!,| ")
}

func findInstalledVersion(output []string, pattern *regexp.Regexp) (string, bool) {
	for _, line := range output {
		if match := pattern.FindStringSubmatch(line); match != nil {
			return strings.TrimRight(match[1], ",;"), true
		}
	}
	return "", false
}

func versionSatisfies(installed, expected string) (bool, error) {
	if IsVersionConstraint(expected) {
		constraint, err := semver.NewConstraint(expected)
		if err != nil {
			return false, fmt.Errorf("%w: invalid version constraint %q: %w", ErrInvalidInput, expected, err)
		}
		version, err := semver.NewVersion(numericPrefix.FindString(installed))
		if err != nil {
			return false, fmt.Errorf("%w: unparseable installed version %q", ErrEnvironmentMismatch, installed)
		}
		return constraint.Check(version), nil
	}

	if len(expected) < minVersionPrefix {
		return false, fmt.Errorf(
			"%w: version %q must be at least %d characters wide, e.g. 17, 1.8 or 3.9",
			ErrInvalidInput, expected, minVersionPrefix,
		)
	}
	n := min(len(expected), len(installed))
	return expected[:n] == installed[:n], nil
}
