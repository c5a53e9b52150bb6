package entities

import "errors"

var (
	// ErrInvalidInput covers malformed coordinates, missing target directories and
	// overrides pointing at artifacts that were never published. Fatal for the run.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEnvironmentMismatch means the installed toolchain does not satisfy a requirement.
	ErrEnvironmentMismatch = errors.New("environment mismatch")

	// ErrMalformedDocument means a pom.xml has no namespaced project root.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrBuildFailure is recorded when the rebuild of a project does not succeed.
	ErrBuildFailure = errors.New("build failure")

	// ErrPersistence is recorded when a rewritten document could not be written back.
	ErrPersistence = errors.New("persistence failure")
)
