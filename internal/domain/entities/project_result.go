package entities

// BuildStatus is the outcome of rebuilding a project.
type BuildStatus int

const (
	BuildUnknown BuildStatus = iota
	BuildSucceeded
	BuildFailed
)

func (s BuildStatus) String() string {
	switch s {
	case BuildSucceeded:
		return "success"
	case BuildFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ProjectResult records what happened to one project during a run.
type ProjectResult struct {
	Path      string
	Identity  ProjectIdentity
	Matched   []Coordinate
	Rewritten bool
	Build     BuildStatus
	Err       error
}

// Failed reports whether the project hit a per-project error or a failed build.
func (r ProjectResult) Failed() bool {
	return r.Err != nil || r.Build == BuildFailed
}

// GroupUsage lists the artifacts of one group a project depends on.
type GroupUsage struct {
	Path        string
	GroupID     string
	ArtifactIDs []string
	Err         error
}
