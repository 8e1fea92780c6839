package git

// StateInspector reports the repository state of a working directory.
// Implementations never fail: anything short of a readable HEAD is reported
// as no repository.
type StateInspector interface {
	Inspect(cwd string) *RepoStatus
}
