package model

// RemoteRepository is the metadata returned by the remote repository service.
type RemoteRepository struct {
	Owner         string `json:"owner"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	HTMLURL       string `json:"html_url"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
}

// Branch returns the default branch, falling back to "main" when the remote
// metadata does not carry one (freshly created repositories).
func (r *RemoteRepository) Branch() string {
	if r == nil || r.DefaultBranch == "" {
		return "main"
	}
	return r.DefaultBranch
}

// RemoteRepositoryState is the transient result of a repository lookup.
// It is recomputed on every resolver invocation and never persisted.
type RemoteRepositoryState string

const (
	RepoNotFound           RemoteRepositoryState = "not_found"
	RepoExistsAccessible   RemoteRepositoryState = "exists_accessible"
	RepoExistsInaccessible RemoteRepositoryState = "exists_inaccessible"
)

// Resolution bundles the lookup state with the metadata when accessible.
type Resolution struct {
	State      RemoteRepositoryState
	Repository *RemoteRepository // non-nil only for RepoExistsAccessible
}
