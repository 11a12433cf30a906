package model

// WorkspaceFile is one entry of the workspace snapshot taken at selection
// time. The snapshot is read-only; the publish pipeline never mutates it.
type WorkspaceFile struct {
	Path     string // workspace-internal path (may include the root prefix)
	Content  string
	IsBinary bool
}
