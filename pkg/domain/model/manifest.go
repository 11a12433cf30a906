package model

// ManifestEntry describes one file that was selected for publishing.
// SizeBytes is the UTF-8 byte length of the content, not the rune count.
type ManifestEntry struct {
	RelativePath string `json:"path"`
	SizeBytes    int    `json:"size_bytes"`
}

// SelectedFile pairs a workspace file with its manifest entry. The slice
// order produced by the selector is the order files are written in.
type SelectedFile struct {
	File  WorkspaceFile
	Entry ManifestEntry
}
