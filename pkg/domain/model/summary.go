package model

// SummaryLine is one manifest row prepared for display.
type SummaryLine struct {
	Path string `json:"path"`
	Size string `json:"size"` // human readable, e.g. "1.2 KB"
}

// Summary is the presentable form of a PublishOutcome assembled by the
// result reporter. Alarming is false for Blocked and Cancelled: the user
// chose not to proceed or a precondition was never met.
type Summary struct {
	Kind          OutcomeKind   `json:"kind"`
	Title         string        `json:"title"`
	Message       string        `json:"message"`
	RepositoryURL string        `json:"repository_url,omitempty"`
	Files         []SummaryLine `json:"files,omitempty"`
	Alarming      bool          `json:"alarming"`
}
