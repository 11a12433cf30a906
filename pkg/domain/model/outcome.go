package model

import "github.com/Brhansenane/repopush/pkg/domain/types"

// OutcomeKind is the top-level tag of a PublishOutcome.
type OutcomeKind string

const (
	OutcomeSucceeded OutcomeKind = "succeeded"
	OutcomeFailed    OutcomeKind = "failed"
	OutcomeBlocked   OutcomeKind = "blocked"
	OutcomeCancelled OutcomeKind = "cancelled"
)

// BlockReason identifies which local precondition stopped the pipeline.
type BlockReason string

const (
	BlockNoCredential        BlockReason = "no-credential"
	BlockEmptyRepositoryName BlockReason = "empty-repository-name"
)

// PublishOutcome is the terminal result of one publish attempt. Exactly one
// outcome is produced per attempt and it is not mutated afterwards.
type PublishOutcome struct {
	Kind          OutcomeKind         `json:"kind"`
	Reason        BlockReason         `json:"reason,omitempty"`
	RepositoryURL string              `json:"repository_url,omitempty"`
	Manifest      []ManifestEntry     `json:"manifest,omitempty"`
	Category      types.ErrorCategory `json:"category,omitempty"`
	Detail        string              `json:"detail,omitempty"`
}

// Succeeded builds the success outcome carrying the repository URL and the
// manifest of files that were written, in selection order.
func Succeeded(url string, manifest []ManifestEntry) *PublishOutcome {
	return &PublishOutcome{
		Kind:          OutcomeSucceeded,
		RepositoryURL: url,
		Manifest:      manifest,
	}
}

// Failed builds the failure outcome for a classified error.
func Failed(category types.ErrorCategory, detail string) *PublishOutcome {
	return &PublishOutcome{
		Kind:     OutcomeFailed,
		Category: category,
		Detail:   detail,
	}
}

// Blocked builds the outcome for a precondition that was never met. Blocked
// is not a system fault and gets a non-alarming presentation.
func Blocked(reason BlockReason) *PublishOutcome {
	return &PublishOutcome{
		Kind:   OutcomeBlocked,
		Reason: reason,
	}
}

// Cancelled builds the outcome for a user-declined overwrite confirmation.
func Cancelled() *PublishOutcome {
	return &PublishOutcome{Kind: OutcomeCancelled}
}

// Terminal reports whether the outcome short-circuits without a remote write.
func (o *PublishOutcome) Terminal() bool {
	return o.Kind == OutcomeBlocked || o.Kind == OutcomeCancelled
}
