package types

import "github.com/m-mizutani/goerr/v2"

// ErrorCategory is the user-facing classification of a publish failure.
// Every error that crosses the pipeline boundary carries exactly one category.
type ErrorCategory string

const (
	// ErrNoCredential: no usable credential in the store. Validated locally.
	ErrNoCredential ErrorCategory = "no_credential"

	// ErrEmptyRepositoryName: repository name empty after trimming. Validated locally.
	ErrEmptyRepositoryName ErrorCategory = "empty_repository_name"

	// ErrAuthenticationExpired: remote returned 401. Triggers credential invalidation.
	ErrAuthenticationExpired ErrorCategory = "authentication_expired"

	// ErrRemoteUnavailable: network failure, timeout, or 5xx response.
	ErrRemoteUnavailable ErrorCategory = "remote_unavailable"

	// ErrRemoteRejected: 4xx response other than 401/404.
	ErrRemoteRejected ErrorCategory = "remote_rejected"

	// ErrPartialWriteFailure: at least one file was written before a write failed.
	ErrPartialWriteFailure ErrorCategory = "partial_write_failure"
)

// goerr tags attached at the remote boundary. ErrTagNotFound is an internal
// signal for the resolver (404 on repository lookup) and never becomes a
// user-facing category.
var (
	ErrTagNotFound            = goerr.NewTag("not_found")
	ErrTagAuthExpired         = goerr.NewTag("auth_expired")
	ErrTagRemoteUnavailable   = goerr.NewTag("remote_unavailable")
	ErrTagRemoteRejected      = goerr.NewTag("remote_rejected")
	ErrTagPartialWriteFailure = goerr.NewTag("partial_write_failure")
)

// CategoryOf maps a classified error to its user-facing category. Errors that
// were never classified (which indicates a bug at the remote boundary) are
// reported as remote_unavailable rather than leaking internals.
func CategoryOf(err error) ErrorCategory {
	switch {
	case goerr.HasTag(err, ErrTagPartialWriteFailure):
		return ErrPartialWriteFailure
	case goerr.HasTag(err, ErrTagAuthExpired):
		return ErrAuthenticationExpired
	case goerr.HasTag(err, ErrTagRemoteRejected):
		return ErrRemoteRejected
	case goerr.HasTag(err, ErrTagRemoteUnavailable):
		return ErrRemoteUnavailable
	default:
		return ErrRemoteUnavailable
	}
}
