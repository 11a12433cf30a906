package usecase

import (
	"fmt"

	"github.com/Brhansenane/repopush/pkg/domain/model"
	"github.com/Brhansenane/repopush/pkg/domain/types"
)

// categoryMessages maps each failure category to one fixed, actionable
// user-facing message.
var categoryMessages = map[types.ErrorCategory]string{
	types.ErrNoCredential:          "No GitHub connection found. Connect your account and try again.",
	types.ErrEmptyRepositoryName:   "Repository name is empty. Enter a name and try again.",
	types.ErrAuthenticationExpired: "Your GitHub authentication expired. Reconnect your account and try again.",
	types.ErrRemoteUnavailable:     "GitHub could not be reached. Check your network connection and try again.",
	types.ErrRemoteRejected:        "GitHub rejected the request. Check the repository name and your permissions.",
	types.ErrPartialWriteFailure:   "Publishing stopped partway; some files were pushed before the failure. Retry to complete the upload.",
}

var blockMessages = map[model.BlockReason]string{
	model.BlockNoCredential:        "Connect your GitHub account before publishing.",
	model.BlockEmptyRepositoryName: "Enter a repository name before publishing.",
}

// Summarize assembles a presentable summary from a terminal outcome. It is
// a pure transform with no side effects. Blocked and Cancelled get a
// non-alarming presentation: neither is a system fault.
func Summarize(outcome *model.PublishOutcome) *model.Summary {
	switch outcome.Kind {
	case model.OutcomeSucceeded:
		lines := make([]model.SummaryLine, 0, len(outcome.Manifest))
		for _, entry := range outcome.Manifest {
			lines = append(lines, model.SummaryLine{
				Path: entry.RelativePath,
				Size: FormatSize(entry.SizeBytes),
			})
		}
		return &model.Summary{
			Kind:          model.OutcomeSucceeded,
			Title:         "Published",
			Message:       fmt.Sprintf("Pushed %d files to the repository.", len(lines)),
			RepositoryURL: outcome.RepositoryURL,
			Files:         lines,
		}

	case model.OutcomeFailed:
		msg, ok := categoryMessages[outcome.Category]
		if !ok {
			msg = categoryMessages[types.ErrRemoteUnavailable]
		}
		return &model.Summary{
			Kind:     model.OutcomeFailed,
			Title:    "Publish failed",
			Message:  msg,
			Alarming: true,
		}

	case model.OutcomeCancelled:
		return &model.Summary{
			Kind:    model.OutcomeCancelled,
			Title:   "Publish cancelled",
			Message: "The existing repository was left untouched.",
		}

	default: // blocked
		msg, ok := blockMessages[outcome.Reason]
		if !ok {
			msg = blockMessages[model.BlockNoCredential]
		}
		return &model.Summary{
			Kind:    model.OutcomeBlocked,
			Title:   "Publish not started",
			Message: msg,
		}
	}
}

// FormatSize renders a byte count for display: bytes under 1 KB, otherwise
// one decimal of KB or MB.
func FormatSize(n int) string {
	const (
		kb = 1024
		mb = 1024 * 1024
	)
	switch {
	case n < kb:
		return fmt.Sprintf("%d B", n)
	case n < mb:
		return fmt.Sprintf("%.1f KB", float64(n)/kb)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/mb)
	}
}
