package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Brhansenane/repopush/pkg/domain/model"
	"github.com/Brhansenane/repopush/pkg/domain/types"
	"github.com/Brhansenane/repopush/pkg/usecase"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{"zero", 0, "0 B"},
		{"one byte", 1, "1 B"},
		{"just under a KB", 1023, "1023 B"},
		{"exactly one KB", 1024, "1.0 KB"},
		{"one and a half KB", 1536, "1.5 KB"},
		{"just under a MB", 1024*1024 - 1, "1024.0 KB"},
		{"exactly one MB", 1024 * 1024, "1.0 MB"},
		{"two and a half MB", 2621440, "2.5 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, usecase.FormatSize(tt.n)).Equal(tt.want)
		})
	}
}

func TestSummarize_Succeeded(t *testing.T) {
	outcome := model.Succeeded("https://github.com/alice/demo", []model.ManifestEntry{
		{RelativePath: "src/a.ts", SizeBytes: 1},
		{RelativePath: "README.md", SizeBytes: 2048},
	})

	summary := usecase.Summarize(outcome)

	gt.Value(t, summary.Kind).Equal(model.OutcomeSucceeded)
	gt.Value(t, summary.RepositoryURL).Equal("https://github.com/alice/demo")
	gt.Value(t, summary.Alarming).Equal(false)
	gt.Value(t, summary.Files).Equal([]model.SummaryLine{
		{Path: "src/a.ts", Size: "1 B"},
		{Path: "README.md", Size: "2.0 KB"},
	})
}

func TestSummarize_FailedCategories(t *testing.T) {
	categories := []types.ErrorCategory{
		types.ErrAuthenticationExpired,
		types.ErrRemoteUnavailable,
		types.ErrRemoteRejected,
		types.ErrPartialWriteFailure,
	}

	seen := map[string]bool{}
	for _, category := range categories {
		summary := usecase.Summarize(model.Failed(category, "detail"))
		gt.Value(t, summary.Kind).Equal(model.OutcomeFailed)
		gt.Value(t, summary.Alarming).Equal(true)
		gt.Value(t, summary.Message).NotEqual("")
		// Each category maps to its own specific message.
		gt.Value(t, seen[summary.Message]).Equal(false)
		seen[summary.Message] = true
	}
}

func TestSummarize_BlockedAndCancelledAreNotAlarming(t *testing.T) {
	for _, outcome := range []*model.PublishOutcome{
		model.Blocked(model.BlockNoCredential),
		model.Blocked(model.BlockEmptyRepositoryName),
		model.Cancelled(),
	} {
		summary := usecase.Summarize(outcome)
		gt.Value(t, summary.Alarming).Equal(false)
		gt.Value(t, summary.Message).NotEqual("")
	}
}
