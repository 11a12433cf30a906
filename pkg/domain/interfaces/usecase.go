package interfaces

import (
	"context"

	"github.com/Brhansenane/repopush/pkg/domain/model"
)

// ConfirmOverwrite is the injected decision capability consulted when the
// target repository already exists. Returning false cancels the attempt
// before any write. The repository metadata is passed so interactive callers
// can show what would be overwritten.
type ConfirmOverwrite func(ctx context.Context, repo *model.RemoteRepository) (bool, error)

// PublishUseCase runs one publish attempt end to end and always returns a
// terminal outcome; errors are classified into the outcome, never returned.
// Summarize turns an outcome into its presentable form.
type PublishUseCase interface {
	Publish(ctx context.Context, name string, visibility model.Visibility, files []model.WorkspaceFile, root string, confirm ConfirmOverwrite) *model.PublishOutcome
	Summarize(outcome *model.PublishOutcome) *model.Summary
}

// RepositoryListUseCase is the read-only recent-repositories convenience
// query. It has no effect on any publish outcome.
type RepositoryListUseCase interface {
	RecentRepositories(ctx context.Context, limit int) ([]*model.RemoteRepository, error)
}
