package usecase

import (
	"context"

	"github.com/Brhansenane/repopush/pkg/domain/interfaces"
	"github.com/Brhansenane/repopush/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const defaultRecentLimit = 10

// RepositoryList is the read-only recent-repositories query used to autofill
// the repository name field. It is independent of the publish pipeline and
// has no effect on any publish outcome.
type RepositoryList struct {
	store      interfaces.CredentialStore
	newService interfaces.RepositoryServiceFactory
}

// NewRepositoryList creates the recent-repositories use case.
func NewRepositoryList(store interfaces.CredentialStore, factory interfaces.RepositoryServiceFactory) *RepositoryList {
	return &RepositoryList{store: store, newService: factory}
}

// RecentRepositories returns the authenticated user's most recently updated
// repositories, newest first.
func (uc *RepositoryList) RecentRepositories(ctx context.Context, limit int) ([]*model.RemoteRepository, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	cred, err := uc.store.Get(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read credential store")
	}
	if !cred.Usable() {
		return nil, goerr.New("no usable credential stored")
	}

	repos, err := uc.newService(cred).ListRecentRepositories(ctx, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list recent repositories")
	}

	ctxlog.From(ctx).Debug("listed recent repositories", "count", len(repos))
	return repos, nil
}
