package usecase

import (
	"context"
	"net/http"

	"github.com/Brhansenane/repopush/pkg/domain/interfaces"
	"github.com/Brhansenane/repopush/pkg/domain/model"
	"github.com/Brhansenane/repopush/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// repositoryResolver determines whether the target repository exists. A 404
// means the repository is absent and will be created during execution; any
// other lookup failure propagates classified. Conflating an auth failure
// with "repository absent" would trigger an unintended create-then-fail
// cycle, so the distinction is load-bearing here.
type repositoryResolver struct {
	svc interfaces.RepositoryService
}

func newRepositoryResolver(svc interfaces.RepositoryService) *repositoryResolver {
	return &repositoryResolver{svc: svc}
}

// Resolve looks up owner/name and maps the result to a resolution state.
func (r *repositoryResolver) Resolve(ctx context.Context, owner, name string) (*model.Resolution, error) {
	logger := ctxlog.From(ctx)

	repo, err := r.svc.GetRepository(ctx, owner, name)
	switch {
	case err == nil:
		logger.Info("target repository exists",
			"full_name", repo.FullName,
			"default_branch", repo.Branch(),
		)
		return &model.Resolution{State: model.RepoExistsAccessible, Repository: repo}, nil

	case goerr.HasTag(err, types.ErrTagNotFound):
		logger.Info("target repository not found, will create",
			"owner", owner,
			"name", name,
		)
		return &model.Resolution{State: model.RepoNotFound}, nil

	case goerr.HasTag(err, types.ErrTagRemoteRejected) && statusCodeOf(err) == http.StatusForbidden:
		logger.Warn("target repository exists but is not accessible",
			"owner", owner,
			"name", name,
		)
		return &model.Resolution{State: model.RepoExistsInaccessible}, err

	default:
		return nil, err
	}
}

// statusCodeOf extracts the status_code value attached at the remote boundary.
func statusCodeOf(err error) int {
	if values := goerr.Values(err); values != nil {
		if code, ok := values["status_code"].(int); ok {
			return code
		}
	}
	return 0
}
