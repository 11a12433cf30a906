package usecase

import (
	"context"

	"github.com/Brhansenane/repopush/pkg/domain/interfaces"
	"github.com/Brhansenane/repopush/pkg/domain/model"
	"github.com/Brhansenane/repopush/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// publishExecutor performs the remote write: it ensures the repository
// exists, then pushes each selected file to the default branch. Writes are
// sequential and there is no retry loop; the first failure aborts the rest.
// The destination may hold a subset of files after a mid-write failure --
// that is surfaced as partial_write_failure, not hidden.
type publishExecutor struct {
	svc interfaces.RepositoryService
}

func newPublishExecutor(svc interfaces.RepositoryService) *publishExecutor {
	return &publishExecutor{svc: svc}
}

// Execute returns the canonical web URL of the repository on success.
func (e *publishExecutor) Execute(ctx context.Context, req *model.PublishRequest, res *model.Resolution, selected []model.SelectedFile) (string, error) {
	logger := ctxlog.From(ctx)

	repo := res.Repository
	if res.State == model.RepoNotFound {
		created, err := e.svc.CreateRepository(ctx, req.RepositoryName, req.Visibility.Private())
		if err != nil {
			return "", goerr.Wrap(err, "failed to create repository",
				goerr.V("name", req.RepositoryName),
			)
		}
		logger.Info("created repository",
			"full_name", created.FullName,
			"private", created.Private,
		)
		repo = created
	}

	owner := repo.Owner
	if owner == "" {
		owner = req.Credential.Identity.Login
	}
	branch := repo.Branch()

	written := 0
	for _, sf := range selected {
		if err := e.svc.PutFileContents(ctx, owner, repo.Name, sf.Entry.RelativePath, []byte(sf.File.Content), branch); err != nil {
			if written > 0 {
				return "", goerr.Wrap(err, "publish aborted after partial write",
					goerr.T(types.ErrTagPartialWriteFailure),
					goerr.V("written", written),
					goerr.V("failed_path", sf.Entry.RelativePath),
				)
			}
			return "", goerr.Wrap(err, "failed to write file",
				goerr.V("path", sf.Entry.RelativePath),
			)
		}
		written++
		logger.Debug("wrote file",
			"path", sf.Entry.RelativePath,
			"size_bytes", sf.Entry.SizeBytes,
		)
	}

	logger.Info("published workspace",
		"full_name", repo.FullName,
		"branch", branch,
		"file_count", written,
	)

	return repo.HTMLURL, nil
}
