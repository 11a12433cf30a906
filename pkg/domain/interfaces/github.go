package interfaces

import (
	"context"

	"github.com/Brhansenane/repopush/pkg/domain/model"
)

// RepositoryService defines the remote repository operations consumed by the
// publish pipeline. Implementations classify every error with the goerr tags
// in pkg/domain/types before returning it.
type RepositoryService interface {
	// GetRepository looks up owner/name. A 404 is returned as an error
	// tagged ErrTagNotFound; callers must not conflate it with other failures.
	GetRepository(ctx context.Context, owner, name string) (*model.RemoteRepository, error)

	// CreateRepository creates a repository under the authenticated user.
	CreateRepository(ctx context.Context, name string, private bool) (*model.RemoteRepository, error)

	// PutFileContents ensures the given content exists at path on branch,
	// creating or updating the file as needed.
	PutFileContents(ctx context.Context, owner, name, path string, content []byte, branch string) error

	// ListRecentRepositories returns the most recently updated repositories
	// of the authenticated user, newest first.
	ListRecentRepositories(ctx context.Context, limit int) ([]*model.RemoteRepository, error)
}

// RepositoryServiceFactory builds a service bound to an explicit credential.
// The pipeline never reads ambient credential state.
type RepositoryServiceFactory func(cred *model.Credential) RepositoryService
