package interfaces

import (
	"context"

	"github.com/Brhansenane/repopush/pkg/domain/model"
)

// CredentialStore is the external credential storage boundary. Get returns
// (nil, nil) when no credential is stored. Clear is invoked by the pipeline
// only after a remote authentication failure, to force re-authentication on
// the next attempt.
type CredentialStore interface {
	Get(ctx context.Context) (*model.Credential, error)
	Clear(ctx context.Context) error
}
