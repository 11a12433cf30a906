package usecase

import (
	"context"
	"strings"

	"github.com/Brhansenane/repopush/pkg/domain/interfaces"
	"github.com/Brhansenane/repopush/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
)

// credentialGate validates local preconditions before any remote call is
// issued. It performs pure reads only.
type credentialGate struct {
	store interfaces.CredentialStore
}

func newCredentialGate(store interfaces.CredentialStore) *credentialGate {
	return &credentialGate{store: store}
}

// Check reads the stored connection. It returns a blocked outcome when no
// usable credential exists, so no ambiguous remote call is ever attempted.
func (g *credentialGate) Check(ctx context.Context) (*model.Credential, *model.PublishOutcome) {
	logger := ctxlog.From(ctx)

	cred, err := g.store.Get(ctx)
	if err != nil {
		logger.Debug("credential store read failed", "error", err)
		return nil, model.Blocked(model.BlockNoCredential)
	}
	if !cred.Usable() {
		logger.Debug("no usable credential stored")
		return nil, model.Blocked(model.BlockNoCredential)
	}

	return cred, nil
}

// CheckName validates the repository name locally. Whitespace-only names
// never reach the remote layer.
func (g *credentialGate) CheckName(ctx context.Context, name string) *model.PublishOutcome {
	if strings.TrimSpace(name) == "" {
		ctxlog.From(ctx).Debug("empty repository name")
		return model.Blocked(model.BlockEmptyRepositoryName)
	}
	return nil
}
