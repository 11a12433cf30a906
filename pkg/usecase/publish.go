package usecase

import (
	"context"

	"github.com/Brhansenane/repopush/pkg/domain/interfaces"
	"github.com/Brhansenane/repopush/pkg/domain/model"
	"github.com/Brhansenane/repopush/pkg/domain/types"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
)

// Publish orchestrates one publish attempt: credential gate, repository
// resolution, content selection, remote execution, result assembly. Each
// call constructs fresh per-attempt state; concurrent attempts are fully
// independent pipeline instances.
type Publish struct {
	store      interfaces.CredentialStore
	newService interfaces.RepositoryServiceFactory
}

// NewPublish creates the publish use case. The service factory receives the
// credential explicitly; there is no ambient credential lookup.
func NewPublish(store interfaces.CredentialStore, factory interfaces.RepositoryServiceFactory) *Publish {
	return &Publish{
		store:      store,
		newService: factory,
	}
}

// Publish runs the pipeline and always returns a terminal outcome. No error
// crosses this boundary unclassified.
func (uc *Publish) Publish(ctx context.Context, name string, visibility model.Visibility, files []model.WorkspaceFile, root string, confirm interfaces.ConfirmOverwrite) *model.PublishOutcome {
	attemptID := uuid.NewString()
	logger := ctxlog.From(ctx).With("attempt_id", attemptID)
	ctx = ctxlog.With(ctx, logger)

	tracker := model.NewPhaseTracker()
	gate := newCredentialGate(uc.store)

	// Local preconditions: neither reaches the remote layer.
	if blocked := gate.CheckName(ctx, name); blocked != nil {
		uc.advance(ctx, tracker, model.PhaseBlocked)
		logger.Debug("publish blocked", "reason", blocked.Reason)
		return blocked
	}
	cred, blocked := gate.Check(ctx)
	if blocked != nil {
		uc.advance(ctx, tracker, model.PhaseBlocked)
		logger.Debug("publish blocked", "reason", blocked.Reason)
		return blocked
	}
	uc.advance(ctx, tracker, model.PhaseCredentialChecked)

	req := &model.PublishRequest{
		RepositoryName: name,
		Visibility:     visibility,
		Credential:     cred,
	}

	svc := uc.newService(cred)
	resolver := newRepositoryResolver(svc)

	res, err := resolver.Resolve(ctx, cred.Identity.Login, req.RepositoryName)
	if err != nil {
		uc.advance(ctx, tracker, model.PhaseFailed)
		return uc.fail(ctx, err)
	}
	uc.advance(ctx, tracker, model.PhaseResolved)

	// Guardrail against unattended overwrite: an existing repository
	// requires an explicit decision before any write proceeds.
	if res.State == model.RepoExistsAccessible {
		uc.advance(ctx, tracker, model.PhaseConfirmationPending)
		ok, err := confirm(ctx, res.Repository)
		if err != nil || !ok {
			uc.advance(ctx, tracker, model.PhaseCancelled)
			logger.Info("publish cancelled by user",
				"full_name", res.Repository.FullName,
			)
			return model.Cancelled()
		}
		uc.advance(ctx, tracker, model.PhaseResolved)
	}

	selected := SelectContent(ctx, files, root)
	uc.advance(ctx, tracker, model.PhaseSelected)

	url, err := newPublishExecutor(svc).Execute(ctx, req, res, selected)
	if err != nil {
		uc.advance(ctx, tracker, model.PhaseFailed)
		return uc.fail(ctx, err)
	}
	uc.advance(ctx, tracker, model.PhaseExecuted)

	manifest := make([]model.ManifestEntry, 0, len(selected))
	for _, sf := range selected {
		manifest = append(manifest, sf.Entry)
	}

	uc.advance(ctx, tracker, model.PhaseSucceeded)
	return model.Succeeded(url, manifest)
}

// Summarize exposes the result reporter for presentation layers.
func (uc *Publish) Summarize(outcome *model.PublishOutcome) *model.Summary {
	return Summarize(outcome)
}

// fail classifies the error into a single Failed outcome. An authentication
// failure additionally clears the credential store so a stale token is not
// retried silently.
func (uc *Publish) fail(ctx context.Context, err error) *model.PublishOutcome {
	logger := ctxlog.From(ctx)

	category := types.CategoryOf(err)
	logger.Error("publish failed",
		"category", category,
		"error", err,
	)

	if category == types.ErrAuthenticationExpired {
		if clearErr := uc.store.Clear(ctx); clearErr != nil {
			logger.Warn("failed to clear expired credential", "error", clearErr)
		} else {
			logger.Info("cleared expired credential")
		}
	}

	return model.Failed(category, err.Error())
}

// advance moves the phase tracker. An illegal transition is a pipeline bug;
// it is logged loudly but does not abort the attempt.
func (uc *Publish) advance(ctx context.Context, tracker *model.PhaseTracker, next model.Phase) {
	if err := tracker.Advance(next); err != nil {
		ctxlog.From(ctx).Error("pipeline phase error", "error", err)
	}
}
