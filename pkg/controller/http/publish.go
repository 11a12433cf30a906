package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Brhansenane/repopush/pkg/domain/interfaces"
	"github.com/Brhansenane/repopush/pkg/domain/model"
	"github.com/Brhansenane/repopush/pkg/domain/types"
	"github.com/Brhansenane/repopush/pkg/utils/async"
)

// PublishHandler runs the publish pipeline for HTTP callers.
type PublishHandler struct {
	publishUC interfaces.PublishUseCase
}

// NewPublishHandler creates a new PublishHandler
func NewPublishHandler(publishUC interfaces.PublishUseCase) *PublishHandler {
	return &PublishHandler{publishUC: publishUC}
}

type publishFileEntry struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	IsBinary bool   `json:"is_binary"`
}

type publishRequestBody struct {
	RepositoryName   string             `json:"repository_name"`
	Visibility       string             `json:"visibility"`
	ConfirmOverwrite bool               `json:"confirm_overwrite"`
	WorkspaceRoot    string             `json:"workspace_root"`
	Files            []publishFileEntry `json:"files"`
}

type publishResponseBody struct {
	Summary *model.Summary        `json:"summary"`
	Outcome *model.PublishOutcome `json:"outcome"`
}

// Handle processes a publish request. The caller's overwrite decision comes
// in as confirm_overwrite; HTTP callers are non-interactive, so the decision
// function simply returns that flag.
func (h *PublishHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	var body publishRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Warn("invalid publish request body", "error", err)
		writeError(w, goerr.Wrap(err, "invalid JSON payload"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	visibility, err := model.ParseVisibility(body.Visibility)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	files := make([]model.WorkspaceFile, 0, len(body.Files))
	for _, f := range body.Files {
		files = append(files, model.WorkspaceFile{
			Path:     f.Path,
			Content:  f.Content,
			IsBinary: f.IsBinary,
		})
	}

	confirm := func(ctx context.Context, repo *model.RemoteRepository) (bool, error) {
		return body.ConfirmOverwrite, nil
	}

	outcome := h.publishUC.Publish(ctx, body.RepositoryName, visibility, files, body.WorkspaceRoot, confirm)
	summary := h.publishUC.Summarize(outcome)

	writeJSON(w, statusForOutcome(outcome), &publishResponseBody{
		Summary: summary,
		Outcome: outcome,
	})

	// Audit trail is written off the request path; Blocked and Cancelled
	// are diagnostics, not faults.
	async.Dispatch(ctx, func(ctx context.Context) error {
		auditOutcome(ctx, body.RepositoryName, outcome)
		return nil
	})
}

// statusForOutcome maps a terminal outcome to an HTTP status code.
func statusForOutcome(outcome *model.PublishOutcome) int {
	switch outcome.Kind {
	case model.OutcomeSucceeded:
		return http.StatusOK
	case model.OutcomeBlocked:
		return http.StatusBadRequest
	case model.OutcomeCancelled:
		return http.StatusConflict
	default:
		switch outcome.Category {
		case types.ErrAuthenticationExpired:
			return http.StatusUnauthorized
		case types.ErrRemoteUnavailable:
			return http.StatusBadGateway
		default:
			return http.StatusUnprocessableEntity
		}
	}
}

// auditOutcome records the attempt result. Failed outcomes are also reported
// to Sentry when a DSN is configured (CaptureException is a no-op otherwise).
func auditOutcome(ctx context.Context, name string, outcome *model.PublishOutcome) {
	logger := ctxlog.From(ctx)

	switch outcome.Kind {
	case model.OutcomeFailed:
		logger.Error("publish attempt failed",
			"repository_name", name,
			"category", outcome.Category,
			"detail", outcome.Detail,
		)
		sentry.CaptureException(goerr.New("publish failed",
			goerr.V("repository_name", name),
			goerr.V("category", outcome.Category),
			goerr.V("detail", outcome.Detail),
		))
	case model.OutcomeSucceeded:
		logger.Info("publish attempt succeeded",
			"repository_name", name,
			"repository_url", outcome.RepositoryURL,
			"file_count", len(outcome.Manifest),
		)
	default:
		logger.Debug("publish attempt ended without writes",
			"repository_name", name,
			"kind", outcome.Kind,
			"reason", outcome.Reason,
		)
	}
}
