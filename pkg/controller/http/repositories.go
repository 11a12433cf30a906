package http

import (
	"net/http"
	"strconv"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Brhansenane/repopush/pkg/domain/interfaces"
	"github.com/Brhansenane/repopush/pkg/domain/model"
)

var errInvalidLimit = goerr.New("limit must be a non-negative integer")

// RepositoryListHandler serves the recent-repositories autofill query.
type RepositoryListHandler struct {
	listUC interfaces.RepositoryListUseCase
}

// NewRepositoryListHandler creates a new RepositoryListHandler
func NewRepositoryListHandler(listUC interfaces.RepositoryListUseCase) *RepositoryListHandler {
	return &RepositoryListHandler{listUC: listUC}
}

type repositoryListResponse struct {
	Repositories []*model.RemoteRepository `json:"repositories"`
}

// Handle returns the authenticated user's most recently updated repositories.
func (h *RepositoryListHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, errInvalidLimit, http.StatusBadRequest)
			return
		}
		limit = n
	}

	repos, err := h.listUC.RecentRepositories(ctx, limit)
	if err != nil {
		ctxlog.From(ctx).Error("failed to list recent repositories", "error", err)
		writeError(w, err, http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, &repositoryListResponse{Repositories: repos})
}
