package handlers

import (
	"net/http"

	"github.com/bigclaw/claw-portal/internal/common"
	"github.com/bigclaw/claw-portal/internal/dashboard"
)

// RefreshHandler triggers an immediate refresh pass over the refreshable
// sections, independent of the scheduler gate. Used by operators after the
// report job publishes fresh artifacts outside market hours.
type RefreshHandler struct {
	logger   *common.Logger
	pipeline *dashboard.Pipeline
}

// NewRefreshHandler creates a new refresh handler.
func NewRefreshHandler(logger *common.Logger, pipeline *dashboard.Pipeline) *RefreshHandler {
	return &RefreshHandler{logger: logger, pipeline: pipeline}
}

// ServeHTTP handles POST /api/refresh. The pass runs synchronously; the
// response reports completion, not acceptance.
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	if h.logger != nil {
		h.logger.Info().Msg("manual refresh requested")
	}
	h.pipeline.Refresh(r.Context())

	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
