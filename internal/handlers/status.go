package handlers

import (
	"net/http"

	"github.com/bigclaw/claw-portal/internal/common"
	"github.com/bigclaw/claw-portal/internal/dashboard"
)

// StatusHandler reports per-section snapshot state as JSON: whether each
// section currently shows real content or its fallback, and when it was
// last written.
type StatusHandler struct {
	logger    *common.Logger
	store     *dashboard.SnapshotStore
	scheduler *dashboard.Scheduler
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(logger *common.Logger, store *dashboard.SnapshotStore, scheduler *dashboard.Scheduler) *StatusHandler {
	return &StatusHandler{logger: logger, store: store, scheduler: scheduler}
}

// ServeHTTP handles GET /api/dashboard.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	response := map[string]interface{}{
		"sections": h.store.All(),
	}
	if h.scheduler != nil {
		response["refresh"] = string(h.scheduler.State())
	}

	WriteJSON(w, http.StatusOK, response)
}
