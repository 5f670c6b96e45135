package handlers

import (
	"net/http"
	"strings"

	"github.com/bigclaw/claw-portal/internal/common"
	"github.com/bigclaw/claw-portal/internal/dashboard"
	"github.com/bigclaw/claw-portal/internal/models"
)

// FragmentHandler serves a single section's latest fragment. Clients poll
// these to refresh one area without reloading the page.
type FragmentHandler struct {
	logger *common.Logger
	store  *dashboard.SnapshotStore
}

// NewFragmentHandler creates a new fragment handler.
func NewFragmentHandler(logger *common.Logger, store *dashboard.SnapshotStore) *FragmentHandler {
	return &FragmentHandler{logger: logger, store: store}
}

// knownSections guards against arbitrary path segments.
var knownSections = map[models.Section]bool{
	models.SectionPortfolio: true,
	models.SectionSentiment: true,
	models.SectionChart:     true,
	models.SectionNews:      true,
	models.SectionTimestamp: true,
}

// ServeHTTP handles GET /fragments/{section}.
func (h *FragmentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/fragments/")
	section := models.Section(name)
	if !knownSections[section] {
		WriteError(w, http.StatusNotFound, "unknown section: "+name)
		return
	}

	snap, ok := h.store.Get(section)
	if !ok {
		WriteError(w, http.StatusNotFound, "section not rendered: "+name)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(snap.HTML))
}
