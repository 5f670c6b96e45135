package handlers

import (
	"html/template"
	"net/http"

	"github.com/bigclaw/claw-portal/internal/common"
	"github.com/bigclaw/claw-portal/internal/config"
	"github.com/bigclaw/claw-portal/internal/dashboard"
	"github.com/bigclaw/claw-portal/internal/models"
)

// sectionTitles maps sections to their page headings. The timestamp line
// renders in the footer, not as a titled section.
var sectionTitles = map[models.Section]string{
	models.SectionPortfolio: "Portfolios",
	models.SectionSentiment: "Social Sentiment",
	models.SectionChart:     "Performance",
	models.SectionNews:      "Market News",
}

// displayOrder is the fixed section order on the page.
var displayOrder = []models.Section{
	models.SectionPortfolio,
	models.SectionSentiment,
	models.SectionChart,
	models.SectionNews,
}

var pageTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>BigClaw Dashboard</title>
  <link rel="stylesheet" href="/static/dashboard.css">
</head>
<body>
  <header>
    <h1>BigClaw Dashboard</h1>
    <div class="meta">{{.Timestamp}}</div>
  </header>
  <main>
    {{range .Sections}}<section id="{{.ID}}">
      <h2>{{.Title}}</h2>
      {{.Body}}
    </section>
    {{end}}</main>
  <footer>claw-portal {{.Version}}</footer>
</body>
</html>
`))

type sectionView struct {
	ID    string
	Title string
	Body  template.HTML
}

type pageView struct {
	Sections  []sectionView
	Timestamp template.HTML
	Version   string
}

// DashboardHandler serves the assembled dashboard page from the latest
// section snapshots. It never fetches: the pipeline owns all feed access.
type DashboardHandler struct {
	logger *common.Logger
	store  *dashboard.SnapshotStore
}

// NewDashboardHandler creates a new dashboard page handler.
func NewDashboardHandler(logger *common.Logger, store *dashboard.SnapshotStore) *DashboardHandler {
	return &DashboardHandler{logger: logger, store: store}
}

// ServeHTTP renders the dashboard page.
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !RequireMethod(w, r, "GET") {
		return
	}

	view := pageView{Version: config.GetVersion()}

	for _, section := range displayOrder {
		snap, ok := h.store.Get(section)
		if !ok {
			// Disabled or not yet rendered sections are omitted entirely.
			continue
		}
		view.Sections = append(view.Sections, sectionView{
			ID:    string(section),
			Title: sectionTitles[section],
			Body:  template.HTML(snap.HTML),
		})
	}

	if snap, ok := h.store.Get(models.SectionTimestamp); ok {
		view.Timestamp = template.HTML(snap.HTML)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, view); err != nil {
		if h.logger != nil {
			h.logger.Error().Str("error", err.Error()).Msg("failed to render dashboard page")
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
