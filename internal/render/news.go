package render

import (
	"html/template"

	"github.com/bigclaw/claw-portal/internal/common"
	"github.com/bigclaw/claw-portal/internal/models"
)

// NoNewsMessage is the in-band marker for an empty article list. It is a
// normal render result, distinct from the fetch-failure fallback.
const NoNewsMessage = "No news available yet"

var newsTmpl = template.Must(template.New("news").Parse(`{{range .}}<div class="news-item">
  <a href="{{.Link}}" target="_blank" rel="noopener noreferrer">{{.Title}}</a>
  {{if .Summary}}<p class="summary">{{.Summary}}</p>
  {{end}}<span class="source">{{.SourceLine}}</span>
</div>
{{end}}`))

var newsEmptyTmpl = template.Must(template.New("news-empty").Parse(
	`<p class="no-news">` + NoNewsMessage + `</p>`))

type newsView struct {
	Title      string
	Link       string
	Summary    string
	SourceLine string
}

// NewsRenderer renders the news section (capability-gated).
type NewsRenderer struct{}

// Render builds news items in feed order. Article links open in a new
// browsing context with rel=noopener so the target page cannot reach back
// to the dashboard window.
func (r *NewsRenderer) Render(payload *models.NewsFeed) (string, error) {
	if len(payload.Articles) == 0 {
		return execute(newsEmptyTmpl, nil)
	}

	views := make([]newsView, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		sourceLine := a.Source
		if a.Published != "" {
			if published := common.FormatDate(a.Published, common.DateShort); published != "" {
				sourceLine += " • " + published
			}
		}
		views = append(views, newsView{
			Title:      a.Title,
			Link:       a.Link,
			Summary:    a.Summary,
			SourceLine: sourceLine,
		})
	}

	return execute(newsTmpl, views)
}
