package render

import (
	"html/template"

	"github.com/bigclaw/claw-portal/internal/common"
	"github.com/bigclaw/claw-portal/internal/models"
)

var sentimentTmpl = template.Must(template.New("sentiment").Parse(`{{range .}}<div class="sentiment-row {{.Class}}">
  <span class="ticker">{{.Ticker}}</span>
  <span class="percent">{{.Percent}}% bullish</span>
  <span class="label">{{.Label}}</span>
  <span class="attribution">via X/Twitter</span>
</div>
{{end}}`))

type sentimentView struct {
	Ticker  string
	Percent string
	Class   string
	Label   string
}

// SentimentRenderer renders the social sentiment section.
type SentimentRenderer struct{}

// Render builds sentiment rows in feed order.
func (r *SentimentRenderer) Render(payload *models.SentimentFeed) (string, error) {
	views := make([]sentimentView, 0, len(payload.Tickers))
	for _, entry := range payload.Tickers {
		s := common.ClassifySentiment(entry.BullishPercent)
		views = append(views, sentimentView{
			Ticker:  entry.Ticker,
			Percent: formatPercent(entry.BullishPercent),
			Class:   s.Class,
			Label:   s.Label,
		})
	}

	return execute(sentimentTmpl, views)
}
