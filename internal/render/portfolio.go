package render

import (
	"html/template"

	"github.com/bigclaw/claw-portal/internal/common"
	"github.com/bigclaw/claw-portal/internal/models"
)

var portfolioTmpl = template.Must(template.New("portfolio").Parse(`{{range .}}<div class="portfolio-card">
  <div class="portfolio-header">
    <h3>{{.Name}}</h3>
    <span class="portfolio-style">{{.StyleLine}}</span>
  </div>
  <div class="portfolio-value">{{.Value}}</div>
  <div class="portfolio-return {{.ReturnClass}}">{{.Return}}</div>
  {{if .Holdings}}<ul class="holdings">
    {{range .Holdings}}<li><span class="ticker">{{.Ticker}}</span> {{.Shares}} shares</li>
    {{end}}</ul>
  {{else}}<p class="no-holdings">No current holdings</p>
  {{end}}</div>
{{end}}`))

// portfolioView is the display form of one portfolio card.
type portfolioView struct {
	Name        string
	StyleLine   string
	Value       string
	Return      string
	ReturnClass string
	Holdings    []holdingView
}

type holdingView struct {
	Ticker string
	Shares string
}

// PortfolioRenderer renders the portfolio section. ShowStartDate controls
// the optional "Started <date>" suffix on the style line (capability set).
type PortfolioRenderer struct {
	ShowStartDate bool
}

// Render builds portfolio cards in feed order.
func (r *PortfolioRenderer) Render(payload *models.PortfolioFeed) (string, error) {
	views := make([]portfolioView, 0, len(payload.Portfolios))
	for _, p := range payload.Portfolios {
		styleLine := p.Style
		if r.ShowStartDate && p.CreatedAt != "" {
			if started := common.FormatDate(p.CreatedAt, common.DateLong); started != "" {
				styleLine += " • Started " + started
			}
		}

		holdings := make([]holdingView, 0, len(p.Holdings))
		for _, h := range p.Holdings {
			holdings = append(holdings, holdingView{
				Ticker: h.Ticker,
				Shares: common.FormatShares(h.Shares),
			})
		}

		views = append(views, portfolioView{
			Name:        p.Name,
			StyleLine:   styleLine,
			Value:       common.FormatValue(p.TotalValue),
			Return:      common.FormatSignedPct(p.TotalReturn),
			ReturnClass: common.ClassifyChange(p.TotalReturn).Class,
			Holdings:    holdings,
		})
	}

	return execute(portfolioTmpl, views)
}
