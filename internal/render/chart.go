package render

import "html/template"

// ChartPendingMessage is shown while the chart artifact does not exist yet.
// A missing chart is the expected state before the first trading day.
const ChartPendingMessage = "Chart will appear after the first trading day"

var chartTmpl = template.Must(template.New("chart").Parse(
	`<img class="performance-chart" src="{{.}}" alt="Portfolio performance chart">`))

var chartPendingTmpl = template.Must(template.New("chart-pending").Parse(
	`<p class="chart-pending">` + ChartPendingMessage + `</p>`))

// ChartRenderer renders the performance chart section from the result of
// the existence probe. No chart data is parsed; the probe outcome is the
// whole input.
type ChartRenderer struct {
	ImageURL string
}

// Render embeds the chart image when the probe found it, or the pending
// message when it does not exist yet.
func (r *ChartRenderer) Render(found bool) (string, error) {
	if !found {
		return execute(chartPendingTmpl, nil)
	}
	return execute(chartTmpl, r.ImageURL)
}
