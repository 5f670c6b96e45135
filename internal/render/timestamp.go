package render

import (
	"html/template"

	"github.com/bigclaw/claw-portal/internal/models"
)

// UnknownTimestamp is the in-band default when metadata.json loads fine but
// carries no lastUpdate field. The fetch-failure fallback is a different
// string owned by the cycle; the two must never be conflated.
const UnknownTimestamp = "Unknown"

var timestampTmpl = template.Must(template.New("timestamp").Parse(
	`<span class="last-update">Last updated: {{.}}</span>`))

// TimestampRenderer renders the last-update line from metadata.json.
type TimestampRenderer struct{}

// Render shows the exporter's human-readable timestamp, or "Unknown" when
// the field is absent.
func (r *TimestampRenderer) Render(meta *models.Metadata) (string, error) {
	last := meta.LastUpdate
	if last == "" {
		last = UnknownTimestamp
	}
	return execute(timestampTmpl, last)
}
