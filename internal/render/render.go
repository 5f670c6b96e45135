// Package render turns fetched feed payloads into dashboard HTML fragments.
// Each renderer owns one section and rebuilds its fragment from scratch on
// every call; nothing is patched in place. Renderers do no I/O and no
// per-item error recovery: a malformed entry fails the whole section so the
// fetch-render cycle can swap in the section fallback.
package render

import (
	"html/template"
	"strconv"
	"strings"
)

// execute renders a parsed template into a string.
func execute(t *template.Template, data interface{}) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// formatPercent renders a float without trailing zeros ("72", "59.5").
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
