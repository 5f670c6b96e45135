// Package common provides shared utilities for the Claw portal.
package common

import (
	"fmt"
	"strings"
	"time"
)

// Change classifies a signed value for display. Zero counts as a gain.
type Change struct {
	Class string // "positive" or "negative"
	Sign  string // "+" or ""
}

// ClassifyChange maps a signed return to its display classification.
// Non-negative values are positive and carry a "+" prefix.
func ClassifyChange(v float64) Change {
	if v >= 0 {
		return Change{Class: "positive", Sign: "+"}
	}
	return Change{Class: "negative", Sign: ""}
}

// Sentiment classifies a bullish percentage for display.
type Sentiment struct {
	Class string // "bullish", "bearish" or "neutral"
	Label string // "Bullish", "Bearish" or "Neutral"
}

// ClassifySentiment partitions the bullish percentage three ways.
// 60 and above is bullish, 40 and below is bearish, the band between
// is neutral. The boundary values 60 and 40 are never neutral.
func ClassifySentiment(percent float64) Sentiment {
	switch {
	case percent >= 60:
		return Sentiment{Class: "bullish", Label: "Bullish"}
	case percent <= 40:
		return Sentiment{Class: "bearish", Label: "Bearish"}
	default:
		return Sentiment{Class: "neutral", Label: "Neutral"}
	}
}

// DateStyle selects the rendered date format.
type DateStyle string

const (
	DateLong  DateStyle = "long"  // includes the year: "June 2, 2025"
	DateShort DateStyle = "short" // omits the year: "June 2"
)

// dateLayouts are the accepted input formats, tried in order. ISO forms
// come from the exporter; RFC1123-style strings come from RSS feeds.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	"January 2, 2006",
}

// FormatDate renders a raw date string for display. Unparseable input falls
// back to the first two comma-separated segments of the raw string, which
// recovers a usable fragment from RSS-style dates ("Mon, 02 Jun 2025
// 10:00:00 GMT" -> "Mon, 02 Jun 2025"). Never panics; empty input yields "".
func FormatDate(raw string, style DateStyle) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if style == DateShort {
			return t.Format("January 2")
		}
		return t.Format("January 2, 2006")
	}

	// Salvage pass for strings no layout accepts
	parts := strings.Split(raw, ",")
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[0] + "," + parts[1])
	}
	return raw
}

// FormatCurrency formats a float as a dollar amount with comma separators.
func FormatCurrency(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}
	whole := int64(v)
	cents := int64((v-float64(whole))*100 + 0.5)
	if cents >= 100 {
		whole++
		cents -= 100
	}

	s := groupThousands(whole)
	if negative {
		return fmt.Sprintf("-$%s.%02d", s, cents)
	}
	return fmt.Sprintf("$%s.%02d", s, cents)
}

// FormatValue formats a portfolio total for display: comma-grouped with a
// "$" prefix, dropping the cents when the value is a whole amount
// ("$10,000", "$10,250.75").
func FormatValue(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}
	whole := int64(v)
	cents := int64((v-float64(whole))*100 + 0.5)
	if cents >= 100 {
		whole++
		cents -= 100
	}

	s := groupThousands(whole)
	prefix := "$"
	if negative {
		prefix = "-$"
	}
	if cents == 0 {
		return prefix + s
	}
	return fmt.Sprintf("%s%s.%02d", prefix, s, cents)
}

// FormatSignedPct formats a percentage with +/- prefix.
func FormatSignedPct(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}

// FormatShares renders a share count, trimming a trailing ".00" so whole
// positions read naturally ("10 shares", "2.50 shares").
func FormatShares(shares float64) string {
	s := fmt.Sprintf("%.2f", shares)
	s = strings.TrimSuffix(s, ".00")
	return s
}

// groupThousands inserts comma separators into a non-negative integer.
func groupThousands(whole int64) string {
	s := fmt.Sprintf("%d", whole)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
