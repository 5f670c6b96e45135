package common

import (
	"testing"
)

func TestClassifyChange_SignBoundary(t *testing.T) {
	tests := []struct {
		value     float64
		wantClass string
		wantSign  string
	}{
		{5.25, "positive", "+"},
		{0, "positive", "+"},
		{0.01, "positive", "+"},
		{-0.01, "negative", ""},
		{-12.5, "negative", ""},
	}

	for _, tt := range tests {
		got := ClassifyChange(tt.value)
		if got.Class != tt.wantClass {
			t.Errorf("ClassifyChange(%.2f).Class = %q, want %q", tt.value, got.Class, tt.wantClass)
		}
		if got.Sign != tt.wantSign {
			t.Errorf("ClassifyChange(%.2f).Sign = %q, want %q", tt.value, got.Sign, tt.wantSign)
		}
	}
}

func TestClassifySentiment_Thresholds(t *testing.T) {
	tests := []struct {
		percent   float64
		wantClass string
		wantLabel string
	}{
		{100, "bullish", "Bullish"},
		{60, "bullish", "Bullish"},
		{59.9, "neutral", "Neutral"},
		{50, "neutral", "Neutral"},
		{40.1, "neutral", "Neutral"},
		{40, "bearish", "Bearish"},
		{0, "bearish", "Bearish"},
	}

	for _, tt := range tests {
		got := ClassifySentiment(tt.percent)
		if got.Class != tt.wantClass {
			t.Errorf("ClassifySentiment(%.1f).Class = %q, want %q", tt.percent, got.Class, tt.wantClass)
		}
		if got.Label != tt.wantLabel {
			t.Errorf("ClassifySentiment(%.1f).Label = %q, want %q", tt.percent, got.Label, tt.wantLabel)
		}
	}
}

func TestClassifySentiment_BoundariesNeverNeutral(t *testing.T) {
	if got := ClassifySentiment(60); got.Class == "neutral" {
		t.Error("60 must classify bullish, not neutral")
	}
	if got := ClassifySentiment(40); got.Class == "neutral" {
		t.Error("40 must classify bearish, not neutral")
	}
}

func TestFormatDate_ParsesStandardLayouts(t *testing.T) {
	tests := []struct {
		raw   string
		style DateStyle
		want  string
	}{
		{"2025-06-02T10:00:00Z", DateLong, "June 2, 2025"},
		{"2025-06-02", DateLong, "June 2, 2025"},
		{"2025-06-02", DateShort, "June 2"},
		{"Mon, 02 Jun 2025 10:00:00 GMT", DateLong, "June 2, 2025"},
		{"Mon, 02 Jun 2025 10:00:00 +0000", DateShort, "June 2"},
	}

	for _, tt := range tests {
		got := FormatDate(tt.raw, tt.style)
		if got != tt.want {
			t.Errorf("FormatDate(%q, %s) = %q, want %q", tt.raw, tt.style, got, tt.want)
		}
	}
}

func TestFormatDate_FallbackKeepsFirstTwoSegments(t *testing.T) {
	got := FormatDate("Mon, 02 Jun 2025 around teatime, allegedly", DateLong)
	if got != "Mon, 02 Jun 2025 around teatime" {
		t.Errorf("fallback = %q, want first two comma segments", got)
	}
}

func TestFormatDate_ShortUnparseableReturnsTrimmedOriginal(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"yesterday", "yesterday"},
		{"  sometime soon  ", "sometime soon"},
		{"", ""},
	}

	for _, tt := range tests {
		got := FormatDate(tt.raw, DateLong)
		if got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{1234.56, "$1,234.56"},
		{0, "$0.00"},
		{-500.00, "-$500.00"},
		{1000000.99, "$1,000,000.99"},
	}

	for _, tt := range tests {
		got := FormatCurrency(tt.value)
		if got != tt.want {
			t.Errorf("FormatCurrency(%.2f) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{10000, "$10,000"},
		{10250.75, "$10,250.75"},
		{999.999, "$1,000"},
		{0, "$0"},
		{-2500, "-$2,500"},
	}

	for _, tt := range tests {
		got := FormatValue(tt.value)
		if got != tt.want {
			t.Errorf("FormatValue(%.3f) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatSignedPct(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{5.25, "+5.25%"},
		{0, "+0.00%"},
		{-3.1, "-3.10%"},
	}

	for _, tt := range tests {
		got := FormatSignedPct(tt.value)
		if got != tt.want {
			t.Errorf("FormatSignedPct(%.2f) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatShares(t *testing.T) {
	tests := []struct {
		shares float64
		want   string
	}{
		{10, "10"},
		{2.5, "2.50"},
		{0.33, "0.33"},
	}

	for _, tt := range tests {
		got := FormatShares(tt.shares)
		if got != tt.want {
			t.Errorf("FormatShares(%.2f) = %q, want %q", tt.shares, got, tt.want)
		}
	}
}
