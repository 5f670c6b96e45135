// Package models defines the dashboard data structures published by the
// upstream report job. Field names match the exporter's camelCase JSON.
package models

import "time"

// Portfolio is one managed portfolio snapshot.
type Portfolio struct {
	Name         string    `json:"name"`
	Style        string    `json:"style"`
	CreatedAt    string    `json:"createdAt,omitempty"`
	TotalValue   float64   `json:"totalValue"`
	StartingCash float64   `json:"startingCash,omitempty"`
	TotalReturn  float64   `json:"totalReturn"`
	Holdings     []Holding `json:"holdings"`
}

// Holding is a single position within a portfolio.
type Holding struct {
	Ticker       string  `json:"ticker"`
	Shares       float64 `json:"shares"`
	AvgCost      float64 `json:"avgCost,omitempty"`
	CurrentPrice float64 `json:"currentPrice,omitempty"`
}

// PortfolioFeed is the payload of portfolios.json.
type PortfolioFeed struct {
	LastUpdate string      `json:"lastUpdate,omitempty"`
	Portfolios []Portfolio `json:"portfolios"`
}

// SentimentEntry is one ticker's social sentiment reading.
type SentimentEntry struct {
	Ticker         string  `json:"ticker"`
	BullishPercent float64 `json:"bullishPercent"`
	TweetCount     int     `json:"tweetCount,omitempty"`
}

// SentimentFeed is the payload of sentiment.json.
type SentimentFeed struct {
	LastUpdate string           `json:"lastUpdate,omitempty"`
	Tickers    []SentimentEntry `json:"tickers"`
}

// NewsArticle is one news item. Published is a free-form date string
// (ISO or RSS-style) and may be empty.
type NewsArticle struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Source    string `json:"source"`
	Summary   string `json:"summary,omitempty"`
	Published string `json:"published,omitempty"`
}

// NewsFeed is the payload of news.json.
type NewsFeed struct {
	LastUpdate string        `json:"lastUpdate,omitempty"`
	Articles   []NewsArticle `json:"articles"`
}

// Metadata is the payload of metadata.json. LastUpdate is a human-readable
// timestamp written by the exporter, not a machine format.
type Metadata struct {
	LastUpdate string `json:"lastUpdate,omitempty"`
	NextUpdate string `json:"nextUpdate,omitempty"`
	Version    string `json:"version,omitempty"`
}

// Section identifies one independently-rendered dashboard area.
type Section string

const (
	SectionPortfolio Section = "portfolio"
	SectionSentiment Section = "sentiment"
	SectionChart     Section = "chart"
	SectionNews      Section = "news"
	SectionTimestamp Section = "timestamp"
)

// Snapshot is the latest rendered state of one section.
type Snapshot struct {
	Section   Section   `json:"section"`
	HTML      string    `json:"-"`
	Fallback  bool      `json:"fallback"`
	UpdatedAt time.Time `json:"updated_at"`
}
