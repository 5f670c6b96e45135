package dashboard

import (
	"context"

	"github.com/bigclaw/claw-portal/internal/common"
	"github.com/bigclaw/claw-portal/internal/models"
)

// Section fallback fragments. Any failure inside a cycle (transport, parse,
// render) replaces the section's whole content with its fallback; the raw
// error goes to the log, never to the page.
const (
	PortfolioFallback = `<p class="section-error">Unable to load portfolio data</p>`
	SentimentFallback = `<p class="section-error">Unable to load sentiment data</p>`
	NewsFallback      = `<p class="section-error">Unable to load news</p>`
	TimestampFallback = `<span class="last-update">Data not yet available</span>`
)

// Cycle is one fetch-render attempt for one section: fetch the artifact,
// parse it, render the fragment, store the result. All-or-nothing: any
// error stores the section fallback instead. Cycles for different sections
// are fully independent.
type Cycle struct {
	section  models.Section
	run      func(ctx context.Context) (string, error)
	fallback string
	store    *SnapshotStore
	logger   *common.Logger
}

// NewCycle creates a cycle for a section. run performs fetch+parse+render
// and returns the fragment HTML.
func NewCycle(section models.Section, store *SnapshotStore, logger *common.Logger, fallback string, run func(ctx context.Context) (string, error)) *Cycle {
	return &Cycle{
		section:  section,
		run:      run,
		fallback: fallback,
		store:    store,
		logger:   logger,
	}
}

// Section returns the section this cycle owns.
func (c *Cycle) Section() models.Section {
	return c.section
}

// Run executes one fetch-render attempt and stores the outcome.
func (c *Cycle) Run(ctx context.Context) {
	html, err := c.run(ctx)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn().
				Str("section", string(c.section)).
				Str("error", err.Error()).
				Msg("section refresh failed, rendering fallback")
		}
		c.store.Put(c.section, c.fallback, true)
		return
	}

	c.store.Put(c.section, html, false)
}
