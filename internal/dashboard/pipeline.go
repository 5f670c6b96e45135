package dashboard

import (
	"context"
	"sync"

	"github.com/bigclaw/claw-portal/internal/common"
	"github.com/bigclaw/claw-portal/internal/feed"
	"github.com/bigclaw/claw-portal/internal/models"
	"github.com/bigclaw/claw-portal/internal/render"
)

// Feed is the artifact source consumed by the pipeline.
type Feed interface {
	FetchPortfolios(ctx context.Context) (*models.PortfolioFeed, error)
	FetchSentiment(ctx context.Context) (*models.SentimentFeed, error)
	FetchNews(ctx context.Context) (*models.NewsFeed, error)
	FetchMetadata(ctx context.Context) (*models.Metadata, error)
	ProbeChart(ctx context.Context) (bool, error)
	URL(path string) string
}

// Options is the dashboard capability set.
type Options struct {
	News               bool
	PortfolioStartDate bool
}

// Pipeline owns every section's fetch-render cycle. Bootstrap runs all of
// them once; the scheduler and the manual refresh endpoint re-run the
// refreshable subset (everything except the chart probe).
type Pipeline struct {
	all         []*Cycle
	refreshable []*Cycle
	store       *SnapshotStore
	logger      *common.Logger
}

// NewPipeline wires the section renderers to the feed and builds one cycle
// per enabled section.
func NewPipeline(src Feed, store *SnapshotStore, logger *common.Logger, opts Options) *Pipeline {
	p := &Pipeline{store: store, logger: logger}

	portfolios := &render.PortfolioRenderer{ShowStartDate: opts.PortfolioStartDate}
	sentiment := &render.SentimentRenderer{}
	news := &render.NewsRenderer{}
	chart := &render.ChartRenderer{ImageURL: src.URL(feed.PathChart)}
	timestamp := &render.TimestampRenderer{}

	portfolioCycle := NewCycle(models.SectionPortfolio, store, logger, PortfolioFallback,
		func(ctx context.Context) (string, error) {
			payload, err := src.FetchPortfolios(ctx)
			if err != nil {
				return "", err
			}
			return portfolios.Render(payload)
		})

	sentimentCycle := NewCycle(models.SectionSentiment, store, logger, SentimentFallback,
		func(ctx context.Context) (string, error) {
			payload, err := src.FetchSentiment(ctx)
			if err != nil {
				return "", err
			}
			return sentiment.Render(payload)
		})

	timestampCycle := NewCycle(models.SectionTimestamp, store, logger, TimestampFallback,
		func(ctx context.Context) (string, error) {
			meta, err := src.FetchMetadata(ctx)
			if err != nil {
				return "", err
			}
			return timestamp.Render(meta)
		})

	// The chart cycle is an existence probe, not a data fetch. A missing or
	// unreachable artifact is the expected "not yet generated" state, so
	// probe errors degrade to the pending fragment rather than the
	// section-error path.
	chartCycle := NewCycle(models.SectionChart, store, logger,
		`<p class="chart-pending">`+render.ChartPendingMessage+`</p>`,
		func(ctx context.Context) (string, error) {
			found, err := src.ProbeChart(ctx)
			if err != nil {
				if logger != nil {
					logger.Debug().Str("error", err.Error()).Msg("chart probe unreachable, treating as pending")
				}
				found = false
			}
			return chart.Render(found)
		})

	p.all = []*Cycle{portfolioCycle, sentimentCycle, timestampCycle, chartCycle}
	p.refreshable = []*Cycle{portfolioCycle, sentimentCycle, timestampCycle}

	if opts.News {
		newsCycle := NewCycle(models.SectionNews, store, logger, NewsFallback,
			func(ctx context.Context) (string, error) {
				payload, err := src.FetchNews(ctx)
				if err != nil {
					return "", err
				}
				return news.Render(payload)
			})
		p.all = append(p.all, newsCycle)
		p.refreshable = append(p.refreshable, newsCycle)
	}

	return p
}

// RunAll runs every cycle once, concurrently, and waits for completion.
// Used at bootstrap: the only time the chart probe runs.
func (p *Pipeline) RunAll(ctx context.Context) {
	p.runGroup(ctx, p.all)
}

// Refresh re-runs the refreshable cycles (no chart probe) concurrently and
// waits for completion. Callers that must not block run it in a goroutine.
func (p *Pipeline) Refresh(ctx context.Context) {
	p.runGroup(ctx, p.refreshable)
}

func (p *Pipeline) runGroup(ctx context.Context, cycles []*Cycle) {
	var wg sync.WaitGroup
	for _, c := range cycles {
		wg.Add(1)
		go func(c *Cycle) {
			defer wg.Done()
			c.Run(ctx)
		}(c)
	}
	wg.Wait()
}

// Store returns the snapshot store the cycles write into.
func (p *Pipeline) Store() *SnapshotStore {
	return p.store
}

// Sections returns the sections this pipeline renders, in bootstrap order.
func (p *Pipeline) Sections() []models.Section {
	out := make([]models.Section, 0, len(p.all))
	for _, c := range p.all {
		out = append(out, c.Section())
	}
	return out
}
