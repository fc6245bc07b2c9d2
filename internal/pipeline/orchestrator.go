// Package pipeline drives the batch run: pulls reference events, invokes the
// scraper collaborator per event with bounded concurrency, runs the Matcher
// and EV Engine, and writes results to a sink. This is the only package in
// the core that performs I/O or holds mutable state — every other package
// (oddsmath, teamname, sportclass, matcher, market) is pure and re-entrant.
//
// Grounded on edge-detector/internal/detector/engine.go's goroutine/channel
// shape, generalized from one-goroutine-per-stream to a semaphore-bounded
// worker pool over a fixed event list, and on every cmd/*/main.go's
// signal.Notify + context.WithCancel graceful-shutdown pattern.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/XavierBriggs/pricedge/internal/market"
	"github.com/XavierBriggs/pricedge/internal/matcher"
	"github.com/XavierBriggs/pricedge/internal/perr"
	"github.com/XavierBriggs/pricedge/internal/teamname"
	"github.com/XavierBriggs/pricedge/pkg/contracts"
	"github.com/XavierBriggs/pricedge/pkg/models"
	"golang.org/x/time/rate"
)

// Config holds the orchestrator's own tunables from spec.md §5/§6.
type Config struct {
	ConcurrentScrapes     int
	RequestTimeout        time.Duration
	SearchTimeout         time.Duration
	ScrapeTimeout         time.Duration
	MinRequestSpacing     time.Duration // rate-limiter floor between scrape submissions
}

// DefaultConfig matches the concurrency/timeout defaults in spec.md §5/§6.
func DefaultConfig() Config {
	return Config{
		ConcurrentScrapes: 6,
		RequestTimeout:    10 * time.Second,
		SearchTimeout:     15 * time.Second,
		ScrapeTimeout:     60 * time.Second,
		MinRequestSpacing: 150 * time.Millisecond,
	}
}

// Orchestrator is the sole concurrent actor in the core.
type Orchestrator struct {
	cfg          Config
	matcherCfg   matcher.Config
	feed         contracts.ReferenceFeed
	scraper      contracts.Scraper
	sink         contracts.Sink
	limiter      *rate.Limiter

	mu            sync.Mutex
	scrapeErrors  int
	scraped       int
}

// NewOrchestrator wires the three external collaborators named in spec.md §6.
func NewOrchestrator(cfg Config, matcherCfg matcher.Config, feed contracts.ReferenceFeed, scraper contracts.Scraper, sink contracts.Sink) *Orchestrator {
	return &Orchestrator{
		cfg:        cfg,
		matcherCfg: matcherCfg,
		feed:       feed,
		scraper:    scraper,
		sink:       sink,
		limiter:    rate.NewLimiter(rate.Every(cfg.MinRequestSpacing), 1),
	}
}

// scrapeOutcome pairs one reference event with its scrape result (or error).
type scrapeOutcome struct {
	event models.ReferenceEvent
	game  *models.SecondaryGame
	err   error
}

// Run executes one full pass: fetch, scrape (bounded fan-out), match
// (sequential, preserving the matcher's consumed-set invariants), analyze,
// and write. Per-event scrape failures are isolated and logged; they never
// poison the run. Among the error kinds only FeedUnavailable is fatal; a
// failed sink write is also returned as an error.
func (o *Orchestrator) Run(ctx context.Context) (contracts.RunResult, error) {
	events, err := o.feed.FetchEvents(ctx)
	if err != nil {
		fmt.Printf("❌ reference feed unavailable: %v\n", err)
		return contracts.RunResult{}, perr.New(perr.FeedUnavailable, "feed", err)
	}
	fmt.Printf("✓ loaded %d reference events\n", len(events))

	outcomes := o.scrapeAll(ctx, events)

	var games []models.SecondaryGame
	enrichedByID := make(map[string]models.ReferenceEvent, len(events))
	for _, e := range events {
		enrichedByID[e.EventID] = market.EnrichReferenceEvent(e)
	}
	for _, oc := range outcomes {
		if oc.err != nil {
			o.mu.Lock()
			o.scrapeErrors++
			o.mu.Unlock()
			fmt.Printf("⚠️  scrape failed for %s: %v\n", oc.event.EventID, oc.err)
			continue
		}
		if oc.game == nil {
			continue
		}
		games = append(games, *oc.game)
	}

	enrichedList := make([]models.ReferenceEvent, 0, len(enrichedByID))
	for _, e := range enrichedByID {
		enrichedList = append(enrichedList, e)
	}

	// Matching runs sequentially over the pre-collected scrapes: the
	// "at most one match per reference event" invariant is a per-run
	// consumed-set that would otherwise need a mutex under concurrent
	// matching (spec.md §5 prefers gathering scrapes in parallel, matching
	// sequentially).
	matched, unmatchedSecondary, unmatchedReference := matcher.Match(o.matcherCfg, enrichedList, games)

	result := contracts.RunResult{
		TimestampUTC:       time.Now().UTC().Format(time.RFC3339),
		UnmatchedSecondary: unmatchedSecondary,
		UnmatchedReference: unmatchedReference,
	}

	gameByRef := make(map[string]models.SecondaryGame, len(games))
	for _, g := range games {
		gameByRef[g.BetbckGameID] = g
	}

	for _, rec := range matched {
		ref, ok := enrichedByID[rec.ReferenceEventID]
		if !ok {
			continue
		}
		sec, ok := gameByRef[rec.SecondaryGameRef]
		if !ok {
			continue
		}

		rows, diags := market.Analyze(ref, sec, rec.Orientation)
		for _, d := range diags {
			fmt.Printf("⚠️  %v\n", d)
		}

		result.MatchedGames = append(result.MatchedGames, contracts.MatchedGame{
			MatchRecord:   rec,
			Opportunities: rows,
		})
	}
	result.TotalMatches = len(result.MatchedGames)

	fmt.Printf("📊 matched=%d unmatched_secondary=%d unmatched_reference=%d scrape_errors=%d\n",
		result.TotalMatches, len(unmatchedSecondary), len(unmatchedReference), o.scrapeErrors)

	if o.sink != nil {
		if err := o.sink.Write(ctx, result); err != nil {
			return result, fmt.Errorf("pipeline: sink write failed: %w", err)
		}
	}

	return result, nil
}

func (o *Orchestrator) scrapeAll(ctx context.Context, events []models.ReferenceEvent) []scrapeOutcome {
	sem := make(chan struct{}, o.cfg.ConcurrentScrapes)
	outcomes := make([]scrapeOutcome, len(events))
	var wg sync.WaitGroup

	for i, e := range events {
		wg.Add(1)
		go func(i int, e models.ReferenceEvent) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				outcomes[i] = scrapeOutcome{event: e, err: ctx.Err()}
				return
			}
			defer func() { <-sem }()

			if err := o.limiter.Wait(ctx); err != nil {
				outcomes[i] = scrapeOutcome{event: e, err: err}
				return
			}

			scrapeCtx, cancel := context.WithTimeout(ctx, o.cfg.ScrapeTimeout)
			defer cancel()

			game, err := o.scraper.Scrape(scrapeCtx, contracts.ScrapeRequest{
				Home:       e.HomeTeam,
				Away:       e.AwayTeam,
				SearchTerm: deriveSearchTerm(teamname.Normalize(e.HomeTeam)),
				EventID:    e.EventID,
			})
			outcomes[i] = scrapeOutcome{event: e, game: game, err: err}
			o.mu.Lock()
			o.scraped++
			o.mu.Unlock()
		}(i, e)
	}

	wg.Wait()
	return outcomes
}

// searchTermDenylist is the deny list from spec.md §4.6.
var searchTermDenylist = map[string]bool{
	"fc": true, "sc": true, "united": true, "city": true, "club": true,
	"de": true, "do": true, "ac": true, "if": true, "bk": true, "aif": true,
	"kc": true, "sr": true, "mg": true, "us": true, "br": true,
}

// deriveSearchTerm implements spec.md §4.6's search-term derivation, used
// when the caller does not supply one.
func deriveSearchTerm(normalizedHome string) string {
	tokens := strings.Fields(normalizedHome)
	if len(tokens) == 0 {
		return normalizedHome
	}

	last := tokens[len(tokens)-1]
	if len(last) > 3 && !searchTermDenylist[last] {
		return last
	}

	first := tokens[0]
	if len(first) > 2 && !searchTermDenylist[first] {
		return first
	}

	return normalizedHome
}

// Metrics returns scrape counters for an embedding HTTP surface.
func (o *Orchestrator) Metrics() (scraped, errors int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.scraped, o.scrapeErrors
}
