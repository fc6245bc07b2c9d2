// Package contracts defines the boundary interfaces between the pure core
// and the external collaborators named in spec.md §6: the scraper, the
// reference feed, and the output sink. The core never performs I/O itself;
// every side effect lives behind one of these interfaces.
package contracts

import (
	"context"

	"github.com/XavierBriggs/pricedge/pkg/models"
)

// ScrapeRequest is the input to the scraper collaborator.
type ScrapeRequest struct {
	Home       string
	Away       string
	SearchTerm string // optional; derived by the orchestrator when empty
	EventID    string // optional, for correlation in logs/diagnostics
}

// Scraper is the secondary-book HTML scraper collaborator. It yields a
// structured per-game record or reports absence; it never returns a partial
// game on total failure.
type Scraper interface {
	Scrape(ctx context.Context, req ScrapeRequest) (*models.SecondaryGame, error)
}

// ReferenceFeed is the sharp reference book's event feed collaborator. It
// yields reference events with raw decimal prices; the orchestrator runs
// market.EnrichReferenceEvent on every fetched event, which derives the NVP
// fields from those raw prices, so NVP values a feed fills in itself are not
// relied on.
type ReferenceFeed interface {
	FetchEvents(ctx context.Context) ([]models.ReferenceEvent, error)
}

// RunResult is the full output of one orchestrator pass, matching the Output
// sink contract in spec.md §6.
type RunResult struct {
	MatchedGames        []MatchedGame                 `json:"matched_games"`
	TotalMatches        int                            `json:"total_matches"`
	TimestampUTC         string                        `json:"timestamp"`
	UnmatchedSecondary   []models.UnmatchedSecondary   `json:"unmatched_secondary"`
	UnmatchedReference   []models.UnmatchedReference   `json:"unmatched_reference"`
}

// MatchedGame bundles one match record with the EV rows produced from it.
type MatchedGame struct {
	models.MatchRecord
	Opportunities []models.EVOpportunity `json:"opportunities"`
}

// Sink is where a run's result lands: stdout JSON by default, or a
// Redis/Postgres adapter (see internal/sink) when the caller wants this core
// to feed a downstream pipeline instead.
type Sink interface {
	Write(ctx context.Context, result RunResult) error
}
