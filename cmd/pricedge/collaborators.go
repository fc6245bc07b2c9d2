package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/XavierBriggs/pricedge/internal/retry"
	"github.com/XavierBriggs/pricedge/pkg/contracts"
	"github.com/XavierBriggs/pricedge/pkg/models"
)

// fileReferenceFeed reads the reference-event catalog from a local JSON file
// — a minimal stand-in for the reference-book feed collaborator. spec.md §6
// treats the feed pull itself as out of core scope ("Input: none (feed pull
// is the collaborator's concern)"); this implementation exists only so the
// CLI has something runnable without a live sharp-book integration.
type fileReferenceFeed struct {
	path string
}

func (f *fileReferenceFeed) FetchEvents(_ context.Context) ([]models.ReferenceEvent, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reference feed: failed to read %s: %w", f.path, err)
	}

	var events []models.ReferenceEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("reference feed: failed to parse %s: %w", f.path, err)
	}
	return events, nil
}

// httpScraper is a minimal HTTP JSON adapter for the secondary-book scraper
// collaborator: it POSTs the scrape request and expects a SecondaryGame body
// (or 204 for absent). A real deployment points --scraper-url at whatever
// service performs the actual HTML scraping (out of core scope per
// spec.md §1).
type httpScraper struct {
	baseURL string
	client  *http.Client
	retrier *retry.RetryPolicy
}

func newHTTPScraper(baseURL string, client *http.Client) *httpScraper {
	return &httpScraper{
		baseURL: baseURL,
		client:  client,
		retrier: retry.NewRetryPolicy(3, 500*time.Millisecond),
	}
}

// Scrape POSTs the scrape request, retrying transport errors and 5xx
// responses with the shared exponential-backoff policy (scrapers sit behind
// flaky upstream HTML fetches; a single dropped connection shouldn't cost a
// whole reference event its match attempt).
func (s *httpScraper) Scrape(ctx context.Context, req contracts.ScrapeRequest) (*models.SecondaryGame, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("scraper: failed to marshal request: %w", err)
	}

	var game *models.SecondaryGame
	err = s.retrier.Execute(func() error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/scrape", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("scraper: failed to build request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("X-Request-Id", uuid.NewString())

		resp, err := s.client.Do(httpReq)
		if err != nil {
			return fmt.Errorf("scraper: request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNoContent {
			game = nil
			return nil
		}
		if resp.StatusCode >= 500 {
			return fmt.Errorf("scraper: upstream status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return &retry.Permanent{Err: fmt.Errorf("scraper: unexpected status %d", resp.StatusCode)}
		}

		var g models.SecondaryGame
		if err := json.NewDecoder(resp.Body).Decode(&g); err != nil {
			return &retry.Permanent{Err: fmt.Errorf("scraper: failed to parse response: %w", err)}
		}
		game = &g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

// nullScraper always reports absence; used when no collaborator URL is
// configured, so the orchestrator still runs end-to-end and produces an
// all-unmatched sink result rather than refusing to start.
type nullScraper struct{}

func (n *nullScraper) Scrape(_ context.Context, _ contracts.ScrapeRequest) (*models.SecondaryGame, error) {
	return nil, nil
}
