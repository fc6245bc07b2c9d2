// Package sink implements the Output sink contract from spec.md §6 and its
// SPEC_FULL §6 domain-stack siblings: stdout JSON (required), and optional
// Redis Streams / Postgres adapters for embedding this core as the front of
// a larger pipeline.
package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/XavierBriggs/pricedge/pkg/contracts"
)

// Stdout writes the run result as the single JSON object spec.md §6 requires:
// {matched_games, total_matches, timestamp}, plus the unmatched diagnostic
// samples spec.md §7 requires in the user-visible output.
type Stdout struct{}

func (Stdout) Write(_ context.Context, result contracts.RunResult) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("sink: failed to encode result: %w", err)
	}
	return nil
}
