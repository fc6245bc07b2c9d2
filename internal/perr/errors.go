// Package perr names the error kinds from spec.md §7 as a small
// sentinel type, so callers can branch with errors.As instead of string
// matching, while every package still wraps with fmt.Errorf("...: %w", err)
// the way the rest of this codebase does at package boundaries.
package perr

import "fmt"

type Kind string

const (
	NormalizationFailed Kind = "normalization_failed"
	PeriodMismatch      Kind = "period_mismatch"
	NoCandidateEvent    Kind = "no_candidate_event"
	LineUnpaired        Kind = "line_unpaired"
	OddsInvalid         Kind = "odds_invalid"
	ScraperFailure      Kind = "scraper_failure"
	FeedUnavailable     Kind = "feed_unavailable"
)

// Error wraps an underlying error with one of the kinds above and the event
// it occurred on, so diagnostics can be grouped without re-parsing messages.
type Error struct {
	Kind  Kind
	Event string
	Err   error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Event)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Event, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a kinded error, wrapping an optional cause.
func New(kind Kind, event string, cause error) *Error {
	return &Error{Kind: kind, Event: event, Err: cause}
}

// Fatal reports whether a kind terminates the run (spec.md §7: only
// FeedUnavailable is fatal; every other kind is recovered per-item).
func (k Kind) Fatal() bool {
	return k == FeedUnavailable
}
