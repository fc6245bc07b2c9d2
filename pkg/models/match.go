package models

// Orientation records whether the secondary game's "home" lines up with the
// reference event's home (direct) or away (flipped).
type Orientation string

const (
	OrientationDirect  Orientation = "direct"
	OrientationFlipped Orientation = "flipped"
)

// MatchRecord pairs one secondary game to one reference event. A reference
// event id and a secondary game id each appear in at most one MatchRecord per
// run (enforced by the matcher's per-run consumed sets, not by this type).
type MatchRecord struct {
	ReferenceEventID string      `json:"reference_event_id"`
	SecondaryGameRef string      `json:"secondary_game_ref"`
	Orientation      Orientation `json:"orientation"`
	Score            float64     `json:"score"` // 0-100
	Sport            string      `json:"sport"`

	// Denormalized for display in the sink, per spec.md §6.
	ReferenceHomeTeam string `json:"reference_home_team"`
	ReferenceAwayTeam string `json:"reference_away_team"`
	SecondaryHomeTeam string `json:"secondary_home_team"`
	SecondaryAwayTeam string `json:"secondary_away_team"`
}

// UnmatchedReason names why a secondary game or reference event was left out
// of the match set, for the diagnostic sample in the sink output.
type UnmatchedReason string

const (
	UnmatchedNormalizationFailed UnmatchedReason = "normalization_failed"
	UnmatchedNoCandidateEvent    UnmatchedReason = "no_candidate_event"
	UnmatchedPropMarket          UnmatchedReason = "prop_market"
	UnmatchedSportMismatch       UnmatchedReason = "sport_mismatch"
)

// UnmatchedSecondary is emitted for every secondary game that did not clear
// the matcher's acceptance threshold.
type UnmatchedSecondary struct {
	SecondaryGameRef      string          `json:"secondary_game_ref"`
	Reason                UnmatchedReason `json:"reason"`
	BestCandidateEventID  string          `json:"best_candidate_event_id,omitempty"`
	BestScore             float64         `json:"best_score"`
}

// UnmatchedReference is emitted for every reference event that no secondary
// game matched against.
type UnmatchedReference struct {
	ReferenceEventID string `json:"reference_event_id"`
}
