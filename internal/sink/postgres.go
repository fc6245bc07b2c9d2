package sink

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/XavierBriggs/pricedge/pkg/contracts"
)

// Postgres persists match records and their EV opportunity rows to
// queryable tables, for operators who want history instead of (or alongside)
// the stdout JSON sink. Grounded on edge-detector/internal/writer's
// transaction-per-write shape and bot-service/internal/logger's
// database/sql + lib/pq wiring.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Write(ctx context.Context, result contracts.RunResult) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sink: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	const matchQuery = `
		INSERT INTO matched_opportunities (
			reference_event_id, secondary_game_ref, orientation, score, sport,
			reference_home_team, reference_away_team
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	const oppQuery = `
		INSERT INTO ev_opportunities (
			match_id, market, period, selection, line,
			reference_fair_american, secondary_american, ev_ratio, description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, mg := range result.MatchedGames {
		var matchID int64
		err := tx.QueryRowContext(ctx, matchQuery,
			mg.ReferenceEventID, mg.SecondaryGameRef, string(mg.Orientation), mg.Score, mg.Sport,
			mg.ReferenceHomeTeam, mg.ReferenceAwayTeam,
		).Scan(&matchID)
		if err != nil {
			return fmt.Errorf("sink: failed to insert match record: %w", err)
		}

		for _, opp := range mg.Opportunities {
			if _, err := tx.ExecContext(ctx, oppQuery,
				matchID, string(opp.Market), opp.Period, string(opp.Selection), opp.Line,
				opp.ReferenceFairAmerican, opp.SecondaryAmerican, opp.EVRatio, opp.Description,
			); err != nil {
				return fmt.Errorf("sink: failed to insert EV opportunity: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sink: failed to commit transaction: %w", err)
	}
	return nil
}
