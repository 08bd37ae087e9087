package turboexpress

import (
	"context"
	"fmt"
	"time"

	"github.com/turboexpress/backend/internal/core/settlement"
)

// Ranking assembles the week's leaderboard on read. An empty week means the
// current one.
func (t *TurboExpress) Ranking(ctx context.Context, week string) (string, []settlement.RankedEntry, error) {
	if week == "" {
		week = settlement.WeekID(time.Now())
	}

	entries, err := t.store.RankingEntries(ctx, week)
	if err != nil {
		return week, nil, fmt.Errorf("failed get ranking entries: %w", err)
	}

	return week, settlement.Rank(entries), nil
}

func (t *TurboExpress) RebuildRanking(ctx context.Context, week string) (string, error) {
	if week == "" {
		week = settlement.WeekID(time.Now())
	}

	if err := t.store.RebuildRanking(ctx, week); err != nil {
		return week, fmt.Errorf("failed rebuild ranking: %w", err)
	}

	return week, nil
}
