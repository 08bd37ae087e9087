package settlement

import (
	"sort"

	"github.com/turboexpress/backend/internal/adapters/store/model"
)

type RankedEntry struct {
	Name      string
	CourierID uint
	Points    int
	Medals    int
	Rank      int
}

// Rank orders ranking entries by points descending and assigns 1-based
// ranks. Ties break by courier id ascending, which keeps repeated runs over
// the same scores identical.
func Rank(entries []*model.RankingEntry) []RankedEntry {
	ranked := make([]RankedEntry, 0, len(entries))
	for _, e := range entries {
		ranked = append(ranked, RankedEntry{
			Name:      e.Name,
			CourierID: e.CourierID,
			Points:    e.Points,
			Medals:    e.Medals,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return ranked[i].CourierID < ranked[j].CourierID
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked
}
