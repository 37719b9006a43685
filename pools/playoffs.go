package pools

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Dosada05/matchplay/models"
	"github.com/Dosada05/matchplay/standings"
)

var ErrInvalidAdvanceCount = errors.New("advance count must be at least 1")

// AdvanceToPlayoffs selects the top perPool finishers of every pool, by each
// pool's current standings, and returns them in bracket seeding order: all
// pool winners first (by pool number), then all runners-up, and so on. The
// result feeds the bracket generators directly.
func AdvanceToPlayoffs(pools []models.Pool, perPool int) ([]models.Entrant, error) {
	if perPool < 1 {
		return nil, ErrInvalidAdvanceCount
	}

	ordered := make([]models.Pool, len(pools))
	copy(ordered, pools)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Number < ordered[j].Number
	})

	qualified := make([][]models.Entrant, 0, len(ordered))
	for _, p := range ordered {
		table := standings.Compute(p.Matches, p.Entrants)
		if len(table) < perPool {
			return nil, fmt.Errorf("%w: pool %d has %d entrants, cannot advance %d",
				ErrNotEnoughEntrants, p.Number, len(table), perPool)
		}
		byID := make(map[string]models.Entrant, len(p.Entrants))
		for _, e := range p.Entrants {
			byID[e.ID()] = e
		}
		top := make([]models.Entrant, perPool)
		for place := 0; place < perPool; place++ {
			top[place] = byID[table[place].EntrantID]
		}
		qualified = append(qualified, top)
	}

	seeds := make([]models.Entrant, 0, len(ordered)*perPool)
	for place := 0; place < perPool; place++ {
		for _, top := range qualified {
			seeds = append(seeds, top[place])
		}
	}
	return seeds, nil
}
