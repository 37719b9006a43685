package pools

import (
	"errors"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/Dosada05/matchplay/models"
	"github.com/Dosada05/matchplay/schedule"
)

var (
	ErrInvalidPoolCount  = errors.New("pool count must be at least 1")
	ErrNotEnoughEntrants = errors.New("not enough entrants")
)

// Allocate splits entrants into skill-balanced pools and schedules a round
// robin inside each. Entrants are sorted by skill descending and dealt in a
// snake (1..k then k..1) so average strength stays even across pools. Each
// pool needs at least two entrants.
func Allocate(entrants []models.Entrant, poolCount int) ([]models.Pool, error) {
	if poolCount < 1 {
		return nil, ErrInvalidPoolCount
	}
	if len(entrants) < poolCount*2 {
		return nil, fmt.Errorf("%w: have %d, need at least %d for %d pools",
			ErrNotEnoughEntrants, len(entrants), poolCount*2, poolCount)
	}

	seeded := make([]models.Entrant, len(entrants))
	copy(seeded, entrants)
	sort.SliceStable(seeded, func(i, j int) bool {
		return seeded[i].Skill() > seeded[j].Skill()
	})

	pools := make([]models.Pool, poolCount)
	for i := range pools {
		pools[i].Number = i + 1
	}

	idx, step := 0, 1
	for _, e := range seeded {
		pools[idx].Entrants = append(pools[idx].Entrants, e)
		if poolCount == 1 {
			continue
		}
		if next := idx + step; next < 0 || next >= poolCount {
			step = -step // turn of the snake: same pool picks again
		} else {
			idx = next
		}
	}

	for i := range pools {
		res := schedule.Generate(pools[i].Entrants, schedule.Options{})
		num := pools[i].Number
		for j := range res.Matches {
			n := num
			res.Matches[j].Pool = &n
		}
		pools[i].Matches = res.Matches
	}

	log.WithFields(log.Fields{
		"entrants": len(entrants),
		"pools":    poolCount,
	}).Debug("allocated pools")

	return pools, nil
}
