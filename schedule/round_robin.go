package schedule

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Dosada05/matchplay/models"
)

// Options tune a generated schedule. MaxRounds == 0 means one full cycle;
// NumberOfCourts == 0 leaves matches without court labels.
type Options struct {
	MaxRounds      int `json:"max_rounds,omitempty"`
	NumberOfCourts int `json:"number_of_courts,omitempty"`
}

// Result of a generation pass. An empty Matches slice means there was
// nothing to schedule, not an error.
type Result struct {
	Matches             []models.Match `json:"matches"`
	RoundsGenerated     int            `json:"rounds_generated"`
	TotalPossibleRounds int            `json:"total_possible_rounds"`
}

// Generate builds a circle-method round robin over the given entrants.
// Position 0 stays fixed while the rest rotate one step per round, so every
// unordered pair meets exactly once per full cycle. Odd entrant counts get a
// synthetic bye slot whose pairings are dropped. MaxRounds beyond one cycle
// wraps the rotation and repeats pairings in cycle order.
func Generate(entrants []models.Entrant, opts Options) Result {
	if len(entrants) < 2 {
		return Result{}
	}

	ring := make([]models.Entrant, len(entrants))
	copy(ring, entrants)
	if len(ring)%2 != 0 {
		ring = append(ring, models.Entrant{})
	}

	n := len(ring)
	total := n - 1
	roundCount := total
	if opts.MaxRounds > 0 {
		roundCount = opts.MaxRounds
	}

	log.WithFields(log.Fields{
		"entrants":        len(entrants),
		"rounds":          roundCount,
		"rounds_in_cycle": total,
	}).Debug("generating round robin schedule")

	matches := make([]models.Match, 0, roundCount*n/2)
	for round := 1; round <= roundCount; round++ {
		rotation := (round - 1) % total
		court := 0
		for i := 0; i < n/2; i++ {
			sideA := ring[circleIndex(i, n, rotation)]
			sideB := ring[circleIndex(n-1-i, n, rotation)]
			if sideA.IsZero() || sideB.IsZero() {
				continue // bye pairing
			}
			m := models.Match{
				ID:     uuid.NewString(),
				Round:  round,
				A:      sideA,
				B:      sideB,
				Status: models.StatusScheduled,
			}
			if opts.NumberOfCourts > 0 {
				c := court%opts.NumberOfCourts + 1
				m.Court = &c
				court++
			}
			matches = append(matches, m)
		}
	}

	return Result{
		Matches:             matches,
		RoundsGenerated:     roundCount,
		TotalPossibleRounds: total,
	}
}

// GenerateSingles schedules every player against every other player.
func GenerateSingles(players []models.Player, opts Options) Result {
	return Generate(models.PlayerEntrants(players), opts)
}

// GenerateFixedTeams schedules doubles with fixed pairings.
func GenerateFixedTeams(teams []models.Team, opts Options) Result {
	return Generate(models.TeamEntrants(teams), opts)
}

// circleIndex maps a base position to its ring slot for the given rotation.
// Index 0 never moves; the others advance by one slot per rotation step.
func circleIndex(pos, length, rotation int) int {
	if pos == 0 {
		return 0
	}
	return (pos-1+rotation)%(length-1) + 1
}
