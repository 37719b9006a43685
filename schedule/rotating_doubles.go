package schedule

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Dosada05/matchplay/models"
)

// GenerateRotatingDoubles builds a doubles schedule where partners change
// every round. The player ring rotates exactly like the singles schedule;
// each round the rotated order is read left to right, adjacent positions
// become partners and consecutive pairs meet. Teams are minted per round and
// exist only in the matches that reference them. Odd player counts pad with
// a bye; the player drawn next to the bye sits the round out, as does a
// leftover pair when the team count is odd.
func GenerateRotatingDoubles(players []models.Player, opts Options) Result {
	if len(players) < 4 {
		return Result{}
	}

	ring := make([]models.Player, len(players))
	copy(ring, players)
	if len(ring)%2 != 0 {
		ring = append(ring, models.Player{})
	}

	n := len(ring)
	total := n - 1
	roundCount := total
	if opts.MaxRounds > 0 {
		roundCount = opts.MaxRounds
	}

	log.WithFields(log.Fields{
		"players":         len(players),
		"rounds":          roundCount,
		"rounds_in_cycle": total,
	}).Debug("generating rotating doubles schedule")

	matches := make([]models.Match, 0, roundCount*n/4)
	for round := 1; round <= roundCount; round++ {
		rotation := (round - 1) % total

		seq := make([]models.Player, n)
		for i := range seq {
			seq[i] = ring[circleIndex(i, n, rotation)]
		}

		teams := make([]models.Team, 0, n/2)
		for i := 0; i+1 < n; i += 2 {
			if seq[i].ID == "" || seq[i+1].ID == "" {
				continue // pair drawn against the bye sits out
			}
			teams = append(teams, models.Team{
				ID:      uuid.NewString(),
				Player1: seq[i],
				Player2: seq[i+1],
			})
		}

		court := 0
		for i := 0; i+1 < len(teams); i += 2 {
			m := models.Match{
				ID:     uuid.NewString(),
				Round:  round,
				A:      models.TeamEntrant(teams[i]),
				B:      models.TeamEntrant(teams[i+1]),
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
