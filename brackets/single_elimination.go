// matchplay/brackets/single_elimination.go
package brackets

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/Dosada05/matchplay/models"
)

type SingleEliminationGenerator struct {
}

func NewSingleEliminationGenerator() Generator {
	return &SingleEliminationGenerator{}
}

func (g *SingleEliminationGenerator) GetName() string {
	return "SingleElimination"
}

func (g *SingleEliminationGenerator) GenerateBracket(entrants []models.Entrant) (*models.Bracket, error) {
	return GenerateSingleElimination(entrants)
}

// GenerateSingleElimination builds a knockout draw from an entrant list in
// seed order. When the entrant count is not a power of two the draw is padded
// and the top seeds receive round-one byes; bye matches complete at
// generation time and their entrants are advanced along the slot edges like
// any other result.
func GenerateSingleElimination(entrants []models.Entrant) (*models.Bracket, error) {
	n := len(entrants)
	if n < 2 {
		return nil, fmt.Errorf("%w: found %d", ErrNotEnoughEntrants, n)
	}

	numRounds := int(math.Ceil(math.Log2(float64(n))))
	bracketSize := 1 << uint(numRounds)
	numByes := bracketSize - n

	log.WithFields(log.Fields{
		"entrants": n,
		"rounds":   numRounds,
		"size":     bracketSize,
		"byes":     numByes,
	}).Debug("generating single elimination bracket")

	slots := seededSlots(entrants, bracketSize)

	b := &models.Bracket{Type: models.BracketSingleElimination}

	first := &models.BracketRound{Number: 1, Name: roundName(bracketSize)}
	for i := 0; i < bracketSize; i += 2 {
		first.Matches = append(first.Matches, &models.BracketMatch{
			ID:          fmt.Sprintf("R1M%d", i/2+1),
			Side:        models.SideWinners,
			Round:       1,
			MatchNumber: i/2 + 1,
			SlotA:       slots[i],
			SlotB:       slots[i+1],
			Status:      models.StatusScheduled,
		})
	}
	b.Rounds = append(b.Rounds, first)

	for r := 2; r <= numRounds; r++ {
		prev := b.Rounds[r-2]
		round := &models.BracketRound{Number: r, Name: roundName(bracketSize >> uint(r-1))}
		for i := 0; i < len(prev.Matches); i += 2 {
			feedA, feedB := prev.Matches[i], prev.Matches[i+1]
			m := &models.BracketMatch{
				ID:          fmt.Sprintf("R%dM%d", r, i/2+1),
				Side:        models.SideWinners,
				Round:       r,
				MatchNumber: i/2 + 1,
				SlotASource: &models.SlotSource{MatchID: feedA.ID, IsWinner: true},
				SlotBSource: &models.SlotSource{MatchID: feedB.ID, IsWinner: true},
				Status:      models.StatusScheduled,
			}
			feedA.NextMatchID = strPtr(m.ID)
			feedB.NextMatchID = strPtr(m.ID)
			round.Matches = append(round.Matches, m)
		}
		b.Rounds = append(b.Rounds, round)
	}

	for _, m := range first.Matches {
		completeByeIfAny(b, m)
	}

	return b, nil
}

// roundName follows the remaining-entrants convention.
func roundName(remaining int) string {
	switch remaining {
	case 2:
		return "Finals"
	case 4:
		return "Semifinals"
	case 8:
		return "Quarterfinals"
	}
	return fmt.Sprintf("Round of %d", remaining)
}
