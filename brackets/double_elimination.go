// matchplay/brackets/double_elimination.go
package brackets

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/Dosada05/matchplay/models"
)

type DoubleEliminationGenerator struct {
}

func NewDoubleEliminationGenerator() Generator {
	return &DoubleEliminationGenerator{}
}

func (g *DoubleEliminationGenerator) GetName() string {
	return "DoubleElimination"
}

func (g *DoubleEliminationGenerator) GenerateBracket(entrants []models.Entrant) (*models.Bracket, error) {
	return GenerateDoubleElimination(entrants)
}

// GenerateDoubleElimination builds a winners bracket like the single
// elimination draw plus a losers bracket giving every winners-bracket loser
// a second life. Losers rounds alternate: round one pairs the winners
// round-one losers, even rounds drop the next winners round's losers onto
// the survivors, odd rounds consolidate survivors. The winners and losers
// champions meet in the grand final; the reset match only comes into play if
// the losers champion takes the grand final.
func GenerateDoubleElimination(entrants []models.Entrant) (*models.Bracket, error) {
	n := len(entrants)
	if n < 2 {
		return nil, fmt.Errorf("%w: found %d", ErrNotEnoughEntrants, n)
	}

	numRounds := int(math.Ceil(math.Log2(float64(n))))
	bracketSize := 1 << uint(numRounds)

	log.WithFields(log.Fields{
		"entrants": n,
		"rounds":   numRounds,
		"size":     bracketSize,
		"byes":     bracketSize - n,
	}).Debug("generating double elimination bracket")

	slots := seededSlots(entrants, bracketSize)

	b := &models.Bracket{Type: models.BracketDoubleElimination}

	first := &models.BracketRound{Number: 1, Name: roundName(bracketSize)}
	for i := 0; i < bracketSize; i += 2 {
		first.Matches = append(first.Matches, &models.BracketMatch{
			ID:          fmt.Sprintf("W1M%d", i/2+1),
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
				ID:          fmt.Sprintf("W%dM%d", r, i/2+1),
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

	buildLosersBracket(b, numRounds)

	winnersFinal := b.Rounds[numRounds-1].Matches[0]

	gf := &models.BracketMatch{
		ID:          "GF",
		Side:        models.SideFinals,
		Round:       1,
		MatchNumber: 1,
		SlotASource: &models.SlotSource{MatchID: winnersFinal.ID, IsWinner: true},
		Status:      models.StatusScheduled,
	}
	winnersFinal.NextMatchID = strPtr(gf.ID)
	if len(b.LosersRounds) > 0 {
		lastRound := b.LosersRounds[len(b.LosersRounds)-1]
		losersFinal := lastRound.Matches[0]
		gf.SlotBSource = &models.SlotSource{MatchID: losersFinal.ID, IsWinner: true}
		losersFinal.NextMatchID = strPtr(gf.ID)
	} else {
		// Two entrants: the loser of the only match is the losers champion.
		gf.SlotBSource = &models.SlotSource{MatchID: winnersFinal.ID, IsWinner: false}
		winnersFinal.LoserNextMatchID = strPtr(gf.ID)
	}
	b.GrandFinal = gf

	reset := &models.BracketMatch{
		ID:          "GFR",
		Side:        models.SideFinals,
		Round:       2,
		MatchNumber: 1,
		SlotASource: &models.SlotSource{MatchID: gf.ID, IsWinner: true},
		SlotBSource: &models.SlotSource{MatchID: gf.ID, IsWinner: false},
		Status:      models.StatusScheduled,
	}
	gf.NextMatchID = strPtr(reset.ID)
	gf.LoserNextMatchID = strPtr(reset.ID)
	b.GrandFinalReset = reset

	// Byes resolve only after the whole graph is wired, so their missing
	// losers are visible to the losers bracket.
	for _, m := range first.Matches {
		completeByeIfAny(b, m)
	}
	cancelDeadLosersMatches(b)

	return b, nil
}

// buildLosersBracket derives the losers rounds from an already built winners
// bracket. Round numbers are local to the losers side.
func buildLosersBracket(b *models.Bracket, numRounds int) {
	if numRounds < 2 {
		return
	}
	for lr := 1; lr <= 2*(numRounds-1); lr++ {
		round := &models.BracketRound{Number: lr, Name: fmt.Sprintf("Losers Round %d", lr)}
		switch {
		case lr == 1:
			w1 := b.Rounds[0].Matches
			for j := 0; j*2 < len(w1); j++ {
				feedA, feedB := w1[2*j], w1[2*j+1]
				m := &models.BracketMatch{
					ID:          fmt.Sprintf("L1M%d", j+1),
					Side:        models.SideLosers,
					Round:       1,
					MatchNumber: j + 1,
					SlotASource: &models.SlotSource{MatchID: feedA.ID, IsWinner: false},
					SlotBSource: &models.SlotSource{MatchID: feedB.ID, IsWinner: false},
					Status:      models.StatusScheduled,
				}
				feedA.LoserNextMatchID = strPtr(m.ID)
				feedB.LoserNextMatchID = strPtr(m.ID)
				round.Matches = append(round.Matches, m)
			}
		case lr%2 == 0:
			// Drop round: losers of winners round lr/2+1 meet the survivors.
			droppers := b.Rounds[lr/2].Matches
			prev := b.LosersRounds[lr-2].Matches
			for j := range droppers {
				dropper, survivor := droppers[j], prev[j]
				m := &models.BracketMatch{
					ID:          fmt.Sprintf("L%dM%d", lr, j+1),
					Side:        models.SideLosers,
					Round:       lr,
					MatchNumber: j + 1,
					SlotASource: &models.SlotSource{MatchID: dropper.ID, IsWinner: false},
					SlotBSource: &models.SlotSource{MatchID: survivor.ID, IsWinner: true},
					Status:      models.StatusScheduled,
				}
				dropper.LoserNextMatchID = strPtr(m.ID)
				survivor.NextMatchID = strPtr(m.ID)
				round.Matches = append(round.Matches, m)
			}
		default:
			// Consolidation round: survivors pair off.
			prev := b.LosersRounds[lr-2].Matches
			for j := 0; j*2 < len(prev); j++ {
				feedA, feedB := prev[2*j], prev[2*j+1]
				m := &models.BracketMatch{
					ID:          fmt.Sprintf("L%dM%d", lr, j+1),
					Side:        models.SideLosers,
					Round:       lr,
					MatchNumber: j + 1,
					SlotASource: &models.SlotSource{MatchID: feedA.ID, IsWinner: true},
					SlotBSource: &models.SlotSource{MatchID: feedB.ID, IsWinner: true},
					Status:      models.StatusScheduled,
				}
				feedA.NextMatchID = strPtr(m.ID)
				feedB.NextMatchID = strPtr(m.ID)
				round.Matches = append(round.Matches, m)
			}
		}
		b.LosersRounds = append(b.LosersRounds, round)
	}
}

// cancelDeadLosersMatches marks losers matches nobody can ever reach: both
// feeding slots are dead because their sources were byes or matches already
// canceled here. Cancelation runs in round order so emptiness cascades
// forward. Matches with a single dead slot stay scheduled and resolve as
// walkovers once their lone entrant arrives.
func cancelDeadLosersMatches(b *models.Bracket) {
	for _, round := range b.LosersRounds {
		for _, m := range round.Matches {
			if m.Completed() || m.Status == models.MatchStatusCanceled {
				continue
			}
			if m.SlotA == nil && m.SlotB == nil &&
				slotDead(b, m.SlotASource) && slotDead(b, m.SlotBSource) {
				m.Status = models.MatchStatusCanceled
				log.WithField("match", m.ID).Debug("losers match canceled, fed only by byes")
			}
		}
	}
}
