package kingcourt

import (
	"errors"
	"math/rand"

	"github.com/Dosada05/matchplay/models"
)

var ErrNotEnoughEntrants = errors.New("king of the court needs at least 2 entrants")

// Initialize draws the starting rotation: entrants are shuffled, the first
// two take the court as king and challenger, the rest wait in queue order.
func Initialize(entrants []models.Entrant) (models.KingOfCourtState, error) {
	if len(entrants) < 2 {
		return models.KingOfCourtState{}, ErrNotEnoughEntrants
	}

	order := make([]models.Entrant, len(entrants))
	copy(order, entrants)
	rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	return models.KingOfCourtState{
		King:       order[0],
		Challenger: order[1],
		Queue:      order[2:],
	}, nil
}

// Resolve advances the rotation by one played match and returns the next
// state; the input state is left untouched. The winner stays on court as
// king, the loser joins the back of the queue and the front of the queue
// steps up. With nobody waiting the same two play again.
func Resolve(state models.KingOfCourtState, kingWon bool) models.KingOfCourtState {
	next := state
	next.Queue = make([]models.Entrant, len(state.Queue))
	copy(next.Queue, state.Queue)
	next.MatchesPlayed++

	if kingWon {
		next.KingStreak++
	} else {
		// Challenger dethrones the king.
		next.King, next.Challenger = state.Challenger, state.King
		next.KingStreak = 1
	}

	if len(next.Queue) == 0 {
		return next
	}

	loser := next.Challenger
	next.Queue = append(next.Queue, loser)
	next.Challenger = next.Queue[0]
	next.Queue = next.Queue[1:]
	return next
}
