package kingcourt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/matchplay/models"
)

func courtPlayers(n int) []models.Entrant {
	players := make([]models.Player, 0, n)
	for i := 1; i <= n; i++ {
		players = append(players, models.Player{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Player %d", i)})
	}
	return models.PlayerEntrants(players)
}

func state(king, challenger string, queue ...string) models.KingOfCourtState {
	s := models.KingOfCourtState{
		King:       models.PlayerEntrant(models.Player{ID: king, Name: king}),
		Challenger: models.PlayerEntrant(models.Player{ID: challenger, Name: challenger}),
	}
	for _, id := range queue {
		s.Queue = append(s.Queue, models.PlayerEntrant(models.Player{ID: id, Name: id}))
	}
	return s
}

func queueIDs(queue []models.Entrant) []string {
	out := make([]string, 0, len(queue))
	for _, e := range queue {
		out = append(out, e.ID())
	}
	return out
}

func TestInitializeSplitsCourtAndQueue(t *testing.T) {
	entrants := courtPlayers(6)

	got, err := Initialize(entrants)
	require.NoError(t, err)

	assert.Len(t, got.Queue, 4)
	assert.Zero(t, got.MatchesPlayed)
	assert.Zero(t, got.KingStreak)

	seen := map[string]bool{got.King.ID(): true, got.Challenger.ID(): true}
	for _, e := range got.Queue {
		seen[e.ID()] = true
	}
	assert.Len(t, seen, 6, "every entrant is on court or in the queue exactly once")
	assert.NotEqual(t, got.King.ID(), got.Challenger.ID())
}

func TestInitializeTwoEntrants(t *testing.T) {
	got, err := Initialize(courtPlayers(2))
	require.NoError(t, err)
	assert.Empty(t, got.Queue)
}

func TestInitializeNotEnoughEntrants(t *testing.T) {
	_, err := Initialize(courtPlayers(1))
	assert.True(t, errors.Is(err, ErrNotEnoughEntrants))
}

func TestResolveKingDefends(t *testing.T) {
	s := state("K", "C", "D", "E")
	s.KingStreak = 2

	got := Resolve(s, true)

	assert.Equal(t, "K", got.King.ID())
	assert.Equal(t, "D", got.Challenger.ID(), "front of the queue steps up")
	assert.Equal(t, []string{"E", "C"}, queueIDs(got.Queue))
	assert.Equal(t, 3, got.KingStreak)
	assert.Equal(t, 1, got.MatchesPlayed)
}

func TestResolveChallengerDethronesKing(t *testing.T) {
	s := state("K", "C", "D", "E")
	s.KingStreak = 4

	got := Resolve(s, false)

	assert.Equal(t, "C", got.King.ID())
	assert.Equal(t, "D", got.Challenger.ID())
	assert.Equal(t, []string{"E", "K"}, queueIDs(got.Queue), "the dethroned king waits at the back")
	assert.Equal(t, 1, got.KingStreak, "a new reign starts at one")
	assert.Equal(t, 1, got.MatchesPlayed)
}

func TestResolveEmptyQueueReplays(t *testing.T) {
	s := state("K", "C")

	got := Resolve(s, false)
	assert.Equal(t, "C", got.King.ID())
	assert.Equal(t, "K", got.Challenger.ID())
	assert.Empty(t, got.Queue)

	got = Resolve(got, true)
	assert.Equal(t, "C", got.King.ID())
	assert.Equal(t, "K", got.Challenger.ID())
	assert.Equal(t, 2, got.KingStreak)
	assert.Equal(t, 2, got.MatchesPlayed)
}

func TestResolveLeavesInputAlone(t *testing.T) {
	s := state("K", "C", "D")

	_ = Resolve(s, false)

	assert.Equal(t, "K", s.King.ID())
	assert.Equal(t, "C", s.Challenger.ID())
	assert.Equal(t, []string{"D"}, queueIDs(s.Queue))
	assert.Zero(t, s.MatchesPlayed)
}

func TestResolveFullRotation(t *testing.T) {
	// Three entrants, king never defends: everyone cycles over the court.
	s := state("A", "B", "C")

	s = Resolve(s, false) // B dethrones A
	assert.Equal(t, "B", s.King.ID())
	assert.Equal(t, "C", s.Challenger.ID())
	assert.Equal(t, []string{"A"}, queueIDs(s.Queue))

	s = Resolve(s, false) // C dethrones B
	assert.Equal(t, "C", s.King.ID())
	assert.Equal(t, "A", s.Challenger.ID())
	assert.Equal(t, []string{"B"}, queueIDs(s.Queue))

	s = Resolve(s, false) // A dethrones C
	assert.Equal(t, "A", s.King.ID())
	assert.Equal(t, "B", s.Challenger.ID())
	assert.Equal(t, []string{"C"}, queueIDs(s.Queue))
	assert.Equal(t, 3, s.MatchesPlayed)
}
