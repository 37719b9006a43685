package brackets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/matchplay/models"
)

func TestDoubleEliminationStructure(t *testing.T) {
	b, err := GenerateDoubleElimination(seedEntrants(4))
	require.NoError(t, err)

	assert.Equal(t, models.BracketDoubleElimination, b.Type)
	require.Len(t, b.Rounds, 2)
	assert.Len(t, b.Rounds[0].Matches, 2)
	assert.Len(t, b.Rounds[1].Matches, 1)
	require.Len(t, b.LosersRounds, 2)
	assert.Len(t, b.LosersRounds[0].Matches, 1)
	assert.Len(t, b.LosersRounds[1].Matches, 1)
	require.NotNil(t, b.GrandFinal)
	require.NotNil(t, b.GrandFinalReset)

	for _, r := range b.Rounds {
		for _, m := range r.Matches {
			assert.Equal(t, models.SideWinners, m.Side)
			require.NotNilf(t, m.LoserNextMatchID, "winners match %s must drop its loser", m.ID)
		}
	}
	for _, r := range b.LosersRounds {
		for _, m := range r.Matches {
			assert.Equal(t, models.SideLosers, m.Side)
		}
	}

	l1 := b.LosersRounds[0].Matches[0]
	require.NotNil(t, l1.SlotASource)
	assert.Equal(t, "W1M1", l1.SlotASource.MatchID)
	assert.False(t, l1.SlotASource.IsWinner)
	require.NotNil(t, l1.SlotBSource)
	assert.Equal(t, "W1M2", l1.SlotBSource.MatchID)

	l2 := b.LosersRounds[1].Matches[0]
	assert.Equal(t, "W2M1", l2.SlotASource.MatchID)
	assert.False(t, l2.SlotASource.IsWinner)
	assert.Equal(t, "L1M1", l2.SlotBSource.MatchID)
	assert.True(t, l2.SlotBSource.IsWinner)

	gf := b.GrandFinal
	assert.Equal(t, models.SideFinals, gf.Side)
	assert.Equal(t, "W2M1", gf.SlotASource.MatchID)
	assert.True(t, gf.SlotASource.IsWinner)
	assert.Equal(t, "L2M1", gf.SlotBSource.MatchID)

	reset := b.GrandFinalReset
	assert.Equal(t, "GF", reset.SlotASource.MatchID)
	assert.True(t, reset.SlotASource.IsWinner)
	assert.Equal(t, "GF", reset.SlotBSource.MatchID)
	assert.False(t, reset.SlotBSource.IsWinner)
}

func TestDoubleEliminationEightEntrantCounts(t *testing.T) {
	b, err := GenerateDoubleElimination(seedEntrants(8))
	require.NoError(t, err)

	require.Len(t, b.Rounds, 3)
	require.Len(t, b.LosersRounds, 4)
	losersCounts := []int{2, 2, 1, 1}
	total := 0
	for i, r := range b.LosersRounds {
		assert.Lenf(t, r.Matches, losersCounts[i], "losers round %d", i+1)
		total += len(r.Matches)
	}
	assert.Equal(t, 6, total, "a full losers bracket holds size-2 matches")
}

func TestDoubleEliminationWinnersChampTakesGrandFinal(t *testing.T) {
	b, err := GenerateDoubleElimination(seedEntrants(4))
	require.NoError(t, err)

	require.NoError(t, RecordResult(b, "W1M1", "s1", models.Score{A: 21, B: 10}))
	require.NoError(t, RecordResult(b, "W1M2", "s2", models.Score{A: 21, B: 14}))

	l1, _ := b.Match("L1M1")
	require.NotNil(t, l1.SlotA)
	assert.Equal(t, "s4", l1.SlotA.ID(), "losers round one receives the round-one losers")
	require.NotNil(t, l1.SlotB)
	assert.Equal(t, "s3", l1.SlotB.ID())

	require.NoError(t, RecordResult(b, "W2M1", "s1", models.Score{A: 21, B: 19}))
	require.NoError(t, RecordResult(b, "L1M1", "s4", models.Score{A: 21, B: 17}))
	require.NoError(t, RecordResult(b, "L2M1", "s2", models.Score{A: 21, B: 15}))

	gf := b.GrandFinal
	require.NotNil(t, gf.SlotA)
	assert.Equal(t, "s1", gf.SlotA.ID())
	require.NotNil(t, gf.SlotB)
	assert.Equal(t, "s2", gf.SlotB.ID())
	assert.False(t, IsComplete(b))

	require.NoError(t, RecordResult(b, "GF", "s1", models.Score{A: 21, B: 16}))

	assert.False(t, GrandFinalResetRequired(b), "one loss is not two")
	assert.Nil(t, b.GrandFinalReset.SlotA)
	assert.Nil(t, b.GrandFinalReset.SlotB)
	assert.True(t, IsComplete(b))

	champ := Champion(b)
	require.NotNil(t, champ)
	assert.Equal(t, "s1", champ.ID())
}

func TestDoubleEliminationLosersChampForcesReset(t *testing.T) {
	b, err := GenerateDoubleElimination(seedEntrants(4))
	require.NoError(t, err)

	require.NoError(t, RecordResult(b, "W1M1", "s1", models.Score{A: 21, B: 10}))
	require.NoError(t, RecordResult(b, "W1M2", "s2", models.Score{A: 21, B: 14}))
	require.NoError(t, RecordResult(b, "W2M1", "s1", models.Score{A: 21, B: 19}))
	require.NoError(t, RecordResult(b, "L1M1", "s4", models.Score{A: 21, B: 17}))
	require.NoError(t, RecordResult(b, "L2M1", "s2", models.Score{A: 21, B: 15}))

	// The losers-bracket survivor wins the grand final: both finalists now
	// hold one loss and the reset decides it all.
	require.NoError(t, RecordResult(b, "GF", "s2", models.Score{A: 18, B: 21}))

	assert.True(t, GrandFinalResetRequired(b))
	assert.False(t, IsComplete(b))

	reset := b.GrandFinalReset
	require.NotNil(t, reset.SlotA)
	assert.Equal(t, "s2", reset.SlotA.ID())
	require.NotNil(t, reset.SlotB)
	assert.Equal(t, "s1", reset.SlotB.ID())

	require.NoError(t, RecordResult(b, "GFR", "s1", models.Score{A: 13, B: 21}))
	assert.True(t, IsComplete(b))

	champ := Champion(b)
	require.NotNil(t, champ)
	assert.Equal(t, "s1", champ.ID())
}

func TestDoubleEliminationGrandFinalCorrectionClearsReset(t *testing.T) {
	b, err := GenerateDoubleElimination(seedEntrants(4))
	require.NoError(t, err)

	require.NoError(t, RecordResult(b, "W1M1", "s1", models.Score{A: 21, B: 10}))
	require.NoError(t, RecordResult(b, "W1M2", "s2", models.Score{A: 21, B: 14}))
	require.NoError(t, RecordResult(b, "W2M1", "s1", models.Score{A: 21, B: 19}))
	require.NoError(t, RecordResult(b, "L1M1", "s4", models.Score{A: 21, B: 17}))
	require.NoError(t, RecordResult(b, "L2M1", "s2", models.Score{A: 21, B: 15}))

	require.NoError(t, RecordResult(b, "GF", "s2", models.Score{A: 18, B: 21}))
	require.True(t, GrandFinalResetRequired(b))

	// Scoring error: s1 had actually won the grand final.
	require.NoError(t, RecordResult(b, "GF", "s1", models.Score{A: 21, B: 18}))

	assert.False(t, GrandFinalResetRequired(b))
	assert.Nil(t, b.GrandFinalReset.SlotA)
	assert.Nil(t, b.GrandFinalReset.SlotB)
	assert.True(t, IsComplete(b))
}

func TestDoubleEliminationByesCancelAndWalkOver(t *testing.T) {
	b, err := GenerateDoubleElimination(seedEntrants(5))
	require.NoError(t, err)

	// Seeds 1, 2 and 3 drew byes; only W1M2 is playable.
	w1 := b.Rounds[0].Matches
	require.Len(t, w1, 4)
	assert.True(t, w1[0].IsBye)
	assert.False(t, w1[1].IsBye)
	assert.True(t, w1[2].IsBye)
	assert.True(t, w1[3].IsBye)

	l1m2, _ := b.Match("L1M2")
	assert.Equal(t, models.MatchStatusCanceled, l1m2.Status, "fed only by byes, nobody can arrive")
	l1m1, _ := b.Match("L1M1")
	assert.Equal(t, models.StatusScheduled, l1m1.Status)

	require.NoError(t, RecordResult(b, "W1M2", "s4", models.Score{A: 21, B: 12}))

	// s5 dropped into L1M1 with no possible opponent and walks over.
	assert.True(t, l1m1.IsBye)
	assert.True(t, l1m1.Completed())
	require.NotNil(t, l1m1.WinnerID)
	assert.Equal(t, "s5", *l1m1.WinnerID)

	l2m1, _ := b.Match("L2M1")
	require.NotNil(t, l2m1.SlotB)
	assert.Equal(t, "s5", l2m1.SlotB.ID())

	// W2M2 was pre-filled by two byes and plays normally; its loser walks
	// straight through the dead L2M2.
	w2m2, _ := b.Match("W2M2")
	require.NotNil(t, w2m2.SlotA)
	require.NotNil(t, w2m2.SlotB)
	assert.Equal(t, "s2", w2m2.SlotA.ID())
	assert.Equal(t, "s3", w2m2.SlotB.ID())

	require.NoError(t, RecordResult(b, "W2M2", "s2", models.Score{A: 21, B: 18}))

	l2m2, _ := b.Match("L2M2")
	assert.True(t, l2m2.IsBye)
	assert.True(t, l2m2.Completed())
	require.NotNil(t, l2m2.WinnerID)
	assert.Equal(t, "s3", *l2m2.WinnerID)

	l3m1, _ := b.Match("L3M1")
	require.NotNil(t, l3m1.SlotB)
	assert.Equal(t, "s3", l3m1.SlotB.ID())
}

func TestDoubleEliminationTwoEntrants(t *testing.T) {
	b, err := GenerateDoubleElimination(seedEntrants(2))
	require.NoError(t, err)

	require.Len(t, b.Rounds, 1)
	assert.Empty(t, b.LosersRounds)
	require.NotNil(t, b.GrandFinal)

	require.NoError(t, RecordResult(b, "W1M1", "s1", models.Score{A: 21, B: 18}))

	gf := b.GrandFinal
	require.NotNil(t, gf.SlotA)
	assert.Equal(t, "s1", gf.SlotA.ID())
	require.NotNil(t, gf.SlotB)
	assert.Equal(t, "s2", gf.SlotB.ID(), "the only loser is the losers champion")

	require.NoError(t, RecordResult(b, "GF", "s2", models.Score{A: 19, B: 21}))
	require.True(t, GrandFinalResetRequired(b))
	require.NoError(t, RecordResult(b, "GFR", "s2", models.Score{A: 21, B: 12}))

	assert.True(t, IsComplete(b))
	champ := Champion(b)
	require.NotNil(t, champ)
	assert.Equal(t, "s2", champ.ID())
}

func TestDoubleEliminationNotEnoughEntrants(t *testing.T) {
	_, err := GenerateDoubleElimination(seedEntrants(1))
	assert.True(t, errors.Is(err, ErrNotEnoughEntrants))
}
