package ladder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Dosada05/matchplay/models"
)

var (
	ErrPlayerNotFound      = errors.New("player is not on the ladder")
	ErrUnrankedPlayer      = errors.New("both players must hold a ladder rank")
	ErrChallengeDirection  = errors.New("challenger must be ranked below the defender")
	ErrChallengeOutOfRange = errors.New("defender is out of challenge range")
)

// ValidateChallenge checks a proposed challenge: both sides must be ranked,
// the challenger must sit below the defender, and the defender must be at
// most maxRange positions above the challenger.
func ValidateChallenge(challenger, defender models.LadderPlayer, maxRange int) error {
	if !challenger.Ranked() || !defender.Ranked() {
		return ErrUnrankedPlayer
	}
	if challenger.Rank <= defender.Rank {
		return fmt.Errorf("%w: rank %d challenged rank %d", ErrChallengeDirection, challenger.Rank, defender.Rank)
	}
	if challenger.Rank-defender.Rank > maxRange {
		return fmt.Errorf("%w: rank %d cannot reach rank %d with range %d", ErrChallengeOutOfRange, challenger.Rank, defender.Rank, maxRange)
	}
	return nil
}

// ValidTargets returns the inclusive rank interval a player may challenge.
// ok is false when no targets exist: the player is unranked or already on
// top.
func ValidTargets(rank, maxRange int) (lo, hi int, ok bool) {
	if rank <= 1 || maxRange < 1 {
		return 0, 0, false
	}
	lo = rank - maxRange
	if lo < 1 {
		lo = 1
	}
	return lo, rank - 1, true
}

// ResolveChallenge applies a decided challenge and returns the ladder
// re-ranked, ordered by rank. The input slice is never modified.
//
// A winning challenger takes the defender's rank; the defender and everyone
// between them slide down one. A successful defense changes nothing. Ranks
// stay a dense permutation 1..n either way.
func ResolveChallenge(players []models.LadderPlayer, challengerID, defenderID string, challengerWon bool) ([]models.LadderPlayer, error) {
	out := make([]models.LadderPlayer, len(players))
	copy(out, players)

	ci, di := -1, -1
	for i, p := range out {
		switch p.ID {
		case challengerID:
			ci = i
		case defenderID:
			di = i
		}
	}
	if ci < 0 {
		return nil, fmt.Errorf("%w: challenger %q", ErrPlayerNotFound, challengerID)
	}
	if di < 0 {
		return nil, fmt.Errorf("%w: defender %q", ErrPlayerNotFound, defenderID)
	}
	if !out[ci].Ranked() || !out[di].Ranked() {
		return nil, ErrUnrankedPlayer
	}
	if out[ci].Rank <= out[di].Rank {
		return nil, fmt.Errorf("%w: rank %d challenged rank %d", ErrChallengeDirection, out[ci].Rank, out[di].Rank)
	}

	if challengerWon {
		challengerRank, defenderRank := out[ci].Rank, out[di].Rank
		for i := range out {
			switch {
			case i == ci:
				out[i].Rank = defenderRank
			case out[i].Rank >= defenderRank && out[i].Rank < challengerRank:
				out[i].Rank++
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rank < out[j].Rank
	})
	return out, nil
}
