package brackets

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/Dosada05/matchplay/models"
)

// RecordResult applies a result to one bracket match and advances entrants
// along the declared slot-source edges. The bracket is mutated in place;
// callers that want a snapshot record into bracket.Clone().
//
// Re-recording a match overwrites its previous result and re-runs
// propagation, so a corrected winner replaces the stale entrant in every
// downstream slot. Results already recorded further downstream are not
// voided here; correcting those is the caller's call.
func RecordResult(b *models.Bracket, matchID, winnerID string, score models.Score) error {
	m, ok := b.Match(matchID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrMatchNotFound, matchID)
	}

	var loser *models.Entrant
	switch {
	case m.SlotA != nil && m.SlotA.ID() == winnerID:
		loser = m.SlotB
	case m.SlotB != nil && m.SlotB.ID() == winnerID:
		loser = m.SlotA
	default:
		return fmt.Errorf("%w: %q is not in match %q", ErrWinnerNotInMatch, winnerID, matchID)
	}

	s := score
	m.Score = &s
	m.Status = models.MatchStatusCompleted
	m.WinnerID = strPtr(winnerID)
	if loser != nil {
		m.LoserID = strPtr(loser.ID())
	} else {
		m.LoserID = nil
	}

	log.WithFields(log.Fields{
		"match":  matchID,
		"winner": winnerID,
	}).Debug("recorded bracket result")

	propagateResult(b, m)

	if b.GrandFinal != nil && matchID == b.GrandFinal.ID {
		syncGrandFinalReset(b)
	}
	return nil
}

// IsComplete reports whether every playable match has a result: each match
// with both slots populated is completed, and for double elimination the
// grand final is decided, plus the reset match when the losers champion
// forced one.
func IsComplete(b *models.Bracket) bool {
	for _, m := range b.AllMatches() {
		if m.Status == models.MatchStatusCanceled {
			continue
		}
		if m.SlotA != nil && m.SlotB != nil && !m.Completed() {
			return false
		}
	}
	if b.Type == models.BracketDoubleElimination {
		if b.GrandFinal == nil || !b.GrandFinal.Completed() {
			return false
		}
		if GrandFinalResetRequired(b) &&
			(b.GrandFinalReset == nil || !b.GrandFinalReset.Completed()) {
			return false
		}
	}
	return true
}

// GrandFinalResetRequired reports whether the reset match must be played:
// the grand final is decided and its winner holds slot B, the slot fed by
// the losers bracket.
func GrandFinalResetRequired(b *models.Bracket) bool {
	gf := b.GrandFinal
	if gf == nil || !gf.Completed() || gf.WinnerID == nil {
		return false
	}
	return gf.SlotB != nil && gf.SlotB.ID() == *gf.WinnerID
}

// Champion returns the winning entrant of a fully played bracket, or nil
// while play is still open.
func Champion(b *models.Bracket) *models.Entrant {
	if !IsComplete(b) {
		return nil
	}
	if b.Type == models.BracketDoubleElimination {
		if GrandFinalResetRequired(b) {
			return b.GrandFinalReset.WinnerEntrant()
		}
		return b.GrandFinal.WinnerEntrant()
	}
	if len(b.Rounds) == 0 {
		return nil
	}
	final := b.Rounds[len(b.Rounds)-1].Matches[0]
	return final.WinnerEntrant()
}

// propagateResult pushes a completed match's winner and loser along their
// edges. A loser edge with nothing to send (byes have no loser) still
// notifies the target, which may itself resolve as a walkover.
func propagateResult(b *models.Bracket, m *models.BracketMatch) {
	if m.NextMatchID != nil {
		if w := m.WinnerEntrant(); w != nil {
			fillSlot(b, *m.NextMatchID, m.ID, true, w)
		}
	}
	if m.LoserNextMatchID != nil {
		if l := m.LoserEntrant(); l != nil {
			fillSlot(b, *m.LoserNextMatchID, m.ID, false, l)
		} else if target, ok := b.Match(*m.LoserNextMatchID); ok {
			completeWalkover(b, target)
		}
	}
}

// fillSlot places an entrant into whichever slot of the target match
// declares the given source. Wiring mistakes are programmer errors, not
// recoverable states.
func fillSlot(b *models.Bracket, targetID, sourceID string, winner bool, e *models.Entrant) {
	target, ok := b.Match(targetID)
	if !ok {
		panic(fmt.Sprintf("brackets: match %s points to missing match %s", sourceID, targetID))
	}
	entrant := *e
	switch {
	case sourceMatches(target.SlotASource, sourceID, winner):
		target.SlotA = &entrant
	case sourceMatches(target.SlotBSource, sourceID, winner):
		target.SlotB = &entrant
	default:
		panic(fmt.Sprintf("brackets: match %s declares no slot sourced from %s", targetID, sourceID))
	}
	completeWalkover(b, target)
}

func sourceMatches(src *models.SlotSource, matchID string, winner bool) bool {
	return src != nil && src.MatchID == matchID && src.IsWinner == winner
}

// completeByeIfAny finishes a generated round-one match with a single real
// entrant: the entrant wins on the spot and advances along the usual edges.
func completeByeIfAny(b *models.Bracket, m *models.BracketMatch) {
	var advancing *models.Entrant
	switch {
	case m.SlotA != nil && m.SlotB == nil:
		advancing = m.SlotA
	case m.SlotB != nil && m.SlotA == nil:
		advancing = m.SlotB
	default:
		return
	}
	m.IsBye = true
	m.Status = models.MatchStatusCompleted
	m.WinnerID = strPtr(advancing.ID())
	propagateResult(b, m)
}

// completeWalkover auto-completes a match whose opponent can never arrive:
// one slot holds an entrant and the other slot's source is dead. The win is
// mechanical, so re-running propagation after a correction re-derives it.
func completeWalkover(b *models.Bracket, m *models.BracketMatch) {
	if m.Status == models.MatchStatusCanceled {
		return
	}
	if m.Completed() && !m.IsBye {
		return
	}
	var occupant *models.Entrant
	switch {
	case m.SlotA != nil && m.SlotB == nil && slotDead(b, m.SlotBSource):
		occupant = m.SlotA
	case m.SlotB != nil && m.SlotA == nil && slotDead(b, m.SlotASource):
		occupant = m.SlotB
	default:
		return
	}
	m.IsBye = true
	m.Status = models.MatchStatusCompleted
	m.WinnerID = strPtr(occupant.ID())
	m.LoserID = nil
	log.WithFields(log.Fields{
		"match":  m.ID,
		"winner": occupant.ID(),
	}).Debug("bracket walkover")
	propagateResult(b, m)
}

// slotDead reports whether a sourced slot can never be filled: its source
// match was canceled, or completed without producing the required entrant
// (a bye has no loser to send).
func slotDead(b *models.Bracket, src *models.SlotSource) bool {
	if src == nil {
		return false
	}
	m, ok := b.Match(src.MatchID)
	if !ok {
		panic(fmt.Sprintf("brackets: slot references missing match %s", src.MatchID))
	}
	if m.Status == models.MatchStatusCanceled {
		return true
	}
	if !m.Completed() {
		return false
	}
	if src.IsWinner {
		return m.WinnerEntrant() == nil
	}
	return m.LoserEntrant() == nil
}

// syncGrandFinalReset fills or empties the reset match after the grand final
// is (re)recorded. The winners champion keeps the title with a single win,
// so the reset only materializes when the losers survivor takes the grand
// final.
func syncGrandFinalReset(b *models.Bracket) {
	r := b.GrandFinalReset
	if r == nil {
		return
	}
	if !GrandFinalResetRequired(b) {
		// Сброс не нужен - освобождаем матч полностью.
		r.SlotA, r.SlotB = nil, nil
		r.Score = nil
		r.Status = models.StatusScheduled
		r.WinnerID, r.LoserID = nil, nil
		return
	}
	if r.Completed() && r.WinnerID != nil {
		stillIn := (r.SlotA != nil && r.SlotA.ID() == *r.WinnerID) ||
			(r.SlotB != nil && r.SlotB.ID() == *r.WinnerID)
		if !stillIn {
			r.Score = nil
			r.Status = models.StatusScheduled
			r.WinnerID, r.LoserID = nil, nil
		}
	}
}
