package models

// BracketType определяет поддерживаемые форматы сетки.
type BracketType string

const (
	BracketSingleElimination BracketType = "SingleElimination"
	BracketDoubleElimination BracketType = "DoubleElimination"
)

// BracketSide places a match in the winners bracket, the losers bracket or
// the final stage.
type BracketSide string

const (
	SideWinners BracketSide = "winners"
	SideLosers  BracketSide = "losers"
	SideFinals  BracketSide = "finals"
)

// SlotSource is a declared edge: the slot is filled by the winner (or loser)
// of the referenced match. Progression resolves these edges instead of
// recomputing round arithmetic.
type SlotSource struct {
	MatchID  string `json:"match_id"`
	IsWinner bool   `json:"is_winner"`
}

type BracketMatch struct {
	ID          string      `json:"id"`
	Side        BracketSide `json:"side"`
	Round       int         `json:"round"`
	MatchNumber int         `json:"match_number"`

	SlotA *Entrant `json:"slot_a,omitempty"`
	SlotB *Entrant `json:"slot_b,omitempty"`

	SlotASource *SlotSource `json:"slot_a_source,omitempty"`
	SlotBSource *SlotSource `json:"slot_b_source,omitempty"`

	Score    *Score      `json:"score,omitempty"`
	Status   MatchStatus `json:"status"`
	WinnerID *string     `json:"winner_id,omitempty"`
	LoserID  *string     `json:"loser_id,omitempty"`

	NextMatchID      *string `json:"next_match_id,omitempty"`
	LoserNextMatchID *string `json:"loser_next_match_id,omitempty"`

	IsBye bool `json:"is_bye,omitempty"`
}

func (m *BracketMatch) Completed() bool {
	return m.Status == MatchStatusCompleted
}

// WinnerEntrant returns the occupant of the winning slot, nil until the
// match completes.
func (m *BracketMatch) WinnerEntrant() *Entrant {
	if m.WinnerID == nil {
		return nil
	}
	switch {
	case m.SlotA != nil && m.SlotA.ID() == *m.WinnerID:
		return m.SlotA
	case m.SlotB != nil && m.SlotB.ID() == *m.WinnerID:
		return m.SlotB
	}
	return nil
}

// LoserEntrant returns the occupant of the losing slot. Byes and walkovers
// have no loser.
func (m *BracketMatch) LoserEntrant() *Entrant {
	if m.WinnerID == nil {
		return nil
	}
	switch {
	case m.SlotA != nil && m.SlotA.ID() != *m.WinnerID:
		return m.SlotA
	case m.SlotB != nil && m.SlotB.ID() != *m.WinnerID:
		return m.SlotB
	}
	return nil
}

func (m *BracketMatch) Clone() *BracketMatch {
	if m == nil {
		return nil
	}
	c := *m
	c.SlotA = cloneEntrant(m.SlotA)
	c.SlotB = cloneEntrant(m.SlotB)
	c.SlotASource = cloneSource(m.SlotASource)
	c.SlotBSource = cloneSource(m.SlotBSource)
	c.Score = cloneScore(m.Score)
	c.WinnerID = cloneString(m.WinnerID)
	c.LoserID = cloneString(m.LoserID)
	c.NextMatchID = cloneString(m.NextMatchID)
	c.LoserNextMatchID = cloneString(m.LoserNextMatchID)
	return &c
}

// BracketRound is a display grouping; Number is 1-based within its side.
type BracketRound struct {
	Number  int             `json:"number"`
	Name    string          `json:"name"`
	Matches []*BracketMatch `json:"matches"`
}

// Bracket is a complete elimination draw. Rounds holds the winners bracket;
// LosersRounds, GrandFinal and GrandFinalReset are set for double
// elimination only.
type Bracket struct {
	Type            BracketType     `json:"type"`
	Rounds          []*BracketRound `json:"rounds"`
	LosersRounds    []*BracketRound `json:"losers_rounds,omitempty"`
	GrandFinal      *BracketMatch   `json:"grand_final,omitempty"`
	GrandFinalReset *BracketMatch   `json:"grand_final_reset,omitempty"`

	index map[string]*BracketMatch
}

// AllMatches returns every match in deterministic order: winners rounds,
// then losers rounds, then the grand final and its reset.
func (b *Bracket) AllMatches() []*BracketMatch {
	var all []*BracketMatch
	for _, r := range b.Rounds {
		all = append(all, r.Matches...)
	}
	for _, r := range b.LosersRounds {
		all = append(all, r.Matches...)
	}
	if b.GrandFinal != nil {
		all = append(all, b.GrandFinal)
	}
	if b.GrandFinalReset != nil {
		all = append(all, b.GrandFinalReset)
	}
	return all
}

// Match finds a match by id. The index is built on first use and lives for
// the bracket's lifetime; no match is ever added after generation.
func (b *Bracket) Match(id string) (*BracketMatch, bool) {
	if b.index == nil {
		b.index = make(map[string]*BracketMatch, 64)
		for _, m := range b.AllMatches() {
			b.index[m.ID] = m
		}
	}
	m, ok := b.index[id]
	return m, ok
}

// Clone returns a deep copy sharing no state with the original, for callers
// that want snapshot semantics around result recording.
func (b *Bracket) Clone() *Bracket {
	if b == nil {
		return nil
	}
	c := &Bracket{Type: b.Type}
	c.Rounds = cloneRounds(b.Rounds)
	c.LosersRounds = cloneRounds(b.LosersRounds)
	c.GrandFinal = b.GrandFinal.Clone()
	c.GrandFinalReset = b.GrandFinalReset.Clone()
	return c
}

func cloneRounds(rounds []*BracketRound) []*BracketRound {
	if rounds == nil {
		return nil
	}
	out := make([]*BracketRound, len(rounds))
	for i, r := range rounds {
		cr := &BracketRound{Number: r.Number, Name: r.Name}
		cr.Matches = make([]*BracketMatch, len(r.Matches))
		for j, m := range r.Matches {
			cr.Matches[j] = m.Clone()
		}
		out[i] = cr
	}
	return out
}

func cloneEntrant(e *Entrant) *Entrant {
	if e == nil {
		return nil
	}
	c := *e
	if c.Player != nil {
		p := *c.Player
		c.Player = &p
	}
	if c.Team != nil {
		t := *c.Team
		c.Team = &t
	}
	return &c
}

func cloneSource(s *SlotSource) *SlotSource {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func cloneScore(s *Score) *Score {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
