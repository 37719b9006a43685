package models

type MatchStatus string

const (
	StatusScheduled      MatchStatus = "scheduled"
	MatchStatusCompleted MatchStatus = "completed"
	MatchStatusCanceled  MatchStatus = "canceled"
)

// Score holds points for side A and side B of a match.
type Score struct {
	A int `json:"a"`
	B int `json:"b"`
}

type Match struct {
	ID       string      `json:"id"`
	Round    int         `json:"round"`
	Court    *int        `json:"court,omitempty"`
	Pool     *int        `json:"pool,omitempty"`
	A        Entrant     `json:"a"`
	B        Entrant     `json:"b"`
	Score    *Score      `json:"score,omitempty"`
	Status   MatchStatus `json:"status"`
	WinnerID *string     `json:"winner_id,omitempty"`
}

// RecordResult stores the score and completes the match. The winner is
// derived from the score; an even score leaves WinnerID unset.
func (m *Match) RecordResult(score Score) {
	s := score
	m.Score = &s
	m.Status = MatchStatusCompleted
	switch {
	case score.A > score.B:
		id := m.A.ID()
		m.WinnerID = &id
	case score.B > score.A:
		id := m.B.ID()
		m.WinnerID = &id
	default:
		m.WinnerID = nil
	}
}

// Cancel marks the match canceled. Canceled matches stay in the schedule for
// history and are skipped by standings.
func (m *Match) Cancel() {
	m.Status = MatchStatusCanceled
}

func (m *Match) Completed() bool {
	return m.Status == MatchStatusCompleted
}
