package models

// Team is a fixed doubles pairing. Teams in partner-rotation draws are
// synthesized by the generator and exist only inside the matches that
// reference them.
type Team struct {
	ID      string `json:"id"`
	Player1 Player `json:"player1"`
	Player2 Player `json:"player2"`
}

// Skill is the team's seeding metric: both players combined.
func (t Team) Skill() float64 {
	return t.Player1.Skill + t.Player2.Skill
}
