package models

// KingOfCourtState is the rotation state between matches: the reigning king,
// the entrant currently on court against them, and the FIFO queue of waiting
// entrants. King and Challenger are never inside the queue.
type KingOfCourtState struct {
	King          Entrant   `json:"king"`
	Challenger    Entrant   `json:"challenger"`
	Queue         []Entrant `json:"queue"`
	MatchesPlayed int       `json:"matches_played"`
	KingStreak    int       `json:"king_streak"`
}
