package models

// LadderPlayer is a ladder participant. Rank 1 is the top; ranks form a
// dense permutation 1..n. Rank 0 means not yet ranked.
type LadderPlayer struct {
	Player
	Rank int `json:"rank"`
}

func (p LadderPlayer) Ranked() bool {
	return p.Rank > 0
}
