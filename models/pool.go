package models

// Pool owns a disjoint subset of entrants and the round-robin matches played
// among them. Numbers are 1-based.
type Pool struct {
	Number   int       `json:"number"`
	Entrants []Entrant `json:"entrants"`
	Matches  []Match   `json:"matches"`
}
