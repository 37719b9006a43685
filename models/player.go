package models

// Player identities are supplied by the caller with stable ids; the engine
// never mutates them.
type Player struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Skill float64 `json:"skill,omitempty"`
}
