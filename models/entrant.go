package models

// Entrant is one side of a match: a single player or a team, depending on
// the draw format. Exactly one of the two fields is set.
type Entrant struct {
	Player *Player `json:"player,omitempty"`
	Team   *Team   `json:"team,omitempty"`
}

func PlayerEntrant(p Player) Entrant {
	return Entrant{Player: &p}
}

func TeamEntrant(t Team) Entrant {
	return Entrant{Team: &t}
}

// PlayerEntrants wraps a player list for the generators.
func PlayerEntrants(players []Player) []Entrant {
	entrants := make([]Entrant, len(players))
	for i, p := range players {
		entrants[i] = PlayerEntrant(p)
	}
	return entrants
}

// TeamEntrants wraps a team list for the generators.
func TeamEntrants(teams []Team) []Entrant {
	entrants := make([]Entrant, len(teams))
	for i, t := range teams {
		entrants[i] = TeamEntrant(t)
	}
	return entrants
}

// ID returns the stable identifier of whichever participant is set, or ""
// for an empty slot.
func (e Entrant) ID() string {
	switch {
	case e.Player != nil:
		return e.Player.ID
	case e.Team != nil:
		return e.Team.ID
	}
	return ""
}

func (e Entrant) Name() string {
	switch {
	case e.Player != nil:
		return e.Player.Name
	case e.Team != nil:
		return e.Team.Player1.Name + " / " + e.Team.Player2.Name
	}
	return ""
}

// Skill is the seeding metric: the player's own rating, or the team's
// combined one.
func (e Entrant) Skill() float64 {
	switch {
	case e.Player != nil:
		return e.Player.Skill
	case e.Team != nil:
		return e.Team.Skill()
	}
	return 0
}

// IsZero reports whether the slot holds no participant.
func (e Entrant) IsZero() bool {
	return e.Player == nil && e.Team == nil
}
