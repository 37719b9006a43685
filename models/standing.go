package models

// Standing is one row of a computed table. Standings are derived from
// completed matches on demand and never stored or mutated directly.
type Standing struct {
	EntrantID     string  `json:"entrant_id"`
	Name          string  `json:"name"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	PointsFor     int     `json:"points_for"`
	PointsAgainst int     `json:"points_against"`
	PointDiff     int     `json:"point_diff"`
	WinPercentage float64 `json:"win_percentage"`
	Rank          int     `json:"rank"`
}
