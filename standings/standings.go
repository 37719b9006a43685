package standings

import (
	"sort"

	"github.com/Dosada05/matchplay/models"
)

// Compute aggregates completed matches into a ranked table. Scheduled and
// canceled matches are skipped. The function is pure: the same matches and
// entrants always produce the same table.
//
// Sorting uses three keys: wins desc, then point differential desc, then
// points scored desc. Rows still tied after all three keep their entrant
// input order. Ranks are dense and 1-based.
func Compute(matches []models.Match, entrants []models.Entrant) []models.Standing {
	rows := make(map[string]*models.Standing, len(entrants))
	order := make([]string, 0, len(entrants))
	for _, e := range entrants {
		if e.IsZero() || rows[e.ID()] != nil {
			continue
		}
		rows[e.ID()] = &models.Standing{EntrantID: e.ID(), Name: e.Name()}
		order = append(order, e.ID())
	}

	for _, m := range matches {
		if !m.Completed() {
			continue
		}
		a, b := rows[m.A.ID()], rows[m.B.ID()]
		if a == nil || b == nil {
			continue
		}

		winnerID := ""
		if m.Score != nil {
			a.PointsFor += m.Score.A
			a.PointsAgainst += m.Score.B
			b.PointsFor += m.Score.B
			b.PointsAgainst += m.Score.A
			switch {
			case m.Score.A > m.Score.B:
				winnerID = m.A.ID()
			case m.Score.B > m.Score.A:
				winnerID = m.B.ID()
			}
		}
		// Score comparison decides the winner; the recorded winner id only
		// counts when no comparable score exists.
		if winnerID == "" && m.WinnerID != nil {
			winnerID = *m.WinnerID
		}
		switch winnerID {
		case m.A.ID():
			a.Wins++
			b.Losses++
		case m.B.ID():
			b.Wins++
			a.Losses++
		}
	}

	table := make([]models.Standing, 0, len(order))
	for _, id := range order {
		s := rows[id]
		s.PointDiff = s.PointsFor - s.PointsAgainst
		if played := s.Wins + s.Losses; played > 0 {
			s.WinPercentage = float64(s.Wins) / float64(played)
		}
		table = append(table, *s)
	}

	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Wins != table[j].Wins {
			return table[i].Wins > table[j].Wins
		}
		if table[i].PointDiff != table[j].PointDiff {
			return table[i].PointDiff > table[j].PointDiff
		}
		return table[i].PointsFor > table[j].PointsFor
	})
	for i := range table {
		table[i].Rank = i + 1
	}
	return table
}
