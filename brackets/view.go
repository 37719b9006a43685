package brackets

import (
	"sort"

	"github.com/Dosada05/matchplay/models"
)

// BracketView groups matches by side and round for rendering. All matches
// are deep copies; mutating a view never touches the bracket.
type BracketView struct {
	WinnersRounds []RoundView `json:"winners_rounds"`
	LosersRounds  []RoundView `json:"losers_rounds,omitempty"`
	FinalRounds   []RoundView `json:"final_rounds,omitempty"`
}

type RoundView struct {
	Number  int                   `json:"number"`
	Name    string                `json:"name"`
	Matches []models.BracketMatch `json:"matches"`
}

// BuildView flattens a bracket for presentation. The reset match shows up
// only while it can still be needed: before the grand final is decided, or
// after the losers champion forces it.
func BuildView(b *models.Bracket) BracketView {
	view := BracketView{
		WinnersRounds: roundViews(b.Rounds),
		LosersRounds:  roundViews(b.LosersRounds),
	}
	if b.GrandFinal != nil {
		view.FinalRounds = append(view.FinalRounds, RoundView{
			Number:  1,
			Name:    "Grand Final",
			Matches: []models.BracketMatch{*b.GrandFinal.Clone()},
		})
	}
	if b.GrandFinalReset != nil {
		decidedWithoutReset := b.GrandFinal != nil && b.GrandFinal.Completed() && !GrandFinalResetRequired(b)
		if !decidedWithoutReset {
			view.FinalRounds = append(view.FinalRounds, RoundView{
				Number:  2,
				Name:    "Grand Final Reset",
				Matches: []models.BracketMatch{*b.GrandFinalReset.Clone()},
			})
		}
	}
	return view
}

func roundViews(rounds []*models.BracketRound) []RoundView {
	if len(rounds) == 0 {
		return nil
	}
	out := make([]RoundView, 0, len(rounds))
	for _, r := range rounds {
		ordered := make([]*models.BracketMatch, len(r.Matches))
		copy(ordered, r.Matches)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].MatchNumber < ordered[j].MatchNumber
		})
		rv := RoundView{Number: r.Number, Name: r.Name}
		rv.Matches = make([]models.BracketMatch, 0, len(ordered))
		for _, m := range ordered {
			rv.Matches = append(rv.Matches, *m.Clone())
		}
		out = append(out, rv)
	}
	return out
}
