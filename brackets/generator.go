package brackets

import (
	"fmt"

	"github.com/Dosada05/matchplay/models"
)

// Generator turns an ordered entrant list into a playable bracket. The list
// order is the seed order.
type Generator interface {
	GenerateBracket(entrants []models.Entrant) (*models.Bracket, error)

	GetName() string
}

// NewGenerator returns the generator for the given bracket type.
func NewGenerator(t models.BracketType) (Generator, error) {
	switch t {
	case models.BracketSingleElimination:
		return NewSingleEliminationGenerator(), nil
	case models.BracketDoubleElimination:
		return NewDoubleEliminationGenerator(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBracketType, t)
	}
}

func strPtr(s string) *string {
	return &s
}
