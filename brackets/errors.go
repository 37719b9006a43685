package brackets

import "errors"

// Ошибки генерации и проведения сетки.
var (
	ErrNotEnoughEntrants      = errors.New("not enough entrants to generate a bracket (minimum 2)")
	ErrUnsupportedBracketType = errors.New("unsupported bracket type")
	ErrMatchNotFound          = errors.New("bracket match not found")
	ErrWinnerNotInMatch       = errors.New("winner is not a participant of the match")
)
