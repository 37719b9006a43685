package brackets

import "github.com/Dosada05/matchplay/models"

// seedOrder returns the slot order of a power-of-two draw: seedOrder(2) is
// [0, 1], and every doubling interleaves each position with its mirror
// (size-1-pos). Slot i of round one holds seed order[i], which pairs the top
// seed with the lowest and keeps the top two seeds in opposite halves until
// the final.
func seedOrder(size int) []int {
	order := []int{0}
	for n := 2; n <= size; n *= 2 {
		next := make([]int, 0, n)
		for _, pos := range order {
			next = append(next, pos, n-1-pos)
		}
		order = next
	}
	return order
}

// seededSlots lays entrants into round-one slots by seed order. The entrant
// list is already sorted strongest first by the caller (pool qualifiers come
// pre-ordered from AdvanceToPlayoffs). Empty slots are byes.
func seededSlots(entrants []models.Entrant, size int) []*models.Entrant {
	slots := make([]*models.Entrant, size)
	for slot, seed := range seedOrder(size) {
		if seed < len(entrants) {
			e := entrants[seed]
			slots[slot] = &e
		}
	}
	return slots
}
