package core

import (
	"cmp"
	"slices"

	"github.com/conorfennell/flashcards/internal/domain"
)

// DisplayOrder returns the indices of cards sorted ascending by score.
// Cards with equal scores keep their insertion order. Unrated cards
// carry score zero and sort with the Bad ones.
func DisplayOrder(cards []domain.Card) []int {
	order := make([]int, len(cards))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(cards[a].Score, cards[b].Score)
	})
	return order
}
