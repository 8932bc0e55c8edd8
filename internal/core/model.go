// Package core holds the flashcard application state and the pure
// transition function that computes each successor state.
//
// Nothing here performs I/O, reads a clock, or keeps hidden state.
// A Model is a value: Transition copies what it changes and never
// writes through to the snapshot it was given.
package core

import (
	"slices"

	"github.com/conorfennell/flashcards/internal/domain"
)

// Model is the complete application state for one session.
type Model struct {
	// Cards in insertion order. Display order is derived, see DisplayOrder.
	Cards []domain.Card

	// ShowPopup is true while the add/edit form is visible.
	ShowPopup bool

	// Staging fields bound to the form inputs. Stale while the form
	// is closed; OpenPopup and EditCard reset them.
	NewQuestion string
	NewAnswer   string

	// editing is the index of the card being edited plus one, so the
	// zero value means "create mode".
	editing int
}

// NewModel returns the initial model holding the given cards. The
// slice is copied.
func NewModel(cards []domain.Card) Model {
	return Model{Cards: slices.Clone(cards)}
}

// EditingIndex returns the index of the card being edited, and false
// when the form is in create mode.
func (m Model) EditingIndex() (int, bool) {
	if m.editing == 0 {
		return 0, false
	}
	return m.editing - 1, true
}

// IsEditing reports whether an existing card is being edited.
func (m Model) IsEditing() bool {
	return m.editing != 0
}

func (m Model) withEditing(index int) Model {
	m.editing = index + 1
	return m
}

func (m Model) withoutEditing() Model {
	m.editing = 0
	return m
}

func (m Model) clearStaging() Model {
	m.NewQuestion = ""
	m.NewAnswer = ""
	return m
}

func (m Model) validIndex(index int) bool {
	return index >= 0 && index < len(m.Cards)
}
