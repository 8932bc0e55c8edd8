package core

import (
	"slices"

	"github.com/conorfennell/flashcards/internal/domain"
)

// Transition computes the model that follows m once msg is applied.
// It is total: messages it cannot apply, including Unknown ones and
// ones carrying a stale index, return m unchanged.
func Transition(msg Msg, m Model) Model {
	switch msg := msg.(type) {
	case OpenPopup:
		m.ShowPopup = true
		return m.clearStaging().withoutEditing()

	case ClosePopup:
		m.ShowPopup = false
		return m.withoutEditing()

	case UpdateQuestion:
		m.NewQuestion = msg.Value
		return m

	case UpdateAnswer:
		m.NewAnswer = msg.Value
		return m

	case AddCard:
		m.Cards = append(slices.Clip(m.Cards), domain.NewCard(m.NewQuestion, m.NewAnswer))
		m.ShowPopup = false
		return m.clearStaging()

	case DeleteCard:
		return deleteCard(m, msg.Index)

	case EditCard:
		if !m.validIndex(msg.Index) {
			return m
		}
		m.ShowPopup = true
		m.NewQuestion = msg.Card.Question
		m.NewAnswer = msg.Card.Answer
		return m.withEditing(msg.Index)

	case SaveCard:
		return saveCard(m)

	case RateCard:
		return rateCard(m, msg.Index, msg.Score)
	}

	return m
}

func deleteCard(m Model, index int) Model {
	if !m.validIndex(index) {
		return m
	}
	m.Cards = slices.Delete(slices.Clone(m.Cards), index, index+1)

	// Keep a staged edit pointing at the same card.
	if editing, ok := m.EditingIndex(); ok {
		switch {
		case editing == index:
			m.ShowPopup = false
			m = m.clearStaging().withoutEditing()
		case editing > index:
			m = m.withEditing(editing - 1)
		}
	}
	return m
}

func saveCard(m Model) Model {
	if editing, ok := m.EditingIndex(); ok && m.validIndex(editing) {
		cards := slices.Clone(m.Cards)
		cards[editing].Question = m.NewQuestion
		cards[editing].Answer = m.NewAnswer
		m.Cards = cards
	}
	m.ShowPopup = false
	return m.clearStaging().withoutEditing()
}

func rateCard(m Model, index int, score domain.Score) Model {
	if !m.validIndex(index) || !score.Valid() || m.Cards[index].Scored {
		return m
	}
	cards := slices.Clone(m.Cards)
	cards[index].Score = score
	cards[index].Scored = true
	m.Cards = cards
	return m
}
