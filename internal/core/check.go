package core

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMessage  = errors.New("unknown message")
	ErrIndexOutOfRange = errors.New("card index out of range")
	ErrAlreadyRated    = errors.New("card already rated")
	ErrInvalidScore    = errors.New("invalid score")
	ErrNotEditing      = errors.New("no card is being edited")
)

// Check reports why Transition would leave m unchanged for msg, or
// why it would apply msg only partially. It returns nil when msg
// applies in full.
func Check(msg Msg, m Model) error {
	switch msg := msg.(type) {
	case OpenPopup, ClosePopup, UpdateQuestion, UpdateAnswer, AddCard:
		return nil

	case DeleteCard:
		return checkIndex(m, msg.Index)

	case EditCard:
		return checkIndex(m, msg.Index)

	case SaveCard:
		editing, ok := m.EditingIndex()
		if !ok {
			return ErrNotEditing
		}
		return checkIndex(m, editing)

	case RateCard:
		if err := checkIndex(m, msg.Index); err != nil {
			return err
		}
		if !msg.Score.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidScore, int(msg.Score))
		}
		if m.Cards[msg.Index].Scored {
			return fmt.Errorf("%w: card %d scored %s", ErrAlreadyRated, msg.Index, m.Cards[msg.Index].Score)
		}
		return nil

	case nil:
		return fmt.Errorf("%w: nil", ErrUnknownMessage)
	}

	return fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Tag())
}

func checkIndex(m Model, index int) error {
	if !m.validIndex(index) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(m.Cards))
	}
	return nil
}
