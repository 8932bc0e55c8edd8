package core

import "github.com/conorfennell/flashcards/internal/domain"

// Msg is a user intent accepted by Transition. The set of variants is
// closed: only types in this package implement it.
type Msg interface {
	// Tag is the wire name of the variant, e.g. "OPEN_POPUP".
	Tag() string
	isMsg()
}

// Message tags.
const (
	TagOpenPopup      = "OPEN_POPUP"
	TagClosePopup     = "CLOSE_POPUP"
	TagAddCard        = "ADD_CARD"
	TagDeleteCard     = "DELETE_CARD"
	TagUpdateQuestion = "UPDATE_QUESTION"
	TagUpdateAnswer   = "UPDATE_ANSWER"
	TagEditCard       = "EDIT_CARD"
	TagSaveCard       = "SAVE_CARD"
	TagRateCard       = "RATE_CARD"
)

// OpenPopup shows an empty form in create mode.
type OpenPopup struct{}

// ClosePopup hides the form and leaves edit mode.
type ClosePopup struct{}

// UpdateQuestion sets the staged question.
type UpdateQuestion struct {
	Value string
}

// UpdateAnswer sets the staged answer.
type UpdateAnswer struct {
	Value string
}

// AddCard appends a card built from the staging fields.
type AddCard struct{}

// DeleteCard removes the card at Index.
type DeleteCard struct {
	Index int
}

// EditCard opens the form staged with Card's text for the card at Index.
type EditCard struct {
	Card  domain.Card
	Index int
}

// SaveCard writes the staging fields back to the card being edited.
type SaveCard struct{}

// RateCard records Score for the card at Index.
type RateCard struct {
	Index int
	Score domain.Score
}

// Unknown stands in for a tag that names no variant, or one whose
// payload is missing. Transition leaves the model unchanged.
type Unknown struct {
	Name string
}

func (OpenPopup) Tag() string      { return TagOpenPopup }
func (ClosePopup) Tag() string     { return TagClosePopup }
func (UpdateQuestion) Tag() string { return TagUpdateQuestion }
func (UpdateAnswer) Tag() string   { return TagUpdateAnswer }
func (AddCard) Tag() string        { return TagAddCard }
func (DeleteCard) Tag() string     { return TagDeleteCard }
func (EditCard) Tag() string       { return TagEditCard }
func (SaveCard) Tag() string       { return TagSaveCard }
func (RateCard) Tag() string       { return TagRateCard }
func (u Unknown) Tag() string      { return u.Name }

func (OpenPopup) isMsg()      {}
func (ClosePopup) isMsg()     {}
func (UpdateQuestion) isMsg() {}
func (UpdateAnswer) isMsg()   {}
func (AddCard) isMsg()        {}
func (DeleteCard) isMsg()     {}
func (EditCard) isMsg()       {}
func (SaveCard) isMsg()       {}
func (RateCard) isMsg()       {}
func (Unknown) isMsg()        {}

// FromTag turns a shorthand tag into a message. Only variants without
// a payload can be written this way; every other tag, including those
// of payload-carrying variants, becomes Unknown.
func FromTag(tag string) Msg {
	switch tag {
	case TagOpenPopup:
		return OpenPopup{}
	case TagClosePopup:
		return ClosePopup{}
	case TagAddCard:
		return AddCard{}
	case TagSaveCard:
		return SaveCard{}
	default:
		return Unknown{Name: tag}
	}
}
