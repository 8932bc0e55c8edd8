// Package view renders the flashcard model as a vtree.
package view

import (
	"fmt"

	"github.com/conorfennell/flashcards/internal/core"
	"github.com/conorfennell/flashcards/internal/domain"
	"github.com/conorfennell/flashcards/internal/knol"
	"github.com/conorfennell/flashcards/internal/shell"
	"github.com/conorfennell/flashcards/internal/vtree"
)

// Dispatch submits a message to the runtime.
type Dispatch = func(core.Msg)

// Button labels.
const (
	LabelAddFlashcard = "+ Add Flashcard"
	LabelAddCard      = "Add Card"
	LabelSaveChanges  = "Save Changes"
	LabelCancel       = "Cancel"
	LabelEdit         = "Edit"
	LabelDelete       = "Delete"
	LabelShowAnswer   = "Show Answer"
)

// Render builds the UI tree for m. Handlers capture dispatch and call
// it only when an event fires.
func Render(dispatch Dispatch, m core.Model) *vtree.Node {
	root := vtree.Div().Attr("id", "app").Child(
		vtree.Button(LabelAddFlashcard).
			Class("primary").
			OnClick(func() { dispatch(core.OpenPopup{}) }),
	)

	for _, index := range core.DisplayOrder(m.Cards) {
		root.Child(cardView(dispatch, m.Cards[index], index))
	}

	// The form goes last so opening it never shifts the cards.
	if m.ShowPopup {
		root.Child(cardForm(dispatch, m))
	}
	return root
}

// cardForm is the add/edit form shown over the card list.
func cardForm(dispatch Dispatch, m core.Model) *vtree.Node {
	submitLabel := LabelAddCard
	title := "New Flashcard"
	if m.IsEditing() {
		submitLabel = LabelSaveChanges
		title = "Edit Flashcard"
	}

	return vtree.Form(
		vtree.Label(title).Class("title"),
		vtree.Label("Question:"),
		vtree.Input(m.NewQuestion).
			Class("question").
			OnEvent("input", func(ev vtree.Event) { dispatch(core.UpdateQuestion{Value: ev.Value}) }),
		vtree.Label("Answer:"),
		vtree.Input(m.NewAnswer).
			Class("answer").
			OnEvent("input", func(ev vtree.Event) { dispatch(core.UpdateAnswer{Value: ev.Value}) }),
		vtree.Div(
			vtree.Button(submitLabel).Class("primary").Attr("type", "submit"),
			vtree.Button(LabelCancel).Class("danger").OnClick(func() { dispatch(core.ClosePopup{}) }),
		).Class("actions"),
	).
		Class("popup").
		OnEvent("submit", func(vtree.Event) {
			if msg, ok := core.Submit(m); ok {
				dispatch(msg)
			}
		})
}

// cardView renders one card. index is its position in m.Cards, which
// is what the messages carry, not its display position.
func cardView(dispatch Dispatch, card domain.Card, index int) *vtree.Node {
	ratings := vtree.Div().Class("rating").Flag("hidden", true)
	for _, score := range domain.Scores {
		ratings.Child(
			vtree.Button(score.String()).
				Class("primary").
				Flag("disabled", card.Scored).
				OnClick(func() { dispatch(core.RateCard{Index: index, Score: score}) }),
		)
	}

	return vtree.Div(
		vtree.Div(
			vtree.Button(LabelEdit).OnClick(func() { dispatch(core.EditCard{Card: card, Index: index}) }),
			vtree.Button(LabelDelete).Class("danger").OnClick(func() { dispatch(core.DeleteCard{Index: index}) }),
		).Class("tools"),
		vtree.P("Question").Class("label"),
		vtree.P(card.Question).Class("question"),
		vtree.Button(LabelShowAnswer).Class("link").OnEvent("click", revealAnswer),
		vtree.P(card.Answer).Class("answer").Flag("hidden", true),
		ratings,
		vtree.P(scoreText(card)).Class("score"),
	).
		Class("card").
		WithKey(knol.Short(card))
}

// revealAnswer shows the answer and the rating row that follow the
// "Show Answer" button. It only touches the live elements: the model
// does not know whether an answer is showing.
func revealAnswer(ev vtree.Event) {
	if ev.Target == nil {
		return
	}
	answer := ev.Target.NextSibling()
	if answer == nil {
		return
	}
	answer.Show()
	if ratings := answer.NextSibling(); ratings != nil {
		ratings.Show()
	}
}

func scoreText(card domain.Card) string {
	if !card.Scored {
		return fmt.Sprintf("Score: %d", int(card.Score))
	}
	return fmt.Sprintf("Score: %d (%s)", int(card.Score), card.Score)
}

// Program wires the flashcard model, transition and view into a
// program a shell can run, starting from init.
func Program(init core.Model) shell.Program[core.Model, core.Msg] {
	return shell.Program[core.Model, core.Msg]{
		Init:    init,
		Update:  core.Transition,
		View:    Render,
		FromTag: core.FromTag,
		Check:   core.Check,
	}
}
