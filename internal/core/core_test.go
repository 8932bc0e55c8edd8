package core

import (
	"errors"
	"reflect"
	"testing"

	"github.com/conorfennell/flashcards/internal/domain"
)

func TestDisplayOrder(t *testing.T) {
	scores := []domain.Score{domain.Great, domain.Bad, domain.Good, domain.Bad}
	cards := make([]domain.Card, len(scores))
	for i, score := range scores {
		cards[i] = domain.Card{Question: string(rune('a' + i)), Score: score, Scored: true}
	}

	got := DisplayOrder(cards)
	expected := []int{1, 3, 2, 0}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected order %v, but got %v", expected, got)
	}

	if len(DisplayOrder(nil)) != 0 {
		t.Error("Expected an empty order for no cards")
	}
}

func TestSubmit(t *testing.T) {
	testCases := []struct {
		name     string
		model    Model
		expected Msg
		ok       bool
	}{
		{"empty question", Model{NewAnswer: "A"}, nil, false},
		{"blank answer", Model{NewQuestion: "Q", NewAnswer: "  \t"}, nil, false},
		{"create mode", Model{NewQuestion: "Q", NewAnswer: "A"}, AddCard{}, true},
		{"edit mode", Model{NewQuestion: "Q", NewAnswer: "A"}.withEditing(0), SaveCard{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg, ok := Submit(tc.model)
			if ok != tc.ok || msg != tc.expected {
				t.Errorf("Expected (%#v, %v), but got (%#v, %v)", tc.expected, tc.ok, msg, ok)
			}
		})
	}
}

func TestFromTag(t *testing.T) {
	testCases := []struct {
		tag      string
		expected Msg
	}{
		{TagOpenPopup, OpenPopup{}},
		{TagClosePopup, ClosePopup{}},
		{TagAddCard, AddCard{}},
		{TagSaveCard, SaveCard{}},
		{TagDeleteCard, Unknown{Name: TagDeleteCard}},
		{"whatever", Unknown{Name: "whatever"}},
	}

	for _, tc := range testCases {
		t.Run(tc.tag, func(t *testing.T) {
			msg := FromTag(tc.tag)
			if msg != tc.expected {
				t.Errorf("Expected %#v, but got %#v", tc.expected, msg)
			}
			if msg.Tag() != tc.tag {
				t.Errorf("Expected tag '%s', but got '%s'", tc.tag, msg.Tag())
			}
		})
	}
}

func TestCheck(t *testing.T) {
	m := NewModel([]domain.Card{{Question: "Q", Answer: "A", Score: domain.Good, Scored: true}, domain.NewCard("Q2", "A2")})

	testCases := []struct {
		name     string
		msg      Msg
		expected error
	}{
		{"open", OpenPopup{}, nil},
		{"delete ok", DeleteCard{Index: 1}, nil},
		{"delete stale", DeleteCard{Index: 2}, ErrIndexOutOfRange},
		{"edit stale", EditCard{Index: -1}, ErrIndexOutOfRange},
		{"save outside edit", SaveCard{}, ErrNotEditing},
		{"rate rated", RateCard{Index: 0, Score: domain.Bad}, ErrAlreadyRated},
		{"rate invalid", RateCard{Index: 1, Score: domain.Score(-2)}, ErrInvalidScore},
		{"rate ok", RateCard{Index: 1, Score: domain.Bad}, nil},
		{"unknown", Unknown{Name: "X"}, ErrUnknownMessage},
		{"nil", nil, ErrUnknownMessage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Check(tc.msg, m)
			if tc.expected == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, err)
			}
		})
	}
}
