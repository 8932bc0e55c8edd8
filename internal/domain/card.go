package domain

import "fmt"

// Score is the recall rating a user gives a card.
type Score int

const (
	Bad Score = iota
	Good
	Great
)

// Valid reports whether s is one of the three ratings.
func (s Score) Valid() bool {
	return s >= Bad && s <= Great
}

func (s Score) String() string {
	switch s {
	case Bad:
		return "Bad"
	case Good:
		return "Good"
	case Great:
		return "Great"
	default:
		return fmt.Sprintf("Score(%d)", int(s))
	}
}

// Scores lists the ratings in ascending order.
var Scores = []Score{Bad, Good, Great}

// Card represents a single question-answer entry.
// Score is only meaningful once Scored is true.
type Card struct {
	Question string
	Answer   string
	Score    Score
	Scored   bool
}

// NewCard returns an unrated card.
func NewCard(question, answer string) Card {
	return Card{Question: question, Answer: answer}
}
