// Package knol derives a stable identity for a card from its content.
// The identity keys card nodes in the render tree and deduplicates
// cards while loading decks.
package knol

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/conorfennell/flashcards/internal/domain"
)

// Normalize concatenates the card's question and answer after cleaning
// each part. It trims whitespace, lowercases, and normalizes line
// endings before joining them. Ratings do not take part.
func Normalize(card domain.Card) string {
	normalizePart := func(part string) string {
		p := strings.ToLower(part)
		p = strings.ReplaceAll(p, "\r\n", "\n")
		return strings.TrimSpace(p)
	}

	// Joined with a newline so "question" and "answer" can never
	// collapse into "questionanswer".
	return normalizePart(card.Question) + "\n" + normalizePart(card.Answer)
}

// Hash takes a card, normalizes it, and returns its SHA-256 hash as a hex string.
func Hash(card domain.Card) string {
	hashBytes := sha256.Sum256([]byte(Normalize(card)))
	return fmt.Sprintf("%x", hashBytes)
}

// Short returns the first twelve hex digits of Hash, enough to tell
// cards of one session apart in logs and render keys.
func Short(card domain.Card) string {
	return Hash(card)[:12]
}
