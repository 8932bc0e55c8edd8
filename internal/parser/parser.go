// Package parser reads flashcards from Markdown deck files.
//
// A card starts at a line beginning with "Q:", its answer at "A:".
// A "C:" block holds context notes, which are read and discarded.
// Lines that follow a prefix extend the current block, and a line
// holding only "---" ends the card. Cards missing either a question
// or an answer are dropped.
package parser

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/conorfennell/flashcards/internal/domain"
)

const (
	questionPrefix = "Q:"
	answerPrefix   = "A:"
	contextPrefix  = "C:"
	separator      = "---"
)

type state int

const (
	seeking state = iota
	readingQuestion
	readingAnswer
	readingContext
)

// deckReader accumulates the card under construction.
type deckReader struct {
	cards   []domain.Card
	current domain.Card
	block   []string
	state   state
}

// flushBlock stores the pending lines in the field the reader is in.
func (d *deckReader) flushBlock() {
	if len(d.block) == 0 {
		return
	}
	content := strings.TrimRight(strings.Join(d.block, "\n"), "\n")
	switch d.state {
	case readingQuestion:
		d.current.Question = content
	case readingAnswer:
		d.current.Answer = content
	}
	d.block = nil
}

// finishCard closes the current card, keeping it only if complete.
func (d *deckReader) finishCard() {
	d.flushBlock()
	if d.current.Question != "" && d.current.Answer != "" {
		d.cards = append(d.cards, domain.NewCard(d.current.Question, d.current.Answer))
	}
	d.current = domain.Card{}
	d.state = seeking
}

// begin switches to a new block, starting it with the rest of line.
func (d *deckReader) begin(next state, line, prefix string) {
	d.flushBlock()
	if next == readingQuestion && d.state != seeking {
		// A new question always starts a new card.
		d.finishCard()
	}
	d.state = next
	d.block = append(d.block, strings.TrimPrefix(line[len(prefix):], " "))
}

func (d *deckReader) line(line string) {
	switch {
	case line == separator:
		d.finishCard()
	case strings.HasPrefix(line, questionPrefix):
		d.begin(readingQuestion, line, questionPrefix)
	case strings.HasPrefix(line, answerPrefix):
		d.begin(readingAnswer, line, answerPrefix)
	case strings.HasPrefix(line, contextPrefix):
		d.begin(readingContext, line, contextPrefix)
	case d.state != seeking:
		d.block = append(d.block, line)
	}
}

// ParseFile reads a file from the given path and extracts all cards.
func ParseFile(path string) ([]domain.Card, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads from an io.Reader and extracts all cards.
func Parse(r io.Reader) ([]domain.Card, error) {
	scanner := bufio.NewScanner(r)
	reader := &deckReader{}

	for scanner.Scan() {
		reader.line(strings.TrimSuffix(scanner.Text(), "\r"))
	}
	reader.finishCard() // Finish the very last card in the file

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return reader.cards, nil
}
