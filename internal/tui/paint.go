package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/conorfennell/flashcards/internal/vtree"
)

const (
	maxCardWidth = 64
	inputWidth   = 40
	focusMarker  = "▸"
)

// painter turns live elements into styled terminal text. It reads the
// live tree only, so presentational changes made by handlers (revealed
// answers) show up even though no render tree mentions them.
type painter struct {
	theme Theme
	width int
	// focus is the focused element, drawn highlighted.
	focus *vtree.Element
	// input draws the focused input, cursor included.
	input func() string
}

// block is one painted top-level element and the lines it covers.
type block struct {
	element *vtree.Element
	text    string
}

// blocks paints the root's visible children other than forms, which
// are drawn as overlays.
func (p painter) blocks(root *vtree.Element) []block {
	var blocks []block
	for _, child := range root.Children {
		if child.Tag == "form" {
			continue
		}
		if text := p.paint(child); text != "" {
			blocks = append(blocks, block{element: child, text: text})
		}
	}
	return blocks
}

// forms returns the root's forms.
func forms(root *vtree.Element) []*vtree.Element {
	var result []*vtree.Element
	for _, child := range root.Children {
		if child.Tag == "form" && !child.Hidden() {
			result = append(result, child)
		}
	}
	return result
}

func (p painter) cardWidth() int {
	return max(20, min(maxCardWidth, p.width-2))
}

func (p painter) paint(el *vtree.Element) string {
	if el.Hidden() {
		return ""
	}

	class, _ := el.Attr("class")
	switch el.Tag {
	case "button":
		return p.button(el, class)
	case "input":
		return p.inputField(el)
	case "label":
		style := lipgloss.NewStyle().Bold(true).Foreground(p.theme.NormalText)
		if class == "title" {
			style = style.Foreground(p.theme.HeaderText).MarginBottom(1)
		}
		return style.Render(el.Text)
	case "p":
		return p.paragraph(el, class)
	case "form":
		inner := p.stack(el.Children)
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.theme.FormBorder).
			Padding(1, 2).
			Render(inner)
	}

	switch class {
	case "card":
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.theme.CardBorder).
			Padding(0, 1).
			MarginTop(1).
			Width(p.cardWidth()).
			Render(p.stack(el.Children))
	case "tools", "rating", "actions":
		return p.row(el.Children)
	}
	return p.stack(el.Children)
}

func (p painter) stack(children []*vtree.Element) string {
	var parts []string
	for _, child := range children {
		if text := p.paint(child); text != "" {
			parts = append(parts, text)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (p painter) row(children []*vtree.Element) string {
	var parts []string
	for _, child := range children {
		if text := p.paint(child); text != "" {
			if len(parts) > 0 {
				parts = append(parts, " ")
			}
			parts = append(parts, text)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (p painter) button(el *vtree.Element, class string) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	switch class {
	case "primary":
		style = style.Background(p.theme.PrimaryBackground).Foreground(p.theme.ButtonForeground).Bold(true)
	case "danger":
		style = style.Background(p.theme.DangerBackground).Foreground(p.theme.ButtonForeground)
	case "link":
		style = lipgloss.NewStyle().Foreground(p.theme.LinkForeground).Underline(true)
	default:
		style = style.Foreground(p.theme.NormalText).Border(lipgloss.NormalBorder(), false, true)
	}

	if el.Is("disabled") {
		style = style.UnsetBackground().Foreground(p.theme.FaintText).Strikethrough(true)
	}
	if el == p.focus {
		style = style.Background(p.theme.FocusBackground).Foreground(p.theme.FocusForeground)
		return focusMarker + style.Render(el.Text)
	}
	return " " + style.Render(el.Text)
}

func (p painter) inputField(el *vtree.Element) string {
	style := lipgloss.NewStyle().
		Width(inputWidth).
		Background(p.theme.InputBack).
		Foreground(p.theme.NormalText).
		MarginBottom(1)

	if el == p.focus && p.input != nil {
		return focusMarker + style.Render(p.input())
	}
	value, _ := el.Attr("value")
	return " " + style.Render(value)
}

func (p painter) paragraph(el *vtree.Element, class string) string {
	width := p.cardWidth() - 2
	style := lipgloss.NewStyle().Width(width).Foreground(p.theme.NormalText)
	switch class {
	case "label":
		style = style.Foreground(p.theme.FaintText).Bold(true)
	case "question":
		style = style.Bold(true).MarginBottom(1)
	case "answer":
		style = style.Foreground(p.theme.AnswerText).MarginTop(1)
	case "score":
		style = style.Foreground(p.theme.FaintText).Align(lipgloss.Right).MarginTop(1)
	}
	return style.Render(strings.TrimRight(el.Text, "\n"))
}
