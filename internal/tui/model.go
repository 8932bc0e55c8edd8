package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/conorfennell/flashcards/internal/core"
	"github.com/conorfennell/flashcards/internal/shell"
	"github.com/conorfennell/flashcards/internal/view"
	"github.com/conorfennell/flashcards/internal/vtree"
)

// Model is the top-level bubbletea model of the flashcard TUI.
type Model struct {
	shell     *shell.Shell[core.Model, core.Msg]
	container *vtree.Element
	logger    *slog.Logger

	keys  KeyMap
	theme Theme
	help  help.Model
	input textinput.Model

	viewport viewport.Model
	// blockStart holds the first viewport line of each painted
	// top-level element, parallel to blockElements.
	blockStart    []int
	blockElements []*vtree.Element

	// focusPath locates the focused element in the live tree; nil
	// when nothing can take focus.
	focusPath []int
	// focusIndex is the focused element's position among the
	// focusable ones, used to land nearby when it disappears.
	focusIndex int
	// returnFocus is where focus goes back to when the form closes.
	returnFocus []int
	// inputPath is the input element the text input is bound to.
	inputPath []int

	width  int
	height int
	ready  bool

	status      string
	statusLevel slog.Level
}

// New mounts the flashcard program starting from initial.
func New(initial core.Model, logger *slog.Logger, theme Theme) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "type here"
	input.Width = inputWidth - 2

	container := vtree.NewContainer("body")
	model := Model{
		shell:     shell.Mount(view.Program(initial), container, logger),
		container: container,
		logger:    logger,
		keys:      DefaultKeyMap,
		theme:     theme,
		help:      help.New(),
		input:     input,
		viewport:  viewport.New(80, 20),
		width:     80,
		height:    24,
	}
	model.syncFocus()
	model.refresh()
	return model
}

// Cards returns the current application model.
func (model Model) Cards() core.Model {
	return model.shell.Model()
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	var command tea.Cmd

	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true

	case logRecordMsg:
		model.status = message.Summary
		model.statusLevel = message.Level
		command = tea.Tick(logRecordFadeDelay, func(time.Time) tea.Msg {
			return logRecordFadeMsg{}
		})

	case logRecordFadeMsg:
		model.status = ""

	case tea.KeyMsg:
		var quit bool
		command, quit = model.handleKey(message)
		if quit {
			return model, tea.Quit
		}

	default:
		model.input, command = model.input.Update(message)
		return model, command
	}

	model.syncFocus()
	model.refresh()
	return model, command
}

// handleKey routes a key press. It reports whether the program should
// quit.
func (model *Model) handleKey(message tea.KeyMsg) (tea.Cmd, bool) {
	focused := model.focused()
	inInput := focused != nil && focused.Tag == "input"

	switch {
	case key.Matches(message, model.keys.ForceQuit):
		return nil, true
	case key.Matches(message, model.keys.Next):
		model.moveFocus(1)
	case key.Matches(message, model.keys.Previous):
		model.moveFocus(-1)
	case key.Matches(message, model.keys.Close):
		if model.shell.Model().ShowPopup {
			model.shell.Dispatch(core.ClosePopup{})
		}
	case inInput && key.Matches(message, model.keys.Submit):
		model.fire(focused, "submit", "")
	case inInput:
		return model.edit(focused, message), false
	case key.Matches(message, model.keys.Quit):
		return nil, true
	case key.Matches(message, model.keys.Activate):
		if focused != nil {
			model.activate(focused)
		}
	case key.Matches(message, model.keys.Add):
		if !model.shell.Model().ShowPopup {
			model.shell.DispatchTag(core.TagOpenPopup)
		}
	case key.Matches(message, model.keys.PageUp):
		model.viewport.SetYOffset(model.viewport.YOffset - model.viewport.Height)
	case key.Matches(message, model.keys.PageDown):
		model.viewport.SetYOffset(model.viewport.YOffset + model.viewport.Height)
	case key.Matches(message, model.keys.Help):
		model.help.ShowAll = !model.help.ShowAll
	}
	return nil, false
}

// edit forwards a key to the text input and fires an input event on
// the focused element when the text changed.
func (model *Model) edit(focused *vtree.Element, message tea.KeyMsg) tea.Cmd {
	before := model.input.Value()
	var command tea.Cmd
	model.input, command = model.input.Update(message)
	if after := model.input.Value(); after != before {
		model.fire(focused, "input", after)
	}
	return command
}

// activate clicks a button; a submit button also submits its form.
func (model *Model) activate(el *vtree.Element) {
	if el.Tag != "button" {
		return
	}
	if kind, _ := el.Attr("type"); kind == "submit" {
		model.fire(el, "submit", "")
		return
	}
	model.fire(el, "click", "")
}

func (model *Model) fire(el *vtree.Element, event, value string) {
	path, ok := el.PathFrom(model.shell.Root())
	if !ok {
		return
	}
	err := model.shell.Fire(path, vtree.Event{Type: event, Value: value})
	if err != nil && !errors.Is(err, shell.ErrNoHandler) {
		model.logger.Warn("event not delivered", "event", event, "error", err)
	}
}

// focusable returns the elements that may take focus. While a form is
// open focus stays inside it.
func (model *Model) focusable() ([]*vtree.Element, bool) {
	all := vtree.Focusable(model.shell.Root())
	inForm := slices.DeleteFunc(slices.Clone(all), func(el *vtree.Element) bool {
		return el.Closest("form") == nil
	})
	if len(inForm) > 0 {
		return inForm, true
	}
	return all, false
}

func (model *Model) focused() *vtree.Element {
	if model.focusPath == nil {
		return nil
	}
	el, err := model.shell.Root().At(model.focusPath)
	if err != nil {
		return nil
	}
	return el
}

func (model *Model) moveFocus(delta int) {
	candidates, _ := model.focusable()
	if len(candidates) == 0 {
		return
	}
	index := (model.focusIndex + delta + len(candidates)) % len(candidates)
	model.focusIndex = index
	model.focusPath = model.pathOf(candidates[index])
}

// syncFocus keeps focus on a focusable element after the live tree
// changed, traps it in an open form, and binds the text input to the
// focused input element.
func (model *Model) syncFocus() {
	candidates, trapped := model.focusable()

	switch {
	case trapped && model.returnFocus == nil:
		// The form just opened.
		model.returnFocus = model.focusPath
		if model.returnFocus == nil {
			model.returnFocus = []int{}
		}
		model.focusPath = nil
		model.focusIndex = 0
	case !trapped && model.returnFocus != nil:
		model.focusPath = model.returnFocus
		model.returnFocus = nil
	}

	if index := model.indexOfPath(candidates, model.focusPath); index >= 0 {
		model.focusIndex = index
	}
	model.focusPath = nil
	if len(candidates) > 0 {
		model.focusIndex = min(model.focusIndex, len(candidates)-1)
		model.focusPath = model.pathOf(candidates[model.focusIndex])
	}

	model.bindInput()
}

func (model *Model) pathOf(el *vtree.Element) []int {
	path, _ := el.PathFrom(model.shell.Root())
	return path
}

func (model *Model) indexOfPath(elements []*vtree.Element, path []int) int {
	if path == nil {
		return -1
	}
	return slices.IndexFunc(elements, func(el *vtree.Element) bool {
		return slices.Equal(model.pathOf(el), path)
	})
}

func (model *Model) bindInput() {
	focused := model.focused()
	if focused == nil || focused.Tag != "input" {
		model.inputPath = nil
		model.input.Blur()
		return
	}

	value, _ := focused.Attr("value")
	if !slices.Equal(model.inputPath, model.focusPath) || model.input.Value() != value {
		model.input.SetValue(value)
		model.input.CursorEnd()
	}
	model.inputPath = model.focusPath
	model.input.Focus()
}

func (model *Model) painter() painter {
	return painter{
		theme: model.theme,
		width: model.width,
		focus: model.focused(),
		input: model.input.View,
	}
}

// refresh repaints the card list into the viewport and scrolls it so
// the focused element's block is visible.
func (model *Model) refresh() {
	model.viewport.Width = model.width
	model.viewport.Height = max(1, model.height-1-lipgloss.Height(model.footer()))

	blocks := model.painter().blocks(model.shell.Root())
	model.blockStart = model.blockStart[:0]
	model.blockElements = model.blockElements[:0]
	var parts []string
	line := 0
	for _, b := range blocks {
		model.blockStart = append(model.blockStart, line)
		model.blockElements = append(model.blockElements, b.element)
		parts = append(parts, b.text)
		line += lipgloss.Height(b.text)
	}
	model.viewport.SetContent(strings.Join(parts, "\n"))

	focused := model.focused()
	if focused == nil || focused.Closest("form") != nil {
		return
	}
	for i, el := range model.blockElements {
		if !isAncestor(el, focused) {
			continue
		}
		start := model.blockStart[i]
		end := line
		if i+1 < len(model.blockStart) {
			end = model.blockStart[i+1]
		}
		switch {
		case start < model.viewport.YOffset:
			model.viewport.SetYOffset(start)
		case end > model.viewport.YOffset+model.viewport.Height:
			model.viewport.SetYOffset(min(start, end-model.viewport.Height))
		}
		return
	}
}

func isAncestor(ancestor, el *vtree.Element) bool {
	for current := el; current != nil; current = current.Parent() {
		if current == ancestor {
			return true
		}
	}
	return false
}

func (model Model) header() string {
	cards := model.shell.Model().Cards
	rated := 0
	for _, card := range cards {
		if card.Scored {
			rated++
		}
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderText).Render("Flashcards")
	counts := lipgloss.NewStyle().Foreground(model.theme.FaintText).
		Render(fmt.Sprintf(" · %d cards · %d rated", len(cards), rated))
	return title + counts
}

func (model Model) footer() string {
	if model.status != "" {
		color := model.theme.WarningText
		if model.statusLevel >= slog.LevelError {
			color = model.theme.ErrorText
		}
		return lipgloss.NewStyle().Foreground(color).Width(max(1, model.width)).MaxHeight(1).Render(model.status)
	}
	model.help.Width = model.width
	return model.help.View(model.keys)
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	body := model.viewport.View()
	if cards := model.shell.Model().Cards; len(cards) == 0 {
		body = spliceOverlay(body, lipgloss.NewStyle().Foreground(model.theme.FaintText).
			Render("No cards yet. Press a to add one."), 2, 3)
	}
	for _, form := range forms(model.shell.Root()) {
		popup := model.painter().paint(form)
		x := (model.width - lipgloss.Width(popup)) / 2
		y := (model.viewport.Height - lipgloss.Height(popup)) / 2
		body = spliceOverlay(body, popup, x, y)
	}

	return lipgloss.JoinVertical(lipgloss.Left, model.header(), body, model.footer())
}
