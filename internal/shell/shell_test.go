package shell

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/conorfennell/flashcards/internal/vtree"
)

type counterMsg struct {
	delta int
	tag   string
}

// counterProgram renders a counter with increment and reset buttons
// inside a form whose submit handler adds ten.
func counterProgram() Program[int, counterMsg] {
	return Program[int, counterMsg]{
		Init: 0,
		Update: func(msg counterMsg, n int) int {
			if msg.tag == "RESET" {
				return 0
			}
			return n + msg.delta
		},
		View: func(dispatch func(counterMsg), n int) *vtree.Node {
			root := vtree.Div(
				vtree.P(fmt.Sprintf("count %d", n)),
				vtree.Form(
					vtree.Button("inc").OnClick(func() { dispatch(counterMsg{delta: 1}) }),
					vtree.Button("ok").Attr("type", "submit"),
				).OnEvent("submit", func(vtree.Event) { dispatch(counterMsg{delta: 10}) }),
			)
			for i := 0; i < n && i < 3; i++ {
				root.Child(vtree.P("tick"))
			}
			return root
		},
		FromTag: func(tag string) counterMsg { return counterMsg{tag: tag} },
		Check: func(msg counterMsg, _ int) error {
			if msg.tag != "" && msg.tag != "RESET" {
				return errors.New("unknown tag")
			}
			return nil
		},
	}
}

func TestMountAndDispatch(t *testing.T) {
	container := vtree.NewContainer("body")
	s := Mount(counterProgram(), container, nil)

	if len(container.Children) != 1 || container.Children[0] != s.Root() {
		t.Fatal("Expected the first tree to be mounted exactly once")
	}

	s.Dispatch(counterMsg{delta: 2})
	if s.Model() != 2 || s.Revision() != 1 {
		t.Errorf("Expected model 2 at revision 1, got %d at %d", s.Model(), s.Revision())
	}
	if s.Root().Children[0].Text != "count 2" {
		t.Errorf("Expected the live tree to be patched, got '%s'", s.Root().Children[0].Text)
	}
	if !vtree.Equal(vtree.Snapshot(s.Root()), s.Tree()) {
		t.Error("Expected the live tree to match the current render tree")
	}
	if len(container.Children) != 1 {
		t.Errorf("Expected one mounted root, got %d", len(container.Children))
	}
}

func TestDispatchTag(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	s := Mount(counterProgram(), vtree.NewContainer("body"), logger)

	s.Dispatch(counterMsg{delta: 5})
	s.DispatchTag("RESET")
	if s.Model() != 0 {
		t.Errorf("Expected RESET to zero the counter, got %d", s.Model())
	}

	s.DispatchTag("BOGUS")
	if s.Model() != 0 {
		t.Errorf("Expected an unknown tag to change nothing, got %d", s.Model())
	}
	if !strings.Contains(logs.String(), "message ignored") {
		t.Errorf("Expected a warning for the unknown tag, got %q", logs.String())
	}
}

func TestDispatchQueuesReentrantMessages(t *testing.T) {
	program := counterProgram()
	var s *Shell[int, counterMsg]
	var seen []int
	update := program.Update
	program.Update = func(msg counterMsg, n int) int {
		next := update(msg, n)
		seen = append(seen, next)
		if msg.delta == 1 {
			// Dispatch from inside a step; must run after this one.
			s.Dispatch(counterMsg{delta: 100})
		}
		return next
	}
	s = Mount(program, vtree.NewContainer("body"), nil)

	s.Dispatch(counterMsg{delta: 1})
	if s.Model() != 101 {
		t.Errorf("Expected 101, got %d", s.Model())
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 101 {
		t.Errorf("Expected updates in order [1 101], got %v", seen)
	}
	if s.Revision() != 2 {
		t.Errorf("Expected two revisions, got %d", s.Revision())
	}
}

func TestFire(t *testing.T) {
	s := Mount(counterProgram(), vtree.NewContainer("body"), nil)

	if err := s.Fire([]int{1, 0}, vtree.Event{Type: "click"}); err != nil {
		t.Fatalf("Fire() returned an unexpected error: %v", err)
	}
	if s.Model() != 1 {
		t.Errorf("Expected a click to increment, got %d", s.Model())
	}

	// The submit button has no handler of its own; submit bubbles to the form.
	if err := s.Fire([]int{1, 1}, vtree.Event{Type: "submit"}); err != nil {
		t.Fatalf("Fire() returned an unexpected error: %v", err)
	}
	if s.Model() != 11 {
		t.Errorf("Expected submit to add ten, got %d", s.Model())
	}

	if err := s.Fire([]int{1, 1}, vtree.Event{Type: "click"}); !errors.Is(err, ErrNoHandler) {
		t.Errorf("Expected ErrNoHandler for a click without handler, got %v", err)
	}
	if err := s.Fire([]int{9}, vtree.Event{Type: "click"}); err == nil {
		t.Error("Expected an error for a path outside the tree")
	}
}

func TestFirePassesLiveTarget(t *testing.T) {
	var target *vtree.Element
	program := Program[int, int]{
		Update: func(msg, n int) int { return n + msg },
		View: func(dispatch func(int), n int) *vtree.Node {
			return vtree.Div(vtree.Button("b").OnEvent("click", func(ev vtree.Event) { target = ev.Target }))
		},
	}
	s := Mount(program, vtree.NewContainer("body"), nil)
	if err := s.Fire([]int{0}, vtree.Event{Type: "click"}); err != nil {
		t.Fatal(err)
	}
	if target == nil || target != s.Root().Children[0] {
		t.Error("Expected the handler to receive the live button")
	}
}
