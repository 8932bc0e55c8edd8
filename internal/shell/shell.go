// Package shell runs the model-update-view loop.
//
// A Shell is the only place where state changes. It holds the current
// model, the render tree built from it, and the live element tree
// mounted in a container. Dispatch advances all three in one step:
//
//	msg -> Update -> model' -> View -> tree' -> Diff(tree, tree') -> Apply -> commit
package shell

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/conorfennell/flashcards/internal/vtree"
)

// ErrNoHandler is returned by Fire when nothing handles the event.
var ErrNoHandler = errors.New("no handler")

// Program describes an application run by a Shell.
type Program[M, Msg any] struct {
	// Init is the model before any message.
	Init M
	// Update computes the next model. It must be pure.
	Update func(Msg, M) M
	// View renders a model. The tree's handlers call dispatch.
	View func(dispatch func(Msg), model M) *vtree.Node
	// FromTag turns a shorthand tag into a message. Optional.
	FromTag func(string) Msg
	// Check explains why msg would change nothing. Optional; used
	// for diagnostics only.
	Check func(Msg, M) error
}

// Shell owns the state of a running Program.
type Shell[M, Msg any] struct {
	program Program[M, Msg]
	logger  *slog.Logger

	model     M
	tree      *vtree.Node
	root      *vtree.Element
	container *vtree.Element
	revision  uint64

	dispatching bool
	queue       []Msg
}

// Mount renders the program's initial model and appends the resulting
// live tree to container. Mount must be called once per container.
func Mount[M, Msg any](program Program[M, Msg], container *vtree.Element, logger *slog.Logger) *Shell[M, Msg] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Shell[M, Msg]{
		program:   program,
		logger:    logger,
		model:     program.Init,
		container: container,
	}
	s.tree = program.View(s.Dispatch, s.model)
	s.root = vtree.Create(s.tree)
	container.AppendChild(s.root)
	return s
}

// Model returns the current model.
func (s *Shell[M, Msg]) Model() M {
	return s.model
}

// Tree returns the render tree of the current model.
func (s *Shell[M, Msg]) Tree() *vtree.Node {
	return s.tree
}

// Root returns the live tree's root element.
func (s *Shell[M, Msg]) Root() *vtree.Element {
	return s.root
}

// Revision counts completed dispatches.
func (s *Shell[M, Msg]) Revision() uint64 {
	return s.revision
}

// Dispatch applies msg. A dispatch issued while another is running,
// for instance by a handler reacting to a patch, is queued and
// handled after it in arrival order.
func (s *Shell[M, Msg]) Dispatch(msg Msg) {
	s.queue = append(s.queue, msg)
	if s.dispatching {
		return
	}
	s.dispatching = true
	defer func() { s.dispatching = false }()

	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		s.step(next)
	}
}

// DispatchTag dispatches the message a shorthand tag stands for.
func (s *Shell[M, Msg]) DispatchTag(tag string) {
	if s.program.FromTag == nil {
		s.logger.Warn("shorthand message not supported", "tag", tag)
		return
	}
	s.Dispatch(s.program.FromTag(tag))
}

func (s *Shell[M, Msg]) step(msg Msg) {
	if s.program.Check != nil {
		if err := s.program.Check(msg, s.model); err != nil {
			s.logger.Warn("message ignored", "message", fmt.Sprintf("%T", msg), "reason", err)
		}
	}

	model := s.program.Update(msg, s.model)
	tree := s.program.View(s.Dispatch, model)
	patches := vtree.Diff(s.tree, tree)

	root, err := vtree.Apply(s.root, patches)
	if err != nil {
		// The live tree no longer matches s.tree. Start over from
		// the new tree rather than patch something unknown.
		s.logger.Error("patch failed, remounting", "error", err)
		root = s.remount(vtree.Create(tree))
	}

	s.model = model
	s.tree = tree
	s.root = root
	s.revision++

	s.logger.Debug("dispatched",
		"message", fmt.Sprintf("%T", msg),
		"patches", len(patches),
		"revision", s.revision,
	)
}

func (s *Shell[M, Msg]) remount(tree *vtree.Element) *vtree.Element {
	s.container.Children = slices.DeleteFunc(s.container.Children, func(child *vtree.Element) bool {
		return child == s.root
	})
	s.container.AppendChild(tree)
	return tree
}

// Fire delivers an event to the handler of the render tree node at
// path, passing the live element at the same path as the target.
// Submit events bubble up to the nearest node handling them.
func (s *Shell[M, Msg]) Fire(path []int, event vtree.Event) error {
	for depth := len(path); depth >= 0; depth-- {
		node := s.tree.At(path[:depth])
		if node == nil {
			return fmt.Errorf("failed to fire %s: %w: path %v", event.Type, vtree.ErrInvalidPatch, path)
		}
		if handler, ok := node.On[event.Type]; ok {
			target, err := s.root.At(path[:depth])
			if err != nil {
				return fmt.Errorf("failed to fire %s: %w", event.Type, err)
			}
			event.Target = target
			handler(event)
			return nil
		}
		if event.Type != "submit" {
			break
		}
	}
	return fmt.Errorf("failed to fire %s at %v: %w", event.Type, path, ErrNoHandler)
}
