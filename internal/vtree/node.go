// Package vtree provides declarative render trees and the machinery
// to keep a live element tree in step with them.
//
// A view builds a fresh tree of Nodes for every model. Diff compares
// two trees and yields Patches; Apply performs those patches on the
// live Elements that Create materialized from the first tree. Event
// handlers live on Nodes only: the live tree carries presentation,
// and a runtime finds the handler for an element by looking up the
// Node at the same path in the tree it rendered last.
package vtree

import "maps"

// Event describes a user interaction delivered to a Handler.
type Event struct {
	// Type is the event name, e.g. "click", "input", "submit".
	Type string
	// Value is the new value of an input element for "input" events.
	Value string
	// Target is the live element the event happened on. Handlers may
	// change its presentation directly; such changes are not part of
	// any render tree and survive only until the element is replaced.
	Target *Element
}

// Handler reacts to an Event.
type Handler func(Event)

// Node is one element of a declarative render tree.
type Node struct {
	Tag      string
	Key      string
	Attrs    map[string]string
	Text     string
	On       map[string]Handler
	Children []*Node
}

// N creates a new node with the given tag.
func N(tag string) *Node {
	return &Node{Tag: tag, Attrs: make(map[string]string)}
}

// Attr sets an attribute and returns the node for chaining.
func (n *Node) Attr(k, v string) *Node {
	n.Attrs[k] = v
	return n
}

// Flag sets a boolean attribute to "true" when on, and leaves it
// unset otherwise.
func (n *Node) Flag(k string, on bool) *Node {
	if on {
		n.Attrs[k] = "true"
	}
	return n
}

// Class sets the "class" attribute.
func (n *Node) Class(c string) *Node {
	return n.Attr("class", c)
}

// WithKey sets the reconciliation key. Nodes at the same position
// with different keys are replaced instead of patched.
func (n *Node) WithKey(k string) *Node {
	n.Key = k
	return n
}

// SetText sets the node's text content.
func (n *Node) SetText(s string) *Node {
	n.Text = s
	return n
}

// OnEvent attaches a handler for the named event.
func (n *Node) OnEvent(event string, h Handler) *Node {
	if n.On == nil {
		n.On = make(map[string]Handler)
	}
	n.On[event] = h
	return n
}

// OnClick is OnEvent("click", ...) for handlers that ignore the event.
func (n *Node) OnClick(f func()) *Node {
	return n.OnEvent("click", func(Event) { f() })
}

// Child appends child nodes and returns the parent for chaining.
// Nil children are skipped, so optional parts can be passed inline.
func (n *Node) Child(children ...*Node) *Node {
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// At returns the descendant at path, or nil when the path leaves the tree.
func (n *Node) At(path []int) *Node {
	current := n
	for _, index := range path {
		if current == nil || index < 0 || index >= len(current.Children) {
			return nil
		}
		current = current.Children[index]
	}
	return current
}

// Clone returns a deep copy of the node's structure. Handlers are
// shared.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	clone := &Node{
		Tag:   n.Tag,
		Key:   n.Key,
		Attrs: maps.Clone(n.Attrs),
		Text:  n.Text,
		On:    maps.Clone(n.On),
	}
	for _, child := range n.Children {
		clone.Children = append(clone.Children, child.Clone())
	}
	return clone
}

// --- Convenience constructors ---

// Div creates a container node.
func Div(children ...*Node) *Node {
	return N("div").Child(children...)
}

// Button creates a button node.
func Button(text string) *Node {
	return N("button").SetText(text)
}

// Input creates a single-line text input holding value.
func Input(value string) *Node {
	return N("input").Attr("type", "text").Attr("value", value)
}

// Form creates a form node. Submit events bubble to it.
func Form(children ...*Node) *Node {
	return N("form").Child(children...)
}

// Label creates a label node.
func Label(text string) *Node {
	return N("label").SetText(text)
}

// P creates a paragraph node.
func P(text string) *Node {
	return N("p").SetText(text)
}
