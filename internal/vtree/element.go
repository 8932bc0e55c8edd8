package vtree

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrInvalidPatch is returned by Apply when a patch does not fit the
// live tree it is applied to.
var ErrInvalidPatch = errors.New("invalid patch")

// Element is a node of the live tree: the materialized counterpart of
// a Node, without handlers. A runtime owns it and mutates it only by
// Apply, except for presentational changes made by event handlers.
type Element struct {
	Tag      string
	Key      string
	Text     string
	Children []*Element

	attrs  map[string]string
	parent *Element
}

// NewContainer returns an empty element to mount trees into.
func NewContainer(tag string) *Element {
	return &Element{Tag: tag, attrs: make(map[string]string)}
}

// Create materializes a render tree.
func Create(n *Node) *Element {
	el := &Element{
		Tag:   n.Tag,
		Key:   n.Key,
		Text:  n.Text,
		attrs: maps.Clone(n.Attrs),
	}
	if el.attrs == nil {
		el.attrs = make(map[string]string)
	}
	for _, child := range n.Children {
		el.AppendChild(Create(child))
	}
	return el
}

// Attr returns the attribute value and whether it is set.
func (el *Element) Attr(k string) (string, bool) {
	v, ok := el.attrs[k]
	return v, ok
}

// Attrs returns a copy of the element's attributes.
func (el *Element) Attrs() map[string]string {
	return maps.Clone(el.attrs)
}

// SetAttr sets an attribute.
func (el *Element) SetAttr(k, v string) {
	el.attrs[k] = v
}

// RemoveAttr removes an attribute.
func (el *Element) RemoveAttr(k string) {
	delete(el.attrs, k)
}

// Is reports whether the boolean attribute k is set to "true".
func (el *Element) Is(k string) bool {
	return el.attrs[k] == "true"
}

// Hidden reports whether the element carries the hidden attribute.
func (el *Element) Hidden() bool {
	return el.Is("hidden")
}

// Show removes the hidden attribute.
func (el *Element) Show() {
	el.RemoveAttr("hidden")
}

// Parent returns the enclosing element, or nil for a root.
func (el *Element) Parent() *Element {
	return el.parent
}

// AppendChild adds child as the last child of el.
func (el *Element) AppendChild(child *Element) {
	child.parent = el
	el.Children = append(el.Children, child)
}

// NextSibling returns the element after el in its parent, or nil.
func (el *Element) NextSibling() *Element {
	if el.parent == nil {
		return nil
	}
	siblings := el.parent.Children
	index := slices.Index(siblings, el)
	if index < 0 || index+1 >= len(siblings) {
		return nil
	}
	return siblings[index+1]
}

// Path returns the child indices leading from the root to el.
func (el *Element) Path() []int {
	var path []int
	for current := el; current.parent != nil; current = current.parent {
		path = append(path, slices.Index(current.parent.Children, current))
	}
	slices.Reverse(path)
	return path
}

// PathFrom returns the child indices leading from ancestor to el. It
// reports false when el is not under ancestor.
func (el *Element) PathFrom(ancestor *Element) ([]int, bool) {
	path := []int{}
	for current := el; current != ancestor; current = current.parent {
		if current == nil || current.parent == nil {
			return nil, false
		}
		path = append(path, slices.Index(current.parent.Children, current))
	}
	slices.Reverse(path)
	return path, true
}

// At returns the descendant at path.
func (el *Element) At(path []int) (*Element, error) {
	current := el
	for depth, index := range path {
		if index < 0 || index >= len(current.Children) {
			return nil, fmt.Errorf("%w: no child %d at depth %d", ErrInvalidPatch, index, depth)
		}
		current = current.Children[index]
	}
	return current, nil
}

// replaceWith puts next where el is, returning next.
func (el *Element) replaceWith(next *Element) *Element {
	if parent := el.parent; parent != nil {
		index := slices.Index(parent.Children, el)
		parent.Children[index] = next
		next.parent = parent
		el.parent = nil
	}
	return next
}

// Apply performs patches on the tree rooted at root and returns the
// root afterwards, which differs from root when the root itself was
// replaced. A root mounted in a container stays mounted.
func Apply(root *Element, patches []Patch) (*Element, error) {
	for _, p := range patches {
		target, err := root.At(p.Path)
		if err != nil {
			return root, fmt.Errorf("failed to apply %s: %w", p, err)
		}

		switch p.Op {
		case OpReplace:
			if p.Node == nil {
				return root, fmt.Errorf("failed to apply %s: %w: replace without node", p, ErrInvalidPatch)
			}
			next := target.replaceWith(Create(p.Node))
			if len(p.Path) == 0 {
				root = next
			}

		case OpAttrs:
			for k, v := range p.Set {
				target.SetAttr(k, v)
			}
			for _, k := range p.Remove {
				target.RemoveAttr(k)
			}

		case OpText:
			target.Text = p.Text

		case OpInsert:
			if p.Node == nil || p.Index != len(target.Children) {
				return root, fmt.Errorf("failed to apply %s: %w: insert at %d into %d children", p, ErrInvalidPatch, p.Index, len(target.Children))
			}
			target.AppendChild(Create(p.Node))

		case OpRemove:
			if p.Index < 0 || p.Index >= len(target.Children) {
				return root, fmt.Errorf("failed to apply %s: %w: remove %d of %d children", p, ErrInvalidPatch, p.Index, len(target.Children))
			}
			target.Children[p.Index].parent = nil
			target.Children = slices.Delete(target.Children, p.Index, p.Index+1)

		default:
			return root, fmt.Errorf("failed to apply %s: %w", p, ErrInvalidPatch)
		}
	}
	return root, nil
}

// Snapshot converts a live tree back into a Node tree without
// handlers, for comparison and inspection.
func Snapshot(el *Element) *Node {
	n := &Node{Tag: el.Tag, Key: el.Key, Text: el.Text, Attrs: maps.Clone(el.attrs)}
	for _, child := range el.Children {
		n.Children = append(n.Children, Snapshot(child))
	}
	return n
}

// Focusable returns the visible buttons and inputs under root in
// document order. Disabled elements and anything inside a hidden
// element are left out.
func Focusable(root *Element) []*Element {
	var result []*Element
	var walk func(el *Element)
	walk = func(el *Element) {
		if el.Hidden() {
			return
		}
		if (el.Tag == "button" || el.Tag == "input") && !el.Is("disabled") {
			result = append(result, el)
		}
		for _, child := range el.Children {
			walk(child)
		}
	}
	walk(root)
	return result
}

// Closest returns the nearest element, starting at el itself and
// walking up, whose tag is tag.
func (el *Element) Closest(tag string) *Element {
	for current := el; current != nil; current = current.parent {
		if current.Tag == tag {
			return current
		}
	}
	return nil
}
