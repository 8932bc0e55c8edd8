package vtree

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Op identifies the kind of change a Patch makes.
type Op int

const (
	// OpReplace swaps the element at Path for one created from Node.
	OpReplace Op = iota
	// OpAttrs sets the attributes in Set and removes those in Remove.
	OpAttrs
	// OpText sets the element's text to Text.
	OpText
	// OpInsert appends an element created from Node to the children
	// of the element at Path. Index is the position it lands at.
	OpInsert
	// OpRemove drops child Index of the element at Path.
	OpRemove
)

func (op Op) String() string {
	switch op {
	case OpReplace:
		return "replace"
	case OpAttrs:
		return "attrs"
	case OpText:
		return "text"
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Patch is a single edit to a live element tree.
type Patch struct {
	Op     Op
	Path   []int
	Node   *Node
	Set    map[string]string
	Remove []string
	Text   string
	Index  int
}

func (p Patch) String() string {
	parts := make([]string, len(p.Path))
	for i, index := range p.Path {
		parts[i] = fmt.Sprint(index)
	}
	return fmt.Sprintf("%s@/%s", p.Op, strings.Join(parts, "/"))
}

// Diff returns the patches that turn a live tree created from old into
// one matching new. Children are compared by position; a change of tag
// or key replaces the whole subtree. Patches are ordered so they can
// be applied one after another: a parent's own changes come before
// its children's, and trailing removals run from the last child back.
func Diff(old, new *Node) []Patch {
	var patches []Patch
	diffNode(old, new, nil, &patches)
	return patches
}

func diffNode(old, new *Node, path []int, patches *[]Patch) {
	if old == nil || new == nil || old.Tag != new.Tag || old.Key != new.Key {
		*patches = append(*patches, Patch{Op: OpReplace, Path: path, Node: new})
		return
	}

	if set, remove := diffAttrs(old.Attrs, new.Attrs); len(set) > 0 || len(remove) > 0 {
		*patches = append(*patches, Patch{Op: OpAttrs, Path: path, Set: set, Remove: remove})
	}
	if old.Text != new.Text {
		*patches = append(*patches, Patch{Op: OpText, Path: path, Text: new.Text})
	}

	common := min(len(old.Children), len(new.Children))
	for i := 0; i < common; i++ {
		diffNode(old.Children[i], new.Children[i], childPath(path, i), patches)
	}
	for i := common; i < len(new.Children); i++ {
		*patches = append(*patches, Patch{Op: OpInsert, Path: path, Node: new.Children[i], Index: i})
	}
	for i := len(old.Children) - 1; i >= common; i-- {
		*patches = append(*patches, Patch{Op: OpRemove, Path: path, Index: i})
	}
}

func diffAttrs(old, new map[string]string) (map[string]string, []string) {
	var set map[string]string
	for k, v := range new {
		if current, ok := old[k]; !ok || current != v {
			if set == nil {
				set = make(map[string]string)
			}
			set[k] = v
		}
	}
	var remove []string
	for k := range old {
		if _, ok := new[k]; !ok {
			remove = append(remove, k)
		}
	}
	slices.Sort(remove)
	return set, remove
}

// childPath returns path extended by index without aliasing path's
// backing array.
func childPath(path []int, index int) []int {
	child := make([]int, len(path)+1)
	copy(child, path)
	child[len(path)] = index
	return child
}

// Equal reports whether two trees render identically: same tags,
// keys, attributes, text and children. Handlers are not compared.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag != b.Tag || a.Key != b.Key || a.Text != b.Text || !maps.Equal(a.Attrs, b.Attrs) {
		return false
	}
	return slices.EqualFunc(a.Children, b.Children, Equal)
}
