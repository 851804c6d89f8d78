// Package composite implements the composite pattern as an arena-backed file
// tree: leaves hold content, containers hold ordered children, and a single
// Evaluate operation recurses uniformly over both.
package composite

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// NodeID addresses a node inside a Tree. IDs are stable for the lifetime of
// the tree: removing a child detaches it but never invalidates its id.
type NodeID int

// None is the id returned for a missing parent.
const None NodeID = -1

// Evaluation markers. A leaf always evaluates to LeafMarker; a container
// wraps its children's results in branchOpen..branchClose joined by joinSep.
const (
	LeafMarker  = "Leaf"
	branchOpen  = "Branch("
	branchClose = ")"
	joinSep     = "+"
)

type nodeKind uint8

const (
	kindLeaf nodeKind = iota
	kindContainer
)

// node is the tagged variant stored in the arena. Exactly one of the two
// shapes is live: a leaf carries content, a container carries children.
type node struct {
	kind     nodeKind
	name     string
	content  []byte
	parent   NodeID
	children []NodeID
}

// Tree is an arena of composite nodes. Child lists hold indices into the
// arena rather than pointers, and the parent back-reference is an index used
// for lookup only. Not safe for concurrent use; callers serialize access.
type Tree struct {
	nodes []node
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// NewLeaf creates a leaf holding opaque content. Leaves are immutable once
// created and never have children.
func (t *Tree) NewLeaf(name string, content []byte) NodeID {
	t.nodes = append(t.nodes, node{
		kind:    kindLeaf,
		name:    name,
		content: content,
		parent:  None,
	})
	return NodeID(len(t.nodes) - 1)
}

// NewContainer creates an empty container.
func (t *Tree) NewContainer(name string) NodeID {
	t.nodes = append(t.nodes, node{
		kind:   kindContainer,
		name:   name,
		parent: None,
	})
	return NodeID(len(t.nodes) - 1)
}

// AddChild appends child to parent's ordered child list and records the
// back-reference. Cycles are not checked; adding a node as its own ancestor
// makes Evaluate non-terminating and is the caller's responsibility.
func (t *Tree) AddChild(parent, child NodeID) error {
	if err := t.check(parent); err != nil {
		return errors.Errorf("adding child: %w", err)
	}
	if err := t.check(child); err != nil {
		return errors.Errorf("adding child: %w", err)
	}
	p := &t.nodes[parent]
	if p.kind != kindContainer {
		return errors.Errorf("node %q is not a container", p.name)
	}
	p.children = append(p.children, child)
	t.nodes[child].parent = parent
	return nil
}

// RemoveChild removes the first occurrence of child from parent's child list
// and clears the removed child's parent back-reference. Removing a child that
// is not present is a silent no-op. The removed node stays in the arena and
// can be re-attached later.
func (t *Tree) RemoveChild(parent, child NodeID) {
	if t.check(parent) != nil || t.check(child) != nil {
		return
	}
	p := &t.nodes[parent]
	if p.kind != kindContainer {
		return
	}
	for i, c := range p.children {
		if c == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			t.nodes[child].parent = None
			return
		}
	}
}

// Evaluate runs the composite operation on the subtree rooted at id. A leaf
// yields "Leaf"; a container yields "Branch(" + its children's results joined
// by "+" + ")", in insertion order. The traversal is depth-first and
// deterministic; recursion depth equals tree depth.
func (t *Tree) Evaluate(id NodeID) (string, error) {
	if err := t.check(id); err != nil {
		return "", errors.Errorf("evaluating: %w", err)
	}
	return t.evaluate(id), nil
}

func (t *Tree) evaluate(id NodeID) string {
	n := &t.nodes[id]
	switch n.kind {
	case kindLeaf:
		return LeafMarker
	default:
		results := make([]string, 0, len(n.children))
		for _, c := range n.children {
			results = append(results, t.evaluate(c))
		}
		return branchOpen + strings.Join(results, joinSep) + branchClose
	}
}

// Name returns the node's name, or "" for an unknown id.
func (t *Tree) Name(id NodeID) string {
	if t.check(id) != nil {
		return ""
	}
	return t.nodes[id].name
}

// Content returns a leaf's content. Containers and unknown ids yield nil.
func (t *Tree) Content(id NodeID) []byte {
	if t.check(id) != nil || t.nodes[id].kind != kindLeaf {
		return nil
	}
	return t.nodes[id].content
}

// Parent returns the node's parent, or None for roots, detached nodes and
// unknown ids.
func (t *Tree) Parent(id NodeID) NodeID {
	if t.check(id) != nil {
		return None
	}
	return t.nodes[id].parent
}

// Children returns a copy of the node's ordered child list.
func (t *Tree) Children(id NodeID) []NodeID {
	if t.check(id) != nil {
		return nil
	}
	n := &t.nodes[id]
	out := make([]NodeID, len(n.children))
	copy(out, n.children)
	return out
}

// IsContainer reports whether id names a container.
func (t *Tree) IsContainer(id NodeID) bool {
	return t.check(id) == nil && t.nodes[id].kind == kindContainer
}

// Len returns the number of nodes in the arena, attached or not.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) check(id NodeID) error {
	if id < 0 || int(id) >= len(t.nodes) {
		return errors.Errorf("node id %d out of range", id)
	}
	return nil
}
