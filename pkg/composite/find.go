package composite

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// Path returns the slash-joined path from the node's root to the node,
// following parent back-references. A detached node's path is its own name.
func (t *Tree) Path(id NodeID) string {
	if t.check(id) != nil {
		return ""
	}
	parts := []string{t.nodes[id].name}
	for p := t.nodes[id].parent; p != None; p = t.nodes[p].parent {
		parts = append(parts, t.nodes[p].name)
	}
	// reverse into root-first order
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// Walk visits the subtree rooted at id depth-first in insertion order,
// starting with id itself. Returning false from fn stops the walk.
func (t *Tree) Walk(id NodeID, fn func(NodeID) bool) {
	if t.check(id) != nil {
		return
	}
	t.walk(id, fn)
}

func (t *Tree) walk(id NodeID, fn func(NodeID) bool) bool {
	if !fn(id) {
		return false
	}
	for _, c := range t.nodes[id].children {
		if !t.walk(c, fn) {
			return false
		}
	}
	return true
}

// Find returns the ids under root whose path relative to root matches the
// doublestar pattern, in traversal order. The root itself is never matched.
func (t *Tree) Find(root NodeID, pattern string) ([]NodeID, error) {
	if err := t.check(root); err != nil {
		return nil, errors.Errorf("finding %q: %w", pattern, err)
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Errorf("invalid pattern %q", pattern)
	}

	prefix := t.Path(root) + "/"
	var matches []NodeID
	t.Walk(root, func(id NodeID) bool {
		if id == root {
			return true
		}
		rel := strings.TrimPrefix(t.Path(id), prefix)
		if ok, _ := doublestar.Match(pattern, rel); ok {
			matches = append(matches, id)
		}
		return true
	})
	return matches, nil
}
