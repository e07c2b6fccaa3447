package core

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PathSeparator joins node texts into a path.
const PathSeparator = "/"

// PathMatch is a node matched by a path pattern.
type PathMatch struct {
	Node *Node
	Path string
}

// Path returns the text path of the node with the given ID, from the root
// down to the node itself.
func (s Snapshot) Path(id string) (string, bool) {
	var found string
	ok := false
	s.eachPath(func(n *Node, path string) bool {
		if n.ID == id {
			found, ok = path, true
			return false
		}
		return true
	})
	return found, ok
}

// Match returns the nodes whose text path matches a doublestar pattern,
// in pre-order. "**" spans any number of levels. Texts containing the
// separator are not escaped.
func Match(s Snapshot, pattern string) ([]PathMatch, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	var matches []PathMatch
	s.eachPath(func(n *Node, path string) bool {
		if ok, _ := doublestar.Match(pattern, path); ok {
			matches = append(matches, PathMatch{Node: n, Path: path})
		}
		return true
	})
	return matches, nil
}

func (s Snapshot) eachPath(fn func(n *Node, path string) bool) {
	if s.Root == nil {
		return
	}
	var visit func(n *Node, prefix []string) bool
	visit = func(n *Node, prefix []string) bool {
		segs := append(prefix[:len(prefix):len(prefix)], n.Text)
		if !fn(n, strings.Join(segs, PathSeparator)) {
			return false
		}
		for _, c := range n.Children {
			if c != nil && !visit(c, segs) {
				return false
			}
		}
		return true
	}
	visit(s.Root, nil)
}
