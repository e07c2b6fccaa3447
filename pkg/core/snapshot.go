package core

import "fmt"

// WalkFunc is called for every node in pre-order. parent is nil for the root.
// Returning false stops the walk.
type WalkFunc func(n, parent *Node, depth int) bool

// Walk visits every node of the snapshot in pre-order, parents before children.
// Nil children are skipped.
func (s Snapshot) Walk(fn WalkFunc) {
	if s.Root == nil {
		return
	}
	walk(s.Root, nil, 0, fn)
}

func walk(n, parent *Node, depth int, fn WalkFunc) bool {
	if !fn(n, parent, depth) {
		return false
	}
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		if !walk(c, n, depth+1, fn) {
			return false
		}
	}
	return true
}

// Find returns the node with the given ID.
func (s Snapshot) Find(id string) (*Node, bool) {
	var found *Node
	s.Walk(func(n, _ *Node, _ int) bool {
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}

// Parent returns the parent of the node with the given ID and the node's
// index among its siblings. The root has no parent.
func (s Snapshot) Parent(id string) (*Node, int, bool) {
	var (
		parent *Node
		index  = -1
	)
	s.Walk(func(n, _ *Node, _ int) bool {
		for i, c := range n.Children {
			if c != nil && c.ID == id {
				parent, index = n, i
				return false
			}
		}
		return true
	})
	return parent, index, parent != nil
}

// Len returns the number of nodes in the snapshot.
func (s Snapshot) Len() int {
	count := 0
	s.Walk(func(_, _ *Node, _ int) bool {
		count++
		return true
	})
	return count
}

// Depth returns the number of levels in the tree (1 for a lone root).
func (s Snapshot) Depth() int {
	max := 0
	s.Walk(func(_, _ *Node, depth int) bool {
		if depth+1 > max {
			max = depth + 1
		}
		return true
	})
	return max
}

// IDs returns every node ID in pre-order.
func (s Snapshot) IDs() []string {
	var ids []string
	s.Walk(func(n, _ *Node, _ int) bool {
		ids = append(ids, n.ID)
		return true
	})
	return ids
}

// Contains reports whether a node with the given ID is reachable from the root.
func (s Snapshot) Contains(id string) bool {
	_, ok := s.Find(id)
	return ok
}

// Equal reports observational equality: same version, shape, ids, text
// and sibling order.
func (s Snapshot) Equal(other Snapshot) bool {
	return s.Version == other.Version && nodesEqual(s.Root, other.Root)
}

func nodesEqual(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if a.ID != b.ID || a.Text != b.Text || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !nodesEqual(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// Validate checks the structural invariants: a root exists, IDs are
// non-empty and unique, and no node is reachable twice.
func (s Snapshot) Validate() error {
	if s.Root == nil {
		return fmt.Errorf("%w: missing root", ErrInvalidSnapshot)
	}
	ids := make(map[string]struct{})
	seen := make(map[*Node]struct{})
	var err error
	s.Walk(func(n, _ *Node, _ int) bool {
		for _, c := range n.Children {
			if c == nil {
				err = fmt.Errorf("%w: nil child under %q", ErrInvalidSnapshot, n.ID)
				return false
			}
		}
		if _, dup := seen[n]; dup {
			err = fmt.Errorf("%w: node %q is shared", ErrInvalidSnapshot, n.ID)
			return false
		}
		seen[n] = struct{}{}
		if n.ID == "" {
			err = fmt.Errorf("%w: %w", ErrInvalidSnapshot, ErrEmptyID)
			return false
		}
		if _, dup := ids[n.ID]; dup {
			err = fmt.Errorf("%w: duplicate id %q", ErrInvalidSnapshot, n.ID)
			return false
		}
		ids[n.ID] = struct{}{}
		return true
	})
	return err
}
