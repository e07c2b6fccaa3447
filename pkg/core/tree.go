package core

// edit is the transform run when the traversal meets the target ID.
// Either hook may be nil.
type edit struct {
	// self rewrites the matching node itself. It must return a new node when
	// it reports a change.
	self func(n *Node) (*Node, bool)

	// siblings rewrites the child list of the matching node's parent. i is the
	// index of the match. It returns a freshly allocated list and the index
	// from which the scan resumes, or false when the edit does not apply.
	siblings func(children []*Node, i int) ([]*Node, int, bool)
}

// transform walks the subtree rooted at n in pre-order (the node, then its
// child list, then each child) and applies e wherever the target ID matches.
// It does not stop at the first match. Every node on a changed path is
// rebuilt; unchanged subtrees are returned as the same pointers.
func transform(n *Node, target string, e edit) (*Node, bool) {
	out := n
	changed := false
	if e.self != nil && n.ID == target {
		if rewritten, ok := e.self(n); ok {
			out, changed = rewritten, true
		}
	}

	kids := out.Children
	owned := changed
	if e.siblings != nil {
		for i := 0; i < len(kids); i++ {
			if kids[i] == nil || kids[i].ID != target {
				continue
			}
			next, resume, ok := e.siblings(kids, i)
			if !ok {
				continue
			}
			kids, i, owned = next, resume, true
		}
	}

	for i, c := range kids {
		if c == nil {
			continue
		}
		rewritten, ok := transform(c, target, e)
		if !ok {
			continue
		}
		if !owned {
			kids = append([]*Node(nil), kids...)
			owned = true
		}
		kids[i] = rewritten
	}

	if !owned {
		return n, false
	}
	if out == n {
		out = &Node{ID: n.ID, Text: n.Text}
	}
	if len(kids) == 0 {
		kids = nil
	}
	out.Children = kids
	return out, true
}

func renameEdit(text string) edit {
	return edit{self: func(n *Node) (*Node, bool) {
		if n.Text == text {
			return n, false
		}
		c := n.clone()
		c.Text = text
		return c, true
	}}
}

func insertAfterEdit(newID func() string) edit {
	return edit{siblings: func(kids []*Node, i int) ([]*Node, int, bool) {
		out := make([]*Node, 0, len(kids)+1)
		out = append(out, kids[:i+1]...)
		out = append(out, &Node{ID: newID()})
		out = append(out, kids[i+1:]...)
		return out, i + 1, true
	}}
}

func removeEdit() edit {
	return edit{siblings: func(kids []*Node, i int) ([]*Node, int, bool) {
		out := make([]*Node, 0, len(kids)-1)
		out = append(out, kids[:i]...)
		out = append(out, kids[i+1:]...)
		return out, i - 1, true
	}}
}

func moveUpEdit() edit {
	return edit{siblings: func(kids []*Node, i int) ([]*Node, int, bool) {
		if i == 0 {
			return kids, i, false
		}
		return swapped(kids, i-1, i), i, true
	}}
}

func moveDownEdit() edit {
	return edit{siblings: func(kids []*Node, i int) ([]*Node, int, bool) {
		if i == len(kids)-1 {
			return kids, i, false
		}
		return swapped(kids, i, i+1), i + 1, true
	}}
}

func swapped(kids []*Node, a, b int) []*Node {
	out := append([]*Node(nil), kids...)
	out[a], out[b] = out[b], out[a]
	return out
}
