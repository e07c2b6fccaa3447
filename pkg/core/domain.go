// Package core holds the outline domain: nodes, snapshots, the commands that
// edit them and the store that applies those commands.
package core

import "fmt"

// FormatVersion is the version tag stamped on every Snapshot.
const FormatVersion = 1

// Node is one entry of the outline.
//
// Nodes reachable from a Snapshot are never mutated in place: every edit
// builds new nodes along the path to the root and shares the rest.
type Node struct {
	ID       string  `json:"id" yaml:"id"`
	Text     string  `json:"text" yaml:"text"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewNode builds a node with the given children.
func NewNode(id, text string, children ...*Node) *Node {
	return &Node{ID: id, Text: text, Children: children}
}

// IsLeaf reports whether the node has no children. Nil and empty child
// lists are equivalent.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// clone returns a shallow copy with its own child slice.
func (n *Node) clone() *Node {
	c := &Node{ID: n.ID, Text: n.Text}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		copy(c.Children, n.Children)
	}
	return c
}

// Snapshot is the whole document at one point in time.
type Snapshot struct {
	Version int   `json:"version" yaml:"version"`
	Root    *Node `json:"root" yaml:"root"`
}

// NewSnapshot wraps root in a Snapshot carrying the current FormatVersion.
func NewSnapshot(root *Node) Snapshot {
	return Snapshot{Version: FormatVersion, Root: root}
}

// Seed returns the example tree a fresh editor starts from.
func Seed() Snapshot {
	return NewSnapshot(
		NewNode("root", "parent",
			NewNode("child-1", "child-1"),
			NewNode("child-2", "child-2",
				NewNode("child-2-1", "grandchild"),
			),
			NewNode("child-3", "child-3"),
		),
	)
}

// EventType represents the kind of change applied to a snapshot.
type EventType string

const (
	EventRename EventType = "RENAME"
	EventAdd    EventType = "ADD"
	EventRemove EventType = "REMOVE"
	EventMove   EventType = "MOVE"
	EventUndo   EventType = "UNDO"
	EventRedo   EventType = "REDO"
)

// Event describes one effective change made by an Editor.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String renders the event for logs and lifecycle consumers.
func (e Event) String() string {
	return fmt.Sprintf("%s %s @%d", e.Type, e.ID, e.Timestamp)
}
