package core

import "fmt"

// CommandKind names a user intent.
type CommandKind string

const (
	KindRename     CommandKind = "rename"
	KindAddSibling CommandKind = "add-sibling"
	KindRemove     CommandKind = "remove"
	KindMoveUp     CommandKind = "move-up"
	KindMoveDown   CommandKind = "move-down"
)

// Command is a discrete edit applied by a Store.
type Command interface {
	Kind() CommandKind
	// Target is the ID of the node the command acts on.
	Target() string
}

// Rename sets the text of the target node.
type Rename struct {
	ID   string
	Text string
}

// AddSibling inserts an empty leaf right after the target, under the same parent.
type AddSibling struct {
	ID string
}

// Remove deletes the target and its whole subtree.
type Remove struct {
	ID string
}

// MoveUp swaps the target with its preceding sibling.
type MoveUp struct {
	ID string
}

// MoveDown swaps the target with its following sibling.
type MoveDown struct {
	ID string
}

func (c Rename) Kind() CommandKind     { return KindRename }
func (c AddSibling) Kind() CommandKind { return KindAddSibling }
func (c Remove) Kind() CommandKind     { return KindRemove }
func (c MoveUp) Kind() CommandKind     { return KindMoveUp }
func (c MoveDown) Kind() CommandKind   { return KindMoveDown }

func (c Rename) Target() string     { return c.ID }
func (c AddSibling) Target() string { return c.ID }
func (c Remove) Target() string     { return c.ID }
func (c MoveUp) Target() string     { return c.ID }
func (c MoveDown) Target() string   { return c.ID }

func (c Rename) String() string     { return fmt.Sprintf("rename(%s, %q)", c.ID, c.Text) }
func (c AddSibling) String() string { return fmt.Sprintf("add-sibling(%s)", c.ID) }
func (c Remove) String() string     { return fmt.Sprintf("remove(%s)", c.ID) }
func (c MoveUp) String() string     { return fmt.Sprintf("move-up(%s)", c.ID) }
func (c MoveDown) String() string   { return fmt.Sprintf("move-down(%s)", c.ID) }

// NewCommand builds a command from its kind name, as used by scripts and the CLI.
// text is only meaningful for rename.
func NewCommand(kind CommandKind, id, text string) (Command, error) {
	if id == "" {
		return nil, fmt.Errorf("%s: %w", kind, ErrEmptyID)
	}
	switch kind {
	case KindRename:
		return Rename{ID: id, Text: text}, nil
	case KindAddSibling:
		return AddSibling{ID: id}, nil
	case KindRemove:
		return Remove{ID: id}, nil
	case KindMoveUp:
		return MoveUp{ID: id}, nil
	case KindMoveDown:
		return MoveDown{ID: id}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, kind)
	}
}
