package core

import (
	"context"
	"fmt"
	"log/slog"
)

// maxIDAttempts bounds how often the configured generator is asked for an
// unused ID before falling back to UUIDs.
const maxIDAttempts = 8

// Store applies commands to snapshots.
//
// Apply never mutates its input and never fails: a command whose target is
// missing, or that is not allowed at the target's position, returns the
// input snapshot unchanged.
type Store struct {
	ids    IDGenerator
	logger *slog.Logger
}

// NewStore creates a Store. A nil generator defaults to UUIDGenerator; a nil
// logger disables logging.
func NewStore(ids IDGenerator, logger *slog.Logger) *Store {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Store{ids: ids, logger: logger}
}

var defaultStore = NewStore(nil, nil)

// Apply applies cmd to s using a Store with UUID identifiers and no logging.
func Apply(s Snapshot, cmd Command) Snapshot {
	return defaultStore.Apply(s, cmd)
}

// Apply returns the snapshot produced by cmd.
//
// Workflow:
//  1. Pick the transform for the command kind.
//  2. Walk the tree once, rebuilding every ancestor of a changed node.
//  3. Return the input untouched when nothing changed.
func (st *Store) Apply(s Snapshot, cmd Command) Snapshot {
	if s.Root == nil || cmd == nil {
		return s
	}

	var e edit
	switch c := cmd.(type) {
	case Rename:
		e = renameEdit(c.Text)
	case AddSibling:
		e = insertAfterEdit(func() string { return st.freshID(s) })
	case Remove:
		e = removeEdit()
	case MoveUp:
		e = moveUpEdit()
	case MoveDown:
		e = moveDownEdit()
	default:
		st.debug("ignoring unknown command", cmd, ErrUnknownCommand)
		return s
	}

	root, changed := transform(s.Root, cmd.Target(), e)
	if !changed {
		if st.debugEnabled() {
			st.debug("command had no effect", cmd, st.Explain(s, cmd))
		}
		return s
	}
	return Snapshot{Version: s.Version, Root: root}
}

// Explain reports why cmd would be a no-op on s: ErrNotFound when the target
// is absent, ErrInvalidOperation when the position forbids it, nil otherwise.
// A rename to the current text explains as nil even though Apply changes nothing.
func (st *Store) Explain(s Snapshot, cmd Command) error {
	if cmd == nil {
		return ErrUnknownCommand
	}
	target := cmd.Target()

	if c, ok := cmd.(Rename); ok {
		if !s.Contains(c.ID) {
			return fmt.Errorf("%s: %w", target, ErrNotFound)
		}
		return nil
	}

	switch cmd.(type) {
	case AddSibling, Remove, MoveUp, MoveDown:
	default:
		return fmt.Errorf("%T: %w", cmd, ErrUnknownCommand)
	}

	if s.Root != nil && s.Root.ID == target {
		return fmt.Errorf("%s on root: %w", cmd.Kind(), ErrInvalidOperation)
	}
	parent, index, ok := s.Parent(target)
	if !ok {
		return fmt.Errorf("%s: %w", target, ErrNotFound)
	}
	switch cmd.(type) {
	case MoveUp:
		if index == 0 {
			return fmt.Errorf("%s is already first: %w", target, ErrInvalidOperation)
		}
	case MoveDown:
		if index == len(parent.Children)-1 {
			return fmt.Errorf("%s is already last: %w", target, ErrInvalidOperation)
		}
	}
	return nil
}

// freshID draws IDs until one is not already used in s.
func (st *Store) freshID(s Snapshot) string {
	for i := 0; i < maxIDAttempts; i++ {
		if id := st.ids.NewID(); id != "" && !s.Contains(id) {
			return id
		}
	}
	st.warn("id generator kept returning used ids, falling back to uuid")
	fallback := UUIDGenerator{}
	for {
		if id := fallback.NewID(); !s.Contains(id) {
			return id
		}
	}
}

func (st *Store) debugEnabled() bool {
	return st.logger != nil && st.logger.Enabled(context.Background(), slog.LevelDebug)
}

func (st *Store) debug(msg string, cmd Command, reason error) {
	if st.logger == nil {
		return
	}
	st.logger.Debug(msg, "command", cmd.Kind(), "target", cmd.Target(), "reason", reason)
}

func (st *Store) warn(msg string) {
	if st.logger != nil {
		st.logger.Warn(msg)
	}
}
