package core

import "errors"

// Common errors.
//
// The Store itself never returns these: Apply degrades to a no-op. They are
// reported by Explain, the editor history and the adapters.
var (
	ErrNotFound         = errors.New("node not found")
	ErrInvalidOperation = errors.New("operation not allowed at this position")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrEmptyID          = errors.New("node ID cannot be empty")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrNothingToRedo    = errors.New("nothing to redo")
	ErrUnknownFormat    = errors.New("unknown export format")
	ErrInvalidSnapshot  = errors.New("invalid snapshot")
)
