package core

import (
	"github.com/aretw0/introspection"
)

// EditorState exposes internal state for observability.
type EditorState struct {
	Version      int      `json:"version"`
	RootID       string   `json:"root_id"`
	Nodes        int      `json:"nodes"`
	Depth        int      `json:"depth"`
	UndoDepth    int      `json:"undo_depth"`
	RedoDepth    int      `json:"redo_depth"`
	HistoryLimit int      `json:"history_limit"`
	Watchers     int      `json:"watchers"`
	EventBuffer  int      `json:"event_buffer_size"`
	Formats      []string `json:"formats"`
}

// State implements introspection.Introspectable.
func (e *Editor) State() any {
	formats := e.Formats()

	e.mu.RLock()
	defer e.mu.RUnlock()

	rootID := ""
	if e.current.Root != nil {
		rootID = e.current.Root.ID
	}
	return EditorState{
		Version:      e.current.Version,
		RootID:       rootID,
		Nodes:        e.current.Len(),
		Depth:        e.current.Depth(),
		UndoDepth:    len(e.undo),
		RedoDepth:    len(e.redo),
		HistoryLimit: e.config.HistoryLimit,
		Watchers:     len(e.watchers),
		EventBuffer:  e.config.EventBuffer,
		Formats:      formats,
	}
}

// ComponentType implements introspection.Component.
func (e *Editor) ComponentType() string {
	return "editor"
}

var _ introspection.Introspectable = (*Editor)(nil)
var _ introspection.Component = (*Editor)(nil)
