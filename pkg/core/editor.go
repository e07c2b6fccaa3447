package core

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"
)

const (
	// DefaultHistoryLimit is the number of undo steps kept when none is configured.
	DefaultHistoryLimit = 100
	// DefaultEventBuffer is the per-watcher event buffer size.
	DefaultEventBuffer = 100
)

// Serializer renders a snapshot into an external text form.
type Serializer interface {
	Serialize(s Snapshot) ([]byte, error)
}

// EditorConfig holds the settings of an Editor.
type EditorConfig struct {
	Logger *slog.Logger
	// HistoryLimit caps the undo stack. Zero disables undo/redo.
	HistoryLimit int
	// EventBuffer is the buffer size of each Watch channel. Zero means DefaultEventBuffer.
	EventBuffer int
	// Serializers maps export format names to serializers.
	Serializers map[string]Serializer
}

// Editor owns the current snapshot of one document and applies commands to it
// one at a time. The current snapshot is replaced with a single assignment
// after each effective command.
type Editor struct {
	mu      sync.RWMutex
	store   *Store
	current Snapshot
	undo    []Snapshot
	redo    []Snapshot
	config  EditorConfig

	watchers map[int]chan Event
	nextSub  int
}

// NewEditor creates an editor starting at initial.
func NewEditor(store *Store, initial Snapshot, config EditorConfig) (*Editor, error) {
	if store == nil {
		store = NewStore(nil, config.Logger)
	}
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	if config.HistoryLimit < 0 {
		return nil, fmt.Errorf("history limit cannot be negative: %d", config.HistoryLimit)
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = DefaultEventBuffer
	}
	if config.Serializers == nil {
		config.Serializers = make(map[string]Serializer)
	}
	return &Editor{
		store:    store,
		current:  initial,
		config:   config,
		watchers: make(map[int]chan Event),
	}, nil
}

// Snapshot returns the current snapshot.
func (e *Editor) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current
}

// Dispatch applies cmd to the current snapshot and returns the result.
// Commands that change nothing leave the history and watchers untouched.
func (e *Editor) Dispatch(cmd Command) Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.current
	next := e.store.Apply(prev, cmd)
	if next.Root == prev.Root {
		return prev
	}

	e.pushHistory(prev)
	e.redo = nil
	e.current = next

	e.emit(eventFor(cmd, next))
	if e.config.Logger != nil {
		e.config.Logger.Debug("command applied", "command", cmd.Kind(), "target", cmd.Target())
	}
	return next
}

// DispatchAll applies commands in order and returns the final snapshot.
func (e *Editor) DispatchAll(cmds ...Command) Snapshot {
	s := e.Snapshot()
	for _, cmd := range cmds {
		s = e.Dispatch(cmd)
	}
	return s
}

// Undo restores the snapshot before the last effective command.
func (e *Editor) Undo() (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.undo) == 0 {
		return e.current, ErrNothingToUndo
	}
	last := len(e.undo) - 1
	e.redo = append(e.redo, e.current)
	e.current = e.undo[last]
	e.undo = e.undo[:last]

	e.emit(Event{Type: EventUndo, ID: e.current.Root.ID, Timestamp: time.Now().Unix()})
	return e.current, nil
}

// Redo re-applies the last undone command.
func (e *Editor) Redo() (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.redo) == 0 {
		return e.current, ErrNothingToRedo
	}
	last := len(e.redo) - 1
	e.undo = append(e.undo, e.current)
	e.current = e.redo[last]
	e.redo = e.redo[:last]

	e.emit(Event{Type: EventRedo, ID: e.current.Root.ID, Timestamp: time.Now().Unix()})
	return e.current, nil
}

// Explain reports why cmd would be a no-op on the current snapshot.
func (e *Editor) Explain(cmd Command) error {
	return e.store.Explain(e.Snapshot(), cmd)
}

// Export serializes the current snapshot with the named format.
func (e *Editor) Export(format string) ([]byte, error) {
	e.mu.RLock()
	s := e.current
	ser, ok := e.config.Serializers[format]
	e.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	data, err := ser.Serialize(s)
	if err != nil {
		return nil, fmt.Errorf("failed to export %s: %w", format, err)
	}
	return data, nil
}

// Formats lists the registered export formats, sorted.
func (e *Editor) Formats() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	formats := make([]string, 0, len(e.config.Serializers))
	for name := range e.config.Serializers {
		formats = append(formats, name)
	}
	sort.Strings(formats)
	return formats
}

// Watch streams one Event per effective change until ctx is done.
// A watcher that falls behind loses events instead of blocking Dispatch.
func (e *Editor) Watch(ctx context.Context) (<-chan Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	id := e.nextSub
	e.nextSub++
	ch := make(chan Event, e.config.EventBuffer)
	e.watchers[id] = ch
	e.mu.Unlock()

	go func() {
		<-ctx.Done()
		e.mu.Lock()
		delete(e.watchers, id)
		close(ch)
		e.mu.Unlock()
	}()
	return ch, nil
}

// pushHistory must be called with e.mu held.
func (e *Editor) pushHistory(s Snapshot) {
	if e.config.HistoryLimit == 0 {
		return
	}
	e.undo = append(e.undo, s)
	if over := len(e.undo) - e.config.HistoryLimit; over > 0 {
		e.undo = append([]Snapshot(nil), e.undo[over:]...)
	}
}

// emit must be called with e.mu held.
func (e *Editor) emit(ev Event) {
	for _, ch := range e.watchers {
		select {
		case ch <- ev:
		default:
			if e.config.Logger != nil {
				e.config.Logger.Debug("watcher buffer full, dropping event", "event", ev.String())
			}
		}
	}
}

func eventFor(cmd Command, next Snapshot) Event {
	ev := Event{ID: cmd.Target(), Timestamp: time.Now().Unix()}
	switch cmd.(type) {
	case Rename:
		ev.Type = EventRename
	case AddSibling:
		ev.Type = EventAdd
		if parent, i, ok := next.Parent(cmd.Target()); ok && i+1 < len(parent.Children) {
			ev.ID = parent.Children[i+1].ID
		}
	case Remove:
		ev.Type = EventRemove
	default:
		ev.Type = EventMove
	}
	return ev
}
