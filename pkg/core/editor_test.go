package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/outline/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upperSerializer struct{}

func (upperSerializer) Serialize(s core.Snapshot) ([]byte, error) {
	return []byte(s.Root.Text), nil
}

func newTestEditor(t *testing.T, limit int) *core.Editor {
	t.Helper()
	store := core.NewStore(core.NewSequenceGenerator("n"), nil)
	editor, err := core.NewEditor(store, core.Seed(), core.EditorConfig{
		HistoryLimit: limit,
		EventBuffer:  4,
		Serializers:  map[string]core.Serializer{"text": upperSerializer{}},
	})
	require.NoError(t, err)
	return editor
}

func TestEditor_DispatchReplacesSnapshot(t *testing.T) {
	editor := newTestEditor(t, 10)
	before := editor.Snapshot()

	after := editor.Dispatch(core.Rename{ID: "root", Text: "outline"})
	assert.Equal(t, "outline", after.Root.Text)
	assert.Equal(t, after, editor.Snapshot())
	assert.Equal(t, "parent", before.Root.Text, "previous snapshot must stay intact")

	final := editor.DispatchAll(
		core.AddSibling{ID: "child-1"},
		core.MoveDown{ID: "child-1"},
	)
	assert.Equal(t, []string{"n1", "child-1", "child-2", "child-3"}, childIDs(final.Root))
}

func TestEditor_UndoRedo(t *testing.T) {
	editor := newTestEditor(t, 10)
	seed := editor.Snapshot()

	_, err := editor.Undo()
	assert.ErrorIs(t, err, core.ErrNothingToUndo)

	removed := editor.Dispatch(core.Remove{ID: "child-2"})
	require.False(t, removed.Contains("child-2"))

	undone, err := editor.Undo()
	require.NoError(t, err)
	assert.True(t, undone.Equal(seed))

	redone, err := editor.Redo()
	require.NoError(t, err)
	assert.True(t, redone.Equal(removed))

	_, err = editor.Redo()
	assert.ErrorIs(t, err, core.ErrNothingToRedo)
}

func TestEditor_NoopDoesNotTouchHistory(t *testing.T) {
	editor := newTestEditor(t, 10)

	editor.Dispatch(core.Remove{ID: "root"})
	editor.Dispatch(core.MoveUp{ID: "child-1"})

	state := editor.State().(core.EditorState)
	assert.Equal(t, 0, state.UndoDepth)
}

func TestEditor_NewCommandClearsRedo(t *testing.T) {
	editor := newTestEditor(t, 10)

	editor.Dispatch(core.Remove{ID: "child-1"})
	_, err := editor.Undo()
	require.NoError(t, err)

	editor.Dispatch(core.Rename{ID: "child-3", Text: "x"})
	_, err = editor.Redo()
	assert.ErrorIs(t, err, core.ErrNothingToRedo)
}

func TestEditor_HistoryLimit(t *testing.T) {
	editor := newTestEditor(t, 2)
	for _, text := range []string{"a", "b", "c", "d"} {
		editor.Dispatch(core.Rename{ID: "root", Text: text})
	}

	state := editor.State().(core.EditorState)
	assert.Equal(t, 2, state.UndoDepth)

	s, err := editor.Undo()
	require.NoError(t, err)
	assert.Equal(t, "c", s.Root.Text)
	s, err = editor.Undo()
	require.NoError(t, err)
	assert.Equal(t, "b", s.Root.Text)
	_, err = editor.Undo()
	assert.ErrorIs(t, err, core.ErrNothingToUndo)
}

func TestEditor_HistoryDisabled(t *testing.T) {
	editor := newTestEditor(t, 0)
	editor.Dispatch(core.Remove{ID: "child-1"})

	_, err := editor.Undo()
	assert.ErrorIs(t, err, core.ErrNothingToUndo)
}

func TestEditor_Export(t *testing.T) {
	editor := newTestEditor(t, 10)

	data, err := editor.Export("text")
	require.NoError(t, err)
	assert.Equal(t, "parent", string(data))

	_, err = editor.Export("xml")
	assert.ErrorIs(t, err, core.ErrUnknownFormat)

	assert.Equal(t, []string{"text"}, editor.Formats())
}

func TestEditor_Explain(t *testing.T) {
	editor := newTestEditor(t, 10)
	assert.ErrorIs(t, editor.Explain(core.Remove{ID: "root"}), core.ErrInvalidOperation)
	assert.NoError(t, editor.Explain(core.Remove{ID: "child-1"}))
}

func TestEditor_InvalidConfig(t *testing.T) {
	_, err := core.NewEditor(nil, core.Snapshot{}, core.EditorConfig{})
	assert.ErrorIs(t, err, core.ErrInvalidSnapshot)

	_, err = core.NewEditor(nil, core.Seed(), core.EditorConfig{HistoryLimit: -1})
	assert.Error(t, err)
}

func TestEditor_Watch(t *testing.T) {
	editor := newTestEditor(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := editor.Watch(ctx)
	require.NoError(t, err)

	editor.Dispatch(core.AddSibling{ID: "child-3"})
	editor.Dispatch(core.Remove{ID: "ghost"}) // no-op, no event
	editor.Dispatch(core.MoveUp{ID: "child-3"})

	want := []core.Event{
		{Type: core.EventAdd, ID: "n1"},
		{Type: core.EventMove, ID: "child-3"},
	}
	for _, w := range want {
		select {
		case got := <-events:
			assert.Equal(t, w.Type, got.Type)
			assert.Equal(t, w.ID, got.ID)
			assert.NotZero(t, got.Timestamp)
		case <-time.After(time.Second):
			t.Fatalf("timeout waiting for %s", w.Type)
		}
	}

	cancel()
	select {
	case _, ok := <-events:
		assert.False(t, ok, "channel should close after cancel")
	case <-time.After(time.Second):
		t.Fatal("watch channel not closed")
	}
}

func TestEditor_SlowWatcherDoesNotBlock(t *testing.T) {
	editor := newTestEditor(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := editor.Watch(ctx)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 20; i++ {
			editor.Dispatch(core.Rename{ID: "root", Text: string(rune('a' + i))})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch blocked on an unread watcher")
	}
}

func TestEditor_WatchCancelledContext(t *testing.T) {
	editor := newTestEditor(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := editor.Watch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
