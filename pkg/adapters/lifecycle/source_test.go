package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/outline/pkg/adapters/lifecycle"
	"github.com/aretw0/outline/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_BridgesEditorEvents(t *testing.T) {
	editor, err := core.NewEditor(nil, core.Seed(), core.EditorConfig{HistoryLimit: 10})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := editor.Watch(ctx)
	require.NoError(t, err)

	src := lifecycle.NewSource(events)
	require.NoError(t, src.Start(ctx))

	editor.Dispatch(core.Remove{ID: "child-2"})

	select {
	case e := <-src.Events():
		ev, ok := e.(core.Event)
		require.True(t, ok, "unexpected event type %T", e)
		assert.Equal(t, core.EventRemove, ev.Type)
		assert.Equal(t, "child-2", ev.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for bridged event")
	}

	cancel()
	select {
	case _, ok := <-src.Events():
		assert.False(t, ok, "source should close after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("source not closed")
	}
}
