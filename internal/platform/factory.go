package platform

import (
	"fmt"

	"github.com/aretw0/outline/pkg/adapters/export"
	"github.com/aretw0/outline/pkg/core"
)

// New creates an editor wired with the default export formats.
//
//	editor, err := outline.New(outline.WithHistoryLimit(50))
func New(opts ...Option) (*core.Editor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	serializers := export.DefaultSerializers()
	for format, s := range o.serializers {
		serializers[format] = s
	}

	seed := core.Seed()
	if o.seed != nil {
		seed = *o.seed
	}

	editor, err := core.NewEditor(NewStore(opts...), seed, core.EditorConfig{
		Logger:       o.logger,
		HistoryLimit: o.historyLimit,
		EventBuffer:  o.eventBuffer,
		Serializers:  serializers,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create editor: %w", err)
	}

	if o.logger != nil {
		o.logger.Debug("editor ready", "nodes", seed.Len(), "history_limit", o.historyLimit)
	}
	return editor, nil
}

// NewStore creates a bare store honoring the logger and ID generator options.
func NewStore(opts ...Option) *core.Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return core.NewStore(o.ids, o.logger)
}
