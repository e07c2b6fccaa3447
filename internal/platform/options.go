package platform

import (
	"log/slog"

	"github.com/aretw0/outline/pkg/core"
)

// options holds the internal configuration for an outline editor.
type options struct {
	logger       *slog.Logger
	ids          core.IDGenerator
	seed         *core.Snapshot
	historyLimit int
	eventBuffer  int
	serializers  map[string]core.Serializer
}

// Option defines a functional option for configuring outline.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:       nil,
		ids:          nil, // UUIDv7
		seed:         nil, // core.Seed()
		historyLimit: core.DefaultHistoryLimit,
		eventBuffer:  core.DefaultEventBuffer,
		serializers:  make(map[string]core.Serializer),
	}
}

// WithLogger sets the logger for the store and editor.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithIDGenerator sets the generator used for nodes created by AddSibling.
func WithIDGenerator(ids core.IDGenerator) Option {
	return func(o *options) {
		o.ids = ids
	}
}

// WithSeed replaces the example tree the editor starts from.
// The snapshot is validated when the editor is created.
func WithSeed(seed core.Snapshot) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithHistoryLimit sets how many undo steps are kept. Zero disables history.
func WithHistoryLimit(limit int) Option {
	return func(o *options) {
		o.historyLimit = limit
	}
}

// WithEventBuffer sets the buffer size of each Watch channel.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithSerializer registers an export format, replacing a default of the same name.
func WithSerializer(format string, s core.Serializer) Option {
	return func(o *options) {
		o.serializers[format] = s
	}
}
