package outline

import (
	_ "embed"
	"log/slog"

	"github.com/aretw0/outline/internal/platform"
	"github.com/aretw0/outline/pkg/adapters/export"
	"github.com/aretw0/outline/pkg/core"
)

// Version exposes the version of the library.
//
//go:embed VERSION
var Version string

// --- Types ---

type (
	Node       = core.Node
	Snapshot   = core.Snapshot
	Command    = core.Command
	Editor     = core.Editor
	Store      = core.Store
	Event      = core.Event
	Serializer = core.Serializer

	Rename     = core.Rename
	AddSibling = core.AddSibling
	Remove     = core.Remove
	MoveUp     = core.MoveUp
	MoveDown   = core.MoveDown
)

// Export formats.
const (
	FormatJSON     = export.FormatJSON
	FormatYAML     = export.FormatYAML
	FormatMarkdown = export.FormatMarkdown
)

// --- Configuration ---

// Option defines a functional option for configuring outline.
type Option = platform.Option

// WithLogger sets the logger for the store and editor.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithIDGenerator sets the generator used for new nodes.
func WithIDGenerator(ids core.IDGenerator) Option {
	return platform.WithIDGenerator(ids)
}

// WithSeed replaces the example tree the editor starts from.
func WithSeed(seed core.Snapshot) Option {
	return platform.WithSeed(seed)
}

// WithHistoryLimit sets how many undo steps are kept. Zero disables history.
func WithHistoryLimit(limit int) Option {
	return platform.WithHistoryLimit(limit)
}

// WithEventBuffer allows specifying the size of each Watch channel buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithSerializer registers a custom export format.
func WithSerializer(format string, s core.Serializer) Option {
	return platform.WithSerializer(format, s)
}

// --- Factory ---

// New creates an editor holding the seed tree.
func New(opts ...Option) (*core.Editor, error) {
	return platform.New(opts...)
}

// NewStore creates a bare store for callers that manage snapshots themselves.
func NewStore(opts ...Option) *core.Store {
	return platform.NewStore(opts...)
}

// --- Operations ---

// Apply applies cmd to s with UUID identifiers.
func Apply(s core.Snapshot, cmd core.Command) core.Snapshot {
	return core.Apply(s, cmd)
}

// Seed returns the example tree.
func Seed() core.Snapshot {
	return core.Seed()
}

// ExportJSON renders s in the canonical JSON export form.
func ExportJSON(s core.Snapshot) ([]byte, error) {
	return export.NewJSONSerializer().Serialize(s)
}
