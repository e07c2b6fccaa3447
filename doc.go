// Package outline is the Composition Root for the outline editor.
//
// It connects the core tree store (Domain Layer) with the export serializers
// and file adapters using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// An outline is a strict tree of text nodes. Every edit is a command applied
// to an immutable snapshot and produces a new snapshot; the previous one is
// left untouched, so keeping history is just keeping references.
//
// Features:
//
//   - **Immutable Snapshots**: edits rebuild only the path from the changed node to the root.
//   - **Lenient Commands**: a command on a missing node, or one the position forbids, is a no-op.
//   - **Undo/Redo**: the Editor keeps a bounded history of snapshots.
//   - **Export**: canonical JSON, plus YAML and Markdown outlines.
//   - **Scripts**: replay YAML/JSON command lists, optionally on every file change.
//
// Usage:
//
//	editor, err := outline.New(outline.WithLogger(logger))
//
//	editor.Dispatch(outline.Rename{ID: "child-1", Text: "Groceries"})
//	editor.Dispatch(outline.AddSibling{ID: "child-1"})
//
//	data, err := editor.Export(outline.FormatJSON)
package outline
