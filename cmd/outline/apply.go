package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/aretw0/outline/pkg/adapters/export"
	"github.com/aretw0/outline/pkg/adapters/fs"
	"github.com/aretw0/outline/pkg/adapters/lifecycle"
	"github.com/aretw0/outline/pkg/adapters/script"
	"github.com/aretw0/outline/pkg/core"
	"github.com/spf13/cobra"
)

var (
	applyFormat string
	applyOut    string
	applyWatch  bool
)

var applyCmd = &cobra.Command{
	Use:   "apply [script]",
	Short: "Apply a command script to the seed tree and export the result",
	Long: `Replay a YAML or JSON list of commands against the seed tree:

  - op: rename
    id: child-1
    text: Groceries
  - op: add-sibling
    id: child-1

Commands that target missing nodes, or that the position forbids, are skipped.
With --watch the script is re-applied every time the file changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		run := func(ctx context.Context) error {
			editor, err := runScript(ctx, path)
			if err != nil {
				return err
			}
			return deliver(cmd, editor, applyFormat, applyOut)
		}

		if !applyWatch {
			return run(cmd.Context())
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		if err := run(ctx); err != nil {
			slog.Error("apply failed", "path", path, "error", err)
		}

		watcher, err := fs.NewWatcher(path, run, fs.WatcherConfig{Logger: slog.Default()})
		if err != nil {
			return err
		}
		slog.Info("watching script", "path", path)
		return watcher.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVarP(&applyFormat, "format", "f", export.FormatJSON, "Export format (json, yaml, markdown)")
	applyCmd.Flags().StringVarP(&applyOut, "out", "o", "", "Write the export to this file instead of stdout")
	applyCmd.Flags().BoolVarP(&applyWatch, "watch", "w", false, "Re-apply the script whenever it changes")
}

// runScript loads the script at path and replays it on a fresh editor.
// Effective changes are traced at debug level.
func runScript(ctx context.Context, path string) (*core.Editor, error) {
	editor, err := newEditor()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return editor, nil
	}

	cmds, err := script.Load(path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events, err := editor.Watch(ctx)
	if err != nil {
		return nil, err
	}
	src := lifecycle.NewSource(events)
	if err := src.Start(ctx); err != nil {
		return nil, err
	}
	traced := make(chan struct{})
	go func() {
		defer close(traced)
		for e := range src.Events() {
			slog.Debug("change", "event", e)
		}
	}()

	res := script.Run(editor, cmds, slog.Default())
	cancel()
	<-traced

	slog.Info("script applied", "path", path, "applied", res.Applied, "skipped", res.Skipped)
	return editor, nil
}
