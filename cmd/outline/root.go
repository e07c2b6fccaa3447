package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/outline"
	"github.com/aretw0/outline/pkg/core"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	idMode  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "outline",
	Short: "An immutable tree store for hierarchical outlines",
	Long: `Outline edits a tree of text nodes through discrete commands
(rename, add-sibling, remove, move-up, move-down) and exports the result.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&idMode, "ids", "uuid", "ID scheme for new nodes (uuid, sequence)")
}

// newEditor builds an editor over the seed tree honoring the global flags.
func newEditor() (*core.Editor, error) {
	var ids core.IDGenerator
	switch idMode {
	case "uuid", "":
		ids = core.UUIDGenerator{}
	case "sequence":
		ids = core.NewSequenceGenerator("n")
	default:
		return nil, fmt.Errorf("unknown id scheme %q", idMode)
	}
	return outline.New(
		outline.WithIDGenerator(ids),
		outline.WithLogger(slog.Default()),
	)
}
