package main

import (
	"bytes"
	"fmt"

	"github.com/aretw0/outline/pkg/adapters/fs"
	"github.com/aretw0/outline/pkg/core"
	"github.com/spf13/cobra"
)

// deliver exports the editor's snapshot to --out, or to stdout when unset.
func deliver(cmd *cobra.Command, editor *core.Editor, format, out string) error {
	data, err := editor.Export(format)
	if err != nil {
		return err
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}

	if out == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := fs.WriteFileAtomic(out, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %s to %s\n", format, out)
	return nil
}
