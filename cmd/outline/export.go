package main

import (
	"github.com/aretw0/outline/pkg/adapters/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the seed tree",
	Long:  `Print the seed tree in the given format (json, yaml, markdown), or write it to --out.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		editor, err := newEditor()
		if err != nil {
			return err
		}
		return deliver(cmd, editor, exportFormat, exportOut)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", export.FormatJSON, "Export format (json, yaml, markdown)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write the export to this file instead of stdout")
}
