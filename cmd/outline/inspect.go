package main

import (
	"encoding/json"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

var inspectScript string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the editor state as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		editor, err := runScript(cmd.Context(), inspectScript)
		if err != nil {
			return err
		}

		var component introspection.Component = editor
		var intro introspection.Introspectable = editor

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]any{
			"component": component.ComponentType(),
			"state":     intro.State(),
		})
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&inspectScript, "script", "s", "", "Apply this command script before inspecting")
}
