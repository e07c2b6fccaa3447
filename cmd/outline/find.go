package main

import (
	"fmt"

	"github.com/aretw0/outline/pkg/core"
	"github.com/spf13/cobra"
)

var findScript string

var findCmd = &cobra.Command{
	Use:   "find [pattern]",
	Short: "List nodes whose text path matches a glob pattern",
	Long: `A node's path is the texts of its ancestors and itself joined by "/",
e.g. "parent/child-2/grandchild". Patterns support *, ?, [...], {a,b} and **.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editor, err := runScript(cmd.Context(), findScript)
		if err != nil {
			return err
		}

		matches, err := core.Match(editor.Snapshot(), args[0])
		if err != nil {
			return err
		}
		for _, m := range matches {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m.Node.ID, m.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().StringVarP(&findScript, "script", "s", "", "Apply this command script before searching")
}
