package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/outline/pkg/core"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI in-process with fresh flag values.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edits.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const groceries = `
- op: rename
  id: child-1
  text: Groceries
- op: remove
  id: child-2
- op: add-sibling
  id: child-1
- op: rename
  id: n1
  text: Laundry
- op: remove
  id: root
`

func TestCLI_Version(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "outline version 0.1.0\n", out)
}

func TestCLI_ExportJSON(t *testing.T) {
	out, err := execute(t, "export")
	require.NoError(t, err)

	var snap core.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.True(t, snap.Equal(core.Seed()))
	assert.True(t, strings.HasPrefix(out, "{\n  \"version\": 1,\n  \"root\": {"))
}

func TestCLI_ExportMarkdown(t *testing.T) {
	out, err := execute(t, "export", "--format", "markdown")
	require.NoError(t, err)
	assert.Equal(t, "- parent\n  - child-1\n  - child-2\n    - grandchild\n  - child-3\n", out)
}

func TestCLI_ExportUnknownFormat(t *testing.T) {
	_, err := execute(t, "export", "-f", "xml")
	assert.True(t, errors.Is(err, core.ErrUnknownFormat), "got %v", err)
}

func TestCLI_Apply(t *testing.T) {
	path := writeScript(t, groceries)

	out, err := execute(t, "apply", path, "--ids", "sequence", "-f", "markdown")
	require.NoError(t, err)
	assert.Equal(t, "- parent\n  - Groceries\n  - Laundry\n  - child-3\n", out)
}

func TestCLI_ApplyToFile(t *testing.T) {
	path := writeScript(t, groceries)
	target := filepath.Join(t.TempDir(), "outline.json")

	out, err := execute(t, "apply", path, "--ids", "sequence", "--out", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)

	var snap core.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Equal(t, []string{"root", "child-1", "n1", "child-3"}, snap.IDs())
}

func TestCLI_ApplyBadScript(t *testing.T) {
	path := writeScript(t, "- op: explode\n  id: root\n")
	_, err := execute(t, "apply", path)
	assert.True(t, errors.Is(err, core.ErrUnknownCommand), "got %v", err)
}

func TestCLI_Find(t *testing.T) {
	out, err := execute(t, "find", "**/grandchild")
	require.NoError(t, err)
	assert.Equal(t, "child-2-1\tparent/child-2/grandchild\n", out)

	path := writeScript(t, groceries)
	out, err = execute(t, "find", "parent/*", "--script", path, "--ids", "sequence")
	require.NoError(t, err)
	assert.Equal(t, "child-1\tparent/Groceries\nn1\tparent/Laundry\nchild-3\tparent/child-3\n", out)
}

func TestCLI_Inspect(t *testing.T) {
	out, err := execute(t, "inspect")
	require.NoError(t, err)

	var payload struct {
		Component string           `json:"component"`
		State     core.EditorState `json:"state"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "editor", payload.Component)
	assert.Equal(t, 5, payload.State.Nodes)
	assert.Equal(t, 3, payload.State.Depth)
}

func TestCLI_UnknownIDScheme(t *testing.T) {
	_, err := execute(t, "export", "--ids", "random")
	assert.Error(t, err)
}
