// Package script reads command scripts: YAML (or JSON) lists of edits that
// are replayed against an editor in order.
//
//	- op: rename
//	  id: child-1
//	  text: Groceries
//	- op: add-sibling
//	  id: child-1
package script

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/outline/pkg/core"
	"gopkg.in/yaml.v3"
)

// Step is one entry of a script.
type Step struct {
	Op   string `yaml:"op" json:"op"`
	ID   string `yaml:"id" json:"id"`
	Text string `yaml:"text,omitempty" json:"text,omitempty"`
}

// aliases maps the camelCase intent names to command kinds.
var aliases = map[string]core.CommandKind{
	"addsibling": core.KindAddSibling,
	"moveup":     core.KindMoveUp,
	"movedown":   core.KindMoveDown,
}

// Command converts the step into a core.Command.
func (s Step) Command() (core.Command, error) {
	kind := core.CommandKind(strings.ToLower(strings.TrimSpace(s.Op)))
	if k, ok := aliases[string(kind)]; ok {
		kind = k
	}
	return core.NewCommand(kind, s.ID, s.Text)
}

// Parse reads a script from r. An empty script yields no commands.
func Parse(r io.Reader) ([]core.Command, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}

	cmds := make([]core.Command, 0, len(steps))
	for i, step := range steps {
		cmd, err := step.Command()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// Load reads and parses the script at path.
func Load(path string) ([]core.Command, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cmds, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	return cmds, nil
}

// Dispatcher is the part of core.Editor a script needs.
type Dispatcher interface {
	Snapshot() core.Snapshot
	Dispatch(cmd core.Command) core.Snapshot
	Explain(cmd core.Command) error
}

// Result summarizes a script run.
type Result struct {
	Snapshot core.Snapshot
	Applied  int
	Skipped  int
}

// Run dispatches cmds in order. Commands that would be no-ops are still
// dispatched and counted as skipped; the reason is logged at debug level.
func Run(d Dispatcher, cmds []core.Command, logger *slog.Logger) Result {
	res := Result{Snapshot: d.Snapshot()}
	for _, cmd := range cmds {
		if reason := d.Explain(cmd); reason != nil {
			res.Skipped++
			if logger != nil {
				logger.Debug("skipping command", "command", cmd.Kind(), "target", cmd.Target(), "reason", reason)
			}
		} else {
			res.Applied++
		}
		res.Snapshot = d.Dispatch(cmd)
	}
	return res
}
