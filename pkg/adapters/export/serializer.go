// Package export renders snapshots into external text forms. It is one-way:
// nothing here parses an export back into a snapshot.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/outline/pkg/core"
	"gopkg.in/yaml.v3"
)

// Format names accepted by DefaultSerializers.
const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

// indent is the per-level indentation shared by every format.
const indent = "  "

// DefaultSerializers returns the standard set of serializers keyed by format name.
func DefaultSerializers() map[string]core.Serializer {
	return map[string]core.Serializer{
		FormatJSON:     NewJSONSerializer(),
		FormatYAML:     NewYAMLSerializer(),
		"yml":          NewYAMLSerializer(),
		FormatMarkdown: NewMarkdownSerializer(),
		"md":           NewMarkdownSerializer(),
	}
}

// --- JSON Serializer ---

// JSONSerializer produces the canonical export: keys in the order version,
// root and id, text, children, two-space indentation, no HTML escaping and
// no trailing newline. Empty child lists are omitted.
type JSONSerializer struct{}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

func (s *JSONSerializer) Serialize(snap core.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", indent)
	if err := encoder.Encode(snap); err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// --- YAML Serializer ---

// YAMLSerializer writes the same structure as JSON in YAML.
type YAMLSerializer struct{}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Serialize(snap core.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(len(indent))
	if err := encoder.Encode(snap); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- Markdown Serializer ---

// MarkdownSerializer writes the outline as a nested bullet list of texts.
// IDs and the version tag are not part of this form.
type MarkdownSerializer struct{}

// NewMarkdownSerializer creates a new Markdown serializer.
func NewMarkdownSerializer() *MarkdownSerializer {
	return &MarkdownSerializer{}
}

func (s *MarkdownSerializer) Serialize(snap core.Snapshot) ([]byte, error) {
	if snap.Root == nil {
		return nil, fmt.Errorf("%w: missing root", core.ErrInvalidSnapshot)
	}
	var buf bytes.Buffer
	snap.Walk(func(n, _ *core.Node, depth int) bool {
		buf.WriteString(strings.Repeat(indent, depth))
		buf.WriteString("- ")
		// Keep multi-line text inside its bullet.
		buf.WriteString(strings.ReplaceAll(n.Text, "\n", "\n"+strings.Repeat(indent, depth+1)))
		buf.WriteByte('\n')
		return true
	})
	return buf.Bytes(), nil
}
