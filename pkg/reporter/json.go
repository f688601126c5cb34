package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/tagtree/pkg/dom"
)

// jsonVersion is the schema version of JSONOutput.
const jsonVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string    `json:"version"`
	Path    string    `json:"path,omitempty"`
	Nodes   int       `json:"nodes"`
	Root    *JSONNode `json:"root"`
}

// JSONNode represents a single tree node.
type JSONNode struct {
	Tag        string            `json:"tag"`
	Kind       string            `json:"kind"`
	Text       string            `json:"text,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Children   []*JSONNode       `json:"children,omitempty"`
}

// JSONReporter formats documents as JSON.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, input Input) error {
	output := BuildJSON(input)

	return buffered(r.opts.Writer, func(bw *bufio.Writer) error {
		encoder := json.NewEncoder(bw)
		if !r.opts.Compact {
			encoder.SetIndent("", "  ")
		}

		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
		return nil
	})
}

// BuildJSON converts a document into its JSON representation.
func BuildJSON(input Input) *JSONOutput {
	output := &JSONOutput{
		Version: jsonVersion,
		Path:    input.Path,
	}

	if input.Tree == nil || input.Tree.Root() == dom.NoNode {
		return output
	}

	output.Root = jsonNode(input.Tree, input.Tree.Root(), &output.Nodes)
	return output
}

func jsonNode(tree *dom.Tree, id dom.NodeID, count *int) *JSONNode {
	*count++

	node := &JSONNode{
		Tag:  tree.TagName(id),
		Kind: tree.Kind(id).String(),
		Text: tree.Text(id),
	}
	if attrs := tree.Attrs(id); len(attrs) > 0 {
		node.Attributes = attrs
	}
	for _, child := range tree.Children(id) {
		node.Children = append(node.Children, jsonNode(tree, child, count))
	}

	return node
}
