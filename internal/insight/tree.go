package insight

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Tree maps entry names to nodes. Directory names carry a trailing "/" so a
// directory can coexist with a file of the same base name.
type Tree map[string]Node

// Node is a single tree entry: a file leaf annotated with its reported size,
// a nested directory, or a free-text placeholder leaf.
type Node struct {
	SizeBytes int64
	Children  Tree
	Note      string
}

// File returns a leaf node for a file of the given size.
func File(size int64) Node {
	return Node{SizeBytes: size}
}

// Dir returns a directory node wrapping the given children.
func Dir(children Tree) Node {
	if children == nil {
		children = Tree{}
	}
	return Node{Children: children}
}

// Placeholder returns a leaf node carrying a free-text message instead of a size.
func Placeholder(note string) Node {
	return Node{Note: note}
}

// IsDir reports whether the node is a directory.
func (n Node) IsDir() bool {
	return n.Children != nil
}

// MarshalJSON renders directories as nested objects and file leaves as
// "<size> bytes" strings, matching the stored wire format.
func (n Node) MarshalJSON() ([]byte, error) {
	if n.IsDir() {
		return json.Marshal(n.Children)
	}
	if n.Note != "" {
		return json.Marshal(n.Note)
	}
	return json.Marshal(fmt.Sprintf("%d bytes", n.SizeBytes))
}

// UnmarshalJSON parses either a nested object or a leaf string.
func (n *Node) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var children Tree
		if err := json.Unmarshal(data, &children); err != nil {
			return err
		}
		if children == nil {
			children = Tree{}
		}
		*n = Node{Children: children}
		return nil
	}

	var leaf string
	if err := json.Unmarshal(data, &leaf); err != nil {
		return err
	}
	if raw, ok := strings.CutSuffix(leaf, " bytes"); ok {
		if size, err := strconv.ParseInt(raw, 10, 64); err == nil {
			*n = Node{SizeBytes: size}
			return nil
		}
	}
	*n = Node{Note: leaf}
	return nil
}

// Walk visits every entry in the tree depth-first and stops early when the
// visit function returns true. It reports whether the walk was stopped.
func Walk(tree Tree, visit func(name string, node Node) bool) bool {
	for name, node := range tree {
		if visit(name, node) {
			return true
		}
		if node.IsDir() && Walk(node.Children, visit) {
			return true
		}
	}
	return false
}

// CountFiles returns the number of leaf entries reachable from the root.
func CountFiles(tree Tree) int {
	count := 0
	Walk(tree, func(_ string, node Node) bool {
		if !node.IsDir() {
			count++
		}
		return false
	})
	return count
}

// ContainsName reports whether any entry name, file or directory, contains
// the given substring.
func ContainsName(tree Tree, substr string) bool {
	return Walk(tree, func(name string, _ Node) bool {
		return strings.Contains(name, substr)
	})
}

// HasDir reports whether any directory name in the tree contains the given
// substring.
func HasDir(tree Tree, substr string) bool {
	return Walk(tree, func(name string, node Node) bool {
		return node.IsDir() && strings.Contains(name, substr)
	})
}
