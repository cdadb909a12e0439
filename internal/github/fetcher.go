package github

import (
	"context"
	"errors"

	"vibe-backend/internal/insight"
	"vibe-backend/internal/shared/telemetry"
)

// Fan-out caps keep the fetch bounded regardless of repository size.
const (
	rootFanout  = 20
	childFanout = 10
)

// Tree fetches a bounded file tree for the repository. An inaccessible root
// yields an empty tree and no error; transport faults on the root listing are
// returned to the caller. Failures on nested directories degrade to empty
// subtrees.
func (c *Client) Tree(ctx context.Context, owner, name string) (insight.Tree, error) {
	entries, err := c.Contents(ctx, owner, name, "")
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return insight.Tree{}, nil
		}
		return nil, err
	}
	return c.buildTree(ctx, owner, name, entries, rootFanout), nil
}

func (c *Client) buildTree(ctx context.Context, owner, name string, entries []Entry, fanout int) insight.Tree {
	if len(entries) > fanout {
		entries = entries[:fanout]
	}

	tree := insight.Tree{}
	for _, e := range entries {
		if e.Type != "dir" {
			tree[e.Name] = insight.File(e.Size)
			continue
		}

		children, err := c.Contents(ctx, owner, name, e.Path)
		if err != nil {
			telemetry.Error("github.tree.subdir_failed", map[string]any{
				"owner": owner,
				"repo":  name,
				"path":  e.Path,
				"error": err.Error(),
			})
			tree[e.Name+"/"] = insight.Dir(insight.Tree{})
			continue
		}
		tree[e.Name+"/"] = insight.Dir(c.buildTree(ctx, owner, name, children, childFanout))
	}
	return tree
}
