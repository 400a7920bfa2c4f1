// Package knowledge implements the retrieval side of the agent: a small
// two-level category tree loaded from YAML or JSON, a keyword-relevance
// retriever over that tree, and prose formatting of retrieved entries.
//
// A Tree is treated as immutable after load. The retriever never mutates it,
// so one tree and one retriever may be shared across any number of
// conversations.
package knowledge

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Tree is a nested category mapping: top-level category name to either a
// scalar string or a one-level mapping of sub-items. Deeper nesting is not
// traversed by the retriever.
type Tree map[string]any

// Provider supplies the current tree snapshot for a retrieval call. Loaders
// and watchers produce Providers; the orchestrator only ever reads through
// one.
type Provider func() Tree

// Static wraps a fixed tree as a Provider.
func Static(t Tree) Provider {
	if t == nil {
		t = Tree{}
	}
	return func() Tree { return t }
}

// Load reads the knowledge tree from path. A missing file or unparsable
// content degrades to an empty tree with a logged warning: retrieval then
// reports "no information" instead of failing the conversation.
func Load(path string, logger *zap.Logger) Tree {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("knowledge base unavailable, starting with empty tree",
			zap.String("path", path), zap.Error(err))
		return Tree{}
	}

	// YAML is a superset of JSON, so one decoder covers both formats.
	var tree Tree
	if err := yaml.Unmarshal(data, &tree); err != nil {
		logger.Warn("knowledge base unparsable, starting with empty tree",
			zap.String("path", path), zap.Error(err))
		return Tree{}
	}
	if tree == nil {
		tree = Tree{}
	}

	logger.Info("knowledge base loaded",
		zap.String("path", path), zap.Int("categories", len(tree)))
	return tree
}
