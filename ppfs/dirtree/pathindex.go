package dirtree

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/armon/go-radix"
)

// IndexStats tracks usage counters for a PathIndex
type IndexStats struct {
	TotalNodes    int64
	PathLookups   int64
	PrefixLookups int64
	Insertions    int64
	Deletions     int64
	mu            sync.RWMutex
}

// PathIndex provides O(k) lookups of tree nodes by path using a compressed
// trie, where k is the length of the path being searched
type PathIndex struct {
	tree  *radix.Tree
	mu    sync.RWMutex
	stats *IndexStats
	nodes map[string]*Node // direct path -> node mapping for verification
}

// NewPathIndex creates an empty path index
func NewPathIndex() *PathIndex {
	return &PathIndex{
		tree:  radix.New(),
		stats: &IndexStats{},
		nodes: make(map[string]*Node),
	}
}

// Insert adds a node to the index, keyed by its normalized path
func (idx *PathIndex) Insert(node *Node) error {
	if node == nil {
		return fmt.Errorf("invalid input: node cannot be nil")
	}

	key := normalizeKey(node.Path.String())

	idx.mu.Lock()
	defer idx.mu.Unlock()

	_, updated := idx.tree.Insert(key, node)
	idx.nodes[key] = node

	idx.stats.mu.Lock()
	if !updated {
		idx.stats.TotalNodes++
	}
	idx.stats.Insertions++
	idx.stats.mu.Unlock()

	slog.Debug("path index insertion completed",
		"path", key,
		"was_update", updated)

	return nil
}

// Lookup finds a node by its exact path
func (idx *PathIndex) Lookup(path string) (*Node, bool) {
	key := normalizeKey(path)

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	value, found := idx.tree.Get(key)

	idx.stats.mu.Lock()
	idx.stats.PathLookups++
	idx.stats.mu.Unlock()

	if !found {
		return nil, false
	}
	return value.(*Node), true
}

// PrefixLookup finds all nodes whose paths start with the given prefix
func (idx *PathIndex) PrefixLookup(prefix string) []*Node {
	key := normalizeKey(prefix)

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var results []*Node
	idx.tree.WalkPrefix(key, func(_ string, value interface{}) bool {
		if node, ok := value.(*Node); ok {
			results = append(results, node)
		}
		return false // continue walking
	})

	idx.stats.mu.Lock()
	idx.stats.PrefixLookups++
	idx.stats.mu.Unlock()

	return results
}

// Remove deletes a node from the index
func (idx *PathIndex) Remove(path string) bool {
	key := normalizeKey(path)

	idx.mu.Lock()
	defer idx.mu.Unlock()

	_, deleted := idx.tree.Delete(key)
	if deleted {
		delete(idx.nodes, key)
	}

	idx.stats.mu.Lock()
	if deleted {
		idx.stats.TotalNodes--
	}
	idx.stats.Deletions++
	idx.stats.mu.Unlock()

	return deleted
}

// GetChildren returns all direct children of a given directory path
func (idx *PathIndex) GetChildren(parentPath string) []*Node {
	parent := normalizeKey(parentPath)
	if !strings.HasSuffix(parent, "/") {
		parent += "/"
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var children []*Node
	idx.tree.WalkPrefix(parent, func(key string, value interface{}) bool {
		if key == strings.TrimSuffix(parent, "/") {
			return false
		}
		// only direct children: no further slashes after the parent
		remaining := strings.TrimPrefix(key, parent)
		if remaining != "" && !strings.Contains(remaining, "/") {
			if node, ok := value.(*Node); ok {
				children = append(children, node)
			}
		}
		return false
	})

	return children
}

// Size returns the total number of nodes in the index
func (idx *PathIndex) Size() int64 {
	idx.stats.mu.RLock()
	defer idx.stats.mu.RUnlock()
	return idx.stats.TotalNodes
}

// GetStats returns a copy of the current index statistics
func (idx *PathIndex) GetStats() IndexStats {
	idx.stats.mu.RLock()
	defer idx.stats.mu.RUnlock()
	return IndexStats{
		TotalNodes:    idx.stats.TotalNodes,
		PathLookups:   idx.stats.PathLookups,
		PrefixLookups: idx.stats.PrefixLookups,
		Insertions:    idx.stats.Insertions,
		Deletions:     idx.stats.Deletions,
	}
}

// Clear removes all entries from the index
func (idx *PathIndex) Clear() {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.tree = radix.New()
	idx.nodes = make(map[string]*Node)

	idx.stats.mu.Lock()
	idx.stats.TotalNodes = 0
	idx.stats.mu.Unlock()
}

// WalkPaths executes fn for each indexed path in lexical order. Returning
// true from fn stops the walk.
func (idx *PathIndex) WalkPaths(fn func(path string, node *Node) bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	idx.tree.Walk(func(key string, value interface{}) bool {
		if node, ok := value.(*Node); ok {
			return fn(key, node)
		}
		return false
	})
}

// normalizeKey ensures consistent generic-format keys for the index
func normalizeKey(path string) string {
	normalized := strings.ReplaceAll(path, "\\", "/")
	normalized = filepath.ToSlash(filepath.Clean(normalized))
	if len(normalized) > 1 && strings.HasSuffix(normalized, "/") {
		normalized = strings.TrimSuffix(normalized, "/")
	}
	return normalized
}
