package dirtree

import (
	"time"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/status"
)

// NodeType distinguishes directory nodes from file nodes in a tree.
type NodeType int

const (
	NodeDirectory NodeType = iota
	NodeFile
)

// Node is one entry in an in-memory snapshot of a directory tree. Directory
// nodes carry their subdirectories in Children and their regular entries in
// Files.
type Node struct {
	Path     fspath.Path
	Type     NodeType
	Status   status.Status
	Size     int64
	ModTime  time.Time
	Depth    int
	Parent   *Node
	Children []*Node
	Files    []*Node
}

// NewDirectoryNode creates a directory node rooted under parent. Depth is
// derived from the parent; a nil parent denotes the tree root.
func NewDirectoryNode(p fspath.Path, parent *Node) *Node {
	node := &Node{
		Path:   p,
		Type:   NodeDirectory,
		Parent: parent,
	}
	if parent != nil {
		node.Depth = parent.Depth + 1
	}
	return node
}

// NewFileNode creates a file node under parent.
func NewFileNode(p fspath.Path, parent *Node) *Node {
	node := &Node{
		Path:   p,
		Type:   NodeFile,
		Parent: parent,
	}
	if parent != nil {
		node.Depth = parent.Depth + 1
	}
	return node
}

// AddChild appends a subdirectory node.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// AddFile appends a file node.
func (n *Node) AddFile(file *Node) {
	n.Files = append(n.Files, file)
}

// Walk visits n and every node beneath it, directories before their
// contents. Returning false from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, f := range n.Files {
		if !fn(f) {
			return false
		}
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// CountNodes returns the number of directory and file nodes in the tree
// rooted at n, including n itself.
func (n *Node) CountNodes() (dirs, files int) {
	n.Walk(func(node *Node) bool {
		if node.Type == NodeDirectory {
			dirs++
		} else {
			files++
		}
		return true
	})
	return dirs, files
}
