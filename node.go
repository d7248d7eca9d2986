package dtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"sort"

	"github.com/npillmayer/dtree/path"
)

// Node is one element of a directory tree.
//
// A node is labeled with a full path, immutable for the node's lifetime.
// Children are exclusively owned by their node and kept sorted by path
// order; the parent link is a non-owning back-reference.
type Node struct {
	path     path.Path
	parent   *Node
	children []*Node
}

func newNode(p path.Path, parent *Node) *Node {
	return &Node{
		path:   p,
		parent: parent,
	}
}

// Path returns the path the node is labeled with.
func (n *Node) Path() path.Path {
	return n.path
}

// Parent returns the node's parent, or nil for the root of a tree.
func (n *Node) Parent() *Node {
	return n.parent
}

// NumChildren returns the number of children of the node.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Child returns the i-th child of the node, counting from 0.
//
// Indexed access is fallible on purpose: the invariant checker treats
// this surface defensively and must be able to distinguish an
// out-of-range index from a valid one.
func (n *Node) Child(i int) (*Node, error) {
	if i < 0 || i >= len(n.children) {
		return nil, ErrIndexOutOfBounds
	}
	return n.children[i], nil
}

// String returns the node's pathname.
func (n *Node) String() string {
	return n.path.String()
}

// --- Child bookkeeping -------------------------------------------------

// searchChild returns the insertion slot for p in the sorted child list
// and whether a child with exactly that path is already present.
func (n *Node) searchChild(p path.Path) (int, bool) {
	slot := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].path.Compare(p) >= 0
	})
	found := slot < len(n.children) && n.children[slot].path.Compare(p) == 0
	return slot, found
}

// findChild returns the child labeled with p, or nil.
func (n *Node) findChild(p path.Path) *Node {
	slot, found := n.searchChild(p)
	if !found {
		return nil
	}
	return n.children[slot]
}

// insertChild links child into the sorted child list.
func (n *Node) insertChild(child *Node) error {
	slot, found := n.searchChild(child.path)
	if found {
		return ErrAlreadyInTree
	}
	n.children = append(n.children, nil)
	copy(n.children[slot+1:], n.children[slot:])
	n.children[slot] = child
	child.parent = n
	return nil
}

// removeChild unlinks child from the child list. The child keeps its
// subtree but loses the parent back-reference.
func (n *Node) removeChild(child *Node) error {
	slot, found := n.searchChild(child.path)
	if !found || n.children[slot] != child {
		return ErrNoSuchPath
	}
	copy(n.children[slot:], n.children[slot+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.parent = nil
	return nil
}
