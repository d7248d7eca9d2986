package dtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"strings"

	"github.com/npillmayer/dtree/path"
)

// Tree is a directory tree: a single hierarchy of path-labeled nodes.
//
// The zero value of Tree is an uninitialized tree; all operations on it
// fail with ErrNotInitialized. Use New to create a usable empty tree.
//
// Tree keeps a node count alongside the actual node structure. The
// invariant checker audits the two against each other, so the count is
// deliberately maintained as separate bookkeeping instead of being
// derived on demand.
type Tree struct {
	initialized bool
	root        *Node
	count       int
}

// Auditing enables self-auditing of mutating tree operations. When set,
// Insert and Remove verify all structural invariants on entry and exit
// and panic on a violation. Intended for tests and development builds;
// audits walk the complete tree and are costly for large trees.
var Auditing bool

// New creates an empty, initialized directory tree.
func New() *Tree {
	return &Tree{initialized: true}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Root returns the root node of the tree, or nil for an empty tree.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Insert inserts a pathname into the tree, creating nodes for any
// ancestor paths not yet present.
//
// The first component of the pathname must agree with the tree's root,
// except for the very first insertion, which establishes the root.
func (t *Tree) Insert(pathname string) error {
	if t == nil || !t.initialized {
		return ErrNotInitialized
	}
	t.audit("Insert entry")
	p, err := path.Parse(pathname)
	if err != nil {
		return err
	}
	if t.root != nil && p.SharedPrefixDepth(t.root.path) == 0 {
		return ErrConflictingPath
	}
	anc, depth := t.descend(p)
	if depth == p.Depth() {
		return ErrAlreadyInTree
	}
	cur := anc
	for d := depth + 1; d <= p.Depth(); d++ {
		prefix, perr := p.Prefix(d)
		assert(perr == nil, "insert: prefix depth out of range")
		n := newNode(prefix, cur)
		if cur == nil {
			t.root = n
		} else if ierr := cur.insertChild(n); ierr != nil {
			assert(false, "insert: new node collides with existing child")
		}
		cur = n
		t.count++
	}
	T().Debugf("inserted %s, tree now holds %d nodes", p, t.count)
	t.audit("Insert exit")
	return nil
}

// Remove removes the node labeled with pathname and its whole subtree
// from the tree.
func (t *Tree) Remove(pathname string) error {
	if t == nil || !t.initialized {
		return ErrNotInitialized
	}
	t.audit("Remove entry")
	p, err := path.Parse(pathname)
	if err != nil {
		return err
	}
	node, depth := t.descend(p)
	if node == nil || depth != p.Depth() {
		return ErrNoSuchPath
	}
	removed := subtreeCount(node)
	if node.parent == nil {
		t.root = nil
	} else if rerr := node.parent.removeChild(node); rerr != nil {
		assert(false, "remove: located node not linked to its parent")
	}
	t.count -= removed
	T().Debugf("removed %s (%d nodes), tree now holds %d nodes", p, removed, t.count)
	t.audit("Remove exit")
	return nil
}

// Contains reports whether a node labeled with pathname is present.
// Malformed pathnames are simply not contained.
func (t *Tree) Contains(pathname string) bool {
	if t == nil || !t.initialized {
		return false
	}
	p, err := path.Parse(pathname)
	if err != nil {
		return false
	}
	node, depth := t.descend(p)
	return node != nil && depth == p.Depth()
}

// String returns a pre-order listing of the tree, one pathname per line.
func (t *Tree) String() string {
	if t == nil || t.root == nil {
		return ""
	}
	var bf strings.Builder
	var walk func(n *Node)
	walk = func(n *Node) {
		bf.WriteString(n.path.String())
		bf.WriteByte('\n')
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(t.root)
	return bf.String()
}

// Valid runs the full invariant checker over the tree (see IsTreeValid).
func (t *Tree) Valid() bool {
	if t == nil {
		return IsTreeValid(false, nil, 0)
	}
	return IsTreeValid(t.initialized, t.root, t.count)
}

// descend walks from the root towards p and returns the deepest node
// whose path is a prefix of p, together with that node's depth.
// It returns (nil, 0) for an empty tree or when the root does not share
// p's first component.
func (t *Tree) descend(p path.Path) (*Node, int) {
	if t.root == nil || p.SharedPrefixDepth(t.root.path) == 0 {
		return nil, 0
	}
	cur := t.root
	depth := cur.path.Depth()
	for depth < p.Depth() {
		prefix, err := p.Prefix(depth + 1)
		assert(err == nil, "descend: prefix depth out of range")
		child := cur.findChild(prefix)
		if child == nil {
			break
		}
		cur = child
		depth++
	}
	return cur, depth
}

func (t *Tree) audit(where string) {
	if !Auditing {
		return
	}
	assert(IsTreeValid(t.initialized, t.root, t.count),
		"structural invariants violated ("+where+")")
}
