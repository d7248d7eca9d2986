package dtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Structural invariant checker for directory trees.
//
// The checker certifies, independently of the mutation logic that built a
// tree, that the following invariants hold:
//
//   - an uninitialized tree has no root and a node count of 0,
//   - the maintained node count equals the number of reachable nodes,
//   - every non-root node's path extends its parent's path by exactly one
//     component,
//   - children are stored in lexicographic path order, without duplicates,
//   - every ancestor's path is a prefix of all of its descendants' paths,
//   - the child bookkeeping of every node agrees with the children that
//     are actually retrievable, and their parent links point back.
//
// All checks are read-only and short-circuit: the first violation found
// wins, is reported through the package tracer, and aborts the remaining
// checks. The checker keeps no state between calls.

// IsNodeValid checks the invariants local to one node: the parent/child
// path relation, ordering and uniqueness of the node's children, and
// prefix consistency of the node's whole subtree against the node itself.
//
// A nil node is not a valid node; unlike the internal recursive checks,
// this entry point reports it as a violation rather than treating it as
// vacuously valid.
func IsNodeValid(n *Node) bool {
	if n == nil {
		T().Errorf("checker: node is a nil pointer")
		return false
	}
	if parent := n.Parent(); parent != nil {
		shared := n.Path().SharedPrefixDepth(parent.Path())
		// Both equalities must hold: a path merely sharing a prefix with
		// its parent is not in a parent-child relation with it.
		if shared != n.Path().Depth()-1 || shared != parent.Path().Depth() {
			T().Errorf("checker: parent and child don't have parent-child paths: (%s) (%s)",
				parent.Path(), n.Path())
			return false
		}
	}
	for i := 1; i < n.NumChildren(); i++ {
		prev, curr := n.children[i-1], n.children[i]
		if prev.Path().Compare(curr.Path()) > 0 {
			T().Errorf("checker: children of %s not stored lexicographically", n.Path())
			return false
		}
	}
	for i := 0; i < n.NumChildren(); i++ {
		for j := 0; j < n.NumChildren(); j++ {
			if i == j {
				continue
			}
			if n.children[i].Path().Compare(n.children[j].Path()) == 0 {
				T().Errorf("checker: node %s has children with identical paths", n.Path())
				return false
			}
		}
	}
	return ancestorConsistent(n, n)
}

// ancestorConsistent verifies recursively that the path of higher (the
// subtree root under validation or one of its ancestors) is a prefix of
// the path of every node in the subtree rooted at n. A nil n is
// vacuously consistent.
//
// The child count/access agreement is treewalk's job; this check only
// recurses over children already believed to exist.
func ancestorConsistent(n *Node, higher *Node) bool {
	if n == nil {
		return true
	}
	if higher.Path().SharedPrefixDepth(n.Path()) != higher.Path().Depth() {
		T().Errorf("checker: shared prefix depth of ancestor and descendant is not the ancestor's depth: (%s) (%s)",
			n.Path(), higher.Path())
		return false
	}
	for _, child := range n.children {
		if !ancestorConsistent(child, higher) {
			return false
		}
	}
	return true
}

// treewalk performs a pre-order traversal of the subtree rooted at n,
// validating every node and additionally auditing the child access
// surface: every index the node claims valid must deliver a non-nil
// child whose parent link points back to n. A nil n is an empty subtree
// and vacuously valid.
func treewalk(n *Node) bool {
	if n == nil {
		return true
	}
	if !IsNodeValid(n) {
		return false
	}
	for i := 0; i < n.NumChildren(); i++ {
		child, err := n.Child(i)
		if err != nil {
			T().Errorf("checker: NumChildren claims more children than Child delivers at %s", n.Path())
			return false
		}
		if child == nil {
			T().Errorf("checker: Child returned nil for an index NumChildren claimed valid at %s", n.Path())
			return false
		}
		if child.Parent() != n {
			T().Errorf("checker: parent link of a child of %s does not point back to it", n.Path())
			return false
		}
		if !treewalk(child) {
			return false
		}
	}
	return true
}

// subtreeCount returns the number of nodes reachable from n, including n
// itself. A nil n counts as 0. The count is computed by traversal and
// never trusts any cached bookkeeping, which makes it usable as an
// oracle against a separately maintained counter.
func subtreeCount(n *Node) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, child := range n.children {
		count += subtreeCount(child)
	}
	return count
}

// IsTreeValid checks the global invariants of a directory tree described
// by its initialization flag, root node and claimed node count, then
// validates every node of the tree.
//
// The cheap global checks run before the full traversal, so a gross
// top-level inconsistency is reported without paying for a walk.
func IsTreeValid(initialized bool, root *Node, count int) bool {
	if !initialized {
		if count != 0 {
			T().Errorf("checker: tree not initialized, but node count is %d", count)
			return false
		}
		if root != nil {
			T().Errorf("checker: tree not initialized, but root %s is present", root.Path())
			return false
		}
	}
	if actual := subtreeCount(root); count != actual {
		T().Errorf("checker: node count %d does not match actual number of nodes %d", count, actual)
		return false
	}
	return treewalk(root)
}
