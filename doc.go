/*
Package dtree implements a directory tree: a hierarchical tree of nodes,
each labeled with a full filesystem-like path, together with a structural
invariant checker that audits the tree's shape.

Directory Trees

A directory tree (DT) stores a single hierarchy of '/'-separated paths.
Inserting "root/a/b" creates nodes for "root", "root/a" and "root/a/b" as
needed. Children of a node are kept in lexicographic path order and every
node except the root holds a back-reference to its parent.

The interesting part of the package is the checker in invariants.go. It
walks a tree and certifies, independently of the mutation logic that
built it, that the structural invariants hold: parent/child path consistency,
ancestor/descendant prefix consistency, ordering and uniqueness of sibling
sets, agreement of child bookkeeping with actually retrievable children,
and a global node-count invariant. The checker is a pure read-only
predicate: it never repairs a tree and never mutates one. It is meant to
be usable as an oracle over a possibly buggy tree implementation, which is
why it treats the node access surface defensively instead of trusting it.

Mutating operations of Tree can be made self-auditing by setting the
package variable Auditing; every Insert and Remove will then run the full
checker on entry and exit, in the spirit of assert-style development
builds.

Diagnostics for broken invariants are emitted through the tracing
facility (see T) before the checker returns its boolean verdict.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package dtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the dtree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrNotInitialized is flagged when operating on the zero value of Tree,
// which represents an uninitialized directory tree.
const ErrNotInitialized = TreeError("tree has not been initialized")

// ErrAlreadyInTree signals an attempt to insert a path which is already
// present in the tree.
const ErrAlreadyInTree = TreeError("path already in tree")

// ErrConflictingPath signals an attempt to insert a path which does not
// share the tree's root.
const ErrConflictingPath = TreeError("path conflicts with root of tree")

// ErrNoSuchPath signals an attempt to remove a path which is not present
// in the tree.
const ErrNoSuchPath = TreeError("no such path in tree")

// ErrIndexOutOfBounds is flagged whenever a child index is greater than
// the number of children of a node.
const ErrIndexOutOfBounds = TreeError("child index out of bounds")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
