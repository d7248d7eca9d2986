/*
Package treefile loads textual path listings into directory trees.

A path listing is a plain text file with one pathname per line, e.g. the
output of `find`. Loading may be done asynchronously; progress is then
broadcast to subscribers while the tree is being built.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package treefile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dtree'
func tracer() tracing.Trace {
	return tracing.Select("dtree")
}
