/*
 * Corvid - a bitboard chess engine core written in Go
 */

// Package assert is a thin helper for invariant checks that should only
// run in development/test builds, not in a release binary on the hot
// search path.
package assert

import "fmt"

// DEBUG toggles the checks Assert performs. Left false for a normal build;
// flip to true (or wire to a build tag) when chasing a board-invariant bug.
var DEBUG = false

// Assert panics with a formatted message if ok is false. Only has any
// effect while DEBUG is true.
func Assert(ok bool, format string, args ...interface{}) {
	if !DEBUG {
		return
	}
	if !ok {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}
