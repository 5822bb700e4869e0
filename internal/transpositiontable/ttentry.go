/*
 * Corvid - a bitboard chess engine core written in Go
 */

package transpositiontable

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// Bound classifies what kind of value a stored search score represents
// relative to the window it was produced in, exactly the {exact,
// lowerBound, upperBound} trio a fail-soft alpha-beta search needs to
// decide whether a cached value can resolve the current node outright or
// only bound it.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// entry is one transposition-table slot. Kept compact (a handful of
// machine words) since the table holds millions of these; each field is
// a separate struct member, with no bit-packing.
type entry struct {
	key   Key
	move  Move
	value Value
	eval  Value
	depth int8
	bound Bound
	age   uint8
}

func (e *entry) isEmpty() bool {
	return e.key == 0 && e.move == MoveNone
}
