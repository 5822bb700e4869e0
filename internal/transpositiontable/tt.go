/*
 * Corvid - a bitboard chess engine core written in Go
 */

// Package transpositiontable implements a transposition table (cache) for
// a chess engine search. Table is not thread-safe and must be
// synchronized externally if Resize or Clear run concurrently with a
// search probing it.
package transpositiontable

import (
	"math"
	"math/bits"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/assert"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	. "github.com/corvidchess/corvid/internal/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// MaxSizeInMB is the largest table size callers may request.
const MaxSizeInMB = 65_536

// Table is a fixed-size, power-of-two-slot hash table of search results,
// keyed by a position's Zobrist key. Each slot stores the full 64-bit key
// and Probe compares it, so a false hit needs two positions with the same
// Zobrist key; such collisions are accepted, as in every production
// engine. The search uses a stored move only for move ordering, where it
// must match a move generated for the current position.
type Table struct {
	slots []entry
	mask  uint64
	age   uint8

	hits, misses, collisions, puts uint64
}

// NewTable allocates a table sized to approximately sizeMB megabytes,
// rounded down to the nearest power-of-two slot count so a probe can mask
// the key instead of taking a division.
func NewTable(sizeMB int) *Table {
	if sizeMB < 1 {
		sizeMB = 1
	}
	if sizeMB > MaxSizeInMB {
		sizeMB = MaxSizeInMB
	}
	nBytes := uint64(sizeMB) * 1024 * 1024
	nSlots := nBytes / uint64(entrySize)
	pow := uint64(1) << uint(bits.Len64(nSlots)-1)
	if pow == 0 {
		pow = 1
	}
	log.Infof("transposition table: %d MB requested, %d slots allocated", sizeMB, pow)
	return &Table{
		slots: make([]entry, pow),
		mask:  pow - 1,
	}
}

const entrySize = 32 // approximate slot footprint in bytes, used only for sizing

// Resize replaces the table contents with a freshly allocated table of
// the requested size. All previously stored entries are lost.
func (t *Table) Resize(sizeMB int) {
	fresh := NewTable(sizeMB)
	*t = *fresh
}

// Clear empties every slot without changing the table's size.
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i] = entry{}
	}
	t.hits, t.misses, t.collisions, t.puts = 0, 0, 0, 0
}

// NewSearch bumps the table's generation counter. Entries from older
// generations are preferred for eviction on a colliding Store, which is
// what lets the table carry useful information across moves in a game
// without ageing out entries from the current search.
func (t *Table) NewSearch() {
	t.age++
}

func (t *Table) index(key Key) uint64 {
	return uint64(key) & t.mask
}

// Store writes a search result into the table. ply is the distance from
// the search root to this node - needed to translate a mate score from
// the "plies to mate from the root" convention the search computes it in
// to the "plies to mate from this node" convention the table stores, per
// the mate-score normalization law: store with +ply added for a
// winning-mate score, -ply for a losing-mate score.
func (t *Table) Store(key Key, move Move, value, eval Value, depth int8, bound Bound, ply int) {
	if assert.DEBUG {
		assert.Assert(depth >= 0, "transpositiontable: Store depth must be >= 0")
	}
	idx := t.index(key)
	slot := &t.slots[idx]

	sameKey := slot.key == key
	if !slot.isEmpty() && sameKey {
		t.hits++
	} else if !slot.isEmpty() && !sameKey {
		t.collisions++
	}

	replace := slot.isEmpty() ||
		slot.age != t.age ||
		abs8(slot.depth-depth) <= 2 ||
		(slot.depth == depth && bound == BoundExact)

	if !replace {
		if slot.move == MoveNone {
			slot.move = move
		}
		return
	}

	if move == MoveNone && sameKey {
		move = slot.move // preserve a previously stored best move when re-storing without one
	}

	slot.key = key
	slot.move = move
	slot.value = normalizeStore(value, ply)
	slot.eval = eval
	slot.depth = depth
	slot.bound = bound
	slot.age = t.age
	t.puts++
}

func abs8(v int8) int8 {
	if v < 0 {
		return -v
	}
	return v
}

// Probe looks up key. ok is false on a miss or a verified key mismatch
// (collision); the returned value has already been translated back from
// the table's node-relative mate convention to "plies to mate from the
// root" for a node at ply via the probe-side inverse of Store's adjustment.
func (t *Table) Probe(key Key, ply int) (move Move, value, eval Value, depth int8, bound Bound, ok bool) {
	idx := t.index(key)
	slot := &t.slots[idx]
	if slot.key != key || slot.isEmpty() {
		t.misses++
		return MoveNone, ValueNA, ValueNA, 0, BoundNone, false
	}
	t.hits++
	return slot.move, normalizeProbe(slot.value, ply), slot.eval, slot.depth, slot.bound, true
}

// normalizeStore converts a search score (mate distance counted from the
// root) into the node-relative score the table stores (mate distance
// counted from the stored node), so that a later probe at a different ply
// from the root can turn it back into a correct root-relative distance.
func normalizeStore(v Value, ply int) Value {
	switch {
	case v >= ValueMateThreshold:
		return v + Value(ply)
	case v <= -ValueMateThreshold:
		return v - Value(ply)
	default:
		return v
	}
}

// normalizeProbe is normalizeStore's inverse.
func normalizeProbe(v Value, ply int) Value {
	switch {
	case v >= ValueMateThreshold:
		return v - Value(ply)
	case v <= -ValueMateThreshold:
		return v + Value(ply)
	default:
		return v
	}
}

// HashFull estimates per-mille table occupancy by sampling the first
// 1000 slots, the conventional UCI "hashfull" statistic.
func (t *Table) HashFull() int {
	n := len(t.slots)
	if n == 0 {
		return 0
	}
	sample := int(math.Min(float64(n), 1000))
	used := 0
	for i := 0; i < sample; i++ {
		if !t.slots[i].isEmpty() {
			used++
		}
	}
	return used * 1000 / sample
}

// Stats returns hit/miss/collision/store counters for UCI-style
// diagnostics and tests.
func (t *Table) Stats() (hits, misses, collisions, puts uint64) {
	return t.hits, t.misses, t.collisions, t.puts
}
