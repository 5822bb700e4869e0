/*
 * Corvid - a bitboard chess engine core written in Go
 */

package position

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// zobristTable holds the frozen pseudo-random 64-bit constants combined
// to form a position's key. Built once at process start by a deterministic
// generator and never touched again - the "compile-time generator, frozen
// for the engine's lifetime" of spec §3.
var zobristTable struct {
	piece      [PieceLength][SqLength]Key
	castling   [4]Key
	epFile     [FileLength]Key
	sideToMove Key
}

// splitmix64 is a small, fast, deterministic generator used only to seed
// the Zobrist constant tables at startup - it needs no cryptographic
// properties, just good bit dispersion and a fixed seed so the constants
// (and therefore every Zobrist key derived from them) are reproducible
// across runs and machines.
type splitmix64 struct{ state uint64 }

func (s *splitmix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func init() {
	rng := &splitmix64{state: 0x5EED_C0FF_EE15_C0DE}
	for pc := WhitePawn; int(pc) < PieceLength; pc++ {
		for sq := SqA1; sq < SqNone; sq++ {
			zobristTable.piece[pc][sq] = Key(rng.next())
		}
	}
	for i := range zobristTable.castling {
		zobristTable.castling[i] = Key(rng.next())
	}
	for f := FileA; f <= FileH; f++ {
		zobristTable.epFile[f] = Key(rng.next())
	}
	zobristTable.sideToMove = Key(rng.next())
}

var castlingBits = [4]CastlingRights{CastleWK, CastleWQ, CastleBK, CastleBQ}

// computeZobrist recomputes the full Zobrist key from scratch - the
// definition of correctness per spec §4.9; DoMove maintains the key
// incrementally for performance but every incremental update must agree
// with this function.
func (p *Position) computeZobrist() Key {
	var key Key
	for pc := WhitePawn; int(pc) < PieceLength; pc++ {
		bb := p.bitboards[pc]
		for bb != BbZero {
			sq := bb.PopLsb()
			key ^= zobristTable.piece[pc][sq]
		}
	}
	for i, bit := range castlingBits {
		if p.castlingRights.Has(bit) {
			key ^= zobristTable.castling[i]
		}
	}
	if p.enPassantTarget != SqNone {
		key ^= zobristTable.epFile[p.enPassantTarget.FileOf()]
	}
	if p.sideToMove == Black {
		key ^= zobristTable.sideToMove
	}
	return key
}

// RebuildZobristKey recomputes and stores the key from scratch. NewFromFEN
// calls it to set the key of a freshly parsed position.
func (p *Position) RebuildZobristKey() {
	p.zobristKey = p.computeZobrist()
}
