/*
 * Corvid - a bitboard chess engine core written in Go
 */

// Package util holds small standalone helpers shared across packages that
// don't belong to any one domain package.
package util

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer formats numbers with English thousands separators for log/info
// output (e.g. node counts, TT sizes).
var Printer = message.NewPrinter(language.English)

// Abs returns the absolute value of n.
func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Min returns the smaller of x and y.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Nps computes nodes per second for a given node count and elapsed duration.
func Nps(nodes uint64, duration time.Duration) uint64 {
	if duration <= 0 {
		return 0
	}
	return uint64(float64(nodes) / duration.Seconds())
}
