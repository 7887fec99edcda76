// Package hashing provides position identity keys for repetition
// detection. Two positions repeat, in the sense of the threefold rule,
// when their placement, side to move, castling rights, and en-passant
// target all match; the move counters are deliberately excluded.
package hashing

import (
	"hash/fnv"
	"strings"

	"github.com/castlebay/chesskit/internal/engine"
)

// RepetitionFields returns the first four FEN fields of the position: the
// part of the position identity that the repetition rule compares.
func RepetitionFields(p *engine.Position) string {
	fen := p.FEN()
	fields := strings.Fields(fen)
	return strings.Join(fields[:4], " ")
}

// PositionKey returns a 64-bit key over the repetition-relevant fields,
// suitable as a map key for counting position occurrences.
func PositionKey(p *engine.Position) uint64 {
	h := fnv.New64a()
	h.Write([]byte(RepetitionFields(p)))
	return h.Sum64()
}
