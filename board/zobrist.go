package board

import "math/rand"

// Zobrist hashing: a 64-bit hash built from independent random keys per
// (piece type, color, square), one side-to-move key, 16 castling-rights
// keys, and 8 en-passant-file keys, all XORed incrementally as moves are
// made. The source this spec distills from left its hash as an
// increment-per-move stub; this is the real thing, which repetition
// detection (IsDraw) depends on.
//
// Keys are seeded from a fixed source so hashes are reproducible run to
// run, which matters for tests that assert on Key values or round-trips.
var (
	sideKey        uint64
	enPassantKey   [8]uint64
	castlingKey    [16]uint64
	pieceSquareKey [13 * 64]uint64 // indexed by PieceAt() code (0..12) * 64 + square
)

func pieceSquareIndex(pieceType int, side Color, sq int) int {
	var piece = pieceType
	if side == Black {
		piece += 6
	}
	return piece*64 + sq
}

// PieceSquareKey returns the Zobrist key contribution of one piece on one
// square.
func PieceSquareKey(pieceType int, side Color, sq int) uint64 {
	return pieceSquareKey[pieceSquareIndex(pieceType, side, sq)]
}

func initZobristKeys() {
	var r = rand.New(rand.NewSource(0x5EED))
	sideKey = r.Uint64()
	for i := range enPassantKey {
		enPassantKey[i] = r.Uint64()
	}
	for i := range pieceSquareKey {
		pieceSquareKey[i] = r.Uint64()
	}

	var castleBit [4]uint64
	for i := range castleBit {
		castleBit[i] = r.Uint64()
	}
	for mask := range castlingKey {
		for bit := 0; bit < 4; bit++ {
			if mask&(1<<bit) != 0 {
				castlingKey[mask] ^= castleBit[bit]
			}
		}
	}
}

// computeKey recomputes the Zobrist hash of a position from scratch. Used
// only when constructing a position directly (e.g. from FEN); MakeMove
// maintains the key incrementally from there on.
func (p *Position) computeKey() uint64 {
	var key uint64
	if p.SideToMove == White {
		key ^= sideKey
	}
	key ^= castlingKey[p.CastleRights]
	if p.EpSquare != SquareNone {
		key ^= enPassantKey[File(p.EpSquare)]
	}
	for sq := 0; sq < 64; sq++ {
		if pieceType, side, ok := p.PieceTypeAndColor(sq); ok {
			key ^= PieceSquareKey(pieceType, side, sq)
		}
	}
	return key
}

func init() {
	initZobristKeys()
}
