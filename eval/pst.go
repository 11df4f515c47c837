// Package eval implements the centipawn evaluator: material, piece-square
// tables, pawn structure, mobility, king safety, and center control,
// summed from the side-to-move's perspective.
package eval

import "github.com/kestrelchess/analyzer/board"

// Piece values in centipawns, indexed by board.PieceType.
var pieceValue = [7]int{
	board.Empty:  0,
	board.Pawn:   100,
	board.Knight: 320,
	board.Bishop: 330,
	board.Rook:   500,
	board.Queen:  900,
	board.King:   20000,
}

// pst holds one 64-entry table per non-king piece type, plus a middlegame
// and an endgame table for the king. All tables are written from White's
// perspective, square a1..h8; a black piece's square is flipped vertically
// (board.FlipSquare) before lookup, matching the teacher's mirroring idiom
// in eval/evaluation.go.
var (
	pawnPST   [64]int
	knightPST [64]int
	bishopPST [64]int
	rookPST   [64]int
	queenPST  [64]int
	kingPSTMg [64]int
	kingPSTEg [64]int
)

func init() {
	// Pawns: encourage central files and advancing ranks; discourage
	// clustering on the back ranks (never populated for pawns anyway).
	for sq := 0; sq < 64; sq++ {
		var file, rank = board.File(sq), board.Rank(sq)
		var centerFile = 3 - abs(file-3) - abs(file-4) + 3
		pawnPST[sq] = rank*5 + centerFile*2

		knightPST[sq] = centerBonus(file, rank, 4)
		bishopPST[sq] = centerBonus(file, rank, 3)
		rookPST[sq] = 0
		if rank == board.Rank7 {
			rookPST[sq] = 10
		}
		queenPST[sq] = centerBonus(file, rank, 1)

		kingPSTMg[sq] = -centerBonus(file, rank, 3)
		if rank == board.Rank1 {
			kingPSTMg[sq] += 10
		}
		kingPSTEg[sq] = centerBonus(file, rank, 4)
	}
}

func centerBonus(file, rank, scale int) int {
	var fileDist = min(file, 7-file)
	var rankDist = min(rank, 7-rank)
	return (fileDist + rankDist) * scale
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func pstValue(pieceType, sq int, side board.Color, endgame bool) int {
	if side == board.Black {
		sq = board.FlipSquare(sq)
	}
	switch pieceType {
	case board.Pawn:
		return pawnPST[sq]
	case board.Knight:
		return knightPST[sq]
	case board.Bishop:
		return bishopPST[sq]
	case board.Rook:
		return rookPST[sq]
	case board.Queen:
		return queenPST[sq]
	case board.King:
		if endgame {
			return kingPSTEg[sq]
		}
		return kingPSTMg[sq]
	}
	return 0
}
