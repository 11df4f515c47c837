package eval

import "github.com/kestrelchess/analyzer/board"

const (
	nonPawnNonKingEndgameThreshold = 2000
	centerSquares                  = board.Bitboard(0) |
		(1 << board.SquareD4) | (1 << board.SquareE4) |
		(1 << board.SquareD5) | (1 << board.SquareE5)
)

// Evaluate returns a centipawn score from pos's side-to-move's perspective:
// positive favors the mover. It sums material, piece-square tables, pawn
// structure, mobility, king safety, and center control, computed once for
// White and once for Black, then negates if Black is to move. Terms are
// broken out one bitboard loop per concern, in the style of the teacher's
// EvaluationService.Evaluate.
func Evaluate(pos *board.Position) int {
	var score = evaluateSide(pos, board.White) - evaluateSide(pos, board.Black)
	if pos.SideToMove == board.Black {
		score = -score
	}
	return score
}

func evaluateSide(pos *board.Position, side board.Color) int {
	var own = pos.PiecesByColor(side)
	var occ = pos.Occupied()
	var endgame = isEndgame(pos)

	var score = 0
	score += materialScore(pos, side)
	score += pstScore(pos, side, endgame)
	score += pawnStructureScore(pos, side)
	score += mobilityScore(pos, side, own, occ)
	score += kingSafetyScore(pos, side, own)
	score += centerControlScore(pos, side, own, occ)
	return score
}

func materialScore(pos *board.Position, side board.Color) int {
	var own = pos.PiecesByColor(side)
	var score = 0
	score += board.PopCount(pos.Pawns&own) * pieceValue[board.Pawn]
	score += board.PopCount(pos.Knights&own) * pieceValue[board.Knight]
	score += board.PopCount(pos.Bishops&own) * pieceValue[board.Bishop]
	score += board.PopCount(pos.Rooks&own) * pieceValue[board.Rook]
	score += board.PopCount(pos.Queens&own) * pieceValue[board.Queen]
	score += board.PopCount(pos.Kings&own) * pieceValue[board.King]
	return score
}

// nonPawnNonKingMaterial totals piece values excluding pawns and kings,
// across both sides, used only by the endgame switch.
func nonPawnNonKingMaterial(pos *board.Position) int {
	return board.PopCount(pos.Knights)*pieceValue[board.Knight] +
		board.PopCount(pos.Bishops)*pieceValue[board.Bishop] +
		board.PopCount(pos.Rooks)*pieceValue[board.Rook] +
		board.PopCount(pos.Queens)*pieceValue[board.Queen]
}

func isEndgame(pos *board.Position) bool {
	return nonPawnNonKingMaterial(pos) < nonPawnNonKingEndgameThreshold
}

func pstScore(pos *board.Position, side board.Color, endgame bool) int {
	var own = pos.PiecesByColor(side)
	var score = 0
	for _, pieceType := range [...]int{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen, board.King} {
		for bb := pos.PieceBitboard(pieceType, side) & own; bb != 0; bb &= bb - 1 {
			var sq = board.FirstOne(bb)
			score += pstValue(pieceType, sq, side, endgame)
		}
	}
	return score
}

// pawnStructureScore charges doubled and isolated pawns and rewards passed
// pawns, all measured from side's own pawns.
func pawnStructureScore(pos *board.Position, side board.Color) int {
	var pawns = pos.Pawns & pos.PiecesByColor(side)
	var enemyPawns = pos.Pawns & pos.PiecesByColor(side.Opposite())
	var score = 0

	for file := 0; file < 8; file++ {
		var onFile = board.PopCount(pawns & board.FileMask[file])
		if onFile > 1 {
			score -= (onFile - 1) * 10
		}
	}

	for bb := pawns; bb != 0; bb &= bb - 1 {
		var sq = board.FirstOne(bb)
		var file = board.File(sq)
		var adjacent board.Bitboard
		if file > board.FileA {
			adjacent |= board.FileMask[file-1]
		}
		if file < board.FileH {
			adjacent |= board.FileMask[file+1]
		}
		if pawns&adjacent == 0 {
			score -= 15
		}
		if isPassedPawn(sq, side, enemyPawns) {
			var r = advancedRank(sq, side)
			score += 10 + 5*r*r
		}
	}

	return score
}

// advancedRank returns how many ranks a pawn has advanced from its own
// side, in [1,6] since pawns never occupy the back ranks.
func advancedRank(sq int, side board.Color) int {
	if side == board.White {
		return board.Rank(sq)
	}
	return 7 - board.Rank(sq)
}

// isPassedPawn reports whether no enemy pawn occupies sq's file or an
// adjacent file strictly ahead of sq (toward promotion).
func isPassedPawn(sq int, side board.Color, enemyPawns board.Bitboard) bool {
	var file = board.File(sq)
	var span board.Bitboard
	for f := file - 1; f <= file+1; f++ {
		if f < board.FileA || f > board.FileH {
			continue
		}
		span |= board.FileMask[f]
	}
	return enemyPawns&span&aheadMask(sq, side) == 0
}

// aheadMask returns every square strictly ahead of sq toward promotion,
// via UpFill/DownFill rather than a precomputed table, matching the
// teacher's fill-based idiom for passed-pawn spans.
func aheadMask(sq int, side board.Color) board.Bitboard {
	if side == board.White {
		return board.UpFill(board.Up(board.SquareMask[sq]))
	}
	return board.DownFill(board.Down(board.SquareMask[sq]))
}

func mobilityScore(pos *board.Position, side board.Color, own, occ board.Bitboard) int {
	var score = 0
	for bb := pos.Knights & own; bb != 0; bb &= bb - 1 {
		var sq = board.FirstOne(bb)
		score += 4 * board.PopCount(board.KnightAttacks[sq]&^own)
	}
	for bb := pos.Bishops & own; bb != 0; bb &= bb - 1 {
		var sq = board.FirstOne(bb)
		score += 3 * board.PopCount(board.BishopAttacks(sq, occ)&^own)
	}
	return score
}

func kingSafetyScore(pos *board.Position, side board.Color, own board.Bitboard) int {
	var pawns = pos.Pawns & own
	var kingSq = pos.KingSquare(side)
	var score = 0

	score += 10 * board.PopCount(board.KingAttacks[kingSq]&pawns)

	var kingFile = board.File(kingSq)
	for file := kingFile - 1; file <= kingFile+1; file++ {
		if file < board.FileA || file > board.FileH {
			continue
		}
		if pawns&board.FileMask[file] == 0 {
			score -= 20
		}
	}

	return score
}

func centerControlScore(pos *board.Position, side board.Color, own, occ board.Bitboard) int {
	var score = 0
	score += 15 * board.PopCount(centerSquares&own)

	var attacked board.Bitboard
	for bb := pos.Knights & own; bb != 0; bb &= bb - 1 {
		attacked |= board.KnightAttacks[board.FirstOne(bb)]
	}
	for bb := pos.Bishops & own; bb != 0; bb &= bb - 1 {
		attacked |= board.BishopAttacks(board.FirstOne(bb), occ)
	}
	for bb := pos.Rooks & own; bb != 0; bb &= bb - 1 {
		attacked |= board.RookAttacks(board.FirstOne(bb), occ)
	}
	for bb := pos.Queens & own; bb != 0; bb &= bb - 1 {
		attacked |= board.QueenAttacks(board.FirstOne(bb), occ)
	}
	attacked |= board.KingAttacks[pos.KingSquare(side)]
	var pawns = pos.Pawns & own
	if side == board.White {
		attacked |= board.AllWhitePawnAttacks(pawns)
	} else {
		attacked |= board.AllBlackPawnAttacks(pawns)
	}
	score += 10 * board.PopCount(centerSquares&attacked)

	return score
}
