package explain

import "github.com/kestrelchess/analyzer/board"

// Theme names a tactical pattern IdentifyThemes can detect mechanically
// from attack tables, without search. The source's TacticalTheme enum
// names many more (skewer, zugzwang, perpetual check, smothered mate,
// ...); those require search or multi-move lookahead this package does
// not do, so they are not implemented here rather than faked.
type Theme string

const (
	ThemePin              Theme = "pin"
	ThemeFork             Theme = "fork"
	ThemeDiscoveredAttack Theme = "discovered_attack"
	ThemeBackRankMate     Theme = "back_rank_mate"
)

// IdentifyThemes returns every theme this package can detect in pos.
func IdentifyThemes(pos *board.Position) []Theme {
	var themes []Theme
	if hasPin(pos, board.White) || hasPin(pos, board.Black) {
		themes = append(themes, ThemePin)
	}
	if hasFork(pos, board.White) || hasFork(pos, board.Black) {
		themes = append(themes, ThemeFork)
	}
	if hasDiscoveredAttack(pos, board.White) || hasDiscoveredAttack(pos, board.Black) {
		themes = append(themes, ThemeDiscoveredAttack)
	}
	if hasBackRankMateThreat(pos, board.White) || hasBackRankMateThreat(pos, board.Black) {
		themes = append(themes, ThemeBackRankMate)
	}
	return themes
}

// hasPin reports whether any sliding piece of by's color lies on a line
// with the enemy king with exactly one piece between them, and that piece
// is an enemy piece (an absolute pin). Relative pins, where the pinned
// piece shields something other than the king, are not detected.
func hasPin(pos *board.Position, by board.Color) bool {
	var enemy = by.Opposite()
	var enemyKing = pos.KingSquare(enemy)
	var occ = pos.Occupied()

	for _, pt := range [...]int{board.Bishop, board.Rook, board.Queen} {
		for bb := pos.PieceBitboard(pt, by); bb != 0; bb &= bb - 1 {
			var sq = board.FirstOne(bb)
			var rayToKing = rayBetweenOccupants(sq, enemyKing, pt, occ)
			if rayToKing < 0 {
				continue
			}
			if board.Between(sq, enemyKing)&pos.PiecesByColor(enemy) != 0 &&
				board.PopCount(board.Between(sq, enemyKing)&occ) == 1 {
				return true
			}
		}
	}
	return false
}

// rayBetweenOccupants reports the shared-line square count between from
// and king if pt could slide that direction at all (diagonal for bishop,
// orthogonal for rook, either for queen); -1 if from and king share no
// such line.
func rayBetweenOccupants(from, king, pt int, occ board.Bitboard) int {
	var onDiagonal = board.FileDistance(from, king) == board.RankDistance(from, king)
	var onLine = board.File(from) == board.File(king) || board.Rank(from) == board.Rank(king)
	switch pt {
	case board.Bishop:
		if !onDiagonal {
			return -1
		}
	case board.Rook:
		if !onLine {
			return -1
		}
	case board.Queen:
		if !onDiagonal && !onLine {
			return -1
		}
	}
	return board.PopCount(board.Between(from, king))
}

// hasFork reports whether any knight, bishop, rook or queen of by's color
// attacks two or more enemy pieces simultaneously. Pawn and king attacks
// are not considered.
func hasFork(pos *board.Position, by board.Color) bool {
	var enemy = pos.PiecesByColor(by.Opposite())
	var occ = pos.Occupied()

	for bb := pos.Knights & pos.PiecesByColor(by); bb != 0; bb &= bb - 1 {
		var sq = board.FirstOne(bb)
		if board.MoreThanOne(board.KnightAttacks[sq] & enemy) {
			return true
		}
	}
	for _, pt := range [...]int{board.Bishop, board.Rook, board.Queen} {
		for bb := pos.PieceBitboard(pt, by); bb != 0; bb &= bb - 1 {
			var sq = board.FirstOne(bb)
			var attacks = slidingAttacks(pt, sq, occ)
			if board.MoreThanOne(attacks & enemy) {
				return true
			}
		}
	}
	return false
}

func slidingAttacks(pieceType, sq int, occ board.Bitboard) board.Bitboard {
	switch pieceType {
	case board.Bishop:
		return board.BishopAttacks(sq, occ)
	case board.Rook:
		return board.RookAttacks(sq, occ)
	default:
		return board.QueenAttacks(sq, occ)
	}
}

// hasDiscoveredAttack reports whether a sliding piece of by's color would
// attack the enemy king if one specific friendly piece standing between
// them were removed — the classic discovered-check setup, generalized
// here to detect the latent pattern in the current position rather than
// requiring the discovering move to have just been played.
func hasDiscoveredAttack(pos *board.Position, by board.Color) bool {
	var enemy = by.Opposite()
	var enemyKing = pos.KingSquare(enemy)
	var occ = pos.Occupied()

	for _, pt := range [...]int{board.Bishop, board.Rook, board.Queen} {
		for bb := pos.PieceBitboard(pt, by); bb != 0; bb &= bb - 1 {
			var sq = board.FirstOne(bb)
			if rayBetweenOccupants(sq, enemyKing, pt, occ) < 0 {
				continue
			}
			var between = board.Between(sq, enemyKing)
			if board.PopCount(between&occ) == 1 && between&pos.PiecesByColor(by) != 0 {
				return true
			}
		}
	}
	return false
}

// hasBackRankMateThreat reports whether the side not to move for by's
// opponent has its king on the back rank, boxed in by its own pieces,
// with an enemy rook or queen able to reach the back rank.
func hasBackRankMateThreat(pos *board.Position, by board.Color) bool {
	var enemy = by.Opposite()
	var enemyKing = pos.KingSquare(enemy)
	var backRank = board.Rank1
	if enemy == board.Black {
		backRank = board.Rank8
	}
	if board.Rank(enemyKing) != backRank {
		return false
	}

	var occ = pos.Occupied()
	var escapeSquares = board.KingAttacks[enemyKing] &^ pos.PiecesByColor(enemy)
	for bb := escapeSquares; bb != 0; bb &= bb - 1 {
		var sq = board.FirstOne(bb)
		if board.Rank(sq) != backRank {
			return false
		}
	}

	for _, pt := range [...]int{board.Rook, board.Queen} {
		for bb := pos.PieceBitboard(pt, by); bb != 0; bb &= bb - 1 {
			var sq = board.FirstOne(bb)
			if slidingAttacks(pt, sq, occ)&board.RankMask[backRank] != 0 {
				return true
			}
		}
	}
	return false
}
