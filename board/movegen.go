package board

// Pseudo-legal move generation: per-piece bitboard loops that obey shape
// rules but may leave the mover's own king in check. The legal filter
// below discards those that do. Generators append into a caller-owned
// buffer sized MaxMoves so callers (principally search) never pay for a
// reallocation, matching the spec's "reserve >= 256 up front" guidance.

const (
	f1g1Mask Bitboard = (1 << SquareF1) | (1 << SquareG1)
	b1d1Mask Bitboard = (1 << SquareB1) | (1 << SquareC1) | (1 << SquareD1)
	f8g8Mask Bitboard = (1 << SquareF8) | (1 << SquareG8)
	b8d8Mask Bitboard = (1 << SquareB8) | (1 << SquareC8) | (1 << SquareD8)
)

func appendPromotions(ml []Move, from, to int) []Move {
	return append(ml,
		NewMove(from, to, MovePromotion, PromoQueen),
		NewMove(from, to, MovePromotion, PromoRook),
		NewMove(from, to, MovePromotion, PromoBishop),
		NewMove(from, to, MovePromotion, PromoKnight),
	)
}

// GenerateMoves appends every pseudo-legal move in p to buffer and returns
// the extended slice.
func GenerateMoves(buffer []Move, p *Position) []Move {
	return generateMoves(buffer, p, true, true)
}

// GenerateQuiet appends every pseudo-legal non-capturing move.
func GenerateQuiet(buffer []Move, p *Position) []Move {
	return generateMoves(buffer, p, false, true)
}

// GenerateCapturesOnly appends every pseudo-legal capturing move
// (including en-passant); no quiet moves.
func GenerateCapturesOnly(buffer []Move, p *Position) []Move {
	return generateMoves(buffer, p, true, false)
}

func generateMoves(ml []Move, p *Position, wantCaptures, wantQuiet bool) []Move {
	var mover = p.SideToMove
	var ownPieces = p.PiecesByColor(mover)
	var oppPieces = p.PiecesByColor(mover.Opposite())
	var allPieces = p.Occupied()

	// unrestrictedTarget covers every square a piece could move to for the
	// requested capture/quiet mix, with no regard to check. The king and
	// the pawn generator (which the teacher never restricts here either)
	// use this directly and rely on the legal filter (MakeMove's
	// self-check test) to reject responses that don't address a check.
	var unrestrictedTarget Bitboard
	if wantCaptures {
		unrestrictedTarget |= oppPieces
	}
	if wantQuiet {
		unrestrictedTarget |= ^allPieces
	}

	// target additionally restricts non-king pieces to capturing the
	// checking piece or interposing on the checking ray, when in check.
	// This is a pure optimization: it narrows pseudo-legal generation to
	// moves that could possibly be legal, but every move it still emits
	// goes through the same self-check legal filter.
	var target = unrestrictedTarget
	if p.Checkers != 0 {
		var checkerSq = FirstOne(p.Checkers)
		var kingSq = p.KingSquare(mover)
		target &= p.Checkers | Between(checkerSq, kingSq)
	}

	ml = genPawnMoves(ml, p, mover, ownPieces, oppPieces, allPieces, wantCaptures, wantQuiet, unrestrictedTarget)
	ml = genPieceMoves(ml, Knight, KnightAttacks[:], p.Knights&ownPieces, allPieces, target)
	ml = genSliderMoves(ml, Bishop, p.Bishops&ownPieces, allPieces, target)
	ml = genSliderMoves(ml, Rook, p.Rooks&ownPieces, allPieces, target)
	ml = genSliderMoves(ml, Queen, p.Queens&ownPieces, allPieces, target)

	var kingSq = p.KingSquare(mover)
	for toBB := KingAttacks[kingSq] &^ ownPieces & unrestrictedTarget; toBB != 0; toBB &= toBB - 1 {
		ml = append(ml, NewMove(kingSq, FirstOne(toBB), MoveNormal, 0))
	}

	if wantQuiet {
		ml = genCastling(ml, p, mover, allPieces)
	}

	return ml
}

func genPieceMoves(ml []Move, pieceType int, attacks []Bitboard, fromBB Bitboard, allPieces, target Bitboard) []Move {
	for ; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := attacks[from] & target; toBB != 0; toBB &= toBB - 1 {
			ml = append(ml, NewMove(from, FirstOne(toBB), MoveNormal, 0))
		}
	}
	return ml
}

func genSliderMoves(ml []Move, pieceType int, fromBB Bitboard, allPieces, target Bitboard) []Move {
	for ; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		var attacks Bitboard
		switch pieceType {
		case Bishop:
			attacks = BishopAttacks(from, allPieces)
		case Rook:
			attacks = RookAttacks(from, allPieces)
		case Queen:
			attacks = QueenAttacks(from, allPieces)
		}
		for toBB := attacks & target; toBB != 0; toBB &= toBB - 1 {
			ml = append(ml, NewMove(from, FirstOne(toBB), MoveNormal, 0))
		}
	}
	return ml
}

func genPawnMoves(ml []Move, p *Position, mover Color, ownPieces, oppPieces, allPieces Bitboard, wantCaptures, wantQuiet bool, target Bitboard) []Move {
	var forward = 8
	var homeRank, seventhRank = Rank2, Rank7
	if mover == Black {
		forward = -8
		homeRank, seventhRank = Rank7, Rank2
	}

	var ownPawns = p.Pawns & ownPieces

	if wantCaptures && p.EpSquare != SquareNone {
		for fromBB := PawnAttacks(p.EpSquare, mover.Opposite()) & ownPawns; fromBB != 0; fromBB &= fromBB - 1 {
			var from = FirstOne(fromBB)
			ml = append(ml, NewMove(from, p.EpSquare, MoveEnPassant, 0))
		}
	}

	for fromBB := ownPawns &^ RankMask[seventhRank]; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		if wantQuiet {
			var one = from + forward
			if SquareMask[one]&allPieces == 0 {
				if target&SquareMask[one] != 0 {
					ml = append(ml, NewMove(from, one, MoveNormal, 0))
				}
				if Rank(from) == homeRank {
					var two = one + forward
					if SquareMask[two]&allPieces == 0 && target&SquareMask[two] != 0 {
						ml = append(ml, NewMove(from, two, MoveNormal, 0))
					}
				}
			}
		}
		if wantCaptures {
			for _, to := range pawnCaptureSquares(from, mover) {
				if to >= 0 && SquareMask[to]&oppPieces != 0 && target&SquareMask[to] != 0 {
					ml = append(ml, NewMove(from, to, MoveNormal, 0))
				}
			}
		}
	}

	for fromBB := ownPawns & RankMask[seventhRank]; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		var one = from + forward
		if wantQuiet && SquareMask[one]&allPieces == 0 && target&SquareMask[one] != 0 {
			ml = appendPromotions(ml, from, one)
		}
		if wantCaptures {
			for _, to := range pawnCaptureSquares(from, mover) {
				if to >= 0 && SquareMask[to]&oppPieces != 0 && target&SquareMask[to] != 0 {
					ml = appendPromotions(ml, from, to)
				}
			}
		}
	}

	return ml
}

// pawnCaptureSquares returns the (up to two) diagonal capture targets for
// a pawn of color `mover` on `from`, or -1 for an off-board direction.
func pawnCaptureSquares(from int, mover Color) [2]int {
	var left, right = -1, -1
	var forward = 8
	if mover == Black {
		forward = -8
	}
	if File(from) > FileA {
		left = from + forward - 1
	}
	if File(from) < FileH {
		right = from + forward + 1
	}
	return [2]int{left, right}
}

func genCastling(ml []Move, p *Position, mover Color, allPieces Bitboard) []Move {
	if p.Checkers != 0 {
		return ml
	}
	var enemy = mover.Opposite()
	if mover == White {
		if p.CastleRights&WhiteKingSide != 0 &&
			allPieces&f1g1Mask == 0 &&
			!p.IsSquareAttacked(SquareE1, enemy) &&
			!p.IsSquareAttacked(SquareF1, enemy) &&
			!p.IsSquareAttacked(SquareG1, enemy) {
			ml = append(ml, NewMove(SquareE1, SquareG1, MoveCastling, 0))
		}
		if p.CastleRights&WhiteQueenSide != 0 &&
			allPieces&b1d1Mask == 0 &&
			!p.IsSquareAttacked(SquareE1, enemy) &&
			!p.IsSquareAttacked(SquareD1, enemy) &&
			!p.IsSquareAttacked(SquareC1, enemy) {
			ml = append(ml, NewMove(SquareE1, SquareC1, MoveCastling, 0))
		}
	} else {
		if p.CastleRights&BlackKingSide != 0 &&
			allPieces&f8g8Mask == 0 &&
			!p.IsSquareAttacked(SquareE8, enemy) &&
			!p.IsSquareAttacked(SquareF8, enemy) &&
			!p.IsSquareAttacked(SquareG8, enemy) {
			ml = append(ml, NewMove(SquareE8, SquareG8, MoveCastling, 0))
		}
		if p.CastleRights&BlackQueenSide != 0 &&
			allPieces&b8d8Mask == 0 &&
			!p.IsSquareAttacked(SquareE8, enemy) &&
			!p.IsSquareAttacked(SquareD8, enemy) &&
			!p.IsSquareAttacked(SquareC8, enemy) {
			ml = append(ml, NewMove(SquareE8, SquareC8, MoveCastling, 0))
		}
	}
	return ml
}

// GenerateLegalMoves returns every legal move in p: pseudo-legal moves
// that do not leave the mover's own king in check after MakeMove.
func GenerateLegalMoves(p *Position) []Move {
	var buffer [MaxMoves]Move
	var pseudo = GenerateMoves(buffer[:0], p)
	var legal = make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if _, ok := p.MakeMove(m); ok {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsLegal reports whether m, applied to p, leaves the mover's own king
// safe. It does not check that m is shape-reachable in p; callers needing
// that must check membership in GenerateLegalMoves.
func IsLegal(p *Position, m Move) bool {
	_, ok := p.MakeMove(m)
	return ok
}
