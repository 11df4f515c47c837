package board

// castleMask[sq] is the set of castling rights that survive a move
// touching sq, either as origin or destination: moving the king off its
// home square clears both of that side's rights; moving a rook off (or a
// capture landing on) a corner clears that corner's right.
var castleMask [64]int

func init() {
	for i := range castleMask {
		castleMask[i] = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
	}
	castleMask[SquareA1] &^= WhiteQueenSide
	castleMask[SquareE1] &^= WhiteQueenSide | WhiteKingSide
	castleMask[SquareH1] &^= WhiteKingSide
	castleMask[SquareA8] &^= BlackQueenSide
	castleMask[SquareE8] &^= BlackQueenSide | BlackKingSide
	castleMask[SquareH8] &^= BlackKingSide
}

func (p *Position) xorPiece(pieceType int, side Color, sq int) {
	var bb = SquareMask[sq]
	if side == White {
		p.White ^= bb
	} else {
		p.Black ^= bb
	}
	switch pieceType {
	case Pawn:
		p.Pawns ^= bb
	case Knight:
		p.Knights ^= bb
	case Bishop:
		p.Bishops ^= bb
	case Rook:
		p.Rooks ^= bb
	case Queen:
		p.Queens ^= bb
	case King:
		p.Kings ^= bb
	}
	p.Key ^= PieceSquareKey(pieceType, side, sq)
}

func (p *Position) movePieceSquares(pieceType int, side Color, from, to int) {
	p.xorPiece(pieceType, side, from)
	p.xorPiece(pieceType, side, to)
}

// MakeMove applies m to p and returns the resulting position together with
// whether that position is legal (the mover's own king is not left in
// check). It does not verify that m is shape-reachable in p; the move
// generator and IsLegal are responsible for only ever presenting moves
// produced by (or vetted against) generation.
func (p *Position) MakeMove(m Move) (Position, bool) {
	var result = *p
	var mover = p.SideToMove
	var from = m.From()
	var to = m.To()
	var movingPiece = p.PieceTypeAt(from)

	result.Key ^= sideKey

	// 1. Remove the mover from `from`; remove a captured enemy piece on
	// `to` for normal captures (en-passant and castling handle the board
	// differently below).
	result.xorPiece(movingPiece, mover, from)

	var isCapture = false
	if m.Type() != MoveCastling {
		if capturedType, capturedSide, ok := p.PieceTypeAndColor(to); ok && capturedSide != mover {
			result.xorPiece(capturedType, capturedSide, to)
			isCapture = true
		}
	}

	// 2. Move-type-specific placement.
	switch m.Type() {
	case MoveEnPassant:
		result.xorPiece(Pawn, mover, to)
		var capturedSq = to - 8
		if mover == Black {
			capturedSq = to + 8
		}
		result.xorPiece(Pawn, mover.Opposite(), capturedSq)
		isCapture = true
	case MovePromotion:
		result.xorPiece(m.PromotionPiece(), mover, to)
	case MoveCastling:
		result.xorPiece(King, mover, to)
		if mover == White {
			if to == SquareG1 {
				result.movePieceSquares(Rook, White, SquareH1, SquareF1)
			} else {
				result.movePieceSquares(Rook, White, SquareA1, SquareD1)
			}
		} else {
			if to == SquareG8 {
				result.movePieceSquares(Rook, Black, SquareH8, SquareF8)
			} else {
				result.movePieceSquares(Rook, Black, SquareA8, SquareD8)
			}
		}
	default:
		result.xorPiece(movingPiece, mover, to)
	}

	// 3. Halfmove clock.
	if movingPiece == Pawn || isCapture {
		result.HalfmoveClock = 0
	} else {
		result.HalfmoveClock++
	}

	// 4. Castling rights.
	result.CastleRights = p.CastleRights & castleMask[from] & castleMask[to]
	result.Key ^= castlingKey[result.CastleRights] ^ castlingKey[p.CastleRights]

	// 5. En-passant square.
	if p.EpSquare != SquareNone {
		result.Key ^= enPassantKey[File(p.EpSquare)]
	}
	result.EpSquare = SquareNone
	if movingPiece == Pawn {
		if mover == White && to-from == 16 {
			result.EpSquare = from + 8
			result.Key ^= enPassantKey[File(result.EpSquare)]
		} else if mover == Black && from-to == 16 {
			result.EpSquare = from - 8
			result.Key ^= enPassantKey[File(result.EpSquare)]
		}
	}

	// 6. Flip side to move; bump fullmove number after Black's move.
	result.SideToMove = mover.Opposite()
	if mover == Black {
		result.FullmoveNumber = p.FullmoveNumber + 1
	}

	// 7. Hash already maintained incrementally above.

	result.Checkers = result.computeCheckers()

	var legal = !result.IsSquareAttacked(result.KingSquare(mover), result.SideToMove)
	return result, legal
}

// MakeNullMove returns the position with side to move flipped and no
// piece moved. Used by search variants that probe a null move; never
// produced by the move generator.
func (p *Position) MakeNullMove() Position {
	var result = *p
	result.HalfmoveClock = p.HalfmoveClock + 1
	result.Key ^= sideKey
	if p.EpSquare != SquareNone {
		result.Key ^= enPassantKey[File(p.EpSquare)]
	}
	result.EpSquare = SquareNone
	result.SideToMove = p.SideToMove.Opposite()
	if p.SideToMove == Black {
		result.FullmoveNumber = p.FullmoveNumber + 1
	}
	result.Checkers = 0
	return result
}
