package board

import "strings"

// ToUCI renders m as four or five lowercase algebraic characters: origin,
// destination, and an optional promotion-piece letter. The null move
// renders as "0000".
func ToUCI(m Move) string {
	if m.IsNull() {
		return "0000"
	}
	var s = SquareName(m.From()) + SquareName(m.To())
	if m.Type() == MovePromotion {
		s += string("qrbn"[m.PromotionCode()])
	}
	return s
}

// FromUCI parses a 4- or 5-character UCI move against pos, to recover the
// move type UCI itself cannot express: a king's two-square step from its
// home square becomes MoveCastling, and a pawn moving diagonally onto the
// en-passant square becomes MoveEnPassant. Every other move is
// MoveNormal or MovePromotion. It does not check legality; callers
// wanting that should confirm membership in GenerateLegalMoves.
func FromUCI(pos *Position, s string) (Move, error) {
	if s == "0000" {
		return MoveNull, nil
	}
	if len(s) != 4 && len(s) != 5 {
		return MoveNull, ErrParse
	}
	var from = ParseSquare(s[0:2])
	var to = ParseSquare(s[2:4])
	if from == SquareNone || to == SquareNone {
		return MoveNull, ErrParse
	}

	if len(s) == 5 {
		var code int
		switch s[4] {
		case 'q':
			code = PromoQueen
		case 'r':
			code = PromoRook
		case 'b':
			code = PromoBishop
		case 'n':
			code = PromoKnight
		default:
			return MoveNull, ErrParse
		}
		return NewMove(from, to, MovePromotion, code), nil
	}

	var movingPiece = pos.PieceTypeAt(from)
	if movingPiece == King && (from == SquareE1 || from == SquareE8) {
		if to == from+2 || to == from-2 {
			return NewMove(from, to, MoveCastling, 0), nil
		}
	}
	if movingPiece == Pawn && to == pos.EpSquare && pos.EpSquare != SquareNone {
		return NewMove(from, to, MoveEnPassant, 0), nil
	}
	return NewMove(from, to, MoveNormal, 0), nil
}

const sanPieceLetters = "NBRQK"

// ToSAN renders m as Standard Algebraic Notation relative to pos: a piece
// letter (omitted for pawns), minimal file/rank disambiguation among
// other legal moves of the same piece type to the same square, "x" for
// captures, the destination square, a promotion suffix, and a trailing
// "+" or "#" if the resulting position leaves the opponent in check or
// checkmate. Castling renders as "O-O" or "O-O-O".
func ToSAN(pos *Position, m Move) string {
	if m.Type() == MoveCastling {
		var san = "O-O"
		if File(m.To()) == FileC {
			san = "O-O-O"
		}
		return san + checkSuffix(pos, m)
	}

	var from, to = m.From(), m.To()
	var movingPiece = pos.PieceTypeAt(from)
	var isCapture = m.Type() == MoveEnPassant
	if !isCapture {
		if _, _, ok := pos.PieceTypeAndColor(to); ok {
			isCapture = true
		}
	}

	var pieceLetter string
	if movingPiece != Pawn {
		pieceLetter = string(sanPieceLetters[movingPiece-Knight])
	}

	var disambiguator string
	if movingPiece == Pawn {
		if isCapture {
			disambiguator = SquareName(from)[:1]
		}
	} else {
		disambiguator = sanDisambiguator(pos, m, movingPiece)
	}

	var captureMark string
	if isCapture {
		captureMark = "x"
	}

	var promotion string
	if m.Type() == MovePromotion {
		promotion = "=" + string(sanPieceLetters[m.PromotionPiece()-Knight])
	}

	var san = pieceLetter + disambiguator + captureMark + SquareName(to) + promotion
	return san + checkSuffix(pos, m)
}

// sanDisambiguator returns the minimal file/rank prefix distinguishing m
// from every other legal move of the same piece type to the same
// destination. Every such move is considered, not just the first found.
func sanDisambiguator(pos *Position, m Move, movingPiece int) string {
	var from, to = m.From(), m.To()
	var ambiguous, uniqueFile, uniqueRank = false, true, true
	for _, other := range GenerateLegalMoves(pos) {
		if other.From() == from || other.To() != to {
			continue
		}
		if pos.PieceTypeAt(other.From()) != movingPiece {
			continue
		}
		ambiguous = true
		if File(other.From()) == File(from) {
			uniqueFile = false
		}
		if Rank(other.From()) == Rank(from) {
			uniqueRank = false
		}
	}
	if !ambiguous {
		return ""
	}
	switch {
	case uniqueFile:
		return SquareName(from)[:1]
	case uniqueRank:
		return SquareName(from)[1:2]
	default:
		return SquareName(from)
	}
}

func checkSuffix(pos *Position, m Move) string {
	var next, ok = pos.MakeMove(m)
	if !ok || next.Checkers == 0 {
		return ""
	}
	if len(GenerateLegalMoves(&next)) == 0 {
		return "#"
	}
	return "+"
}

// ParseSAN resolves a SAN token (optionally carrying a trailing "+", "#",
// "!" or "?" annotation) against pos by rendering every legal move to SAN
// and matching the stripped text. It returns ErrIllegalMove if no legal
// move matches and ErrAmbiguousMove if more than one does — the latter
// should not occur for well-formed SAN produced by ToSAN, but can arise
// from hand-written or truncated input.
func ParseSAN(pos *Position, san string) (Move, error) {
	san = strings.TrimRight(san, "+#!?")

	var legal = GenerateLegalMoves(pos)
	var match = MoveNull
	var matches = 0
	for _, m := range legal {
		if stripCheckSuffix(ToSAN(pos, m)) == san {
			match = m
			matches++
		}
	}
	switch matches {
	case 0:
		return MoveNull, ErrIllegalMove
	case 1:
		return match, nil
	default:
		return MoveNull, ErrAmbiguousMove
	}
}

func stripCheckSuffix(san string) string {
	return strings.TrimRight(san, "+#")
}
