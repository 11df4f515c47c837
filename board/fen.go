package board

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// FromFEN parses the six space-separated FEN fields: board, active color,
// castling rights, en-passant target, halfmove clock, fullmove number.
// It fails on a malformed board, an unknown piece character, out-of-range
// counts, or invalid side/castling/en-passant tokens.
func FromFEN(fen string) (Position, error) {
	var tokens = strings.Fields(fen)
	if len(tokens) < 4 {
		return Position{}, fmt.Errorf("%w: fen %q has fewer than 4 fields", ErrParse, fen)
	}

	var p Position

	var ranks = strings.Split(tokens[0], "/")
	if len(ranks) != 8 {
		return Position{}, fmt.Errorf("%w: fen board %q does not have 8 ranks", ErrParse, tokens[0])
	}
	for i, rankStr := range ranks {
		var rank = 7 - i
		var file = 0
		for _, ch := range rankStr {
			switch {
			case unicode.IsDigit(ch):
				file += int(ch - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", ch):
				if file > 7 {
					return Position{}, fmt.Errorf("%w: fen board rank %q overflows 8 files", ErrParse, rankStr)
				}
				var pieceType, side = pieceFromChar(ch)
				var sq = MakeSquare(file, rank)
				p.xorPiece(pieceType, side, sq)
				file++
			default:
				return Position{}, fmt.Errorf("%w: fen board has unknown character %q", ErrParse, string(ch))
			}
		}
		if file != 8 {
			return Position{}, fmt.Errorf("%w: fen board rank %q does not cover 8 files", ErrParse, rankStr)
		}
	}

	switch tokens[1] {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
	default:
		return Position{}, fmt.Errorf("%w: fen active color %q must be w or b", ErrParse, tokens[1])
	}

	if tokens[2] != "-" {
		for _, ch := range tokens[2] {
			switch ch {
			case 'K':
				p.CastleRights |= WhiteKingSide
			case 'Q':
				p.CastleRights |= WhiteQueenSide
			case 'k':
				p.CastleRights |= BlackKingSide
			case 'q':
				p.CastleRights |= BlackQueenSide
			default:
				return Position{}, fmt.Errorf("%w: fen castling rights %q has unknown character %q", ErrParse, tokens[2], string(ch))
			}
		}
	}

	p.EpSquare = ParseSquare(tokens[3])
	if tokens[3] != "-" && p.EpSquare == SquareNone {
		return Position{}, fmt.Errorf("%w: fen en-passant target %q is not a valid square", ErrParse, tokens[3])
	}

	if len(tokens) > 4 {
		var n, err = strconv.Atoi(tokens[4])
		if err != nil || n < 0 {
			return Position{}, fmt.Errorf("%w: fen halfmove clock %q must be a non-negative integer", ErrParse, tokens[4])
		}
		p.HalfmoveClock = n
	}

	p.FullmoveNumber = 1
	if len(tokens) > 5 {
		var n, err = strconv.Atoi(tokens[5])
		if err != nil || n < 1 {
			return Position{}, fmt.Errorf("%w: fen fullmove number %q must be a positive integer", ErrParse, tokens[5])
		}
		p.FullmoveNumber = n
	}

	if err := p.validate(); err != nil {
		return Position{}, fmt.Errorf("%w: fen %q describes an illegal position: %v", ErrParse, fen, err)
	}

	p.Key = p.computeKey()
	p.Checkers = p.computeCheckers()
	return p, nil
}

// validate checks the invariants from the data model: exactly one king per
// color, no pawns on the back ranks, castling rights only where king and
// rook are on their home squares, en-passant square on the correct rank.
func (p *Position) validate() error {
	if PopCount(p.Kings&p.White) != 1 || PopCount(p.Kings&p.Black) != 1 {
		return fmt.Errorf("must have exactly one king per color")
	}
	if p.Pawns&(Rank1Mask|Rank8Mask) != 0 {
		return fmt.Errorf("pawns cannot occupy rank 1 or rank 8")
	}
	if p.CastleRights&WhiteKingSide != 0 && (p.Kings&p.White&SquareMask[SquareE1] == 0 || p.Rooks&p.White&SquareMask[SquareH1] == 0) {
		return fmt.Errorf("white kingside castling right requires king on e1 and rook on h1")
	}
	if p.CastleRights&WhiteQueenSide != 0 && (p.Kings&p.White&SquareMask[SquareE1] == 0 || p.Rooks&p.White&SquareMask[SquareA1] == 0) {
		return fmt.Errorf("white queenside castling right requires king on e1 and rook on a1")
	}
	if p.CastleRights&BlackKingSide != 0 && (p.Kings&p.Black&SquareMask[SquareE8] == 0 || p.Rooks&p.Black&SquareMask[SquareH8] == 0) {
		return fmt.Errorf("black kingside castling right requires king on e8 and rook on h8")
	}
	if p.CastleRights&BlackQueenSide != 0 && (p.Kings&p.Black&SquareMask[SquareE8] == 0 || p.Rooks&p.Black&SquareMask[SquareA8] == 0) {
		return fmt.Errorf("black queenside castling right requires king on e8 and rook on a8")
	}
	if p.EpSquare != SquareNone {
		var wantRank = Rank3
		if p.SideToMove == White {
			wantRank = Rank6
		}
		if Rank(p.EpSquare) != wantRank {
			return fmt.Errorf("en-passant square must be on the rank behind the side to move's pawns")
		}
	}
	return nil
}

func pieceFromChar(ch rune) (pieceType int, side Color) {
	side = White
	if unicode.IsLower(ch) {
		side = Black
	}
	switch unicode.ToLower(ch) {
	case 'p':
		return Pawn, side
	case 'n':
		return Knight, side
	case 'b':
		return Bishop, side
	case 'r':
		return Rook, side
	case 'q':
		return Queen, side
	case 'k':
		return King, side
	}
	return Empty, side
}

func pieceToChar(pieceType int, side Color) byte {
	var ch = "pnbrqk"[pieceType-Pawn]
	if side == White {
		ch = byte(unicode.ToUpper(rune(ch)))
	}
	return ch
}

// String renders the position as FEN. FromFEN(p.String()) always yields a
// position equal to p.
func (p *Position) String() string {
	var sb bytes.Buffer

	for rank := 7; rank >= 0; rank-- {
		var empty = 0
		for file := 0; file < 8; file++ {
			var sq = MakeSquare(file, rank)
			var pieceType, side, ok = p.PieceTypeAndColor(sq)
			if !ok {
				empty++
				continue
			}
			if empty != 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pieceToChar(pieceType, side))
		}
		if empty != 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank != 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if p.CastleRights == 0 {
		sb.WriteByte('-')
	} else {
		if p.CastleRights&WhiteKingSide != 0 {
			sb.WriteByte('K')
		}
		if p.CastleRights&WhiteQueenSide != 0 {
			sb.WriteByte('Q')
		}
		if p.CastleRights&BlackKingSide != 0 {
			sb.WriteByte('k')
		}
		if p.CastleRights&BlackQueenSide != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if p.EpSquare == SquareNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(SquareName(p.EpSquare))
	}

	fmt.Fprintf(&sb, " %d %d", p.HalfmoveClock, p.FullmoveNumber)

	return sb.String()
}
