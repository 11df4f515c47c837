// Package explain generates natural-language move explanations and
// detects a small, mechanically identifiable subset of tactical themes.
// It is an external collaborator of board and eval: it reads positions
// and moves but never feeds back into search or generation.
package explain

import (
	"fmt"
	"strings"

	"github.com/kestrelchess/analyzer/board"
)

// ExplainMove describes m's immediate effects (capture, check, castling,
// promotion, pawn push) and appends one positional note (center play,
// development, or king safety) derived from the move itself.
func ExplainMove(pos *board.Position, m board.Move) string {
	var effects []string

	var movingPiece = pos.PieceTypeAt(m.From())
	var isCapture = m.Type() == board.MoveEnPassant
	if !isCapture {
		if _, _, ok := pos.PieceTypeAndColor(m.To()); ok {
			isCapture = true
		}
	}

	switch m.Type() {
	case board.MoveCastling:
		var side = "kingside"
		if board.File(m.To()) == board.FileC {
			side = "queenside"
		}
		effects = append(effects, fmt.Sprintf("castles %s, connecting the rooks and tucking the king away", side))
	case board.MovePromotion:
		var verb = "captures and promotes"
		if !isCapture {
			verb = "pushes and promotes"
		}
		effects = append(effects, fmt.Sprintf("%s to a %s on %s", verb, pieceName(m.PromotionPiece()), board.SquareName(m.To())))
	case board.MoveEnPassant:
		effects = append(effects, fmt.Sprintf("captures en passant on %s", board.SquareName(m.To())))
	default:
		if isCapture {
			effects = append(effects, fmt.Sprintf("%s captures on %s", pieceName(movingPiece), board.SquareName(m.To())))
		} else if movingPiece == board.Pawn {
			effects = append(effects, fmt.Sprintf("pushes the pawn to %s", board.SquareName(m.To())))
		} else {
			effects = append(effects, fmt.Sprintf("moves the %s to %s", pieceName(movingPiece), board.SquareName(m.To())))
		}
	}

	var next, ok = pos.MakeMove(m)
	if ok && next.IsInCheck() {
		if len(board.GenerateLegalMoves(&next)) == 0 {
			effects = append(effects, "delivering checkmate")
		} else {
			effects = append(effects, "giving check")
		}
	}

	var note = positionalNote(pos, m, movingPiece)
	if note != "" {
		effects = append(effects, note)
	}

	return strings.Join(effects, ", ")
}

func pieceName(pieceType int) string {
	switch pieceType {
	case board.Pawn:
		return "pawn"
	case board.Knight:
		return "knight"
	case board.Bishop:
		return "bishop"
	case board.Rook:
		return "rook"
	case board.Queen:
		return "queen"
	case board.King:
		return "king"
	}
	return "piece"
}

var centerSquares = [4]int{board.SquareD4, board.SquareE4, board.SquareD5, board.SquareE5}

// positionalNote picks one of center occupation, development, or king
// safety to comment on, in that priority order, based only on whether
// the move's destination is a center square, whether a knight or bishop
// leaves its back rank, or whether the move is castling.
func positionalNote(pos *board.Position, m board.Move, movingPiece int) string {
	for _, c := range centerSquares {
		if m.To() == c {
			return "claiming a central square"
		}
	}
	if movingPiece == board.Knight || movingPiece == board.Bishop {
		var homeRank = board.Rank1
		if pos.SideToMove == board.Black {
			homeRank = board.Rank8
		}
		if board.Rank(m.From()) == homeRank && board.Rank(m.To()) != homeRank {
			return "developing a piece off the back rank"
		}
	}
	if movingPiece == board.King && m.Type() == board.MoveCastling {
		return "improving king safety"
	}
	return ""
}
