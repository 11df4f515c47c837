package board

// Move is a 16-bit encoded chess move:
//
//	bits 0-5   from square
//	bits 6-11  to square
//	bits 12-13 promotion piece (0=queen, 1=rook, 2=bishop, 3=knight)
//	bits 14-15 move type (0=normal, 1=promotion, 2=en-passant, 3=castling)
//
// The all-zero value is the null move. Moves are value-typed and cheap to
// copy, pass, and compare.
type Move uint16

const MoveNull Move = 0

// Move types.
const (
	MoveNormal = iota
	MovePromotion
	MoveEnPassant
	MoveCastling
)

// Promotion piece codes, as packed into bits 12-13.
const (
	PromoQueen = iota
	PromoRook
	PromoBishop
	PromoKnight
)

func NewMove(from, to, moveType, promo int) Move {
	return Move(from | (to << 6) | (promo << 12) | (moveType << 14))
}

func (m Move) From() int { return int(m & 0x3f) }
func (m Move) To() int   { return int((m >> 6) & 0x3f) }
func (m Move) Type() int { return int((m >> 14) & 3) }

// PromotionCode returns the raw 2-bit promotion field regardless of move
// type; callers normally gate on Type() == MovePromotion first.
func (m Move) PromotionCode() int { return int((m >> 12) & 3) }

// PromotionPiece returns the promoted-to piece type, or Empty if this is
// not a promotion.
func (m Move) PromotionPiece() int {
	if m.Type() != MovePromotion {
		return Empty
	}
	switch m.PromotionCode() {
	case PromoRook:
		return Rook
	case PromoBishop:
		return Bishop
	case PromoKnight:
		return Knight
	default:
		return Queen
	}
}

func promoCodeForPiece(piece int) int {
	switch piece {
	case Rook:
		return PromoRook
	case Bishop:
		return PromoBishop
	case Knight:
		return PromoKnight
	default:
		return PromoQueen
	}
}

func (m Move) IsNull() bool {
	return m == MoveNull
}
