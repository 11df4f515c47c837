package board

import "errors"

// Error kinds for parsing and move-application failures, per the error
// handling design: parsers and converters return structured failures to
// their callers, wrapped with context via fmt.Errorf and %w.
var (
	// ErrParse marks malformed FEN, UCI, SAN, or PGN input.
	ErrParse = errors.New("parse error")
	// ErrAmbiguousMove marks a SAN string matching more than one legal move.
	ErrAmbiguousMove = errors.New("ambiguous move")
	// ErrIllegalMove marks a SAN or UCI string matching zero legal moves.
	ErrIllegalMove = errors.New("illegal move")
	// ErrInternalInvariant marks a violation of a documented board
	// invariant (e.g. no king of the required color). Non-recoverable;
	// callers that reach this have a position that was never legal.
	ErrInternalInvariant = errors.New("internal invariant violated")
)
