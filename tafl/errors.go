package tafl

import "errors"

// Board lifecycle errors.
var (
	ErrInvalidBoardSize = errors.New("unsupported board size")
	ErrAlreadyAllocated = errors.New("board already allocated")
)

// Move rejection reasons, in the order the validator applies them.
var (
	ErrOutOfBounds           = errors.New("position out of bounds")
	ErrWrongOwner            = errors.New("piece not owned by the moving side")
	ErrZeroLengthMove        = errors.New("move must change position")
	ErrNonOrthogonalMove     = errors.New("move must be horizontal or vertical")
	ErrPathBlocked           = errors.New("path is blocked")
	ErrDestinationOccupied   = errors.New("destination is occupied")
	ErrRestrictedDestination = errors.New("only the king may stop on fortress or castle cells")
)

// Session errors.
var (
	ErrNotYourTurn  = errors.New("not this side's turn")
	ErrGameFinished = errors.New("game is already finished")
	ErrNoKing       = errors.New("board has no king")
)
