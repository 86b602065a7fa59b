// Package tafl implements the rules of hnefatafl: board state, move
// legality, custodial captures, king status evaluation, and the turn
// controller that ties them together.
package tafl

// BoardSize is the grid dimension of a board. Only two sizes are played.
type BoardSize int

const (
	SizeSmall BoardSize = 11
	SizeLarge BoardSize = 13
)

// Valid reports whether s is one of the supported board sizes.
func (s BoardSize) Valid() bool {
	return s == SizeSmall || s == SizeLarge
}

// CellKind is the static terrain of a cell. It never changes after the
// board is initialized.
type CellKind uint8

const (
	CellNormal CellKind = iota
	CellFortress
	CellCastle
)

func (k CellKind) String() string {
	switch k {
	case CellNormal:
		return "normal"
	case CellFortress:
		return "fortress"
	case CellCastle:
		return "castle"
	}
	return "unknown"
}

// PieceKind is the occupant of a cell.
type PieceKind uint8

const (
	PieceNone PieceKind = iota
	PieceShield
	PieceSword
	PieceKing
)

func (k PieceKind) String() string {
	switch k {
	case PieceNone:
		return "none"
	case PieceShield:
		return "shield"
	case PieceSword:
		return "sword"
	case PieceKing:
		return "king"
	}
	return "unknown"
}

// Side identifies one of the two players. Attack moves first.
type Side uint8

const (
	SideAttack Side = iota
	SideDefense
)

func (s Side) String() string {
	if s == SideAttack {
		return "attack"
	}
	return "defense"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideAttack {
		return SideDefense
	}
	return SideAttack
}

// Owns reports whether s controls pieces of the given kind.
func (s Side) Owns(p PieceKind) bool {
	if s == SideAttack {
		return p == PieceSword
	}
	return p == PieceShield || p == PieceKing
}

// Cell pairs static terrain with its current occupant.
type Cell struct {
	Kind  CellKind
	Piece PieceKind
}

// Position addresses a board cell, zero-based from the top-left corner.
type Position struct {
	Row int
	Col int
}

// Move is a proposed relocation of one piece.
type Move struct {
	From Position
	To   Position
}

type delta struct {
	dRow int
	dCol int
}

// directions are the four cardinal neighbor offsets.
var directions = [...]delta{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// step returns p shifted n cells along d.
func (p Position) step(d delta, n int) Position {
	return Position{Row: p.Row + n*d.dRow, Col: p.Col + n*d.dCol}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
