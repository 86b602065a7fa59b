package tafl

import "fmt"

// Board is an N×N grid of cells. The zero value is unallocated; call Init
// (or use NewBoard) before anything else. Cells live in a single flat
// buffer indexed row*N+col.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard allocates a board of the given size.
func NewBoard(size BoardSize) (*Board, error) {
	b := &Board{}
	if err := b.Init(size); err != nil {
		return nil, err
	}
	return b, nil
}

// Init allocates the cell buffer. It fails on an unsupported size, or if
// the board is already allocated; call Release first to reuse an instance.
func (b *Board) Init(size BoardSize) error {
	if !size.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidBoardSize, size)
	}
	if b.cells != nil {
		return ErrAlreadyAllocated
	}
	b.size = int(size)
	b.cells = make([]Cell, b.size*b.size)
	return nil
}

// Release frees the cell buffer so the instance can be initialized again.
func (b *Board) Release() {
	b.size = 0
	b.cells = nil
}

// Size returns the grid dimension N.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether p addresses a cell on the board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// index converts p to a flat buffer offset. Callers bounds-check first.
func (b *Board) index(p Position) int {
	return p.Row*b.size + p.Col
}

func (b *Board) mustInBounds(p Position) {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("tafl: position %d,%d outside %dx%d board", p.Row, p.Col, b.size, b.size))
	}
}

// At returns the cell at p. It panics on an out-of-range position: with a
// flat buffer a bad row would otherwise silently alias a neighboring cell.
func (b *Board) At(p Position) Cell {
	b.mustInBounds(p)
	return b.cells[b.index(p)]
}

// IsEmpty reports whether the cell at p holds no piece.
func (b *Board) IsEmpty(p Position) bool {
	b.mustInBounds(p)
	return b.cells[b.index(p)].Piece == PieceNone
}

// SetPiece places kind at p, overwriting the current occupant.
func (b *Board) SetPiece(p Position, kind PieceKind) {
	b.mustInBounds(p)
	b.cells[b.index(p)].Piece = kind
}

// setupTerrain resets every cell to empty normal ground, then marks the
// four corner fortresses and the central castle.
func (b *Board) setupTerrain() {
	n := b.size
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
	for _, p := range [4]Position{{0, 0}, {0, n - 1}, {n - 1, 0}, {n - 1, n - 1}} {
		b.cells[b.index(p)].Kind = CellFortress
	}
	b.cells[b.index(Position{n / 2, n / 2})].Kind = CellCastle
}

// SetupStartingPosition lays out the opening formation: the king on the
// castle, shields in a cross around the castle, and five swords on the
// midline of each edge with one more a cell in front. Any prior contents
// are overwritten, so calling it twice yields the same position.
func (b *Board) SetupStartingPosition() {
	b.setupTerrain()
	n := b.size
	c := n / 2
	center := Position{c, c}

	b.SetPiece(center, PieceKing)

	// Shields reach two cells down each arm of the cross on the small
	// board and three on the large one; only the small board adds the
	// four diagonal guards.
	reach := 2
	if n == int(SizeLarge) {
		reach = 3
	}
	for step := 1; step <= reach; step++ {
		for _, d := range directions {
			b.SetPiece(center.step(d, step), PieceShield)
		}
	}
	if n == int(SizeSmall) {
		for _, dr := range [2]int{-1, 1} {
			for _, dc := range [2]int{-1, 1} {
				b.SetPiece(Position{c + dr, c + dc}, PieceShield)
			}
		}
	}

	for off := -2; off <= 2; off++ {
		b.SetPiece(Position{0, c + off}, PieceSword)
		b.SetPiece(Position{n - 1, c + off}, PieceSword)
		b.SetPiece(Position{c + off, 0}, PieceSword)
		b.SetPiece(Position{c + off, n - 1}, PieceSword)
	}
	for _, d := range directions {
		b.SetPiece(center.step(d, c-1), PieceSword)
	}
}

// KingPosition returns the king's cell, if a king is on the board.
func (b *Board) KingPosition() (Position, bool) {
	for i, cell := range b.cells {
		if cell.Piece == PieceKing {
			return Position{Row: i / b.size, Col: i % b.size}, true
		}
	}
	return Position{}, false
}

// CountPieces returns how many cells hold the given piece kind.
func (b *Board) CountPieces(kind PieceKind) int {
	count := 0
	for _, cell := range b.cells {
		if cell.Piece == kind {
			count++
		}
	}
	return count
}

// SwordsRemain reports whether the attacker has any pieces left.
func (b *Board) SwordsRemain() bool {
	for _, cell := range b.cells {
		if cell.Piece == PieceSword {
			return true
		}
	}
	return false
}
