package tafl

// ValidateMove checks m for side against the current board without mutating
// it. It returns nil for a legal move, or the first failing rule as a typed
// error. Rules run in a fixed order: bounds, ownership, shape, path,
// destination occupancy, destination terrain.
func ValidateMove(b *Board, side Side, m Move) error {
	if !b.InBounds(m.From) || !b.InBounds(m.To) {
		return ErrOutOfBounds
	}
	if !side.Owns(b.At(m.From).Piece) {
		return ErrWrongOwner
	}
	if m.From == m.To {
		return ErrZeroLengthMove
	}
	if m.From.Row != m.To.Row && m.From.Col != m.To.Col {
		return ErrNonOrthogonalMove
	}

	// Every intermediate cell must be empty normal ground: fortresses and
	// the castle block transit for all pieces, the king included.
	step := delta{dRow: sign(m.To.Row - m.From.Row), dCol: sign(m.To.Col - m.From.Col)}
	for p := m.From.step(step, 1); p != m.To; p = p.step(step, 1) {
		cell := b.At(p)
		if cell.Piece != PieceNone || cell.Kind != CellNormal {
			return ErrPathBlocked
		}
	}

	if !b.IsEmpty(m.To) {
		return ErrDestinationOccupied
	}
	if b.At(m.From).Piece != PieceKing && b.At(m.To).Kind != CellNormal {
		return ErrRestrictedDestination
	}
	return nil
}
