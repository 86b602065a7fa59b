package tafl

// ResolveCaptures removes enemy pieces flanked by side's move landing on
// dest and returns their positions, already cleared from the board. Each of
// the four cardinal neighbors is judged independently against the post-move
// board. The king is never captured here; king threats are the evaluator's
// job.
func ResolveCaptures(b *Board, side Side, dest Position) []Position {
	target := PieceShield
	if side == SideDefense {
		target = PieceSword
	}
	var captured []Position
	for _, d := range directions {
		adjacent := dest.step(d, 1)
		if !b.InBounds(adjacent) || b.At(adjacent).Piece != target {
			continue
		}
		if bracesCapture(b, side, dest.step(d, 2)) {
			b.SetPiece(adjacent, PieceNone)
			captured = append(captured, adjacent)
		}
	}
	return captured
}

// bracesCapture reports whether the cell beyond a flanked piece closes the
// sandwich for side: off the board, a fortress, an empty castle, or a
// friendly piece. The king braces defense captures but never attack ones,
// so a castle holding the king counts for defense and for nobody else.
func bracesCapture(b *Board, side Side, beyond Position) bool {
	if !b.InBounds(beyond) {
		return true
	}
	cell := b.At(beyond)
	if cell.Kind == CellFortress {
		return true
	}
	if cell.Kind == CellCastle && cell.Piece == PieceNone {
		return true
	}
	if side == SideAttack {
		return cell.Piece == PieceSword
	}
	return cell.Piece == PieceShield || cell.Piece == PieceKing
}
