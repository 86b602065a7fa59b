package tafl

// KingEscaped reports whether the king stands on a fortress cell.
func KingEscaped(b *Board) bool {
	king, ok := b.KingPosition()
	if !ok {
		return false
	}
	return b.At(king).Kind == CellFortress
}

// KingCapturedSimple reports whether all four cells around the king are
// hostile: off the board, holding a sword, or fortress or castle terrain.
// Adjacent shields shelter the king from this check; KingCaptured applies
// the stronger group rule that sees through them.
func KingCapturedSimple(b *Board) bool {
	king, ok := b.KingPosition()
	if !ok {
		return false
	}
	for _, d := range directions {
		if !hostileToKing(b, king.step(d, 1)) {
			return false
		}
	}
	return true
}

func hostileToKing(b *Board, p Position) bool {
	if !b.InBounds(p) {
		return true
	}
	cell := b.At(p)
	return cell.Piece == PieceSword || cell.Kind != CellNormal
}

// KingCaptured reports whether the king's whole group of connected
// defenders is sealed in: no cell reachable from the king through shields
// has an empty normal neighbor. It subsumes KingCapturedSimple, since a
// fully ringed king has no frontier at all.
func KingCaptured(b *Board) bool {
	king, ok := b.KingPosition()
	if !ok {
		return false
	}
	return groupSealed(b, king)
}

// groupSealed flood-fills from start across king and shield cells,
// returning false the moment the group touches an empty normal cell. Swords,
// fortresses, the castle, and the board edge bound the fill.
func groupSealed(b *Board, start Position) bool {
	visited := make([]bool, b.size*b.size)
	work := make([]Position, 0, len(b.cells))
	work = append(work, start)
	visited[b.index(start)] = true
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		for _, d := range directions {
			next := p.step(d, 1)
			if !b.InBounds(next) || visited[b.index(next)] {
				continue
			}
			cell := b.At(next)
			switch {
			case cell.Piece == PieceShield || cell.Piece == PieceKing:
				visited[b.index(next)] = true
				work = append(work, next)
			case cell.Piece == PieceNone && cell.Kind == CellNormal:
				return false
			}
		}
	}
	return true
}

// GameFinished reports whether play is over: the king is surrounded or has
// escaped, or attrition has removed every sword.
func GameFinished(b *Board) bool {
	return KingCapturedSimple(b) || KingEscaped(b) || !b.SwordsRemain()
}

// Winner returns the side that has won. ok is false while the game is
// still in progress.
func Winner(b *Board) (Side, bool) {
	if KingCapturedSimple(b) {
		return SideAttack, true
	}
	if KingEscaped(b) || !b.SwordsRemain() {
		return SideDefense, true
	}
	return 0, false
}
