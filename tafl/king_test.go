package tafl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKingEscaped(t *testing.T) {
	t.Run("escaping on each fortress", func(t *testing.T) {
		for _, corner := range []Position{at(0, 0), at(0, 10), at(10, 0), at(10, 10)} {
			b := testBoard(t, SizeSmall)
			b.SetPiece(corner, PieceKing)
			require.True(t, KingEscaped(b), "King on fortress %v should have escaped", corner)
		}
	})

	t.Run("staying on ordinary ground", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(0, 5), PieceKing)
		require.False(t, KingEscaped(b), "Edge cells are not an escape")
	})

	t.Run("staying on the castle", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(5, 5), PieceKing)
		require.False(t, KingEscaped(b), "The castle is not an escape")
	})

	t.Run("ignoring a board with no king", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		require.False(t, KingEscaped(b), "No king means no escape")
	})
}

func TestKingCapturedSimple(t *testing.T) {
	t.Run("surrounding with four swords", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(4, 4), PieceKing)
		for _, p := range []Position{at(3, 4), at(5, 4), at(4, 3), at(4, 5)} {
			b.SetPiece(p, PieceSword)
		}
		require.True(t, KingCapturedSimple(b), "Four swords should capture the king")
	})

	t.Run("surrounding against the board edge", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(0, 5), PieceKing)
		for _, p := range []Position{at(0, 4), at(0, 6), at(1, 5)} {
			b.SetPiece(p, PieceSword)
		}
		require.True(t, KingCapturedSimple(b), "The edge should count as the fourth sword")
	})

	t.Run("surrounding against a fortress", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(0, 1), PieceKing)
		b.SetPiece(at(0, 2), PieceSword)
		b.SetPiece(at(1, 1), PieceSword)
		require.True(t, KingCapturedSimple(b), "Fortress and edge should complete the ring")
	})

	t.Run("surrounding against the empty castle", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(5, 4), PieceKing)
		for _, p := range []Position{at(4, 4), at(6, 4), at(5, 3)} {
			b.SetPiece(p, PieceSword)
		}
		require.True(t, KingCapturedSimple(b), "The castle should count as hostile ground")
	})

	t.Run("capturing the king on the castle itself", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(5, 5), PieceKing)
		for _, p := range []Position{at(4, 5), at(6, 5), at(5, 4), at(5, 6)} {
			b.SetPiece(p, PieceSword)
		}
		require.True(t, KingCapturedSimple(b), "The castle gives the king no protection")
	})

	t.Run("leaving the king free with an open side", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(4, 4), PieceKing)
		for _, p := range []Position{at(3, 4), at(5, 4), at(4, 3)} {
			b.SetPiece(p, PieceSword)
		}
		require.False(t, KingCapturedSimple(b), "Three swords are not enough")
	})

	t.Run("sheltering the king behind a shield", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(4, 4), PieceKing)
		b.SetPiece(at(4, 5), PieceShield)
		for _, p := range []Position{at(3, 4), at(5, 4), at(4, 3)} {
			b.SetPiece(p, PieceSword)
		}
		require.False(t, KingCapturedSimple(b), "An adjacent shield blocks the simple ring")
	})

	t.Run("ignoring a board with no king", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		require.False(t, KingCapturedSimple(b), "No king means no capture")
	})
}

func TestKingCaptured(t *testing.T) {
	t.Run("sealing a lone king", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(2, 2), PieceKing)
		for _, p := range []Position{at(1, 2), at(3, 2), at(2, 1), at(2, 3)} {
			b.SetPiece(p, PieceSword)
		}
		require.True(t, KingCaptured(b), "A ringed king is enclosed")
	})

	t.Run("sealing the king together with a shield", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		// The shield shelters the king from the simple ring, but the
		// whole pair is walled in.
		b.SetPiece(at(2, 4), PieceKing)
		b.SetPiece(at(2, 5), PieceShield)
		for _, p := range []Position{
			at(1, 4), at(3, 4), at(2, 3),
			at(1, 5), at(3, 5), at(2, 6),
		} {
			b.SetPiece(p, PieceSword)
		}
		require.False(t, KingCapturedSimple(b), "The shield blocks the simple ring")
		require.True(t, KingCaptured(b), "The sealed group is still enclosed")
	})

	t.Run("escaping through an enclosed gap", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		// One empty cell inside the wall keeps the group alive.
		b.SetPiece(at(2, 2), PieceKing)
		b.SetPiece(at(2, 3), PieceShield)
		b.SetPiece(at(3, 2), PieceShield)
		for _, p := range []Position{
			at(1, 2), at(1, 3), at(2, 1), at(3, 1),
			at(2, 4), at(4, 2), at(3, 4), at(4, 3),
		} {
			b.SetPiece(p, PieceSword)
		}
		require.True(t, b.IsEmpty(at(3, 3)), "The pocket cell should be empty")
		require.False(t, KingCaptured(b), "An empty pocket inside the wall is still breathing room")
	})

	t.Run("ignoring diagonal gaps", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(2, 2), PieceKing)
		for _, p := range []Position{at(1, 2), at(3, 2), at(2, 1), at(2, 3)} {
			b.SetPiece(p, PieceSword)
		}
		require.True(t, b.IsEmpty(at(1, 1)), "The diagonal should be open")
		require.True(t, KingCaptured(b), "Diagonal openings do not break an enclosure")
	})

	t.Run("sealing against the board edge", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(0, 4), PieceKing)
		b.SetPiece(at(0, 5), PieceShield)
		for _, p := range []Position{at(0, 3), at(1, 4), at(1, 5), at(0, 6)} {
			b.SetPiece(p, PieceSword)
		}
		require.True(t, KingCaptured(b), "The board edge is part of the wall")
	})

	t.Run("sealing against a fortress", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(0, 1), PieceKing)
		b.SetPiece(at(1, 1), PieceShield)
		for _, p := range []Position{at(0, 2), at(1, 2), at(2, 1), at(1, 0)} {
			b.SetPiece(p, PieceSword)
		}
		require.True(t, KingCaptured(b), "A fortress seals the group like a sword")
	})

	t.Run("sealing against the empty castle", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(5, 4), PieceKing)
		b.SetPiece(at(4, 4), PieceShield)
		for _, p := range []Position{at(3, 4), at(4, 3), at(5, 3), at(6, 4), at(4, 5)} {
			b.SetPiece(p, PieceSword)
		}
		require.True(t, KingCaptured(b), "The castle seals the group like a sword")
	})

	t.Run("breathing through a long shield chain", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		// Wall everything except the far end of the chain.
		b.SetPiece(at(2, 4), PieceKing)
		b.SetPiece(at(2, 5), PieceShield)
		b.SetPiece(at(2, 6), PieceShield)
		for _, p := range []Position{
			at(1, 4), at(3, 4), at(2, 3),
			at(1, 5), at(3, 5), at(1, 6), at(3, 6),
		} {
			b.SetPiece(p, PieceSword)
		}
		require.True(t, b.IsEmpty(at(2, 7)), "The chain's far end should be open")
		require.False(t, KingCaptured(b), "One open cell at the end of the chain is enough")
	})

	t.Run("subsuming the simple capture", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(4, 4), PieceKing)
		for _, p := range []Position{at(3, 4), at(5, 4), at(4, 3), at(4, 5)} {
			b.SetPiece(p, PieceSword)
		}
		require.True(t, KingCapturedSimple(b), "The ring is a simple capture")
		require.True(t, KingCaptured(b), "Every simple capture is also an enclosure")
	})

	t.Run("ignoring a board with no king", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		require.False(t, KingCaptured(b), "No king means no enclosure")
	})

	t.Run("leaving the opening position alone", func(t *testing.T) {
		b, err := NewBoard(SizeSmall)
		require.NoError(t, err)
		b.SetupStartingPosition()
		require.False(t, KingCaptured(b), "The opening position is not an enclosure")
		require.False(t, KingCapturedSimple(b), "The opening position is not a capture")
		require.False(t, KingEscaped(b), "The opening position is not an escape")
	})
}

func TestGameFinishedAndWinner(t *testing.T) {
	t.Run("continuing from the opening position", func(t *testing.T) {
		b, err := NewBoard(SizeSmall)
		require.NoError(t, err)
		b.SetupStartingPosition()

		require.False(t, GameFinished(b), "The opening position is live")
		_, ok := Winner(b)
		require.False(t, ok, "A live game has no winner")
	})

	t.Run("awarding attack a surrounded king", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(4, 4), PieceKing)
		for _, p := range []Position{at(3, 4), at(5, 4), at(4, 3), at(4, 5)} {
			b.SetPiece(p, PieceSword)
		}

		require.True(t, GameFinished(b), "A captured king ends the game")
		winner, ok := Winner(b)
		require.True(t, ok, "A finished game has a winner")
		require.Equal(t, SideAttack, winner, "Capturing the king wins for attack")
	})

	t.Run("awarding defense an escaped king", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(0, 0), PieceKing)
		b.SetPiece(at(7, 7), PieceSword)

		require.True(t, GameFinished(b), "An escaped king ends the game")
		winner, ok := Winner(b)
		require.True(t, ok, "A finished game has a winner")
		require.Equal(t, SideDefense, winner, "Escape wins for defense")
	})

	t.Run("awarding defense a board with no swords", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(4, 4), PieceKing)
		b.SetPiece(at(6, 6), PieceShield)

		require.True(t, GameFinished(b), "Attrition ends the game")
		winner, ok := Winner(b)
		require.True(t, ok, "A finished game has a winner")
		require.Equal(t, SideDefense, winner, "Attrition wins for defense")
	})

	t.Run("playing on through a mere enclosure", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		// Enclosed but not simply captured: the game goes on.
		b.SetPiece(at(2, 4), PieceKing)
		b.SetPiece(at(2, 5), PieceShield)
		for _, p := range []Position{
			at(1, 4), at(3, 4), at(2, 3),
			at(1, 5), at(3, 5), at(2, 6),
		} {
			b.SetPiece(p, PieceSword)
		}

		require.True(t, KingCaptured(b), "The group is enclosed")
		require.False(t, GameFinished(b), "Only the simple ring ends the game")
		_, ok := Winner(b)
		require.False(t, ok, "An enclosure alone decides nothing")
	})
}
