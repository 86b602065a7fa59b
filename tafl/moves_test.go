package tafl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateMove(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(b *Board)
		side    Side
		move    Move
		wantErr error
	}{
		{
			name:    "rejecting a start off the board",
			setup:   func(b *Board) {},
			side:    SideAttack,
			move:    Move{From: at(-1, 4), To: at(3, 4)},
			wantErr: ErrOutOfBounds,
		},
		{
			name:    "rejecting an end off the board",
			setup:   func(b *Board) { b.SetPiece(at(0, 4), PieceSword) },
			side:    SideAttack,
			move:    Move{From: at(0, 4), To: at(0, 11)},
			wantErr: ErrOutOfBounds,
		},
		{
			name:    "rejecting a move from an empty cell",
			setup:   func(b *Board) {},
			side:    SideAttack,
			move:    Move{From: at(4, 4), To: at(4, 6)},
			wantErr: ErrWrongOwner,
		},
		{
			name:    "rejecting attack moving a shield",
			setup:   func(b *Board) { b.SetPiece(at(4, 4), PieceShield) },
			side:    SideAttack,
			move:    Move{From: at(4, 4), To: at(4, 6)},
			wantErr: ErrWrongOwner,
		},
		{
			name:    "rejecting attack moving the king",
			setup:   func(b *Board) { b.SetPiece(at(4, 4), PieceKing) },
			side:    SideAttack,
			move:    Move{From: at(4, 4), To: at(4, 6)},
			wantErr: ErrWrongOwner,
		},
		{
			name:    "rejecting defense moving a sword",
			setup:   func(b *Board) { b.SetPiece(at(4, 4), PieceSword) },
			side:    SideDefense,
			move:    Move{From: at(4, 4), To: at(4, 6)},
			wantErr: ErrWrongOwner,
		},
		{
			name:    "rejecting a move that goes nowhere",
			setup:   func(b *Board) { b.SetPiece(at(4, 4), PieceSword) },
			side:    SideAttack,
			move:    Move{From: at(4, 4), To: at(4, 4)},
			wantErr: ErrZeroLengthMove,
		},
		{
			name:    "rejecting a diagonal move",
			setup:   func(b *Board) { b.SetPiece(at(4, 4), PieceShield) },
			side:    SideDefense,
			move:    Move{From: at(4, 4), To: at(6, 6)},
			wantErr: ErrNonOrthogonalMove,
		},
		{
			name: "rejecting a path through a piece",
			setup: func(b *Board) {
				b.SetPiece(at(4, 2), PieceSword)
				b.SetPiece(at(4, 5), PieceShield)
			},
			side:    SideAttack,
			move:    Move{From: at(4, 2), To: at(4, 8)},
			wantErr: ErrPathBlocked,
		},
		{
			name:  "rejecting a shield path through the castle",
			setup: func(b *Board) { b.SetPiece(at(5, 3), PieceShield) },
			side:  SideDefense,
			// The castle at f6 sits between the start and the end.
			move:    Move{From: at(5, 3), To: at(5, 7)},
			wantErr: ErrPathBlocked,
		},
		{
			name:    "rejecting a king path through the castle",
			setup:   func(b *Board) { b.SetPiece(at(5, 2), PieceKing) },
			side:    SideDefense,
			move:    Move{From: at(5, 2), To: at(5, 9)},
			wantErr: ErrPathBlocked,
		},
		{
			name: "rejecting a path through a fortress",
			setup: func(b *Board) {
				// Real boards only put fortresses in corners, where no
				// path can cross them; plant one mid-row to prove the
				// walk checks terrain.
				b.cells[b.index(at(2, 5))].Kind = CellFortress
				b.SetPiece(at(2, 3), PieceSword)
			},
			side:    SideAttack,
			move:    Move{From: at(2, 3), To: at(2, 8)},
			wantErr: ErrPathBlocked,
		},
		{
			name: "rejecting an occupied destination",
			setup: func(b *Board) {
				b.SetPiece(at(4, 4), PieceSword)
				b.SetPiece(at(4, 8), PieceShield)
			},
			side:    SideAttack,
			move:    Move{From: at(4, 4), To: at(4, 8)},
			wantErr: ErrDestinationOccupied,
		},
		{
			name: "rejecting landing on a friendly piece",
			setup: func(b *Board) {
				b.SetPiece(at(4, 4), PieceSword)
				b.SetPiece(at(8, 4), PieceSword)
			},
			side:    SideAttack,
			move:    Move{From: at(4, 4), To: at(8, 4)},
			wantErr: ErrDestinationOccupied,
		},
		{
			name:    "rejecting a sword stopping on a fortress",
			setup:   func(b *Board) { b.SetPiece(at(0, 4), PieceSword) },
			side:    SideAttack,
			move:    Move{From: at(0, 4), To: at(0, 0)},
			wantErr: ErrRestrictedDestination,
		},
		{
			name:    "rejecting a shield stopping on the empty castle",
			setup:   func(b *Board) { b.SetPiece(at(5, 2), PieceShield) },
			side:    SideDefense,
			move:    Move{From: at(5, 2), To: at(5, 5)},
			wantErr: ErrRestrictedDestination,
		},
		{
			name:    "allowing the king onto a fortress",
			setup:   func(b *Board) { b.SetPiece(at(0, 4), PieceKing) },
			side:    SideDefense,
			move:    Move{From: at(0, 4), To: at(0, 0)},
			wantErr: nil,
		},
		{
			name:    "allowing the king onto the empty castle",
			setup:   func(b *Board) { b.SetPiece(at(5, 2), PieceKing) },
			side:    SideDefense,
			move:    Move{From: at(5, 2), To: at(5, 5)},
			wantErr: nil,
		},
		{
			name:    "allowing a long slide over empty ground",
			setup:   func(b *Board) { b.SetPiece(at(2, 1), PieceSword) },
			side:    SideAttack,
			move:    Move{From: at(2, 1), To: at(2, 10)},
			wantErr: nil,
		},
		{
			name:    "allowing a single step",
			setup:   func(b *Board) { b.SetPiece(at(7, 7), PieceShield) },
			side:    SideDefense,
			move:    Move{From: at(7, 7), To: at(8, 7)},
			wantErr: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := testBoard(t, SizeSmall)
			tc.setup(b)
			err := ValidateMove(b, tc.side, tc.move)
			if tc.wantErr == nil {
				require.NoError(t, err, "Move should be legal")
			} else {
				require.ErrorIs(t, err, tc.wantErr, "Move should fail with the expected reason")
			}
		})
	}
}

func TestValidateMoveOrder(t *testing.T) {
	t.Run("reporting ownership before shape", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(4, 4), PieceShield)
		// Diagonal and wrong owner at once: ownership is checked first.
		err := ValidateMove(b, SideAttack, Move{From: at(4, 4), To: at(6, 6)})
		require.ErrorIs(t, err, ErrWrongOwner, "Ownership should be the first failure reported")
	})

	t.Run("reporting shape before occupancy", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(4, 4), PieceSword)
		b.SetPiece(at(6, 6), PieceShield)
		err := ValidateMove(b, SideAttack, Move{From: at(4, 4), To: at(6, 6)})
		require.ErrorIs(t, err, ErrNonOrthogonalMove, "Shape should be rejected before occupancy")
	})

	t.Run("reporting a blocked path before the occupied destination", func(t *testing.T) {
		b := testBoard(t, SizeSmall)
		b.SetPiece(at(4, 2), PieceSword)
		b.SetPiece(at(4, 5), PieceShield)
		b.SetPiece(at(4, 8), PieceShield)
		err := ValidateMove(b, SideAttack, Move{From: at(4, 2), To: at(4, 8)})
		require.ErrorIs(t, err, ErrPathBlocked, "Path should be rejected before the destination")
	})
}

func TestValidateMoveLeavesBoardUntouched(t *testing.T) {
	b, err := NewBoard(SizeSmall)
	require.NoError(t, err)
	b.SetupStartingPosition()

	require.NoError(t, ValidateMove(b, SideAttack, Move{From: at(0, 3), To: at(2, 3)}),
		"Opening sword move should be legal")
	require.Error(t, ValidateMove(b, SideAttack, Move{From: at(0, 3), To: at(0, 5)}),
		"Move onto a friendly sword should be rejected")

	require.Equal(t, 24, b.CountPieces(PieceSword), "Validation should never move pieces")
	require.Equal(t, PieceSword, b.At(at(0, 3)).Piece, "Validated piece should still be in place")
	require.True(t, b.IsEmpty(at(2, 3)), "Validated destination should still be empty")
}
