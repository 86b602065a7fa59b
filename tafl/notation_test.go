package tafl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	t.Run("reading well-formed positions", func(t *testing.T) {
		cases := []struct {
			text string
			size BoardSize
			want Position
		}{
			{"a1", SizeSmall, at(0, 0)},
			{"f6", SizeSmall, at(5, 5)},
			{"k11", SizeSmall, at(10, 10)},
			{"m13", SizeLarge, at(12, 12)},
			{"G7", SizeSmall, at(6, 6)},
			{"  d5  ", SizeSmall, at(3, 4)},
		}
		for _, tc := range cases {
			got, err := ParsePosition(tc.text, tc.size)
			require.NoError(t, err, "Position %q should parse", tc.text)
			require.Equal(t, tc.want, got, "Position %q should land on the right cell", tc.text)
		}
	})

	t.Run("rejecting malformed positions", func(t *testing.T) {
		for _, text := range []string{"", "a", "7", "5a", "aa", "a1x", "!3", "d 5"} {
			_, err := ParsePosition(text, SizeSmall)
			require.Error(t, err, "Position %q should be rejected", text)
		}
	})

	t.Run("rejecting positions off the board", func(t *testing.T) {
		for _, text := range []string{"a0", "a12", "l1", "z9", "m13"} {
			_, err := ParsePosition(text, SizeSmall)
			require.Error(t, err, "Position %q is outside a small board", text)
		}
		// The same rows exist on the large board.
		_, err := ParsePosition("l1", SizeLarge)
		require.NoError(t, err, "Row l should exist on the large board")
	})
}

func TestFormatPosition(t *testing.T) {
	require.Equal(t, "a1", FormatPosition(at(0, 0)), "Top-left corner should be a1")
	require.Equal(t, "f6", FormatPosition(at(5, 5)), "The small board castle should be f6")
	require.Equal(t, "k11", FormatPosition(at(10, 10)), "Bottom-right of the small board should be k11")
	require.Equal(t, "m13", FormatPosition(at(12, 12)), "Bottom-right of the large board should be m13")

	for _, p := range []Position{at(0, 0), at(5, 5), at(2, 9), at(10, 3)} {
		got, err := ParsePosition(FormatPosition(p), SizeSmall)
		require.NoError(t, err, "Formatted position should parse back")
		require.Equal(t, p, got, "Round trip should return the same position")
	}
}

func TestParseMove(t *testing.T) {
	t.Run("reading both separators", func(t *testing.T) {
		want := Move{From: at(0, 4), To: at(0, 8)}
		for _, text := range []string{"a5 a9", "a5-a9", "a5 - a9", "  a5   a9  "} {
			got, err := ParseMove(text, SizeSmall)
			require.NoError(t, err, "Move %q should parse", text)
			require.Equal(t, want, got, "Move %q should read both endpoints", text)
		}
	})

	t.Run("rejecting malformed moves", func(t *testing.T) {
		for _, text := range []string{"", "a5", "a5 a6 a7", "a5,a9", "a5 z9", "q1 a5"} {
			_, err := ParseMove(text, SizeSmall)
			require.Error(t, err, "Move %q should be rejected", text)
		}
	})
}

func TestFormatMove(t *testing.T) {
	require.Equal(t, "a5-a9", FormatMove(Move{From: at(0, 4), To: at(0, 8)}),
		"Moves should format with a dash")
	require.Equal(t, "f6-f1", FormatMove(Move{From: at(5, 5), To: at(5, 0)}),
		"Column numbers should be 1-based")
}
