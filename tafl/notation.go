package tafl

import (
	"fmt"
	"strconv"
	"strings"
)

// Positions are written as a letter row followed by a 1-based column number:
// "a1" is the top-left corner, "f6" the castle of an 11×11 board. Rows run
// a..k on the small board and a..m on the large one, top to bottom, with no
// letters skipped.

// ParsePosition converts text like "d5" into a bounds-checked position.
func ParsePosition(text string, size BoardSize) (Position, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if len(s) < 2 {
		return Position{}, fmt.Errorf("invalid position %q: want a letter row and a column number", text)
	}
	if s[0] < 'a' || s[0] > 'z' {
		return Position{}, fmt.Errorf("invalid position %q: row must be a letter", text)
	}
	row := int(s[0] - 'a')
	col, err := strconv.Atoi(s[1:])
	if err != nil {
		return Position{}, fmt.Errorf("invalid position %q: column must be a number", text)
	}
	n := int(size)
	if row >= n || col < 1 || col > n {
		return Position{}, fmt.Errorf("position %q is outside the %dx%d board", text, n, n)
	}
	return Position{Row: row, Col: col - 1}, nil
}

// FormatPosition renders p in letter-number notation.
func FormatPosition(p Position) string {
	return fmt.Sprintf("%c%d", rune('a'+p.Row), p.Col+1)
}

// ParseMove converts text like "a4 a8" or "a4-a8" into a move.
func ParseMove(text string, size BoardSize) (Move, error) {
	s := strings.TrimSpace(text)
	var parts []string
	if strings.Contains(s, "-") {
		parts = strings.SplitN(s, "-", 2)
	} else {
		parts = strings.Fields(s)
	}
	if len(parts) != 2 {
		return Move{}, fmt.Errorf("invalid move %q: want start and end, like \"a4 a8\"", text)
	}
	from, err := ParsePosition(parts[0], size)
	if err != nil {
		return Move{}, err
	}
	to, err := ParsePosition(parts[1], size)
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

// FormatMove renders m as "a4-a8".
func FormatMove(m Move) string {
	return FormatPosition(m.From) + "-" + FormatPosition(m.To)
}
