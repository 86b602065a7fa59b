// Package ui specifies custom controls for tview to assist in playing
// hnefatafl in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtafl/config"
	"termtafl/tafl"
)

// TaflBoardUI renders a hnefatafl board and routes cursor input into the
// game it displays.
type TaflBoardUI struct {
	Box       *tview.Box
	hint      *tview.TextView
	cfg       *config.Config
	game      *tafl.Game
	selRow    int
	selCol    int
	picked    *tafl.Position
	lastMove  *tafl.Move
	captured  []tafl.Position
	notice    string
	styles    []tcell.Color
	infoPanel *GameInfoPanel
	focusMode bool
}

func NewTaflBoard(c *config.Config, hint *tview.TextView) *TaflBoardUI {
	board := &TaflBoardUI{
		Box:    tview.NewBox(),
		hint:   hint,
		selRow: -1,
		selCol: -1,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		if board.game == nil {
			return x, y, 1, 1
		}
		state := board.game.Board()
		n := state.Size()
		// 2 characters per cell for square appearance
		boardW, boardH := n*2, n

		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				pos := tafl.Position{Row: row, Col: col}
				cell := state.At(pos)

				bg := board.styles[0]
				if (col%2 + row%2) == 1 {
					bg = board.styles[1]
				}
				switch cell.Kind {
				case tafl.CellFortress:
					bg = board.styles[5]
				case tafl.CellCastle:
					bg = board.styles[6]
				}

				drawRune := ' '
				fg := board.styles[0]
				switch cell.Piece {
				case tafl.PieceSword:
					drawRune, fg = board.cfg.Theme.Symbols.Sword, board.styles[2]
				case tafl.PieceShield:
					drawRune, fg = board.cfg.Theme.Symbols.Shield, board.styles[3]
				case tafl.PieceKing:
					drawRune, fg = board.cfg.Theme.Symbols.King, board.styles[4]
				default:
					// Mark empty special terrain so the squares read even
					// without color support.
					switch cell.Kind {
					case tafl.CellFortress:
						drawRune, fg = board.cfg.Theme.Symbols.Fortress, board.styles[0]
					case tafl.CellCastle:
						drawRune, fg = board.cfg.Theme.Symbols.Castle, board.styles[0]
					}
				}
				if board.cfg.Theme.DrawPieceBackground && cell.Piece != tafl.PieceNone {
					fg, bg = bg, fg
				}

				switch {
				case row == board.selRow && col == board.selCol:
					if board.cfg.Theme.DrawCursorBackground {
						bg = board.styles[8]
					} else {
						drawRune, fg = board.cfg.Theme.Symbols.Cursor, board.styles[7]
					}
				case board.picked != nil && *board.picked == pos:
					bg = board.styles[9]
				case board.isLastMoveCell(pos):
					if board.cfg.Theme.DrawLastMoveBackground {
						bg = board.styles[10]
					}
				}

				drawBoardCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), drawRune, col, row, x+4, y+1)
			}
		}
		board.drawCoordinates(screen, x, y)
		// Add offset for coordinate display
		return x, y, boardW + 4, boardH + 2
	})
	return board
}

// SetGame points the board at a session and clears any per-game state.
func (b *TaflBoardUI) SetGame(g *tafl.Game) {
	b.game = g
	b.picked = nil
	b.lastMove = nil
	b.captured = nil
	b.notice = ""
	b.ResetSelection()
	b.refreshHint()
}

// Game returns the session the board is showing.
func (b *TaflBoardUI) Game() *tafl.Game {
	return b.game
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (b *TaflBoardUI) ToggleFocusMode() bool {
	b.focusMode = !b.focusMode
	b.refreshHint()
	return b.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (b *TaflBoardUI) SetFocusMode(enabled bool) {
	b.focusMode = enabled
	b.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (b *TaflBoardUI) IsFocusMode() bool {
	return b.focusMode
}

func (b *TaflBoardUI) SelectedTile() *tafl.Position {
	if b.selRow == -1 && b.selCol == -1 {
		return nil
	}
	return &tafl.Position{Row: b.selRow, Col: b.selCol}
}

func (b *TaflBoardUI) MoveSelection(h, v int) {
	if b.game == nil {
		return
	}
	if b.game.Finished() {
		b.ResetSelection()
		return
	}
	n := b.game.Board().Size()
	if b.SelectedTile() == nil {
		if b.lastMove != nil {
			b.selRow, b.selCol = b.lastMove.To.Row, b.lastMove.To.Col
		} else {
			// No move made yet, start on the castle
			b.selRow, b.selCol = n/2, n/2
		}
		return
	}
	if b.selCol+h < 0 || b.selCol+h >= n {
		return
	}
	if b.selRow+v < 0 || b.selRow+v >= n {
		return
	}
	b.selCol += h
	b.selRow += v
}

func (b *TaflBoardUI) ResetSelection() {
	b.selRow = -1
	b.selCol = -1
	b.picked = nil
}

// PickOrPlace handles Enter on the cursor: the first press picks up the
// mover's piece, the second submits the move to that square. Pressing it
// on the picked piece puts it back down.
func (b *TaflBoardUI) PickOrPlace() {
	if b.game == nil || b.game.Finished() {
		return
	}
	tile := b.SelectedTile()
	if tile == nil {
		return
	}
	if b.picked == nil {
		if !b.game.Turn().Owns(b.game.Board().At(*tile).Piece) {
			b.notice = "not your piece"
			b.refreshHint()
			return
		}
		p := *tile
		b.picked = &p
		b.notice = ""
		b.refreshHint()
		return
	}
	if *b.picked == *tile {
		b.picked = nil
		b.refreshHint()
		return
	}
	if err := b.playMove(tafl.Move{From: *b.picked, To: *tile}); err != nil {
		b.notice = err.Error()
		b.refreshHint()
	}
}

// ClearPick puts a picked-up piece back down without moving it.
func (b *TaflBoardUI) ClearPick() {
	b.picked = nil
	b.notice = ""
	b.refreshHint()
}

// SubmitTyped plays a move written in letter-number notation ("a4 a8").
func (b *TaflBoardUI) SubmitTyped(text string) error {
	if b.game == nil {
		return fmt.Errorf("no game running")
	}
	if b.game.Finished() {
		return tafl.ErrGameFinished
	}
	m, err := tafl.ParseMove(text, tafl.BoardSize(b.game.Board().Size()))
	if err != nil {
		return err
	}
	return b.playMove(m)
}

func (b *TaflBoardUI) playMove(m tafl.Move) error {
	res, err := b.game.SubmitMove(b.game.Turn(), m)
	if err != nil {
		return err
	}
	b.picked = nil
	mv := res.Move
	b.lastMove = &mv
	b.captured = res.Captured
	b.notice = ""
	if res.Finished {
		b.ResetSelection()
	}
	b.refreshHint()
	return nil
}

// IsFinished returns true if the game is over.
func (b *TaflBoardUI) IsFinished() bool {
	return b.game != nil && b.game.Finished()
}

// ShowNotice puts a short message on the status line until the next action.
func (b *TaflBoardUI) ShowNotice(msg string) {
	b.notice = msg
	b.refreshHint()
}

func (b *TaflBoardUI) SetConfig(c *config.Config) {
	b.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),      // 0
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),   // 1
		tcell.PaletteColor(c.Theme.Colors.SwordColor),      // 2
		tcell.PaletteColor(c.Theme.Colors.ShieldColor),     // 3
		tcell.PaletteColor(c.Theme.Colors.KingColor),       // 4
		tcell.PaletteColor(c.Theme.Colors.FortressColor),   // 5
		tcell.PaletteColor(c.Theme.Colors.CastleColor),     // 6
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),   // 7
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),   // 8
		tcell.PaletteColor(c.Theme.Colors.SelectedColorBG), // 9
		tcell.PaletteColor(c.Theme.Colors.LastMoveColorBG), // 10
	}
	b.cfg = c
}

func (b *TaflBoardUI) isLastMoveCell(p tafl.Position) bool {
	return b.lastMove != nil && (b.lastMove.From == p || b.lastMove.To == p)
}

func (b *TaflBoardUI) refreshHint() {
	if b.infoPanel != nil {
		b.infoPanel.SetState(b.game, b.lastMove, b.captured, b.notice)
	}

	// Focus mode shows minimal hint
	if b.focusMode {
		b.hint.SetText("  f to toggle")
		return
	}
	if b.game == nil {
		b.hint.SetText("")
		return
	}

	if b.game.Finished() {
		winner, ok := b.game.Result()
		if !ok {
			b.hint.SetText("  Game over\n  q · return to menu")
			return
		}
		b.hint.SetText(fmt.Sprintf("  ⚑ %s wins · %s\n  q · return to menu",
			sideLabel(winner), b.game.PlayerFor(winner).Name))
		return
	}

	symbol := b.cfg.Theme.Symbols.Sword
	if b.game.Turn() == tafl.SideDefense {
		symbol = b.cfg.Theme.Symbols.Shield
	}
	status := fmt.Sprintf("  %c %s to move · %s", symbol, sideLabel(b.game.Turn()), b.game.PlayerFor(b.game.Turn()).Name)
	if b.picked != nil {
		status += fmt.Sprintf(" · placing %s", tafl.FormatPosition(*b.picked))
	}
	if b.notice != "" {
		status += fmt.Sprintf("   [yellow]%s[-]", b.notice)
	}
	controls := "  hjkl/↑↓←→ move   ⏎ pick/place   / type move   s save   f focus   q quit"
	b.hint.SetText(status + "\n" + controls)
}

// sideLabel is the display name of a side, capitalized for the UI.
func sideLabel(s tafl.Side) string {
	if s == tafl.SideAttack {
		return "Attack"
	}
	return "Defense"
}

// drawBoardCell draws one board square (2 characters wide).
func drawBoardCell(s tcell.Screen, c tcell.Style, r rune, col, row, l, t int) {
	// Piece or terrain marker at position 0
	s.SetContent(l+col*2, t+row, r, nil, c)
	// Position 1: space (the square's color covers the area)
	s.SetContent(l+col*2+1, t+row, ' ', nil, c)
}

func (b *TaflBoardUI) drawCoordinates(s tcell.Screen, x, y int) {
	n := b.game.Board().Size()

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(b.styles[8])
	lpHighlight := tcell.StyleDefault.Background(b.styles[10])

	// 1-based column numbers along the top edge
	for col := 0; col < n; col++ {
		_style := style
		if col == b.selCol {
			_style = highlight
		} else if b.lastMove != nil && col == b.lastMove.To.Col {
			_style = lpHighlight
		}
		displayNum := col + 1
		tensRune := ' '
		if displayNum >= 10 {
			tensRune = rune('0' + displayNum/10)
		}
		s.SetContent(x+4+col*2, y, tensRune, nil, _style)
		s.SetContent(x+4+col*2+1, y, rune('0'+displayNum%10), nil, _style)
	}

	// Letter rows down the left, 'a' at the top
	vCoord := int('a')
	if b.cfg.Theme.FullWidthLetters {
		vCoord = int('ａ')
	}
	for row := 0; row < n; row++ {
		_style := style
		if row == b.selRow {
			_style = highlight
		} else if b.lastMove != nil && row == b.lastMove.To.Row {
			_style = lpHighlight
		}
		s.SetContent(x+2, y+1+row, rune(vCoord+row), nil, _style)
	}
	s.Show()
}
