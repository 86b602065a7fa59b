package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"termtafl/tafl"
)

// GameInfoPanel displays the players, piece counts and last move alongside
// the board.
type GameInfoPanel struct {
	box      *tview.TextView
	game     *tafl.Game
	lastMove *tafl.Move
	captured []tafl.Position
	notice   string
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetState updates the panel with the current game and the outcome of the
// most recent move.
func (p *GameInfoPanel) SetState(g *tafl.Game, lastMove *tafl.Move, captured []tafl.Position, notice string) {
	p.game = g
	p.lastMove = lastMove
	p.captured = captured
	p.notice = notice
	p.refresh()
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	if p.game == nil {
		p.box.SetText("")
		return
	}
	board := p.game.Board()

	var text string

	// Game Info section
	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	n := board.Size()
	text += fmt.Sprintf("[white]Board:[-:-:-] %d×%d\n", n, n)
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", p.game.MoveCount())

	// Sides section
	text += "\n[white::b]Sides[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Attack[-:-:-]  %s\n", p.game.PlayerFor(tafl.SideAttack).Name)
	text += fmt.Sprintf("[dimgray]  swords %d[-]\n", board.CountPieces(tafl.PieceSword))
	text += fmt.Sprintf("[white]Defense[-:-:-] %s\n", p.game.PlayerFor(tafl.SideDefense).Name)
	shieldLine := fmt.Sprintf("  shields %d", board.CountPieces(tafl.PieceShield))
	if _, ok := board.KingPosition(); ok {
		shieldLine += " + king"
	}
	text += fmt.Sprintf("[dimgray]%s[-]\n", shieldLine)

	// Turn or outcome
	text += "\n"
	if p.game.Finished() {
		if winner, ok := p.game.Result(); ok {
			text += fmt.Sprintf("[green::b]⚑ %s wins[-:-:-]\n", sideLabel(winner))
			text += fmt.Sprintf("  %s\n", p.game.PlayerFor(winner).Name)
			text += fmt.Sprintf("[dimgray]  %s[-]\n", outcomeReason(board))
		}
	} else {
		text += fmt.Sprintf("[yellow::b]%s to move[-:-:-]\n", sideLabel(p.game.Turn()))
	}

	// Last move section
	if p.lastMove != nil {
		text += "\n[white::b]Last move[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"
		text += fmt.Sprintf("  %s\n", tafl.FormatMove(*p.lastMove))
		if len(p.captured) > 0 {
			taken := ""
			for i, pos := range p.captured {
				if i > 0 {
					taken += ", "
				}
				taken += tafl.FormatPosition(pos)
			}
			text += fmt.Sprintf("[red]  took %s[-]\n", taken)
		}
	}

	// Enclosure warning: the game plays on, but the king has nowhere left
	// to go.
	if !p.game.Finished() && tafl.KingCaptured(board) {
		text += "\n[yellow]king is sealed in[-]\n"
	}

	if p.notice != "" {
		text += fmt.Sprintf("\n[yellow]%s[-]\n", p.notice)
	}

	p.box.SetText(text)
}

// outcomeReason names how a finished game ended.
func outcomeReason(b *tafl.Board) string {
	switch {
	case tafl.KingEscaped(b):
		return "the king escaped"
	case tafl.KingCapturedSimple(b):
		return "the king was surrounded"
	default:
		return "attack has no swords left"
	}
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *TaflBoardUI, hint *tview.TextView) *tview.Flex {
	// Create the info panel
	infoPanel := NewGameInfoPanel()

	// Store panel reference in board for updates
	board.infoPanel = infoPanel
	infoPanel.SetState(board.game, board.lastMove, board.captured, board.notice)

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)         // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, compact status bar at bottom
	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 2, 0, false) // Compact: just 2 rows

	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *TaflBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	// Create the info panel
	infoPanel := NewGameInfoPanel()

	// Store panel reference in board for updates
	board.infoPanel = infoPanel
	infoPanel.SetState(board.game, board.lastMove, board.captured, board.notice)

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)         // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, compact status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 2, 0, false) // Compact: just 2 rows
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *TaflBoardUI) {
	gameFrame.Clear()

	// Calculate board dimensions
	boardWidth := 26 // default for 11x11
	boardHeight := 13
	if board.game != nil {
		n := board.game.Board().Size()
		boardWidth = n*2 + 4 // 2 chars per cell + coordinates
		boardHeight = n + 2  // + coordinates
	}

	// Center board with flex spacers
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)               // left spacer
	centerRow.AddItem(board.Box, boardWidth, 0, true) // board (fixed width)
	centerRow.AddItem(nil, 0, 1, false)               // right spacer

	gameFrame.AddItem(centerRow, boardHeight, 0, true) // center row (fixed height)
	gameFrame.AddItem(nil, 0, 1, false)                // bottom spacer
}
