package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtafl/config"
	"termtafl/tafl"
)

// themeEntry is one editable slot of the theme: a palette index for a color
// role, or the symbol drawn for a piece. Exactly one accessor is set.
type themeEntry struct {
	name   string
	color  func(t *config.Theme) *int
	symbol func(t *config.Theme) *rune
	runes  []rune
}

// themeEntries lists every role the colors screen edits, in display order.
// Symbol candidates keep the shipped default first.
var themeEntries = []themeEntry{
	{name: "Board", color: func(t *config.Theme) *int { return &t.Colors.BoardColor }},
	{name: "Board checker", color: func(t *config.Theme) *int { return &t.Colors.BoardColorAlt }},
	{name: "Sword", color: func(t *config.Theme) *int { return &t.Colors.SwordColor }},
	{name: "Shield", color: func(t *config.Theme) *int { return &t.Colors.ShieldColor }},
	{name: "King", color: func(t *config.Theme) *int { return &t.Colors.KingColor }},
	{name: "Fortress", color: func(t *config.Theme) *int { return &t.Colors.FortressColor }},
	{name: "Castle", color: func(t *config.Theme) *int { return &t.Colors.CastleColor }},
	{name: "Cursor", color: func(t *config.Theme) *int { return &t.Colors.CursorColorFG }},
	{name: "Cursor fill", color: func(t *config.Theme) *int { return &t.Colors.CursorColorBG }},
	{name: "Picked fill", color: func(t *config.Theme) *int { return &t.Colors.SelectedColorBG }},
	{name: "Last move fill", color: func(t *config.Theme) *int { return &t.Colors.LastMoveColorBG }},
	{name: "Sword symbol", symbol: func(t *config.Theme) *rune { return &t.Symbols.Sword },
		runes: []rune{'▲', '△', '♟', '♠', '◆', 'x'}},
	{name: "Shield symbol", symbol: func(t *config.Theme) *rune { return &t.Symbols.Shield },
		runes: []rune{'●', '○', '◉', '◈', '■', 'o'}},
	{name: "King symbol", symbol: func(t *config.Theme) *rune { return &t.Symbols.King },
		runes: []rune{'♚', '♔', '★', '✚', 'K'}},
	{name: "Fortress symbol", symbol: func(t *config.Theme) *rune { return &t.Symbols.Fortress },
		runes: []rune{'░', '▚', '◇', '#'}},
	{name: "Castle symbol", symbol: func(t *config.Theme) *rune { return &t.Symbols.Castle },
		runes: []rune{'▓', '▦', '◇', '+'}},
	{name: "Cursor symbol", symbol: func(t *config.Theme) *rune { return &t.Symbols.Cursor },
		runes: []rune{'┼', '◎', '✛', '+', '*'}},
}

// ColorConfigUI is the theme editor: one list entry per color role and piece
// symbol, cycled in place, with a live board-corner preview. Changes stay in
// a working copy until the player saves.
type ColorConfigUI struct {
	flex    *tview.Flex
	list    *tview.List
	preview *tview.Box
	hint    *tview.TextView
	cfg     *config.Config
	onDone  func()

	draft  config.Theme
	sample *tafl.Board
}

// NewColorConfig creates the theme editor screen. onDone fires on both save
// and discard; the saved config decides which happened.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	sample, err := tafl.NewBoard(tafl.SizeSmall)
	if err != nil {
		panic(err)
	}
	sample.SetupStartingPosition()
	// Step the king off the castle so both symbols show in the preview.
	sample.SetPiece(tafl.Position{Row: 5, Col: 5}, tafl.PieceNone)
	sample.SetPiece(tafl.Position{Row: 3, Col: 3}, tafl.PieceKing)

	cc := &ColorConfigUI{
		cfg:    cfg,
		onDone: onDone,
		draft:  cfg.Theme,
		sample: sample,
	}

	cc.list = tview.NewList()
	cc.list.SetBorder(true)
	cc.list.SetTitle(" Theme ")
	cc.list.ShowSecondaryText(false)
	cc.list.SetHighlightFullLine(true)
	cc.list.SetMainTextStyle(tcell.StyleDefault.Foreground(MenuColors.Label))
	cc.list.SetSelectedStyle(tcell.StyleDefault.
		Foreground(MenuColors.ButtonText).
		Background(MenuColors.ButtonFocus))
	cc.populate()
	cc.list.SetInputCapture(cc.handleInput)

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.hint = tview.NewTextView()
	cc.hint.SetDynamicColors(true)
	cc.hint.SetBorder(false)
	cc.hint.SetText("  [dimgray]←→[-] cycle  [dimgray]⏎[-] save  [dimgray]esc[-] back")

	topRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(cc.list, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	cc.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(topRow, 0, 1, true).
		AddItem(cc.hint, 1, 0, false)

	return cc
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// Reset reloads the working copy from the saved config and rewinds the
// selection. Called every time the screen is opened.
func (cc *ColorConfigUI) Reset() {
	cc.draft = cc.cfg.Theme
	cc.populate()
	cc.list.SetCurrentItem(0)
}

func (cc *ColorConfigUI) populate() {
	cc.list.Clear()
	for i := range themeEntries {
		cc.list.AddItem(cc.entryLabel(i), "", 0, nil)
	}
}

func (cc *ColorConfigUI) entryLabel(i int) string {
	e := themeEntries[i]
	if e.color != nil {
		v := *e.color(&cc.draft)
		return fmt.Sprintf("%-14s [#%06x]██[-] %3d", e.name, tcell.PaletteColor(v).Hex(), v)
	}
	return fmt.Sprintf("%-14s %c", e.name, *e.symbol(&cc.draft))
}

// cycle shifts the selected entry's value: colors step through the whole
// 256-color palette, symbols through their candidate runes.
func (cc *ColorConfigUI) cycle(step int) {
	i := cc.list.GetCurrentItem()
	if i < 0 || i >= len(themeEntries) {
		return
	}
	e := themeEntries[i]
	if e.color != nil {
		p := e.color(&cc.draft)
		*p = (*p + step + 256) % 256
	} else {
		p := e.symbol(&cc.draft)
		*p = cycleRune(e.runes, *p, step)
	}
	cc.list.SetItemText(i, cc.entryLabel(i), "")
}

// cycleRune steps through options; an unknown current value (hand-edited
// config) restarts at the first candidate.
func cycleRune(options []rune, current rune, step int) rune {
	for i, r := range options {
		if r == current {
			return options[(i+step+len(options))%len(options)]
		}
	}
	return options[0]
}

func (cc *ColorConfigUI) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft:
		cc.cycle(-1)
		return nil
	case tcell.KeyRight:
		cc.cycle(1)
		return nil
	case tcell.KeyEnter:
		cc.cfg.Theme = cc.draft
		cc.cfg.Save()
		cc.onDone()
		return nil
	case tcell.KeyEsc:
		cc.draft = cc.cfg.Theme
		cc.onDone()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			cc.cycle(-1)
			return nil
		case 'l':
			cc.cycle(1)
			return nil
		case 'j':
			return tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
		case 'k':
			return tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
		case 'q':
			cc.draft = cc.cfg.Theme
			cc.onDone()
			return nil
		}
	}
	return event
}

// drawPreview renders the top-left corner of an 11×11 opening with the
// working theme. A cursor, a picked shield and a just-moved sword are staged
// so the highlight roles preview too.
func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const view = 7
	if width < view*2+6 || height < view+5 {
		return x, y, width, height
	}
	t := &cc.draft
	left, top := x+2, y+1

	cursor := tafl.Position{Row: 2, Col: 2}
	picked := tafl.Position{Row: 4, Col: 4}
	moved := tafl.Position{Row: 1, Col: 5}

	for row := 0; row < view; row++ {
		for col := 0; col < view; col++ {
			pos := tafl.Position{Row: row, Col: col}
			cell := cc.sample.At(pos)

			bg := tcell.PaletteColor(t.Colors.BoardColor)
			if (col%2 + row%2) == 1 {
				bg = tcell.PaletteColor(t.Colors.BoardColorAlt)
			}
			switch cell.Kind {
			case tafl.CellFortress:
				bg = tcell.PaletteColor(t.Colors.FortressColor)
			case tafl.CellCastle:
				bg = tcell.PaletteColor(t.Colors.CastleColor)
			}

			drawRune := ' '
			fg := tcell.PaletteColor(t.Colors.BoardColor)
			switch cell.Piece {
			case tafl.PieceSword:
				drawRune, fg = t.Symbols.Sword, tcell.PaletteColor(t.Colors.SwordColor)
			case tafl.PieceShield:
				drawRune, fg = t.Symbols.Shield, tcell.PaletteColor(t.Colors.ShieldColor)
			case tafl.PieceKing:
				drawRune, fg = t.Symbols.King, tcell.PaletteColor(t.Colors.KingColor)
			default:
				switch cell.Kind {
				case tafl.CellFortress:
					drawRune = t.Symbols.Fortress
				case tafl.CellCastle:
					drawRune = t.Symbols.Castle
				}
			}
			if t.DrawPieceBackground && cell.Piece != tafl.PieceNone {
				fg, bg = bg, fg
			}

			switch {
			case pos == cursor:
				if t.DrawCursorBackground {
					bg = tcell.PaletteColor(t.Colors.CursorColorBG)
				} else {
					drawRune, fg = t.Symbols.Cursor, tcell.PaletteColor(t.Colors.CursorColorFG)
				}
			case pos == picked:
				bg = tcell.PaletteColor(t.Colors.SelectedColorBG)
			case pos == moved:
				if t.DrawLastMoveBackground {
					bg = tcell.PaletteColor(t.Colors.LastMoveColorBG)
				}
			}

			drawBoardCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), drawRune, col, row, left, top)
		}
	}

	dim := tcell.StyleDefault.Foreground(tcell.PaletteColor(240))
	drawText(screen, left, top+view+1, "staged: cursor, pick, last move", dim)
	return x, y, width, height
}
