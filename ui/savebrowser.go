package ui

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtafl/config"
	"termtafl/save"
)

// SaveBrowserUI provides a screen for browsing and resuming saved games.
type SaveBrowserUI struct {
	flex     *tview.Flex
	saveList *tview.List
	preview  *tview.Box
	hint     *tview.TextView
	saves    []save.Info
	selected int
	onOpen   func(save.Info)
	onDone   func()
}

// NewSaveBrowser creates a new save browser screen. onOpen fires when the
// player picks a save to resume.
func NewSaveBrowser(onOpen func(save.Info), onDone func()) *SaveBrowserUI {
	sb := &SaveBrowserUI{
		onOpen: onOpen,
		onDone: onDone,
	}

	// Save list (left panel)
	sb.saveList = tview.NewList()
	sb.saveList.SetBorder(true)
	sb.saveList.SetTitle(" Saved Games ")
	sb.saveList.ShowSecondaryText(false)
	sb.saveList.SetHighlightFullLine(true)
	sb.saveList.SetMainTextStyle(tcell.StyleDefault.Foreground(MenuColors.Label))
	sb.saveList.SetSelectedStyle(tcell.StyleDefault.
		Foreground(MenuColors.ButtonText).
		Background(MenuColors.ButtonFocus))

	// Preview box (right panel)
	sb.preview = tview.NewBox()
	sb.preview.SetBorder(true)
	sb.preview.SetTitle(" Preview ")
	sb.preview.SetDrawFunc(sb.drawPreview)

	// Hint bar
	sb.hint = tview.NewTextView()
	sb.hint.SetDynamicColors(true)
	sb.hint.SetBorder(false)
	sb.hint.SetText("  [dimgray]⏎[-] resume  [dimgray]d[-] delete  [dimgray]q[-] back")

	// Handle list selection changes
	sb.saveList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		sb.selected = index
	})

	// Handle resume
	sb.saveList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		sb.resumeSelected()
	})

	// Input handling
	sb.saveList.SetInputCapture(sb.handleInput)

	// Layout: list left, preview right, hint bottom
	topRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(sb.saveList, 38, 0, true).
		AddItem(sb.preview, 0, 1, false)

	sb.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(topRow, 0, 1, true).
		AddItem(sb.hint, 1, 0, false)

	sb.loadSaves()
	return sb
}

// Flex returns the flex container for this UI.
func (sb *SaveBrowserUI) Flex() *tview.Flex {
	return sb.flex
}

// Refresh reloads the save list from disk.
func (sb *SaveBrowserUI) Refresh() {
	sb.loadSaves()
}

// loadSaves scans the saves directory.
func (sb *SaveBrowserUI) loadSaves() {
	sb.saveList.Clear()
	sb.saves = nil
	sb.selected = 0

	saves, err := save.List(config.SavesDir())
	if err != nil || len(saves) == 0 {
		sb.saveList.AddItem("[dimgray]No saved games[-]", "", 0, nil)
		return
	}

	sb.saves = saves
	for _, g := range saves {
		label := fmt.Sprintf("%s  %dx%d  %s", g.SavedAt.Format("2006-01-02 15:04"), g.BoardSize, g.BoardSize, g.Turn)
		sb.saveList.AddItem(label, "", 0, nil)
	}
}

// handleInput processes keyboard input for the save browser.
func (sb *SaveBrowserUI) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		if sb.onDone != nil {
			sb.onDone()
		}
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			if sb.onDone != nil {
				sb.onDone()
			}
			return nil
		case 'd':
			sb.deleteSelected()
			return nil
		}
	}
	return event
}

// resumeSelected hands the chosen save to the caller.
func (sb *SaveBrowserUI) resumeSelected() {
	if sb.selected < 0 || sb.selected >= len(sb.saves) {
		return
	}
	if sb.onOpen != nil {
		sb.onOpen(sb.saves[sb.selected])
	}
}

// deleteSelected removes the currently selected save file.
func (sb *SaveBrowserUI) deleteSelected() {
	if sb.selected < 0 || sb.selected >= len(sb.saves) {
		return
	}

	os.Remove(sb.saves[sb.selected].Path)
	sb.loadSaves()
}

// drawPreview renders a mini board and the save metadata.
func (sb *SaveBrowserUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if sb.selected < 0 || sb.selected >= len(sb.saves) {
		return x, y, width, height
	}

	info := sb.saves[sb.selected]
	n := info.BoardSize
	if len(info.Cells) < n {
		return x, y, width, height
	}

	startX := x + 2
	startY := y + 1

	// Check we have room
	if width < n+4 || height < n+8 {
		return x, y, width, height
	}

	emptyStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(240))
	terrainStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(95))
	swordStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(250))
	shieldStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(255)).Bold(true)
	kingStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(220)).Bold(true)

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			ch := '·'
			style := emptyStyle
			switch info.Cells[row][col] {
			case 1:
				ch, style = '●', shieldStyle
			case 2:
				ch, style = '▲', swordStyle
			case 3:
				ch, style = '♚', kingStyle
			default:
				if (row == 0 || row == n-1) && (col == 0 || col == n-1) {
					ch, style = '░', terrainStyle
				} else if row == n/2 && col == n/2 {
					ch, style = '▓', terrainStyle
				}
			}
			screen.SetContent(startX+col, startY+row, ch, nil, style)
		}
	}

	// Metadata below the board
	infoY := startY + n + 1
	infoStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(250))
	dimStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(245))
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent)

	drawText(screen, startX, infoY, fmt.Sprintf("%dx%d", n, n), infoStyle)
	drawText(screen, startX+6, infoY, fmt.Sprintf("| %s to move", info.Turn), dimStyle)

	infoY++
	drawText(screen, startX, infoY, fmt.Sprintf("A: %s", info.Attacker), dimStyle)
	infoY++
	drawText(screen, startX, infoY, fmt.Sprintf("D: %s", info.Defender), dimStyle)

	infoY++
	drawText(screen, startX, infoY, fmt.Sprintf("Saved: %s", info.SavedAt.Format("2006-01-02 15:04")), accentStyle)

	return x, y, width, height
}

// drawText writes a string to the screen at the given position.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
