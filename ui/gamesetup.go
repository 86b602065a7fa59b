package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtafl/config"
	"termtafl/tafl"
)

// setupWidget is anything on the setup card that can take focus.
type setupWidget interface {
	HandleKey(event *tcell.EventKey) bool
	SetFocused(focused bool)
}

// Focus order on the card: size radio, two name fields, then the buttons.
const setupFirstButton = 3

// GameSetupUI is the new-game screen: a card with board size, player
// names and the menu buttons.
type GameSetupUI struct {
	*MenuCard
	onCancel func()

	sizeSelect *RadioSelect
	attacker   *NameInput
	defender   *NameInput
	buttons    []*MenuButton
	widgets    []setupWidget
	focusIdx   int
	boardSize  tafl.BoardSize
}

// NewGameSetup creates the new-game screen. The callbacks fire when the
// player starts a game, opens the save browser, opens the color picker,
// or quits.
func NewGameSetup(defaults config.GameDefaults, onStart func(tafl.GameConfig), onSaves, onColors, onCancel func()) *GameSetupUI {
	setup := &GameSetupUI{
		MenuCard:  NewMenuCard("TERMTAFL"),
		onCancel:  onCancel,
		boardSize: tafl.SizeSmall,
	}
	setup.MenuCard.SetFocused(true)

	sizeIdx := 0
	if defaults.BoardSize == int(tafl.SizeLarge) {
		setup.boardSize = tafl.SizeLarge
		sizeIdx = 1
	}
	setup.sizeSelect = NewRadioSelect("Board size", []RadioOption{
		{Label: "11×11", Description: "24 swords vs 12 shields"},
		{Label: "13×13", Description: "the long war"},
	}, sizeIdx, func(index int) {
		if index == 1 {
			setup.boardSize = tafl.SizeLarge
		} else {
			setup.boardSize = tafl.SizeSmall
		}
	})

	setup.attacker = NewNameInput("Attacker", defaults.AttackerName, nil)
	setup.defender = NewNameInput("Defender", defaults.DefenderName, nil)

	setup.buttons = []*MenuButton{
		NewMenuButton("Start", true, func() {
			onStart(tafl.GameConfig{
				BoardSize:    setup.boardSize,
				AttackerName: setup.attacker.Value(),
				DefenderName: setup.defender.Value(),
			})
		}),
		NewMenuButton("Saved games", false, onSaves),
		NewMenuButton("Colors", false, onColors),
		NewMenuButton("Quit", false, onCancel),
	}

	setup.widgets = []setupWidget{setup.sizeSelect, setup.attacker, setup.defender}
	for _, b := range setup.buttons {
		setup.widgets = append(setup.widgets, b)
	}
	setup.setFocus(0)

	setup.SetInputCapture(setup.handleKey)
	return setup
}

// Centered wraps the card in spacers so it floats mid-screen.
func (s *GameSetupUI) Centered() *tview.Flex {
	column := tview.NewFlex().SetDirection(tview.FlexRow)
	column.AddItem(nil, 0, 1, false)
	column.AddItem(s, 19, 0, true)
	column.AddItem(nil, 0, 1, false)
	return CreateCenteredForm(column, 56)
}

func (s *GameSetupUI) setFocus(idx int) {
	if idx < 0 || idx >= len(s.widgets) {
		return
	}
	s.focusIdx = idx
	for i, w := range s.widgets {
		w.SetFocused(i == idx)
	}
}

func (s *GameSetupUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if s.widgets[s.focusIdx].HandleKey(event) {
		return nil
	}
	switch event.Key() {
	case tcell.KeyTab, tcell.KeyDown:
		s.setFocus((s.focusIdx + 1) % len(s.widgets))
		return nil
	case tcell.KeyBacktab, tcell.KeyUp:
		s.setFocus((s.focusIdx + len(s.widgets) - 1) % len(s.widgets))
		return nil
	case tcell.KeyLeft:
		if s.focusIdx > setupFirstButton {
			s.setFocus(s.focusIdx - 1)
			return nil
		}
	case tcell.KeyRight:
		if s.focusIdx >= setupFirstButton && s.focusIdx < len(s.widgets)-1 {
			s.setFocus(s.focusIdx + 1)
			return nil
		}
	case tcell.KeyEscape:
		if s.onCancel != nil {
			s.onCancel()
		}
		return nil
	case tcell.KeyRune:
		// Name fields swallow runes above, so 'q' only quits from
		// the radio or the buttons.
		if event.Rune() == 'q' && s.onCancel != nil {
			s.onCancel()
			return nil
		}
	}
	return event
}

// Draw renders the card chrome, then the widgets inside it.
func (s *GameSetupUI) Draw(screen tcell.Screen) {
	s.MenuCard.Draw(screen)

	x, y, width, height := s.GetInnerRect()
	if width < 48 || height < 17 {
		return
	}

	row := y + 6
	row += s.sizeSelect.Draw(screen, x+4, row, width-8)
	row++
	row += s.attacker.Draw(screen, x+4, row, width-8)
	row++
	row += s.defender.Draw(screen, x+4, row, width-8)
	row += 2

	col := x + 4
	for _, b := range s.buttons {
		col += b.Draw(screen, col, row) + 2
	}
	row += 2

	hintStyle := tcell.StyleDefault.Foreground(MenuColors.Hint).Background(MenuColors.CardBG)
	drawText(screen, x+4, row, "tab next · enter choose · esc quit", hintStyle)
}
