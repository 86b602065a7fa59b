package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the amber-on-slate color palette for the menu UI.
var MenuColors = struct {
	Border      tcell.Color // Muted blue-gray for borders
	BorderFocus tcell.Color // Amber for focused borders
	CardBG      tcell.Color // Dark gray background
	Title       tcell.Color // Bright white for title
	TitleAccent tcell.Color // Amber accent for decoration
	Label       tcell.Color // Light gray for labels
	Hint        tcell.Color // Dim gray for hints
	Selected    tcell.Color // Amber for selected items
	Unselected  tcell.Color // Dim gray for unselected items
	ButtonBG    tcell.Color // Button background
	ButtonFocus tcell.Color // Focused button
	ButtonText  tcell.Color // Focused button text
}{
	Border:      tcell.PaletteColor(60),  // Muted blue-gray
	BorderFocus: tcell.PaletteColor(179), // Amber
	CardBG:      tcell.PaletteColor(235), // Dark gray
	Title:       tcell.PaletteColor(255), // Bright white
	TitleAccent: tcell.PaletteColor(179), // Amber accent
	Label:       tcell.PaletteColor(250), // Light gray
	Hint:        tcell.PaletteColor(245), // Dim gray
	Selected:    tcell.PaletteColor(179), // Amber
	Unselected:  tcell.PaletteColor(245), // Dim gray
	ButtonBG:    tcell.PaletteColor(58),  // Dark amber
	ButtonFocus: tcell.PaletteColor(179), // Amber
	ButtonText:  tcell.PaletteColor(232), // Near-black on amber
}
