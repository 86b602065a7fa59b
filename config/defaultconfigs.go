package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawPieceBackground:    false,
		DrawCursorBackground:   true,
		DrawLastMoveBackground: true,
		FullWidthLetters:       false,
		Colors: ConfigColors{
			BoardColor:      180,
			BoardColorAlt:   137,
			SwordColor:      232,
			ShieldColor:     255,
			KingColor:       220,
			FortressColor:   95,
			CastleColor:     60,
			CursorColorFG:   2,
			CursorColorBG:   4,
			SelectedColorBG: 3,
			LastMoveColorBG: 2,
		},
		Symbols: ConfigSymbols{
			Sword:    '▲',
			Shield:   '●',
			King:     '♚',
			Fortress: '░',
			Castle:   '▓',
			Cursor:   '┼',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Defaults: GameDefaults{
			BoardSize:    11,
			AttackerName: "Attacker",
			DefenderName: "Defender",
		},
	}
}
