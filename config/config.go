package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "termtafl/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor      int `json:"board"`
	BoardColorAlt   int `json:"board_alt"`
	SwordColor      int `json:"sword"`
	ShieldColor     int `json:"shield"`
	KingColor       int `json:"king"`
	FortressColor   int `json:"fortress"`
	CastleColor     int `json:"castle"`
	CursorColorFG   int `json:"cursor_fg"`
	CursorColorBG   int `json:"cursor_bg"`
	SelectedColorBG int `json:"selected_bg"`
	LastMoveColorBG int `json:"last_move_bg"`
}

type ConfigSymbols struct {
	Sword    rune `json:"sword"`
	Shield   rune `json:"shield"`
	King     rune `json:"king"`
	Fortress rune `json:"fortress"`
	Castle   rune `json:"castle"`
	Cursor   rune `json:"cursor"`
}

type Theme struct {
	DrawPieceBackground    bool          `json:"draw_piece_bg"`
	DrawCursorBackground   bool          `json:"draw_cursor_bg"`
	DrawLastMoveBackground bool          `json:"draw_last_move_bg"`
	FullWidthLetters       bool          `json:"fullwidth_letters"`
	Colors                 ConfigColors  `json:"colors"`
	Symbols                ConfigSymbols `json:"symbols"`
}

// GameDefaults seeds the new-game setup screen.
type GameDefaults struct {
	BoardSize    int    `json:"board_size"`
	AttackerName string `json:"attacker_name"`
	DefenderName string `json:"defender_name"`
}

type Config struct {
	Theme    Theme        `json:"theme"`
	Defaults GameDefaults `json:"defaults"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		readCfgFile(absPath, &config)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{
		c.Theme.Symbols.Sword, c.Theme.Symbols.Shield, c.Theme.Symbols.King,
		c.Theme.Symbols.Fortress, c.Theme.Symbols.Castle, c.Theme.Symbols.Cursor,
	} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if s := c.Defaults.BoardSize; s != 11 && s != 13 {
		return &InvalidConfig{fmt.Sprintf("board size must be 11 or 13, not %d", s)}
	}
	return nil
}

func (c *Config) Save() {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		panic(err)
	}
	saveCfgFile(absPath, c, 0664)
}

// SavesDir returns the directory where game saves are written.
func SavesDir() string {
	return filepath.Join(xdg.DataHome, "termtafl", "saves")
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		panic(err)
	}
	err = os.WriteFile(filePath, jsonData, perm)
	if err != nil {
		panic(err)
	}
}

func readCfgFile(filePath string, a interface{}) {
	configReader, err := os.ReadFile(filePath)
	if err == nil {
		err = json.Unmarshal(configReader, &a)
		if err != nil {
			panic(err)
		}
	}
}
