// Package save persists hnefatafl sessions as JSON files and reads them
// back, validating everything before it reaches the rules engine.
package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"termtafl/tafl"
)

// FormatVersion is written into every save and checked on load.
const FormatVersion = 1

type InvalidSave struct {
	err string
}

func (e *InvalidSave) Error() string {
	return fmt.Sprintf("Save error: %s", e.err)
}

// SavedGame is the on-disk form of one session. Cells hold piece codes in
// row-major order: 0 empty, 1 shield, 2 sword, 3 king. Terrain is not
// stored; it follows from the board size.
type SavedGame struct {
	Version   int       `json:"version"`
	ID        string    `json:"id"`
	SavedAt   time.Time `json:"saved_at"`
	BoardSize int       `json:"board_size"`
	Turn      string    `json:"turn"`
	Attacker  string    `json:"attacker"`
	Defender  string    `json:"defender"`
	Cells     [][]int   `json:"cells"`
}

// Record tracks a session on disk. Every Save rewrites the whole file, so
// the save is complete and loadable after each call even if the program
// dies without Close.
type Record struct {
	Path string
	ID   uuid.UUID
	game *tafl.Game
	file *os.File
}

// NewRecord creates a save file for g in dir and writes the first snapshot.
func NewRecord(dir string, g *tafl.Game) (*Record, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create saves dir: %w", err)
	}

	id := uuid.New()
	size := g.Board().Size()
	filename := fmt.Sprintf("%s_%dx%d_%s.json",
		time.Now().Format("2006-01-02_150405"), size, size, id.String()[:8])
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create save file: %w", err)
	}

	r := &Record{Path: path, ID: id, game: g, file: f}
	if err := r.flush(); err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// ResumeRecord reopens an existing save file so a restored session keeps
// saving to the same place. A save carrying an unreadable id gets a fresh
// one.
func ResumeRecord(path, id string, g *tafl.Game) (*Record, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		parsed = uuid.New()
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("open save file: %w", err)
	}
	return &Record{Path: path, ID: parsed, game: g, file: f}, nil
}

// Save rewrites the file with the session's current state.
func (r *Record) Save() error {
	return r.flush()
}

// Close performs a final flush and closes the file handle.
func (r *Record) Close() {
	if r.file == nil {
		return
	}
	r.flush()
	r.file.Close()
	r.file = nil
}

// flush rewrites the complete save file from scratch.
func (r *Record) flush() error {
	if r.file == nil {
		return fmt.Errorf("file already closed")
	}

	data, err := json.MarshalIndent(snapshot(r.game, r.ID), "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if _, err := r.file.Seek(0, 0); err != nil {
		return err
	}
	if err := r.file.Truncate(0); err != nil {
		return err
	}
	if _, err := r.file.Write(data); err != nil {
		return err
	}
	return r.file.Sync()
}

// snapshot captures g in its on-disk form.
func snapshot(g *tafl.Game, id uuid.UUID) SavedGame {
	board := g.Board()
	n := board.Size()
	cells := make([][]int, n)
	for row := 0; row < n; row++ {
		cells[row] = make([]int, n)
		for col := 0; col < n; col++ {
			cells[row][col] = int(board.At(tafl.Position{Row: row, Col: col}).Piece)
		}
	}
	cfg := g.Config()
	return SavedGame{
		Version:   FormatVersion,
		ID:        id.String(),
		SavedAt:   time.Now(),
		BoardSize: n,
		Turn:      g.Turn().String(),
		Attacker:  cfg.AttackerName,
		Defender:  cfg.DefenderName,
		Cells:     cells,
	}
}

// Load reads and validates one save file.
func Load(path string) (*SavedGame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sg SavedGame
	if err := json.Unmarshal(data, &sg); err != nil {
		return nil, fmt.Errorf("parse save %s: %w", filepath.Base(path), err)
	}
	if err := sg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return &sg, nil
}

// validate rejects states that must never reach the engine.
func (sg *SavedGame) validate() error {
	if sg.Version != FormatVersion {
		return &InvalidSave{fmt.Sprintf("unsupported format version %d", sg.Version)}
	}
	if !tafl.BoardSize(sg.BoardSize).Valid() {
		return &InvalidSave{fmt.Sprintf("unsupported board size %d", sg.BoardSize)}
	}
	if len(sg.Cells) != sg.BoardSize {
		return &InvalidSave{fmt.Sprintf("grid has %d rows, want %d", len(sg.Cells), sg.BoardSize)}
	}
	kings := 0
	for row, cols := range sg.Cells {
		if len(cols) != sg.BoardSize {
			return &InvalidSave{fmt.Sprintf("row %d has %d cells, want %d", row, len(cols), sg.BoardSize)}
		}
		for col, code := range cols {
			if code < int(tafl.PieceNone) || code > int(tafl.PieceKing) {
				return &InvalidSave{fmt.Sprintf("unknown piece code %d at row %d col %d", code, row, col)}
			}
			if tafl.PieceKind(code) == tafl.PieceKing {
				kings++
			}
		}
	}
	if kings != 1 {
		return &InvalidSave{fmt.Sprintf("grid holds %d kings, want exactly one", kings)}
	}
	if _, err := parseSide(sg.Turn); err != nil {
		return err
	}
	return nil
}

// Restore builds a live game from a validated save.
func (sg *SavedGame) Restore() (*tafl.Game, error) {
	turn, err := parseSide(sg.Turn)
	if err != nil {
		return nil, err
	}
	pieces := make([][]tafl.PieceKind, len(sg.Cells))
	for row, cols := range sg.Cells {
		pieces[row] = make([]tafl.PieceKind, len(cols))
		for col, code := range cols {
			pieces[row][col] = tafl.PieceKind(code)
		}
	}
	cfg := tafl.GameConfig{
		BoardSize:    tafl.BoardSize(sg.BoardSize),
		AttackerName: sg.Attacker,
		DefenderName: sg.Defender,
	}
	return tafl.RestoreGame(cfg, pieces, turn)
}

func parseSide(s string) (tafl.Side, error) {
	switch s {
	case tafl.SideAttack.String():
		return tafl.SideAttack, nil
	case tafl.SideDefense.String():
		return tafl.SideDefense, nil
	}
	return 0, &InvalidSave{fmt.Sprintf("unknown turn %q", s)}
}

// Info pairs a save's metadata with where it lives on disk.
type Info struct {
	Path string
	Name string
	SavedGame
}

// List scans dir for save files and returns them newest-first by save
// time. Malformed files are skipped rather than failing the whole listing;
// a missing directory just means no saves yet.
func List(dir string) ([]Info, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read saves dir: %w", err)
	}

	var saves []Info
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		sg, err := Load(path)
		if err != nil {
			continue
		}
		saves = append(saves, Info{Path: path, Name: e.Name(), SavedGame: *sg})
	}

	slices.SortFunc(saves, func(a, b Info) int {
		switch {
		case a.SavedAt.After(b.SavedAt):
			return -1
		case b.SavedAt.After(a.SavedAt):
			return 1
		}
		return 0
	})
	return saves, nil
}
