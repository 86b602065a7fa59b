package tafl

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Phase is the turn controller's state. Play loops through awaiting,
// applying, and evaluating until an evaluation lands on finished.
type Phase uint8

const (
	PhaseAwaitingMove Phase = iota
	PhaseApplyingMove
	PhaseEvaluating
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingMove:
		return "awaiting move"
	case PhaseApplyingMove:
		return "applying move"
	case PhaseEvaluating:
		return "evaluating"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// GameConfig selects the board size and player names for a session.
type GameConfig struct {
	BoardSize    BoardSize
	AttackerName string
	DefenderName string
}

// DefaultConfig returns a small-board game with the standard player names.
func DefaultConfig() GameConfig {
	return GameConfig{
		BoardSize:    SizeSmall,
		AttackerName: "Attacker",
		DefenderName: "Defender",
	}
}

// Player pairs a display name with the side it controls.
type Player struct {
	Name string
	Side Side
}

// MoveResult describes the outcome of one accepted move.
type MoveResult struct {
	Move      Move
	Captured  []Position // enemy pieces removed by this move
	Finished  bool
	Winner    Side // meaningful only when HasWinner
	HasWinner bool
}

// Game owns one hnefatafl session: the board, both players, and whose turn
// it is. Attack always moves first. Games are not safe for concurrent use.
type Game struct {
	board     *Board
	attacker  Player
	defender  Player
	turn      Side
	phase     Phase
	winner    Side
	hasWinner bool
	moveCount int
}

// NewGame allocates a board, lays out the starting position, and hands the
// first turn to the attacker.
func NewGame(cfg GameConfig) (*Game, error) {
	board, err := NewBoard(cfg.BoardSize)
	if err != nil {
		return nil, err
	}
	board.SetupStartingPosition()
	g := newGame(cfg, board, SideAttack)
	log.Info().
		Int("size", board.Size()).
		Str("attacker", g.attacker.Name).
		Str("defender", g.defender.Name).
		Msg("game started")
	return g, nil
}

// RestoreGame rebuilds a session from persisted state. The grid must match
// the configured size and hold exactly one king; richer validation is the
// save layer's job.
func RestoreGame(cfg GameConfig, pieces [][]PieceKind, turn Side) (*Game, error) {
	board, err := NewBoard(cfg.BoardSize)
	if err != nil {
		return nil, err
	}
	if len(pieces) != board.Size() {
		return nil, fmt.Errorf("restore: grid has %d rows, want %d", len(pieces), board.Size())
	}
	board.setupTerrain()
	kings := 0
	for row, cols := range pieces {
		if len(cols) != board.Size() {
			return nil, fmt.Errorf("restore: row %d has %d cells, want %d", row, len(cols), board.Size())
		}
		for col, piece := range cols {
			if piece == PieceKing {
				kings++
			}
			board.SetPiece(Position{Row: row, Col: col}, piece)
		}
	}
	if kings == 0 {
		return nil, ErrNoKing
	}
	if kings > 1 {
		return nil, fmt.Errorf("restore: %d kings on the board", kings)
	}
	g := newGame(cfg, board, turn)
	log.Info().
		Int("size", board.Size()).
		Str("turn", turn.String()).
		Int("pieces", board.CountPieces(PieceSword)+board.CountPieces(PieceShield)+1).
		Msg("game restored")
	return g, nil
}

func newGame(cfg GameConfig, board *Board, turn Side) *Game {
	attacker := cfg.AttackerName
	if attacker == "" {
		attacker = "Attacker"
	}
	defender := cfg.DefenderName
	if defender == "" {
		defender = "Defender"
	}
	g := &Game{
		board:    board,
		attacker: Player{Name: attacker, Side: SideAttack},
		defender: Player{Name: defender, Side: SideDefense},
		turn:     turn,
		phase:    PhaseAwaitingMove,
	}
	// A restored position may already be decided.
	if GameFinished(board) {
		g.phase = PhaseFinished
		g.winner, g.hasWinner = Winner(board)
	}
	return g
}

// SubmitMove validates and applies one move for side. On rejection the
// board, phase, and turn are untouched and the typed reason is returned.
// On success captures are resolved, the position is evaluated, and either
// the turn passes to the opponent or the game finishes.
func (g *Game) SubmitMove(side Side, m Move) (MoveResult, error) {
	if g.phase == PhaseFinished {
		return MoveResult{}, ErrGameFinished
	}
	if side != g.turn {
		return MoveResult{}, ErrNotYourTurn
	}
	if err := ValidateMove(g.board, side, m); err != nil {
		return MoveResult{}, err
	}

	g.phase = PhaseApplyingMove
	piece := g.board.At(m.From).Piece
	g.board.SetPiece(m.From, PieceNone)
	g.board.SetPiece(m.To, piece)
	captured := ResolveCaptures(g.board, side, m.To)
	g.moveCount++

	g.phase = PhaseEvaluating
	result := MoveResult{Move: m, Captured: captured}
	log.Debug().
		Str("side", side.String()).
		Str("move", FormatMove(m)).
		Int("captured", len(captured)).
		Msg("move applied")

	if GameFinished(g.board) {
		g.phase = PhaseFinished
		g.winner, g.hasWinner = Winner(g.board)
		result.Finished = true
		result.Winner = g.winner
		result.HasWinner = g.hasWinner
		log.Info().
			Str("winner", g.winner.String()).
			Int("moves", g.moveCount).
			Msg("game over")
		return result, nil
	}

	g.turn = side.Opponent()
	g.phase = PhaseAwaitingMove
	return result, nil
}

// Board returns the live board for read-only use by renderers and savers.
func (g *Game) Board() *Board {
	return g.board
}

// Turn returns the side to move.
func (g *Game) Turn() Side {
	return g.turn
}

// Phase returns the controller's current state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Finished reports whether the session is over.
func (g *Game) Finished() bool {
	return g.phase == PhaseFinished
}

// Result returns the winning side once the game has finished.
func (g *Game) Result() (Side, bool) {
	return g.winner, g.hasWinner
}

// MoveCount returns the number of accepted moves so far.
func (g *Game) MoveCount() int {
	return g.moveCount
}

// PlayerFor returns the player controlling side.
func (g *Game) PlayerFor(side Side) Player {
	if side == SideAttack {
		return g.attacker
	}
	return g.defender
}

// Config returns the session's configuration, as needed for saving.
func (g *Game) Config() GameConfig {
	return GameConfig{
		BoardSize:    BoardSize(g.board.Size()),
		AttackerName: g.attacker.Name,
		DefenderName: g.defender.Name,
	}
}
