// termtafl is a terminal application for playing hnefatafl, hot-seat,
// on one keyboard.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"termtafl/config"
	"termtafl/save"
	"termtafl/tafl"
	"termtafl/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagSize     = flag.Int("size", 0, "Board size (11 or 13)")
	flagAttacker = flag.String("attacker", "", "Attacker's name")
	flagDefender = flag.String("defender", "", "Defender's name")
	flagPlay     = flag.Bool("play", false, "Start a game immediately with defaults")
	flagFocus    = flag.Bool("focus", false, "Start in focus mode (fullscreen board)")
	flagDebug    = flag.Bool("debug", false, "Write a debug log under the XDG state dir")
	flagVersion  = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.TaflBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var moveInput *tview.InputField
var saveBrowser *ui.SaveBrowserUI
var colorConfig *ui.ColorConfigUI
var cfg *config.Config
var record *save.Record

func main() {
	flag.Parse()

	// Handle --version
	if *flagVersion {
		fmt.Printf("termtafl %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		panic(err)
	}

	logFile, err := initLogging(*flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open debug log: %s\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	// Check if quick start requested
	quickStart := *flagPlay || *flagSize > 0 || *flagAttacker != "" || *flagDefender != "" || *flagFocus

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ⚔ termtafl ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetDynamicColors(true)
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewTaflBoard(cfg, gameHint)

	// Create game layout with board and side panel
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	// Typed move entry, shown on demand below the hint
	moveInput = tview.NewInputField()
	moveInput.SetLabel(" move: ")
	moveInput.SetFieldWidth(12)
	moveInput.SetDoneFunc(func(key tcell.Key) {
		text := moveInput.GetText()
		closeMoveInput()
		if key != tcell.KeyEnter {
			return
		}
		if err := gameBoard.SubmitTyped(text); err != nil {
			gameBoard.ShowNotice(err.Error())
		}
	})

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				closeRecord()
				rootPage.SwitchToPage("menu")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyEnter:
			gameBoard.PickOrPlace()
		case tcell.KeyEscape:
			gameBoard.ClearPick()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, 1)
			case 'k':
				gameBoard.MoveSelection(0, -1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case '/':
				openMoveInput()
			case 's':
				saveCurrent()
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	// Game setup screen
	setupUI := ui.NewGameSetup(cfg.Defaults,
		func(gameCfg tafl.GameConfig) {
			cfg.Defaults.BoardSize = int(gameCfg.BoardSize)
			cfg.Defaults.AttackerName = gameCfg.AttackerName
			cfg.Defaults.DefenderName = gameCfg.DefenderName
			cfg.Save()
			startGame(gameCfg)
		},
		func() {
			saveBrowser.Refresh()
			rootPage.SwitchToPage("saves")
		},
		func() {
			colorConfig.Reset()
			rootPage.SwitchToPage("colors")
		},
		func() {
			app.Stop()
		},
	)

	// Save browser screen
	saveBrowser = ui.NewSaveBrowser(
		func(info save.Info) {
			resumeGame(info)
		},
		func() {
			rootPage.SwitchToPage("menu")
		},
	)

	// Theme editor screen. Saving or discarding both land back on the menu;
	// the board re-reads the config either way.
	colorConfig = ui.NewColorConfig(cfg, func() {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("menu")
	})

	// Add pages - start on the menu by default, or gameview if quick start
	rootPage.AddPage("menu", setupUI.Centered(), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("saves", saveBrowser.Flex(), true, false)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	// Quick start if flags provided
	if quickStart {
		startGame(buildGameConfigFromFlags())
		// Enter focus mode if requested
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
	closeRecord()
}

// initLogging routes the global logger to a file when debugging, and
// silences it otherwise so log lines never corrupt the screen.
func initLogging(debug bool) (*os.File, error) {
	if !debug {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return nil, nil
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	path := filepath.Join(xdg.StateHome, "termtafl", "termtafl.log")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	log.Info().Str("version", Version).Msg("termtafl starting")
	return f, nil
}

// startGame begins a fresh game with the given configuration.
func startGame(gameCfg tafl.GameConfig) {
	g, err := tafl.NewGame(gameCfg)
	if err != nil {
		showError(fmt.Sprintf("Failed to start game:\n%s", err.Error()))
		return
	}
	attachGame(g, nil)
}

// resumeGame restores a saved game and reopens its file for later saves.
func resumeGame(info save.Info) {
	g, err := info.Restore()
	if err != nil {
		showError(fmt.Sprintf("Could not load save:\n%s", err.Error()))
		return
	}
	rec, err := save.ResumeRecord(info.Path, info.ID, g)
	if err != nil {
		showError(fmt.Sprintf("Could not reopen save:\n%s", err.Error()))
		return
	}
	log.Info().Str("path", info.Path).Msg("resumed saved game")
	attachGame(g, rec)
}

// attachGame points the board at a game and switches to the game view.
func attachGame(g *tafl.Game, rec *save.Record) {
	closeRecord()
	record = rec
	gameBoard.SetGame(g)
	if gameBoard.IsFocusMode() {
		ui.BuildFocusLayout(gameFrame, gameBoard)
	} else {
		ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
	}
	rootPage.SwitchToPage("gameview")
}

// saveCurrent writes the running game to disk, creating the save file on
// first use and rewriting it afterwards.
func saveCurrent() {
	g := gameBoard.Game()
	if g == nil {
		return
	}
	var err error
	if record == nil {
		record, err = save.NewRecord(config.SavesDir(), g)
	} else {
		err = record.Save()
	}
	if err != nil {
		showError(fmt.Sprintf("Save failed:\n%s", err.Error()))
		return
	}
	log.Debug().Str("path", record.Path).Msg("game saved")
	gameBoard.ShowNotice("saved")
}

func closeRecord() {
	if record != nil {
		record.Close()
		record = nil
	}
}

func openMoveInput() {
	if gameBoard.IsFocusMode() || gameBoard.IsFinished() {
		return
	}
	moveInput.SetText("")
	gameFrame.AddItem(moveInput, 1, 0, true)
	app.SetFocus(moveInput)
}

func closeMoveInput() {
	gameFrame.RemoveItem(moveInput)
	app.SetFocus(gameBoard.Box)
}

// buildGameConfigFromFlags creates a GameConfig from command-line flags.
func buildGameConfigFromFlags() tafl.GameConfig {
	// Start with the configured defaults
	gameCfg := tafl.GameConfig{
		BoardSize:    tafl.BoardSize(cfg.Defaults.BoardSize),
		AttackerName: cfg.Defaults.AttackerName,
		DefenderName: cfg.Defaults.DefenderName,
	}

	// Override with flags
	if *flagSize == 11 || *flagSize == 13 {
		gameCfg.BoardSize = tafl.BoardSize(*flagSize)
	}
	if *flagAttacker != "" {
		gameCfg.AttackerName = *flagAttacker
	}
	if *flagDefender != "" {
		gameCfg.DefenderName = *flagDefender
	}

	return gameCfg
}

// showError pops a modal over the current page.
func showError(msg string) {
	modal := tview.NewModal().
		SetText(msg).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.HidePage("error")
		})
	rootPage.AddPage("error", modal, true, true)
}
