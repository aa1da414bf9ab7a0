package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the difficulty menu, or straight into a game with
--difficulty.

Controls:
  Left/Right, A/D, H/L  - Move ship
  Space                 - Fire
  1/2/3                 - Easy/Medium/Hard (menu)
  Enter                 - Press highlighted button
  P                     - Play with the last difficulty
  R                     - Back to menu (after game over)
  Q/Ctrl+C              - Quit
  Ctrl+S                - Save a screenshot

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --config ./my-invaders.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Start immediately: easy, medium, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()

	var difficulty config.Difficulty
	if flagDifficulty != "" {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = d
	}

	// The TUI owns the terminal, so logs go to a file.
	var logOut io.Writer = io.Discard
	if logFile, err := openLogFile(flagLogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else {
		defer logFile.Close()
		logOut = logFile
	}
	logger, err := newLogger(logOut, "invaders")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	} else if v, verr := store.SchemaVersion(); verr == nil {
		logger.Debug("scores database ready", "path", flagDBPath, "schema", v)
	}

	game := invaders.New(gameCfg, tui.HighScoreStore(store), logger)
	if difficulty != "" {
		game.Start(difficulty)
	}

	// Run the game
	runErr := tui.Run(game, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
