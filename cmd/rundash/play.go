package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rundash/internal/core"
	"github.com/vovakirdan/rundash/internal/platform/tui"
	"github.com/vovakirdan/rundash/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Sports Rundash in the terminal.

Controls:
  Enter          - Start a run
  Space/Up/W     - Jump
  Left/A Right/D - Move
  Down/S         - Push down
  R              - Reset
  Ctrl+S         - Save a text screenshot
  Q/Esc/Ctrl+C   - Quit

The terminal owns the screen while playing, so logs are only written
when --log-file is set.

Examples:
  rundash play
  rundash play --difficulty easy
  rundash play --seed 42 --log-file rundash.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

var flagScreenshots string

func init() {
	playCmd.Flags().StringVar(&flagScreenshots, "screenshots", "~/.rundash/screenshots", "Directory for ctrl+s screenshots (empty disables)")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := core.DefaultConfig()
	// Get terminal size early so the first frame is laid out correctly
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	rt.TickRate = flagFPS
	rt.InputRate = cfg.Input.PollRate
	rt.Seed = flagSeed

	opts := tui.Options{Config: cfg, Runtime: rt, Logger: logger}
	if flagScreenshots != "" {
		dir, expErr := storage.ExpandHome(flagScreenshots)
		if expErr != nil {
			logger.Warn("screenshots disabled", "error", expErr)
		} else {
			opts.ScreenshotDir = dir
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
	} else {
		opts.Store = store
	}

	logger.Info("starting terminal session", "cols", rt.ScreenW, "rows", rt.ScreenH, "seed", flagSeed)
	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
