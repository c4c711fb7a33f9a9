package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rundash/internal/platform/window"
	"github.com/vovakirdan/rundash/internal/storage"
)

var flagWidth int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Sports Rundash in a resizable desktop window.

The window height follows the width (0.6 x width, at most 500 pixels by
default). Start and Reset can be clicked in the bar below the field.

The window runs one simulation frame per input poll, at input.poll_rate
from the config, so --fps does not apply and is rejected here.

Controls:
  Enter          - Start a run
  Space/Up/W     - Jump
  Left/A Right/D - Move
  Down/S         - Push down
  R              - Reset
  Q/Esc          - Quit

Examples:
  rundash window
  rundash window --width 1024 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 800, "Initial window width in pixels")
}

// checkWindowFlags rejects global flags the window cannot honor.
func checkWindowFlags(cmd *cobra.Command) error {
	if f := cmd.Flags().Lookup("fps"); f != nil && f.Changed {
		return errors.New("--fps is not supported by window; set input.poll_rate in the config instead")
	}
	return nil
}

func runWindow(cmd *cobra.Command, args []string) {
	if err := checkWindowFlags(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := newLogger(os.Stderr)
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

	opts := window.Options{
		Config: cfg,
		Seed:   flagSeed,
		Width:  flagWidth,
		Logger: logger,
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
	} else {
		opts.Store = store
	}

	logger.Info("opening window", "width", flagWidth, "seed", flagSeed)
	runErr := window.Run(opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
