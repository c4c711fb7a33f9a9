// rundash is Sports Rundash, a single-screen platformer for the terminal
// and the desktop.
//
// Usage:
//
//	rundash play             - Play in the terminal
//	rundash window           - Play in a desktop window
//	rundash scores           - Show the best score
//	rundash config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.rundash/rundash.db)
//	--config <path>       - Use a custom YAML config
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rundash/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rundash",
	Short: "Sports Rundash - hop, collect coins, dodge what falls",
	Long: `Sports Rundash is a single-screen platformer. Jump between platforms,
collect coins and avoid the obstacles falling from the sky.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  scores   - Show or reset the best score
  config   - Print the effective configuration

Examples:
  rundash play
  rundash play --difficulty hard
  rundash window --seed 42
  rundash scores --reset
  rundash config > ~/.rundash/configs/rundash.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.rundash/rundash.db", "Path to the high score database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Output goes to --log-file when set,
// otherwise to fallback. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, io.Closer(nopCloser{})
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rundash",
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// loadConfig resolves the config file and applies the difficulty preset.
func loadConfig(logger *log.Logger) (config.RundashConfig, error) {
	cfg, src, err := config.LoadRundash(flagConfig, func(path string, err error) {
		logger.Warn("ignoring unusable config", "path", path, "error", err)
	})
	if err != nil {
		return cfg, err
	}
	switch src {
	case config.SourceBuiltin:
		logger.Warn("embedded config unusable, using built-in defaults")
	default:
		logger.Debug("config loaded", "source", src)
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyRundashPreset(&cfg, preset)
	return cfg, nil
}
