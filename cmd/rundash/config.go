package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rundash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config
search and the --difficulty preset, as YAML. Redirect it to a file to
start a custom config.

Search order:
  --config <path>
  ~/.rundash/configs/rundash.yaml
  ./configs/rundash.yaml
  built-in defaults

With --defaults the embedded default file is printed verbatim, comments
included, ignoring any config on disk.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default config instead")
}

func runConfig(cmd *cobra.Command, args []string) {
	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	var cfg config.RundashConfig
	if !flagDefaults {
		cfg, err = loadConfig(logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := writeConfig(os.Stdout, cfg, flagDefaults); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeConfig prints cfg as YAML, or the embedded default file when
// defaults is set.
func writeConfig(w io.Writer, cfg config.RundashConfig, defaults bool) error {
	data := config.DefaultYAML()
	if !defaults {
		var err error
		if data, err = config.Marshal(cfg); err != nil {
			return err
		}
	}
	_, err := w.Write(data)
	return err
}
