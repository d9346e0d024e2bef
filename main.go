package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sheikhrachel/termlife/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "termlife [flags] PATTERN_FILE",
		Short: "Conway's Game of Life in the terminal",
		Long: `termlife reads live cell coordinates, one "(x,y)" per line, centres the
pattern in the terminal (shrinking it if it does not fit) and runs Conway's
Game of Life until a key is pressed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runGame(cmd.Context(), config, args[0])
		},
	}

	defaults := utils.DefaultConfig()
	flags := cmd.Flags()
	flags.Uint64P("refresh-rate-usec", "r", defaults.RefreshRate,
		fmt.Sprintf("delay between iterations in microseconds [%d, %d]", utils.MinRefreshRate, utils.MaxRefreshRate))
	flags.StringP("quit-key", "q", defaults.QuitKey, "key that ends the simulation (default any key)")
	flags.Bool("no-status", false, "hide the status line")
	flags.StringP("config", "c", "", "YAML or JSON config file")
	flags.String("log-level", defaults.LogLevel, "log level: debug, info, warn or error")
	flags.String("log-file", defaults.LogFile, "write logs to this file instead of stderr")

	return cmd
}

// resolveConfig layers explicitly set flags over the config file over defaults
func resolveConfig(cmd *cobra.Command) (utils.Config, error) {
	flags := cmd.Flags()

	config := utils.DefaultConfig()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := utils.LoadConfig(path)
		if err != nil {
			return config, err
		}
		config = loaded
	}

	if flags.Changed("refresh-rate-usec") {
		config.RefreshRate, _ = flags.GetUint64("refresh-rate-usec")
	}
	if flags.Changed("quit-key") {
		config.QuitKey, _ = flags.GetString("quit-key")
	}
	if flags.Changed("no-status") {
		hide, _ := flags.GetBool("no-status")
		config.ShowStatus = !hide
	}
	if flags.Changed("log-level") {
		config.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		config.LogFile, _ = flags.GetString("log-file")
	}

	return config, config.Validate()
}
