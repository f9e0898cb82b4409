// Package cmd wires the querygguf CLI together.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/querygguf/querygguf/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "querygguf [mode]",
	Short:         "Quick llama.cpp query launcher",
	Long:          "querygguf launches local llama.cpp query sessions from named, preconfigured modes.",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = zerolog.DebugLevel
		}
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	},
	RunE: runLaunch,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config-dir", "", "config directory (default $QUERYGGUF_DIR or ~/.config/querygguf)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

// configDir resolves the effective config directory for a command.
func configDir(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("config-dir"); dir != "" {
		return dir
	}
	return config.Dir()
}
