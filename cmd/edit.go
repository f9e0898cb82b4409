package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/querygguf/querygguf/internal/config"
	"github.com/querygguf/querygguf/internal/launcher"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in your editor",
	Long:  "Opens the config file in $EDITOR (nano if unset, notepad on Windows). The file contents are not parsed or validated.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Path(configDir(cmd))
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%w at %s (run 'querygguf init' to create one)", config.ErrNotFound, path)
		}

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "nano"
			if runtime.GOOS == "windows" {
				editor = "notepad"
			}
		}

		code, err := launcher.NewExec().Launch(&launcher.Plan{Exe: editor, Args: []string{path}})
		if err != nil {
			return err
		}
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
