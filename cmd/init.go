package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/querygguf/querygguf/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := configDir(cmd)
		path := config.Path(dir)
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		}
		if err := config.EnsureDirs(dir); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(config.Starter), 0644); err != nil {
			return err
		}

		blank := filepath.Join(dir, "prompts", "blankprompt.txt")
		if _, err := os.Stat(blank); err != nil {
			if err := os.WriteFile(blank, []byte(config.BlankPrompt), 0644); err != nil {
				return err
			}
		}

		fmt.Printf("Wrote starter config to %s\n", path)
		fmt.Println("Point llama_cli and your modes at real paths with 'querygguf edit'.")
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config")
	rootCmd.AddCommand(initCmd)
}
