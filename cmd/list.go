package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/querygguf/querygguf/internal/config"
)

var listDescStyle = lipgloss.NewStyle().Faint(true)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured modes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configDir(cmd))
		if err != nil {
			return err
		}

		fmt.Printf("%-16s %-8s %-7s %-28s %s\n", "NAME", "THREADS", "GPU", "MODEL", "DESCRIPTION")
		fmt.Println(strings.Repeat("─", 78))
		for _, m := range cfg.Modes {
			name := m.Name
			if m.Name == cfg.DefaultMode {
				name += " *"
			}
			threads := "auto"
			if m.Threads > 0 {
				threads = strconv.Itoa(m.Threads)
			}
			gpu := "-"
			if m.GPU {
				gpu = strconv.Itoa(m.GPULayers)
			}
			fmt.Printf("%-16s %-8s %-7s %-28s %s\n",
				name, threads, gpu, filepath.Base(m.Model), listDescStyle.Render(m.Description))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
