package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/querygguf/querygguf/internal/config"
	"github.com/querygguf/querygguf/internal/launcher"
	"github.com/querygguf/querygguf/internal/modes"
	"github.com/querygguf/querygguf/internal/sysinfo"
)

var runCmd = &cobra.Command{
	Use:   "run [mode]",
	Short: "Launch a query session (the default command)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLaunch,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().Bool("terminal", false, "launch in a new terminal window")
		c.Flags().Bool("no-terminal", false, "launch in the current terminal")
	}
	rootCmd.AddCommand(runCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configDir(cmd))
	if err != nil {
		return err
	}
	applyTerminalFlags(cmd, cfg)

	var m *config.Mode
	if len(args) > 0 {
		m, err = modes.Resolve(cfg, args[0])
	} else {
		m, err = modes.PromptSelect(cfg, modes.NewPrompter())
	}
	if err != nil {
		return err
	}

	return launchMode(cfg, m)
}

// applyTerminalFlags lets --terminal/--no-terminal override the
// configured terminal_launch preference for this invocation.
func applyTerminalFlags(cmd *cobra.Command, cfg *config.Config) {
	if on, _ := cmd.Flags().GetBool("terminal"); on {
		cfg.TerminalLaunch = true
	}
	if off, _ := cmd.Flags().GetBool("no-terminal"); off {
		cfg.TerminalLaunch = false
	}
}

// launchMode builds the plan for a resolved mode and spawns it,
// propagating the child's exit code for foreground launches.
func launchMode(cfg *config.Config, m *config.Mode) error {
	threads := sysinfo.ForMode(m.Threads)
	plan, err := launcher.BuildPlan(cfg, m, threads)
	if err != nil {
		return err
	}

	if cfg.LoggingEnabled {
		if err := launcher.RecordLaunch(cfg.LogDir, m.Name, plan); err != nil {
			log.Warn().Err(err).Msg("could not write launch record")
		}
	}

	if plan.Terminal {
		fmt.Printf("Launching %s in a new terminal...\n", m.Name)
	} else {
		fmt.Printf("Launching %s (%d threads)...\n", m.Name, threads)
	}

	code, err := launcher.NewExec().Launch(plan)
	if err != nil {
		return err
	}
	if code != 0 {
		os.Exit(code)
	}
	return nil
}
