package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/querygguf/querygguf/internal/config"
	"github.com/querygguf/querygguf/internal/modes"
	"github.com/querygguf/querygguf/internal/scan"
)

var manualCmd = &cobra.Command{
	Use:   "manual",
	Short: "Assemble a one-off launch interactively",
	Long:  "Pick a model from the configured model directories, choose a prompt file and sampling parameters, and launch. The assembled mode is printed as TOML so it can be pasted into the config.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configDir(cmd))
		if err != nil {
			return err
		}
		applyTerminalFlags(cmd, cfg)

		p := modes.NewPrompter()
		m, err := buildManualMode(cfg, p)
		if err != nil {
			return err
		}

		p.Printf("\nEquivalent config entry:\n\n%s\n", modeTOML(m))

		ok, err := askYesNo(p, "Launch now?", true)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		return launchMode(cfg, m)
	},
}

func init() {
	manualCmd.Flags().Bool("terminal", false, "launch in a new terminal window")
	manualCmd.Flags().Bool("no-terminal", false, "launch in the current terminal")
	rootCmd.AddCommand(manualCmd)
}

// buildManualMode walks the user through assembling a Mode from scanned
// models and prompts. The result is never written to the config file.
func buildManualMode(cfg *config.Config, p *modes.Prompter) (*config.Mode, error) {
	found := scan.Models(cfg.ModelDirs)
	if len(found) == 0 {
		return nil, fmt.Errorf("no .gguf models found under %s", strings.Join(cfg.ModelDirs, ", "))
	}

	p.Printf("Available models:\n")
	for i, path := range found {
		p.Printf("%3d. %s\n", i+1, filepath.Base(path))
	}
	modelIdx, err := askIndex(p, "Model number: ", len(found))
	if err != nil {
		return nil, err
	}

	m := &config.Mode{
		Name:             "manual",
		Model:            found[modelIdx],
		Temp:             0.8,
		TopK:             40,
		TopP:             0.9,
		CtxSize:          2048,
		InteractiveFirst: true,
	}

	if prompts := scan.Prompts(cfg.PromptsDir); len(prompts) > 0 {
		p.Printf("\nAvailable prompts:\n")
		for i, path := range prompts {
			p.Printf("%3d. %s\n", i+1, filepath.Base(path))
		}
		input, err := p.Ask("Prompt number (Enter for none): ")
		if err != nil {
			return nil, err
		}
		if input != "" {
			n, err := strconv.Atoi(input)
			if err != nil || n < 1 || n > len(prompts) {
				return nil, fmt.Errorf("invalid prompt selection %q", input)
			}
			m.PromptFile = prompts[n-1]
		}
	}

	if err := askFloat(p, "Temperature", &m.Temp); err != nil {
		return nil, err
	}
	if err := askInt(p, "Top-K", &m.TopK); err != nil {
		return nil, err
	}
	if err := askFloat(p, "Top-P", &m.TopP); err != nil {
		return nil, err
	}
	if err := askInt(p, "Context size", &m.CtxSize); err != nil {
		return nil, err
	}
	if err := askInt(p, "Threads (0 = auto)", &m.Threads); err != nil {
		return nil, err
	}

	gpu, err := askYesNo(p, "Offload layers to GPU?", false)
	if err != nil {
		return nil, err
	}
	if gpu {
		m.GPU = true
		m.GPULayers = 20
		if err := askInt(p, "GPU layers", &m.GPULayers); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// askInt prompts with the current value as default; empty input keeps it.
func askInt(p *modes.Prompter, label string, v *int) error {
	input, err := p.Ask(fmt.Sprintf("%s [%d]: ", label, *v))
	if err != nil || input == "" {
		return err
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return fmt.Errorf("invalid %s value %q", strings.ToLower(label), input)
	}
	*v = n
	return nil
}

func askFloat(p *modes.Prompter, label string, v *float64) error {
	input, err := p.Ask(fmt.Sprintf("%s [%g]: ", label, *v))
	if err != nil || input == "" {
		return err
	}
	f, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return fmt.Errorf("invalid %s value %q", strings.ToLower(label), input)
	}
	*v = f
	return nil
}

func askYesNo(p *modes.Prompter, label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	input, err := p.Ask(fmt.Sprintf("%s (%s): ", label, hint))
	if err != nil {
		return false, err
	}
	switch strings.ToLower(input) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// askIndex reads a 1-based selection into a list of n items and returns
// the 0-based index.
func askIndex(p *modes.Prompter, prompt string, n int) (int, error) {
	input, err := p.Ask(prompt)
	if err != nil {
		return 0, err
	}
	idx, err := strconv.Atoi(input)
	if err != nil || idx < 1 || idx > n {
		return 0, fmt.Errorf("invalid selection %q", input)
	}
	return idx - 1, nil
}

// modeTOML renders a mode as a [[mode]] block.
func modeTOML(m *config.Mode) string {
	var buf bytes.Buffer
	wrapper := struct {
		Mode []config.Mode `toml:"mode"`
	}{Mode: []config.Mode{*m}}
	if err := toml.NewEncoder(&buf).Encode(wrapper); err != nil {
		return fmt.Sprintf("# could not render mode: %v", err)
	}
	return buf.String()
}
