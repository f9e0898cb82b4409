// Package launcher turns a resolved mode into a llama-cli invocation
// and spawns it, either foreground in the current terminal or detached
// in a new terminal window.
package launcher

import (
	"fmt"
	"os"
	"strconv"

	"github.com/querygguf/querygguf/internal/config"
)

// Plan is the resolved, ready-to-spawn invocation for one launch.
type Plan struct {
	Exe      string
	Args     []string
	Dir      string
	Terminal bool
}

// PlanError reports a mode whose configuration cannot be launched
// (missing model path, model file not on disk, no llama-cli configured).
type PlanError struct {
	Mode   string
	Reason string
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("mode %q: %s", e.Mode, e.Reason)
}

// BuildPlan assembles the argument list for a mode. The flag order is
// fixed so repeated builds of the same mode and thread count produce
// identical plans.
func BuildPlan(cfg *config.Config, m *config.Mode, threads int) (*Plan, error) {
	if cfg.LlamaCLI == "" {
		return nil, &PlanError{Mode: m.Name, Reason: "llama_cli is not set in the configuration"}
	}
	if m.Model == "" {
		return nil, &PlanError{Mode: m.Name, Reason: "no model path configured"}
	}
	if _, err := os.Stat(m.Model); err != nil {
		return nil, &PlanError{Mode: m.Name, Reason: fmt.Sprintf("model file not found: %s", m.Model)}
	}

	args := []string{
		"-m", m.Model,
		"--threads", strconv.Itoa(threads),
		"--temp", formatFloat(m.Temp),
		"--top-k", strconv.Itoa(m.TopK),
		"--top-p", formatFloat(m.TopP),
		"--ctx-size", strconv.Itoa(m.CtxSize),
	}
	if m.PromptFile != "" {
		args = append(args, "--file", m.PromptFile)
	}
	if m.SystemPrompt != "" {
		args = append(args, "-p", m.SystemPrompt)
	}
	if m.GPU && m.GPULayers > 0 {
		args = append(args, "--n-gpu-layers", strconv.Itoa(m.GPULayers))
	}
	if m.InteractiveFirst {
		args = append(args, "--interactive-first")
	}
	args = append(args, "--no-display-prompt")

	return &Plan{
		Exe:      cfg.LlamaCLI,
		Args:     args,
		Dir:      cfg.Dir(),
		Terminal: cfg.TerminalLaunch,
	}, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
