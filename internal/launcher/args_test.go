package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/querygguf/querygguf/internal/config"
)

func writeModel(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.gguf")
	if err := os.WriteFile(path, []byte("gguf"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testMode(model string) *config.Mode {
	return &config.Mode{
		Name:             "fast",
		Model:            model,
		PromptFile:       "/prompts/shortcode.txt",
		Temp:             0.8,
		TopK:             40,
		TopP:             0.9,
		CtxSize:          2048,
		InteractiveFirst: true,
	}
}

func TestBuildPlanArgOrder(t *testing.T) {
	model := writeModel(t)
	cfg := &config.Config{LlamaCLI: "/usr/bin/llama-cli"}

	plan, err := BuildPlan(cfg, testMode(model), 4)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	want := []string{
		"-m", model,
		"--threads", "4",
		"--temp", "0.8",
		"--top-k", "40",
		"--top-p", "0.9",
		"--ctx-size", "2048",
		"--file", "/prompts/shortcode.txt",
		"--interactive-first",
		"--no-display-prompt",
	}
	if !reflect.DeepEqual(plan.Args, want) {
		t.Errorf("args = %q, want %q", plan.Args, want)
	}
	if plan.Exe != "/usr/bin/llama-cli" {
		t.Errorf("exe = %q", plan.Exe)
	}
}

func TestBuildPlanDeterministic(t *testing.T) {
	model := writeModel(t)
	cfg := &config.Config{LlamaCLI: "/usr/bin/llama-cli"}
	m := testMode(model)

	first, err := BuildPlan(cfg, m, 6)
	if err != nil {
		t.Fatal(err)
	}
	second, err := BuildPlan(cfg, m, 6)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(first.Args, "\x00") != strings.Join(second.Args, "\x00") {
		t.Errorf("repeated builds differ: %q vs %q", first.Args, second.Args)
	}
}

func TestBuildPlanNoGPUFlagWithoutGPU(t *testing.T) {
	model := writeModel(t)
	cfg := &config.Config{LlamaCLI: "/usr/bin/llama-cli"}
	m := testMode(model)
	m.GPULayers = 20 // layer count configured but gpu = false

	plan, err := BuildPlan(cfg, m, 4)
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range plan.Args {
		if a == "--n-gpu-layers" {
			t.Fatalf("gpu flag emitted for non-GPU mode: %q", plan.Args)
		}
	}
}

func TestBuildPlanGPUFlagOnce(t *testing.T) {
	model := writeModel(t)
	cfg := &config.Config{LlamaCLI: "/usr/bin/llama-cli"}
	m := testMode(model)
	m.GPU = true
	m.GPULayers = 20

	plan, err := BuildPlan(cfg, m, 4)
	if err != nil {
		t.Fatal(err)
	}

	count := 0
	for i, a := range plan.Args {
		if a == "--n-gpu-layers" {
			count++
			if plan.Args[i+1] != "20" {
				t.Errorf("gpu layers = %q, want 20", plan.Args[i+1])
			}
			// Fixed position: after the sampling block and prompt file,
			// before --interactive-first.
			if plan.Args[i+2] != "--interactive-first" {
				t.Errorf("unexpected flag after gpu layers: %q", plan.Args[i+2])
			}
		}
	}
	if count != 1 {
		t.Errorf("gpu flag emitted %d times, want 1", count)
	}
}

func TestBuildPlanSystemPrompt(t *testing.T) {
	model := writeModel(t)
	cfg := &config.Config{LlamaCLI: "/usr/bin/llama-cli"}
	m := testMode(model)
	m.PromptFile = ""
	m.SystemPrompt = "You are terse."

	plan, err := BuildPlan(cfg, m, 4)
	if err != nil {
		t.Fatal(err)
	}
	joined := strings.Join(plan.Args, "\x00")
	if !strings.Contains(joined, "-p\x00You are terse.") {
		t.Errorf("missing -p argument: %q", plan.Args)
	}
	if strings.Contains(joined, "--file") {
		t.Errorf("--file emitted without a prompt file: %q", plan.Args)
	}
}

func TestBuildPlanMissingModelPath(t *testing.T) {
	cfg := &config.Config{LlamaCLI: "/usr/bin/llama-cli"}
	m := testMode("")

	_, err := BuildPlan(cfg, m, 4)
	var perr *PlanError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PlanError, got %v", err)
	}
}

func TestBuildPlanModelFileNotOnDisk(t *testing.T) {
	cfg := &config.Config{LlamaCLI: "/usr/bin/llama-cli"}
	m := testMode(filepath.Join(t.TempDir(), "gone.gguf"))

	_, err := BuildPlan(cfg, m, 4)
	var perr *PlanError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PlanError, got %v", err)
	}
	if !strings.Contains(perr.Reason, "not found") {
		t.Errorf("reason = %q", perr.Reason)
	}
}

func TestBuildPlanNoLlamaCLI(t *testing.T) {
	model := writeModel(t)
	cfg := &config.Config{}

	_, err := BuildPlan(cfg, testMode(model), 4)
	var perr *PlanError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PlanError, got %v", err)
	}
}
