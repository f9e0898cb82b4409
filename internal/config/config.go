// Package config loads the querygguf TOML configuration: global launch
// settings plus an ordered list of named modes. The file is read once at
// startup and never written back by the launch flow; `querygguf init` is
// the only writer.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned when the config file does not exist.
var ErrNotFound = errors.New("config file not found")

// ParseError describes a malformed config file, pointing at the
// offending line where the TOML parser can report one.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

// ValidationError describes a syntactically valid config that breaks an
// invariant (duplicate mode name, unknown default mode, no modes).
type ValidationError struct {
	Path string
	Msg  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

// Mode is a named, reusable bundle of launch parameters.
type Mode struct {
	Name             string  `toml:"name"`
	Description      string  `toml:"description,omitempty"`
	Model            string  `toml:"model"`
	PromptFile       string  `toml:"prompt_file,omitempty"`
	SystemPrompt     string  `toml:"system_prompt,omitempty"`
	Temp             float64 `toml:"temp"`
	TopK             int     `toml:"top_k"`
	TopP             float64 `toml:"top_p"`
	CtxSize          int     `toml:"ctx_size"`
	Threads          int     `toml:"threads,omitempty"` // 0 = probe host CPU count
	GPU              bool    `toml:"gpu"`
	GPULayers        int     `toml:"gpu_layers,omitempty"`
	InteractiveFirst bool    `toml:"interactive_first"`
}

// Config is the full parsed configuration. Immutable after Load.
type Config struct {
	LlamaCLI       string   `toml:"llama_cli"`
	DefaultMode    string   `toml:"default_mode"`
	TerminalLaunch bool     `toml:"terminal_launch"`
	ModelDirs      []string `toml:"model_dirs"`
	PromptsDir     string   `toml:"prompts_dir"`
	LoggingEnabled bool     `toml:"logging_enabled"`
	LogDir         string   `toml:"log_dir"`
	Modes          []Mode   `toml:"mode"`

	dir string
}

// Dir returns the directory the config was loaded from. Relative paths
// in the file resolve against it.
func (c *Config) Dir() string { return c.dir }

// Mode returns the mode with the given name.
func (c *Config) Mode(name string) (*Mode, bool) {
	for i := range c.Modes {
		if c.Modes[i].Name == name {
			return &c.Modes[i], true
		}
	}
	return nil, false
}

// Defaults for per-mode sampling parameters when a [[mode]] table omits
// them. Matches llama-cli's own defaults for temp/top-k/top-p.
const (
	defaultTemp    = 0.8
	defaultTopK    = 40
	defaultTopP    = 0.9
	defaultCtxSize = 2048
)

// fileMode mirrors Mode with pointer fields so absent keys are
// distinguishable from explicit zero values.
type fileMode struct {
	Name             string   `toml:"name"`
	Description      string   `toml:"description"`
	Model            string   `toml:"model"`
	PromptFile       string   `toml:"prompt_file"`
	SystemPrompt     string   `toml:"system_prompt"`
	Temp             *float64 `toml:"temp"`
	TopK             *int     `toml:"top_k"`
	TopP             *float64 `toml:"top_p"`
	CtxSize          *int     `toml:"ctx_size"`
	Threads          *int     `toml:"threads"`
	GPU              *bool    `toml:"gpu"`
	GPULayers        *int     `toml:"gpu_layers"`
	InteractiveFirst *bool    `toml:"interactive_first"`
}

type fileConfig struct {
	LlamaCLI       string     `toml:"llama_cli"`
	DefaultMode    string     `toml:"default_mode"`
	TerminalLaunch bool       `toml:"terminal_launch"`
	ModelDirs      []string   `toml:"model_dirs"`
	PromptsDir     string     `toml:"prompts_dir"`
	LoggingEnabled bool       `toml:"logging_enabled"`
	LogDir         string     `toml:"log_dir"`
	Modes          []fileMode `toml:"mode"`
}

// Load reads and validates the config file at Path(dir). It never
// returns a partially built Config: any parse or validation failure
// aborts the whole load.
func Load(dir string) (*Config, error) {
	path := Path(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s (run 'querygguf init' to create one)", ErrNotFound, path)
		}
		return nil, &ParseError{Path: path, Msg: err.Error()}
	}

	var fc fileConfig
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return nil, &ParseError{Path: path, Line: perr.Position.Line, Msg: perr.Message}
		}
		return nil, &ParseError{Path: path, Msg: err.Error()}
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		log.Warn().Str("path", path).Strs("keys", keys).Msg("ignoring unknown config keys")
	}

	cfg, err := fc.normalize(dir)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize applies per-mode defaults and expands paths.
func (fc *fileConfig) normalize(dir string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	cfg := &Config{
		LlamaCLI:       expandPath(fc.LlamaCLI, home, dir),
		DefaultMode:    fc.DefaultMode,
		TerminalLaunch: fc.TerminalLaunch,
		PromptsDir:     expandPath(fc.PromptsDir, home, dir),
		LoggingEnabled: fc.LoggingEnabled,
		LogDir:         expandPath(fc.LogDir, home, dir),
		dir:            dir,
	}
	if cfg.PromptsDir == "" {
		cfg.PromptsDir = filepath.Join(dir, "prompts")
	}
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(dir, "chatlogs")
	}
	for _, d := range fc.ModelDirs {
		cfg.ModelDirs = append(cfg.ModelDirs, expandPath(d, home, dir))
	}

	for _, fm := range fc.Modes {
		m := Mode{
			Name:             fm.Name,
			Description:      fm.Description,
			Model:            expandPath(fm.Model, home, dir),
			PromptFile:       expandPath(fm.PromptFile, home, dir),
			SystemPrompt:     fm.SystemPrompt,
			Temp:             defaultTemp,
			TopK:             defaultTopK,
			TopP:             defaultTopP,
			CtxSize:          defaultCtxSize,
			InteractiveFirst: true,
		}
		if fm.Temp != nil {
			m.Temp = *fm.Temp
		}
		if fm.TopK != nil {
			m.TopK = *fm.TopK
		}
		if fm.TopP != nil {
			m.TopP = *fm.TopP
		}
		if fm.CtxSize != nil {
			m.CtxSize = *fm.CtxSize
		}
		if fm.Threads != nil {
			m.Threads = *fm.Threads
		}
		if fm.GPU != nil {
			m.GPU = *fm.GPU
		}
		if fm.GPULayers != nil {
			m.GPULayers = *fm.GPULayers
		}
		if fm.InteractiveFirst != nil {
			m.InteractiveFirst = *fm.InteractiveFirst
		}
		cfg.Modes = append(cfg.Modes, m)
	}

	return cfg, nil
}

func (c *Config) validate(path string) error {
	if len(c.Modes) == 0 {
		return &ValidationError{Path: path, Msg: "no [[mode]] tables defined"}
	}

	seen := make(map[string]bool, len(c.Modes))
	for i, m := range c.Modes {
		if m.Name == "" {
			return &ValidationError{Path: path, Msg: fmt.Sprintf("mode %d has no name", i+1)}
		}
		if seen[m.Name] {
			return &ValidationError{Path: path, Msg: fmt.Sprintf("duplicate mode name %q", m.Name)}
		}
		seen[m.Name] = true
	}

	if c.DefaultMode == "" {
		c.DefaultMode = c.Modes[0].Name
	} else if !seen[c.DefaultMode] {
		return &ValidationError{Path: path, Msg: fmt.Sprintf("default_mode %q does not match any mode", c.DefaultMode)}
	}
	return nil
}

// expandPath resolves ~ against the home directory and relative paths
// against the config directory. Empty stays empty.
func expandPath(p, home, dir string) string {
	if p == "" {
		return ""
	}
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		return filepath.Join(home, p[2:])
	}
	if !filepath.IsAbs(p) {
		return filepath.Join(dir, p)
	}
	return p
}
