// Package modes resolves which configured mode a launch should use,
// either from an identifier given on the command line or from a single
// interactive menu prompt.
package modes

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/querygguf/querygguf/internal/config"
)

// NotFoundError reports an identifier that matches no configured mode.
type NotFoundError struct {
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown mode %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// Resolve returns the mode matching id, which may be a mode name or a
// 1-based index into the configured mode list.
func Resolve(cfg *config.Config, id string) (*config.Mode, error) {
	id = strings.TrimSpace(id)
	if m, ok := cfg.Mode(id); ok {
		return m, nil
	}
	if n, err := strconv.Atoi(id); err == nil && n >= 1 && n <= len(cfg.Modes) {
		return &cfg.Modes[n-1], nil
	}

	names := make([]string, len(cfg.Modes))
	for i, m := range cfg.Modes {
		names[i] = m.Name
	}
	return nil, &NotFoundError{Name: id, Available: names}
}

// Prompter is a single-line console reader over injectable streams so
// tests can script input instead of touching the real terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter bound to stdin/stdout.
func NewPrompter() *Prompter {
	return &Prompter{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// NewPrompterIO returns a Prompter over the given streams.
func NewPrompterIO(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints a prompt and blocks for one line of input.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Printf writes to the prompter's output stream.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true)
	defaultStyle   = lipgloss.NewStyle().Bold(true)
	descStyle      = lipgloss.NewStyle().Faint(true)
)

// PromptSelect renders the numbered mode menu once and resolves the
// user's selection. Empty input selects the default mode; one re-prompt
// is allowed on invalid input, after which selection fails.
func PromptSelect(cfg *config.Config, p *Prompter) (*config.Mode, error) {
	p.Printf("%s\n", menuTitleStyle.Render("Select a mode (Enter for default):"))
	for i, m := range cfg.Modes {
		marker := " "
		name := m.Name
		if m.Name == cfg.DefaultMode {
			marker = "*"
			name = defaultStyle.Render(name)
		}
		line := fmt.Sprintf("%s %d. %s", marker, i+1, name)
		if m.Description != "" {
			line += " " + descStyle.Render("— "+m.Description)
		}
		p.Printf("%s\n", line)
	}

	for attempt := 0; attempt < 2; attempt++ {
		input, err := p.Ask("\nMode: ")
		if err != nil {
			return nil, err
		}
		if input == "" {
			m, _ := cfg.Mode(cfg.DefaultMode)
			return m, nil
		}
		m, err := Resolve(cfg, input)
		if err == nil {
			return m, nil
		}
		if attempt == 0 {
			p.Printf("Invalid selection %q, try again.\n", input)
			continue
		}
		return nil, err
	}
	panic("unreachable")
}
