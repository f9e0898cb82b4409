package config

import (
	"os"
	"path/filepath"
)

// Dir returns the querygguf configuration directory.
// Resolution order: $QUERYGGUF_DIR, then <user config dir>/querygguf
// (~/.config/querygguf on Linux).
func Dir() string {
	if dir := os.Getenv("QUERYGGUF_DIR"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "querygguf")
}

// Path returns the config file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, "config.toml")
}

// EnsureDirs creates the config directory and its prompts subdirectory.
func EnsureDirs(dir string) error {
	for _, d := range []string{dir, filepath.Join(dir, "prompts")} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}
	return nil
}
