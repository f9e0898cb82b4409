// Package scan discovers model and prompt files on disk for the manual
// launch flow.
package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Models walks dirs recursively and returns all .gguf files, sorted by
// base name. Unreadable directories are skipped with a warning.
func Models(dirs []string) []string {
	var models []string
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Warn().Str("path", path).Err(err).Msg("skipping unreadable entry")
				return fs.SkipDir
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".gguf") {
				models = append(models, path)
			}
			return nil
		})
		if err != nil {
			log.Warn().Str("dir", dir).Err(err).Msg("model directory scan failed")
		}
	}
	sort.Slice(models, func(i, j int) bool {
		return filepath.Base(models[i]) < filepath.Base(models[j])
	})
	return models
}

// Prompts returns all regular files under dir, sorted.
func Prompts(dir string) []string {
	var prompts []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn().Str("path", path).Err(err).Msg("skipping unreadable entry")
			return fs.SkipDir
		}
		if !d.IsDir() {
			prompts = append(prompts, path)
		}
		return nil
	})
	if err != nil {
		log.Warn().Str("dir", dir).Err(err).Msg("prompt directory scan failed")
	}
	sort.Strings(prompts)
	return prompts
}
