package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/querygguf/querygguf/cmd"
	"github.com/querygguf/querygguf/internal/config"
	"github.com/querygguf/querygguf/internal/launcher"
	"github.com/querygguf/querygguf/internal/modes"
)

const (
	exitConfig        = 2
	exitModeNotFound  = 3
	exitInvalidMode   = 4
	exitLaunchFailure = 5
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps error kinds onto distinct shell-visible codes so wrapper
// scripts can tell a bad config from a failed spawn.
func exitCode(err error) int {
	var (
		parseErr *config.ParseError
		validErr *config.ValidationError
		notFound *modes.NotFoundError
		planErr  *launcher.PlanError
		spawnErr *launcher.SpawnError
	)
	switch {
	case errors.Is(err, config.ErrNotFound),
		errors.As(err, &parseErr),
		errors.As(err, &validErr):
		return exitConfig
	case errors.As(err, &notFound):
		return exitModeNotFound
	case errors.As(err, &planErr):
		return exitInvalidMode
	case errors.As(err, &spawnErr):
		return exitLaunchFailure
	}
	return 1
}
