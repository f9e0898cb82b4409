// Package sysinfo probes the host for launch-time runtime parameters.
package sysinfo

import "runtime"

// Threads returns the thread count used when a mode has no explicit
// override: logical CPU count minus one, never below 1.
func Threads() int {
	n := runtime.NumCPU()
	if n > 1 {
		return n - 1
	}
	return 1
}

// ClampThreads bounds an explicit per-mode override to
// [1, logical CPU count]. The override is otherwise preserved as
// configured rather than re-derived from the probe.
func ClampThreads(n int) int {
	if n < 1 {
		return 1
	}
	if max := runtime.NumCPU(); n > max {
		return max
	}
	return n
}

// ForMode resolves the thread count for a mode: a positive override
// wins (clamped), otherwise the probed default.
func ForMode(override int) int {
	if override > 0 {
		return ClampThreads(override)
	}
	return Threads()
}
