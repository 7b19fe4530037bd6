package main

import "log/slog"

// openViewer opens target (a file path or URL) in the platform's
// default handler. Failures are logged, never fatal; the build has
// already succeeded at this point.
func openViewer(target string, log *slog.Logger) {
	cmd := openerCommand(target)
	if err := cmd.Start(); err != nil {
		log.Warn("failed to open viewer", "target", target, "error", err)
		return
	}
	// Detach: the viewer outlives this process.
	go func() { _ = cmd.Wait() }()
}
