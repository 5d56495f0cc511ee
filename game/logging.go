package game

import "log/slog"

// logOutputError reports a failed output write. Output problems never stop
// the simulation.
func logOutputError(output string, err error) {
	slog.Error("failed to write output", "output", output, "error", err)
}
