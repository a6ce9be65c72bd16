// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package easel

import (
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/easel/internal/logging"
)

// SetLogger configures the logger for easel, its sub-packages and the gg
// renderer underneath. By default nothing is logged.
//
// SetLogger is safe for concurrent use. Pass nil to restore silence.
//
// Log levels used by easel:
//   - [slog.LevelDebug]: image fetches, element creation, font lookups
//   - [slog.LevelWarn]: failed image loads, font fallbacks
//
// Example:
//
//	easel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
	gg.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logging.Logger()
}
