// Package app provides logger initialization.
package app

import (
	"os"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/logger"
)

// InitializeLogger configures the global logger from LOG_LEVEL and
// LOG_PRETTY. Defaults to JSON output at info level.
func InitializeLogger() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	logger.Init(level, os.Getenv("LOG_PRETTY") == "true")
}
