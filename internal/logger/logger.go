package logger

import (
	"os"

	"go.uber.org/zap"
)

var Logger *zap.Logger

// Init initializes the global logger. Production builds get the JSON
// encoder, everything else the development console encoder.
func Init() {
	var err error
	var logger *zap.Logger

	if os.Getenv("ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	Logger = logger
}

// L returns the global logger, initializing it on first use.
func L() *zap.Logger {
	if Logger == nil {
		Init()
	}
	return Logger
}

// Sync flushes any buffered log entries.
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
