// Package log builds the zap logger shared by the CLI and the session.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a sugared logger. Debug mode uses zap's development config
// (console output, debug level). Otherwise it is the production JSON config
// raised to warn level, so routine progress stays off a CLI user's stderr.
func New(debug bool) (*zap.SugaredLogger, error) {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		zapLogger, err = cfg.Build()
	}
	if err != nil {
		return nil, fmt.Errorf("can't initialize zap logger: %w", err)
	}
	return zapLogger.Sugar(), nil
}

// Nop returns a logger that discards everything. Tests and library callers
// that do not care about logs use it.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l == nil {
		return Nop()
	}
	return l
}
