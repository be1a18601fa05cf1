// Package logging adapts zap to the calculation engine's Logger interface.
package logging

import (
	"go.uber.org/zap"
)

// ZapLogger wraps a sugared zap logger behind the calculation Logger
// interface.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// New builds a production-configured logger; debug enables the development
// config with debug-level output.
func New(debug bool) (*ZapLogger, error) {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: logger.Sugar()}, nil
}

// Sync flushes any buffered log entries.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

func (l *ZapLogger) Debugf(format string, args ...any) { l.sugar.Debugf(format, args...) }
func (l *ZapLogger) Infof(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l *ZapLogger) Warnf(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l *ZapLogger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }
