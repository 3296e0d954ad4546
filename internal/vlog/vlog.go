/*
DESCRIPTION
  vlog.go provides an injectable logging sink for the codec's parse/emit
  fault paths. The package defaults to a no-op logger so that importing
  this library never produces unexpected output; callers opt in with
  SetLogger.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vlog

import "go.uber.org/zap"

// Logger is the minimal interface the codec uses to report parse and emit
// faults. *zap.SugaredLogger satisfies it directly.
type Logger interface {
	Debugf(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
func (noopLogger) Warnf(string, ...interface{})  {}
func (noopLogger) Errorf(string, ...interface{}) {}

var log Logger = noopLogger{}

// SetLogger installs l as the package-wide diagnostic sink. Passing nil
// restores the default no-op logger.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		log = noopLogger{}
		return
	}
	log = l
}

// Debugf logs a debug-level diagnostic through the installed logger.
func Debugf(template string, args ...interface{}) { log.Debugf(template, args...) }

// Warnf logs a warning-level diagnostic through the installed logger.
func Warnf(template string, args ...interface{}) { log.Warnf(template, args...) }

// Errorf logs an error-level diagnostic through the installed logger.
func Errorf(template string, args ...interface{}) { log.Errorf(template, args...) }
