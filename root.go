package logger

import (
	"fmt"
	"sync/atomic"
)

// global is the process-wide logger. Explicit lifetime: nothing is
// created on first use, Init and Shutdown bracket it.
var global atomic.Pointer[Logger]

// Init constructs the process-wide logger. A second Init without an
// intervening Shutdown is rejected and the new logger is torn down.
func Init(opts Options) error {
	l, err := New(opts)
	if err != nil {
		return err
	}
	if !global.CompareAndSwap(nil, l) {
		l.Close()
		return fmt.Errorf("logger already initialized")
	}
	return nil
}

// Default returns the process-wide logger, or nil before Init.
func Default() *Logger {
	return global.Load()
}

// SetDefault replaces the process-wide logger. The previous logger,
// if any, is returned so the caller can Close it.
func SetDefault(l *Logger) *Logger {
	return global.Swap(l)
}

// Shutdown drains and closes the process-wide logger. Records
// enqueued before the call are on the sink when it returns.
func Shutdown() error {
	l := global.Swap(nil)
	if l == nil {
		return nil
	}
	return l.Close()
}

// Log forwards to the process-wide logger. A no-op returning false
// before Init.
func Log(level Level, format string, args ...any) bool {
	if l := global.Load(); l != nil {
		return l.Log(level, format, args...)
	}
	return false
}

// Tracef logs at trace severity on the process-wide logger.
func Tracef(format string, args ...any) { Log(LevelTrace, format, args...) }

// Debugf logs at debug severity on the process-wide logger.
func Debugf(format string, args ...any) { Log(LevelDebug, format, args...) }

// Infof logs at info severity on the process-wide logger.
func Infof(format string, args ...any) { Log(LevelInfo, format, args...) }

// Warnf logs at warn severity on the process-wide logger.
func Warnf(format string, args ...any) { Log(LevelWarn, format, args...) }

// Errorf logs at error severity on the process-wide logger.
func Errorf(format string, args ...any) { Log(LevelError, format, args...) }

// Fatalf logs at fatal severity on the process-wide logger, drains
// it and exits.
func Fatalf(format string, args ...any) {
	if l := global.Load(); l != nil {
		l.Fatalf(format, args...)
	}
}
