package digitclass

import (
	"io"
	"log"
	"sync"
)

var (
	loggerMux sync.RWMutex
	logger    = log.New(io.Discard, "", 0)
)

// SetLogger changes where training progress is written. By default, nothing is logged. Passing
// nil restores the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}

	loggerMux.Lock()
	logger = l
	loggerMux.Unlock()
}

// Logger returns the current logger. It is safe to use from multiple goroutines.
func Logger() *log.Logger {
	loggerMux.RLock()
	defer loggerMux.RUnlock()
	return logger
}

// Logf is shorthand for Logger().Printf
func Logf(format string, v ...interface{}) {
	Logger().Printf(format, v...)
}
