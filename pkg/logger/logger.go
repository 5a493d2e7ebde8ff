// Package logger provides the process-wide logger for uilocator.
// Conversion code logs only on the documented lenient paths (malformed
// DSL degrade, unmapped method skip during XPath generation); everything
// else surfaces as a returned error.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu           sync.Mutex
	globalLogger *log.Logger
	logFile      *os.File
)

// Init directs log output to the given file, creating it if needed.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	logFile = f
	globalLogger = log.New(f, "", log.Ltime|log.Lmicroseconds)
	return nil
}

// SetWriter directs log output to an arbitrary writer. Used by the CLI
// for --verbose and by tests to capture warnings.
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	if w == nil {
		globalLogger = nil
		return
	}
	globalLogger = log.New(w, "", log.Ltime|log.Lmicroseconds)
}

// Close closes the log file if one is open.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	globalLogger = nil
}

// Info logs an info message.
func Info(format string, v ...interface{}) { emit("[INFO] ", format, v...) }

// Debug logs a debug message.
func Debug(format string, v ...interface{}) { emit("[DEBUG] ", format, v...) }

// Warn logs a warning message.
func Warn(format string, v ...interface{}) { emit("[WARN] ", format, v...) }

// Error logs an error message.
func Error(format string, v ...interface{}) { emit("[ERROR] ", format, v...) }

func emit(prefix, format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger != nil {
		globalLogger.Printf(prefix+format, v...)
	}
}

// GetWriter returns the underlying writer, or io.Discard when logging is
// disabled.
func GetWriter() io.Writer {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		return logFile
	}
	if globalLogger != nil {
		return globalLogger.Writer()
	}
	return io.Discard
}
