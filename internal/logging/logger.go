// Package logging provides categorized file-based logging for clarity.
// Logs are written to ~/.clarity/logs/ with one file per category and only
// when debug mode is enabled, so the interactive TUI never writes to the
// terminal it is drawing on.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category represents a log category.
type Category string

const (
	CategorySession Category = "session" // screen transitions, gates
	CategoryAPI     Category = "api"     // completion service calls
	CategoryUI      Category = "ui"      // TUI lifecycle
)

var (
	mu      sync.Mutex
	loggers = make(map[Category]*log.Logger)
	files   []*os.File
	logsDir string
	enabled bool
)

// Initialize sets the logs directory and turns file logging on or off.
// Safe to call once at startup; logging before Initialize is a no-op.
func Initialize(dir string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	enabled = debug
	if !debug {
		return nil
	}
	logsDir = filepath.Join(dir, "logs")
	if err := os.MkdirAll(logsDir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

// Close flushes and closes all open log files.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	for _, f := range files {
		_ = f.Close()
	}
	files = nil
	loggers = make(map[Category]*log.Logger)
}

func get(cat Category) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return nil
	}
	if l, ok := loggers[cat]; ok {
		return l
	}
	name := fmt.Sprintf("%s_%s.log", cat, time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(filepath.Join(logsDir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil
	}
	files = append(files, f)
	l := log.New(f, "", log.LstdFlags|log.Lmicroseconds)
	loggers[cat] = l
	return l
}

func logf(cat Category, format string, args ...interface{}) {
	if l := get(cat); l != nil {
		l.Printf(format, args...)
	}
}

// Session logs to the session category.
func Session(format string, args ...interface{}) { logf(CategorySession, format, args...) }

// API logs to the api category.
func API(format string, args ...interface{}) { logf(CategoryAPI, format, args...) }

// UI logs to the ui category.
func UI(format string, args ...interface{}) { logf(CategoryUI, format, args...) }
