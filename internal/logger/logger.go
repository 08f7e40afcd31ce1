// Package logger provides a zerolog wrapper with opinionated defaults
// for the calendar engine server.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the logger.
type Options struct {
	Level  string
	Format string // "console" or "json"
	Writer io.Writer
}

var (
	once sync.Once
	root atomic.Pointer[zerolog.Logger]
)

// Logger is the project-wide logging type.
type Logger = zerolog.Logger

// Get returns the process-wide root logger, initializing it with
// defaults on first use.
func Get() *Logger {
	if root.Load() == nil {
		Init(Options{Level: "info", Format: "console"})
	}
	return root.Load()
}

// Init configures zerolog and builds the root logger; safe to call once.
func Init(opt Options) {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		w := opt.Writer
		if w == nil {
			w = os.Stderr
		}
		if !strings.EqualFold(opt.Format, "json") {
			w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
		}

		lvl, err := zerolog.ParseLevel(strings.ToLower(opt.Level))
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}

		l := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
		root.Store(&l)
	})
}
