package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Leveled logger shared by the API service and the seed job.
// Backed by zerolog; call Init early during startup.

var (
	mu     sync.RWMutex
	out    io.Writer      = os.Stdout
	logger zerolog.Logger = zerolog.New(out).With().Timestamp().Logger()
	level  zerolog.Level  = zerolog.InfoLevel
)

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Default level is Info.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn", "warning":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	case "fatal":
		level = zerolog.FatalLevel
	default:
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// EnableFile adds a rolling log file next to the current output.
func EnableFile(path string, maxSizeMB int) {
	if path == "" {
		return
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 100
	}
	mu.RLock()
	cur := out
	mu.RUnlock()
	SetOutput(zerolog.MultiLevelWriter(cur, &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 5,
		MaxAge:     28,
	}))
}

// Get returns the current zerolog logger for structured fields.
func Get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debugf(format string, v ...interface{}) {
	l := Get()
	l.Debug().Msgf(format, v...)
}

func Infof(format string, v ...interface{}) {
	l := Get()
	l.Info().Msgf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	l := Get()
	l.Warn().Msgf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	l := Get()
	l.Error().Msgf(format, v...)
}

// LevelString returns the current level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	return level.String()
}
