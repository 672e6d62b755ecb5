package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dx-tools/cli/internal/domain"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level.
// Valid values: "debug", "info", "warn", "error" (case insensitive).
// Returns LevelWarn if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// Logger writes leveled, timestamped lines to a file, thread-safely.
// It is constructed once by the application factory and injected;
// there is no package-level default instance.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	minLevel Level
	prefix   string
	enabled  bool
}

// New creates a logger that appends to the file at logPath, creating
// the parent directory with restrictive permissions as needed.
func New(logPath string, minLevel Level) (*Logger, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	if info, err := os.Stat(logPath); err == nil {
		if info.Mode().Perm() != 0600 {
			if err := os.Chmod(logPath, 0600); err != nil {
				return nil, fmt.Errorf("chmod existing log file: %w", err)
			}
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{
		file:     file,
		minLevel: minLevel,
		enabled:  true,
	}, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// SetEnabled enables or disables logging.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

// WithPrefix derives a child logger whose messages carry the given
// prefix. The child shares the file handle and mutex with its parent.
func (l *Logger) WithPrefix(prefix string) domain.Logger {
	if l == nil {
		return nil
	}
	combined := prefix
	if l.prefix != "" {
		combined = l.prefix + ": " + prefix
	}
	return &childLogger{parent: l, prefix: combined}
}

func (l *Logger) log(level Level, tag, prefix, format string, args ...interface{}) {
	if l == nil || !l.enabled || level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	if prefix != "" {
		message = prefix + ": " + message
	}
	logLine := fmt.Sprintf("[%s] %s: %s\n", timestamp, tag, message)

	if _, err := l.file.Write([]byte(logLine)); err != nil {
		// Can't log to file, output to stderr for critical messages
		if level >= LevelError {
			fmt.Fprintf(os.Stderr, "logger: write failed: %v (message: %s)\n", err, message)
		}
	}
}

// Debug writes a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, LevelDebug.String(), l.prefix, format, args...)
}

// Info writes an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, LevelInfo.String(), l.prefix, format, args...)
}

// Warn writes a warning.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, LevelWarn.String(), l.prefix, format, args...)
}

// Error writes an error.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, LevelError.String(), l.prefix, format, args...)
}

// Success writes a success message. Logged at info severity with its
// own tag so the log file distinguishes completed operations.
func (l *Logger) Success(format string, args ...interface{}) {
	l.log(LevelInfo, "SUCCESS", l.prefix, format, args...)
}

// Writer returns an io.Writer that writes to the log at the given level.
func (l *Logger) Writer(level Level) io.Writer {
	return &logWriter{logger: l, level: level}
}

type logWriter struct {
	logger *Logger
	level  Level
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.logger.log(w.level, w.level.String(), w.logger.prefix, "%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// childLogger prefixes every message before delegating to its parent.
type childLogger struct {
	parent *Logger
	prefix string
}

func (c *childLogger) Debug(format string, args ...any) {
	c.parent.log(LevelDebug, LevelDebug.String(), c.prefix, format, args...)
}

func (c *childLogger) Info(format string, args ...any) {
	c.parent.log(LevelInfo, LevelInfo.String(), c.prefix, format, args...)
}

func (c *childLogger) Warn(format string, args ...any) {
	c.parent.log(LevelWarn, LevelWarn.String(), c.prefix, format, args...)
}

func (c *childLogger) Error(format string, args ...any) {
	c.parent.log(LevelError, LevelError.String(), c.prefix, format, args...)
}

func (c *childLogger) Success(format string, args ...any) {
	c.parent.log(LevelInfo, "SUCCESS", c.prefix, format, args...)
}

func (c *childLogger) WithPrefix(prefix string) domain.Logger {
	return &childLogger{parent: c.parent, prefix: c.prefix + ": " + prefix}
}

func (c *childLogger) Close() error { return nil }

// NopLogger is a logger that discards all messages.
// Useful for testing or when logging is disabled.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any)           {}
func (NopLogger) Info(_ string, _ ...any)            {}
func (NopLogger) Warn(_ string, _ ...any)            {}
func (NopLogger) Error(_ string, _ ...any)           {}
func (NopLogger) Success(_ string, _ ...any)         {}
func (n NopLogger) WithPrefix(_ string) domain.Logger { return n }
func (NopLogger) Close() error                       { return nil }

// Verify implementations satisfy domain.Logger.
var _ domain.Logger = (*Logger)(nil)
var _ domain.Logger = (*childLogger)(nil)
var _ domain.Logger = NopLogger{}
