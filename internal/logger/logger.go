package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

// Log levels
const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// levelColors maps log levels to ANSI color codes
var levelColors = map[LogLevel]string{
	DEBUG: "\033[36m", // Cyan
	INFO:  "\033[32m", // Green
	WARN:  "\033[33m", // Yellow
	ERROR: "\033[31m", // Red
	FATAL: "\033[35m", // Magenta
}

var levelPrefixes = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO ",
	WARN:  "WARN ",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

const colorReset = "\033[0m"

// Logger writes levelled messages with a time and caller prefix
type Logger struct {
	level     LogLevel
	logger    *log.Logger
	file      *os.File
	useColors bool
	exit      func(int)
}

// ParseLevel converts a level name; unknown names map to INFO
func ParseLevel(levelStr string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	case "fatal":
		return FATAL
	}
	return INFO
}

// NewLogger creates a console logger with the specified log level
func NewLogger(levelStr string) *Logger {
	l := &Logger{
		level:  ParseLevel(levelStr),
		logger: log.New(os.Stdout, "", 0), // prefix is formatted per message
		exit:   os.Exit,
	}

	// Colors only on a terminal
	if fileInfo, err := os.Stdout.Stat(); err == nil && fileInfo.Mode()&os.ModeCharDevice != 0 {
		l.useColors = true
	}

	return l
}

func openLogFile(filePath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// NewFileLogger creates a logger that writes only to a file
func NewFileLogger(levelStr, filePath string) (*Logger, error) {
	file, err := openLogFile(filePath)
	if err != nil {
		return nil, err
	}

	l := NewLogger(levelStr)
	l.logger.SetOutput(file)
	l.file = file
	l.useColors = false

	return l, nil
}

// NewMultiLogger creates a logger that writes to both console and file
func NewMultiLogger(levelStr, filePath string) (*Logger, error) {
	file, err := openLogFile(filePath)
	if err != nil {
		return nil, err
	}

	l := NewLogger(levelStr)
	l.logger.SetOutput(io.MultiWriter(os.Stdout, file))
	l.file = file
	// the file must not receive escape codes
	l.useColors = false

	return l, nil
}

// output writes msg at level, reporting the caller of the public logging method
func (l *Logger) output(level LogLevel, msg string) {
	if level < l.level {
		return
	}

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "unknown"
		line = 0
	}

	prefix := fmt.Sprintf("%s [%s] %s:%d:",
		time.Now().Format("2006/01/02 15:04:05"), levelPrefixes[level], filepath.Base(file), line)
	if l.useColors {
		prefix = levelColors[level] + prefix + colorReset
	}

	l.logger.Println(prefix, msg)

	if level == FATAL {
		l.Close()
		l.exit(1)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(v ...interface{}) { l.output(DEBUG, fmt.Sprint(v...)) }

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, v ...interface{}) { l.output(DEBUG, fmt.Sprintf(format, v...)) }

// Info logs an info message
func (l *Logger) Info(v ...interface{}) { l.output(INFO, fmt.Sprint(v...)) }

// Infof logs a formatted info message
func (l *Logger) Infof(format string, v ...interface{}) { l.output(INFO, fmt.Sprintf(format, v...)) }

// Warn logs a warning message
func (l *Logger) Warn(v ...interface{}) { l.output(WARN, fmt.Sprint(v...)) }

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, v ...interface{}) { l.output(WARN, fmt.Sprintf(format, v...)) }

// Error logs an error message
func (l *Logger) Error(v ...interface{}) { l.output(ERROR, fmt.Sprint(v...)) }

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, v ...interface{}) { l.output(ERROR, fmt.Sprintf(format, v...)) }

// Fatal logs a fatal message and exits the program
func (l *Logger) Fatal(v ...interface{}) { l.output(FATAL, fmt.Sprint(v...)) }

// Fatalf logs a formatted fatal message and exits the program
func (l *Logger) Fatalf(format string, v ...interface{}) { l.output(FATAL, fmt.Sprintf(format, v...)) }

// SetLevel sets the log level
func (l *Logger) SetLevel(levelStr string) {
	l.level = ParseLevel(levelStr)
}

// Level returns the current log level
func (l *Logger) Level() LogLevel {
	return l.level
}

// SetOutput sets the output writer for the logger
func (l *Logger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

// EnableColors enables or disables colored output
func (l *Logger) EnableColors(enable bool) {
	l.useColors = enable
}

// Close closes the logger's file if it exists
func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}
