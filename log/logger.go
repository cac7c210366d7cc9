package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger writes leveled, optionally colored log lines to the terminal
// and/or a rotated log file.
type Logger struct {
	writer io.Writer

	name  string
	level Level

	timeFormat string
	noColor    bool
	jsonOutput bool
}

type Options struct {
	Level   Level
	File    string
	NoColor bool
	JSON    bool

	// NoTerminal suppresses stdout output; useful when only file logging
	// is wanted.
	NoTerminal bool

	// Rotation settings for the log file, in megabytes / count / days.
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Component string `json:"component,omitempty"`
	Message   string `json:"message"`
}

// New creates a logger for the given component name.
func New(name string, opts Options) *Logger {
	var writers []io.Writer

	if !opts.NoTerminal {
		writers = append(writers, os.Stdout)
	}
	if opts.File != "" {
		maxSize, maxBackups, maxAge := opts.MaxSize, opts.MaxBackups, opts.MaxAge
		if maxSize <= 0 {
			maxSize = 64
		}
		if maxBackups <= 0 {
			maxBackups = 4
		}
		if maxAge <= 0 {
			maxAge = 14
		}

		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			MaxAge:     maxAge,
		})
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	return &Logger{
		writer:     io.MultiWriter(writers...),
		name:       name,
		level:      opts.Level,
		timeFormat: "2006-01-02 15:04:05",
		noColor:    opts.NoColor,
		jsonOutput: opts.JSON,
	}
}

// Discard returns a logger that writes nothing.
func Discard() *Logger {
	return &Logger{
		writer:     io.Discard,
		level:      LevelError,
		timeFormat: "2006-01-02 15:04:05",
		noColor:    true,
	}
}

// Named returns a child logger sharing the same writer and settings.
func (l *Logger) Named(name string) *Logger {
	child := *l
	if l.name != "" {
		child.name = l.name + "/" + name
	} else {
		child.name = name
	}
	return &child
}

func (l *Logger) log(level Level, msg string, args ...any) {
	if level < l.level {
		return
	}

	timestamp := time.Now().Format(l.timeFormat)
	text := fmt.Sprintf(msg, args...)

	if l.jsonOutput {
		line, _ := json.Marshal(entry{
			Timestamp: timestamp,
			Level:     level.String(),
			Component: l.name,
			Message:   text,
		})
		fmt.Fprintf(l.writer, "%s\n", line)
		return
	}

	prefix := fmt.Sprintf("[%s] %-5s", timestamp, level)
	if l.name != "" {
		prefix = fmt.Sprintf("%s [%s]", prefix, l.name)
	}

	if l.noColor {
		fmt.Fprintf(l.writer, "%s %s\n", prefix, text)
	} else {
		fmt.Fprintf(l.writer, "%s%s %s\033[0m\n", levelColor(level), prefix, text)
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(LevelDebug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(LevelInfo, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(LevelWarn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(LevelError, msg, args...)
}
