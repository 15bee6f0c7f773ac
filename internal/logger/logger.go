package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// LogFilePath is the session log, relative to the working directory (project root when run via go run ./cmd/game).
const LogFilePath = "logs/session.txt"

// Logger writes structured entries to the session log file and keeps a copy of every
// line in memory for the in-game console.
type Logger struct {
	mu    sync.Mutex
	lines []string

	out  *log.Logger
	file *os.File
}

// New returns a Logger appending to LogFilePath. If the file cannot be opened the
// logger still records lines in memory.
func New() *Logger {
	dir := filepath.Dir(LogFilePath)
	_ = os.MkdirAll(dir, 0755)
	f, err := os.OpenFile(LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return NewWithWriter(io.Discard)
	}
	l := NewWithWriter(f)
	l.file = f
	return l
}

// NewWithWriter returns a Logger writing to w instead of the log file.
func NewWithWriter(w io.Writer) *Logger {
	l := &Logger{lines: make([]string, 0)}
	l.out = log.NewWithOptions(io.MultiWriter(w, lineSink{l}), log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Prefix:          "ballmachine",
	})
	return l
}

// SetLevel parses a level name (debug, info, warn, error). Unknown names are ignored.
func (l *Logger) SetLevel(name string) {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return
	}
	l.out.SetLevel(lvl)
}

// Log records a free-form line, e.g. console input.
func (l *Logger) Log(line string) {
	l.out.Info(line)
}

func (l *Logger) Debug(msg string, keyvals ...any) { l.out.Debug(msg, keyvals...) }
func (l *Logger) Info(msg string, keyvals ...any)  { l.out.Info(msg, keyvals...) }
func (l *Logger) Warn(msg string, keyvals ...any)  { l.out.Warn(msg, keyvals...) }
func (l *Logger) Error(msg string, keyvals ...any) { l.out.Error(msg, keyvals...) }

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

type lineSink struct {
	l *Logger
}

func (s lineSink) Write(p []byte) (int, error) {
	text := strings.TrimRight(string(p), "\n")
	s.l.mu.Lock()
	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			s.l.lines = append(s.l.lines, line)
		}
	}
	s.l.mu.Unlock()
	return len(p), nil
}
