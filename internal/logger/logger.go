package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file used when the config does not name one, relative to the working directory.
const DefaultPath = "logs/editor.txt"

// maxLines bounds the in-memory history shown by the debug overlay.
const maxLines = 256

// Logger keeps recent lines in memory and appends every line to a file or writer.
// Each entry is prefixed with [timestamp] using computer time.
type Logger struct {
	mu    sync.Mutex
	path  string
	out   io.Writer
	lines []string
	now   func() time.Time
}

// New returns a Logger appending to path and ensures its directory exists.
func New(path string) *Logger {
	if path == "" {
		path = DefaultPath
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Logger{path: path, lines: make([]string, 0), now: time.Now}
}

// NewWriter returns a Logger writing to w instead of a file. A nil w keeps lines in memory only.
func NewWriter(w io.Writer) *Logger {
	return &Logger{out: w, lines: make([]string, 0), now: time.Now}
}

// Log stores line and writes it out.
func (l *Logger) Log(line string) {
	if l == nil {
		return
	}
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.lines) == maxLines {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:maxLines-1]
	}
	l.lines = append(l.lines, stamped)

	if l.out != nil {
		_, _ = io.WriteString(l.out, stamped+"\n")
		return
	}
	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to format and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	if l == nil {
		return
	}
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
