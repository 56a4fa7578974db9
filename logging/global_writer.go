package logging

import (
	"io"
	"os"
	"sync"
)

// switchWriter forwards writes to a target that can be replaced while
// loggers hold it.
type switchWriter struct {
	mu     sync.RWMutex
	target io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target.Write(p)
}

// swap installs w and returns the previous target.
func (s *switchWriter) swap(w io.Writer) io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.target
	s.target = w
	return prev
}

var output = &switchWriter{target: os.Stderr}

// SetGlobalOutput sets where console loggers write. The player silences it
// while the TUI owns the terminal.
func SetGlobalOutput(w io.Writer) {
	output.swap(w)
}

// RedirectGlobalOutput sets the console output to w and returns a func that
// restores the previous writer.
func RedirectGlobalOutput(w io.Writer) (restore func()) {
	prev := output.swap(w)
	return func() { output.swap(prev) }
}

// GetGlobalOutput returns the shared writer console loggers are created with.
func GetGlobalOutput() io.Writer {
	return output
}
