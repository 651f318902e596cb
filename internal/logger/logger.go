// Package logger provides the leveled logger used by the huffpack command.
package logger

import (
	"io"
	"log"
)

// Logger is a minimal leveled logger.  It satisfies huffman.Logger.
type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l       *log.Logger
	verbose bool
}

// New returns a Logger that writes to w.  Info messages are dropped unless
// verbose is set; errors are always written.
func New(w io.Writer, verbose bool) Logger {
	return &stdLogger{l: log.New(w, "huffpack: ", log.LstdFlags), verbose: verbose}
}

func (l *stdLogger) Infof(format string, v ...any) {
	if l.verbose {
		l.l.Printf("[INFO] "+format, v...)
	}
}

func (l *stdLogger) Errorf(format string, v ...any) { l.l.Printf("[ERROR] "+format, v...) }
