package hal

import (
	"bytes"
	"io"
)

// LogWriter adapts l to an io.Writer. Each write is split on newlines and every
// complete line goes to the logger; a trailing partial line is held until the next
// write completes it.
//
// The returned writer is not safe for concurrent use; wrap it in a handler that
// serializes writes (log/slog handlers do).
func LogWriter(l Logger) io.Writer {
	return &logWriter{l: l}
}

type logWriter struct {
	l       Logger
	pending []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			w.pending = append(w.pending, p...)
			break
		}
		line := p[:i]
		if len(w.pending) > 0 {
			line = append(w.pending, line...)
			w.pending = w.pending[:0]
		}
		w.l.WriteLineBytes(line)
		p = p[i+1:]
	}
	return n, nil
}
