package lsproto

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// BaseReader reads Content-Length framed payloads from a stream.
type BaseReader struct {
	r *bufio.Reader
}

func NewBaseReader(r io.Reader) *BaseReader {
	return &BaseReader{r: bufio.NewReader(r)}
}

func (r *BaseReader) Read() ([]byte, error) {
	contentLength := -1
	for {
		line, err := r.r.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: malformed header %q", ErrInvalidRequest, line)
		}
		if strings.EqualFold(name, "Content-Length") {
			contentLength, err = strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("%w: bad Content-Length: %w", ErrInvalidRequest, err)
			}
		}
	}
	if contentLength < 0 {
		return nil, fmt.Errorf("%w: missing Content-Length header", ErrInvalidRequest)
	}
	data := make([]byte, contentLength)
	if _, err := io.ReadFull(r.r, data); err != nil {
		return nil, err
	}
	return data, nil
}

// BaseWriter writes Content-Length framed payloads to a stream. Safe for
// concurrent use.
type BaseWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewBaseWriter(w io.Writer) *BaseWriter {
	return &BaseWriter{w: w}
}

func (w *BaseWriter) Write(data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := fmt.Fprintf(w.w, "Content-Length: %d\r\n\r\n", len(data)); err != nil {
		return err
	}
	_, err := w.w.Write(data)
	return err
}
