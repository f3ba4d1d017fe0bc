package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrReadingBuffer = errors.New("failed to read line from input buffer")
)

// LineReader reads newline terminated lines from a buffered source.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader returns a LineReader wrapping r. The reader is buffered, the
// caller must not read from r directly afterwards.
func NewLineReader(r io.Reader) *LineReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &LineReader{br}
}

// ReadLine blocks until a line is available and returns it without the
// trailing "\n" or "\r\n". Reaching the end of the input with no pending data
// is an error, a last line missing the terminator is not.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %s", ErrReadingBuffer, err)
		}
		if len(line) == 0 {
			return "", fmt.Errorf("%w: unexpected end of input", ErrReadingBuffer)
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
