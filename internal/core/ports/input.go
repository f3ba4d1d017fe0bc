package ports

// LineReader is the abstraction for any source of newline terminated text
// lines, like an interactive terminal or a piped stdin.
type LineReader interface {
	// ReadLine blocks until a full line is available and returns it without
	// the line terminator.
	ReadLine() (string, error)
}
