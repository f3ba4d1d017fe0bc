package display

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	frameWidth         = 65
	defaultWordsPerRow = 6
	maxWordsPerRow     = 24

	colorReset      = "\033[0m"
	colorYellow     = "\033[0;33m"
	colorBoldBlue   = "\033[1;94m"
	colorBoldPurple = "\033[1;95m"
	colorBoldGreen  = "\033[1;92m"
	colorWhite      = "\033[97m"
)

// TerminalOpts holds configuration options for the terminal presenter.
type TerminalOpts struct {
	NoColor bool
	// WordsPerRow defaults to 6 if zero.
	WordsPerRow int
}

func (o TerminalOpts) validate() error {
	if o.WordsPerRow < 0 || o.WordsPerRow > maxWordsPerRow {
		return fmt.Errorf("words per row must be in range [1, %d]", maxWordsPerRow)
	}
	return nil
}

// Terminal renders an interactive session as colored text on the given
// writer.
type Terminal struct {
	w    io.Writer
	opts TerminalOpts
}

// NewTerminal returns a new Terminal presenter.
func NewTerminal(w io.Writer, opts TerminalOpts) (*Terminal, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.WordsPerRow == 0 {
		opts.WordsPerRow = defaultWordsPerRow
	}
	return &Terminal{w, opts}, nil
}

func (t *Terminal) Welcome() {
	t.println("")
	t.println(t.paint(colorBoldBlue, bannerTitle))
	for _, line := range bannerLogo {
		t.println(t.paint(colorYellow, line))
	}
	t.println("")
	t.println(lockEmoji + t.paint(colorBoldBlue, bannerWelcome))
	t.println(t.paint(colorWhite, bannerMessage) + "\n")
}

func (t *Terminal) InputRequest(msg string) {
	t.println(t.paint(colorBoldPurple, msg))
}

func (t *Terminal) Success() {
	t.println(t.paint(colorBoldGreen, "Acquired!") + "\n")
}

func (t *Terminal) Mnemonic(words []string) {
	t.println("")
	t.println(fmt.Sprintf(mnemonicHeader, len(words)))
	t.println("")
	t.println("╔" + strings.Repeat("═", frameWidth) + "╗")
	for _, row := range FormatRows(words, t.opts.WordsPerRow) {
		t.println(row)
	}
	t.println("╚" + strings.Repeat("═", frameWidth) + "╝")
	t.println("")
}

func (t *Terminal) Verified(numOfWords int) {
	t.println(t.paint(colorBoldGreen, fmt.Sprintf("Valid %d-word mnemonic!", numOfWords)))
}

func (t *Terminal) Entropy(hexEntropy string) {
	t.println(t.paint(colorWhite, "0x"+hexEntropy))
}

// FormatRows groups words in rows of the given size. Every word is padded to
// be centered in a column as wide as the longest word, every row is centered
// in the frame.
func FormatRows(words []string, wordsPerRow int) []string {
	if wordsPerRow <= 0 {
		wordsPerRow = defaultWordsPerRow
	}

	maxLen := 0
	for _, w := range words {
		if l := utf8.RuneCountInString(w); l > maxLen {
			maxLen = l
		}
	}

	rows := make([]string, 0, len(words)/wordsPerRow+1)
	for i := 0; i < len(words); i += wordsPerRow {
		end := i + wordsPerRow
		if end > len(words) {
			end = len(words)
		}

		cells := make([]string, 0, end-i)
		for _, w := range words[i:end] {
			pad := strings.Repeat(" ", (maxLen-utf8.RuneCountInString(w))/2)
			cells = append(cells, pad+w+pad)
		}
		rows = append(rows, center(strings.Join(cells, " "), frameWidth))
	}
	return rows
}

func center(s string, width int) string {
	l := utf8.RuneCountInString(s)
	if l >= width {
		return s
	}
	left := (width - l) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-l-left)
}

func (t *Terminal) paint(color, s string) string {
	if t.opts.NoColor {
		return s
	}
	return color + s + colorReset
}

func (t *Terminal) println(s string) {
	fmt.Fprintln(t.w, s)
}
