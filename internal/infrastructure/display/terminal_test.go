package display_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/seedgen/internal/infrastructure/display"
)

var testWords = strings.Fields(
	"hamster diagram private dutch cause delay private meat slide toddler " +
		"razor book happy fancy gospel tennis maple dilemma loan word shrug " +
		"inflict delay length",
)

func TestFormatRows(t *testing.T) {
	t.Parallel()

	rows := display.FormatRows(testWords, 6)
	require.Len(t, rows, 4)
	for i, row := range rows {
		require.Len(t, row, 65)
		require.Equal(t, testWords[i*6:i*6+6], strings.Fields(row))
	}

	rows = display.FormatRows(testWords, 5)
	require.Len(t, rows, 5)
	require.Equal(t, testWords[20:], strings.Fields(rows[4]))

	// Words are centered in columns as wide as the longest word.
	rows = display.FormatRows([]string{"toddler", "zoo"}, 0)
	require.Len(t, rows, 1)
	require.Contains(t, rows[0], "toddler   zoo  ")
}

func TestTerminal(t *testing.T) {
	t.Parallel()

	t.Run("no color", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		term, err := display.NewTerminal(buf, display.TerminalOpts{NoColor: true})
		require.NoError(t, err)

		term.Welcome()
		term.InputRequest("Input your Password:")
		term.Success()
		term.Mnemonic(testWords)
		term.Verified(24)
		term.Entropy("00ff")

		out := buf.String()
		require.NotContains(t, out, "\033[")
		require.Contains(t, out, "24-word seed GENERATOR!")
		require.Contains(t, out, "Input your Password:")
		require.Contains(t, out, "Acquired!")
		require.Contains(t, out, "24-WORD SEED GENERATED!")
		require.Contains(t, out, "Valid 24-word mnemonic!")
		require.Contains(t, out, "0x00ff")
		for _, row := range display.FormatRows(testWords, 6) {
			require.Contains(t, out, row)
		}
	})

	t.Run("color", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		term, err := display.NewTerminal(buf, display.TerminalOpts{})
		require.NoError(t, err)

		term.Success()
		require.Equal(t, "\033[1;92mAcquired!\033[0m\n\n", buf.String())
	})

	t.Run("invalid opts", func(t *testing.T) {
		t.Parallel()

		for _, n := range []int{-1, 25} {
			term, err := display.NewTerminal(&bytes.Buffer{}, display.TerminalOpts{WordsPerRow: n})
			require.Error(t, err)
			require.Nil(t, term)
		}
	})
}
