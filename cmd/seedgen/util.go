package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/vulpemventures/seedgen/internal/config"
	"github.com/vulpemventures/seedgen/internal/core/application"
	"github.com/vulpemventures/seedgen/internal/infrastructure/display"
	"github.com/vulpemventures/seedgen/internal/infrastructure/input"
	"github.com/vulpemventures/seedgen/internal/infrastructure/metrics"
)

var (
	colorRed   = string("\033[31m")
	colorReset = string("\033[0m")
)

func newSession(
	in io.Reader, out io.Writer,
) (*application.Session, *metrics.Service, error) {
	presenter, err := display.NewTerminal(out, display.TerminalOpts{
		NoColor:     config.GetBool(config.NoColorKey),
		WordsPerRow: config.GetInt(config.WordsPerRowKey),
	})
	if err != nil {
		return nil, nil, err
	}

	stats := metrics.NewService()
	svc := application.NewGeneratorService(
		config.GetString(config.KdfLabelKey), nil, stats,
	)
	return application.NewSession(svc, input.NewLineReader(in), presenter), stats, nil
}

func dumpStats(stats *metrics.Service, w io.Writer) error {
	if !config.GetBool(config.DumpMetricsKey) {
		return nil
	}
	return stats.Dump(w)
}

func printErr(w io.Writer, err error) {
	msg := capitalize(err.Error())
	if !config.GetBool(config.NoColorKey) {
		msg = colorRed + msg + colorReset
	}
	fmt.Fprintln(w, msg)
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	ss := strings.ToUpper(s[0:1])
	ss += s[1:]
	return ss
}

func formatVersion() string {
	return fmt.Sprintf(
		"\nVersion: %s\nCommit: %s\nDate: %s", version, commit, date,
	)
}
