package main

import (
	"io"

	"github.com/spf13/cobra"
)

func generate(cmd *cobra.Command, _ []string) error {
	return runGenerate(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func runGenerate(in io.Reader, out, errOut io.Writer) error {
	session, stats, err := newSession(in, out)
	if err != nil {
		return err
	}

	runErr := session.Generate()
	if err := dumpStats(stats, errOut); err != nil {
		return err
	}
	return runErr
}
