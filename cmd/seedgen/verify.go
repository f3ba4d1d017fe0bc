package main

import (
	"io"

	"github.com/spf13/cobra"
)

var (
	showEntropy bool

	verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "check a mnemonic phrase",
		Long: "this command reads a mnemonic phrase from stdin and checks that " +
			"every word belongs to the dictionary and that its checksum is valid",
		Args: cobra.NoArgs,
		RunE: verify,
	}
)

func init() {
	verifyCmd.Flags().BoolVar(
		&showEntropy, "show-entropy", false,
		"print the entropy encoded by the mnemonic in hex format",
	)
}

func verify(cmd *cobra.Command, _ []string) error {
	return runVerify(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), showEntropy)
}

func runVerify(in io.Reader, out, errOut io.Writer, showEntropy bool) error {
	session, stats, err := newSession(in, out)
	if err != nil {
		return err
	}

	runErr := session.Verify(showEntropy)
	if err := dumpStats(stats, errOut); err != nil {
		return err
	}
	return runErr
}
