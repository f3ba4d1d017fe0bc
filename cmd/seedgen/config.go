package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vulpemventures/seedgen/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "print CLI configuration",
	Long: "this command prints the effective configuration of the CLI, " +
		"customizable with SEEDGEN_ prefixed environment variables",
	Args: cobra.NoArgs,
	RunE: configPrint,
}

func configPrint(cmd *cobra.Command, _ []string) error {
	buf, err := json.MarshalIndent(config.Settings(), "", "   ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(buf))
	return nil
}
