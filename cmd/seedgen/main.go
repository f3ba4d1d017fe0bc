package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vulpemventures/seedgen/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	noColor     bool
	dumpMetrics bool
	labelFlag   string

	rootCmd = &cobra.Command{
		Use:   "seedgen",
		Short: "Deterministic 24-word mnemonic generator",
		Long: "This CLI derives a 24-word mnemonic from a 256 bit hex secret " +
			"and a password. The same inputs always produce the same mnemonic.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("no-color") {
				config.Set(config.NoColorKey, noColor)
			}
			if cmd.Flags().Changed("dump-metrics") {
				config.Set(config.DumpMetricsKey, dumpMetrics)
			}
			if cmd.Flags().Changed("label") {
				config.Set(config.KdfLabelKey, labelFlag)
			}
			if err := config.Validate(); err != nil {
				return err
			}

			log.SetOutput(os.Stderr)
			log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))
			return nil
		},
		RunE:          generate,
		Version:       formatVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(
		&noColor, "no-color", false, "disable colored output",
	)
	rootCmd.PersistentFlags().BoolVar(
		&dumpMetrics, "dump-metrics", false,
		"print the collected pipeline metrics on stderr when done",
	)
	rootCmd.PersistentFlags().StringVar(
		&labelFlag, "label", "",
		"custom HKDF info label, changing it changes every generated mnemonic",
	)
	rootCmd.AddCommand(verifyCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printErr(os.Stderr, err)
		os.Exit(1)
	}
}
