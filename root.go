package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand.
type app struct {
	output  string
	verbose bool
	log     *Logger
}

func newRootCmd(cfg Config) (rootCmd *cobra.Command) {
	a := &app{}

	rootCmd = &cobra.Command{
		Use:          "brewcalc",
		Short:        "brewcalc home-brewing calculators",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			if !validOutput(a.output) {
				return fmt.Errorf("unknown output format %q, want one of %v", a.output, outputFormats)
			}
			level := "warn"
			if a.verbose {
				level = "debug"
			}
			a.log = NewLogger(c.ErrOrStderr(), level)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", cfg.Output,
		"output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", cfg.Verbose,
		"log debug information to stderr")

	rootCmd.AddCommand(a.abvCmd())
	rootCmd.AddCommand(a.convertCmd())
	rootCmd.AddCommand(a.unitsCmd())
	return
}
