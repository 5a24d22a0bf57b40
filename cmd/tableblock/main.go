// Package main provides the CLI entry point for tableblock.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &cliOptions{}
	rootCmd := &cobra.Command{
		Use:   "tableblock [input.html|input.xlsx|input.json]",
		Short: "Decorate table blocks with merged cells",
		Long: `tableblock reads table blocks from an HTML page, an xlsx workbook or a
content-index JSON payload, merges adjacent cells with identical text
(first column vertically, every row horizontally) and writes the result
as HTML, JSON or xlsx.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o, args[0])
		},
	}

	rootCmd.Flags().StringVarP(&o.outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&o.format, "format", "html", "Output format: html, json, xlsx")
	rootCmd.Flags().BoolVar(&o.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&o.noHeader, "no-header", false, "Render every row as a body row")
	rootCmd.Flags().StringVar(&o.sheet, "sheet", "", "Only decorate this xlsx sheet")
	rootCmd.Flags().BoolVar(&o.noPrintArea, "no-print-area", false, "Ignore xlsx print areas")
	rootCmd.Flags().StringVar(&o.configPath, "config", "", "TOML config file with defaults")
	rootCmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&o.quiet, "quiet", "q", false, "Only log errors")

	return rootCmd
}
