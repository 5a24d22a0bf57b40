package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aemdemos/xwalk-qantas/pkg/tableblock"
)

type cliOptions struct {
	outputPath  string
	format      string
	pretty      bool
	noHeader    bool
	sheet       string
	noPrintArea bool
	configPath  string
	verbose     bool
	quiet       bool
}

// resolve merges config file defaults with flags set on the command line.
func (o *cliOptions) resolve(cmd *cobra.Command) (tableblock.Options, bool, log.Level, error) {
	opts := tableblock.DefaultOptions()
	pretty := o.pretty
	level := log.InfoLevel

	if o.configPath != "" {
		cfg, err := tableblock.LoadConfig(o.configPath)
		if err != nil {
			return opts, false, level, err
		}
		if opts, err = cfg.Options(); err != nil {
			return opts, false, level, err
		}
		if level, err = cfg.LogLevel(level); err != nil {
			return opts, false, level, fmt.Errorf("config log level: %w", err)
		}
		if !cmd.Flags().Changed("pretty") {
			pretty = cfg.Table.Pretty
		}
	}

	flags := cmd.Flags()
	if flags.Changed("format") || o.configPath == "" {
		f, err := tableblock.ParseFormat(o.format)
		if err != nil {
			return opts, false, level, err
		}
		opts.Format = f
	}
	if flags.Changed("no-header") {
		opts.NoHeader = o.noHeader
	}
	if flags.Changed("sheet") {
		opts.Sheet = o.sheet
	}
	if flags.Changed("no-print-area") {
		use := !o.noPrintArea
		opts.UsePrintArea = &use
	}

	switch {
	case o.verbose:
		level = log.DebugLevel
	case o.quiet:
		level = log.ErrorLevel
	}
	return opts, pretty, level, nil
}

func run(cmd *cobra.Command, o *cliOptions, inputPath string) error {
	opts, pretty, level, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	if opts.Format == tableblock.FormatXLSX && o.outputPath == "" {
		return fmt.Errorf("xlsx output requires --output")
	}

	logger := tableblock.NewLogger(cmd.ErrOrStderr(), level)
	ctx := tableblock.WithLogger(cmd.Context(), logger)

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	var buf bytes.Buffer
	ext := strings.ToLower(filepath.Ext(inputPath))
	isHTML := ext == ".html" || ext == ".htm"

	if isHTML && opts.Format == tableblock.FormatHTML {
		// Pages are decorated in place so the surrounding markup survives.
		fh, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		defer fh.Close()
		n, err := tableblock.DecorateHTML(ctx, fh, &buf, opts)
		if err != nil {
			return fmt.Errorf("decoration failed: %w", err)
		}
		logger.Info("decorated page", "file", filepath.Base(inputPath), "blocks", n)
	} else {
		doc, err := tableblock.Decorate(ctx, inputPath, opts)
		if err != nil {
			return fmt.Errorf("decoration failed: %w", err)
		}
		logger.Info("decorated document", "file", doc.Source, "tables", len(doc.Tables))

		if err := write(&buf, doc, opts.Format, pretty); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	}

	if o.outputPath != "" {
		if err := os.WriteFile(o.outputPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Debug("wrote output", "path", o.outputPath, "bytes", buf.Len())
		return nil
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
