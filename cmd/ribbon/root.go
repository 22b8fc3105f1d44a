package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ribbon/internal/logger"
)

type rootFlags struct {
	verbose   bool
	logFormat string
	logFile   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "ribbon",
		Short:         "Ribbon shows severity status badges in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "console", "Log format: console or json")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of stderr")

	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the command logger. fallback receives the output when no
// log file was requested. The returned closer releases the log file, if any.
func (f *rootFlags) newLogger(fallback io.Writer, component string) (*logger.Logger, func() error, error) {
	var humanReadable bool
	switch f.logFormat {
	case "console", "":
		humanReadable = true
	case "json":
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", f.logFormat)
	}

	level := "info"
	if f.verbose {
		level = "debug"
	}

	writer := fallback
	closer := func() error { return nil }
	if f.logFile != "" {
		file, err := os.OpenFile(f.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writer = file
		closer = file.Close
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: humanReadable,
		Writer:        writer,
		Component:     component,
	})
	if err != nil {
		_ = closer()
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return log, closer, nil
}
