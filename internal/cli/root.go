// Package cli wires the trusted-system engine to a command line.
//
// The CLI is the reference embedding of the core: it owns everything the
// engine deliberately does not - reading files, loading configuration,
// providing the current date, and rendering results. Editor plugins do
// the same things through their own integration layer.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/trustedtext/trusted/internal/item"
)

// RootOptions holds global flags and injectable collaborators for all
// commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" | "json"
	ConfigPath string
	TodayFlag  string // overrides the wall-clock date, ISO YYYY-MM-DD

	// ReadSource reads one source path into lines. Injectable so tests
	// run without a filesystem. Defaults to readFileLines.
	ReadSource func(path string) ([]string, error)

	// Now provides the wall-clock date when --today is not given.
	// Defaults to the local date.
	Now func() item.Date

	// Out and Err are the command's output streams.
	Out io.Writer
	Err io.Writer
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the trusted CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{
		ReadSource: readFileLines,
		Now:        func() item.Date { return item.DateOf(time.Now()) },
		Out:        os.Stdout,
		Err:        os.Stderr,
	}
	return newRootCommand(opts)
}

// newRootCommand builds the command tree over explicit options.
// Tests construct options with fake collaborators and call this
// directly.
func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "trusted",
		Short:         "trusted - GTD views over plain-text task lists",
		Long:          "A trusted-system engine: parses task lines, classifies them into GTD buckets, and answers filtered views.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(opts.Err, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file")
	cmd.PersistentFlags().StringVar(&opts.TodayFlag, "today", "", "reference date (YYYY-MM-DD, defaults to today)")

	// Bucket views
	cmd.AddCommand(newBucketCommand(opts, "next", item.BucketNextAction, "Show next actions"))
	cmd.AddCommand(newBucketCommand(opts, "waiting", item.BucketWaiting, "Show the waiting-for list"))
	cmd.AddCommand(newBucketCommand(opts, "someday", item.BucketSomeday, "Show someday/maybe items"))
	cmd.AddCommand(newBucketCommand(opts, "tickler", item.BucketTickler, "Show tickled (hidden) items"))
	cmd.AddCommand(newBucketCommand(opts, "done", item.BucketCompleted, "Show completed items"))

	// Generic and saved views
	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newViewCommand(opts))

	// Tag summaries
	cmd.AddCommand(newContextsCommand(opts))
	cmd.AddCommand(newProjectsCommand(opts))

	return cmd
}

// today resolves the reference date: the --today flag if given,
// otherwise the injected clock. An unparseable flag is a command error -
// an invalid date provider is the caller's fault, not the engine's.
func (o *RootOptions) today() (item.Date, error) {
	if o.TodayFlag == "" {
		return o.Now(), nil
	}
	d, ok := item.ParseDate(o.TodayFlag)
	if !ok {
		return item.Date{}, WrapExitError(ExitCommandError,
			fmt.Sprintf("invalid --today date %q", o.TodayFlag), nil)
	}
	return d, nil
}

// formatter builds the output formatter for one command run.
func (o *RootOptions) formatter() *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: o.Out, ErrWriter: o.Err}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
