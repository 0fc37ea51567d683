package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphseq/sequencer"
)

// errUnsafeOrder is returned under --strict when the ordering needed a
// forced resolution.
var errUnsafeOrder = errors.New("ordering is unsafe: unresolved dependency cycles")

// runOptions holds the flag values of one invocation.
type runOptions struct {
	format       string
	strict       bool
	simpleCycles bool
	verbose      bool
}

// newRootCmd builds the graphseq command. Each call returns an independent
// command so tests can run it repeatedly.
func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "graphseq [file|-]",
		Short: "Order a dependency graph into chunks, honoring priority groups",
		Long: `graphseq reads a dependency graph and an ordered list of groups, and prints
the execution order as chunks of items that can run together. Dependencies
on items in a later group never block. Cycles are broken by forcing the
least blocked item, and the ordering is then reported as unsafe.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text, json, or yaml")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit with status 2 when the ordering is unsafe")
	cmd.Flags().BoolVar(&opts.simpleCycles, "simple-cycles", false, "report each simple cycle once")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log stall diagnostics to stderr")

	return cmd
}

// run loads the document, sequences it, and renders the report.
func run(cmd *cobra.Command, path string, opts *runOptions) error {
	render, err := rendererFor(opts.format)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	in, closeIn, err := openInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	defer closeIn()

	doc, err := decodeDocument(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", displayName(path), err)
	}
	logger.Debug("document loaded",
		slog.String("source", displayName(path)),
		slog.Int("items", len(doc.Graph)),
		slog.Int("groups", len(doc.Groups)),
	)

	seqOpts := []sequencer.Option{sequencer.WithLogger(logger)}
	if opts.simpleCycles {
		seqOpts = append(seqOpts, sequencer.WithSimpleCycles())
	}
	res, err := sequencer.Sequence(doc.Graph, doc.Groups, seqOpts...)
	if err != nil {
		return err
	}
	violations, err := sequencer.Violations(doc.Graph, doc.Groups, res)
	if err != nil {
		return err
	}

	if err := render(cmd.OutOrStdout(), report{Result: *res, Violations: violations}); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if !res.Safe {
		logger.Warn("ordering is unsafe",
			slog.Int("cycles", len(res.Cycles)),
			slog.Int("violations", len(violations)),
		)
		if opts.strict {
			return errUnsafeOrder
		}
	}

	return nil
}

// openInput returns stdin for "-" and the named file otherwise.
func openInput(stdin io.Reader, path string) (io.Reader, func(), error) {
	if path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}
