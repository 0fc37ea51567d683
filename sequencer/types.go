package sequencer

import (
	"io"
	"log/slog"
)

// Graph maps an item to the ordered list of items it depends on.
// Every dependency must itself be a key of the Graph.
type Graph map[string][]string

// Groups is an ordered sequence of disjoint item bands. The index of the band
// holding an item is that item's rank.
type Groups [][]string

// Items returns every item across all groups in group order.
func (gs Groups) Items() []string {
	n := 0
	for _, g := range gs {
		n += len(g)
	}
	out := make([]string, 0, n)
	for _, g := range gs {
		out = append(out, g...)
	}

	return out
}

// Result is the outcome of Sequence.
type Result struct {
	// Safe is false once any item was scheduled despite outstanding dependencies.
	Safe bool `json:"safe" yaml:"safe"`

	// Chunks holds the schedule waves in order; each chunk is sorted ascending.
	Chunks [][]string `json:"chunks" yaml:"chunks"`

	// Cycles lists the dependency loops found during stalls, in discovery order.
	// Each cycle starts at the revisited item and does not repeat it at the end.
	Cycles [][]string `json:"cycles" yaml:"cycles"`
}

// Order returns the final schedule: all chunks concatenated in order.
func (r *Result) Order() []string {
	if r == nil {
		return nil
	}
	n := 0
	for _, c := range r.Chunks {
		n += len(c)
	}
	out := make([]string, 0, n)
	for _, c := range r.Chunks {
		out = append(out, c...)
	}

	return out
}

// ChunkOf maps each scheduled item to the index of its chunk.
func (r *Result) ChunkOf() map[string]int {
	if r == nil {
		return nil
	}
	idx := make(map[string]int)
	for i, c := range r.Chunks {
		for _, item := range c {
			idx[item] = i
		}
	}

	return idx
}

// Option configures optional behavior of Sequence.
type Option func(*Options)

// Options holds the configurable parameters of Sequence.
type Options struct {
	// Logger receives Debug records for stalls and forced resolutions.
	// Defaults to a logger that discards everything.
	Logger *slog.Logger

	// SimpleCycles keeps only cycles that visit each item once, and reports
	// each of them once regardless of its starting item. Off by default.
	SimpleCycles bool
}

// DefaultOptions returns Options with a discarding logger and the full,
// unfiltered cycle report.
func DefaultOptions() Options {
	return Options{
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		SimpleCycles: false,
	}
}

// WithLogger returns an Option that routes diagnostics to l.
// Passing a nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSimpleCycles returns an Option that filters the cycle report down to
// simple cycles, each reported once. Two cycles are the same when one is a
// rotation of the other.
func WithSimpleCycles() Option {
	return func(o *Options) {
		o.SimpleCycles = true
	}
}

// Violation is a dependency edge the schedule does not honor: Dependency is
// in the same or an earlier group than Item but lands in a later chunk.
type Violation struct {
	Item       string `json:"item" yaml:"item"`
	Dependency string `json:"dependency" yaml:"dependency"`
}
