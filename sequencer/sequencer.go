package sequencer

import (
	"fmt"
	"log/slog"
	"sort"
)

// runner encapsulates the working state of one Sequence call.
type runner struct {
	graph   Graph
	rank    map[string]int
	opts    Options
	chunked map[string]bool // items already placed in a chunk
	visited visitCache      // edges expanded by the cycle search, shared by all stalls
	seen    map[string]bool // cycle signatures, used only with SimpleCycles
	result  *Result
}

// Sequence orders the items of g into chunks, honoring dependencies within
// the limits set by groups.
//
// A dependency d of item x blocks x only while d is unscheduled and
// rank(d) <= rank(x); dependencies in a later group never block. Each
// iteration moves every unblocked item into the next chunk. When nothing is
// unblocked, the cycles among the remaining items are recorded, the item with
// the fewest outstanding dependencies (earliest in queue order on ties) is
// forced into a chunk of its own, and Result.Safe becomes false.
//
// Sequence never fails on cyclic input. It returns an error wrapping
// ErrInvalidInput when Validate rejects g and groups; no partial result is
// returned in that case.
func Sequence(g Graph, groups Groups, options ...Option) (*Result, error) {
	// 1. Preconditions
	if err := Validate(g, groups); err != nil {
		return nil, fmt.Errorf("sequencer: Sequence: %w", err)
	}
	// 2. Options
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Precompute ranks once (Validate already rejected duplicates)
	rank, err := Ranks(groups)
	if err != nil {
		return nil, fmt.Errorf("sequencer: Sequence: %w", err)
	}

	r := &runner{
		graph:   g,
		rank:    rank,
		opts:    opts,
		chunked: make(map[string]bool, len(g)),
		visited: make(visitCache),
		result: &Result{
			Safe:   true,
			Chunks: make([][]string, 0),
			Cycles: make([][]string, 0),
		},
	}
	if opts.SimpleCycles {
		r.seen = make(map[string]bool)
	}

	// 4. Drain the queue; each iteration removes at least one item
	queue := groups.Items()
	for len(queue) > 0 {
		queue = r.step(queue)
	}

	return r.result, nil
}

// step runs one iteration over queue and returns the next queue.
func (r *runner) step(queue []string) []string {
	rem := newRemainingDeps(len(queue))
	chunk := make([]string, 0)
	next := make([]string, 0, len(queue))

	// 1. Split the queue into ready and blocked items
	for _, item := range queue {
		outstanding := r.outstanding(item)
		rem.set(item, outstanding)
		if len(outstanding) > 0 {
			next = append(next, item)
		} else {
			chunk = append(chunk, item)
		}
	}

	// 2. Stall: record cycles and force the least blocked item out
	if len(chunk) == 0 {
		r.recordCycles(rem)

		sorted := make([]string, len(queue))
		copy(sorted, queue)
		sort.SliceStable(sorted, func(i, j int) bool {
			return len(rem.deps[sorted[i]]) < len(rem.deps[sorted[j]])
		})
		chunk = append(chunk, sorted[0])
		next = sorted[1:]
		r.result.Safe = false

		r.opts.Logger.Debug("sequencer: stall resolved by forcing an item",
			slog.String("item", sorted[0]),
			slog.Int("outstanding", len(rem.deps[sorted[0]])),
			slog.Int("remaining", len(next)),
		)
	}

	// 3. Commit the chunk
	for _, item := range chunk {
		r.chunked[item] = true
	}
	sort.Strings(chunk)
	r.result.Chunks = append(r.result.Chunks, chunk)

	return next
}

// outstanding returns the dependencies of item that still block it:
// unscheduled and in the same or an earlier group.
func (r *runner) outstanding(item string) []string {
	own := r.rank[item]
	var out []string
	for _, dep := range r.graph[item] {
		if r.rank[dep] > own {
			continue
		}
		if !r.chunked[dep] {
			out = append(out, dep)
		}
	}

	return out
}

// recordCycles runs the cycle search for a stalled iteration and appends the
// cycles it finds to the result.
func (r *runner) recordCycles(rem *remainingDeps) {
	found := findCycles(rem, r.visited)
	added := 0
	for _, c := range found {
		if r.seen != nil {
			if !isSimple(c) {
				continue
			}
			sig := CycleSignature(c)
			if r.seen[sig] {
				continue
			}
			r.seen[sig] = true
		}
		r.result.Cycles = append(r.result.Cycles, c)
		added++
	}

	r.opts.Logger.Debug("sequencer: stalled",
		slog.Int("remaining", len(rem.items)),
		slog.Int("cycles", added),
	)
}
