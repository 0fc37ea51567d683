package sequencer_test

import (
	"testing"

	"github.com/katalvlaran/graphseq/builder"
	"github.com/katalvlaran/graphseq/sequencer"
)

// BenchmarkSequence_Chain1000 measures the worst case for iteration count:
// a chain schedules one item per iteration.
func BenchmarkSequence_Chain1000(b *testing.B) {
	f, err := builder.Build(nil, builder.Chain(1000))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = sequencer.Sequence(f.Graph, f.Groups)
	}
}

// BenchmarkSequence_RandomDAG2000 measures a sparse random DAG split into bands.
func BenchmarkSequence_RandomDAG2000(b *testing.B) {
	f, err := builder.Build(
		[]builder.Option{builder.WithSeed(1)},
		builder.RandomDAG(2000, 0.002),
		builder.Banded(8),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = sequencer.Sequence(f.Graph, f.Groups)
	}
}

// BenchmarkSequence_Ring500 measures repeated stalls: a ring forces one item
// and then unwinds.
func BenchmarkSequence_Ring500(b *testing.B) {
	f, err := builder.Build(nil, builder.Cycle(500))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = sequencer.Sequence(f.Graph, f.Groups)
	}
}
