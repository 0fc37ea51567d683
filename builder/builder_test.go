// Package builder_test contains functional tests for the fixture
// constructors, verifying topology, grouping, determinism, and error
// sentinels.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphseq/builder"
	"github.com/katalvlaran/graphseq/sequencer"
)

// TestBuilders_Functional checks the exact graph and groups of each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cons       []builder.Constructor
		wantGraph  sequencer.Graph
		wantGroups sequencer.Groups
	}{
		{
			name:       "Chain(3)",
			cons:       []builder.Constructor{builder.Chain(3)},
			wantGraph:  sequencer.Graph{"0": {}, "1": {"0"}, "2": {"1"}},
			wantGroups: sequencer.Groups{{"0", "1", "2"}},
		},
		{
			name:       "Cycle(1) is a self dependency",
			cons:       []builder.Constructor{builder.Cycle(1)},
			wantGraph:  sequencer.Graph{"0": {"0"}},
			wantGroups: sequencer.Groups{{"0"}},
		},
		{
			name:       "Cycle(3)",
			cons:       []builder.Constructor{builder.Cycle(3)},
			wantGraph:  sequencer.Graph{"0": {"1"}, "1": {"2"}, "2": {"0"}},
			wantGroups: sequencer.Groups{{"0", "1", "2"}},
		},
		{
			name:       "FanIn(3)",
			cons:       []builder.Constructor{builder.FanIn(3)},
			wantGraph:  sequencer.Graph{"0": {}, "1": {"0"}, "2": {"0"}},
			wantGroups: sequencer.Groups{{"0", "1", "2"}},
		},
		{
			name:       "RandomDAG with p=1 is complete",
			cons:       []builder.Constructor{builder.RandomDAG(3, 1)},
			wantGraph:  sequencer.Graph{"0": {}, "1": {"0"}, "2": {"0", "1"}},
			wantGroups: sequencer.Groups{{"0", "1", "2"}},
		},
		{
			name:       "RandomDAG with p=0 has no edges",
			cons:       []builder.Constructor{builder.RandomDAG(2, 0)},
			wantGraph:  sequencer.Graph{"0": {}, "1": {}},
			wantGroups: sequencer.Groups{{"0", "1"}},
		},
		{
			name:       "composition continues the index",
			cons:       []builder.Constructor{builder.Chain(2), builder.Cycle(2)},
			wantGraph:  sequencer.Graph{"0": {}, "1": {"0"}, "2": {"3"}, "3": {"2"}},
			wantGroups: sequencer.Groups{{"0", "1", "2", "3"}},
		},
		{
			name:       "Banded splits contiguously",
			cons:       []builder.Constructor{builder.Chain(5), builder.Banded(2)},
			wantGraph:  sequencer.Graph{"0": {}, "1": {"0"}, "2": {"1"}, "3": {"2"}, "4": {"3"}},
			wantGroups: sequencer.Groups{{"0", "1", "2"}, {"3", "4"}},
		},
		{
			name:       "Banded with more bands than items",
			cons:       []builder.Constructor{builder.Chain(1), builder.Banded(3)},
			wantGraph:  sequencer.Graph{"0": {}},
			wantGroups: sequencer.Groups{{"0"}, {}, {}},
		},
		{
			name:       "items after Banded join the last band",
			cons:       []builder.Constructor{builder.Chain(2), builder.Banded(2), builder.FanIn(2)},
			wantGraph:  sequencer.Graph{"0": {}, "1": {"0"}, "2": {}, "3": {"2"}},
			wantGroups: sequencer.Groups{{"0"}, {"1", "2", "3"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := builder.Build(nil, tc.cons...)
			require.NoError(t, err)
			assert.Equal(t, tc.wantGraph, f.Graph)
			assert.Equal(t, tc.wantGroups, f.Groups)
			assert.NoError(t, sequencer.Validate(f.Graph, f.Groups))
		})
	}
}

// TestBuilders_Errors verifies that invalid parameters surface the sentinels.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []builder.Option
		cons []builder.Constructor
		want error
	}{
		{"Chain(0)", nil, []builder.Constructor{builder.Chain(0)}, builder.ErrTooFewItems},
		{"Cycle(0)", nil, []builder.Constructor{builder.Cycle(0)}, builder.ErrTooFewItems},
		{"FanIn(1)", nil, []builder.Constructor{builder.FanIn(1)}, builder.ErrTooFewItems},
		{"Banded(0)", nil, []builder.Constructor{builder.Banded(0)}, builder.ErrTooFewItems},
		{"RandomDAG(0,p)", nil, []builder.Constructor{builder.RandomDAG(0, 0.5)}, builder.ErrTooFewItems},
		{"RandomDAG p<0", nil, []builder.Constructor{builder.RandomDAG(3, -0.1)}, builder.ErrInvalidProbability},
		{"RandomDAG p>1", nil, []builder.Constructor{builder.RandomDAG(3, 1.1)}, builder.ErrInvalidProbability},
		{"RandomDAG without rng", nil, []builder.Constructor{builder.RandomDAG(3, 0.5)}, builder.ErrNeedRandSource},
		{"nil constructor", nil, []builder.Constructor{nil}, builder.ErrConstructFailed},
		{
			"non-injective ID scheme",
			[]builder.Option{builder.WithIDScheme(func(int) string { return "same" })},
			[]builder.Constructor{builder.Chain(2)},
			builder.ErrDuplicateItem,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := builder.Build(tc.opts, tc.cons...)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestRandomDAG_Deterministic checks that the same seed yields the same fixture
// and that a different RNG stream is allowed to differ.
func TestRandomDAG_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(opt builder.Option) *builder.Fixture {
		f, err := builder.Build([]builder.Option{opt}, builder.RandomDAG(30, 0.2), builder.Banded(4))
		require.NoError(t, err)
		return f
	}

	a := build(builder.WithSeed(7))
	b := build(builder.WithSeed(7))
	c := build(builder.WithRand(rand.New(rand.NewSource(7))))
	assert.Equal(t, a.Graph, b.Graph)
	assert.Equal(t, a.Groups, b.Groups)
	assert.Equal(t, a.Graph, c.Graph)
	assert.Equal(t, 30, a.Len())
}

// TestRandomDAG_Acyclic confirms random DAG fixtures sequence safely.
func TestRandomDAG_Acyclic(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 5; seed++ {
		f, err := builder.Build([]builder.Option{builder.WithSeed(seed)}, builder.RandomDAG(25, 0.3))
		require.NoError(t, err)

		res, err := sequencer.Sequence(f.Graph, f.Groups)
		require.NoError(t, err)
		assert.True(t, res.Safe, "seed %d", seed)
		assert.Empty(t, res.Cycles, "seed %d", seed)
	}
}

// TestFixture_Items checks insertion order and that Items returns a copy.
func TestFixture_Items(t *testing.T) {
	t.Parallel()

	f, err := builder.Build([]builder.Option{builder.WithExcelColumnIDs()}, builder.Chain(3))
	require.NoError(t, err)

	items := f.Items()
	assert.Equal(t, []string{"A", "B", "C"}, items)
	items[0] = "Z"
	assert.Equal(t, []string{"A", "B", "C"}, f.Items())
}
