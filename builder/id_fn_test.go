package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphseq/builder"
)

// TestIDFns verifies each IDFn for correct outputs and for panics on
// invalid inputs.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},

		{"ExcelColumnIDFn_A", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_Z", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_AA", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_AZ", builder.ExcelColumnIDFn, 51, "AZ", false},
		{"ExcelColumnIDFn_neg", builder.ExcelColumnIDFn, -1, "", true},

		{"SymbolNumberIDFn", builder.SymbolNumberIDFn("v"), 7, "v7", false},
		{"SymbolNumberIDFn_neg", builder.SymbolNumberIDFn("v"), -1, "", true},

		{"PaddedIDFn", builder.PaddedIDFn("t", 3), 7, "t007", false},
		{"PaddedIDFn_wide", builder.PaddedIDFn("t", 2), 123, "t123", false},
		{"PaddedIDFn_neg", builder.PaddedIDFn("t", 2), -1, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

// TestOptions_Panics checks that meaningless option values panic early.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.PaddedIDFn("x", 0) })
}

// TestIDSchemeOptions checks that the scheme shortcuts name fixture items.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opt  builder.Option
		want []string
	}{
		{"WithExcelColumnIDs", builder.WithExcelColumnIDs(), []string{"A", "B", "C"}},
		{"WithSymbNumb", builder.WithSymbNumb("svc"), []string{"svc0", "svc1", "svc2"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := builder.Build([]builder.Option{tc.opt}, builder.Chain(3))
			require.NoError(t, err)
			assert.Equal(t, tc.want, f.Items())
		})
	}
}
