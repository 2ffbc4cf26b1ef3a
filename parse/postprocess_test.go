package parse_test

import (
	"strings"
	"testing"

	"github.com/parsweep/parsweep/core"
	"github.com/parsweep/parsweep/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postprocessed parses doc and runs Postprocess, failing the test on a
// parse error so postprocessing failures stand out.
func postprocessed(t *testing.T, doc, settingsBlock string) (*parse.Data, error) {
	t.Helper()
	data, err := parse.Parse(strings.NewReader(doc), settingsBlock)
	require.NoError(t, err)

	return data, data.Postprocess()
}

// TestPostprocess_RangeExpansion covers the documented expansions:
// [0, 10, 2] lands exactly on the stop; [0, 10, 3] overshoots it, which
// is documented behavior, not an error.
func TestPostprocess_RangeExpansion(t *testing.T) {
	data, err := postprocessed(t, "input:\n  lattice:\n    r: [0, 10, 2]\n    s: [0, 10, 3]\n", "")
	require.NoError(t, err)

	assert.Equal(t, []core.Real{0, 2, 4, 6, 8, 10}, data.Lattice["r"])
	assert.Equal(t, []core.Real{0, 3, 6, 9, 12}, data.Lattice["s"])
}

// TestPostprocess_RangeGuardRejects verifies triples failing the guard
// stay as 3 literal candidates.
func TestPostprocess_RangeGuardRejects(t *testing.T) {
	// v2 ≥ v1 with a positive stop: three literal values.
	data, err := postprocessed(t, "input:\n  lattice:\n    k: [0, 1, 2]\n", "")
	require.NoError(t, err)
	assert.Equal(t, []core.Real{0, 1, 2}, data.Lattice["k"])

	// Descending endpoints never expand.
	data, err = postprocessed(t, "input:\n  enumerated:\n    k: [5, 1, 1]\n", "")
	require.NoError(t, err)
	assert.Equal(t, []core.Real{5, 1, 1}, data.Enumerated["k"])
}

// TestPostprocess_NegativeRange verifies the non-positive-stop branch of
// the guard: step below half the span expands.
func TestPostprocess_NegativeRange(t *testing.T) {
	data, err := postprocessed(t, "input:\n  lattice:\n    neg: [-10, -2, 2]\n", "")
	require.NoError(t, err)
	assert.Equal(t, []core.Real{-10, -8, -6, -4, -2}, data.Lattice["neg"])
}

// TestPostprocess_FixedNeverExpands verifies range shorthand does not
// apply to fixed parameters.
func TestPostprocess_FixedNeverExpands(t *testing.T) {
	data, err := postprocessed(t, "input:\n  fixed:\n    f: [0, 10, 2]\n", "")
	require.NoError(t, err)
	// A fixed sequence is one array value, untouched.
	assert.Equal(t, [][]core.Real{{0, 10, 2}}, data.FixedArray["f"])
}

// TestPostprocess_ArrayRangeExpansion verifies per-position expansion of
// 3 equal-length array candidates, with the minimum count across
// positions as the expansion length.
func TestPostprocess_ArrayRangeExpansion(t *testing.T) {
	// Position 0: [0,10,2] → 6 values; position 1: [0,9,3] → 4 values.
	doc := "input:\n  lattice:\n    arr: [[0, 0], [10, 9], [2, 3]]\n"
	data, err := postprocessed(t, doc, "")
	require.NoError(t, err)

	assert.Equal(t, [][]core.Real{
		{0, 0},
		{2, 3},
		{4, 6},
		{6, 9},
	}, data.LatticeArray["arr"])
}

// TestPostprocess_ArrayRangeDisqualified verifies that one invalid
// position leaves all three literal candidates in place.
func TestPostprocess_ArrayRangeDisqualified(t *testing.T) {
	// Position 1 has a non-positive step.
	doc := "input:\n  lattice:\n    arr: [[0, 0], [10, 9], [2, -1]]\n"
	data, err := postprocessed(t, doc, "")
	require.NoError(t, err)
	assert.Equal(t, [][]core.Real{{0, 0}, {10, 9}, {2, -1}}, data.LatticeArray["arr"])
}

// TestPostprocess_LogDecoding verifies renaming and exponentiation,
// including after range expansion, and the declaration-order rename.
func TestPostprocess_LogDecoding(t *testing.T) {
	doc := "input:\n  lattice:\n    log10(k): [0, 1, 2]\n    log10(tock): [1, 3, 1]\n"
	data, err := postprocessed(t, doc, "")
	require.NoError(t, err)

	// [0,1,2] fails the range guard: three literal exponents.
	assert.Equal(t, []core.Real{1, 10, 100}, data.Lattice["k"])
	// [1,3,1] expands to exponents 1,2,3 before decoding.
	assert.Equal(t, []core.Real{10, 100, 1000}, data.Lattice["tock"])
	assert.NotContains(t, data.Lattice, "log10(k)")
	assert.Equal(t, []string{"k", "tock"}, data.LatticeOrder)
}

// TestPostprocess_LogOnFixed verifies log decoding applies to scalar
// fixed parameters too.
func TestPostprocess_LogOnFixed(t *testing.T) {
	data, err := postprocessed(t, "input:\n  fixed:\n    log10(p0): 2\n", "")
	require.NoError(t, err)
	assert.Equal(t, []core.Real{100}, data.Fixed["p0"])
}

// TestPostprocess_LogErrors covers unclosed parens, the array-parameter
// prohibition, and the rename collision.
func TestPostprocess_LogErrors(t *testing.T) {
	_, err := postprocessed(t, "input:\n  lattice:\n    log10(k: [1, 2]\n", "")
	assert.ErrorIs(t, err, core.ErrInvalidParamName, "unclosed parens")

	_, err = postprocessed(t, "input:\n  lattice:\n    log10(k): [[1, 2], [3, 4]]\n", "")
	assert.ErrorIs(t, err, core.ErrInvalidParamName, "log10 on an array parameter")

	doc := "input:\n  lattice:\n    log10(k): [1, 2]\n  fixed:\n    k: 5\n"
	_, err = postprocessed(t, doc, "")
	assert.ErrorIs(t, err, core.ErrInvalidParamName, "rename collision")
}

// TestPostprocess_RangeTooLarge verifies a schema-valid range whose
// expansion cannot fit in memory fails with the too-large error instead
// of overflowing the count.
func TestPostprocess_RangeTooLarge(t *testing.T) {
	_, err := postprocessed(t, "input:\n  lattice:\n    r: [0, 1e300, 1]\n", "")
	assert.ErrorIs(t, err, core.ErrEnsembleTooLarge)

	// Same guard on the per-position array path.
	doc := "input:\n  lattice:\n    arr: [[0, 0], [1e300, 9], [1, 3]]\n"
	_, err = postprocessed(t, doc, "")
	assert.ErrorIs(t, err, core.ErrEnsembleTooLarge)
}

// TestPostprocess_EnumerationLengths verifies the common-length rule.
func TestPostprocess_EnumerationLengths(t *testing.T) {
	data, err := postprocessed(t, "input:\n  enumerated:\n    x: [1, 2, 3]\n    y: [4, 5, 6]\n", "")
	require.NoError(t, err)
	assert.Equal(t, 3, data.EnumLen)

	_, err = postprocessed(t, "input:\n  enumerated:\n    x: [1, 2, 3]\n    y: [4, 5]\n", "")
	assert.ErrorIs(t, err, core.ErrInvalidEnumeration)
}
