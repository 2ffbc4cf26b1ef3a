package ensemble_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/parsweep/parsweep/core"
	"github.com/parsweep/parsweep/ensemble"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scalarAt fetches the named scalar from record i, failing the test on
// a lookup error.
func scalarAt(t *testing.T, ens *ensemble.Ensemble, i int, name string) core.Real {
	t.Helper()
	in, _ := ens.At(i)
	v, err := in.Get(name)
	require.NoError(t, err)

	return v
}

// TestBuild_RowMajorLattice verifies the documented record ordering for
// a two-dimensional lattice: the last-declared dimension varies
// fastest.
func TestBuild_RowMajorLattice(t *testing.T) {
	doc := "input:\n  lattice:\n    a: [1, 2]\n    b: [10, 20, 30]\n"
	ens := mustLoad(t, doc, "")
	require.Equal(t, 6, ens.Size())
	assert.Equal(t, ensemble.Lattice, ens.Type())

	want := [][2]core.Real{
		{1, 10}, {1, 20}, {1, 30},
		{2, 10}, {2, 20}, {2, 30},
	}
	for i, pair := range want {
		assert.Equal(t, pair[0], scalarAt(t, ens, i, "a"), "record %d a", i)
		assert.Equal(t, pair[1], scalarAt(t, ens, i, "b"), "record %d b", i)
	}
}

// TestBuild_EnumerationZips verifies enumerated lists advance in
// lockstep rather than multiplying.
func TestBuild_EnumerationZips(t *testing.T) {
	doc := "input:\n  enumerated:\n    x: [1, 2, 3]\n    y: [10, 20, 30]\n"
	ens := mustLoad(t, doc, "")
	require.Equal(t, 3, ens.Size())
	assert.Equal(t, ensemble.Enumeration, ens.Type())

	for i, want := range []core.Real{10, 20, 30} {
		assert.Equal(t, core.Real(i+1), scalarAt(t, ens, i, "x"))
		assert.Equal(t, want, scalarAt(t, ens, i, "y"))
	}
}

// TestBuild_MixedEnsemble verifies the full indexing contract on a
// realistic mix: fixed scalars, an 11x2 lattice from a range shorthand
// and a 10-long enumeration give 220 members, with the enumerated index
// cycling fastest.
func TestBuild_MixedEnsemble(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("input:\n")
	sb.WriteString("  fixed:\n    T: 300\n    p0: 101325\n    area: [1, 2, 3]\n")
	sb.WriteString("  lattice:\n    x: [0, 10, 1]\n    y: [1, 2]\n")
	sb.WriteString("  enumerated:\n    e: [")
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&sb, "%d, ", i)
	}
	sb.WriteString("]\n")

	ens := mustLoad(t, sb.String(), "")
	require.Equal(t, 220, ens.Size())
	assert.Equal(t, ensemble.Lattice, ens.Type())

	xValues := []core.Real{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	yValues := []core.Real{1, 2}
	for _, i := range []int{0, 9, 10, 19, 20, 119, 219} {
		lattice := i / 10
		assert.Equal(t, xValues[lattice/2], scalarAt(t, ens, i, "x"), "record %d x", i)
		assert.Equal(t, yValues[lattice%2], scalarAt(t, ens, i, "y"), "record %d y", i)
		assert.Equal(t, core.Real(i%10), scalarAt(t, ens, i, "e"), "record %d e", i)

		// Fixed parameters repeat everywhere.
		assert.Equal(t, core.Real(300), scalarAt(t, ens, i, "T"))
		in, _ := ens.At(i)
		arr, err := in.GetArray("area")
		require.NoError(t, err)
		assert.Equal(t, []core.Real{1, 2, 3}, arr)
	}
}

// TestBuild_ArrayLatticeDimension verifies array-valued candidates act
// as ordinary lattice dimensions.
func TestBuild_ArrayLatticeDimension(t *testing.T) {
	doc := "input:\n  lattice:\n    a: [1, 2]\n    shape: [[1, 2], [3, 4], [5, 6]]\n"
	ens := mustLoad(t, doc, "")
	require.Equal(t, 6, ens.Size())

	in, _ := ens.At(4) // a index 1, shape index 1
	assert.Equal(t, core.Real(2), scalarAt(t, ens, 4, "a"))
	arr, err := in.GetArray("shape")
	require.NoError(t, err)
	assert.Equal(t, []core.Real{3, 4}, arr)
}

// TestBuild_PinnedLatticeFolds verifies a single-valued lattice
// parameter behaves as fixed: present everywhere, no extra dimension,
// and exempt from the dimension cap.
func TestBuild_PinnedLatticeFolds(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("input:\n  lattice:\n")
	sb.WriteString("    a: [1, 2]\n")
	for i := 0; i < 7; i++ {
		fmt.Fprintf(&sb, "    pin%d: %d\n", i, i)
	}

	ens := mustLoad(t, sb.String(), "")
	require.Equal(t, 2, ens.Size())
	for i := 0; i < 2; i++ {
		assert.Equal(t, core.Real(3), scalarAt(t, ens, i, "pin3"))
	}
}

// TestBuild_TooManyDimensions verifies the varying-dimension cap.
func TestBuild_TooManyDimensions(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("input:\n  lattice:\n")
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&sb, "    d%d: [1, 2]\n", i)
	}

	_, err := loadDoc(t, sb.String(), "")
	assert.ErrorIs(t, err, core.ErrTooManyLatticeParams)
}

// TestBuild_SevenDimensionsAllowed verifies the cap is inclusive.
func TestBuild_SevenDimensionsAllowed(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("input:\n  lattice:\n")
	for i := 0; i < 7; i++ {
		fmt.Fprintf(&sb, "    d%d: [1, 2]\n", i)
	}

	ens := mustLoad(t, sb.String(), "")
	assert.Equal(t, 128, ens.Size())
}

// TestBuild_ProductTooLarge verifies the overflow check on the member
// count: seven 512-value dimensions give 512^7 members, which exceeds
// the addressable range without any single dimension being oversized.
func TestBuild_ProductTooLarge(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("input:\n  lattice:\n")
	for i := 0; i < 7; i++ {
		fmt.Fprintf(&sb, "    d%d: [1, 512, 1]\n", i)
	}

	_, err := loadDoc(t, sb.String(), "")
	assert.ErrorIs(t, err, core.ErrEnsembleTooLarge)
}

// TestBuild_Deterministic verifies loading the same description twice
// yields identical record content in identical order.
func TestBuild_Deterministic(t *testing.T) {
	doc := `
input:
  fixed:
    T: 300
    profile: [1, 2, 3]
  lattice:
    a: [0, 6, 2]
    b: [10, 20]
    shape: [[1, 2], [3, 4]]
  enumerated:
    e: [7, 8]
`
	first := mustLoad(t, doc, "")
	second := mustLoad(t, doc, "")
	require.Equal(t, first.Size(), second.Size())

	for i := 0; i < first.Size(); i++ {
		in1, _ := first.At(i)
		in2, _ := second.At(i)
		require.Equal(t, in1.Names(), in2.Names(), "record %d", i)
		require.Equal(t, in1.ArrayNames(), in2.ArrayNames(), "record %d", i)
		for _, name := range in1.Names() {
			v1, err := in1.Get(name)
			require.NoError(t, err)
			v2, err := in2.Get(name)
			require.NoError(t, err)
			assert.Equal(t, v1, v2, "record %d %s", i, name)
		}
		for _, name := range in1.ArrayNames() {
			a1, err := in1.GetArray(name)
			require.NoError(t, err)
			a2, err := in2.GetArray(name)
			require.NoError(t, err)
			assert.Equal(t, a1, a2, "record %d %s", i, name)
		}
	}
}

// TestBuild_FixedOnlyIsEnumeration verifies a single-member ensemble of
// fixed parameters is tagged as an enumeration.
func TestBuild_FixedOnlyIsEnumeration(t *testing.T) {
	ens := mustLoad(t, "input:\n  fixed:\n    T: 300\n", "")
	assert.Equal(t, 1, ens.Size())
	assert.Equal(t, ensemble.Enumeration, ens.Type())
}

// TestBuild_LatticeTimesEnumeration verifies a pinned-only lattice with
// an enumeration is still tagged as an enumeration.
func TestBuild_LatticeTimesEnumeration(t *testing.T) {
	doc := "input:\n  lattice:\n    pin: 5\n  enumerated:\n    e: [1, 2]\n"
	ens := mustLoad(t, doc, "")
	assert.Equal(t, 2, ens.Size())
	assert.Equal(t, ensemble.Enumeration, ens.Type())
	assert.Equal(t, core.Real(5), scalarAt(t, ens, 1, "pin"))
}
