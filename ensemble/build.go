package ensemble

import (
	"fmt"
	"math"

	"github.com/parsweep/parsweep/core"
	"github.com/parsweep/parsweep/parse"
)

// maxLatticeDims caps the number of simultaneously-varying lattice
// dimensions.
const maxLatticeDims = 7

// dimension is one varying lattice axis: a name plus its ordered
// candidate values in exactly one of the two shapes.
type dimension struct {
	name    string
	scalars []core.Real   // nil for array-valued dimensions
	arrays  [][]core.Real // nil for scalar-valued dimensions
	n       int
}

// build materializes every ensemble member from the postprocessed
// groups, in deterministic record order.
func build(data *parse.Data) ([]*core.Input, Type, error) {
	if data.ParamCount() == 0 {
		return nil, Lattice, fmt.Errorf("%w: ensemble has no members", core.ErrEmptyEnsemble)
	}
	if len(data.Enumerated)+len(data.EnumeratedArray) > 0 && data.EnumLen == 0 {
		return nil, Lattice, fmt.Errorf("%w: enumeration has no values", core.ErrEmptyEnsemble)
	}

	// Separate varying lattice dimensions from pinned (single-candidate)
	// names, which fold into fixed semantics. Declaration order is the
	// contract: the last-declared dimension varies fastest.
	var dims []dimension
	pinnedScalars := make(map[string]core.Real)
	pinnedArrays := make(map[string][]core.Real)
	for _, name := range data.LatticeOrder {
		if values, ok := data.Lattice[name]; ok {
			if len(values) == 1 {
				pinnedScalars[name] = values[0]
				continue
			}
			dims = append(dims, dimension{name: name, scalars: values, n: len(values)})
			continue
		}
		arrays := data.LatticeArray[name]
		if len(arrays) == 1 {
			pinnedArrays[name] = arrays[0]
			continue
		}
		dims = append(dims, dimension{name: name, arrays: arrays, n: len(arrays)})
	}
	if len(dims) > maxLatticeDims {
		return nil, Lattice, fmt.Errorf("%w: the given lattice ensemble has %d traversed parameters (must be <= %d)",
			core.ErrTooManyLatticeParams, len(dims), maxLatticeDims)
	}

	count := 1
	for _, d := range dims {
		var ok bool
		if count, ok = mulCount(count, d.n); !ok {
			return nil, Lattice, tooLarge(dims, data.EnumLen)
		}
	}
	enumLen := data.EnumLen
	if enumLen > 0 {
		var ok bool
		if count, ok = mulCount(count, enumLen); !ok {
			return nil, Lattice, tooLarge(dims, data.EnumLen)
		}
	}

	typ := Enumeration
	if len(dims) > 0 {
		typ = Lattice
	}

	inputs := make([]*core.Input, count)
	indices := make([]int, len(dims))
	for l := 0; l < count; l++ {
		latticeIndex, enumIndex := l, 0
		if enumLen > 0 {
			latticeIndex, enumIndex = l/enumLen, l%enumLen
		}
		unravel(latticeIndex, dims, indices)

		params := make(map[string]core.Real, len(data.Fixed)+len(pinnedScalars)+len(dims)+len(data.Enumerated))
		arrays := make(map[string][]core.Real, len(data.FixedArray)+len(pinnedArrays)+len(data.EnumeratedArray))

		for name, values := range data.Fixed {
			params[name] = values[0]
		}
		for name, candidates := range data.FixedArray {
			arrays[name] = candidates[0]
		}
		for name, v := range pinnedScalars {
			params[name] = v
		}
		for name, v := range pinnedArrays {
			arrays[name] = v
		}
		for i, d := range dims {
			if d.scalars != nil {
				params[d.name] = d.scalars[indices[i]]
			} else {
				arrays[d.name] = d.arrays[indices[i]]
			}
		}
		for name, values := range data.Enumerated {
			params[name] = values[enumIndex]
		}
		for name, candidates := range data.EnumeratedArray {
			arrays[name] = candidates[enumIndex]
		}

		inputs[l] = core.NewInput(params, arrays)
	}

	return inputs, typ, nil
}

// unravel decomposes a flat lattice index into one sub-index per
// dimension via mixed-radix division, most-significant (first-declared)
// dimension first: the last dimension varies fastest. This single
// routine replaces per-dimension-count special cases; it holds for any
// number of dimensions, zero included.
func unravel(index int, dims []dimension, indices []int) {
	for i := len(dims) - 1; i > 0; i-- {
		indices[i] = index % dims[i].n
		index /= dims[i].n
	}
	if len(dims) > 0 {
		indices[0] = index
	}
}

// mulCount multiplies record counts, reporting overflow instead of
// wrapping.
func mulCount(a, b int) (int, bool) {
	if a > math.MaxInt/b {
		return 0, false
	}

	return a * b, true
}

// tooLarge builds the ensemble-too-large error with the offending
// dimensions spelled out.
func tooLarge(dims []dimension, enumLen int) error {
	total := len(dims)
	if enumLen > 0 {
		total++
	}

	return fmt.Errorf("%w: the product of %d dimension cardinalities exceeds addressable memory",
		core.ErrEnsembleTooLarge, total)
}
