package parse

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/parsweep/parsweep/core"
)

// Postprocess rewrites the raw value lists in place:
//
//  1. [start, stop, step] range shorthand expands into explicit
//     candidate lists (lattice and enumerated groups only; fixed values
//     are never expanded).
//  2. log10(name) parameters are renamed to name with every candidate
//     replaced by 10^candidate (scalar parameters in any group; the
//     wrapper is rejected on array-valued parameters).
//  3. Enumerated parameters are validated to share one common length,
//     recorded in EnumLen.
//
// The first error aborts and leaves the Data in an unspecified state.
func (d *Data) Postprocess() error {
	// The log10 wrapper is meaningless for array-valued parameters.
	for _, arrays := range []map[string][][]core.Real{d.FixedArray, d.LatticeArray, d.EnumeratedArray} {
		for name := range arrays {
			if strings.Contains(name, "(") {
				return fmt.Errorf("%w: array-valued parameter %q may not use log10",
					core.ErrInvalidParamName, name)
			}
		}
	}

	if err := expandRanges(d.Lattice); err != nil {
		return err
	}
	if err := expandRanges(d.Enumerated); err != nil {
		return err
	}
	if err := expandArrayRanges(d.LatticeArray); err != nil {
		return err
	}
	if err := expandArrayRanges(d.EnumeratedArray); err != nil {
		return err
	}

	if err := decodeLogParams(d.Fixed, nil); err != nil {
		return err
	}
	if err := decodeLogParams(d.Lattice, d.LatticeOrder); err != nil {
		return err
	}
	if err := decodeLogParams(d.Enumerated, nil); err != nil {
		return err
	}
	if err := d.checkUniqueNames(); err != nil {
		return err
	}

	return d.validateEnumerated()
}

// validRange reports whether the triple [v0, v1, v2] is range shorthand
// rather than three literal candidates: v0 < v1 with a positive step v2
// smaller than the stop value, or — for a non-positive stop — a step
// smaller than half the span.
func validRange(v0, v1, v2 core.Real) bool {
	if v0 >= v1 || v2 <= 0 {
		return false
	}
	if v2 < v1 {
		return true
	}

	return v1 <= 0 && v2 < (v1-v0)/2
}

// rangeCount is the number of values in the expansion of [v0, v1, v2]:
// v0, v0+v2, … up to and including the first value ≥ v1. The last value
// may exceed v1; that is documented behavior, not an error. ok is false
// when the count does not fit an int (the float→int conversion of an
// out-of-range value is unspecified, so it must never happen).
func rangeCount(v0, v1, v2 core.Real) (int, bool) {
	n := math.Ceil((v1-v0)/v2) + 1
	if !(n < float64(math.MaxInt)) { // also catches NaN and +Inf
		return 0, false
	}

	return int(n), true
}

// expandRanges replaces every 3-candidate scalar list that passes the
// range guard with its explicit expansion. A range whose expansion
// would not fit in memory is an ensemble-too-large error.
func expandRanges(params map[string][]core.Real) error {
	for name, values := range params {
		if len(values) != 3 {
			continue
		}
		v0, v1, v2 := values[0], values[1], values[2]
		if !validRange(v0, v1, v2) {
			continue
		}
		n, ok := rangeCount(v0, v1, v2)
		if !ok {
			return fmt.Errorf("%w: range for parameter %q expands to too many values",
				core.ErrEnsembleTooLarge, name)
		}
		expanded := make([]core.Real, n)
		for i := range expanded {
			expanded[i] = v0 + core.Real(i)*v2
		}
		params[name] = expanded
	}

	return nil
}

// expandArrayRanges applies range expansion per array position when
// exactly 3 equal-length array candidates are given. Any position
// failing the range guard disqualifies the whole parameter, which then
// keeps its 3 literal candidates. The expansion length is the minimum
// valid count across positions.
func expandArrayRanges(params map[string][][]core.Real) error {
	for name, arrays := range params {
		if len(arrays) != 3 {
			continue
		}
		a0, a1, a2 := arrays[0], arrays[1], arrays[2]
		width := len(a0)
		if width == 0 || len(a1) != width || len(a2) != width {
			continue
		}

		size := math.MaxInt
		valid := true
		for l := 0; l < width; l++ {
			if !validRange(a0[l], a1[l], a2[l]) {
				valid = false
				break
			}
			n, ok := rangeCount(a0[l], a1[l], a2[l])
			if !ok {
				return fmt.Errorf("%w: range for parameter %q expands to too many values",
					core.ErrEnsembleTooLarge, name)
			}
			if n < size {
				size = n
			}
		}
		if !valid || size == math.MaxInt {
			continue
		}

		expanded := make([][]core.Real, size)
		for i := range expanded {
			row := make([]core.Real, width)
			for l := 0; l < width; l++ {
				row[l] = a0[l] + core.Real(i)*a2[l]
			}
			expanded[i] = row
		}
		params[name] = expanded
	}

	return nil
}

// decodeLogParams exponentiates every log10(x)-named parameter in
// params and renames it to x, updating order (the lattice declaration
// order) in place when given.
func decodeLogParams(params map[string][]core.Real, order []string) error {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		inner, isLog, err := core.DecodeLogName(name)
		if err != nil {
			return err
		}
		if !isLog {
			continue
		}
		if _, exists := params[inner]; exists {
			return fmt.Errorf("%w: input parameter %q appears more than once",
				core.ErrInvalidParamName, inner)
		}
		values := params[name]
		for i, v := range values {
			values[i] = math.Pow(10, v)
		}
		delete(params, name)
		params[inner] = values
		for i, n := range order {
			if n == name {
				order[i] = inner
			}
		}
	}

	return nil
}

// checkUniqueNames re-validates cross-group uniqueness after log10
// renames ("log10(x)" and "x" parse as distinct names but collide once
// decoded).
func (d *Data) checkUniqueNames() error {
	seen := make(map[string]struct{}, d.ParamCount())
	check := func(name string) error {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: input parameter %q appears more than once",
				core.ErrInvalidParamName, name)
		}
		seen[name] = struct{}{}

		return nil
	}
	for _, params := range []map[string][]core.Real{d.Fixed, d.Lattice, d.Enumerated} {
		for name := range params {
			if err := check(name); err != nil {
				return err
			}
		}
	}
	for _, arrays := range []map[string][][]core.Real{d.FixedArray, d.LatticeArray, d.EnumeratedArray} {
		for name := range arrays {
			if err := check(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateEnumerated verifies that all enumerated parameters share one
// length and records it in EnumLen (0 when no enumerated parameters
// exist).
func (d *Data) validateEnumerated() error {
	d.EnumLen = 0
	firstName := ""

	names := make([]string, 0, len(d.Enumerated)+len(d.EnumeratedArray))
	for name := range d.Enumerated {
		names = append(names, name)
	}
	for name := range d.EnumeratedArray {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		n := 0
		if values, ok := d.Enumerated[name]; ok {
			n = len(values)
		} else {
			n = len(d.EnumeratedArray[name])
		}
		if firstName == "" {
			d.EnumLen = n
			firstName = name
			continue
		}
		if n != d.EnumLen {
			return fmt.Errorf("%w: parameter %q has a different number of values (%d) than %q (%d)",
				core.ErrInvalidEnumeration, name, n, firstName, d.EnumLen)
		}
	}

	return nil
}
