package parse

import "github.com/parsweep/parsweep/core"

// Data holds the raw per-group value lists produced by Parse: for every
// parameter name, the ordered list of scalar candidates or the ordered
// list of array candidates, keyed by group. Postprocess rewrites the
// lists in place (range expansion, log10 decoding) and fills EnumLen.
type Data struct {
	// Settings is the parsed settings table, or nil if the document had
	// no settings block (only legal when none was requested).
	Settings *core.Settings

	// Scalar-valued parameters: name → ordered candidate values.
	Fixed      map[string][]core.Real
	Lattice    map[string][]core.Real
	Enumerated map[string][]core.Real

	// Array-valued parameters: name → ordered candidate arrays.
	FixedArray      map[string][][]core.Real
	LatticeArray    map[string][][]core.Real
	EnumeratedArray map[string][][]core.Real

	// LatticeOrder lists lattice parameter names (scalar and array,
	// interleaved) in first-seen order. The builder's record indexing
	// depends on this order, so it is part of the contract.
	LatticeOrder []string

	// EnumLen is the common enumeration length, 0 when no enumerated
	// parameters exist. Filled by Postprocess.
	EnumLen int
}

// newData returns an empty Data with all maps allocated.
func newData() *Data {
	return &Data{
		Fixed:           make(map[string][]core.Real),
		Lattice:         make(map[string][]core.Real),
		Enumerated:      make(map[string][]core.Real),
		FixedArray:      make(map[string][][]core.Real),
		LatticeArray:    make(map[string][][]core.Real),
		EnumeratedArray: make(map[string][][]core.Real),
	}
}

// ParamCount returns the total number of parameters across all groups
// and both shapes.
func (d *Data) ParamCount() int {
	return len(d.Fixed) + len(d.Lattice) + len(d.Enumerated) +
		len(d.FixedArray) + len(d.LatticeArray) + len(d.EnumeratedArray)
}

// scalarGroup returns the scalar candidate map for g.
func (d *Data) scalarGroup(g core.Group) map[string][]core.Real {
	switch g {
	case core.Lattice:
		return d.Lattice
	case core.Enumerated:
		return d.Enumerated
	default:
		return d.Fixed
	}
}

// arrayGroup returns the array candidate map for g.
func (d *Data) arrayGroup(g core.Group) map[string][][]core.Real {
	switch g {
	case core.Lattice:
		return d.LatticeArray
	case core.Enumerated:
		return d.EnumeratedArray
	default:
		return d.FixedArray
	}
}
