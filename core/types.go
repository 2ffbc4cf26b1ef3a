// Package core types: value precision and parameter group tags.
package core

// Real is the precision of every parameter value in the module.
type Real = float64

// Group tags a parameter with its expansion semantics.
type Group int

const (
	// Fixed parameters carry exactly one value (scalar or array) applied
	// identically to every ensemble member.
	Fixed Group = iota
	// Lattice parameters list candidate values combined via Cartesian
	// product with the other lattice parameters.
	Lattice
	// Enumerated parameters list candidate values zipped position-wise
	// with the other enumerated parameters.
	Enumerated
)

// String returns the group keyword as it appears in the input schema.
func (g Group) String() string {
	switch g {
	case Fixed:
		return "fixed"
	case Lattice:
		return "lattice"
	case Enumerated:
		return "enumerated"
	default:
		return "unknown"
	}
}
