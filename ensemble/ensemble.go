package ensemble

import (
	"github.com/parsweep/parsweep/core"
)

// Type tags an ensemble by how its members were generated.
type Type int

const (
	// Lattice means at least one parameter varies over a Cartesian grid.
	Lattice Type = iota
	// Enumeration means no lattice parameter varies; members come only
	// from zipped enumerated lists (fixed parameters alone also land
	// here).
	Enumeration
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case Lattice:
		return "lattice"
	case Enumeration:
		return "enumeration"
	default:
		return "unknown"
	}
}

// Ensemble is the fully-expanded set of members loaded from one source
// file: per-record inputs, per-record outputs awaiting client metrics,
// the shared settings table, and the generation type.
//
// The cursor methods are not goroutine-safe; see the package doc for
// the sharding rules that do permit concurrent processing.
type Ensemble struct {
	typ      Type
	settings *core.Settings
	inputs   []*core.Input
	outputs  []*core.Output
	cursor   int
}

// Size returns the number of members.
func (e *Ensemble) Size() int {
	return len(e.inputs)
}

// Type returns how the members were generated.
func (e *Ensemble) Type() Type {
	return e.typ
}

// Settings returns the shared settings table, nil when the source file
// carried no settings block.
func (e *Ensemble) Settings() *core.Settings {
	return e.settings
}

// Next advances the cursor and returns the next (input, output) pair.
// The second call pattern is the usual iteration loop:
//
//	for in, out, ok := ens.Next(); ok; in, out, ok = ens.Next() { ... }
//
// Reaching the end returns (nil, nil, false) and rewinds the cursor, so
// a second loop traverses the ensemble again from the first member.
func (e *Ensemble) Next() (*core.Input, *core.Output, bool) {
	if e.cursor >= len(e.inputs) {
		e.cursor = 0

		return nil, nil, false
	}
	in, out := e.inputs[e.cursor], e.outputs[e.cursor]
	e.cursor++

	return in, out, true
}

// Reset rewinds the cursor so Next starts over from the first member,
// without waiting for the current traversal to finish. Outputs already
// written are kept.
func (e *Ensemble) Reset() {
	e.cursor = 0
}

// At returns the (input, output) pair at index i, independent of the
// cursor. It panics when i is out of range, matching slice indexing.
func (e *Ensemble) At(i int) (*core.Input, *core.Output) {
	return e.inputs[i], e.outputs[i]
}

// Process applies fn to every member in record order, using the cursor:
// it resets first, so a partially-iterated ensemble is processed in
// full. The first error aborts the sweep and is returned as-is.
func (e *Ensemble) Process(fn func(in *core.Input, out *core.Output) error) error {
	e.Reset()
	for in, out, ok := e.Next(); ok; in, out, ok = e.Next() {
		if err := fn(in, out); err != nil {
			return err
		}
	}

	return nil
}
