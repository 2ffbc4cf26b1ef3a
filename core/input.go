package core

import (
	"fmt"
	"sort"
)

// Input is one fully-resolved ensemble member: every fixed, lattice and
// enumerated parameter bound to its concrete value. Inputs are built by
// the ensemble package and immutable afterwards, so they are safe to
// share read-only across goroutines.
type Input struct {
	params map[string]Real
	arrays map[string][]Real
}

// NewInput wraps the given bindings in an immutable record. The maps
// and their slices pass into the Input's ownership; callers must not
// mutate them afterwards.
func NewInput(params map[string]Real, arrays map[string][]Real) *Input {
	if params == nil {
		params = make(map[string]Real)
	}
	if arrays == nil {
		arrays = make(map[string][]Real)
	}

	return &Input{params: params, arrays: arrays}
}

// Has reports whether a scalar parameter with the given name exists.
func (in *Input) Has(name string) bool {
	_, ok := in.params[name]

	return ok
}

// Get retrieves the scalar parameter with the given name, or an error
// wrapping ErrParamNotFound. The failure is local to this record and
// never invalidates the ensemble.
func (in *Input) Get(name string) (Real, error) {
	v, ok := in.params[name]
	if !ok {
		return 0, fmt.Errorf("%w: input parameter %q", ErrParamNotFound, name)
	}

	return v, nil
}

// HasArray reports whether an array parameter with the given name exists.
func (in *Input) HasArray(name string) bool {
	_, ok := in.arrays[name]

	return ok
}

// GetArray retrieves a copy of the array parameter with the given name,
// or an error wrapping ErrParamNotFound. Returning a copy keeps the
// record immutable.
func (in *Input) GetArray(name string) ([]Real, error) {
	v, ok := in.arrays[name]
	if !ok {
		return nil, fmt.Errorf("%w: input array parameter %q", ErrParamNotFound, name)
	}
	out := make([]Real, len(v))
	copy(out, v)

	return out, nil
}

// Names returns all scalar parameter names in lexicographic order.
func (in *Input) Names() []string {
	return sortedKeys(in.params)
}

// ArrayNames returns all array parameter names in lexicographic order.
func (in *Input) ArrayNames() []string {
	return sortedKeys(in.arrays)
}

// sortedKeys returns the keys of m in lexicographic order.
func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
