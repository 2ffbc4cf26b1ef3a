package core

import "fmt"

// Output holds the computed metrics for one ensemble member. It starts
// empty and is populated by client code; Set and SetArray always
// succeed and overwrite any prior value under the same name. The
// ensemble never reads outputs except when serializing.
type Output struct {
	metrics map[string]Real
	arrays  map[string][]Real
}

// NewOutput returns an empty output record.
func NewOutput() *Output {
	return &Output{
		metrics: make(map[string]Real),
		arrays:  make(map[string][]Real),
	}
}

// Set stores a scalar metric under name.
func (out *Output) Set(name string, value Real) {
	out.metrics[name] = value
}

// SetArray stores a copy of values under name.
func (out *Output) SetArray(name string, values []Real) {
	v := make([]Real, len(values))
	copy(v, values)
	out.arrays[name] = v
}

// Has reports whether a scalar metric with the given name exists.
func (out *Output) Has(name string) bool {
	_, ok := out.metrics[name]

	return ok
}

// Get retrieves the scalar metric with the given name, or an error
// wrapping ErrParamNotFound.
func (out *Output) Get(name string) (Real, error) {
	v, ok := out.metrics[name]
	if !ok {
		return 0, fmt.Errorf("%w: output parameter %q", ErrParamNotFound, name)
	}

	return v, nil
}

// HasArray reports whether an array metric with the given name exists.
func (out *Output) HasArray(name string) bool {
	_, ok := out.arrays[name]

	return ok
}

// GetArray retrieves a copy of the array metric with the given name, or
// an error wrapping ErrParamNotFound.
func (out *Output) GetArray(name string) ([]Real, error) {
	v, ok := out.arrays[name]
	if !ok {
		return nil, fmt.Errorf("%w: output array parameter %q", ErrParamNotFound, name)
	}
	o := make([]Real, len(v))
	copy(o, v)

	return o, nil
}

// Names returns all scalar metric names in lexicographic order.
func (out *Output) Names() []string {
	return sortedKeys(out.metrics)
}

// ArrayNames returns all array metric names in lexicographic order.
func (out *Output) ArrayNames() []string {
	return sortedKeys(out.arrays)
}
