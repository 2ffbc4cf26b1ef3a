// Package parse turns a YAML ensemble description into raw, categorized
// parameter value lists plus a settings table, ready for combinatorial
// expansion by the ensemble package.
//
// What:
//
//   - ReadEvents flattens the YAML document into the primitive event
//     stream the state machine consumes (scalar, mapping-start/end,
//     sequence-start/end, stream-end). gopkg.in/yaml.v3 does the actual
//     YAML parsing; the walker only linearizes its node tree.
//   - Parse drives a small state machine over that stream, tracking the
//     current block (settings / input·fixed / input·lattice /
//     input·enumerated), the key awaiting its value, and the nested-
//     sequence depth (0 = scalar, 1 = candidate sequence, 2 = array
//     candidate), while enforcing name validity and uniqueness.
//   - (*Data).Postprocess expands [start, stop, step] range shorthand,
//     decodes log10(name) parameters, and validates the common
//     enumeration length.
//
// The recognized schema (one document):
//
//	<settings block name>:        # optional, name supplied by the caller
//	  <key>: <string>             # keys unique
//	input:
//	  fixed:
//	    <name>: <scalar | sequence>              # one value or one array
//	  lattice:
//	    <name>: <sequence of ≥2 scalars|arrays>  # Cartesian dimension
//	  enumerated:
//	    <name>: <sequence of L scalars|arrays>   # zipped position-wise
//
// Failure semantics:
//
//	The first validation error aborts parsing; partially accumulated
//	structures are discarded and exactly one sentinel-wrapped error is
//	returned. There is no recovery or continuation.
//
// Errors: ErrMalformedSource, ErrInvalidSchema, ErrDuplicateSetting,
// ErrSettingsNotFound, ErrInvalidParamName, ErrInvalidParamValue,
// ErrEmptyEnsemble, ErrInvalidEnumeration (all from core).
package parse
