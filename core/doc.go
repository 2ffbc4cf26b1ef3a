// Package core defines the fundamental data model shared by the parse
// and ensemble packages: real-valued parameters, per-member input and
// output records, the string-to-string settings table, parameter-name
// validation, and the single sentinel-error taxonomy of the module.
//
// What:
//
//   - Real is the precision of every parameter value (float64).
//   - Input is one fully-resolved ensemble member: name → scalar and
//     name → array bindings, immutable once constructed.
//   - Output is the member's writable counterpart: initially empty,
//     mutated by client code via Set / SetArray.
//   - Settings is a flat string-keyed, string-valued side table.
//   - Group tags a parameter as Fixed, Lattice or Enumerated.
//
// Errors:
//
//	All sentinel errors of the module live in errors.go. Load-time
//	errors (ErrInvalidParamName, ErrEmptyEnsemble, …) abort a whole
//	load; ErrParamNotFound and ErrSettingNotFound are local,
//	recoverable lookup failures on a single record.
//
// Concurrency:
//
//	Input and Settings are safe for concurrent reads. Output carries no
//	locking: callers that parallelize their processing loop must touch
//	each Output from at most one goroutine at a time.
package core
