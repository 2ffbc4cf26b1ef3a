// Package ensemble expands postprocessed parameter groups into concrete
// ensemble members and owns the resulting container.
//
// What:
//
//   - Load reads a YAML ensemble description from disk, drives the parse
//     package, and materializes one Input record per member: the
//     Cartesian product of varying lattice parameters (≤ 7 dimensions)
//     times the common enumeration length, with fixed and single-valued
//     lattice parameters applied identically everywhere.
//   - Ensemble offers a resettable forward cursor over (Input, Output)
//     pairs, index access for callers that shard their own processing,
//     a size query, the parsed settings, and the Write serializer.
//   - Write emits a Python data module: settings, inputs and outputs as
//     sorted per-name lists spanning all records, with NaN and Inf
//     rendered as the literals imported from Python's math module.
//
// Record ordering:
//
//	Lattice dimensions follow first-seen declaration order with the
//	last-declared dimension varying fastest (row-major); the enumerated
//	index cycles fastest of all. Loading the same file twice yields
//	identical record content and ordering.
//
// Concurrency:
//
//	The container is not goroutine-safe. Inputs are immutable and may be
//	read concurrently; callers parallelizing output writes must touch
//	each Output from at most one goroutine (sharding by record index is
//	safe — records never alias each other).
//
// Errors: ErrFileNotFound, ErrInvalidSettingsBlock,
// ErrTooManyLatticeParams, ErrEmptyEnsemble, ErrEnsembleTooLarge,
// ErrWriteFailure, plus everything the parse package reports (all from
// core).
package ensemble
