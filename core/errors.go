package core

import "errors"

// Sentinel errors for ensemble loading, record access and serialization.
// Every failure surfaced by this module wraps exactly one of these;
// match with errors.Is.
var (
	// ErrFileNotFound indicates the ensemble input file could not be opened.
	ErrFileNotFound = errors.New("parsweep: input file not found")
	// ErrMalformedSource indicates the input is not well-formed YAML.
	ErrMalformedSource = errors.New("parsweep: malformed YAML source")
	// ErrInvalidSettingsBlock indicates the caller-supplied settings block
	// name collides with a structural keyword of the schema.
	ErrInvalidSettingsBlock = errors.New("parsweep: invalid settings block name")
	// ErrDuplicateSetting indicates a settings key appears more than once.
	ErrDuplicateSetting = errors.New("parsweep: duplicate setting")
	// ErrSettingsNotFound indicates a settings block was requested but the
	// document contains none with the configured name.
	ErrSettingsNotFound = errors.New("parsweep: settings block not found")
	// ErrInvalidSchema indicates an unexpected key or shape in the document
	// (unknown top-level block, unknown parameter group, non-scalar key).
	ErrInvalidSchema = errors.New("parsweep: invalid ensemble schema")
	// ErrInvalidParamName indicates a malformed, duplicate, or otherwise
	// unusable parameter name (bad characters, leading digit, unmatched
	// log10 parens, log10 on an array-valued parameter).
	ErrInvalidParamName = errors.New("parsweep: invalid parameter name")
	// ErrInvalidParamValue indicates a parameter value that is not a real
	// number, a mapping where a value was expected, a disallowed nested
	// sequence, or a single-element lattice/enumerated sequence.
	ErrInvalidParamValue = errors.New("parsweep: invalid parameter value")
	// ErrTooManyLatticeParams indicates more than 7 simultaneously-varying
	// lattice dimensions.
	ErrTooManyLatticeParams = errors.New("parsweep: too many lattice parameters")
	// ErrInvalidEnumeration indicates enumerated parameters of differing
	// lengths.
	ErrInvalidEnumeration = errors.New("parsweep: invalid enumeration")
	// ErrEmptyEnsemble indicates an ensemble with no members: no parameters
	// at all, or an enumerated parameter declared with no values.
	ErrEmptyEnsemble = errors.New("parsweep: empty ensemble")
	// ErrEnsembleTooLarge indicates the expansion would require more
	// records than the host can address.
	ErrEnsembleTooLarge = errors.New("parsweep: ensemble too large")
	// ErrWriteFailure indicates the ensemble module could not be written.
	ErrWriteFailure = errors.New("parsweep: cannot write ensemble module")

	// ErrParamNotFound is a local, per-record lookup failure; it never
	// invalidates the ensemble.
	ErrParamNotFound = errors.New("parsweep: parameter not found")
	// ErrSettingNotFound is a local settings lookup failure.
	ErrSettingNotFound = errors.New("parsweep: setting not found")
)
