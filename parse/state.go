package parse

import (
	"fmt"
	"io"
	"strconv"

	"github.com/parsweep/parsweep/core"
)

// frameKind distinguishes the two container kinds on the context stack.
type frameKind int

const (
	frameMapping frameKind = iota
	frameSequence
)

// frame is one open container. expectKey alternates inside mappings so
// the machine knows whether the next scalar is a key or a value.
type frame struct {
	kind      frameKind
	expectKey bool
}

// pendingBlock names the structural block a just-seen key promises to
// open with its value.
type pendingBlock int

const (
	pendingNone pendingBlock = iota
	pendingSettings
	pendingInput
	pendingGroup
)

// machine is the parse state machine of the ensemble schema. It tracks
// the current block context, the key awaiting its value, and the
// nested-sequence depth, and populates a Data instance as events arrive.
type machine struct {
	settingsBlock string
	data          *Data

	frames       []frame
	mappingDepth int

	pending      pendingBlock
	pendingGroup core.Group

	inSettings    bool
	settingsDepth int
	sawSettings   bool

	inInput    bool
	inputDepth int

	inGroup    bool
	group      core.Group
	groupDepth int

	currentSetting    string
	hasCurrentSetting bool
	currentParam      string
	seqDepth          int

	settingNames map[string]struct{}
	paramNames   map[string]struct{}
}

// Parse reads one YAML document from r and returns the raw categorized
// value lists, or the first validation error. settingsBlock names the
// block to read settings from; empty means no settings are expected.
// Callers normally follow up with (*Data).Postprocess.
func Parse(r io.Reader, settingsBlock string) (*Data, error) {
	if settingsBlock == "input" {
		return nil, fmt.Errorf("%w: %q (cannot be a structural keyword)",
			core.ErrInvalidSettingsBlock, settingsBlock)
	}

	events, err := ReadEvents(r)
	if err != nil {
		return nil, err
	}

	m := &machine{
		settingsBlock: settingsBlock,
		data:          newData(),
		settingNames:  make(map[string]struct{}),
		paramNames:    make(map[string]struct{}),
	}
	for _, ev := range events {
		if err := m.handle(ev); err != nil {
			return nil, err
		}
	}

	return m.data, nil
}

// handle advances the machine by one event.
func (m *machine) handle(ev Event) error {
	switch ev.Kind {
	case EventScalar:
		return m.handleScalar(ev)
	case EventMappingStart:
		return m.handleMappingStart()
	case EventMappingEnd:
		m.handleMappingEnd()
		return nil
	case EventSequenceStart:
		return m.handleSequenceStart()
	case EventSequenceEnd:
		return m.handleSequenceEnd()
	case EventStreamEnd:
		return m.handleStreamEnd()
	default:
		return fmt.Errorf("%w: unknown event %v", core.ErrMalformedSource, ev.Kind)
	}
}

// top returns the innermost open container, or nil at document level.
func (m *machine) top() *frame {
	if len(m.frames) == 0 {
		return nil
	}

	return &m.frames[len(m.frames)-1]
}

// push opens a container.
func (m *machine) push(k frameKind) {
	m.frames = append(m.frames, frame{kind: k, expectKey: k == frameMapping})
	if k == frameMapping {
		m.mappingDepth++
	}
}

// pop closes the innermost container and marks the value position of the
// enclosing mapping, if any, as consumed.
func (m *machine) pop() {
	if t := m.top(); t != nil && t.kind == frameMapping {
		m.mappingDepth--
	}
	m.frames = m.frames[:len(m.frames)-1]
	if t := m.top(); t != nil && t.kind == frameMapping {
		t.expectKey = true
	}
}

func (m *machine) handleMappingStart() error {
	if m.currentParam != "" {
		return fmt.Errorf("%w: mapping encountered in input parameter %q",
			core.ErrInvalidParamValue, m.currentParam)
	}

	t := m.top()
	switch {
	case t == nil:
		// Document root mapping.
	case t.kind == frameMapping && t.expectKey:
		return fmt.Errorf("%w: mapping keys must be scalars", core.ErrInvalidSchema)
	case t.kind == frameMapping:
		// A block value. Which block was promised?
		switch m.pending {
		case pendingSettings:
			m.pending = pendingNone
			m.inSettings = true
			m.sawSettings = true
			m.settingsDepth = m.mappingDepth + 1
			m.data.Settings = core.NewSettings()
		case pendingInput:
			m.pending = pendingNone
			m.inInput = true
			m.inputDepth = m.mappingDepth + 1
		case pendingGroup:
			m.pending = pendingNone
			m.inGroup = true
			m.group = m.pendingGroup
			m.groupDepth = m.mappingDepth + 1
		default:
			if m.inSettings && m.hasCurrentSetting {
				return fmt.Errorf("%w: setting %q must have a scalar value",
					core.ErrInvalidSchema, m.currentSetting)
			}

			return fmt.Errorf("%w: unexpected mapping", core.ErrInvalidSchema)
		}
	default: // sequence item
		return fmt.Errorf("%w: unexpected mapping in a sequence", core.ErrInvalidSchema)
	}

	m.push(frameMapping)

	return nil
}

func (m *machine) handleMappingEnd() {
	m.pop()
	if m.inGroup && m.mappingDepth < m.groupDepth {
		m.inGroup = false
	}
	if m.inInput && m.mappingDepth < m.inputDepth {
		m.inInput = false
	}
	if m.inSettings && m.mappingDepth < m.settingsDepth {
		m.inSettings = false
		m.hasCurrentSetting = false
	}
}

func (m *machine) handleSequenceStart() error {
	t := m.top()
	switch {
	case t == nil:
		return fmt.Errorf("%w: document must be a mapping", core.ErrInvalidSchema)
	case t.kind == frameMapping && t.expectKey:
		return fmt.Errorf("%w: mapping keys must be scalars", core.ErrInvalidSchema)
	case t.kind == frameMapping:
		// Sequence in value position.
		switch {
		case m.pending != pendingNone:
			m.pending = pendingNone
			return fmt.Errorf("%w: block values must be mappings", core.ErrInvalidSchema)
		case m.inSettings && m.hasCurrentSetting:
			return fmt.Errorf("%w: setting %q must have a scalar value",
				core.ErrInvalidSchema, m.currentSetting)
		case m.inGroup && m.currentParam != "":
			m.seqDepth = 1
		default:
			return fmt.Errorf("%w: unexpected sequence", core.ErrInvalidSchema)
		}
	default:
		// Sequence nested in the candidate sequence of a parameter.
		if !m.inGroup || m.currentParam == "" {
			return fmt.Errorf("%w: unexpected sequence", core.ErrInvalidSchema)
		}
		switch m.seqDepth {
		case 1:
			if m.group == core.Fixed {
				return fmt.Errorf("%w: cannot parse a sequence of arrays for fixed input parameter %q",
					core.ErrInvalidParamValue, m.currentParam)
			}
			m.seqDepth = 2
			m.startArrayCandidate()
		default:
			return fmt.Errorf("%w: cannot parse a sequence of array sequences for input parameter %q",
				core.ErrInvalidParamValue, m.currentParam)
		}
	}

	m.push(frameSequence)

	return nil
}

func (m *machine) handleSequenceEnd() error {
	m.pop()

	if m.seqDepth == 2 {
		m.seqDepth = 1
		return nil
	}

	// The candidate sequence of the current parameter just closed.
	if m.group != core.Fixed {
		n := m.candidateCount()
		switch {
		case n == 0:
			return fmt.Errorf("%w: lattice or enumerated parameter %q has no values",
				core.ErrEmptyEnsemble, m.currentParam)
		case n == 1:
			return fmt.Errorf("%w: lattice or enumerated parameter %q has only a single value",
				core.ErrInvalidParamValue, m.currentParam)
		}
	}
	m.seqDepth = 0
	m.currentParam = ""

	return nil
}

func (m *machine) handleStreamEnd() error {
	if m.settingsBlock != "" && !m.sawSettings {
		return fmt.Errorf("%w: %q", core.ErrSettingsNotFound, m.settingsBlock)
	}

	return nil
}

func (m *machine) handleScalar(ev Event) error {
	t := m.top()
	switch {
	case t == nil:
		if ev.Tag == "!!null" {
			return nil // empty document
		}

		return fmt.Errorf("%w: document must be a mapping", core.ErrInvalidSchema)
	case t.kind == frameMapping && t.expectKey:
		t.expectKey = false
		return m.handleKey(ev.Value)
	case t.kind == frameMapping:
		t.expectKey = true
		return m.handleValue(ev)
	default:
		return m.handleSequenceValue(ev.Value)
	}
}

// handleKey dispatches a mapping key according to the block it appears in.
func (m *machine) handleKey(key string) error {
	switch {
	case m.inSettings && m.mappingDepth == m.settingsDepth:
		if _, dup := m.settingNames[key]; dup {
			return fmt.Errorf("%w: setting %q appears more than once", core.ErrDuplicateSetting, key)
		}
		m.settingNames[key] = struct{}{}
		m.currentSetting = key
		m.hasCurrentSetting = true
	case m.inGroup && m.mappingDepth == m.groupDepth:
		if _, dup := m.paramNames[key]; dup {
			return fmt.Errorf("%w: input parameter %q appears more than once", core.ErrInvalidParamName, key)
		}
		if !core.ValidParamName(key) {
			return fmt.Errorf("%w: %q", core.ErrInvalidParamName, key)
		}
		m.paramNames[key] = struct{}{}
		m.currentParam = key
	case m.inInput && m.mappingDepth == m.inputDepth:
		switch key {
		case "fixed":
			m.pending, m.pendingGroup = pendingGroup, core.Fixed
		case "lattice":
			m.pending, m.pendingGroup = pendingGroup, core.Lattice
		case "enumerated":
			m.pending, m.pendingGroup = pendingGroup, core.Enumerated
		default:
			return fmt.Errorf("%w: invalid parameter group %q", core.ErrInvalidSchema, key)
		}
	case m.mappingDepth == 1:
		switch {
		case m.settingsBlock != "" && key == m.settingsBlock:
			m.pending = pendingSettings
		case key == "input":
			m.pending = pendingInput
		default:
			return fmt.Errorf("%w: unexpected top-level block %q", core.ErrInvalidSchema, key)
		}
	default:
		return fmt.Errorf("%w: unexpected key %q", core.ErrInvalidSchema, key)
	}

	return nil
}

// handleValue consumes a scalar in value position.
func (m *machine) handleValue(ev Event) error {
	// A null where a block was promised is an empty block.
	if m.pending != pendingNone {
		pending := m.pending
		m.pending = pendingNone
		if ev.Tag != "!!null" {
			return fmt.Errorf("%w: block values must be mappings", core.ErrInvalidSchema)
		}
		if pending == pendingSettings {
			m.sawSettings = true
			m.data.Settings = core.NewSettings()
		}

		return nil
	}

	switch {
	case m.inSettings && m.hasCurrentSetting:
		m.data.Settings.Set(m.currentSetting, ev.Value)
		m.hasCurrentSetting = false
	case m.inGroup && m.currentParam != "":
		v, err := m.parseReal(ev.Value)
		if err != nil {
			return err
		}
		m.appendScalarCandidate(v)
		m.currentParam = ""
	default:
		return fmt.Errorf("%w: unexpected value %q", core.ErrInvalidSchema, ev.Value)
	}

	return nil
}

// handleSequenceValue consumes one scalar inside a candidate sequence.
func (m *machine) handleSequenceValue(value string) error {
	if !m.inGroup || m.currentParam == "" {
		return fmt.Errorf("%w: unexpected value %q", core.ErrInvalidSchema, value)
	}
	v, err := m.parseReal(value)
	if err != nil {
		return err
	}

	switch {
	case m.seqDepth == 2, m.group == core.Fixed:
		// Array candidate: a fixed parameter's single sequence is its one
		// array value; depth-2 sequences are per-candidate arrays.
		m.appendArrayValue(v)
	default:
		m.appendScalarCandidate(v)
	}

	return nil
}

// parseReal interprets value as a real number, or fails with the
// parameter-scoped invalid-value error.
func (m *machine) parseReal(value string) (core.Real, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid input value for parameter %q: %q",
			core.ErrInvalidParamValue, m.currentParam, value)
	}

	return v, nil
}

// appendScalarCandidate appends v to the current parameter's scalar
// candidate list, creating it on first use and recording lattice
// declaration order.
func (m *machine) appendScalarCandidate(v core.Real) {
	params := m.data.scalarGroup(m.group)
	if _, ok := params[m.currentParam]; !ok && m.group == core.Lattice {
		m.data.LatticeOrder = append(m.data.LatticeOrder, m.currentParam)
	}
	params[m.currentParam] = append(params[m.currentParam], v)
}

// appendArrayValue appends v to the last array candidate of the current
// parameter, creating the candidate list (with one empty array) on
// first use.
func (m *machine) appendArrayValue(v core.Real) {
	params := m.data.arrayGroup(m.group)
	arrays, ok := params[m.currentParam]
	if !ok {
		if m.group == core.Lattice {
			m.data.LatticeOrder = append(m.data.LatticeOrder, m.currentParam)
		}
		arrays = [][]core.Real{{}}
	}
	arrays[len(arrays)-1] = append(arrays[len(arrays)-1], v)
	params[m.currentParam] = arrays
}

// startArrayCandidate opens a fresh array candidate for the current
// parameter if it already has one in progress.
func (m *machine) startArrayCandidate() {
	params := m.data.arrayGroup(m.group)
	if arrays, ok := params[m.currentParam]; ok {
		params[m.currentParam] = append(arrays, []core.Real{})
	}
}

// candidateCount reports how many candidates the current parameter
// collected, whatever its shape.
func (m *machine) candidateCount() int {
	if values, ok := m.data.scalarGroup(m.group)[m.currentParam]; ok {
		return len(values)
	}
	if arrays, ok := m.data.arrayGroup(m.group)[m.currentParam]; ok {
		return len(arrays)
	}

	return 0
}
