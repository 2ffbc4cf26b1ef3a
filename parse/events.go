package parse

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/parsweep/parsweep/core"
)

// EventKind enumerates the primitive parse events the state machine
// consumes.
type EventKind int

const (
	// EventScalar carries one scalar token (key or value).
	EventScalar EventKind = iota
	// EventMappingStart opens a mapping.
	EventMappingStart
	// EventMappingEnd closes the innermost open mapping.
	EventMappingEnd
	// EventSequenceStart opens a sequence.
	EventSequenceStart
	// EventSequenceEnd closes the innermost open sequence.
	EventSequenceEnd
	// EventStreamEnd terminates the stream; always the last event.
	EventStreamEnd
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScalar:
		return "scalar"
	case EventMappingStart:
		return "mapping-start"
	case EventMappingEnd:
		return "mapping-end"
	case EventSequenceStart:
		return "sequence-start"
	case EventSequenceEnd:
		return "sequence-end"
	case EventStreamEnd:
		return "stream-end"
	default:
		return "unknown"
	}
}

// Event is one primitive parse event. Value and Tag are populated for
// EventScalar only; Tag carries the resolved YAML tag (e.g. "!!null"
// for an empty value).
type Event struct {
	Kind  EventKind
	Value string
	Tag   string
}

// ReadEvents parses one YAML document from r and flattens it into an
// ordered event stream terminated by EventStreamEnd. An empty source
// yields just the terminator. Syntax errors wrap ErrMalformedSource.
func ReadEvents(r io.Reader) ([]Event, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []Event{{Kind: EventStreamEnd}}, nil
		}

		return nil, fmt.Errorf("%w: %v", core.ErrMalformedSource, err)
	}

	var events []Event
	emit(&events, &doc)
	events = append(events, Event{Kind: EventStreamEnd})

	return events, nil
}

// emit appends the events for node n and its children, depth first.
func emit(events *[]Event, n *yaml.Node) {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, child := range n.Content {
			emit(events, child)
		}
	case yaml.MappingNode:
		*events = append(*events, Event{Kind: EventMappingStart})
		for _, child := range n.Content {
			emit(events, child)
		}
		*events = append(*events, Event{Kind: EventMappingEnd})
	case yaml.SequenceNode:
		*events = append(*events, Event{Kind: EventSequenceStart})
		for _, child := range n.Content {
			emit(events, child)
		}
		*events = append(*events, Event{Kind: EventSequenceEnd})
	case yaml.ScalarNode:
		*events = append(*events, Event{Kind: EventScalar, Value: n.Value, Tag: n.ShortTag()})
	case yaml.AliasNode:
		emit(events, n.Alias)
	}
}
