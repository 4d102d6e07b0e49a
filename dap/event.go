package dap

import (
	"encoding/json"
	"sort"
)

// Event names.
const (
	EventInitialized    = "initialized"
	EventStopped        = "stopped"
	EventContinued      = "continued"
	EventExited         = "exited"
	EventTerminated     = "terminated"
	EventThread         = "thread"
	EventOutput         = "output"
	EventBreakpoint     = "breakpoint"
	EventModule         = "module"
	EventLoadedSource   = "loadedSource"
	EventProcess        = "process"
	EventCapabilities   = "capabilities"
	EventProgressStart  = "progressStart"
	EventProgressUpdate = "progressUpdate"
	EventProgressEnd    = "progressEnd"
	EventInvalidated    = "invalidated"
	EventMemory         = "memory"
)

// Event is the closed union of adapter-initiated events.
type Event interface {
	Message
	Event() string
	// body returns a pointer to the payload, or nil for events without one.
	body() any
}

type event struct{}

func (event) MessageType() MessageType { return TypeEvent }
func (event) isMessage()               {}

var eventCatalog = map[string]func() Event{
	EventInitialized:    func() Event { return &InitializedEvent{} },
	EventStopped:        func() Event { return &StoppedEvent{} },
	EventContinued:      func() Event { return &ContinuedEvent{} },
	EventExited:         func() Event { return &ExitedEvent{} },
	EventTerminated:     func() Event { return &TerminatedEvent{} },
	EventThread:         func() Event { return &ThreadEvent{} },
	EventOutput:         func() Event { return &OutputEvent{} },
	EventBreakpoint:     func() Event { return &BreakpointEvent{} },
	EventModule:         func() Event { return &ModuleEvent{} },
	EventLoadedSource:   func() Event { return &LoadedSourceEvent{} },
	EventProcess:        func() Event { return &ProcessEvent{} },
	EventCapabilities:   func() Event { return &CapabilitiesEvent{} },
	EventProgressStart:  func() Event { return &ProgressStartEvent{} },
	EventProgressUpdate: func() Event { return &ProgressUpdateEvent{} },
	EventProgressEnd:    func() Event { return &ProgressEndEvent{} },
	EventInvalidated:    func() Event { return &InvalidatedEvent{} },
	EventMemory:         func() Event { return &MemoryEvent{} },
}

// NewEvent returns a zero event for name, or nil if name is not in the
// catalog.
func NewEvent(name string) Event {
	ctor, ok := eventCatalog[name]
	if !ok {
		return nil
	}
	return ctor()
}

// EventNames returns every catalog event name, sorted.
func EventNames() []string {
	out := make([]string, 0, len(eventCatalog))
	for name := range eventCatalog {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (c Codec) decodeEvent(obj map[string]json.RawMessage) (Event, error) {
	name, err := readString(obj, "event")
	if err != nil {
		return nil, err
	}
	ev := NewEvent(name)
	if ev == nil {
		return nil, &UnknownEventError{Event: name}
	}
	if body := ev.body(); body != nil {
		if err := c.decodePayload(obj["body"], "body", body); err != nil {
			return nil, err
		}
	}
	return ev, nil
}

func (c Codec) encodeEvent(w *objectWriter, ev Event) error {
	if err := w.field("event", ev.Event()); err != nil {
		return err
	}
	if body := ev.body(); body != nil {
		return c.encodePayload(w, "body", body)
	}
	return nil
}
