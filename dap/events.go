package dap

import "encoding/json"

// InitializedEvent signals that the adapter is ready to accept configuration
// requests.
type InitializedEvent struct {
	event
}

type StoppedEvent struct {
	event
	Body StoppedEventBody
}

type StoppedEventBody struct {
	Reason            StoppedReason `json:"reason"`
	Description       string        `json:"description,omitempty"`
	ThreadID          *int          `json:"threadId,omitempty" dap:"handle"`
	PreserveFocusHint bool          `json:"preserveFocusHint,omitempty"`
	Text              string        `json:"text,omitempty"`
	AllThreadsStopped bool          `json:"allThreadsStopped,omitempty"`
	HitBreakpointIDs  []int         `json:"hitBreakpointIds,omitempty" dap:"handle"`
}

type ContinuedEvent struct {
	event
	Body ContinuedEventBody
}

type ContinuedEventBody struct {
	ThreadID            int  `json:"threadId" dap:"handle"`
	AllThreadsContinued bool `json:"allThreadsContinued,omitempty"`
}

type ExitedEvent struct {
	event
	Body ExitedEventBody
}

type ExitedEventBody struct {
	ExitCode int `json:"exitCode"`
}

// TerminatedEvent always carries a body; every field of it is optional.
type TerminatedEvent struct {
	event
	Body TerminatedEventBody
}

type TerminatedEventBody struct {
	Restart json.RawMessage `json:"restart,omitempty"`
}

type ThreadEvent struct {
	event
	Body ThreadEventBody
}

type ThreadEventBody struct {
	Reason   ThreadReason `json:"reason"`
	ThreadID int          `json:"threadId" dap:"handle"`
}

type OutputEvent struct {
	event
	Body OutputEventBody
}

// OutputEventBody.Category defaults to console. It decodes as OutputConsole
// when absent and is elided on encode when it has that value. An empty
// Category is elided too, so it decodes as OutputConsole.
type OutputEventBody struct {
	Category           OutputCategory  `json:"category,omitempty"`
	Output             string          `json:"output"`
	Group              OutputGroup     `json:"group,omitempty"`
	VariablesReference int             `json:"variablesReference,omitempty" dap:"handle"`
	Source             *Source         `json:"source,omitempty"`
	Line               int             `json:"line,omitempty"`
	Column             int             `json:"column,omitempty"`
	Data               json.RawMessage `json:"data,omitempty"`
	LocationReference  int             `json:"locationReference,omitempty" dap:"handle"`
}

func (b OutputEventBody) MarshalJSON() ([]byte, error) {
	type plain OutputEventBody
	v := plain(b)
	if v.Category == OutputConsole {
		v.Category = ""
	}
	return json.Marshal(v)
}

func (b *OutputEventBody) UnmarshalJSON(data []byte) error {
	type plain OutputEventBody
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Category == "" {
		v.Category = OutputConsole
	}
	*b = OutputEventBody(v)
	return nil
}

type BreakpointEvent struct {
	event
	Body BreakpointEventBody
}

type BreakpointEventBody struct {
	Reason     ChangeReason `json:"reason"`
	Breakpoint Breakpoint   `json:"breakpoint"`
}

type ModuleEvent struct {
	event
	Body ModuleEventBody
}

type ModuleEventBody struct {
	Reason ChangeReason `json:"reason"`
	Module Module       `json:"module"`
}

type LoadedSourceEvent struct {
	event
	Body LoadedSourceEventBody
}

type LoadedSourceEventBody struct {
	Reason ChangeReason `json:"reason"`
	Source Source       `json:"source"`
}

type ProcessEvent struct {
	event
	Body ProcessEventBody
}

type ProcessEventBody struct {
	Name            string             `json:"name"`
	SystemProcessID *int               `json:"systemProcessId,omitempty" dap:"handle"`
	IsLocalProcess  *bool              `json:"isLocalProcess,omitempty"`
	StartMethod     ProcessStartMethod `json:"startMethod,omitempty"`
	PointerSize     *int               `json:"pointerSize,omitempty"`
}

type CapabilitiesEvent struct {
	event
	Body CapabilitiesEventBody
}

type CapabilitiesEventBody struct {
	Capabilities Capabilities `json:"capabilities"`
}

type ProgressStartEvent struct {
	event
	Body ProgressStartEventBody
}

type ProgressStartEventBody struct {
	ProgressID  string `json:"progressId"`
	Title       string `json:"title"`
	RequestID   *int   `json:"requestId,omitempty"`
	Cancellable bool   `json:"cancellable,omitempty"`
	Message     string `json:"message,omitempty"`
	Percentage  *int   `json:"percentage,omitempty"`
}

type ProgressUpdateEvent struct {
	event
	Body ProgressUpdateEventBody
}

type ProgressUpdateEventBody struct {
	ProgressID string `json:"progressId"`
	Message    string `json:"message,omitempty"`
	Percentage *int   `json:"percentage,omitempty"`
}

type ProgressEndEvent struct {
	event
	Body ProgressEndEventBody
}

type ProgressEndEventBody struct {
	ProgressID string `json:"progressId"`
	Message    string `json:"message,omitempty"`
}

type InvalidatedEvent struct {
	event
	Body InvalidatedEventBody
}

type InvalidatedEventBody struct {
	Areas        []InvalidatedArea `json:"areas,omitempty"`
	ThreadID     *int              `json:"threadId,omitempty" dap:"handle"`
	StackFrameID *int              `json:"stackFrameId,omitempty" dap:"handle"`
}

type MemoryEvent struct {
	event
	Body MemoryEventBody
}

type MemoryEventBody struct {
	MemoryReference string `json:"memoryReference"`
	Offset          int    `json:"offset"`
	Count           int    `json:"count"`
}

func (*InitializedEvent) Event() string    { return EventInitialized }
func (*StoppedEvent) Event() string        { return EventStopped }
func (*ContinuedEvent) Event() string      { return EventContinued }
func (*ExitedEvent) Event() string         { return EventExited }
func (*TerminatedEvent) Event() string     { return EventTerminated }
func (*ThreadEvent) Event() string         { return EventThread }
func (*OutputEvent) Event() string         { return EventOutput }
func (*BreakpointEvent) Event() string     { return EventBreakpoint }
func (*ModuleEvent) Event() string         { return EventModule }
func (*LoadedSourceEvent) Event() string   { return EventLoadedSource }
func (*ProcessEvent) Event() string        { return EventProcess }
func (*CapabilitiesEvent) Event() string   { return EventCapabilities }
func (*ProgressStartEvent) Event() string  { return EventProgressStart }
func (*ProgressUpdateEvent) Event() string { return EventProgressUpdate }
func (*ProgressEndEvent) Event() string    { return EventProgressEnd }
func (*InvalidatedEvent) Event() string    { return EventInvalidated }
func (*MemoryEvent) Event() string         { return EventMemory }

func (*InitializedEvent) body() any      { return nil }
func (e *StoppedEvent) body() any        { return &e.Body }
func (e *ContinuedEvent) body() any      { return &e.Body }
func (e *ExitedEvent) body() any         { return &e.Body }
func (e *TerminatedEvent) body() any     { return &e.Body }
func (e *ThreadEvent) body() any         { return &e.Body }
func (e *OutputEvent) body() any         { return &e.Body }
func (e *BreakpointEvent) body() any     { return &e.Body }
func (e *ModuleEvent) body() any         { return &e.Body }
func (e *LoadedSourceEvent) body() any   { return &e.Body }
func (e *ProcessEvent) body() any        { return &e.Body }
func (e *CapabilitiesEvent) body() any   { return &e.Body }
func (e *ProgressStartEvent) body() any  { return &e.Body }
func (e *ProgressUpdateEvent) body() any { return &e.Body }
func (e *ProgressEndEvent) body() any    { return &e.Body }
func (e *InvalidatedEvent) body() any    { return &e.Body }
func (e *MemoryEvent) body() any         { return &e.Body }
