package dap

import (
	"bytes"
	"encoding/json"
	"sort"
)

// CancelRequest asks the adapter to cancel a request or a progress sequence.
type CancelRequest struct {
	request
	Arguments CancelArguments
}

type CancelArguments struct {
	RequestID  *int   `json:"requestId,omitempty"`
	ProgressID string `json:"progressId,omitempty"`
}

// RunInTerminalRequest is a reverse request from the adapter asking the
// client to run a command in a terminal.
type RunInTerminalRequest struct {
	request
	Arguments RunInTerminalRequestArguments
}

type RunInTerminalRequestArguments struct {
	Kind                        RunInTerminalKind  `json:"kind,omitempty"`
	Title                       string             `json:"title,omitempty"`
	Cwd                         string             `json:"cwd"`
	Args                        []string           `json:"args"`
	Env                         map[string]*string `json:"env,omitempty"`
	ArgsCanBeInterpretedByShell bool               `json:"argsCanBeInterpretedByShell,omitempty"`
}

// StartDebuggingRequest is a reverse request asking the client to start a
// child debug session.
type StartDebuggingRequest struct {
	request
	Arguments StartDebuggingRequestArguments
}

type StartDebuggingRequestArguments struct {
	Configuration map[string]json.RawMessage `json:"configuration"`
	Request       StartDebuggingKind         `json:"request"`
}

// InitializeRequest is the first request a client sends.
type InitializeRequest struct {
	request
	Arguments InitializeRequestArguments
}

// InitializeRequestArguments describes the client. LinesStartAt1 and
// ColumnsStartAt1 default to true and are always emitted; PathFormat
// defaults to "path" and is omitted when it has that value or is empty, so an
// empty PathFormat decodes as PathFormatPath.
type InitializeRequestArguments struct {
	ClientID                            string     `json:"clientID,omitempty"`
	ClientName                          string     `json:"clientName,omitempty"`
	AdapterID                           string     `json:"adapterID"`
	Locale                              string     `json:"locale,omitempty"`
	LinesStartAt1                       bool       `json:"linesStartAt1" dap:"optional"`
	ColumnsStartAt1                     bool       `json:"columnsStartAt1" dap:"optional"`
	PathFormat                          PathFormat `json:"pathFormat,omitempty"`
	SupportsVariableType                bool       `json:"supportsVariableType,omitempty"`
	SupportsVariablePaging              bool       `json:"supportsVariablePaging,omitempty"`
	SupportsRunInTerminalRequest        bool       `json:"supportsRunInTerminalRequest,omitempty"`
	SupportsMemoryReferences            bool       `json:"supportsMemoryReferences,omitempty"`
	SupportsProgressReporting           bool       `json:"supportsProgressReporting,omitempty"`
	SupportsInvalidatedEvent            bool       `json:"supportsInvalidatedEvent,omitempty"`
	SupportsMemoryEvent                 bool       `json:"supportsMemoryEvent,omitempty"`
	SupportsArgsCanBeInterpretedByShell bool       `json:"supportsArgsCanBeInterpretedByShell,omitempty"`
	SupportsStartDebuggingRequest       bool       `json:"supportsStartDebuggingRequest,omitempty"`
	SupportsANSIStyling                 bool       `json:"supportsANSIStyling,omitempty"`
}

// NewInitializeRequestArguments returns arguments with the protocol defaults
// applied.
func NewInitializeRequestArguments(adapterID string) InitializeRequestArguments {
	return InitializeRequestArguments{
		AdapterID:       adapterID,
		LinesStartAt1:   true,
		ColumnsStartAt1: true,
		PathFormat:      PathFormatPath,
	}
}

func (a InitializeRequestArguments) MarshalJSON() ([]byte, error) {
	type plain InitializeRequestArguments
	v := plain(a)
	if v.PathFormat == PathFormatPath {
		v.PathFormat = ""
	}
	return json.Marshal(v)
}

func (a *InitializeRequestArguments) UnmarshalJSON(data []byte) error {
	type plain InitializeRequestArguments
	v := plain(NewInitializeRequestArguments(""))
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.PathFormat == "" {
		v.PathFormat = PathFormatPath
	}
	*a = InitializeRequestArguments(v)
	return nil
}

// ConfigurationDoneRequest marks the end of the configuration sequence.
type ConfigurationDoneRequest struct {
	request
}

// LaunchRequest starts the debuggee.
type LaunchRequest struct {
	request
	Arguments LaunchRequestArguments
}

// LaunchRequestArguments is the one extensible record: fields other than
// the declared ones are kept in Extra on decode and written back, sorted by
// name, after the declared fields on encode. Declared fields win over Extra
// entries with the same name.
type LaunchRequestArguments struct {
	NoDebug bool                       `json:"noDebug,omitempty"`
	Restart json.RawMessage            `json:"__restart,omitempty"`
	Extra   map[string]json.RawMessage `json:"-"`
}

var launchDeclaredFields = map[string]bool{"noDebug": true, "__restart": true}

func (a LaunchRequestArguments) MarshalJSON() ([]byte, error) {
	type plain LaunchRequestArguments
	base, err := json.Marshal(plain(a))
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(a.Extra))
	for k := range a.Extra {
		if !launchDeclaredFields[k] {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return base, nil
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.Write(base[:len(base)-1])
	wroteField := len(base) > 2
	for _, k := range keys {
		value, err := json.Marshal(a.Extra[k])
		if err != nil {
			return nil, err
		}
		name, _ := json.Marshal(k)
		if wroteField {
			buf.WriteByte(',')
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
		wroteField = true
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (a *LaunchRequestArguments) UnmarshalJSON(data []byte) error {
	type plain LaunchRequestArguments
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for k := range launchDeclaredFields {
		delete(all, k)
	}
	v.Extra = nil
	if len(all) > 0 {
		v.Extra = all
	}
	*a = LaunchRequestArguments(v)
	return nil
}

// AttachRequest attaches to an already running debuggee.
type AttachRequest struct {
	request
	Arguments AttachRequestArguments
}

type AttachRequestArguments struct {
	Restart json.RawMessage `json:"__restart,omitempty"`
}

// RestartRequest restarts the debug session. Arguments carries the latest
// launch or attach configuration verbatim.
type RestartRequest struct {
	request
	Arguments RestartArguments
}

type RestartArguments struct {
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

type DisconnectRequest struct {
	request
	Arguments DisconnectArguments
}

type DisconnectArguments struct {
	Restart           bool  `json:"restart,omitempty"`
	TerminateDebuggee *bool `json:"terminateDebuggee,omitempty"`
	SuspendDebuggee   *bool `json:"suspendDebuggee,omitempty"`
}

type TerminateRequest struct {
	request
	Arguments TerminateArguments
}

type TerminateArguments struct {
	Restart bool `json:"restart,omitempty"`
}

type BreakpointLocationsRequest struct {
	request
	Arguments BreakpointLocationsArguments
}

type BreakpointLocationsArguments struct {
	Source    Source `json:"source"`
	Line      int    `json:"line"`
	Column    int    `json:"column,omitempty"`
	EndLine   int    `json:"endLine,omitempty"`
	EndColumn int    `json:"endColumn,omitempty"`
}

// SetBreakpointsRequest replaces all breakpoints in one source.
type SetBreakpointsRequest struct {
	request
	Arguments SetBreakpointsArguments
}

type SetBreakpointsArguments struct {
	Source         Source             `json:"source"`
	Breakpoints    []SourceBreakpoint `json:"breakpoints,omitempty"`
	Lines          []int              `json:"lines,omitempty"`
	SourceModified bool               `json:"sourceModified,omitempty"`
}

type SetFunctionBreakpointsRequest struct {
	request
	Arguments SetFunctionBreakpointsArguments
}

type SetFunctionBreakpointsArguments struct {
	Breakpoints []FunctionBreakpoint `json:"breakpoints"`
}

type SetExceptionBreakpointsRequest struct {
	request
	Arguments SetExceptionBreakpointsArguments
}

type SetExceptionBreakpointsArguments struct {
	Filters          []string                 `json:"filters"`
	FilterOptions    []ExceptionFilterOptions `json:"filterOptions,omitempty"`
	ExceptionOptions []ExceptionOptions       `json:"exceptionOptions,omitempty"`
}

type DataBreakpointInfoRequest struct {
	request
	Arguments DataBreakpointInfoArguments
}

type DataBreakpointInfoArguments struct {
	VariablesReference *int   `json:"variablesReference,omitempty" dap:"handle"`
	Name               string `json:"name"`
	FrameID            *int   `json:"frameId,omitempty" dap:"handle"`
	Bytes              *int   `json:"bytes,omitempty"`
	AsAddress          bool   `json:"asAddress,omitempty"`
	Mode               string `json:"mode,omitempty"`
}

type SetDataBreakpointsRequest struct {
	request
	Arguments SetDataBreakpointsArguments
}

type SetDataBreakpointsArguments struct {
	Breakpoints []DataBreakpoint `json:"breakpoints"`
}

type SetInstructionBreakpointsRequest struct {
	request
	Arguments SetInstructionBreakpointsArguments
}

type SetInstructionBreakpointsArguments struct {
	Breakpoints []InstructionBreakpoint `json:"breakpoints"`
}

type ContinueRequest struct {
	request
	Arguments ContinueArguments
}

type ContinueArguments struct {
	ThreadID     int  `json:"threadId" dap:"handle"`
	SingleThread bool `json:"singleThread,omitempty"`
}

type NextRequest struct {
	request
	Arguments NextArguments
}

type NextArguments struct {
	ThreadID     int                 `json:"threadId" dap:"handle"`
	SingleThread bool                `json:"singleThread,omitempty"`
	Granularity  SteppingGranularity `json:"granularity,omitempty"`
}

type StepInRequest struct {
	request
	Arguments StepInArguments
}

type StepInArguments struct {
	ThreadID     int                 `json:"threadId" dap:"handle"`
	SingleThread bool                `json:"singleThread,omitempty"`
	TargetID     *int                `json:"targetId,omitempty" dap:"handle"`
	Granularity  SteppingGranularity `json:"granularity,omitempty"`
}

type StepOutRequest struct {
	request
	Arguments StepOutArguments
}

type StepOutArguments struct {
	ThreadID     int                 `json:"threadId" dap:"handle"`
	SingleThread bool                `json:"singleThread,omitempty"`
	Granularity  SteppingGranularity `json:"granularity,omitempty"`
}

type StepBackRequest struct {
	request
	Arguments StepBackArguments
}

type StepBackArguments struct {
	ThreadID     int                 `json:"threadId" dap:"handle"`
	SingleThread bool                `json:"singleThread,omitempty"`
	Granularity  SteppingGranularity `json:"granularity,omitempty"`
}

type ReverseContinueRequest struct {
	request
	Arguments ReverseContinueArguments
}

type ReverseContinueArguments struct {
	ThreadID     int  `json:"threadId" dap:"handle"`
	SingleThread bool `json:"singleThread,omitempty"`
}

type RestartFrameRequest struct {
	request
	Arguments RestartFrameArguments
}

type RestartFrameArguments struct {
	FrameID int `json:"frameId" dap:"handle"`
}

type GotoRequest struct {
	request
	Arguments GotoArguments
}

type GotoArguments struct {
	ThreadID int `json:"threadId" dap:"handle"`
	TargetID int `json:"targetId" dap:"handle"`
}

type PauseRequest struct {
	request
	Arguments PauseArguments
}

type PauseArguments struct {
	ThreadID int `json:"threadId" dap:"handle"`
}

type StackTraceRequest struct {
	request
	Arguments StackTraceArguments
}

type StackTraceArguments struct {
	ThreadID   int               `json:"threadId" dap:"handle"`
	StartFrame *int              `json:"startFrame,omitempty"`
	Levels     *int              `json:"levels,omitempty"`
	Format     *StackFrameFormat `json:"format,omitempty"`
}

type ScopesRequest struct {
	request
	Arguments ScopesArguments
}

type ScopesArguments struct {
	FrameID int `json:"frameId" dap:"handle"`
}

type VariablesRequest struct {
	request
	Arguments VariablesArguments
}

type VariablesArguments struct {
	VariablesReference int             `json:"variablesReference" dap:"handle"`
	Filter             VariablesFilter `json:"filter,omitempty"`
	Start              *int            `json:"start,omitempty"`
	Count              *int            `json:"count,omitempty"`
	Format             *ValueFormat    `json:"format,omitempty"`
}

type SetVariableRequest struct {
	request
	Arguments SetVariableArguments
}

type SetVariableArguments struct {
	VariablesReference int          `json:"variablesReference" dap:"handle"`
	Name               string       `json:"name"`
	Value              string       `json:"value"`
	Format             *ValueFormat `json:"format,omitempty"`
}

type SourceRequest struct {
	request
	Arguments SourceArguments
}

type SourceArguments struct {
	Source          *Source `json:"source,omitempty"`
	SourceReference int     `json:"sourceReference" dap:"handle"`
}

type ThreadsRequest struct {
	request
}

type TerminateThreadsRequest struct {
	request
	Arguments TerminateThreadsArguments
}

type TerminateThreadsArguments struct {
	ThreadIDs []int `json:"threadIds,omitempty" dap:"handle"`
}

type ModulesRequest struct {
	request
	Arguments ModulesArguments
}

type ModulesArguments struct {
	StartModule int `json:"startModule,omitempty"`
	ModuleCount int `json:"moduleCount,omitempty"`
}

type LoadedSourcesRequest struct {
	request
}

type EvaluateRequest struct {
	request
	Arguments EvaluateArguments
}

type EvaluateArguments struct {
	Expression string          `json:"expression"`
	FrameID    *int            `json:"frameId,omitempty" dap:"handle"`
	Line       int             `json:"line,omitempty"`
	Column     int             `json:"column,omitempty"`
	Source     *Source         `json:"source,omitempty"`
	Context    EvaluateContext `json:"context,omitempty"`
	Format     *ValueFormat    `json:"format,omitempty"`
}

type SetExpressionRequest struct {
	request
	Arguments SetExpressionArguments
}

type SetExpressionArguments struct {
	Expression string       `json:"expression"`
	Value      string       `json:"value"`
	FrameID    *int         `json:"frameId,omitempty" dap:"handle"`
	Format     *ValueFormat `json:"format,omitempty"`
}

type StepInTargetsRequest struct {
	request
	Arguments StepInTargetsArguments
}

type StepInTargetsArguments struct {
	FrameID int `json:"frameId" dap:"handle"`
}

type GotoTargetsRequest struct {
	request
	Arguments GotoTargetsArguments
}

type GotoTargetsArguments struct {
	Source Source `json:"source"`
	Line   int    `json:"line"`
	Column int    `json:"column,omitempty"`
}

type CompletionsRequest struct {
	request
	Arguments CompletionsArguments
}

type CompletionsArguments struct {
	FrameID *int   `json:"frameId,omitempty" dap:"handle"`
	Text    string `json:"text"`
	Column  int    `json:"column"`
	Line    int    `json:"line,omitempty"`
}

type ExceptionInfoRequest struct {
	request
	Arguments ExceptionInfoArguments
}

type ExceptionInfoArguments struct {
	ThreadID int `json:"threadId" dap:"handle"`
}

type ReadMemoryRequest struct {
	request
	Arguments ReadMemoryArguments
}

type ReadMemoryArguments struct {
	MemoryReference string `json:"memoryReference"`
	Offset          int    `json:"offset,omitempty"`
	Count           int    `json:"count"`
}

type WriteMemoryRequest struct {
	request
	Arguments WriteMemoryArguments
}

// WriteMemoryArguments carries Data base64-encoded, as on the wire.
type WriteMemoryArguments struct {
	MemoryReference string `json:"memoryReference"`
	Offset          int    `json:"offset,omitempty"`
	AllowPartial    bool   `json:"allowPartial,omitempty"`
	Data            string `json:"data"`
}

type DisassembleRequest struct {
	request
	Arguments DisassembleArguments
}

type DisassembleArguments struct {
	MemoryReference   string `json:"memoryReference"`
	Offset            int    `json:"offset,omitempty"`
	InstructionOffset int    `json:"instructionOffset,omitempty"`
	InstructionCount  int    `json:"instructionCount"`
	ResolveSymbols    bool   `json:"resolveSymbols,omitempty"`
}

type LocationsRequest struct {
	request
	Arguments LocationsArguments
}

type LocationsArguments struct {
	LocationReference int `json:"locationReference" dap:"handle"`
}

func (*CancelRequest) Command() string                    { return CommandCancel }
func (*RunInTerminalRequest) Command() string             { return CommandRunInTerminal }
func (*StartDebuggingRequest) Command() string            { return CommandStartDebugging }
func (*InitializeRequest) Command() string                { return CommandInitialize }
func (*ConfigurationDoneRequest) Command() string         { return CommandConfigurationDone }
func (*LaunchRequest) Command() string                    { return CommandLaunch }
func (*AttachRequest) Command() string                    { return CommandAttach }
func (*RestartRequest) Command() string                   { return CommandRestart }
func (*DisconnectRequest) Command() string                { return CommandDisconnect }
func (*TerminateRequest) Command() string                 { return CommandTerminate }
func (*BreakpointLocationsRequest) Command() string       { return CommandBreakpointLocations }
func (*SetBreakpointsRequest) Command() string            { return CommandSetBreakpoints }
func (*SetFunctionBreakpointsRequest) Command() string    { return CommandSetFunctionBreakpoints }
func (*SetExceptionBreakpointsRequest) Command() string   { return CommandSetExceptionBreakpoints }
func (*DataBreakpointInfoRequest) Command() string        { return CommandDataBreakpointInfo }
func (*SetDataBreakpointsRequest) Command() string        { return CommandSetDataBreakpoints }
func (*SetInstructionBreakpointsRequest) Command() string { return CommandSetInstructionBreakpoints }
func (*ContinueRequest) Command() string                  { return CommandContinue }
func (*NextRequest) Command() string                      { return CommandNext }
func (*StepInRequest) Command() string                    { return CommandStepIn }
func (*StepOutRequest) Command() string                   { return CommandStepOut }
func (*StepBackRequest) Command() string                  { return CommandStepBack }
func (*ReverseContinueRequest) Command() string           { return CommandReverseContinue }
func (*RestartFrameRequest) Command() string              { return CommandRestartFrame }
func (*GotoRequest) Command() string                      { return CommandGoto }
func (*PauseRequest) Command() string                     { return CommandPause }
func (*StackTraceRequest) Command() string                { return CommandStackTrace }
func (*ScopesRequest) Command() string                    { return CommandScopes }
func (*VariablesRequest) Command() string                 { return CommandVariables }
func (*SetVariableRequest) Command() string               { return CommandSetVariable }
func (*SourceRequest) Command() string                    { return CommandSource }
func (*ThreadsRequest) Command() string                   { return CommandThreads }
func (*TerminateThreadsRequest) Command() string          { return CommandTerminateThreads }
func (*ModulesRequest) Command() string                   { return CommandModules }
func (*LoadedSourcesRequest) Command() string             { return CommandLoadedSources }
func (*EvaluateRequest) Command() string                  { return CommandEvaluate }
func (*SetExpressionRequest) Command() string             { return CommandSetExpression }
func (*StepInTargetsRequest) Command() string             { return CommandStepInTargets }
func (*GotoTargetsRequest) Command() string               { return CommandGotoTargets }
func (*CompletionsRequest) Command() string               { return CommandCompletions }
func (*ExceptionInfoRequest) Command() string             { return CommandExceptionInfo }
func (*ReadMemoryRequest) Command() string                { return CommandReadMemory }
func (*WriteMemoryRequest) Command() string               { return CommandWriteMemory }
func (*DisassembleRequest) Command() string               { return CommandDisassemble }
func (*LocationsRequest) Command() string                 { return CommandLocations }

func (r *CancelRequest) arguments() any                    { return &r.Arguments }
func (r *RunInTerminalRequest) arguments() any             { return &r.Arguments }
func (r *StartDebuggingRequest) arguments() any            { return &r.Arguments }
func (r *InitializeRequest) arguments() any                { return &r.Arguments }
func (*ConfigurationDoneRequest) arguments() any           { return nil }
func (r *LaunchRequest) arguments() any                    { return &r.Arguments }
func (r *AttachRequest) arguments() any                    { return &r.Arguments }
func (r *RestartRequest) arguments() any                   { return &r.Arguments }
func (r *DisconnectRequest) arguments() any                { return &r.Arguments }
func (r *TerminateRequest) arguments() any                 { return &r.Arguments }
func (r *BreakpointLocationsRequest) arguments() any       { return &r.Arguments }
func (r *SetBreakpointsRequest) arguments() any            { return &r.Arguments }
func (r *SetFunctionBreakpointsRequest) arguments() any    { return &r.Arguments }
func (r *SetExceptionBreakpointsRequest) arguments() any   { return &r.Arguments }
func (r *DataBreakpointInfoRequest) arguments() any        { return &r.Arguments }
func (r *SetDataBreakpointsRequest) arguments() any        { return &r.Arguments }
func (r *SetInstructionBreakpointsRequest) arguments() any { return &r.Arguments }
func (r *ContinueRequest) arguments() any                  { return &r.Arguments }
func (r *NextRequest) arguments() any                      { return &r.Arguments }
func (r *StepInRequest) arguments() any                    { return &r.Arguments }
func (r *StepOutRequest) arguments() any                   { return &r.Arguments }
func (r *StepBackRequest) arguments() any                  { return &r.Arguments }
func (r *ReverseContinueRequest) arguments() any           { return &r.Arguments }
func (r *RestartFrameRequest) arguments() any              { return &r.Arguments }
func (r *GotoRequest) arguments() any                      { return &r.Arguments }
func (r *PauseRequest) arguments() any                     { return &r.Arguments }
func (r *StackTraceRequest) arguments() any                { return &r.Arguments }
func (r *ScopesRequest) arguments() any                    { return &r.Arguments }
func (r *VariablesRequest) arguments() any                 { return &r.Arguments }
func (r *SetVariableRequest) arguments() any               { return &r.Arguments }
func (r *SourceRequest) arguments() any                    { return &r.Arguments }
func (*ThreadsRequest) arguments() any                     { return nil }
func (r *TerminateThreadsRequest) arguments() any          { return &r.Arguments }
func (r *ModulesRequest) arguments() any                   { return &r.Arguments }
func (*LoadedSourcesRequest) arguments() any               { return nil }
func (r *EvaluateRequest) arguments() any                  { return &r.Arguments }
func (r *SetExpressionRequest) arguments() any             { return &r.Arguments }
func (r *StepInTargetsRequest) arguments() any             { return &r.Arguments }
func (r *GotoTargetsRequest) arguments() any               { return &r.Arguments }
func (r *CompletionsRequest) arguments() any               { return &r.Arguments }
func (r *ExceptionInfoRequest) arguments() any             { return &r.Arguments }
func (r *ReadMemoryRequest) arguments() any                { return &r.Arguments }
func (r *WriteMemoryRequest) arguments() any               { return &r.Arguments }
func (r *DisassembleRequest) arguments() any               { return &r.Arguments }
func (r *LocationsRequest) arguments() any                 { return &r.Arguments }
