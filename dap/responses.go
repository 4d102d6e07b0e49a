package dap

import "sort"

var successCatalog = map[string]func() SuccessResponse{
	CommandCancel:                    func() SuccessResponse { return &CancelResponse{} },
	CommandRunInTerminal:             func() SuccessResponse { return &RunInTerminalResponse{} },
	CommandStartDebugging:            func() SuccessResponse { return &StartDebuggingResponse{} },
	CommandInitialize:                func() SuccessResponse { return &InitializeResponse{} },
	CommandConfigurationDone:         func() SuccessResponse { return &ConfigurationDoneResponse{} },
	CommandLaunch:                    func() SuccessResponse { return &LaunchResponse{} },
	CommandAttach:                    func() SuccessResponse { return &AttachResponse{} },
	CommandRestart:                   func() SuccessResponse { return &RestartResponse{} },
	CommandDisconnect:                func() SuccessResponse { return &DisconnectResponse{} },
	CommandTerminate:                 func() SuccessResponse { return &TerminateResponse{} },
	CommandBreakpointLocations:       func() SuccessResponse { return &BreakpointLocationsResponse{} },
	CommandSetBreakpoints:            func() SuccessResponse { return &SetBreakpointsResponse{} },
	CommandSetFunctionBreakpoints:    func() SuccessResponse { return &SetFunctionBreakpointsResponse{} },
	CommandSetExceptionBreakpoints:   func() SuccessResponse { return &SetExceptionBreakpointsResponse{} },
	CommandDataBreakpointInfo:        func() SuccessResponse { return &DataBreakpointInfoResponse{} },
	CommandSetDataBreakpoints:        func() SuccessResponse { return &SetDataBreakpointsResponse{} },
	CommandSetInstructionBreakpoints: func() SuccessResponse { return &SetInstructionBreakpointsResponse{} },
	CommandContinue:                  func() SuccessResponse { return &ContinueResponse{} },
	CommandNext:                      func() SuccessResponse { return &NextResponse{} },
	CommandStepIn:                    func() SuccessResponse { return &StepInResponse{} },
	CommandStepOut:                   func() SuccessResponse { return &StepOutResponse{} },
	CommandStepBack:                  func() SuccessResponse { return &StepBackResponse{} },
	CommandReverseContinue:           func() SuccessResponse { return &ReverseContinueResponse{} },
	CommandRestartFrame:              func() SuccessResponse { return &RestartFrameResponse{} },
	CommandGoto:                      func() SuccessResponse { return &GotoResponse{} },
	CommandPause:                     func() SuccessResponse { return &PauseResponse{} },
	CommandStackTrace:                func() SuccessResponse { return &StackTraceResponse{} },
	CommandScopes:                    func() SuccessResponse { return &ScopesResponse{} },
	CommandVariables:                 func() SuccessResponse { return &VariablesResponse{} },
	CommandSetVariable:               func() SuccessResponse { return &SetVariableResponse{} },
	CommandSource:                    func() SuccessResponse { return &SourceResponse{} },
	CommandThreads:                   func() SuccessResponse { return &ThreadsResponse{} },
	CommandTerminateThreads:          func() SuccessResponse { return &TerminateThreadsResponse{} },
	CommandModules:                   func() SuccessResponse { return &ModulesResponse{} },
	CommandLoadedSources:             func() SuccessResponse { return &LoadedSourcesResponse{} },
	CommandEvaluate:                  func() SuccessResponse { return &EvaluateResponse{} },
	CommandSetExpression:             func() SuccessResponse { return &SetExpressionResponse{} },
	CommandStepInTargets:             func() SuccessResponse { return &StepInTargetsResponse{} },
	CommandGotoTargets:               func() SuccessResponse { return &GotoTargetsResponse{} },
	CommandCompletions:               func() SuccessResponse { return &CompletionsResponse{} },
	CommandExceptionInfo:             func() SuccessResponse { return &ExceptionInfoResponse{} },
	CommandReadMemory:                func() SuccessResponse { return &ReadMemoryResponse{} },
	CommandWriteMemory:               func() SuccessResponse { return &WriteMemoryResponse{} },
	CommandDisassemble:               func() SuccessResponse { return &DisassembleResponse{} },
	CommandLocations:                 func() SuccessResponse { return &LocationsResponse{} },
}

// NewSuccessResponse returns a zero success response for command, or nil if
// command is not in the catalog.
func NewSuccessResponse(command string) SuccessResponse {
	ctor, ok := successCatalog[command]
	if !ok {
		return nil
	}
	return ctor()
}

// ResponseCommands returns every command with a success response variant,
// sorted.
func ResponseCommands() []string {
	out := make([]string, 0, len(successCatalog))
	for name := range successCatalog {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Acknowledgement-only responses.
type (
	CancelResponse            struct{ successResult }
	StartDebuggingResponse    struct{ successResult }
	ConfigurationDoneResponse struct{ successResult }
	LaunchResponse            struct{ successResult }
	AttachResponse            struct{ successResult }
	RestartResponse           struct{ successResult }
	DisconnectResponse        struct{ successResult }
	TerminateResponse         struct{ successResult }
	NextResponse              struct{ successResult }
	StepInResponse            struct{ successResult }
	StepOutResponse           struct{ successResult }
	StepBackResponse          struct{ successResult }
	ReverseContinueResponse   struct{ successResult }
	RestartFrameResponse      struct{ successResult }
	GotoResponse              struct{ successResult }
	PauseResponse             struct{ successResult }
	TerminateThreadsResponse  struct{ successResult }
)

// InitializeResponse carries the adapter's capabilities.
type InitializeResponse struct {
	successResult
	Body Capabilities
}

type RunInTerminalResponse struct {
	successResult
	Body RunInTerminalResponseBody
}

type RunInTerminalResponseBody struct {
	ProcessID      *int `json:"processId,omitempty" dap:"handle"`
	ShellProcessID *int `json:"shellProcessId,omitempty" dap:"handle"`
}

type BreakpointLocationsResponse struct {
	successResult
	Body BreakpointLocationsResponseBody
}

type BreakpointLocationsResponseBody struct {
	Breakpoints []BreakpointLocation `json:"breakpoints"`
}

// SetBreakpointsResponse returns breakpoints in the order of the request.
type SetBreakpointsResponse struct {
	successResult
	Body SetBreakpointsResponseBody
}

type SetBreakpointsResponseBody struct {
	Breakpoints []Breakpoint `json:"breakpoints"`
}

type SetFunctionBreakpointsResponse struct {
	successResult
	Body SetFunctionBreakpointsResponseBody
}

type SetFunctionBreakpointsResponseBody struct {
	Breakpoints []Breakpoint `json:"breakpoints"`
}

type SetExceptionBreakpointsResponse struct {
	successResult
	Body SetExceptionBreakpointsResponseBody
}

type SetExceptionBreakpointsResponseBody struct {
	Breakpoints []Breakpoint `json:"breakpoints,omitempty"`
}

type DataBreakpointInfoResponse struct {
	successResult
	Body DataBreakpointInfoResponseBody
}

// DataBreakpointInfoResponseBody.DataID is required but may be null, meaning
// no data breakpoint is available.
type DataBreakpointInfoResponseBody struct {
	DataID      *string                    `json:"dataId"`
	Description string                     `json:"description"`
	AccessTypes []DataBreakpointAccessType `json:"accessTypes,omitempty"`
	CanPersist  bool                       `json:"canPersist,omitempty"`
}

type SetDataBreakpointsResponse struct {
	successResult
	Body SetDataBreakpointsResponseBody
}

type SetDataBreakpointsResponseBody struct {
	Breakpoints []Breakpoint `json:"breakpoints"`
}

type SetInstructionBreakpointsResponse struct {
	successResult
	Body SetInstructionBreakpointsResponseBody
}

type SetInstructionBreakpointsResponseBody struct {
	Breakpoints []Breakpoint `json:"breakpoints"`
}

type ContinueResponse struct {
	successResult
	Body ContinueResponseBody
}

// ContinueResponseBody.AllThreadsContinued means true when omitted.
type ContinueResponseBody struct {
	AllThreadsContinued *bool `json:"allThreadsContinued,omitempty"`
}

type StackTraceResponse struct {
	successResult
	Body StackTraceResponseBody
}

type StackTraceResponseBody struct {
	StackFrames []StackFrame `json:"stackFrames"`
	TotalFrames *int         `json:"totalFrames,omitempty"`
}

type ScopesResponse struct {
	successResult
	Body ScopesResponseBody
}

type ScopesResponseBody struct {
	Scopes []Scope `json:"scopes"`
}

type VariablesResponse struct {
	successResult
	Body VariablesResponseBody
}

type VariablesResponseBody struct {
	Variables []Variable `json:"variables"`
}

type SetVariableResponse struct {
	successResult
	Body SetVariableResponseBody
}

type SetVariableResponseBody struct {
	Value                  string `json:"value"`
	Type                   string `json:"type,omitempty"`
	VariablesReference     *int   `json:"variablesReference,omitempty" dap:"handle"`
	NamedVariables         int    `json:"namedVariables,omitempty" dap:"handle"`
	IndexedVariables       int    `json:"indexedVariables,omitempty" dap:"handle"`
	MemoryReference        string `json:"memoryReference,omitempty"`
	ValueLocationReference int    `json:"valueLocationReference,omitempty" dap:"handle"`
}

type SourceResponse struct {
	successResult
	Body SourceResponseBody
}

type SourceResponseBody struct {
	Content  string `json:"content"`
	MimeType string `json:"mimeType,omitempty"`
}

type ThreadsResponse struct {
	successResult
	Body ThreadsResponseBody
}

type ThreadsResponseBody struct {
	Threads []Thread `json:"threads"`
}

type ModulesResponse struct {
	successResult
	Body ModulesResponseBody
}

type ModulesResponseBody struct {
	Modules      []Module `json:"modules"`
	TotalModules *int     `json:"totalModules,omitempty"`
}

type LoadedSourcesResponse struct {
	successResult
	Body LoadedSourcesResponseBody
}

type LoadedSourcesResponseBody struct {
	Sources []Source `json:"sources"`
}

type EvaluateResponse struct {
	successResult
	Body EvaluateResponseBody
}

type EvaluateResponseBody struct {
	Result                 string                    `json:"result"`
	Type                   string                    `json:"type,omitempty"`
	PresentationHint       *VariablePresentationHint `json:"presentationHint,omitempty"`
	VariablesReference     int                       `json:"variablesReference" dap:"handle"`
	NamedVariables         int                       `json:"namedVariables,omitempty" dap:"handle"`
	IndexedVariables       int                       `json:"indexedVariables,omitempty" dap:"handle"`
	MemoryReference        string                    `json:"memoryReference,omitempty"`
	ValueLocationReference int                       `json:"valueLocationReference,omitempty" dap:"handle"`
}

type SetExpressionResponse struct {
	successResult
	Body SetExpressionResponseBody
}

type SetExpressionResponseBody struct {
	Value                  string                    `json:"value"`
	Type                   string                    `json:"type,omitempty"`
	PresentationHint       *VariablePresentationHint `json:"presentationHint,omitempty"`
	VariablesReference     *int                      `json:"variablesReference,omitempty" dap:"handle"`
	NamedVariables         int                       `json:"namedVariables,omitempty" dap:"handle"`
	IndexedVariables       int                       `json:"indexedVariables,omitempty" dap:"handle"`
	MemoryReference        string                    `json:"memoryReference,omitempty"`
	ValueLocationReference int                       `json:"valueLocationReference,omitempty" dap:"handle"`
}

type StepInTargetsResponse struct {
	successResult
	Body StepInTargetsResponseBody
}

type StepInTargetsResponseBody struct {
	Targets []StepInTarget `json:"targets"`
}

type GotoTargetsResponse struct {
	successResult
	Body GotoTargetsResponseBody
}

type GotoTargetsResponseBody struct {
	Targets []GotoTarget `json:"targets"`
}

type CompletionsResponse struct {
	successResult
	Body CompletionsResponseBody
}

type CompletionsResponseBody struct {
	Targets []CompletionItem `json:"targets"`
}

type ExceptionInfoResponse struct {
	successResult
	Body ExceptionInfoResponseBody
}

type ExceptionInfoResponseBody struct {
	ExceptionID string             `json:"exceptionId"`
	Description string             `json:"description,omitempty"`
	BreakMode   ExceptionBreakMode `json:"breakMode"`
	Details     *ExceptionDetails  `json:"details,omitempty"`
}

type ReadMemoryResponse struct {
	successResult
	Body ReadMemoryResponseBody
}

// ReadMemoryResponseBody carries Data base64-encoded, as on the wire.
type ReadMemoryResponseBody struct {
	Address         string `json:"address"`
	UnreadableBytes int    `json:"unreadableBytes,omitempty"`
	Data            string `json:"data,omitempty"`
}

type WriteMemoryResponse struct {
	successResult
	Body WriteMemoryResponseBody
}

type WriteMemoryResponseBody struct {
	Offset       *int `json:"offset,omitempty"`
	BytesWritten *int `json:"bytesWritten,omitempty"`
}

type DisassembleResponse struct {
	successResult
	Body DisassembleResponseBody
}

type DisassembleResponseBody struct {
	Instructions []DisassembledInstruction `json:"instructions"`
}

type LocationsResponse struct {
	successResult
	Body LocationsResponseBody
}

type LocationsResponseBody struct {
	Source    Source `json:"source"`
	Line      int    `json:"line"`
	Column    int    `json:"column,omitempty"`
	EndLine   int    `json:"endLine,omitempty"`
	EndColumn int    `json:"endColumn,omitempty"`
}

func (*CancelResponse) Command() string                    { return CommandCancel }
func (*RunInTerminalResponse) Command() string             { return CommandRunInTerminal }
func (*StartDebuggingResponse) Command() string            { return CommandStartDebugging }
func (*InitializeResponse) Command() string                { return CommandInitialize }
func (*ConfigurationDoneResponse) Command() string         { return CommandConfigurationDone }
func (*LaunchResponse) Command() string                    { return CommandLaunch }
func (*AttachResponse) Command() string                    { return CommandAttach }
func (*RestartResponse) Command() string                   { return CommandRestart }
func (*DisconnectResponse) Command() string                { return CommandDisconnect }
func (*TerminateResponse) Command() string                 { return CommandTerminate }
func (*BreakpointLocationsResponse) Command() string       { return CommandBreakpointLocations }
func (*SetBreakpointsResponse) Command() string            { return CommandSetBreakpoints }
func (*SetFunctionBreakpointsResponse) Command() string    { return CommandSetFunctionBreakpoints }
func (*SetExceptionBreakpointsResponse) Command() string   { return CommandSetExceptionBreakpoints }
func (*DataBreakpointInfoResponse) Command() string        { return CommandDataBreakpointInfo }
func (*SetDataBreakpointsResponse) Command() string        { return CommandSetDataBreakpoints }
func (*SetInstructionBreakpointsResponse) Command() string { return CommandSetInstructionBreakpoints }
func (*ContinueResponse) Command() string                  { return CommandContinue }
func (*NextResponse) Command() string                      { return CommandNext }
func (*StepInResponse) Command() string                    { return CommandStepIn }
func (*StepOutResponse) Command() string                   { return CommandStepOut }
func (*StepBackResponse) Command() string                  { return CommandStepBack }
func (*ReverseContinueResponse) Command() string           { return CommandReverseContinue }
func (*RestartFrameResponse) Command() string              { return CommandRestartFrame }
func (*GotoResponse) Command() string                      { return CommandGoto }
func (*PauseResponse) Command() string                     { return CommandPause }
func (*StackTraceResponse) Command() string                { return CommandStackTrace }
func (*ScopesResponse) Command() string                    { return CommandScopes }
func (*VariablesResponse) Command() string                 { return CommandVariables }
func (*SetVariableResponse) Command() string               { return CommandSetVariable }
func (*SourceResponse) Command() string                    { return CommandSource }
func (*ThreadsResponse) Command() string                   { return CommandThreads }
func (*TerminateThreadsResponse) Command() string          { return CommandTerminateThreads }
func (*ModulesResponse) Command() string                   { return CommandModules }
func (*LoadedSourcesResponse) Command() string             { return CommandLoadedSources }
func (*EvaluateResponse) Command() string                  { return CommandEvaluate }
func (*SetExpressionResponse) Command() string             { return CommandSetExpression }
func (*StepInTargetsResponse) Command() string             { return CommandStepInTargets }
func (*GotoTargetsResponse) Command() string               { return CommandGotoTargets }
func (*CompletionsResponse) Command() string               { return CommandCompletions }
func (*ExceptionInfoResponse) Command() string             { return CommandExceptionInfo }
func (*ReadMemoryResponse) Command() string                { return CommandReadMemory }
func (*WriteMemoryResponse) Command() string               { return CommandWriteMemory }
func (*DisassembleResponse) Command() string               { return CommandDisassemble }
func (*LocationsResponse) Command() string                 { return CommandLocations }

func (*CancelResponse) body() any                      { return nil }
func (r *RunInTerminalResponse) body() any             { return &r.Body }
func (*StartDebuggingResponse) body() any              { return nil }
func (r *InitializeResponse) body() any                { return &r.Body }
func (*ConfigurationDoneResponse) body() any           { return nil }
func (*LaunchResponse) body() any                      { return nil }
func (*AttachResponse) body() any                      { return nil }
func (*RestartResponse) body() any                     { return nil }
func (*DisconnectResponse) body() any                  { return nil }
func (*TerminateResponse) body() any                   { return nil }
func (r *BreakpointLocationsResponse) body() any       { return &r.Body }
func (r *SetBreakpointsResponse) body() any            { return &r.Body }
func (r *SetFunctionBreakpointsResponse) body() any    { return &r.Body }
func (r *SetExceptionBreakpointsResponse) body() any   { return &r.Body }
func (r *DataBreakpointInfoResponse) body() any        { return &r.Body }
func (r *SetDataBreakpointsResponse) body() any        { return &r.Body }
func (r *SetInstructionBreakpointsResponse) body() any { return &r.Body }
func (r *ContinueResponse) body() any                  { return &r.Body }
func (*NextResponse) body() any                        { return nil }
func (*StepInResponse) body() any                      { return nil }
func (*StepOutResponse) body() any                     { return nil }
func (*StepBackResponse) body() any                    { return nil }
func (*ReverseContinueResponse) body() any             { return nil }
func (*RestartFrameResponse) body() any                { return nil }
func (*GotoResponse) body() any                        { return nil }
func (*PauseResponse) body() any                       { return nil }
func (r *StackTraceResponse) body() any                { return &r.Body }
func (r *ScopesResponse) body() any                    { return &r.Body }
func (r *VariablesResponse) body() any                 { return &r.Body }
func (r *SetVariableResponse) body() any               { return &r.Body }
func (r *SourceResponse) body() any                    { return &r.Body }
func (r *ThreadsResponse) body() any                   { return &r.Body }
func (*TerminateThreadsResponse) body() any            { return nil }
func (r *ModulesResponse) body() any                   { return &r.Body }
func (r *LoadedSourcesResponse) body() any             { return &r.Body }
func (r *EvaluateResponse) body() any                  { return &r.Body }
func (r *SetExpressionResponse) body() any             { return &r.Body }
func (r *StepInTargetsResponse) body() any             { return &r.Body }
func (r *GotoTargetsResponse) body() any               { return &r.Body }
func (r *CompletionsResponse) body() any               { return &r.Body }
func (r *ExceptionInfoResponse) body() any             { return &r.Body }
func (r *ReadMemoryResponse) body() any                { return &r.Body }
func (r *WriteMemoryResponse) body() any               { return &r.Body }
func (r *DisassembleResponse) body() any               { return &r.Body }
func (r *LocationsResponse) body() any                 { return &r.Body }
