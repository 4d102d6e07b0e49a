package dap

import (
	"encoding/json"
	"sort"
)

// Command names. They key both the request catalog and the success response
// catalog.
const (
	CommandCancel                    = "cancel"
	CommandRunInTerminal             = "runInTerminal"
	CommandStartDebugging            = "startDebugging"
	CommandInitialize                = "initialize"
	CommandConfigurationDone         = "configurationDone"
	CommandLaunch                    = "launch"
	CommandAttach                    = "attach"
	CommandRestart                   = "restart"
	CommandDisconnect                = "disconnect"
	CommandTerminate                 = "terminate"
	CommandBreakpointLocations       = "breakpointLocations"
	CommandSetBreakpoints            = "setBreakpoints"
	CommandSetFunctionBreakpoints    = "setFunctionBreakpoints"
	CommandSetExceptionBreakpoints   = "setExceptionBreakpoints"
	CommandDataBreakpointInfo        = "dataBreakpointInfo"
	CommandSetDataBreakpoints        = "setDataBreakpoints"
	CommandSetInstructionBreakpoints = "setInstructionBreakpoints"
	CommandContinue                  = "continue"
	CommandNext                      = "next"
	CommandStepIn                    = "stepIn"
	CommandStepOut                   = "stepOut"
	CommandStepBack                  = "stepBack"
	CommandReverseContinue           = "reverseContinue"
	CommandRestartFrame              = "restartFrame"
	CommandGoto                      = "goto"
	CommandPause                     = "pause"
	CommandStackTrace                = "stackTrace"
	CommandScopes                    = "scopes"
	CommandVariables                 = "variables"
	CommandSetVariable               = "setVariable"
	CommandSource                    = "source"
	CommandThreads                   = "threads"
	CommandTerminateThreads          = "terminateThreads"
	CommandModules                   = "modules"
	CommandLoadedSources             = "loadedSources"
	CommandEvaluate                  = "evaluate"
	CommandSetExpression             = "setExpression"
	CommandStepInTargets             = "stepInTargets"
	CommandGotoTargets               = "gotoTargets"
	CommandCompletions               = "completions"
	CommandExceptionInfo             = "exceptionInfo"
	CommandReadMemory                = "readMemory"
	CommandWriteMemory               = "writeMemory"
	CommandDisassemble               = "disassemble"
	CommandLocations                 = "locations"
)

// Request is the closed union of request kinds. Only the variant types in
// this package implement it.
type Request interface {
	Message
	Command() string
	// arguments returns a pointer to the payload, or nil for variants
	// without one.
	arguments() any
}

// request is embedded by every request variant.
type request struct{}

func (request) MessageType() MessageType { return TypeRequest }
func (request) isMessage()               {}

var requestCatalog = map[string]func() Request{
	CommandCancel:                    func() Request { return &CancelRequest{} },
	CommandRunInTerminal:             func() Request { return &RunInTerminalRequest{} },
	CommandStartDebugging:            func() Request { return &StartDebuggingRequest{} },
	CommandInitialize:                func() Request { return &InitializeRequest{} },
	CommandConfigurationDone:         func() Request { return &ConfigurationDoneRequest{} },
	CommandLaunch:                    func() Request { return &LaunchRequest{} },
	CommandAttach:                    func() Request { return &AttachRequest{} },
	CommandRestart:                   func() Request { return &RestartRequest{} },
	CommandDisconnect:                func() Request { return &DisconnectRequest{} },
	CommandTerminate:                 func() Request { return &TerminateRequest{} },
	CommandBreakpointLocations:       func() Request { return &BreakpointLocationsRequest{} },
	CommandSetBreakpoints:            func() Request { return &SetBreakpointsRequest{} },
	CommandSetFunctionBreakpoints:    func() Request { return &SetFunctionBreakpointsRequest{} },
	CommandSetExceptionBreakpoints:   func() Request { return &SetExceptionBreakpointsRequest{} },
	CommandDataBreakpointInfo:        func() Request { return &DataBreakpointInfoRequest{} },
	CommandSetDataBreakpoints:        func() Request { return &SetDataBreakpointsRequest{} },
	CommandSetInstructionBreakpoints: func() Request { return &SetInstructionBreakpointsRequest{} },
	CommandContinue:                  func() Request { return &ContinueRequest{} },
	CommandNext:                      func() Request { return &NextRequest{} },
	CommandStepIn:                    func() Request { return &StepInRequest{} },
	CommandStepOut:                   func() Request { return &StepOutRequest{} },
	CommandStepBack:                  func() Request { return &StepBackRequest{} },
	CommandReverseContinue:           func() Request { return &ReverseContinueRequest{} },
	CommandRestartFrame:              func() Request { return &RestartFrameRequest{} },
	CommandGoto:                      func() Request { return &GotoRequest{} },
	CommandPause:                     func() Request { return &PauseRequest{} },
	CommandStackTrace:                func() Request { return &StackTraceRequest{} },
	CommandScopes:                    func() Request { return &ScopesRequest{} },
	CommandVariables:                 func() Request { return &VariablesRequest{} },
	CommandSetVariable:               func() Request { return &SetVariableRequest{} },
	CommandSource:                    func() Request { return &SourceRequest{} },
	CommandThreads:                   func() Request { return &ThreadsRequest{} },
	CommandTerminateThreads:          func() Request { return &TerminateThreadsRequest{} },
	CommandModules:                   func() Request { return &ModulesRequest{} },
	CommandLoadedSources:             func() Request { return &LoadedSourcesRequest{} },
	CommandEvaluate:                  func() Request { return &EvaluateRequest{} },
	CommandSetExpression:             func() Request { return &SetExpressionRequest{} },
	CommandStepInTargets:             func() Request { return &StepInTargetsRequest{} },
	CommandGotoTargets:               func() Request { return &GotoTargetsRequest{} },
	CommandCompletions:               func() Request { return &CompletionsRequest{} },
	CommandExceptionInfo:             func() Request { return &ExceptionInfoRequest{} },
	CommandReadMemory:                func() Request { return &ReadMemoryRequest{} },
	CommandWriteMemory:               func() Request { return &WriteMemoryRequest{} },
	CommandDisassemble:               func() Request { return &DisassembleRequest{} },
	CommandLocations:                 func() Request { return &LocationsRequest{} },
}

// NewRequest returns a zero request for command, or nil if command is not
// in the catalog. Lookup is exact and case-sensitive.
func NewRequest(command string) Request {
	ctor, ok := requestCatalog[command]
	if !ok {
		return nil
	}
	return ctor()
}

// RequestCommands returns every catalog command, sorted.
func RequestCommands() []string {
	out := make([]string, 0, len(requestCatalog))
	for name := range requestCatalog {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// HasArguments reports whether requests for command carry an arguments
// payload.
func HasArguments(command string) bool {
	req := NewRequest(command)
	return req != nil && req.arguments() != nil
}

func (c Codec) decodeRequest(obj map[string]json.RawMessage) (Request, error) {
	command, err := readString(obj, "command")
	if err != nil {
		return nil, err
	}
	req := NewRequest(command)
	if req == nil {
		return nil, &UnknownCommandError{Command: command}
	}
	if args := req.arguments(); args != nil {
		if err := c.decodePayload(obj["arguments"], "arguments", args); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func (c Codec) encodeRequest(w *objectWriter, req Request) error {
	if err := w.field("command", req.Command()); err != nil {
		return err
	}
	if args := req.arguments(); args != nil {
		return c.encodePayload(w, "arguments", args)
	}
	return nil
}
