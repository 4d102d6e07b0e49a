package dap

// String enumerations. The protocol declares most of these as open sets
// ('a' | 'b' | string), so values outside the constants decode unchanged.

// PathFormat determines the format of paths exchanged with the adapter.
type PathFormat string

const (
	PathFormatPath PathFormat = "path"
	PathFormatURI  PathFormat = "uri"
)

// SteppingGranularity is the unit a step request advances by.
type SteppingGranularity string

const (
	GranularityStatement   SteppingGranularity = "statement"
	GranularityLine        SteppingGranularity = "line"
	GranularityInstruction SteppingGranularity = "instruction"
)

// ExceptionBreakMode controls when execution breaks on an exception.
type ExceptionBreakMode string

const (
	BreakModeNever         ExceptionBreakMode = "never"
	BreakModeAlways        ExceptionBreakMode = "always"
	BreakModeUnhandled     ExceptionBreakMode = "unhandled"
	BreakModeUserUnhandled ExceptionBreakMode = "userUnhandled"
)

type OutputCategory string

const (
	OutputConsole   OutputCategory = "console"
	OutputImportant OutputCategory = "important"
	OutputStdout    OutputCategory = "stdout"
	OutputStderr    OutputCategory = "stderr"
	OutputTelemetry OutputCategory = "telemetry"
)

type OutputGroup string

const (
	OutputGroupStart          OutputGroup = "start"
	OutputGroupStartCollapsed OutputGroup = "startCollapsed"
	OutputGroupEnd            OutputGroup = "end"
)

// StoppedReason is the reason carried by a stopped event.
type StoppedReason string

const (
	StoppedStep                  StoppedReason = "step"
	StoppedBreakpoint            StoppedReason = "breakpoint"
	StoppedException             StoppedReason = "exception"
	StoppedPause                 StoppedReason = "pause"
	StoppedEntry                 StoppedReason = "entry"
	StoppedGoto                  StoppedReason = "goto"
	StoppedFunctionBreakpoint    StoppedReason = "function breakpoint"
	StoppedDataBreakpoint        StoppedReason = "data breakpoint"
	StoppedInstructionBreakpoint StoppedReason = "instruction breakpoint"
)

type ThreadReason string

const (
	ThreadStarted ThreadReason = "started"
	ThreadExited  ThreadReason = "exited"
)

// ChangeReason is shared by the breakpoint, module and loadedSource events.
type ChangeReason string

const (
	ReasonNew     ChangeReason = "new"
	ReasonChanged ChangeReason = "changed"
	ReasonRemoved ChangeReason = "removed"
)

type ProcessStartMethod string

const (
	StartLaunch                   ProcessStartMethod = "launch"
	StartAttach                   ProcessStartMethod = "attach"
	StartAttachForSuspendedLaunch ProcessStartMethod = "attachForSuspendedLaunch"
)

type InvalidatedArea string

const (
	InvalidatedAll       InvalidatedArea = "all"
	InvalidatedStacks    InvalidatedArea = "stacks"
	InvalidatedThreads   InvalidatedArea = "threads"
	InvalidatedVariables InvalidatedArea = "variables"
)

type ChecksumAlgorithm string

const (
	ChecksumMD5       ChecksumAlgorithm = "MD5"
	ChecksumSHA1      ChecksumAlgorithm = "SHA1"
	ChecksumSHA256    ChecksumAlgorithm = "SHA256"
	ChecksumTimestamp ChecksumAlgorithm = "timestamp"
)

type CompletionItemType string

const (
	CompletionMethod      CompletionItemType = "method"
	CompletionFunction    CompletionItemType = "function"
	CompletionConstructor CompletionItemType = "constructor"
	CompletionField       CompletionItemType = "field"
	CompletionVariable    CompletionItemType = "variable"
	CompletionClass       CompletionItemType = "class"
	CompletionInterface   CompletionItemType = "interface"
	CompletionModule      CompletionItemType = "module"
	CompletionProperty    CompletionItemType = "property"
	CompletionUnit        CompletionItemType = "unit"
	CompletionValue       CompletionItemType = "value"
	CompletionEnum        CompletionItemType = "enum"
	CompletionKeyword     CompletionItemType = "keyword"
	CompletionSnippet     CompletionItemType = "snippet"
	CompletionText        CompletionItemType = "text"
	CompletionColor       CompletionItemType = "color"
	CompletionFile        CompletionItemType = "file"
	CompletionReference   CompletionItemType = "reference"
	CompletionCustomColor CompletionItemType = "customcolor"
)

type DataBreakpointAccessType string

const (
	AccessRead      DataBreakpointAccessType = "read"
	AccessWrite     DataBreakpointAccessType = "write"
	AccessReadWrite DataBreakpointAccessType = "readWrite"
)

// EvaluateContext is the context in which an evaluate request is issued.
type EvaluateContext string

const (
	ContextWatch     EvaluateContext = "watch"
	ContextRepl      EvaluateContext = "repl"
	ContextHover     EvaluateContext = "hover"
	ContextClipboard EvaluateContext = "clipboard"
	ContextVariables EvaluateContext = "variables"
)

type SourcePresentationHint string

const (
	SourceHintNormal      SourcePresentationHint = "normal"
	SourceHintEmphasize   SourcePresentationHint = "emphasize"
	SourceHintDeemphasize SourcePresentationHint = "deemphasize"
)

type StackFramePresentationHint string

const (
	FrameHintNormal StackFramePresentationHint = "normal"
	FrameHintLabel  StackFramePresentationHint = "label"
	FrameHintSubtle StackFramePresentationHint = "subtle"
)

type ScopePresentationHint string

const (
	ScopeArguments ScopePresentationHint = "arguments"
	ScopeLocals    ScopePresentationHint = "locals"
	ScopeRegisters ScopePresentationHint = "registers"
	ScopeReturn    ScopePresentationHint = "returnValue"
)

type ColumnType string

const (
	ColumnString    ColumnType = "string"
	ColumnNumber    ColumnType = "number"
	ColumnBoolean   ColumnType = "boolean"
	ColumnTimestamp ColumnType = "unixTimestampUTC"
)

type BreakpointModeApplicability string

const (
	ApplicabilitySource      BreakpointModeApplicability = "source"
	ApplicabilityException   BreakpointModeApplicability = "exception"
	ApplicabilityData        BreakpointModeApplicability = "data"
	ApplicabilityInstruction BreakpointModeApplicability = "instruction"
)

type BreakpointFailureReason string

const (
	BreakpointPending BreakpointFailureReason = "pending"
	BreakpointFailed  BreakpointFailureReason = "failed"
)

type RunInTerminalKind string

const (
	TerminalIntegrated RunInTerminalKind = "integrated"
	TerminalExternal   RunInTerminalKind = "external"
)

type StartDebuggingKind string

const (
	StartDebuggingLaunch StartDebuggingKind = "launch"
	StartDebuggingAttach StartDebuggingKind = "attach"
)

type VariablesFilter string

const (
	FilterIndexed VariablesFilter = "indexed"
	FilterNamed   VariablesFilter = "named"
)

type InstructionPresentationHint string

const (
	InstructionNormal  InstructionPresentationHint = "normal"
	InstructionInvalid InstructionPresentationHint = "invalid"
)
