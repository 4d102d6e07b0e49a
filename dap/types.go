package dap

import "encoding/json"

// ErrorMessage is the structured message carried by error responses.
// Variables substitutes {name} placeholders in Format. An empty Variables map
// is not written, so it decodes as nil.
type ErrorMessage struct {
	ID            int               `json:"id"`
	Format        string            `json:"format"`
	Variables     map[string]string `json:"variables,omitempty"`
	SendTelemetry bool              `json:"sendTelemetry,omitempty"`
	ShowUser      bool              `json:"showUser,omitempty"`
	URL           string            `json:"url,omitempty"`
	URLLabel      string            `json:"urlLabel,omitempty"`
}

type Module struct {
	ID             ModuleID `json:"id"`
	Name           string   `json:"name"`
	Path           string   `json:"path,omitempty"`
	IsOptimized    bool     `json:"isOptimized,omitempty"`
	IsUserCode     bool     `json:"isUserCode,omitempty"`
	Version        string   `json:"version,omitempty"`
	SymbolStatus   string   `json:"symbolStatus,omitempty"`
	SymbolFilePath string   `json:"symbolFilePath,omitempty"`
	DateTimeStamp  string   `json:"dateTimeStamp,omitempty"`
	AddressRange   string   `json:"addressRange,omitempty"`
}

type Thread struct {
	ID   int    `json:"id" dap:"handle"`
	Name string `json:"name"`
}

// Source describes a source file. Sources is a tree of related sources
// (for example the original sources of a bundle); producers must not emit
// cycles.
type Source struct {
	Name             string                 `json:"name,omitempty"`
	Path             string                 `json:"path,omitempty"`
	SourceReference  int                    `json:"sourceReference,omitempty" dap:"handle"`
	PresentationHint SourcePresentationHint `json:"presentationHint,omitempty"`
	Origin           string                 `json:"origin,omitempty"`
	Sources          []Source               `json:"sources,omitempty"`
	AdapterData      json.RawMessage        `json:"adapterData,omitempty"`
	Checksums        []Checksum             `json:"checksums,omitempty"`
}

type StackFrame struct {
	ID                          int                        `json:"id" dap:"handle"`
	Name                        string                     `json:"name"`
	Source                      *Source                    `json:"source,omitempty"`
	Line                        int                        `json:"line"`
	Column                      int                        `json:"column"`
	EndLine                     int                        `json:"endLine,omitempty"`
	EndColumn                   int                        `json:"endColumn,omitempty"`
	CanRestart                  bool                       `json:"canRestart,omitempty"`
	InstructionPointerReference string                     `json:"instructionPointerReference,omitempty"`
	ModuleID                    *ModuleID                  `json:"moduleId,omitempty"`
	PresentationHint            StackFramePresentationHint `json:"presentationHint,omitempty"`
}

type Scope struct {
	Name               string                `json:"name"`
	PresentationHint   ScopePresentationHint `json:"presentationHint,omitempty"`
	VariablesReference int                   `json:"variablesReference" dap:"handle"`
	NamedVariables     int                   `json:"namedVariables,omitempty" dap:"handle"`
	IndexedVariables   int                   `json:"indexedVariables,omitempty" dap:"handle"`
	Expensive          bool                  `json:"expensive"`
	Source             *Source               `json:"source,omitempty"`
	Line               int                   `json:"line,omitempty"`
	Column             int                   `json:"column,omitempty"`
	EndLine            int                   `json:"endLine,omitempty"`
	EndColumn          int                   `json:"endColumn,omitempty"`
}

// Variable is a name/value pair. Children are not embedded: a non-zero
// VariablesReference is fetched with a separate variables request.
type Variable struct {
	Name                         string                    `json:"name"`
	Value                        string                    `json:"value"`
	Type                         string                    `json:"type,omitempty"`
	PresentationHint             *VariablePresentationHint `json:"presentationHint,omitempty"`
	EvaluateName                 string                    `json:"evaluateName,omitempty"`
	VariablesReference           int                       `json:"variablesReference" dap:"handle"`
	NamedVariables               int                       `json:"namedVariables,omitempty" dap:"handle"`
	IndexedVariables             int                       `json:"indexedVariables,omitempty" dap:"handle"`
	MemoryReference              string                    `json:"memoryReference,omitempty"`
	DeclarationLocationReference int                       `json:"declarationLocationReference,omitempty" dap:"handle"`
	ValueLocationReference       int                       `json:"valueLocationReference,omitempty" dap:"handle"`
}

type VariablePresentationHint struct {
	Kind       string   `json:"kind,omitempty"`
	Attributes []string `json:"attributes,omitempty"`
	Visibility string   `json:"visibility,omitempty"`
	Lazy       bool     `json:"lazy,omitempty"`
}

type BreakpointLocation struct {
	Line      int `json:"line"`
	Column    int `json:"column,omitempty"`
	EndLine   int `json:"endLine,omitempty"`
	EndColumn int `json:"endColumn,omitempty"`
}

type SourceBreakpoint struct {
	Line         int    `json:"line"`
	Column       int    `json:"column,omitempty"`
	Condition    string `json:"condition,omitempty"`
	HitCondition string `json:"hitCondition,omitempty"`
	LogMessage   string `json:"logMessage,omitempty"`
	Mode         string `json:"mode,omitempty"`
}

type FunctionBreakpoint struct {
	Name         string `json:"name"`
	Condition    string `json:"condition,omitempty"`
	HitCondition string `json:"hitCondition,omitempty"`
}

type DataBreakpoint struct {
	DataID       string                   `json:"dataId"`
	AccessType   DataBreakpointAccessType `json:"accessType,omitempty"`
	Condition    string                   `json:"condition,omitempty"`
	HitCondition string                   `json:"hitCondition,omitempty"`
}

type InstructionBreakpoint struct {
	InstructionReference string `json:"instructionReference"`
	Offset               int    `json:"offset,omitempty"`
	Condition            string `json:"condition,omitempty"`
	HitCondition         string `json:"hitCondition,omitempty"`
	Mode                 string `json:"mode,omitempty"`
}

// Breakpoint is the adapter's view of a breakpoint set by the client.
type Breakpoint struct {
	ID                   int                     `json:"id,omitempty" dap:"handle"`
	Verified             bool                    `json:"verified"`
	Message              string                  `json:"message,omitempty"`
	Source               *Source                 `json:"source,omitempty"`
	Line                 int                     `json:"line,omitempty"`
	Column               int                     `json:"column,omitempty"`
	EndLine              int                     `json:"endLine,omitempty"`
	EndColumn            int                     `json:"endColumn,omitempty"`
	InstructionReference string                  `json:"instructionReference,omitempty"`
	Offset               int                     `json:"offset,omitempty"`
	Reason               BreakpointFailureReason `json:"reason,omitempty"`
}

type StepInTarget struct {
	ID        int    `json:"id" dap:"handle"`
	Label     string `json:"label"`
	Line      int    `json:"line,omitempty"`
	Column    int    `json:"column,omitempty"`
	EndLine   int    `json:"endLine,omitempty"`
	EndColumn int    `json:"endColumn,omitempty"`
}

type GotoTarget struct {
	ID                          int    `json:"id" dap:"handle"`
	Label                       string `json:"label"`
	Line                        int    `json:"line"`
	Column                      int    `json:"column,omitempty"`
	EndLine                     int    `json:"endLine,omitempty"`
	EndColumn                   int    `json:"endColumn,omitempty"`
	InstructionPointerReference string `json:"instructionPointerReference,omitempty"`
}

type CompletionItem struct {
	Label           string             `json:"label"`
	Text            string             `json:"text,omitempty"`
	SortText        string             `json:"sortText,omitempty"`
	Detail          string             `json:"detail,omitempty"`
	Type            CompletionItemType `json:"type,omitempty"`
	Start           *int               `json:"start,omitempty"`
	Length          *int               `json:"length,omitempty"`
	SelectionStart  *int               `json:"selectionStart,omitempty"`
	SelectionLength *int               `json:"selectionLength,omitempty"`
}

type Checksum struct {
	Algorithm ChecksumAlgorithm `json:"algorithm"`
	Checksum  string            `json:"checksum"`
}

type ValueFormat struct {
	Hex bool `json:"hex,omitempty"`
}

// StackFrameFormat extends ValueFormat with stack trace rendering options.
type StackFrameFormat struct {
	Hex             bool `json:"hex,omitempty"`
	Parameters      bool `json:"parameters,omitempty"`
	ParameterTypes  bool `json:"parameterTypes,omitempty"`
	ParameterNames  bool `json:"parameterNames,omitempty"`
	ParameterValues bool `json:"parameterValues,omitempty"`
	Line            bool `json:"line,omitempty"`
	Module          bool `json:"module,omitempty"`
	IncludeAll      bool `json:"includeAll,omitempty"`
}

type ExceptionFilterOptions struct {
	FilterID  string `json:"filterId"`
	Condition string `json:"condition,omitempty"`
	Mode      string `json:"mode,omitempty"`
}

type ExceptionOptions struct {
	Path      []ExceptionPathSegment `json:"path,omitempty"`
	BreakMode ExceptionBreakMode     `json:"breakMode"`
}

type ExceptionPathSegment struct {
	Negate bool     `json:"negate,omitempty"`
	Names  []string `json:"names"`
}

type ExceptionDetails struct {
	Message        string             `json:"message,omitempty"`
	TypeName       string             `json:"typeName,omitempty"`
	FullTypeName   string             `json:"fullTypeName,omitempty"`
	EvaluateName   string             `json:"evaluateName,omitempty"`
	StackTrace     string             `json:"stackTrace,omitempty"`
	InnerException []ExceptionDetails `json:"innerException,omitempty"`
}

type DisassembledInstruction struct {
	Address          string                      `json:"address"`
	InstructionBytes string                      `json:"instructionBytes,omitempty"`
	Instruction      string                      `json:"instruction"`
	Symbol           string                      `json:"symbol,omitempty"`
	Location         *Source                     `json:"location,omitempty"`
	Line             int                         `json:"line,omitempty"`
	Column           int                         `json:"column,omitempty"`
	EndLine          int                         `json:"endLine,omitempty"`
	EndColumn        int                         `json:"endColumn,omitempty"`
	PresentationHint InstructionPresentationHint `json:"presentationHint,omitempty"`
}
