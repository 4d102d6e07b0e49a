package dap

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeReportsDottedPaths(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKind string
		wantPath string
	}{
		{
			name:     "missing nested array field",
			raw:      `{"seq":1,"type":"request","command":"setBreakpoints","arguments":{"source":{},"breakpoints":[{"line":1},{"column":2}]}}`,
			wantKind: "missing_field",
			wantPath: "arguments.breakpoints[1].line",
		},
		{
			name:     "missing nested object",
			raw:      `{"seq":1,"type":"request","command":"setBreakpoints","arguments":{}}`,
			wantKind: "missing_field",
			wantPath: "arguments.source",
		},
		{
			name:     "missing required initialize field",
			raw:      `{"seq":1,"type":"request","command":"initialize","arguments":{"clientID":"vscode"}}`,
			wantKind: "missing_field",
			wantPath: "arguments.adapterID",
		},
		{
			name:     "missing event body field",
			raw:      `{"seq":1,"type":"event","event":"stopped","body":{"threadId":1}}`,
			wantKind: "missing_field",
			wantPath: "body.reason",
		},
		{
			name:     "missing field in recursive source",
			raw:      `{"seq":1,"type":"request","command":"gotoTargets","arguments":{"source":{"checksums":[{"algorithm":"MD5"}]},"line":1}}`,
			wantKind: "missing_field",
			wantPath: "arguments.source.checksums[0].checksum",
		},
		{
			name:     "scalar of wrong kind",
			raw:      `{"seq":1,"type":"request","command":"continue","arguments":{"threadId":"one"}}`,
			wantKind: "invalid_type",
			wantPath: "arguments.threadId",
		},
		{
			name:     "arguments not an object",
			raw:      `{"seq":1,"type":"request","command":"continue","arguments":[1]}`,
			wantKind: "invalid_type",
			wantPath: "arguments",
		},
		{
			name:     "array field holding an object",
			raw:      `{"seq":1,"type":"response","request_seq":1,"success":true,"command":"threads","body":{"threads":{"id":1}}}`,
			wantKind: "invalid_type",
			wantPath: "body.threads",
		},
		{
			name:     "non-string command",
			raw:      `{"seq":1,"type":"request","command":7}`,
			wantKind: "invalid_type",
			wantPath: "command",
		},
		{
			name:     "missing command",
			raw:      `{"seq":1,"type":"request","arguments":{}}`,
			wantKind: "missing_field",
			wantPath: "command",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.raw))
			if err == nil {
				t.Fatal("Decode() error = nil")
			}
			if got := ErrorKind(err); got != tc.wantKind {
				t.Fatalf("ErrorKind() = %q, want %q (err = %v)", got, tc.wantKind, err)
			}
			if got := ErrorPath(err); got != tc.wantPath {
				t.Fatalf("ErrorPath() = %q, want %q (err = %v)", got, tc.wantPath, err)
			}
		})
	}
}

func TestNullCountsAsPresentForNullableField(t *testing.T) {
	raw := `{"seq":1,"type":"response","request_seq":1,"success":true,"command":"dataBreakpointInfo","body":{"dataId":null,"description":"not available"}}`
	env, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	body := env.Message.(*Response).Result.(*DataBreakpointInfoResponse).Body
	if body.DataID != nil || body.Description != "not available" {
		t.Fatalf("body = %#v", body)
	}

	_, err = Decode([]byte(`{"seq":1,"type":"response","request_seq":1,"success":true,"command":"dataBreakpointInfo","body":{"description":"x"}}`))
	if got := ErrorPath(err); got != "body.dataId" {
		t.Fatalf("ErrorPath() = %q, want body.dataId", got)
	}
}

func TestRequiredFieldsRejectNull(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantPath string
	}{
		{
			name:     "string",
			raw:      `{"seq":1,"type":"request","command":"initialize","arguments":{"adapterID":null}}`,
			wantPath: "arguments.adapterID",
		},
		{
			name:     "integer",
			raw:      `{"seq":1,"type":"request","command":"continue","arguments":{"threadId":null}}`,
			wantPath: "arguments.threadId",
		},
		{
			name:     "object",
			raw:      `{"seq":1,"type":"request","command":"setBreakpoints","arguments":{"source":null}}`,
			wantPath: "arguments.source",
		},
		{
			name:     "array",
			raw:      `{"seq":1,"type":"response","request_seq":1,"success":true,"command":"threads","body":{"threads":null}}`,
			wantPath: "body.threads",
		},
		{
			name:     "array element",
			raw:      `{"seq":1,"type":"response","request_seq":1,"success":true,"command":"threads","body":{"threads":[{"id":1,"name":"main"},null]}}`,
			wantPath: "body.threads[1]",
		},
		{
			name:     "module id",
			raw:      `{"seq":1,"type":"event","event":"module","body":{"reason":"new","module":{"id":null,"name":"m"}}}`,
			wantPath: "body.module.id",
		},
		{
			name:     "map",
			raw:      `{"seq":1,"type":"request","command":"startDebugging","arguments":{"configuration":null,"request":"launch"}}`,
			wantPath: "arguments.configuration",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.raw))
			var typeErr *InvalidTypeError
			if !errors.As(err, &typeErr) {
				t.Fatalf("Decode() error = %v, want *InvalidTypeError", err)
			}
			if typeErr.Path != tc.wantPath {
				t.Fatalf("Path = %q, want %q", typeErr.Path, tc.wantPath)
			}
			if !strings.HasPrefix(typeErr.Want, "non-null") {
				t.Fatalf("Want = %q, want a non-null expectation", typeErr.Want)
			}
		})
	}
}

func TestEncodeWritesEmptyCollectionsForRequiredFields(t *testing.T) {
	tests := []struct {
		msg  Message
		want string
	}{
		{
			msg:  &Response{RequestSeq: 1, Result: &ThreadsResponse{}},
			want: `{"seq":1,"type":"response","request_seq":1,"success":true,"command":"threads","body":{"threads":[]}}`,
		},
		{
			msg:  &Response{RequestSeq: 1, Result: &StackTraceResponse{}},
			want: `{"seq":1,"type":"response","request_seq":1,"success":true,"command":"stackTrace","body":{"stackFrames":[]}}`,
		},
		{
			msg:  &SetFunctionBreakpointsRequest{},
			want: `{"seq":1,"type":"request","command":"setFunctionBreakpoints","arguments":{"breakpoints":[]}}`,
		},
		{
			msg:  &StartDebuggingRequest{Arguments: StartDebuggingRequestArguments{Request: StartDebuggingLaunch}},
			want: `{"seq":1,"type":"request","command":"startDebugging","arguments":{"configuration":{},"request":"launch"}}`,
		},
	}
	for _, tc := range tests {
		got, err := Encode(&Envelope{Seq: 1, Message: tc.msg})
		if err != nil {
			t.Fatalf("Encode(%T) error = %v", tc.msg, err)
		}
		if string(got) != tc.want {
			t.Fatalf("Encode(%T) = %s, want %s", tc.msg, got, tc.want)
		}
	}

	res := &ThreadsResponse{}
	if _, err := Encode(&Envelope{Seq: 1, Message: &Response{Result: res}}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if res.Body.Threads != nil {
		t.Fatal("Encode() modified the message it was given")
	}

	nested := &SetExceptionBreakpointsRequest{Arguments: SetExceptionBreakpointsArguments{
		ExceptionOptions: []ExceptionOptions{{Path: []ExceptionPathSegment{{}}, BreakMode: BreakModeAlways}},
	}}
	got, err := Encode(&Envelope{Seq: 1, Message: nested})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(string(got), `"names":[]`) || !strings.Contains(string(got), `"filters":[]`) {
		t.Fatalf("Encode() = %s, want empty names and filters arrays", got)
	}
	if nested.Arguments.ExceptionOptions[0].Path[0].Names != nil {
		t.Fatal("Encode() modified a nested element of the message it was given")
	}
}

func TestEncodeRejectsNilVariants(t *testing.T) {
	tests := []Message{
		(*InitializeRequest)(nil),
		(*StoppedEvent)(nil),
		(*Response)(nil),
		&Response{RequestSeq: 1, Result: (*ThreadsResponse)(nil)},
		&Response{RequestSeq: 1, Result: (*ErrorResponse)(nil)},
		&Response{RequestSeq: 1},
	}
	for _, msg := range tests {
		if _, err := Encode(&Envelope{Seq: 1, Message: msg}); err == nil {
			t.Fatalf("Encode(%#v) error = nil", msg)
		}
	}
}

func nestedSources(levels int) string {
	var b strings.Builder
	for i := 0; i < levels; i++ {
		b.WriteString(`{"name":"s","sources":[`)
	}
	b.WriteString(`{"name":"leaf"}`)
	for i := 0; i < levels; i++ {
		b.WriteString(`]}`)
	}
	return b.String()
}

func TestDecodeRejectsExcessiveNesting(t *testing.T) {
	raw := `{"seq":1,"type":"event","event":"loadedSource","body":{"reason":"new","source":` + nestedSources(40) + `}}`

	_, err := Decode([]byte(raw))
	if !errors.Is(err, ErrTooDeep) {
		t.Fatalf("Decode() error = %v, want ErrTooDeep", err)
	}
	if !errors.Is(err, ErrInvalidType) {
		t.Fatalf("Decode() error = %v, want it to match ErrInvalidType", err)
	}

	deep := Codec{MaxDepth: 200}
	env, err := deep.Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode() with MaxDepth 200 error = %v", err)
	}
	src := env.Message.(*LoadedSourceEvent).Body.Source
	depth := 0
	for len(src.Sources) > 0 {
		src = src.Sources[0]
		depth++
	}
	if depth != 40 || src.Name != "leaf" {
		t.Fatalf("nesting = %d ending at %q, want 40 ending at leaf", depth, src.Name)
	}

	shallow := Codec{MaxDepth: 2}
	_, err = shallow.Decode([]byte(`{"seq":1,"type":"request","command":"source","arguments":{"source":{"sources":[{}]},"sourceReference":1}}`))
	if !errors.Is(err, ErrTooDeep) {
		t.Fatalf("Decode() with MaxDepth 2 error = %v, want ErrTooDeep", err)
	}
}

func TestEncodeChecksHandleRange(t *testing.T) {
	tests := []struct {
		name     string
		msg      Message
		wantPath string
	}{
		{
			name:     "negative frame id",
			msg:      &ScopesRequest{Arguments: ScopesArguments{FrameID: -1}},
			wantPath: "arguments.frameId",
		},
		{
			name:     "variables reference above max",
			msg:      &Response{RequestSeq: 1, Result: &VariablesResponse{Body: VariablesResponseBody{Variables: []Variable{{Name: "x", VariablesReference: MaxHandle + 1}}}}},
			wantPath: "body.variables[0].variablesReference",
		},
		{
			name:     "optional thread id",
			msg:      &StoppedEvent{Body: StoppedEventBody{Reason: StoppedPause, ThreadID: intPtr(-5)}},
			wantPath: "body.threadId",
		},
		{
			name:     "handle list",
			msg:      &TerminateThreadsRequest{Arguments: TerminateThreadsArguments{ThreadIDs: []int{1, -2}}},
			wantPath: "arguments.threadIds[1]",
		},
		{
			name:     "nested source reference",
			msg:      &SourceRequest{Arguments: SourceArguments{Source: &Source{Sources: []Source{{SourceReference: -1}}}}},
			wantPath: "arguments.source.sources[0].sourceReference",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := &Envelope{Seq: 1, Message: tc.msg}
			_, err := Encode(env)
			var rangeErr *HandleRangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("Encode() error = %v, want *HandleRangeError", err)
			}
			if rangeErr.Path != tc.wantPath {
				t.Fatalf("Path = %q, want %q", rangeErr.Path, tc.wantPath)
			}

			lax := Codec{CheckHandles: false}
			if _, err := lax.Encode(env); err != nil {
				t.Fatalf("Encode() without handle checks error = %v", err)
			}
		})
	}

	if _, err := Encode(&Envelope{Seq: 1, Message: &ScopesRequest{Arguments: ScopesArguments{FrameID: MaxHandle}}}); err != nil {
		t.Fatalf("Encode(MaxHandle) error = %v", err)
	}
}

func TestInitializeDefaults(t *testing.T) {
	env, err := Decode([]byte(`{"seq":1,"type":"request","command":"initialize","arguments":{"adapterID":"go"}}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	args := env.Message.(*InitializeRequest).Arguments
	if want := NewInitializeRequestArguments("go"); !reflect.DeepEqual(args, want) {
		t.Fatalf("arguments = %#v, want %#v", args, want)
	}

	out, err := Encode(env)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := `{"seq":1,"type":"request","command":"initialize","arguments":{"adapterID":"go","linesStartAt1":true,"columnsStartAt1":true}}`
	if string(out) != want {
		t.Fatalf("Encode() = %s, want %s", out, want)
	}

	args.LinesStartAt1 = false
	args.PathFormat = PathFormatURI
	out, err = Encode(&Envelope{Seq: 1, Message: &InitializeRequest{Arguments: args}})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want = `{"seq":1,"type":"request","command":"initialize","arguments":{"adapterID":"go","linesStartAt1":false,"columnsStartAt1":true,"pathFormat":"uri"}}`
	if string(out) != want {
		t.Fatalf("Encode() = %s, want %s", out, want)
	}
}

func TestDefaultValuedOptionalFieldsAreElided(t *testing.T) {
	tests := []struct {
		msg  Message
		want string
	}{
		{
			msg:  &ContinueRequest{Arguments: ContinueArguments{ThreadID: 1}},
			want: `{"seq":1,"type":"request","command":"continue","arguments":{"threadId":1}}`,
		},
		{
			msg:  &OutputEvent{Body: OutputEventBody{Category: OutputConsole, Output: "hi"}},
			want: `{"seq":1,"type":"event","event":"output","body":{"output":"hi"}}`,
		},
		{
			msg:  &Response{RequestSeq: 1, Result: &InitializeResponse{}},
			want: `{"seq":1,"type":"response","request_seq":1,"success":true,"command":"initialize","body":{}}`,
		},
		{
			msg:  &Response{RequestSeq: 1, Result: &ScopesResponse{Body: ScopesResponseBody{Scopes: []Scope{{Name: "Locals", VariablesReference: 3}}}}},
			want: `{"seq":1,"type":"response","request_seq":1,"success":true,"command":"scopes","body":{"scopes":[{"name":"Locals","variablesReference":3,"expensive":false}]}}`,
		},
	}
	for _, tc := range tests {
		got, err := Encode(&Envelope{Seq: 1, Message: tc.msg})
		if err != nil {
			t.Fatalf("Encode(%T) error = %v", tc.msg, err)
		}
		if string(got) != tc.want {
			t.Fatalf("Encode(%T) = %s, want %s", tc.msg, got, tc.want)
		}
	}
}

func TestOutputCategoryDefaultsToConsole(t *testing.T) {
	env, err := Decode([]byte(`{"seq":1,"type":"event","event":"output","body":{"output":"x"}}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got := env.Message.(*OutputEvent).Body.Category; got != OutputConsole {
		t.Fatalf("Category = %q, want console", got)
	}
}

func TestEmptyValuesDecodeAsDefaults(t *testing.T) {
	decodeAgain := func(t *testing.T, msg Message) Message {
		t.Helper()
		data, err := Encode(&Envelope{Seq: 1, Message: msg})
		if err != nil {
			t.Fatalf("Encode(%T) error = %v", msg, err)
		}
		env, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode(%s) error = %v", data, err)
		}
		return env.Message
	}

	initReq := decodeAgain(t, &InitializeRequest{Arguments: InitializeRequestArguments{AdapterID: "go"}}).(*InitializeRequest)
	if initReq.Arguments.PathFormat != PathFormatPath {
		t.Fatalf("PathFormat = %q, want %q", initReq.Arguments.PathFormat, PathFormatPath)
	}

	out := decodeAgain(t, &OutputEvent{Body: OutputEventBody{Output: "x"}}).(*OutputEvent)
	if out.Body.Category != OutputConsole {
		t.Fatalf("Category = %q, want %q", out.Body.Category, OutputConsole)
	}

	res := decodeAgain(t, &Response{RequestSeq: 1, Result: &ErrorResponse{
		Command: "launch",
		Message: "failed",
		Body:    ErrorResponseBody{Error: &ErrorMessage{ID: 1, Format: "x", Variables: map[string]string{}}},
	}}).(*Response)
	if vars := res.Result.(*ErrorResponse).Body.Error.Variables; vars != nil {
		t.Fatalf("Variables = %#v, want nil", vars)
	}
}

func TestOpenEnumerationsDecodeUnknownValues(t *testing.T) {
	env, err := Decode([]byte(`{"seq":1,"type":"event","event":"stopped","body":{"reason":"vendor specific"}}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got := env.Message.(*StoppedEvent).Body.Reason; got != "vendor specific" {
		t.Fatalf("Reason = %q", got)
	}
}

func TestLaunchArgumentsKeepExtras(t *testing.T) {
	raw := `{"seq":2,"type":"request","command":"launch","arguments":{"program":"/bin/app","noDebug":true,"args":["-v"],"__restart":{"n":1}}}`
	env, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	args := env.Message.(*LaunchRequest).Arguments
	if !args.NoDebug || string(args.Restart) != `{"n":1}` {
		t.Fatalf("declared fields = %#v", args)
	}
	wantExtra := map[string]json.RawMessage{
		"program": json.RawMessage(`"/bin/app"`),
		"args":    json.RawMessage(`["-v"]`),
	}
	if !reflect.DeepEqual(args.Extra, wantExtra) {
		t.Fatalf("Extra = %v, want %v", args.Extra, wantExtra)
	}

	out, err := Encode(env)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := `{"seq":2,"type":"request","command":"launch","arguments":{"noDebug":true,"__restart":{"n":1},"args":["-v"],"program":"/bin/app"}}`
	if string(out) != want {
		t.Fatalf("Encode() = %s, want %s", out, want)
	}
}

func TestLaunchDeclaredFieldsWinOverExtras(t *testing.T) {
	args := LaunchRequestArguments{
		NoDebug: true,
		Extra: map[string]json.RawMessage{
			"noDebug": json.RawMessage(`false`),
			"cwd":     json.RawMessage(`"/tmp"`),
		},
	}
	out, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"noDebug":true,"cwd":"/tmp"}`; string(out) != want {
		t.Fatalf("Marshal() = %s, want %s", out, want)
	}

	out, err = json.Marshal(LaunchRequestArguments{Extra: map[string]json.RawMessage{"mode": json.RawMessage(`"debug"`)}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"mode":"debug"}`; string(out) != want {
		t.Fatalf("Marshal() = %s, want %s", out, want)
	}
}

func TestModuleIDKeepsRepresentation(t *testing.T) {
	tests := []struct {
		raw      string
		isString bool
		text     string
	}{
		{raw: `7`, isString: false, text: "7"},
		{raw: `"7"`, isString: true, text: "7"},
		{raw: `"libfoo"`, isString: true, text: "libfoo"},
	}
	for _, tc := range tests {
		var id ModuleID
		if err := json.Unmarshal([]byte(tc.raw), &id); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", tc.raw, err)
		}
		if id.IsString() != tc.isString || id.String() != tc.text {
			t.Fatalf("Unmarshal(%s) = %#v", tc.raw, id)
		}
		out, err := json.Marshal(id)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(out) != tc.raw {
			t.Fatalf("Marshal() = %s, want %s", out, tc.raw)
		}
	}

	var id ModuleID
	if err := json.Unmarshal([]byte(`true`), &id); err == nil {
		t.Fatal("Unmarshal(true) error = nil")
	}
	if n, ok := IntModuleID(3).Int(); !ok || n != 3 {
		t.Fatalf("Int() = %d, %v", n, ok)
	}
	if _, ok := StringModuleID("x").Int(); ok {
		t.Fatal("Int() ok = true for string id")
	}
}
