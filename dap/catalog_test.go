package dap

import (
	"errors"
	"reflect"
	"testing"
)

func TestCatalogsAreClosedAndConsistent(t *testing.T) {
	commands := RequestCommands()
	if len(commands) != 45 {
		t.Fatalf("RequestCommands() len = %d, want 45", len(commands))
	}
	if got := ResponseCommands(); !reflect.DeepEqual(got, commands) {
		t.Fatalf("ResponseCommands() = %v, want %v", got, commands)
	}
	for _, cmd := range commands {
		req := NewRequest(cmd)
		if req == nil || req.Command() != cmd {
			t.Fatalf("NewRequest(%q) = %#v", cmd, req)
		}
		if req.MessageType() != TypeRequest {
			t.Fatalf("NewRequest(%q).MessageType() = %q", cmd, req.MessageType())
		}
		res := NewSuccessResponse(cmd)
		if res == nil || res.Command() != cmd {
			t.Fatalf("NewSuccessResponse(%q) = %#v", cmd, res)
		}
	}

	names := EventNames()
	if len(names) != 17 {
		t.Fatalf("EventNames() len = %d, want 17", len(names))
	}
	for _, name := range names {
		ev := NewEvent(name)
		if ev == nil || ev.Event() != name || ev.MessageType() != TypeEvent {
			t.Fatalf("NewEvent(%q) = %#v", name, ev)
		}
	}

	if NewRequest("Launch") != nil || NewEvent("Stopped") != nil || NewSuccessResponse("") != nil {
		t.Fatal("catalog lookup must be exact")
	}
}

func TestHasArguments(t *testing.T) {
	bare := map[string]bool{
		CommandConfigurationDone: true,
		CommandThreads:           true,
		CommandLoadedSources:     true,
	}
	for _, cmd := range RequestCommands() {
		if got := HasArguments(cmd); got == bare[cmd] {
			t.Errorf("HasArguments(%q) = %v", cmd, got)
		}
	}
	if HasArguments("nope") {
		t.Error(`HasArguments("nope") = true`)
	}
}

func TestErrorKindAndPath(t *testing.T) {
	tests := []struct {
		err      error
		wantKind string
		wantPath string
	}{
		{err: &MalformedEnvelopeError{Reason: "missing seq"}, wantKind: "malformed_envelope"},
		{err: &UnknownCommandError{Command: "x"}, wantKind: "unknown_command"},
		{err: &UnknownEventError{Event: "x"}, wantKind: "unknown_event"},
		{err: &MissingFieldError{Path: "arguments.line"}, wantKind: "missing_field", wantPath: "arguments.line"},
		{err: &InvalidTypeError{Path: "body", Want: "object"}, wantKind: "invalid_type", wantPath: "body"},
		{err: &HandleRangeError{Path: "body.threadId", Value: -1}, wantKind: "handle_range", wantPath: "body.threadId"},
		{err: errors.New("boom"), wantKind: "internal"},
	}
	for _, tc := range tests {
		if got := ErrorKind(tc.err); got != tc.wantKind {
			t.Errorf("ErrorKind(%v) = %q, want %q", tc.err, got, tc.wantKind)
		}
		if got := ErrorPath(tc.err); got != tc.wantPath {
			t.Errorf("ErrorPath(%v) = %q, want %q", tc.err, got, tc.wantPath)
		}
	}
	if ErrorKind(nil) != "" {
		t.Error("ErrorKind(nil) != \"\"")
	}
}
