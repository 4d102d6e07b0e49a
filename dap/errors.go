package dap

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is. Every typed decode error below matches
// exactly one of them.
var (
	ErrMalformedEnvelope = errors.New("malformed envelope")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrUnknownEvent      = errors.New("unknown event")
	ErrMissingField      = errors.New("missing field")
	ErrInvalidType       = errors.New("invalid type")
	ErrHandleRange       = errors.New("handle out of range")
	ErrTooDeep           = errors.New("nesting too deep")
)

// MalformedEnvelopeError reports a top-level object whose seq or type field
// is missing or has the wrong shape. The frame should be treated as corrupt.
type MalformedEnvelopeError struct {
	Reason string
	Err    error
}

func (e *MalformedEnvelopeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed envelope: %s: %v", e.Reason, e.Err)
	}
	return "malformed envelope: " + e.Reason
}

func (e *MalformedEnvelopeError) Is(target error) bool { return target == ErrMalformedEnvelope }
func (e *MalformedEnvelopeError) Unwrap() error        { return e.Err }

// UnknownCommandError reports a request or success response whose command
// is not in the catalog.
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Command)
}

func (e *UnknownCommandError) Is(target error) bool { return target == ErrUnknownCommand }

// UnknownEventError reports an event tag that is not in the catalog.
type UnknownEventError struct {
	Event string
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("unknown event %q", e.Event)
}

func (e *UnknownEventError) Is(target error) bool { return target == ErrUnknownEvent }

// MissingFieldError reports a required field absent from an object.
// Path is dotted from the envelope root, e.g. "arguments.source.name".
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Path)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// InvalidTypeError reports a field that is present with the wrong kind.
type InvalidTypeError struct {
	Path string
	Want string
	Err  error
}

func (e *InvalidTypeError) Error() string {
	msg := fmt.Sprintf("invalid type at %q", e.Path)
	if e.Path == "" {
		msg = "invalid type"
	}
	if e.Want != "" {
		msg += ": want " + e.Want
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidTypeError) Is(target error) bool { return target == ErrInvalidType }
func (e *InvalidTypeError) Unwrap() error        { return e.Err }

// HandleRangeError reports an outgoing reference handle outside
// [0, MaxHandle].
type HandleRangeError struct {
	Path  string
	Value int64
}

func (e *HandleRangeError) Error() string {
	return fmt.Sprintf("handle %q = %d out of range [0, %d]", e.Path, e.Value, MaxHandle)
}

func (e *HandleRangeError) Is(target error) bool { return target == ErrHandleRange }

// ErrorPath returns the dotted field path carried by err, or "" when err does
// not point at a specific field.
func ErrorPath(err error) string {
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return missing.Path
	}
	var invalid *InvalidTypeError
	if errors.As(err, &invalid) {
		return invalid.Path
	}
	var handle *HandleRangeError
	if errors.As(err, &handle) {
		return handle.Path
	}
	return ""
}

// ErrorKind names the taxonomy class of err for reporting.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedEnvelope):
		return "malformed_envelope"
	case errors.Is(err, ErrUnknownCommand):
		return "unknown_command"
	case errors.Is(err, ErrUnknownEvent):
		return "unknown_event"
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrInvalidType):
		return "invalid_type"
	case errors.Is(err, ErrHandleRange):
		return "handle_range"
	default:
		return "internal"
	}
}
