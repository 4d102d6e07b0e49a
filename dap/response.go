package dap

import (
	"encoding/json"
	"fmt"
)

// Response answers the request whose seq is RequestSeq. Result is either a
// SuccessResponse variant or *ErrorResponse.
type Response struct {
	RequestSeq uint64
	Result     Result
}

func (*Response) MessageType() MessageType { return TypeResponse }
func (*Response) isMessage()               {}

// Success reports whether the response carries a success result.
func (r *Response) Success() bool {
	_, ok := r.Result.(SuccessResponse)
	return ok
}

// Command returns the command name from whichever arm is populated.
func (r *Response) Command() string {
	switch res := r.Result.(type) {
	case SuccessResponse:
		return res.Command()
	case *ErrorResponse:
		return res.Command
	default:
		return ""
	}
}

// Result is the closed union {SuccessResponse, *ErrorResponse}.
type Result interface {
	isResult()
}

// SuccessResponse is the closed union of success responses, one per request
// command. Acknowledgement-only variants have no body.
type SuccessResponse interface {
	Result
	Command() string
	// body returns a pointer to the payload, or nil for acknowledgements.
	body() any
}

type successResult struct{}

func (successResult) isResult() {}

// ErrorResponse is the failure arm. Command is informational and may be any
// string, including one outside the catalog.
type ErrorResponse struct {
	Command string
	Message string
	Body    ErrorResponseBody
}

func (*ErrorResponse) isResult() {}

type ErrorResponseBody struct {
	Error *ErrorMessage `json:"error,omitempty"`
}

// decodeResponse reads "success" first: the rest of the object is typed
// differently on each arm.
func (c Codec) decodeResponse(obj map[string]json.RawMessage) (*Response, error) {
	success, err := readBool(obj, "success")
	if err != nil {
		return nil, err
	}
	requestSeq, err := readUint64(obj, "request_seq")
	if err != nil {
		return nil, err
	}
	command, err := readString(obj, "command")
	if err != nil {
		return nil, err
	}

	if success {
		res := NewSuccessResponse(command)
		if res == nil {
			return nil, &UnknownCommandError{Command: command}
		}
		if body := res.body(); body != nil {
			if err := c.decodePayload(obj["body"], "body", body); err != nil {
				return nil, err
			}
		}
		return &Response{RequestSeq: requestSeq, Result: res}, nil
	}

	message, err := readString(obj, "message")
	if err != nil {
		return nil, err
	}
	res := &ErrorResponse{Command: command, Message: message}
	if err := c.decodePayload(obj["body"], "body", &res.Body); err != nil {
		return nil, err
	}
	return &Response{RequestSeq: requestSeq, Result: res}, nil
}

func (c Codec) encodeResponse(w *objectWriter, r *Response) error {
	if err := w.field("request_seq", r.RequestSeq); err != nil {
		return err
	}
	if isNilPointer(r.Result) {
		return fmt.Errorf("encoding response: no result")
	}
	switch res := r.Result.(type) {
	case SuccessResponse:
		if err := w.field("success", true); err != nil {
			return err
		}
		if err := w.field("command", res.Command()); err != nil {
			return err
		}
		if body := res.body(); body != nil {
			return c.encodePayload(w, "body", body)
		}
		return nil
	case *ErrorResponse:
		if err := w.field("success", false); err != nil {
			return err
		}
		if err := w.field("command", res.Command); err != nil {
			return err
		}
		if err := w.field("message", res.Message); err != nil {
			return err
		}
		return c.encodePayload(w, "body", &res.Body)
	default:
		return fmt.Errorf("encoding response: unsupported result %T", r.Result)
	}
}
