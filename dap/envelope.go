// Package dap defines the Debug Adapter Protocol message catalog and its
// JSON wire codec.
//
// Every message is an Envelope: a sequence number plus exactly one Request,
// Response or Event. Requests and events are closed unions keyed by their
// command and event names; responses branch on the success flag before the
// rest of the object is interpreted.
//
// Codec values hold no mutable state and are safe for concurrent use.
package dap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// MessageType is the value of the envelope "type" discriminator.
type MessageType string

const (
	TypeRequest  MessageType = "request"
	TypeResponse MessageType = "response"
	TypeEvent    MessageType = "event"
)

// DefaultMaxDepth bounds object/array nesting accepted by Decode.
const DefaultMaxDepth = 64

// Message is implemented by every request variant, *Response and every event
// variant.
type Message interface {
	MessageType() MessageType
	isMessage()
}

// Envelope is one protocol message. Seq is assigned by the sender.
type Envelope struct {
	Seq     uint64
	Message Message
}

// Codec decodes and encodes envelopes.
type Codec struct {
	// MaxDepth limits nesting of decoded payloads; zero means DefaultMaxDepth.
	MaxDepth int
	// CheckHandles makes Encode reject reference handles outside
	// [0, MaxHandle].
	CheckHandles bool
}

// NewCodec returns a codec with the default depth limit and handle checks on.
func NewCodec() Codec {
	return Codec{MaxDepth: DefaultMaxDepth, CheckHandles: true}
}

func (c Codec) maxDepth() int {
	if c.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return c.MaxDepth
}

// Decode decodes one message using NewCodec().
func Decode(data []byte) (*Envelope, error) {
	return NewCodec().Decode(data)
}

// Encode encodes one message using NewCodec().
func Encode(env *Envelope) ([]byte, error) {
	return NewCodec().Encode(env)
}

// Decode parses data as a single envelope.
func (c Codec) Decode(data []byte) (*Envelope, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, &MalformedEnvelopeError{Reason: "not a JSON object", Err: err}
	}
	if obj == nil {
		return nil, &MalformedEnvelopeError{Reason: "not a JSON object"}
	}

	seqRaw, ok := obj["seq"]
	if !ok {
		return nil, &MalformedEnvelopeError{Reason: "missing seq"}
	}
	var seq uint64
	if isNull(seqRaw) {
		return nil, &MalformedEnvelopeError{Reason: "seq must be a non-negative integer"}
	}
	if err := json.Unmarshal(seqRaw, &seq); err != nil {
		return nil, &MalformedEnvelopeError{Reason: "seq must be a non-negative integer", Err: err}
	}

	typeRaw, ok := obj["type"]
	if !ok {
		return nil, &MalformedEnvelopeError{Reason: "missing type"}
	}
	var typ string
	if err := json.Unmarshal(typeRaw, &typ); err != nil {
		return nil, &MalformedEnvelopeError{Reason: "type must be a string", Err: err}
	}

	var (
		msg Message
		err error
	)
	switch MessageType(typ) {
	case TypeRequest:
		msg, err = c.decodeRequest(obj)
	case TypeResponse:
		msg, err = c.decodeResponse(obj)
	case TypeEvent:
		msg, err = c.decodeEvent(obj)
	default:
		return nil, &MalformedEnvelopeError{Reason: fmt.Sprintf("unknown type %q", typ)}
	}
	if err != nil {
		return nil, err
	}
	return &Envelope{Seq: seq, Message: msg}, nil
}

// Encode writes env as a JSON object: seq, type, then the fields of the
// message variant in catalog order.
func (c Codec) Encode(env *Envelope) ([]byte, error) {
	if env == nil || env.Message == nil || isNilPointer(env.Message) {
		return nil, fmt.Errorf("encoding envelope: no message")
	}

	var w objectWriter
	if err := w.field("seq", env.Seq); err != nil {
		return nil, err
	}
	if err := w.field("type", env.Message.MessageType()); err != nil {
		return nil, err
	}

	var err error
	switch m := env.Message.(type) {
	case Request:
		err = c.encodeRequest(&w, m)
	case *Response:
		err = c.encodeResponse(&w, m)
	case Event:
		err = c.encodeEvent(&w, m)
	default:
		err = fmt.Errorf("encoding envelope: unsupported message %T", env.Message)
	}
	if err != nil {
		return nil, err
	}
	return w.bytes(), nil
}

func (c Codec) encodePayload(w *objectWriter, name string, v any) error {
	rv := reflect.ValueOf(v)
	if c.CheckHandles {
		if err := checkHandles(rv, name); err != nil {
			return err
		}
	}
	return w.field(name, withEmptyCollections(rv).Interface())
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// objectWriter emits a JSON object with fields in call order.
type objectWriter struct {
	buf bytes.Buffer
	n   int
}

func (w *objectWriter) field(name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	if w.n == 0 {
		w.buf.WriteByte('{')
	} else {
		w.buf.WriteByte(',')
	}
	key, _ := json.Marshal(name)
	w.buf.Write(key)
	w.buf.WriteByte(':')
	w.buf.Write(raw)
	w.n++
	return nil
}

func (w *objectWriter) bytes() []byte {
	if w.n == 0 {
		return []byte("{}")
	}
	out := append([]byte(nil), w.buf.Bytes()...)
	return append(out, '}')
}

// readString reads a required string field from a decoded object.
func readString(obj map[string]json.RawMessage, name string) (string, error) {
	raw, ok := obj[name]
	if !ok {
		return "", &MissingFieldError{Path: name}
	}
	var s string
	if isNull(raw) {
		return "", &InvalidTypeError{Path: name, Want: "string"}
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", &InvalidTypeError{Path: name, Want: "string", Err: err}
	}
	return s, nil
}

func readBool(obj map[string]json.RawMessage, name string) (bool, error) {
	raw, ok := obj[name]
	if !ok {
		return false, &MissingFieldError{Path: name}
	}
	var b bool
	if isNull(raw) {
		return false, &InvalidTypeError{Path: name, Want: "bool"}
	}
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, &InvalidTypeError{Path: name, Want: "bool", Err: err}
	}
	return b, nil
}

func readUint64(obj map[string]json.RawMessage, name string) (uint64, error) {
	raw, ok := obj[name]
	if !ok {
		return 0, &MissingFieldError{Path: name}
	}
	var n uint64
	if isNull(raw) {
		return 0, &InvalidTypeError{Path: name, Want: "uint64"}
	}
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, &InvalidTypeError{Path: name, Want: "uint64", Err: err}
	}
	return n, nil
}
