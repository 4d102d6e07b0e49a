// Package render formats decoded protocol messages for people and tools.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lydakis/dapx/dap"
)

// Summary identifies one message without its payload.
type Summary struct {
	Type       dap.MessageType `json:"type"`
	Seq        uint64          `json:"seq"`
	Tag        string          `json:"tag"`
	RequestSeq *uint64         `json:"request_seq,omitempty"`
	Success    *bool           `json:"success,omitempty"`
	Failure    string          `json:"failure,omitempty"`
}

// Describe summarizes env. Tag is the command for requests and responses and
// the event name for events.
func Describe(env *dap.Envelope) Summary {
	if env == nil || env.Message == nil {
		return Summary{}
	}

	s := Summary{Type: env.Message.MessageType(), Seq: env.Seq}
	switch m := env.Message.(type) {
	case dap.Request:
		s.Tag = m.Command()
	case dap.Event:
		s.Tag = m.Event()
	case *dap.Response:
		s.Tag = m.Command()
		requestSeq := m.RequestSeq
		success := m.Success()
		s.RequestSeq = &requestSeq
		s.Success = &success
		if res, ok := m.Result.(*dap.ErrorResponse); ok {
			s.Failure = res.Message
		}
	}
	return s
}

// String renders the summary line, e.g. "#1 request initialize" or
// "#4 response evaluate (request 3) failed: notStopped".
func (s Summary) String() string {
	var b strings.Builder
	b.WriteString("#")
	b.WriteString(strconv.FormatUint(s.Seq, 10))
	b.WriteString(" ")
	b.WriteString(string(s.Type))
	b.WriteString(" ")
	b.WriteString(s.Tag)
	if s.RequestSeq != nil {
		fmt.Fprintf(&b, " (request %d)", *s.RequestSeq)
	}
	if s.Success != nil {
		if *s.Success {
			b.WriteString(" ok")
		} else {
			b.WriteString(" failed")
			if s.Failure != "" {
				b.WriteString(": ")
				b.WriteString(s.Failure)
			}
		}
	}
	return b.String()
}

// Verbose renders the summary line followed by the typed message value.
func Verbose(env *dap.Envelope, indent string) (string, error) {
	s := Describe(env)
	if env == nil || env.Message == nil {
		return "", errors.New("rendering message: no message")
	}
	value, err := json.MarshalIndent(env.Message, "", indent)
	if err != nil {
		return "", fmt.Errorf("rendering %T: %w", env.Message, err)
	}
	return fmt.Sprintf("%s %T\n%s", s, env.Message, value), nil
}

// Options controls JSON layout.
type Options struct {
	Pretty bool
	Indent string
}

// JSON lays out an encoded message as compact or indented JSON with a
// trailing newline.
func JSON(data []byte, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if opts.Pretty {
		indent := opts.Indent
		if indent == "" {
			indent = "  "
		}
		err = json.Indent(&buf, data, "", indent)
	} else {
		err = json.Compact(&buf, data)
	}
	if err != nil {
		return nil, fmt.Errorf("formatting JSON: %w", err)
	}
	return ensureTrailingNewline(buf.Bytes()), nil
}

// Messages calls fn with each top-level JSON value read from r, numbered
// from 1. Values may be separated by any whitespace.
func Messages(r io.Reader, fn func(index int, raw []byte) error) error {
	dec := json.NewDecoder(r)
	for index := 1; ; index++ {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("message %d: reading JSON: %w", index, err)
		}
		if err := fn(index, raw); err != nil {
			return err
		}
	}
}

func ensureTrailingNewline(data []byte) []byte {
	if len(data) == 0 || data[len(data)-1] == '\n' {
		return data
	}
	return append(data, '\n')
}
