// Package mcpserver exposes the message codec as MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lydakis/dapx/dap"
	"github.com/lydakis/dapx/internal/render"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

const (
	ToolDecode    = "dap_decode"
	ToolNormalize = "dap_normalize"
	ToolCatalog   = "dap_catalog"
)

type decodeOutput struct {
	render.Summary
	Message json.RawMessage `json:"message"`
}

type tools struct {
	codec  dap.Codec
	indent string
	logger *logrus.Logger
}

// New builds the dapx MCP server with its tools registered.
func New(codec dap.Codec, version, indent string, logger *logrus.Logger) *server.MCPServer {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	t := &tools{codec: codec, indent: indent, logger: logger}

	s := server.NewMCPServer("dapx", version, server.WithToolCapabilities(false))
	s.AddTool(mcp.NewTool(ToolDecode,
		mcp.WithDescription("Decode one Debug Adapter Protocol message and summarize it. Decode failures report the error kind and the dotted path of the offending field."),
		mcp.WithString("message", mcp.Required(), mcp.Description("The JSON message, without Content-Length framing")),
	), t.decode)
	s.AddTool(mcp.NewTool(ToolNormalize,
		mcp.WithDescription("Decode a Debug Adapter Protocol message and re-encode it with defaults elided and fields in canonical order."),
		mcp.WithString("message", mcp.Required(), mcp.Description("The JSON message, without Content-Length framing")),
	), t.normalize)
	s.AddTool(mcp.NewTool(ToolCatalog,
		mcp.WithDescription("List the request commands and event names the codec accepts."),
		mcp.WithString("kind", mcp.Description("requests or events; both when omitted")),
	), t.catalog)
	return s
}

// ServeStdio serves s over stdin/stdout until ctx is done or stdin closes.
func ServeStdio(ctx context.Context, s *server.MCPServer, stdin io.Reader, stdout io.Writer, logger *logrus.Logger) error {
	stdio := server.NewStdioServer(s)
	if logger != nil {
		stdio.SetErrorLogger(log.New(logger.WriterLevel(logrus.ErrorLevel), "", 0))
	}
	return stdio.Listen(ctx, stdin, stdout)
}

func (t *tools) decode(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inspect := t.codec
	inspect.CheckHandles = false
	env, data, result := t.roundTrip(request, inspect)
	if result != nil {
		return result, nil
	}
	out, err := json.MarshalIndent(decodeOutput{Summary: render.Describe(env), Message: data}, "", t.indent)
	if err != nil {
		return nil, fmt.Errorf("rendering decode result: %w", err)
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (t *tools) normalize(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_, data, result := t.roundTrip(request, t.codec)
	if result != nil {
		return result, nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (t *tools) catalog(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind := request.GetString("kind", "")
	var names []string
	switch kind {
	case "":
		names = append(dap.RequestCommands(), dap.EventNames()...)
	case "requests":
		names = dap.RequestCommands()
	case "events":
		names = dap.EventNames()
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown catalog kind %q: want requests or events", kind)), nil
	}
	return mcp.NewToolResultText(strings.Join(names, "\n")), nil
}

// roundTrip decodes and re-encodes the message argument with codec. A
// non-nil result carries the tool error to return.
func (t *tools) roundTrip(request mcp.CallToolRequest, codec dap.Codec) (*dap.Envelope, []byte, *mcp.CallToolResult) {
	raw, err := request.RequireString("message")
	if err != nil {
		return nil, nil, mcp.NewToolResultError(err.Error())
	}

	env, err := codec.Decode([]byte(raw))
	if err == nil {
		var data []byte
		data, err = codec.Encode(env)
		if err == nil {
			t.logger.WithFields(logrus.Fields{
				"tool": request.Params.Name,
				"tag":  render.Describe(env).Tag,
			}).Debug("Tool call handled")
			return env, data, nil
		}
	}

	t.logger.WithFields(logrus.Fields{
		"tool": request.Params.Name,
		"kind": dap.ErrorKind(err),
		"path": dap.ErrorPath(err),
	}).Debug("Tool call rejected message")
	return nil, nil, mcp.NewToolResultError(failureText(err))
}

func failureText(err error) string {
	text := dap.ErrorKind(err) + ": " + err.Error()
	if path := dap.ErrorPath(err); path != "" {
		text += " (at " + path + ")"
	}
	return text
}
