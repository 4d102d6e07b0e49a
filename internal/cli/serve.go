package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lydakis/dapx/internal/httpapi"
	"github.com/lydakis/dapx/internal/mcpserver"
)

// signalContext is replaced in tests.
var signalContext = func() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func parseServeArgs(args []string) (addr string, help bool, err error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			help = true
		case strings.HasPrefix(arg, "--addr="):
			addr = strings.TrimSpace(strings.TrimPrefix(arg, "--addr="))
			if addr == "" {
				return "", false, fmt.Errorf("missing value for --addr")
			}
		case arg == "--addr":
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				return "", false, fmt.Errorf("missing value for --addr")
			}
			i++
			addr = strings.TrimSpace(args[i])
		default:
			return "", false, fmt.Errorf("unexpected argument: %s", arg)
		}
	}
	return addr, help, nil
}

func runServeCommand(e *cmdEnv, args []string) int {
	addr, help, err := parseServeArgs(args)
	if err != nil {
		fmt.Fprintf(e.stderr, "dapx: serve: %v\n", err)
		return ExitUsageErr
	}
	if help {
		printServeHelp(e.stdout)
		return ExitOK
	}
	if addr == "" {
		addr = e.cfg.Serve.Addr
	}

	ctx, stop := signalContext()
	defer stop()

	srv := httpapi.NewServer(e.codec, e.logger, httpapi.Options{
		BodyLimit:       e.cfg.Serve.BodyLimit,
		ShutdownTimeout: e.cfg.Serve.ShutdownTimeoutDuration(),
	})
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		fmt.Fprintf(e.stderr, "dapx: serve: %v\n", err)
		return ExitInternal
	}
	return ExitOK
}

func runMCPCommand(e *cmdEnv, args []string) int {
	if len(args) > 0 {
		if args[0] == "-h" || args[0] == "--help" {
			printMCPHelp(e.stdout)
			return ExitOK
		}
		fmt.Fprintf(e.stderr, "dapx: mcp: unexpected argument: %s\n", args[0])
		return ExitUsageErr
	}

	ctx, stop := signalContext()
	defer stop()

	s := mcpserver.New(e.codec, buildVersion, e.cfg.Indent, e.logger)
	e.logger.Info("Serving MCP over stdio")
	if err := mcpserver.ServeStdio(ctx, s, e.stdin, e.stdout, e.logger); err != nil && ctx.Err() == nil {
		fmt.Fprintf(e.stderr, "dapx: mcp: %v\n", err)
		return ExitInternal
	}
	return ExitOK
}

func printServeHelp(out io.Writer) {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  dapx serve [--addr ADDR]")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Serve the codec over HTTP until interrupted:")
	fmt.Fprintln(out, "  POST /v1/decode      summary and normalized message, or 422 with error kind and path")
	fmt.Fprintln(out, "  POST /v1/normalize   normalized message")
	fmt.Fprintln(out, "  GET  /v1/catalog     request commands and event names")
	fmt.Fprintln(out, "  GET  /healthz")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Flags:")
	fmt.Fprintln(out, "  --addr ADDR      Listen address (default from serve.addr)")
	fmt.Fprintln(out, "  --help, -h       Show this help output")
}

func printMCPHelp(out io.Writer) {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  dapx mcp")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Serve the dap_decode, dap_normalize and dap_catalog tools over MCP stdio.")
}
