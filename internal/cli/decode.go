package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/lydakis/dapx/dap"
	"github.com/lydakis/dapx/internal/render"
	"github.com/lydakis/dapx/internal/term"
)

type messageArgs struct {
	input   string
	verbose bool
	compact bool
	pretty  bool
	help    bool
}

func parseMessageArgs(args []string, allowLayout bool) (*messageArgs, error) {
	parsed := &messageArgs{}
	afterSeparator := false
	for _, arg := range args {
		if !afterSeparator {
			switch {
			case arg == "--":
				afterSeparator = true
				continue
			case arg == "-h" || arg == "--help":
				parsed.help = true
				continue
			case !allowLayout && (arg == "-v" || arg == "--verbose"):
				parsed.verbose = true
				continue
			case allowLayout && arg == "--compact":
				parsed.compact = true
				continue
			case allowLayout && arg == "--pretty":
				parsed.pretty = true
				continue
			case arg != "-" && strings.HasPrefix(arg, "-"):
				return nil, fmt.Errorf("unknown flag: %s", arg)
			}
		}
		if parsed.input != "" {
			return nil, fmt.Errorf("unexpected positional argument: %s", arg)
		}
		parsed.input = arg
	}
	if parsed.compact && parsed.pretty {
		return nil, fmt.Errorf("--compact and --pretty are mutually exclusive")
	}
	return parsed, nil
}

func runDecodeCommand(e *cmdEnv, args []string) int {
	parsed, err := parseMessageArgs(args, false)
	if err != nil {
		fmt.Fprintf(e.stderr, "dapx: decode: %v\n", err)
		return ExitUsageErr
	}
	if parsed.help {
		printDecodeHelp(e.stdout)
		return ExitOK
	}

	inspect := e.codec
	inspect.CheckHandles = false
	return eachMessage(e, inspect, parsed.input, func(index int, env *dap.Envelope, _ []byte) error {
		if !parsed.verbose {
			_, err := fmt.Fprintln(e.stdout, render.Describe(env))
			return err
		}
		text, err := render.Verbose(env, e.cfg.Indent)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(e.stdout, text)
		return err
	})
}

func runNormalizeCommand(e *cmdEnv, args []string) int {
	parsed, err := parseMessageArgs(args, true)
	if err != nil {
		fmt.Fprintf(e.stderr, "dapx: normalize: %v\n", err)
		return ExitUsageErr
	}
	if parsed.help {
		printNormalizeHelp(e.stdout)
		return ExitOK
	}

	opts := layoutOptions(e, parsed.compact, parsed.pretty)
	return eachMessage(e, e.codec, parsed.input, func(index int, _ *dap.Envelope, data []byte) error {
		out, err := render.JSON(data, opts)
		if err != nil {
			return err
		}
		_, err = e.stdout.Write(out)
		return err
	})
}

// layoutOptions resolves JSON layout: flags first, then the pretty setting,
// then whether stdout is a terminal.
func layoutOptions(e *cmdEnv, compact, pretty bool) render.Options {
	opts := render.Options{Indent: e.cfg.Indent}
	switch {
	case compact:
	case pretty:
		opts.Pretty = true
	case e.cfg.Pretty != nil:
		opts.Pretty = *e.cfg.Pretty
	default:
		opts.Pretty = term.IsTerminal(e.stdout)
	}
	return opts
}

// eachMessage decodes and re-encodes every message in the input with codec
// and passes both forms to fn. It stops at the first failure.
func eachMessage(e *cmdEnv, codec dap.Codec, input string, fn func(index int, env *dap.Envelope, data []byte) error) int {
	r, closeInput, err := openInput(e, input)
	if err != nil {
		fmt.Fprintf(e.stderr, "dapx: %v\n", err)
		return ExitUsageErr
	}
	defer closeInput()

	code := ExitOK
	err = render.Messages(r, func(index int, raw []byte) error {
		env, err := codec.Decode(raw)
		if err == nil {
			var data []byte
			if data, err = codec.Encode(env); err == nil {
				e.logger.WithField("message", index).Debug(render.Describe(env).String())
				if err := fn(index, env, data); err != nil {
					code = ExitInternal
					return err
				}
				return nil
			}
		}
		code = ExitCodecErr
		e.logger.WithField("message", index).WithField("kind", dap.ErrorKind(err)).Debug("Message rejected")
		return fmt.Errorf("message %d: %w", index, err)
	})
	if err == nil {
		return ExitOK
	}

	fmt.Fprintf(e.stderr, "dapx: %v\n", err)
	if path := dap.ErrorPath(err); path != "" {
		fmt.Fprintf(e.stderr, "dapx: at %s\n", path)
	}
	if code == ExitOK {
		return ExitCodecErr
	}
	return code
}

func printDecodeHelp(out io.Writer) {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  dapx decode [FILE|-] [--verbose]")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Decode each message and print one summary line per message,")
	fmt.Fprintln(out, "for example \"#1 request initialize\".")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Flags:")
	fmt.Fprintln(out, "  --verbose, -v    Also print the decoded value")
	fmt.Fprintln(out, "  --help, -h       Show this help output")
}

func printNormalizeHelp(out io.Writer) {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  dapx normalize [FILE|-] [--compact|--pretty]")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Decode each message and re-encode it with defaults elided and fields")
	fmt.Fprintln(out, "in canonical order. Output is indented when stdout is a terminal.")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Flags:")
	fmt.Fprintln(out, "  --compact        One message per line")
	fmt.Fprintln(out, "  --pretty         Indent output")
	fmt.Fprintln(out, "  --help, -h       Show this help output")
}
