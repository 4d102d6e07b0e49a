package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lydakis/dapx/dap"
	"github.com/lydakis/dapx/internal/config"
	"github.com/lydakis/dapx/internal/paths"
	"github.com/lydakis/dapx/internal/render"
)

type launchArgs struct {
	name    string
	seq     uint64
	list    bool
	compact bool
	pretty  bool
	help    bool
}

func parseLaunchArgs(args []string) (*launchArgs, error) {
	parsed := &launchArgs{seq: 1}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			parsed.help = true
		case arg == "--list":
			parsed.list = true
		case arg == "--compact":
			parsed.compact = true
		case arg == "--pretty":
			parsed.pretty = true
		case arg == "--seq" || strings.HasPrefix(arg, "--seq="):
			value := strings.TrimPrefix(arg, "--seq=")
			if arg == "--seq" {
				if i+1 >= len(args) {
					return nil, fmt.Errorf("missing value for --seq")
				}
				i++
				value = args[i]
			}
			seq, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid --seq %q: must be a non-negative integer", value)
			}
			parsed.seq = seq
		case strings.HasPrefix(arg, "-"):
			return nil, fmt.Errorf("unknown flag: %s", arg)
		default:
			if parsed.name != "" {
				return nil, fmt.Errorf("unexpected positional argument: %s", arg)
			}
			parsed.name = arg
		}
	}

	if parsed.help || parsed.list {
		return parsed, nil
	}
	if parsed.name == "" {
		return nil, fmt.Errorf("missing configuration name (usage: dapx launch <name>)")
	}
	if parsed.compact && parsed.pretty {
		return nil, fmt.Errorf("--compact and --pretty are mutually exclusive")
	}
	return parsed, nil
}

func runLaunchCommand(e *cmdEnv, args []string) int {
	parsed, err := parseLaunchArgs(args)
	if err != nil {
		fmt.Fprintf(e.stderr, "dapx: launch: %v\n", err)
		return ExitUsageErr
	}
	if parsed.help {
		printLaunchHelp(e.stdout)
		return ExitOK
	}

	launches, lerr := config.LoadLaunchConfigs(e.cfg, paths.WorkingDir(""))
	if lerr != nil {
		e.logger.WithError(lerr).Warn("Failed to load some launch configurations")
	}

	if parsed.list {
		for _, name := range config.LaunchNames(launches) {
			fmt.Fprintln(e.stdout, name)
		}
		return ExitOK
	}

	launch, ok := launches[parsed.name]
	if !ok {
		fmt.Fprintf(e.stderr, "dapx: launch: unknown configuration: %s\n", parsed.name)
		if names := config.LaunchNames(launches); len(names) > 0 {
			fmt.Fprintln(e.stderr, "Available configurations:")
			for _, name := range names {
				fmt.Fprintf(e.stderr, "  %s\n", name)
			}
		}
		return ExitUsageErr
	}

	req, err := launchRequest(e, parsed.name, launch)
	if err != nil {
		fmt.Fprintf(e.stderr, "dapx: launch: %s: %v\n", parsed.name, err)
		return ExitUsageErr
	}

	data, err := e.codec.Encode(&dap.Envelope{Seq: parsed.seq, Message: req})
	if err != nil {
		fmt.Fprintf(e.stderr, "dapx: launch: %s: %v\n", parsed.name, err)
		return ExitCodecErr
	}
	out, err := render.JSON(data, layoutOptions(e, parsed.compact, parsed.pretty))
	if err != nil {
		fmt.Fprintf(e.stderr, "dapx: launch: %v\n", err)
		return ExitInternal
	}
	if _, err := e.stdout.Write(out); err != nil {
		return ExitInternal
	}
	return ExitOK
}

// launchRequest builds the request a client sends for launch. Attach
// arguments only carry __restart, so other attributes are dropped there.
func launchRequest(e *cmdEnv, name string, launch config.LaunchConfig) (dap.Request, error) {
	args, err := launch.Arguments()
	if err != nil {
		return nil, err
	}

	switch launch.Request() {
	case "launch":
		return &dap.LaunchRequest{Arguments: args}, nil
	case "attach":
		if len(args.Extra) > 0 {
			e.logger.WithField("configuration", name).Warn("attach arguments carry only __restart; other attributes dropped")
		}
		return &dap.AttachRequest{Arguments: dap.AttachRequestArguments{Restart: args.Restart}}, nil
	default:
		return nil, fmt.Errorf("request must be launch or attach, got %q", launch.Request())
	}
}

func printLaunchHelp(out io.Writer) {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  dapx launch <name> [--seq N] [--compact|--pretty]")
	fmt.Fprintln(out, "  dapx launch --list")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Print the launch or attach request for a named debug configuration.")
	fmt.Fprintln(out, "Configurations come from [launch.<name>] tables in config.toml, then")
	fmt.Fprintln(out, "launch_sources (default: the nearest .vscode/launch.json).")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Flags:")
	fmt.Fprintln(out, "  --seq N          Sequence number of the request (default 1)")
	fmt.Fprintln(out, "  --list           List configuration names")
	fmt.Fprintln(out, "  --compact        Single-line output")
	fmt.Fprintln(out, "  --pretty         Indented output")
	fmt.Fprintln(out, "  --help, -h       Show this help output")
}
