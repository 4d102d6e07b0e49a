package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
)

var (
	rootStdin    io.Reader = os.Stdin
	rootStdout   io.Writer = os.Stdout
	rootStderr   io.Writer = os.Stderr
	buildVersion           = "dev"
)

func init() {
	buildVersion = resolveBuildVersion(buildVersion)
}

func handleRootFlags(args []string) (bool, int) {
	if len(args) != 1 {
		return false, 0
	}

	switch args[0] {
	case "--version", "-V":
		fmt.Fprintf(rootStdout, "dapx %s\n", buildVersion)
		return true, ExitOK
	case "--help", "-h", "help":
		printRootHelp(rootStdout)
		return true, ExitOK
	default:
		return false, 0
	}
}

// parseGlobalFlags strips leading --config flags and returns the config path
// (empty for the default) and the remaining arguments.
func parseGlobalFlags(args []string) (string, []string, error) {
	configPath := ""
	for len(args) > 0 {
		arg := args[0]
		switch {
		case arg == "--config":
			if len(args) < 2 || strings.TrimSpace(args[1]) == "" {
				return "", nil, fmt.Errorf("missing value for --config")
			}
			configPath = args[1]
			args = args[2:]
		case strings.HasPrefix(arg, "--config="):
			value := strings.TrimPrefix(arg, "--config=")
			if strings.TrimSpace(value) == "" {
				return "", nil, fmt.Errorf("missing value for --config")
			}
			configPath = value
			args = args[1:]
		default:
			return configPath, args, nil
		}
	}
	return configPath, args, nil
}

func resolveBuildVersion(defaultVersion string) string {
	if defaultVersion != "" && defaultVersion != "dev" {
		return defaultVersion
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return defaultVersion
	}
	if info.Main.Version == "" || info.Main.Version == "(devel)" {
		return defaultVersion
	}
	return info.Main.Version
}

func printRootHelp(out io.Writer) {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  dapx [--config PATH] decode [FILE|-] [--verbose]")
	fmt.Fprintln(out, "  dapx [--config PATH] normalize [FILE|-] [--compact|--pretty]")
	fmt.Fprintln(out, "  dapx catalog [requests|responses|events] [--json]")
	fmt.Fprintln(out, "  dapx launch <name> [--seq N] [--compact|--pretty]")
	fmt.Fprintln(out, "  dapx launch --list")
	fmt.Fprintln(out, "  dapx serve [--addr ADDR]")
	fmt.Fprintln(out, "  dapx mcp")
	fmt.Fprintln(out, "  dapx config <init|path|check>")
	fmt.Fprintln(out, "  dapx completion <bash|zsh|fish>")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Messages are Debug Adapter Protocol JSON objects without Content-Length")
	fmt.Fprintln(out, "framing. Input may hold several messages separated by whitespace.")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Global flags:")
	fmt.Fprintln(out, "  --config PATH    Read configuration from PATH")
	fmt.Fprintln(out, "  --help, -h       Show help")
	fmt.Fprintln(out, "  --version, -V    Show version")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Exit codes:")
	fmt.Fprintln(out, "  0 ok, 1 decode/encode failure, 2 usage error, 3 internal error")
}
