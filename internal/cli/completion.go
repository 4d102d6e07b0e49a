package cli

import (
	"fmt"
	"io"
	"strings"
)

func runCompletionCommand(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "dapx: usage: dapx completion <bash|zsh|fish>")
		return ExitUsageErr
	}

	script, ok := completionScripts[strings.ToLower(args[0])]
	if !ok {
		fmt.Fprintf(stderr, "dapx: unknown shell for completion: %s\n", args[0])
		return ExitUsageErr
	}

	_, _ = io.WriteString(stdout, script)
	return ExitOK
}

func runInternalCompletion(args []string, configPath string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "dapx: usage: dapx __complete <commands|flags|launches> ...")
		return ExitUsageErr
	}

	switch args[0] {
	case "commands":
		if len(args) != 1 {
			fmt.Fprintln(stderr, "dapx: usage: dapx __complete commands")
			return ExitUsageErr
		}
		return completeCommands(stdout)
	case "flags":
		if len(args) != 2 {
			fmt.Fprintln(stderr, "dapx: usage: dapx __complete flags <command>")
			return ExitUsageErr
		}
		return completeFlags(args[1], stdout)
	case "launches":
		if len(args) != 1 {
			fmt.Fprintln(stderr, "dapx: usage: dapx __complete launches")
			return ExitUsageErr
		}
		return completeLaunches(configPath, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "dapx: unknown completion query: %s\n", args[0])
		return ExitUsageErr
	}
}
