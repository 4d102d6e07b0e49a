package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/lydakis/dapx/internal/config"
)

func runConfigCommand(args []string, configPath string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printConfigHelp(stderr)
		return ExitUsageErr
	}

	switch args[0] {
	case "-h", "--help":
		printConfigHelp(stdout)
		return ExitOK
	case "path":
		if len(args) != 1 {
			fmt.Fprintln(stderr, "dapx: usage: dapx config path")
			return ExitUsageErr
		}
		fmt.Fprintln(stdout, configPath)
		return ExitOK
	case "init":
		return runConfigInit(args[1:], configPath, stdout, stderr)
	case "check":
		if len(args) != 1 {
			fmt.Fprintln(stderr, "dapx: usage: dapx config check")
			return ExitUsageErr
		}
		return runConfigCheck(configPath, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "dapx: unknown config command: %s\n", args[0])
		return ExitUsageErr
	}
}

func runConfigInit(args []string, configPath string, stdout, stderr io.Writer) int {
	force := false
	for _, arg := range args {
		switch arg {
		case "--force":
			force = true
		default:
			fmt.Fprintf(stderr, "dapx: config init: unknown flag: %s\n", arg)
			return ExitUsageErr
		}
	}

	exists := false
	if _, err := os.Stat(configPath); err == nil {
		exists = true
	}
	if exists && !force {
		fmt.Fprintf(stderr, "dapx: config init: %s already exists; rerun with --force to reset it\n", configPath)
		return ExitUsageErr
	}

	if err := config.SaveTo(configPath, config.Default()); err != nil {
		fmt.Fprintf(stderr, "dapx: config init: writing config: %v\n", err)
		return ExitInternal
	}

	verb := "Wrote"
	if exists {
		verb = "Reset"
	}
	fmt.Fprintf(stdout, "%s %s\n", verb, configPath)
	return ExitOK
}

func runConfigCheck(configPath string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadForEditFrom(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "dapx: %v\n", err)
		return ExitUsageErr
	}
	if err := config.ValidateForCurrentEnv(cfg); err != nil {
		fmt.Fprintf(stderr, "dapx: invalid config: %v\n", err)
		return ExitUsageErr
	}
	fmt.Fprintf(stdout, "%s: ok\n", configPath)
	return ExitOK
}

func printConfigHelp(out io.Writer) {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  dapx config path            Print the config file path")
	fmt.Fprintln(out, "  dapx config init [--force]  Write a config file with the defaults")
	fmt.Fprintln(out, "  dapx config check           Validate the config file")
}
