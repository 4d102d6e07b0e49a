package cli

import (
	"fmt"
	"io"

	"github.com/lydakis/dapx/internal/config"
	"github.com/lydakis/dapx/internal/paths"
)

var rootCommands = []string{"catalog", "completion", "config", "decode", "launch", "mcp", "normalize", "serve"}

var commandFlags = map[string][]string{
	"decode":    {"--verbose", "-v", "--help", "-h"},
	"normalize": {"--compact", "--pretty", "--help", "-h"},
	"catalog":   {"requests", "responses", "events", "--json", "--help", "-h"},
	"launch":    {"--seq", "--list", "--compact", "--pretty", "--help", "-h"},
	"serve":     {"--addr", "--help", "-h"},
	"config":    {"init", "path", "check"},
	"mcp":       {"--help", "-h"},
}

func completeCommands(stdout io.Writer) int {
	for _, cmd := range rootCommands {
		fmt.Fprintln(stdout, cmd)
	}
	return ExitOK
}

func completeFlags(command string, stdout io.Writer) int {
	for _, flag := range commandFlags[command] {
		fmt.Fprintln(stdout, flag)
	}
	return ExitOK
}

func completeLaunches(configPath string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "dapx: %v\n", err)
		return ExitInternal
	}

	launches, _ := config.LoadLaunchConfigs(cfg, paths.WorkingDir(""))
	for _, name := range config.LaunchNames(launches) {
		fmt.Fprintln(stdout, name)
	}
	return ExitOK
}
