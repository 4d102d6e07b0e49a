package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/lydakis/dapx/dap"
	"github.com/lydakis/dapx/internal/config"
	"github.com/lydakis/dapx/internal/paths"
	"github.com/sirupsen/logrus"
)

// cmdEnv carries what every subcommand needs.
type cmdEnv struct {
	cfg        *config.Config
	configPath string
	codec      dap.Codec
	logger     *logrus.Logger
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

// Run is the main CLI entry point. Returns an exit code.
func Run(args []string) int {
	if handled, code := handleRootFlags(args); handled {
		return code
	}

	configPath, args, err := parseGlobalFlags(args)
	if err != nil {
		fmt.Fprintf(rootStderr, "dapx: %v\n", err)
		return ExitUsageErr
	}
	if len(args) == 0 {
		printRootHelp(rootStderr)
		return ExitUsageErr
	}
	if handled, code := handleRootFlags(args); handled {
		return code
	}
	if configPath == "" {
		configPath = paths.ConfigFile()
	}

	switch args[0] {
	case "completion":
		return runCompletionCommand(args[1:], rootStdout, rootStderr)
	case "__complete":
		return runInternalCompletion(args[1:], configPath, rootStdout, rootStderr)
	case "config":
		return runConfigCommand(args[1:], configPath, rootStdout, rootStderr)
	}

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		fmt.Fprintf(rootStderr, "dapx: %v\n", err)
		return ExitInternal
	}
	if verr := config.Validate(cfg); verr != nil {
		fmt.Fprintf(rootStderr, "dapx: invalid config: %v\n", verr)
		return ExitUsageErr
	}

	e := &cmdEnv{
		cfg:        cfg,
		configPath: configPath,
		codec:      cfg.Codec(),
		logger:     newLogger(cfg, rootStderr),
		stdin:      rootStdin,
		stdout:     rootStdout,
		stderr:     rootStderr,
	}

	switch args[0] {
	case "decode":
		return runDecodeCommand(e, args[1:])
	case "normalize":
		return runNormalizeCommand(e, args[1:])
	case "catalog":
		return runCatalogCommand(e, args[1:])
	case "launch":
		return runLaunchCommand(e, args[1:])
	case "serve":
		return runServeCommand(e, args[1:])
	case "mcp":
		return runMCPCommand(e, args[1:])
	default:
		fmt.Fprintf(rootStderr, "dapx: unknown command: %s\n", args[0])
		fmt.Fprintln(rootStderr, "Run 'dapx --help' for usage.")
		return ExitUsageErr
	}
}

// openInput returns the reader for a FILE|- operand.
func openInput(e *cmdEnv, operand string) (io.Reader, func(), error) {
	if operand == "" || operand == "-" {
		return e.stdin, func() {}, nil
	}
	f, err := os.Open(operand)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
