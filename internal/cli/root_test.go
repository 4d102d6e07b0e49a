package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/lydakis/dapx/dap"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

// runCLI runs the CLI with the given stdin and a config file in a temp dir
// unless args already name one.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	oldIn, oldOut, oldErr := rootStdin, rootStdout, rootStderr
	defer func() {
		rootStdin, rootStdout, rootStderr = oldIn, oldOut, oldErr
	}()

	var out, errOut bytes.Buffer
	rootStdin = strings.NewReader(stdin)
	rootStdout = &out
	rootStderr = &errOut

	if len(args) == 0 || !strings.HasPrefix(args[0], "--config") {
		args = append([]string{"--config", filepath.Join(t.TempDir(), "config.toml")}, args...)
	}
	code := Run(args)
	return cliResult{code: code, stdout: out.String(), stderr: errOut.String()}
}

func writeConfig(t *testing.T, raw string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(raw), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestHandleRootFlagsVersion(t *testing.T) {
	oldVersion := buildVersion
	oldOut := rootStdout
	oldErr := rootStderr
	defer func() {
		buildVersion = oldVersion
		rootStdout = oldOut
		rootStderr = oldErr
	}()

	buildVersion = "1.2.3"
	var out bytes.Buffer
	var errOut bytes.Buffer
	rootStdout = &out
	rootStderr = &errOut

	handled, code := handleRootFlags([]string{"--version"})
	if !handled {
		t.Fatal("handled = false, want true")
	}
	if code != 0 {
		t.Fatalf("code = %d, want 0", code)
	}
	if out.String() != "dapx 1.2.3\n" {
		t.Fatalf("output = %q, want %q", out.String(), "dapx 1.2.3\n")
	}
	if errOut.Len() != 0 {
		t.Fatalf("stderr = %q, want empty", errOut.String())
	}
}

func TestHandleRootFlagsHelp(t *testing.T) {
	res := runCLI(t, "", "--help")
	if res.code != ExitOK {
		t.Fatalf("code = %d, want 0", res.code)
	}
	for _, want := range []string{"dapx [--config PATH] decode", "dapx launch <name>", "dapx completion <bash|zsh|fish>"} {
		if !strings.Contains(res.stdout, want) {
			t.Fatalf("help output missing %q: %q", want, res.stdout)
		}
	}
}

func TestHandleRootFlagsIgnoresCommands(t *testing.T) {
	if handled, _ := handleRootFlags([]string{"decode"}); handled {
		t.Fatal("handled = true, want false")
	}
	if handled, _ := handleRootFlags([]string{"completion", "zsh"}); handled {
		t.Fatal("handled = true, want false")
	}
}

func TestParseGlobalFlags(t *testing.T) {
	tests := []struct {
		args     []string
		wantPath string
		wantRest []string
		wantErr  bool
	}{
		{args: []string{"decode"}, wantRest: []string{"decode"}},
		{args: []string{"--config", "/tmp/c.toml", "catalog"}, wantPath: "/tmp/c.toml", wantRest: []string{"catalog"}},
		{args: []string{"--config=/tmp/c.toml", "serve", "--addr", "x"}, wantPath: "/tmp/c.toml", wantRest: []string{"serve", "--addr", "x"}},
		{args: []string{"--config"}, wantErr: true},
		{args: []string{"--config="}, wantErr: true},
	}
	for _, tc := range tests {
		path, rest, err := parseGlobalFlags(tc.args)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseGlobalFlags(%q) error = nil, want error", tc.args)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseGlobalFlags(%q) error = %v", tc.args, err)
			continue
		}
		if path != tc.wantPath || !reflect.DeepEqual(rest, tc.wantRest) {
			t.Errorf("parseGlobalFlags(%q) = %q, %q; want %q, %q", tc.args, path, rest, tc.wantPath, tc.wantRest)
		}
	}
}

func TestRunWithoutCommandIsUsageError(t *testing.T) {
	res := runCLI(t, "")
	if res.code != ExitUsageErr {
		t.Fatalf("code = %d, want %d", res.code, ExitUsageErr)
	}
	if !strings.Contains(res.stderr, "Usage:") {
		t.Fatalf("stderr = %q, want usage", res.stderr)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	res := runCLI(t, "", "frobnicate")
	if res.code != ExitUsageErr || !strings.Contains(res.stderr, "unknown command: frobnicate") {
		t.Fatalf("result = %+v, want unknown command usage error", res)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	path := writeConfig(t, "log_format = \"xml\"\n")
	res := runCLI(t, "", "--config", path, "catalog")
	if res.code != ExitUsageErr || !strings.Contains(res.stderr, "invalid config: log_format") {
		t.Fatalf("result = %+v, want invalid config", res)
	}
}

func TestDecodePrintsSummaries(t *testing.T) {
	stdin := `{"seq":1,"type":"request","command":"initialize","arguments":{"adapterID":"go"}}
{"seq":2,"type":"response","request_seq":1,"success":true,"command":"initialize","body":{}}
{"seq":3,"type":"event","event":"initialized"}`

	res := runCLI(t, stdin, "decode")
	if res.code != ExitOK {
		t.Fatalf("code = %d, stderr = %q", res.code, res.stderr)
	}
	want := "#1 request initialize\n#2 response initialize (request 1) ok\n#3 event initialized\n"
	if res.stdout != want {
		t.Fatalf("stdout = %q, want %q", res.stdout, want)
	}
}

func TestDecodeVerboseReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msg.json")
	if err := os.WriteFile(path, []byte(`{"seq":4,"type":"event","event":"exited","body":{"exitCode":2}}`), 0600); err != nil {
		t.Fatalf("write message: %v", err)
	}

	res := runCLI(t, "", "decode", "--verbose", path)
	if res.code != ExitOK {
		t.Fatalf("code = %d, stderr = %q", res.code, res.stderr)
	}
	if !strings.HasPrefix(res.stdout, "#4 event exited *dap.ExitedEvent\n") || !strings.Contains(res.stdout, `"exitCode": 2`) {
		t.Fatalf("stdout = %q, want verbose rendering", res.stdout)
	}
}

func TestDecodeFailureReportsPathAndExitCode(t *testing.T) {
	stdin := `{"seq":1,"type":"event","event":"initialized"}
{"seq":2,"type":"request","command":"setBreakpoints","arguments":{"source":{},"breakpoints":[{"line":3},{"column":1}]}}
{"seq":3,"type":"event","event":"initialized"}`

	res := runCLI(t, stdin, "decode")
	if res.code != ExitCodecErr {
		t.Fatalf("code = %d, want %d", res.code, ExitCodecErr)
	}
	if res.stdout != "#1 event initialized\n" {
		t.Fatalf("stdout = %q, want only the first message", res.stdout)
	}
	if !strings.Contains(res.stderr, "message 2:") || !strings.Contains(res.stderr, "at arguments.breakpoints[1].line") {
		t.Fatalf("stderr = %q, want message index and field path", res.stderr)
	}
}

func TestDecodeMissingFileIsUsageError(t *testing.T) {
	res := runCLI(t, "", "decode", filepath.Join(t.TempDir(), "missing.json"))
	if res.code != ExitUsageErr {
		t.Fatalf("code = %d, want %d", res.code, ExitUsageErr)
	}
}

func TestNormalizeLayouts(t *testing.T) {
	stdin := `{"body":{"category":"console","output":"x"},"event":"output","seq":9,"type":"event"}`

	res := runCLI(t, stdin, "normalize")
	if res.code != ExitOK {
		t.Fatalf("code = %d, stderr = %q", res.code, res.stderr)
	}
	want := `{"seq":9,"type":"event","event":"output","body":{"output":"x"}}` + "\n"
	if res.stdout != want {
		t.Fatalf("stdout = %q, want %q", res.stdout, want)
	}

	res = runCLI(t, stdin, "normalize", "--pretty")
	if !strings.HasPrefix(res.stdout, "{\n  \"seq\": 9,") {
		t.Fatalf("pretty stdout = %q", res.stdout)
	}

	path := writeConfig(t, "pretty = true\nindent = \"\\t\"\n")
	res = runCLI(t, stdin, "--config", path, "normalize")
	if !strings.HasPrefix(res.stdout, "{\n\t\"seq\": 9,") {
		t.Fatalf("config pretty stdout = %q", res.stdout)
	}
	res = runCLI(t, stdin, "--config", path, "normalize", "--compact")
	if res.stdout != want {
		t.Fatalf("compact stdout = %q, want %q", res.stdout, want)
	}

	if res := runCLI(t, stdin, "normalize", "--compact", "--pretty"); res.code != ExitUsageErr {
		t.Fatalf("conflicting flags code = %d, want %d", res.code, ExitUsageErr)
	}
}

func TestNormalizeHonorsHandleChecks(t *testing.T) {
	stdin := `{"seq":1,"type":"event","event":"continued","body":{"threadId":-4}}`

	if res := runCLI(t, stdin, "decode"); res.code != ExitOK || res.stdout != "#1 event continued\n" {
		t.Fatalf("decode result = %+v, want summary despite out-of-range handle", res)
	}

	if res := runCLI(t, stdin, "normalize"); res.code != ExitCodecErr || !strings.Contains(res.stderr, "body.threadId") {
		t.Fatalf("result = %+v, want handle range failure", res)
	}

	path := writeConfig(t, "check_handles = false\n")
	if res := runCLI(t, stdin, "--config", path, "normalize"); res.code != ExitOK {
		t.Fatalf("code = %d with check_handles = false, stderr = %q", res.code, res.stderr)
	}
}

func TestCatalogCommand(t *testing.T) {
	res := runCLI(t, "", "catalog", "requests")
	if res.code != ExitOK {
		t.Fatalf("code = %d, stderr = %q", res.code, res.stderr)
	}
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	if !reflect.DeepEqual(lines, dap.RequestCommands()) {
		t.Fatalf("catalog requests = %v", lines)
	}

	res = runCLI(t, "", "catalog")
	if !strings.Contains(res.stdout, "request\tinitialize\n") || !strings.Contains(res.stdout, "event\tstopped\n") {
		t.Fatalf("catalog stdout = %q, want labeled entries", res.stdout)
	}

	res = runCLI(t, "", "catalog", "events", "--json")
	var listing catalogListing
	if err := json.Unmarshal([]byte(res.stdout), &listing); err != nil {
		t.Fatalf("decoding catalog JSON: %v", err)
	}
	if len(listing.Requests) != 0 || !reflect.DeepEqual(listing.Events, dap.EventNames()) {
		t.Fatalf("catalog JSON = %+v", listing)
	}

	if res := runCLI(t, "", "catalog", "widgets"); res.code != ExitUsageErr {
		t.Fatalf("unknown kind code = %d, want %d", res.code, ExitUsageErr)
	}
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dapx", "config.toml")

	res := runCLI(t, "", "--config", path, "config", "path")
	if res.code != ExitOK || res.stdout != path+"\n" {
		t.Fatalf("config path = %+v", res)
	}

	res = runCLI(t, "", "--config", path, "config", "init")
	if res.code != ExitOK || !strings.Contains(res.stdout, "Wrote "+path) {
		t.Fatalf("config init = %+v", res)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	if res := runCLI(t, "", "--config", path, "config", "init"); res.code != ExitUsageErr {
		t.Fatalf("second config init code = %d, want %d", res.code, ExitUsageErr)
	}
	if res := runCLI(t, "", "--config", path, "config", "init", "--force"); res.code != ExitOK || !strings.Contains(res.stdout, "Reset") {
		t.Fatalf("config init --force = %+v", res)
	}

	res = runCLI(t, "", "--config", path, "config", "check")
	if res.code != ExitOK || !strings.Contains(res.stdout, ": ok") {
		t.Fatalf("config check = %+v", res)
	}

	bad := writeConfig(t, "[serve]\naddr = \"nope\"\n")
	if res := runCLI(t, "", "--config", bad, "config", "check"); res.code != ExitUsageErr || !strings.Contains(res.stderr, "serve.addr") {
		t.Fatalf("config check on bad config = %+v", res)
	}
}

func TestLaunchFromConfigTable(t *testing.T) {
	path := writeConfig(t, `
launch_sources = []

[launch.app]
type = "go"
request = "launch"
program = "./cmd/app"
noDebug = true
`)

	res := runCLI(t, "", "--config", path, "launch", "app", "--seq", "7", "--compact")
	if res.code != ExitOK {
		t.Fatalf("code = %d, stderr = %q", res.code, res.stderr)
	}
	want := `{"seq":7,"type":"request","command":"launch","arguments":{"noDebug":true,"program":"./cmd/app","request":"launch","type":"go"}}` + "\n"
	if res.stdout != want {
		t.Fatalf("stdout = %q, want %q", res.stdout, want)
	}

	env, err := dap.Decode([]byte(strings.TrimSpace(res.stdout)))
	if err != nil {
		t.Fatalf("launch output does not decode: %v", err)
	}
	if _, ok := env.Message.(*dap.LaunchRequest); !ok {
		t.Fatalf("decoded %T, want *dap.LaunchRequest", env.Message)
	}
}

func TestLaunchFromLaunchJSONSource(t *testing.T) {
	dir := t.TempDir()
	launchPath := filepath.Join(dir, "launch.json")
	raw := `{
  // VS Code style
  "configurations": [
    {"name": "remote", "type": "go", "request": "attach", "__restart": {"n": 1},},
    {"name": "local", "type": "go", "request": "launch"},
  ]
}`
	if err := os.WriteFile(launchPath, []byte(raw), 0600); err != nil {
		t.Fatalf("write launch.json: %v", err)
	}
	path := writeConfig(t, "launch_sources = ["+strconvQuote(launchPath)+"]\n")

	res := runCLI(t, "", "--config", path, "launch", "--list")
	if res.code != ExitOK || res.stdout != "local\nremote\n" {
		t.Fatalf("launch --list = %+v", res)
	}

	res = runCLI(t, "", "--config", path, "launch", "remote", "--compact")
	if res.code != ExitOK {
		t.Fatalf("code = %d, stderr = %q", res.code, res.stderr)
	}
	want := `{"seq":1,"type":"request","command":"attach","arguments":{"__restart":{"n":1}}}` + "\n"
	if res.stdout != want {
		t.Fatalf("stdout = %q, want %q", res.stdout, want)
	}

	res = runCLI(t, "", "--config", path, "launch", "missing")
	if res.code != ExitUsageErr || !strings.Contains(res.stderr, "Available configurations:") {
		t.Fatalf("unknown launch = %+v", res)
	}
}

func TestServeStopsWhenSignalled(t *testing.T) {
	old := signalContext
	defer func() { signalContext = old }()
	signalContext = func() (context.Context, context.CancelFunc) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx, cancel
	}

	res := runCLI(t, "", "serve", "--addr", "127.0.0.1:0")
	if res.code != ExitOK {
		t.Fatalf("code = %d, stderr = %q", res.code, res.stderr)
	}

	if res := runCLI(t, "", "serve", "--addr"); res.code != ExitUsageErr {
		t.Fatalf("serve --addr without value code = %d, want %d", res.code, ExitUsageErr)
	}
}

func TestMCPStopsWhenSignalled(t *testing.T) {
	old := signalContext
	defer func() { signalContext = old }()
	signalContext = func() (context.Context, context.CancelFunc) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx, cancel
	}

	if res := runCLI(t, "", "mcp"); res.code != ExitOK {
		t.Fatalf("code = %d, stderr = %q", res.code, res.stderr)
	}
	if res := runCLI(t, "", "mcp", "extra"); res.code != ExitUsageErr {
		t.Fatalf("mcp extra code = %d, want %d", res.code, ExitUsageErr)
	}
}

func strconvQuote(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}
