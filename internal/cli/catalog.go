package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lydakis/dapx/dap"
)

type catalogFormat int

const (
	catalogText catalogFormat = iota
	catalogJSON
)

type catalogArgs struct {
	kind   string
	format catalogFormat
	help   bool
}

type catalogListing struct {
	Requests  []string `json:"requests,omitempty"`
	Responses []string `json:"responses,omitempty"`
	Events    []string `json:"events,omitempty"`
}

func parseCatalogArgs(args []string) (*catalogArgs, error) {
	parsed := &catalogArgs{}
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			parsed.help = true
		case "--json":
			parsed.format = catalogJSON
		case "requests", "responses", "events":
			if parsed.kind != "" {
				return nil, fmt.Errorf("unexpected positional argument: %s", arg)
			}
			parsed.kind = arg
		default:
			return nil, fmt.Errorf("unknown catalog kind or flag: %s", arg)
		}
	}
	return parsed, nil
}

func runCatalogCommand(e *cmdEnv, args []string) int {
	parsed, err := parseCatalogArgs(args)
	if err != nil {
		fmt.Fprintf(e.stderr, "dapx: catalog: %v\n", err)
		return ExitUsageErr
	}
	if parsed.help {
		printCatalogHelp(e.stdout)
		return ExitOK
	}

	listing := catalogFor(parsed.kind)
	if parsed.format == catalogJSON {
		data, err := json.MarshalIndent(listing, "", e.cfg.Indent)
		if err != nil {
			fmt.Fprintf(e.stderr, "dapx: catalog: %v\n", err)
			return ExitInternal
		}
		fmt.Fprintf(e.stdout, "%s\n", data)
		return ExitOK
	}

	if err := writeCatalogText(e.stdout, listing, parsed.kind == ""); err != nil {
		fmt.Fprintf(e.stderr, "dapx: catalog: %v\n", err)
		return ExitInternal
	}
	return ExitOK
}

func catalogFor(kind string) catalogListing {
	switch kind {
	case "requests":
		return catalogListing{Requests: dap.RequestCommands()}
	case "responses":
		return catalogListing{Responses: dap.ResponseCommands()}
	case "events":
		return catalogListing{Events: dap.EventNames()}
	default:
		return catalogListing{Requests: dap.RequestCommands(), Events: dap.EventNames()}
	}
}

// writeCatalogText prints one name per line, prefixed with its message type
// when both catalogs are listed.
func writeCatalogText(w io.Writer, listing catalogListing, labeled bool) error {
	sections := []struct {
		label string
		names []string
	}{
		{label: "request", names: listing.Requests},
		{label: "response", names: listing.Responses},
		{label: "event", names: listing.Events},
	}
	for _, section := range sections {
		for _, name := range section.names {
			line := name
			if labeled {
				line = section.label + "\t" + name
			}
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return fmt.Errorf("writing catalog output: %w", err)
			}
		}
	}
	return nil
}

func printCatalogHelp(out io.Writer) {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  dapx catalog [requests|responses|events] [--json]")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "List the request commands and event names the codec accepts.")
	fmt.Fprintln(out, "Without a kind, requests and events are listed with a type label.")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Flags:")
	fmt.Fprintln(out, "  --json           Emit JSON")
	fmt.Fprintln(out, "  --help, -h       Show this help output")
}
