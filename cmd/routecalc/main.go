package main

import (
	"fmt"
	"io"
	"os"
	"route-time-service/internal/domain"

	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("routecalc", pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: routecalc [options]\n\n")
		fmt.Fprintf(os.Stderr, "routecalc computes round-trip time from %s for an ordered list of stops.\n\n", domain.HubID)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  routecalc -s K48.11:5                  # one stop, 5 orders\n")
		fmt.Fprintf(os.Stderr, "  routecalc -s K48.11:2 -s K48.12:3 -j   # JSON summary\n")
		fmt.Fprintf(os.Stderr, "  routecalc --positions                  # list known positions\n")
	}

	code := run(os.Args[1:], flags, os.Stdout, os.Stderr)
	os.Exit(code)
}

func run(args []string, flags *pflag.FlagSet, stdout, stderr io.Writer) int {
	stops := flags.StringArrayP("stop", "s", nil, "Stop to visit as ID[:ORDERS], repeat in route order")
	jsonFlag := flags.BoolP("json", "j", false, "Output the trip summary as JSON")
	positionsFlag := flags.BoolP("positions", "p", false, "List the known positions and exit")
	helpFlag := flags.BoolP("help", "h", false, "Show this help message")

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	if *helpFlag {
		flags.Usage()
		return 0
	}

	if *positionsFlag {
		printPositions(stdout, domain.Montesa)
		return 0
	}

	summary, err := calculate(domain.Montesa, *stops)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if *jsonFlag {
		if err := printJSON(stdout, summary); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	printSummary(stdout, summary)
	return 0
}
