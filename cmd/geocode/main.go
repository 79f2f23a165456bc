package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"github.com/mkonrad/geocachy/pkg/env"
	"github.com/mkonrad/geocachy/pkg/geocache"
	"github.com/mkonrad/geocachy/pkg/geocode"
	"github.com/mkonrad/geocachy/pkg/logger"
)

func main() {
	// Logs go to stderr so the table stays pipeable.
	handler := logger.NewContextJSONHandler(os.Stderr, nil)
	slog.SetDefault(slog.New(handler).With("service", "geocode"))

	addresses := os.Args[1:]
	if len(addresses) == 0 && !isatty.IsTerminal(os.Stdin.Fd()) {
		addresses = readAddresses(os.Stdin)
	}

	if len(addresses) == 0 {
		fmt.Fprintln(os.Stderr, "usage: geocode <address> [<address> ...] (or pipe one address per line)")
		os.Exit(1)
	}

	geocacher, err := geocache.New(env.CacheDir(), env.GoogleMapsAPIKey())
	if err != nil {
		slog.Error("unable to set up geocoding cache", "error", err.Error())
		os.Exit(1)
	}

	cached, err := geocacher.InCache(addresses...)
	if err != nil {
		slog.Error("unable to inspect cache", "error", err.Error())
		os.Exit(1)
	}

	results, err := geocacher.Geocode(addresses)
	if err != nil {
		slog.Error("unable to geocode addresses", "error", err.Error())
		os.Exit(1)
	}

	renderTable(os.Stdout, addresses, results, cached)
}

func renderTable(w io.Writer, addresses []string, results map[string][]geocode.Result, cached map[string]bool) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Address", "Latitude", "Longitude", "Formatted Address", "Cached"})

	for _, addr := range addresses {
		hit := "no"
		if cached[addr] {
			hit = "yes"
		}

		rs := results[addr]
		if len(rs) == 0 {
			table.Append([]string{addr, "-", "-", "-", hit})
			continue
		}

		// Providers may return several matches; the first one is the best.
		r := rs[0]
		table.Append([]string{
			addr,
			strconv.FormatFloat(r.Latitude, 'f', 6, 64),
			strconv.FormatFloat(r.Longitude, 'f', 6, 64),
			r.FormattedAddress,
			hit,
		})
	}

	table.Render()
}

func readAddresses(r io.Reader) []string {
	var addresses []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			addresses = append(addresses, line)
		}
	}

	return addresses
}
