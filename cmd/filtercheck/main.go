// Command filtercheck evaluates a cascade of second-order analog filter
// sections against a passband/stopband specification.
//
// Usage:
//
//	filtercheck [flags] [w0:Q[:off] ...]
//
// Each positional argument is one section, given as natural frequency
// (rad/s) and quality factor separated by a colon. Appending ":off" adds
// the section disabled. Sections with non-positive parameters are skipped,
// matching the library's permissive composition.
//
// Examples:
//
//	filtercheck -wp 1000 -wa 5000 -amax 3 -amin 40 1000:0.707
//	filtercheck -wp 1000 -wa 5000 1200:0.54 1200:1.31
//	filtercheck -curve -points 50 -wp 1000 -wa 5000 1000:0.707
//
// The exit status is 0 when the specification is met and 1 when it is not
// (or when the input cannot be evaluated).
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-filterspec/analog"
	"github.com/cwbudde/algo-filterspec/analyze"
	"github.com/cwbudde/algo-filterspec/stencil"
)

func main() {
	wp := flag.Float64("wp", 1000, "passband edge ωp in rad/s")
	wa := flag.Float64("wa", 5000, "stopband edge ωa in rad/s")
	amax := flag.Float64("amax", 3, "passband ripple Amax in dB")
	amin := flag.Float64("amin", 40, "stopband attenuation Amin in dB")
	gmax := flag.Float64("gmax", 0, "reference gain Gmax in dB")
	points := flag.Int("points", 0, "sweep sample count (0 = default 1200)")
	curve := flag.Bool("curve", false, "print the magnitude curve after the summary")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filtercheck [flags] [w0:Q[:off] ...]\n\n")
		fmt.Fprintf(os.Stderr, "Checks a cascade of second-order analog sections against a\n")
		fmt.Fprintf(os.Stderr, "passband/stopband specification.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filtercheck -wp 1000 -wa 5000 -amax 3 -amin 40 1000:0.707\n")
		fmt.Fprintf(os.Stderr, "  filtercheck -curve -points 50 -wp 1000 -wa 5000 1000:0.707\n")
	}
	flag.Parse()

	sections, err := parseSections(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	spec := stencil.Specification{
		PassbandEdge:        *wp,
		StopbandEdge:        *wa,
		PassbandRipple:      *amax,
		StopbandAttenuation: *amin,
		ReferenceGain:       *gmax,
	}

	var opts []analyze.Option
	if *points > 0 {
		opts = append(opts, analyze.WithPoints(*points))
	}

	res, err := analyze.Recompute(sections, spec, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printSummary(res, sections)

	if *curve {
		printCurve(res)
	}

	if !res.SpecsMet {
		os.Exit(1)
	}
}

func parseSections(args []string) ([]analog.Section, error) {
	sections := make([]analog.Section, 0, len(args))

	for i, arg := range args {
		parts := strings.Split(arg, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("section %q: want w0:Q or w0:Q:off", arg)
		}

		w0, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("section %q: bad natural frequency: %w", arg, err)
		}

		q, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("section %q: bad quality factor: %w", arg, err)
		}

		enabled := true
		if len(parts) == 3 {
			if parts[2] != "off" {
				return nil, fmt.Errorf("section %q: trailing %q (only \"off\" is recognized)", arg, parts[2])
			}
			enabled = false
		}

		sections = append(sections, analog.Section{
			Name:        fmt.Sprintf("Stage #%d", i+1),
			NaturalFreq: w0,
			Q:           q,
			Enabled:     enabled,
		})
	}

	return sections, nil
}

func printSummary(res *analyze.Result, sections []analog.Section) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Section\tω0 [rad/s]\tQ\tState\n")
	for _, s := range sections {
		state := "on"
		switch {
		case !s.Enabled:
			state = "off"
		case !s.Valid():
			state = "skipped"
		}
		fmt.Fprintf(tw, "%s\t%g\t%g\t%s\n", s.Name, s.NaturalFreq, s.Q, state)
	}
	tw.Flush()

	verdict := "Specs Met"
	if !res.SpecsMet {
		verdict = "Specs NOT Met"
	}

	fmt.Printf("\nActive sections: %d (order %d)\n", res.ActiveSections, res.Cascade.Order())
	fmt.Printf("Verdict: %s\n", verdict)

	if res.Violations.GainCeiling {
		fmt.Println("  - response exceeds the reference gain ceiling")
	}
	if res.Violations.PassbandFloor {
		fmt.Println("  - response drops below the passband floor")
	}
	if res.Violations.StopbandCeiling {
		fmt.Println("  - response exceeds the stopband ceiling")
	}
}

func printCurve(res *analyze.Result) {
	fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frequency [rad/s]\tMagnitude [dB]\n")
	for _, p := range res.Curve {
		fmt.Fprintf(tw, "%.4g\t%.3f\n", p.Frequency, p.MagnitudeDB)
	}
	tw.Flush()
}
