// Command waveinfo prints filter properties of wavelet families.
//
// Usage:
//
//	waveinfo [flags] [family-name ...]
//
// Without arguments it prints info for all known wavelet families.
//
// Examples:
//
//	waveinfo haar
//	waveinfo -nfft 1024 db4 bior2.2
//	waveinfo -taps db8
//	waveinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-wavelet/wavelet"
)

func main() {
	nfft := flag.Int("nfft", 256, "FFT length for the magnitude response (power of two)")
	taps := flag.Bool("taps", false, "print the filter coefficients")
	all := flag.Bool("all", false, "show all wavelet families")
	list := flag.Bool("list", false, "list available family names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: waveinfo [flags] [family-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints filter properties of wavelet families.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all families.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  waveinfo haar db4\n")
		fmt.Fprintf(os.Stderr, "  waveinfo -nfft 1024 bior4.4\n")
		fmt.Fprintf(os.Stderr, "  waveinfo -taps db8\n")
		fmt.Fprintf(os.Stderr, "  waveinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, f := range wavelet.Families() {
			names = append(names, f.String())
		}
	}

	families := resolveFamilies(names)
	if len(families) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching wavelet families\n")
		os.Exit(1)
	}

	printAnalysis(families, *nfft)
	if *taps {
		printTaps(families)
	}
}

func printList() {
	names := make([]string, 0, len(wavelet.Families()))
	for _, f := range wavelet.Families() {
		names = append(names, f.String())
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveFamilies(names []string) []wavelet.Family {
	var result []wavelet.Family
	for _, name := range names {
		f, err := wavelet.ParseFamily(strings.TrimSpace(name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: unknown family %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, f)
	}
	return result
}

func printAnalysis(families []wavelet.Family, nfft int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Family\tLength\tLow DC\tLow Nyquist\tHigh DC\tHigh Nyquist\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t------\t------\t-----------\t-------\t------------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, f := range families {
		fs, err := wavelet.Coefficients(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}

		low, err := wavelet.MagnitudeResponse(fs.DecompLow, nfft)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s low-pass response: %v\n", f, err)
			continue
		}
		high, err := wavelet.MagnitudeResponse(fs.DecompHigh, nfft)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s high-pass response: %v\n", f, err)
			continue
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.6f\t%.6f\t%.6f\n",
			f,
			fs.Length(),
			low[0],
			low[len(low)-1],
			high[0],
			high[len(high)-1],
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printTaps(families []wavelet.Family) {
	for _, f := range families {
		fs, err := wavelet.Coefficients(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Printf("\n%s:\n", f)
		printTapRow("  decomposition low ", fs.DecompLow)
		printTapRow("  decomposition high", fs.DecompHigh)
		printTapRow("  reconstruction low ", fs.RecLow)
		printTapRow("  reconstruction high", fs.RecHigh)
	}
}

func printTapRow(label string, taps []float64) {
	fmt.Printf("%s:", label)
	for _, v := range taps {
		fmt.Printf(" % .10f", v)
	}
	fmt.Println()
}
