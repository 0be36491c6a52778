// Command eqloudinfo prints the magnitude response of the ReplayGain
// equal-loudness filter cascade.
//
// Usage:
//
//	eqloudinfo [flags]
//
// Examples:
//
//	eqloudinfo
//	eqloudinfo -rate 48000
//	eqloudinfo -rate 44100 -from 20 -to 20000 -points 40
//	eqloudinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-replaygain/dsp/filter/equalloudness"
)

func main() {
	rate := flag.Int("rate", 44100, "sample rate in Hz")
	from := flag.Float64("from", 20, "lowest frequency in Hz")
	to := flag.Float64("to", 20000, "highest frequency in Hz")
	points := flag.Int("points", 30, "number of log-spaced frequency points")
	list := flag.Bool("list", false, "list supported sample rates")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqloudinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the equal-loudness cascade magnitude response.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		for _, r := range equalloudness.SupportedRates() {
			fmt.Println(r)
		}
		return
	}

	if *from <= 0 || *to <= *from || *points < 2 {
		fmt.Fprintf(os.Stderr, "error: need 0 < from < to and points >= 2\n")
		os.Exit(2)
	}

	filt, err := equalloudness.New(*rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printResponse(filt, *from, *to, *points)
}

func printResponse(filt *equalloudness.Filter, from, to float64, points int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Frequency [Hz]\tMagnitude [dB]\t\n")
	fmt.Fprintf(tw, "--------------\t--------------\t\n")

	step := math.Pow(to/from, 1/float64(points-1))
	freq := from
	for i := 0; i < points; i++ {
		fmt.Fprintf(tw, "%.1f\t%+.2f\t\n", freq, filt.MagnitudeDB(freq))
		freq *= step
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
