// Command adsr generates an ADSR envelope, applies it to a signal and writes
// the envelope and the modulated result as two-column text files.
//
// Usage:
//
//	adsr [flags]
//
// The signal to modulate is read from -in. Without -in a synthetic carrier
// is generated instead (see -carrier).
//
// Examples:
//
//	adsr -rate 100 -env-out adsr_out.dat -out modulated_out.dat
//	adsr -attack 0.02 -decay 0.1 -sustain 0.4 -release 0.3 -level 0.5 -in input_audio.dat
//	adsr -carrier sine -carrier-hz 220 -wav modulated.wav -stats -spectrum
//	adsr -end stop -slope per-phase -rate 48000
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.New(os.Stderr, "adsr: ", 0).Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := log.New(stderr, "adsr: ", 0)
	if !opts.verbose {
		logger.SetOutput(io.Discard)
	}

	return render(opts, stdout, logger)
}

func usage(fs *flag.FlagSet, w io.Writer) func() {
	return func() {
		fmt.Fprintf(w, "Usage: adsr [flags]\n\n")
		fmt.Fprintf(w, "Generates an ADSR envelope and applies it to a signal.\n")
		fmt.Fprintf(w, "Without -in a synthetic carrier is modulated.\n\n")
		fmt.Fprintf(w, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  adsr -rate 100 -env-out adsr_out.dat -out modulated_out.dat\n")
		fmt.Fprintf(w, "  adsr -in input_audio.dat -level 0.5\n")
		fmt.Fprintf(w, "  adsr -carrier sine -carrier-hz 220 -wav modulated.wav -stats -spectrum\n")
	}
}
