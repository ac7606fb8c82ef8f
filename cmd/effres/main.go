// Command effres prints the effective resistance between two nodes of the
// reference unit-resistor network, together with the assembled system A, B
// and the solved node potentials V.
//
// Usage:
//
//	effres [-ref 1] [-src 5] [-swap] [-taps 3,4,9] [-tol 1e-12] [-quiet] [-v 2]
//
// An empty -taps ("-taps=") sums every resistor incident to the reference
// terminal instead of the fixed taps.
//
// Exit status is 1 on any error; the error is written to stderr.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/effres/matrix"
	"github.com/katalvlaran/effres/network"
	"github.com/katalvlaran/effres/resistance"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"golang.org/x/term"
)

func main() {
	err := run(os.Stdout, os.Args[1:])
	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type config struct {
	terms resistance.Terminals
	taps  resistance.Taps
	tol   float64
	quiet bool
	swap  bool
}

// parseTaps reads a comma-separated node list; "" selects incident taps.
func parseTaps(s string) (resistance.Taps, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	taps := make(resistance.Taps, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "tap %q", f)
		}
		taps = append(taps, id)
	}

	return taps, nil
}

// colorable reports whether f is attached to a terminal.
func colorable(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func parseArgs(args []string, outW io.Writer) (config, error) {
	fset := flag.NewFlagSet("effres", flag.ContinueOnError)
	fset.SetOutput(outW)
	klog.InitFlags(fset)
	if err := fset.Set("logtostderr", "true"); err != nil {
		return config{}, errors.Wrap(err, "logtostderr")
	}

	cfg := config{terms: resistance.Canonical(), taps: resistance.CanonicalTaps()}
	fset.IntVar(&cfg.terms.Reference, "ref", cfg.terms.Reference, "reference terminal (held at 0 V)")
	fset.IntVar(&cfg.terms.Source, "src", cfg.terms.Source, "source terminal (driven at 1 V)")
	fset.BoolVar(&cfg.swap, "swap", false, "exchange the reference and source terminals")
	fset.Func("taps", "comma-separated nodes summed into the injected current; empty for all incident to -ref (default 3,4,9)", func(s string) error {
		taps, err := parseTaps(s)
		if err != nil {
			return err
		}
		cfg.taps = taps
		return nil
	})
	fset.Float64Var(&cfg.tol, "tol", resistance.DefaultPivotTolerance, "relative pivot tolerance of the LU solve, in (0, 1)")
	fset.BoolVar(&cfg.quiet, "quiet", false, "print only the resistance line")

	if err := fset.Parse(args); err != nil {
		return cfg, err
	}
	if fset.NArg() > 0 {
		return cfg, errors.Errorf("unexpected arguments: %v", fset.Args())
	}
	if !(cfg.tol > 0 && cfg.tol < 1) {
		return cfg, errors.Errorf("-tol %g not in (0, 1)", cfg.tol)
	}
	if cfg.swap {
		cfg.terms = cfg.terms.Swap()
	}

	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          colorable(os.Stderr),
	})

	return cfg, nil
}

// run computes and prints the result to outW.
func run(outW io.Writer, args []string) error {
	cfg, err := parseArgs(args, outW)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	res, err := resistance.Run(network.Reference(), cfg.terms, cfg.taps, resistance.WithPivotTolerance(cfg.tol))
	if err != nil {
		return errors.Wrapf(err, "effres %v", cfg.terms)
	}

	if !cfg.quiet {
		if err = dump(outW, res); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(outW, res.Summary())

	return err
}

// dump writes A, B and V, one matrix row per line.
func dump(outW io.Writer, res *resistance.Result) error {
	b, err := matrix.NewColumn(res.System.B)
	if err != nil {
		return err
	}
	v, err := matrix.NewColumn(res.Potentials)
	if err != nil {
		return err
	}
	for _, m := range []*matrix.Dense{res.System.A, b, v} {
		if _, err = fmt.Fprintln(outW, m.String()); err != nil {
			return err
		}
	}

	return nil
}
