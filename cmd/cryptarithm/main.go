// Command cryptarithm compiles a cryptarithm notation, checks it against a
// digit assignment and prints the worked layout with a verdict per row.
//
//	cryptarithm -b 10 -m A=1,B=2,C=3,D=4,E=5,F=6,G=9 "ABC*DE=FAE+GDB=EECE."
//	cryptarithm -f division.toml --formulas
//
// Settings come from, lowest precedence first: built-in defaults, a .env file,
// the environment (CRYPTARITHM_NOTATION, CRYPTARITHM_MIN_BASE, CRYPTARITHM_MAP,
// CRYPTARITHM_FILE), a puzzle document and the command line.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"golang.org/x/exp/maps"

	"github.com/katalvlaran/cryptarithm/layout"
	"github.com/katalvlaran/cryptarithm/render"
	"github.com/katalvlaran/cryptarithm/verify"
)

var (
	errNoNotation = errors.New("no notation given (use -n, -f, CRYPTARITHM_NOTATION or an argument)")
	errBadMinBase = errors.New("min base must be an integer in [0,36]")
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	logger := log.New(os.Stderr, "cryptarithm: ", 0)
	os.Exit(run(os.Args[1:], os.Stdout, logger, os.Getenv))
}

func run(args []string, stdout io.Writer, logger *log.Logger, getenv func(string) string) int {
	cfg, err := loadConfig(args, getenv, logger.Writer())
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		logger.Println(err)
		return exitUsage
	}

	opts := []layout.Option{layout.WithMinimumBase(cfg.MinBase)}
	if cfg.Verbose {
		opts = append(opts, layout.WithLogger(logger))
	}
	l, err := layout.Compile(cfg.Notation, opts...)
	if l == nil {
		logger.Println(err)
		return exitFail
	}
	if err != nil {
		logger.Printf("warning: %v", err)
	}

	m := cfg.Mapping
	if cfg.Initial {
		m = l.Radix.InitialMapping()
		syms := maps.Keys(cfg.Mapping)
		slices.Sort(syms)
		for _, sym := range syms {
			m.Assign(sym, cfg.Mapping[sym])
		}
	}

	var ropts []render.Option
	if cfg.Formulas {
		ropts = append(ropts, render.WithFormulas())
	}
	results := verify.VerifyLayout(l, m)
	if err := render.Write(stdout, l, results, ropts...); err != nil {
		logger.Println(err)
		return exitFail
	}

	sum := verify.Summarize(results)
	fmt.Fprintf(stdout, "%s, base %d, %d/%d checks hold", l.Kind, l.Base, sum.Matched, sum.Checked)
	if sum.Unresolved > 0 {
		fmt.Fprintf(stdout, ", %d unresolved", sum.Unresolved)
	}
	if sum.Solved() {
		fmt.Fprint(stdout, ", solved")
	}
	fmt.Fprintln(stdout)

	return exitOK
}
