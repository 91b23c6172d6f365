// opt816 - windowed peephole optimizer for generated WDC 65816 assembly.
//
// Usage: opt816 [-banner] [input.asm]
//
// Reads 65816 assembly (from input.asm, or stdin if no file is given),
// repeatedly applies the rewrite catalogue in rules_store.go,
// rules_load.go and rules_misc.go until a pass fires no counted rule
// (R25's reorder is not counted), and writes the result to stdout.
//
// $OPT_65816_VERBOSE controls diagnostic output on stderr:
//
//	unset or "0"  silent
//	"1"           one line per pass reporting how many rules fired
//	"2"           also dumps the trimmed input and collected BSS names
//	              before the first pass
//	anything else treated as silent
//
// $OPT_816_QUIET is accepted as a legacy alias when OPT_65816_VERBOSE
// is not set, under the same value mapping.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	banner := flag.Bool("banner", false, "print a banner line around the emitted code")
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "opt816: usage: opt816 [-banner] [input.asm]\n")
		os.Exit(exitCode(&OptError{Kind: ErrUsage}))
	}

	if err := run(flag.Arg(0), *banner); err != nil {
		fmt.Fprintf(os.Stderr, "opt816: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func run(inputFile string, banner bool) error {
	verbosity := resolveVerbosity()

	in := os.Stdin
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return &OptError{Kind: ErrOpenFailed, Msg: fmt.Sprintf("cannot open %s: %v", inputFile, err)}
		}
		defer f.Close()
		in = f
	}

	lines, err := ReadLines(in)
	if err != nil {
		return err
	}

	bssNames := CollectBSS(lines)

	if verbosity >= 2 {
		fmt.Fprintf(os.Stderr, "opt816: %d input lines\n", len(lines))
		for _, l := range lines {
			fmt.Fprintf(os.Stderr, "opt816: in: %s\n", l)
		}
		fmt.Fprintf(os.Stderr, "opt816: %d bss names\n", len(bssNames))
		for name := range bssNames {
			fmt.Fprintf(os.Stderr, "opt816: bss: %s\n", name)
		}
	}

	rw := NewRewriter(lines, bssNames)
	for pass := 1; ; pass++ {
		rw.runPass()
		if verbosity >= 1 {
			fmt.Fprintf(os.Stderr, "opt816: pass %d: %d rules fired\n", pass, rw.opted)
		}
		if rw.opted == 0 {
			break
		}
		rw.lines = rw.out
	}

	if banner {
		fmt.Println("______________[ASM CODE]_________________")
	}
	for _, l := range rw.out {
		fmt.Println(l)
	}
	if banner {
		fmt.Println("___________________________________________")
	}
	return nil
}

// resolveVerbosity maps $OPT_65816_VERBOSE (or, when unset, the legacy
// $OPT_816_QUIET) to a 0/1/2 level. Any value other than "1" or "2" is
// treated as silent, matching the unmanaged default the environment
// variable fell back to historically.
func resolveVerbosity() int {
	v, ok := os.LookupEnv("OPT_65816_VERBOSE")
	if !ok {
		v, ok = os.LookupEnv("OPT_816_QUIET")
		if !ok {
			return 0
		}
	}
	switch v {
	case "1":
		return 1
	case "2":
		return 2
	default:
		return 0
	}
}

// exitCode reports the process exit status for any failure. Every
// ErrKind maps to the same code: the driver never distinguishes
// failure causes at the shell level, only on stderr.
func exitCode(err error) int {
	return 1
}
