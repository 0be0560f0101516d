// utf8lut checks that files are well-formed UTF-8.
//
// Each file (or standard input when no file is given) is read whole and
// validated as one buffer. The exit status is 1 when any input is invalid.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/coregx/utf8lut"
	"github.com/coregx/utf8lut/automaton"
	"github.com/coregx/utf8lut/simd"
)

// CLI defines the utf8lut command-line interface.
type CLI struct {
	Files       []string `arg:"" optional:"" help:"Files to check (standard input when empty)"`
	Reference   bool     `help:"Validate byte by byte with the reference automaton"`
	NoASCIIFast bool     `name:"no-ascii-fast-path" help:"Do not skip ASCII words without table lookups"`
	Stats       bool     `help:"Print compiled table statistics and exit"`
	Verbose     bool     `short:"v" help:"Also report valid inputs"`
}

// errInvalid signals that at least one input failed validation.
var errInvalid = errors.New("invalid UTF-8 input")

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("utf8lut"),
		kong.Description("Check that files are well-formed UTF-8 using compiled lookup tables."),
	)

	err := run(&cli, os.Stdin, os.Stdout)
	if errors.Is(err, errInvalid) {
		os.Exit(1)
	}
	ctx.FatalIfErrorf(err)
}

func run(cli *CLI, stdin io.Reader, stdout io.Writer) error {
	v, err := utf8lut.New(utf8lut.DefaultConfig().WithASCIIFastPath(!cli.NoASCIIFast))
	if err != nil {
		return fmt.Errorf("build validator: %w", err)
	}

	if cli.Stats {
		return printStats(stdout, v)
	}

	check := v.Valid
	if cli.Reference {
		check = automaton.Valid
	}

	if len(cli.Files) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		return report(stdout, "-", data, check(data), cli.Verbose)
	}

	var failed bool
	for _, path := range cli.Files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %q: %w", path, err)
		}
		err = report(stdout, path, data, check(data), cli.Verbose)
		switch {
		case errors.Is(err, errInvalid):
			failed = true
		case err != nil:
			return err
		}
	}
	if failed {
		return errInvalid
	}
	return nil
}

// report prints the verdict for one input. It returns errInvalid for an
// invalid input, or the write error if printing failed.
func report(w io.Writer, name string, data []byte, ok, verbose bool) error {
	if !ok {
		if _, err := fmt.Fprintf(w, "%s: invalid UTF-8\n", name); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return errInvalid
	}
	if verbose {
		kind := "utf-8"
		if simd.IsASCII(data) {
			kind = "ascii"
		}
		if _, err := fmt.Fprintf(w, "%s: ok (%d bytes, %s)\n", name, len(data), kind); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

func printStats(w io.Writer, v *utf8lut.Validator) error {
	t := v.Tables()
	_, err := fmt.Fprintf(w,
		"automaton states: %d\ntwo-byte behaviors: %d\nbehavior classes: %d\nclosure rounds: %d\ntable bytes: %d\nascii fast path: %t\n",
		automaton.StateCount, t.NumAtoms(), t.NumClasses(), t.ClosureRounds(), t.Size(), v.Config().ASCIIFastPath)
	return err
}
