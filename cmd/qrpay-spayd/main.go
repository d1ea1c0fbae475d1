package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"qrpay.cz/spayd/spayd"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "parse":
		return cmdParse(args[1:], out, errOut)
	case "validate":
		return cmdValidate(args[1:], out, errOut)
	case "stamp":
		return cmdStamp(args[1:], out, errOut)
	case "build":
		return cmdBuild(args[1:], out, errOut)
	case "cid":
		return cmdCID(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "qrpay-spayd: Short Payment Descriptor (SPAYD) CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  qrpay-spayd parse <file|->")
	fmt.Fprintln(w, "  qrpay-spayd validate [--require-crc32] <file|->")
	fmt.Fprintln(w, "  qrpay-spayd stamp <file|->")
	fmt.Fprintln(w, "  qrpay-spayd build --field K=V [--field K=V ...] [--stamp]")
	fmt.Fprintln(w, "  qrpay-spayd cid <file|->")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - '-' reads the descriptor text from stdin")
	fmt.Fprintln(w, "  - stamp and build print the display form to stdout (no trailing newline is part of the format; one is added for terminals)")
	fmt.Fprintln(w, "  - validate exits non-zero on required-field or checksum failures")
}

// readInput loads descriptor text from a file argument, with "-" meaning
// stdin. Surrounding newlines are trimmed; the format itself is one line.
func readInput(arg string) (string, error) {
	var b []byte
	var err error
	if arg == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(arg)
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func cmdParse(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: qrpay-spayd parse <file|->")
		return 2
	}
	text, err := readInput(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read input: %v\n", err)
		return 1
	}
	d, err := spayd.Parse(text)
	if err != nil {
		fmt.Fprintf(errOut, "invalid descriptor [%s]: %v\n", spayd.RuleID(err), err)
		return 1
	}
	fmt.Fprintf(out, "version: %s\n", d.Version())
	for _, f := range d.Fields() {
		fmt.Fprintf(out, "%s: %s\n", f.Name, f.Value)
	}
	return 0
}

func cmdValidate(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var requireCRC bool
	fs.BoolVar(&requireCRC, "require-crc32", false, "Fail when the CRC32 field is absent")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: qrpay-spayd validate [--require-crc32] <file|->")
		return 2
	}
	text, err := readInput(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read input: %v\n", err)
		return 1
	}
	d, err := spayd.Parse(text)
	if err != nil {
		fmt.Fprintf(errOut, "invalid descriptor [%s]: %v\n", spayd.RuleID(err), err)
		return 1
	}
	if err := spayd.ValidateRequired(d); err != nil {
		fmt.Fprintf(errOut, "invalid descriptor [%s]: %v\n", spayd.RuleID(err), err)
		return 1
	}
	check := d.CheckCRC32
	if requireCRC {
		check = d.RequireCRC32
	}
	status, err := check()
	if err != nil {
		fmt.Fprintf(errOut, "checksum failure [%s]: %v\n", spayd.RuleID(err), err)
		return 1
	}
	fmt.Fprintf(out, "OK (crc32 %s)\n", status)
	return 0
}

func cmdStamp(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("stamp", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: qrpay-spayd stamp <file|->")
		return 2
	}
	text, err := readInput(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read input: %v\n", err)
		return 1
	}
	d, err := spayd.Parse(text)
	if err != nil {
		fmt.Fprintf(errOut, "invalid descriptor [%s]: %v\n", spayd.RuleID(err), err)
		return 1
	}
	d.StampCRC32()
	fmt.Fprintln(out, d.String())
	return 0
}

// fieldFlags collects repeated --field K=V arguments.
type fieldFlags map[string]string

func (f fieldFlags) String() string { return "" }

func (f fieldFlags) Set(arg string) error {
	name, value, ok := strings.Cut(arg, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected K=V, got %q", arg)
	}
	f[name] = value
	return nil
}

func cmdBuild(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fields := fieldFlags{}
	var stamp bool
	fs.Var(fields, "field", "Field as K=V (repeatable)")
	fs.BoolVar(&stamp, "stamp", false, "Embed a CRC32 checksum in the output")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 || len(fields) == 0 {
		fmt.Fprintln(errOut, "usage: qrpay-spayd build --field K=V [--field K=V ...] [--stamp]")
		return 2
	}
	d := spayd.NewV1(fields)
	if err := spayd.ValidateRequired(d); err != nil {
		fmt.Fprintf(errOut, "invalid descriptor [%s]: %v\n", spayd.RuleID(err), err)
		return 1
	}
	if stamp {
		d.StampCRC32()
	}
	fmt.Fprintln(out, d.String())
	return 0
}

func cmdCID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("cid", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: qrpay-spayd cid <file|->")
		return 2
	}
	text, err := readInput(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read input: %v\n", err)
		return 1
	}
	d, err := spayd.Parse(text)
	if err != nil {
		fmt.Fprintf(errOut, "invalid descriptor [%s]: %v\n", spayd.RuleID(err), err)
		return 1
	}
	fmt.Fprintln(out, d.CID())
	return 0
}
