// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/x86tablegen/internal/options"
	"github.com/retroenv/x86tablegen/internal/variant"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	v, err := variant.Parse(args[0])
	if err != nil {
		return opts, fmt.Errorf("parsing variant: %w", err)
	}
	opts.Variant = string(v)

	if err := validateOptions(opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and the flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: x86tablegen [options] <8086|x86>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks that the variant is the only argument.
func validateArgs(args []string) error {
	for i, arg := range args {
		if i == 0 {
			continue
		}
		if arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the variant, please pass the variant as last argument", arg),
			}
		}
		return &UsageError{
			msg: fmt.Sprintf("Unexpected argument %s, only one variant can be generated per run", arg),
		}
	}
	return nil
}

// validateOptions checks the combination of the output options.
func validateOptions(opts options.Program) error {
	if opts.Decoder == "" && opts.Dispatch == "" {
		return &UsageError{
			msg: "No output requested, pass -decoder and/or -dispatch",
		}
	}
	if opts.Decoder != "" && opts.Decoder == opts.Dispatch {
		return fmt.Errorf("decode tables and dispatch routine can not be written to the same output '%s'", opts.Decoder)
	}
	if opts.Verify && (opts.Decoder == "-" || opts.Dispatch == "-") {
		return &UsageError{
			msg: "Verification can not be combined with console output",
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Decoder, "decoder", "", "name of the output file for the decode tables, - prints on console")
	flags.StringVar(&opts.Dispatch, "dispatch", "", "name of the output file for the dispatch routine, - prints on console")
	flags.StringVar(&opts.Dump, "dump", "", "name of a file to write a dump of the discovered table hierarchy to")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the generated output by generating it again and comparing it")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
