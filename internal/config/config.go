// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/x86tablegen/internal/options"
	"github.com/retroenv/x86tablegen/internal/variant"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Generation is the resolved configuration of one generator run.
type Generation struct {
	Variant variant.Variant
	Backend variant.Config
	Outputs []options.Output
	Dump    string // dump file of the table hierarchy, empty to disable
	Verify  bool
}

// NewGeneration resolves the program options into a generation
// configuration. An unsupported variant is reported before any output is
// created.
func NewGeneration(opts options.Program) (Generation, error) {
	v, err := variant.Parse(opts.Variant)
	if err != nil {
		return Generation{}, fmt.Errorf("parsing variant: %w", err)
	}

	backend, err := v.Config()
	if err != nil {
		return Generation{}, fmt.Errorf("loading variant configuration: %w", err)
	}

	return Generation{
		Variant: v,
		Backend: backend,
		Outputs: opts.Outputs(),
		Dump:    opts.Dump,
		Verify:  opts.Verify,
	}, nil
}
