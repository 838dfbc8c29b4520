// Package fileprocessor handles output file creation and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/x86tablegen/internal/config"
	"github.com/retroenv/x86tablegen/internal/options"
	"github.com/retroenv/x86tablegen/internal/pipeline"
)

// StdoutName is the output file name that selects the console output.
const StdoutName = "-"

// Process handles the complete generation workflow.
func Process(ctx context.Context, logger *log.Logger, opts options.Program) error {
	gen, err := config.NewGeneration(opts)
	if err != nil {
		return fmt.Errorf("creating generation config: %w", err)
	}

	p := pipeline.New(logger, CreateOutput)
	if err := p.Execute(ctx, gen); err != nil {
		return fmt.Errorf("executing pipeline: %w", err)
	}
	return nil
}

// CreateOutput creates the output file of the given name. The console
// output is used for an empty name or StdoutName, closing it is a no-op.
func CreateOutput(name string) (io.WriteCloser, error) {
	if name == "" || name == StdoutName {
		return &nopCloser{os.Stdout}, nil
	}

	file, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", name, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("x86tablegen", log.String("version", buildinfo.Version(version, commit, date)))
}

// nopCloser wraps an io.Writer to add a no-op Close method
type nopCloser struct {
	io.Writer
}

func (nc *nopCloser) Close() error {
	return nil
}
