// Package generator selects the code generator of an output artifact.
package generator

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/x86tablegen/internal/discovery"
	"github.com/retroenv/x86tablegen/internal/generator/decodetable"
	"github.com/retroenv/x86tablegen/internal/generator/dispatch"
	"github.com/retroenv/x86tablegen/internal/isa"
	"github.com/retroenv/x86tablegen/internal/variant"
	"github.com/retroenv/x86tablegen/internal/writer"
)

// Artifact is a kind of generated output.
type Artifact string

// Supported artifacts.
const (
	DecodeTable Artifact = "decoder"
	Dispatch    Artifact = "dispatch"
)

// Generator writes one artifact for a discovered table hierarchy.
// Generators are used for a single run.
type Generator interface {
	// Generate writes the artifact to the writer. The writer is not closed.
	Generate(w *writer.Writer) error
	// Handlers returns the handler specializations the artifact references.
	Handlers() *isa.Handlers
}

// New returns a generator for the given artifact.
func New(artifact Artifact, logger *log.Logger, cfg variant.Config, tables *discovery.Tables) (Generator, error) {
	switch artifact {
	case DecodeTable:
		return decodetable.New(logger, cfg, tables), nil
	case Dispatch:
		return dispatch.New(logger, cfg, tables), nil
	default:
		return nil, fmt.Errorf("unsupported artifact '%s'", artifact)
	}
}
