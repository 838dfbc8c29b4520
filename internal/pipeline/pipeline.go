// Package pipeline orchestrates the table generation workflow stages.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/x86tablegen/internal/catalog"
	"github.com/retroenv/x86tablegen/internal/config"
	"github.com/retroenv/x86tablegen/internal/discovery"
	"github.com/retroenv/x86tablegen/internal/generator"
	"github.com/retroenv/x86tablegen/internal/isa"
	"github.com/retroenv/x86tablegen/internal/variant"
	"github.com/retroenv/x86tablegen/internal/verification"
	"github.com/retroenv/x86tablegen/internal/writer"
)

// OutputCreator creates the output for the given file name.
type OutputCreator func(name string) (io.WriteCloser, error)

// Pipeline orchestrates the complete generation workflow.
type Pipeline struct {
	logger       *log.Logger
	createOutput OutputCreator
}

// New creates a new generation pipeline.
func New(logger *log.Logger, createOutput OutputCreator) *Pipeline {
	return &Pipeline{
		logger:       logger,
		createOutput: createOutput,
	}
}

// Execute runs the complete generation pipeline. Every requested artifact is
// generated independently from the same discovered table hierarchy.
func (p *Pipeline) Execute(ctx context.Context, gen config.Generation) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("starting generation: %w", err)
	}

	tables, err := p.Discover(gen.Variant)
	if err != nil {
		return err
	}

	if gen.Dump != "" {
		if err := p.writeDump(gen.Dump, tables); err != nil {
			return fmt.Errorf("writing dump: %w", err)
		}
		p.logger.Info("Wrote table dump", log.String("file", gen.Dump))
	}

	for _, output := range gen.Outputs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("generating %s: %w", output.Artifact, err)
		}

		artifact := generator.Artifact(output.Artifact)
		if err := p.generateFile(artifact, gen.Backend, tables, output.File); err != nil {
			return err
		}
		p.logger.Info("Wrote artifact",
			log.String("artifact", output.Artifact),
			log.String("file", output.File))

		if !gen.Verify {
			continue
		}
		regenerate := func(w io.Writer) error {
			return p.Generate(artifact, gen.Backend, tables, w)
		}
		if err := verification.VerifyOutput(ctx, p.logger, output.File, regenerate); err != nil {
			return fmt.Errorf("verification of %s failed: %w", output.Artifact, err)
		}
		p.logger.Info("Verification successful", log.String("artifact", output.Artifact))
	}

	return nil
}

// Discover loads the catalog of the variant and discovers its tables.
func (p *Pipeline) Discover(v variant.Variant) (*discovery.Tables, error) {
	cat, err := catalog.Load(v)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	tables, err := discovery.Discover(cat.Base)
	if err != nil {
		return nil, fmt.Errorf("discovering tables: %w", err)
	}

	p.logger.Info("Generating tables", log.String("variant", cat.Name))
	p.logger.Debug("Discovered tables", log.Int("count", tables.Len()))
	return tables, nil
}

// Generate writes one artifact to the output. The artifact is generated
// completely before it is written, a failed generation writes nothing. If
// the output implements io.Closer it is closed, also when generation fails.
func (p *Pipeline) Generate(artifact generator.Artifact, cfg variant.Config, tables *discovery.Tables,
	output io.Writer) error {

	data, err := p.render(artifact, cfg, tables)
	if err != nil {
		if closer, ok := output.(io.Closer); ok {
			_ = closer.Close()
		}
		return err
	}
	return writeOutput(artifact, output, data)
}

// generateFile writes the artifact to the named output. The output is only
// created after the artifact was generated successfully, an unsupported
// artifact or a malformed table hierarchy leaves no partial file behind.
func (p *Pipeline) generateFile(artifact generator.Artifact, cfg variant.Config, tables *discovery.Tables,
	name string) error {

	data, err := p.render(artifact, cfg, tables)
	if err != nil {
		return err
	}

	output, err := p.createOutput(name)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	return writeOutput(artifact, output, data)
}

// render generates the artifact into memory.
func (p *Pipeline) render(artifact generator.Artifact, cfg variant.Config, tables *discovery.Tables) ([]byte, error) {
	gen, err := generator.New(artifact, p.logger, cfg, tables)
	if err != nil {
		return nil, fmt.Errorf("creating generator: %w", err)
	}

	var buf bytes.Buffer
	w := writer.New(&buf)
	if err := gen.Generate(w); err != nil {
		return nil, fmt.Errorf("generating %s: %w", artifact, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finishing %s output: %w", artifact, err)
	}

	p.logger.Debug("Referenced handler specializations",
		log.String("artifact", string(artifact)),
		log.Int("count", gen.Handlers().Len()))
	return buf.Bytes(), nil
}

func writeOutput(artifact generator.Artifact, output io.Writer, data []byte) (err error) {
	if closer, ok := output.(io.Closer); ok {
		defer func() {
			if closeErr := closer.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("closing %s output: %w", artifact, closeErr)
			}
		}()
	}

	if _, err := output.Write(data); err != nil {
		return fmt.Errorf("writing %s output: %w", artifact, err)
	}
	return nil
}

// tableDump is the dumped form of a discovered table, containing only the
// assigned slots.
type tableDump struct {
	Name    string
	Path    string
	Class   string
	Slots   int
	Opcodes map[string]string
}

func (p *Pipeline) writeDump(name string, tables *discovery.Tables) (err error) {
	output, err := p.createOutput(name)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if closeErr := output.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", closeErr)
		}
	}()

	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	cfg.Fdump(output, dumpTables(tables))
	return nil
}

func dumpTables(tables *discovery.Tables) []tableDump {
	dumps := make([]tableDump, 0, tables.Len())
	for _, entry := range tables.Entries() {
		dump := tableDump{
			Name:    entry.Name,
			Path:    entry.Path,
			Class:   entry.Class.String(),
			Slots:   entry.Class.Len(),
			Opcodes: map[string]string{},
		}

		offset := 0
		for _, table := range []*isa.Table{entry.Table, entry.Secondary} {
			if table == nil {
				continue
			}
			for _, op := range table.Entries() {
				if !op.Kind.IsInvalid() {
					dump.Opcodes[fmt.Sprintf("%02X", offset+int(op.Encoding))] = fmt.Sprintf("%s (%s)", op, op.Kind)
				}
			}
			offset += table.Len()
		}

		dumps = append(dumps, dump)
	}
	return dumps
}
