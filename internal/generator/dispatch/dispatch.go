// Package dispatch generates the switch based fetch, decode and execute
// routine of an opcode table hierarchy.
package dispatch

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/x86tablegen/internal/discovery"
	"github.com/retroenv/x86tablegen/internal/isa"
	"github.com/retroenv/x86tablegen/internal/variant"
	"github.com/retroenv/x86tablegen/internal/writer"
)

// Generator writes the dispatch routine of a table hierarchy.
type Generator struct {
	logger   *log.Logger
	cfg      variant.Config
	tables   *discovery.Tables
	handlers *isa.Handlers
	cases    int
}

// New returns a new dispatch routine generator.
func New(logger *log.Logger, cfg variant.Config, tables *discovery.Tables) *Generator {
	return &Generator{
		logger:   logger,
		cfg:      cfg,
		tables:   tables,
		handlers: isa.NewHandlers(),
	}
}

// Handlers returns the handler specializations called by the generated
// routine.
func (g *Generator) Handlers() *isa.Handlers {
	return g.handlers
}

// Generate writes the dispatch function.
func (g *Generator) Generate(w *writer.Writer) error {
	base, ok := g.tables.Lookup("")
	if !ok {
		return fmt.Errorf("%w: no base table discovered", isa.ErrMissingTable)
	}

	w.Linef("void %s(CPU* cpu)", g.cfg.DispatchFunction)
	w.BeginScope()
	w.Line("for (;;)")
	w.BeginScope()
	w.Line("u8 opcode = cpu->FetchInstructionByte();")
	w.Line("switch (opcode)")
	w.BeginScope()
	if err := g.writeCases(w, base.Table, false, ""); err != nil {
		return err
	}
	w.EndScope() // switch

	w.Line("// If we hit here, it means the opcode is invalid, as all other switch cases continue")
	w.Line("RaiseInvalidOpcode(cpu);")
	w.Line("return;")
	w.EndScope() // for
	w.EndScope() // function

	g.logger.Debug("Generated dispatch routine",
		log.Int("cases", g.cases),
		log.Int("handlers", g.handlers.Len()))
	return w.Err()
}

// writeCases writes one case per valid opcode of the table. The path is the
// path of the table, modrmFetched is set when the enclosing extension has
// already fetched the ModRM byte.
func (g *Generator) writeCases(w *writer.Writer, table *isa.Table, modrmFetched bool, path string) error {
	for _, op := range table.Entries() {
		if op.Kind.IsInvalid() {
			continue
		}

		w.Linef("case 0x%02X: // %s", op.Encoding, op)
		g.cases++
		if err := g.writeOpcode(w, op, modrmFetched, path); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) writeOpcode(w *writer.Writer, op isa.Opcode, modrmFetched bool, path string) error {
	if op.Kind.IsPrefix() {
		return writePrefix(w, op)
	}

	switch op.Kind {
	case isa.Normal:
		g.writeNormal(w, op, modrmFetched)
		return nil

	case isa.Extension, isa.ModRMRegExtension:
		return g.writeExtension(w, op, modrmFetched, path)

	case isa.X87Extension:
		return g.writeX87Extension(w, op, path)

	case isa.Escape:
		writeEscape(w)
		return nil

	default:
		return fmt.Errorf("unsupported opcode kind %s at slot 0x%02X", op.Kind, op.Encoding)
	}
}

// writePrefix records the prefix in the instruction decode state and
// restarts the fetch loop.
func writePrefix(w *writer.Writer, op isa.Opcode) error {
	w.Indent()
	defer w.Deindent()

	switch op.Kind {
	case isa.SegmentPrefix:
		if len(op.Operands) == 0 || op.Operands[0].Data == nil {
			return fmt.Errorf("segment prefix 0x%02X has no segment operand", op.Encoding)
		}
		w.Linef("cpu->idata.segment = %s;", op.Operands[0].Data.Literal())
		w.Line("cpu->idata.has_segment_override = true;")

	case isa.OperandSizePrefix:
		w.Line("cpu->idata.operand_size = (cpu->m_current_operand_size == OperandSize_16) ? OperandSize_32 : OperandSize_16;")

	case isa.AddressSizePrefix:
		w.Line("cpu->idata.address_size = (cpu->m_current_address_size == AddressSize_16) ? AddressSize_32 : AddressSize_16;")

	case isa.LockPrefix:
		w.Line("cpu->idata.has_lock = true;")

	case isa.RepPrefix:
		w.Line("cpu->idata.has_rep = true;")

	case isa.RepNEPrefix:
		w.Line("cpu->idata.has_rep = true;")
		w.Line("cpu->idata.has_repne = true;")
	}

	w.Line("continue;")
	return nil
}

// writeNormal fetches the ModRM byte once and the encoded operand bytes in
// operand order, then calls the handler.
func (g *Generator) writeNormal(w *writer.Writer, op isa.Opcode, modrmFetched bool) {
	w.Indent()
	defer w.Deindent()

	for i, operand := range op.Operands {
		if operand.Mode.NeedsModRM() && !modrmFetched {
			w.Linef("FetchModRM(cpu); // fetch modrm for operand %d (%s)", i, operand.Mode)
			modrmFetched = true
		}
		if operand.Mode.HasEncodedBytes() {
			w.Linef("FetchImmediate<%s>(cpu); // fetch immediate for operand %d (%s)",
				operand.TemplateValue(), i, operand.Mode)
		}
	}

	spec := op.Specialization()
	g.handlers.Add(spec)
	w.Linef("%s(cpu);", spec.Handler(g.cfg.HandlerPrefix))
	w.Line("return;")
}

// childTable returns the discovered table that the extension opcode leads to.
func (g *Generator) childTable(op isa.Opcode, path string) (discovery.Entry, string, error) {
	childPath := discovery.ChildPath(path, op.Encoding)
	child, ok := g.tables.Lookup(childPath)
	if !ok || child.Table != op.Child || child.Secondary != op.Secondary {
		return discovery.Entry{}, "", fmt.Errorf("%w: %s references undiscovered table '%s'",
			isa.ErrMissingTable, op, discovery.TableName(childPath))
	}
	return child, childPath, nil
}

func (g *Generator) writeExtension(w *writer.Writer, op isa.Opcode, modrmFetched bool, path string) error {
	child, childPath, err := g.childTable(op, path)
	if err != nil {
		return err
	}

	w.BeginScope()
	if op.Kind == isa.Extension {
		w.Line("opcode = cpu->FetchInstructionByte();")
		w.Line("switch (opcode)")
	} else {
		if !modrmFetched {
			w.Line("FetchModRM(cpu); // fetch modrm for extension")
			modrmFetched = true
		}
		w.Line("switch (cpu->idata.GetModRM_Reg() & 0x07)")
	}

	w.BeginScope()
	if err := g.writeCases(w, child.Table, modrmFetched, childPath); err != nil {
		return err
	}
	w.EndScope() // switch
	w.EndScope() // case
	w.Line("break;")
	return nil
}

// writeX87Extension switches on the ModRM reg field for memory operands and
// on the low six bits of the ModRM byte for register operands. Unknown
// coprocessor opcodes consume their operand and start a coprocessor
// instruction instead of faulting.
func (g *Generator) writeX87Extension(w *writer.Writer, op isa.Opcode, path string) error {
	child, childPath, err := g.childTable(op, path)
	if err != nil {
		return err
	}

	halves := []struct {
		condition string
		suffix    string
		selector  string
		table     *isa.Table
	}{
		{"if (!cpu->idata.ModRM_RM_IsReg())", "reg", "cpu->idata.GetModRM_Reg() & 0x07", child.Table},
		{"else", "mem", "cpu->idata.modrm & 0x3F", child.Secondary},
	}

	w.BeginScope()
	w.Line("FetchModRM(cpu); // fetch modrm for X87 extension")

	for _, half := range halves {
		w.Line(half.condition)
		w.BeginScope()
		w.Linef("// %s_%s", child.Name, half.suffix)
		w.Linef("switch (%s) // %s", half.selector, half.suffix)
		w.BeginScope()
		if err := g.writeCases(w, half.table, true, childPath); err != nil {
			return err
		}

		w.Line("default:")
		w.Indent()
		w.Line("FetchImmediate<OperandSize_Count, OperandMode_ModRM_RM, 0>(cpu);")
		w.Linef("%sStartX87Instruction(cpu);", g.cfg.HandlerPrefix)
		w.Line("return;")
		w.Deindent()
		w.EndScope() // switch
		w.EndScope() // if
	}

	w.EndScope()
	return nil
}

// writeEscape skips a coprocessor instruction of a variant without
// coprocessor support.
func writeEscape(w *writer.Writer) {
	w.BeginScope()
	w.Line("FetchModRM(cpu); // fetch modrm for X87 extension")
	w.Line("FetchImmediate<OperandSize_16, OperandMode_ModRM_RM, 0>(cpu);")
	w.Line("return;")
	w.EndScope()
}
