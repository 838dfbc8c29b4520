// Package decodetable generates the table driven decoder: one array per
// discovered opcode table with one initializer per slot.
package decodetable

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/x86tablegen/internal/discovery"
	"github.com/retroenv/x86tablegen/internal/isa"
	"github.com/retroenv/x86tablegen/internal/variant"
	"github.com/retroenv/x86tablegen/internal/writer"
)

// prefixOperations maps the prefix kinds without operands to the operation
// marker of their table entry.
var prefixOperations = map[isa.Kind]isa.Operation{
	isa.OperandSizePrefix: isa.OpOperandSizePrefix,
	isa.AddressSizePrefix: isa.OpAddressSizePrefix,
	isa.LockPrefix:        isa.OpLockPrefix,
	isa.RepPrefix:         isa.OpRepPrefix,
	isa.RepNEPrefix:       isa.OpRepNEPrefix,
}

// Generator writes the decode tables of a table hierarchy.
type Generator struct {
	logger   *log.Logger
	cfg      variant.Config
	tables   *discovery.Tables
	handlers *isa.Handlers
}

// New returns a new decode table generator.
func New(logger *log.Logger, cfg variant.Config, tables *discovery.Tables) *Generator {
	return &Generator{
		logger:   logger,
		cfg:      cfg,
		tables:   tables,
		handlers: isa.NewHandlers(),
	}
}

// Handlers returns the handler specializations referenced by the generated
// tables. It is only populated for variants with interpreter pointers.
func (g *Generator) Handlers() *isa.Handlers {
	return g.handlers
}

// Generate writes all tables in discovery order.
func (g *Generator) Generate(w *writer.Writer) error {
	for _, entry := range g.tables.Entries() {
		if err := g.writeTable(w, entry); err != nil {
			return fmt.Errorf("writing table '%s': %w", entry.Name, err)
		}
	}

	g.logger.Debug("Generated decode tables",
		log.Int("tables", g.tables.Len()),
		log.Int("handlers", g.handlers.Len()))
	return w.Err()
}

func (g *Generator) writeTable(w *writer.Writer, entry discovery.Entry) error {
	w.Linef("%s%s[%s] =", g.cfg.TableDeclaration, entry.Name, entry.Class.Constant())
	w.Line("{")
	w.Indent()

	slots := 0
	for _, table := range []*isa.Table{entry.Table, entry.Secondary} {
		if table == nil {
			continue
		}
		for _, op := range table.Entries() {
			line, err := g.entryLine(op, entry.Path)
			if err != nil {
				return err
			}
			w.Line(line)
			slots++
		}
	}

	w.Deindent()
	w.Line("};")

	if slots != entry.Class.Len() {
		return fmt.Errorf("table has %d slots, expected %d", slots, entry.Class.Len())
	}
	return nil
}

// entryLine returns the initializer of one table slot. The path is the path
// of the table that contains the slot.
func (g *Generator) entryLine(op isa.Opcode, path string) (string, error) {
	if op.Kind.IsPrefix() {
		return prefixLine(op)
	}

	switch op.Kind {
	case isa.Invalid, isa.InvalidX87:
		return fmt.Sprintf("{ %s },", isa.OpInvalid), nil

	case isa.Escape:
		return fmt.Sprintf("{ %s },", isa.OpEscape), nil

	case isa.Normal:
		return g.normalLine(op), nil

	case isa.Extension, isa.ModRMRegExtension, isa.X87Extension:
		return g.extensionLine(op, path)

	default:
		return "", fmt.Errorf("unsupported opcode kind %s at slot 0x%02X", op.Kind, op.Encoding)
	}
}

// prefixLine returns the initializer of a prefix slot. Segment prefixes carry
// the segment register they select.
func prefixLine(op isa.Opcode) (string, error) {
	if op.Kind != isa.SegmentPrefix {
		return fmt.Sprintf("{ %s },", prefixOperations[op.Kind]), nil
	}
	if len(op.Operands) == 0 || op.Operands[0].Data == nil {
		return "", fmt.Errorf("segment prefix 0x%02X has no segment operand", op.Encoding)
	}
	return fmt.Sprintf("{ %s, { { %s, %s, %s } } },", isa.OpSegmentPrefix,
		isa.SizeInherit, isa.ModeSegmentRegister, op.Operands[0].Data.Literal()), nil
}

func (g *Generator) normalLine(op isa.Opcode) string {
	spec := op.Specialization()

	var b strings.Builder
	b.WriteString("{ ")
	b.WriteString(string(op.Operation))
	b.WriteString(", ")
	b.WriteString(operandList(spec.TableOperands()))

	if g.cfg.InterpreterPointer {
		g.handlers.Add(spec)
		b.WriteString(", &")
		b.WriteString(spec.Handler(g.cfg.HandlerPrefix))
	}

	b.WriteString(" },")
	return b.String()
}

// operandList returns the braced list of operand descriptors.
func operandList(operands []isa.Operand) string {
	if len(operands) == 0 {
		return "{}"
	}

	values := make([]string, len(operands))
	for i, operand := range operands {
		values[i] = "{ " + operand.TemplateValue() + " }"
	}
	return "{ " + strings.Join(values, ", ") + " }"
}

func (g *Generator) extensionLine(op isa.Opcode, path string) (string, error) {
	childPath := discovery.ChildPath(path, op.Encoding)
	child, ok := g.tables.Lookup(childPath)
	if !ok || child.Table != op.Child || child.Secondary != op.Secondary {
		return "", fmt.Errorf("%w: %s references undiscovered table '%s'",
			isa.ErrMissingTable, op, discovery.TableName(childPath))
	}

	handler := ""
	if g.cfg.InterpreterPointer {
		handler = "nullptr, "
	}
	return fmt.Sprintf("{ %s, {}, %s%s },", op.Operation, handler, child.Name), nil
}
