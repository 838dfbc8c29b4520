// Package catalog contains the declarative opcode tables of the supported
// instruction set variants.
//
// The tables are built once per call from the same description for both
// variants: every opcode carries the earliest CPU model that implements it
// and the builder leaves slots empty whose opcode is newer than the model
// ceiling of the variant.
package catalog

import (
	"fmt"

	"github.com/retroenv/x86tablegen/internal/isa"
	"github.com/retroenv/x86tablegen/internal/variant"
)

// Load builds the opcode table hierarchy of the given variant.
func Load(v variant.Variant) (*isa.Catalog, error) {
	var b *builder
	switch v {
	case variant.CPU8086:
		b = newBuilder(isa.Model80186, false, isa.Size16)
	case variant.X86:
		b = newBuilder(isa.ModelPentium, true, "")
	default:
		return nil, fmt.Errorf("%w: '%s'", variant.ErrUnsupported, v)
	}

	base := b.baseTable()
	if b.err != nil {
		return nil, fmt.Errorf("building %s catalog: %w", v, b.err)
	}
	return &isa.Catalog{
		Name: string(v),
		Base: base,
	}, nil
}

// builder fills tables and records the first error that occurs.
type builder struct {
	ceiling     isa.Model
	x87         bool            // coprocessor opcodes are decoded instead of escaped
	operandSize isa.OperandSize // fixed size of inherited operands, empty if it depends on the prefixes
	err         error
}

func newBuilder(ceiling isa.Model, x87 bool, operandSize isa.OperandSize) *builder {
	return &builder{
		ceiling:     ceiling,
		x87:         x87,
		operandSize: operandSize,
	}
}

// supports returns whether the variant implements opcodes introduced with
// the given model.
func (b *builder) supports(model isa.Model) bool {
	return model <= b.ceiling
}

func (b *builder) set(t *isa.Table, op isa.Opcode) {
	if b.err != nil || !b.supports(op.MinModel) {
		return
	}
	if b.operandSize != "" {
		op = op.WithOperandSize(b.operandSize)
	}
	if err := t.Set(op); err != nil {
		b.err = fmt.Errorf("setting %s: %w", op, err)
	}
}

// normal adds an executable opcode that is available on every model.
func (b *builder) normal(t *isa.Table, encoding byte, operation isa.Operation, operands ...isa.Operand) {
	b.set(t, normal(isa.Model8088, encoding, operation, operands...))
}

// since adds an executable opcode that was introduced with the given model.
func (b *builder) since(model isa.Model, t *isa.Table, encoding byte, operation isa.Operation, operands ...isa.Operand) {
	b.set(t, normal(model, encoding, operation, operands...))
}

// conditional adds an executable opcode with a jump condition.
func (b *builder) conditional(model isa.Model, t *isa.Table, encoding byte, operation isa.Operation,
	cond isa.JumpCondition, operands ...isa.Operand) {

	op := normal(model, encoding, operation, operands...)
	op.Condition = cond
	b.set(t, op)
}

func (b *builder) prefix(model isa.Model, t *isa.Table, encoding byte, kind isa.Kind, operation isa.Operation,
	operands ...isa.Operand) {

	b.set(t, isa.Opcode{
		Encoding:  encoding,
		Kind:      kind,
		Operation: operation,
		Operands:  operands,
		MinModel:  model,
	})
}

// extension adds an opcode that continues decoding in a nested table keyed
// by the next opcode byte and returns the nested table.
func (b *builder) extension(model isa.Model, t *isa.Table, encoding byte) *isa.Table {
	child := isa.NewTable(isa.OpcodeTableSize, isa.Invalid)
	b.set(t, isa.Opcode{
		Encoding:  encoding,
		Kind:      isa.Extension,
		Operation: isa.OpExtension,
		MinModel:  model,
		Child:     child,
	})
	return child
}

// group adds an opcode that continues decoding in a nested table keyed by
// the ModRM reg field and returns the nested table.
func (b *builder) group(model isa.Model, t *isa.Table, encoding byte) *isa.Table {
	child := isa.NewTable(isa.ModRMExtensionTableSize, isa.Invalid)
	b.set(t, isa.Opcode{
		Encoding:  encoding,
		Kind:      isa.ModRMRegExtension,
		Operation: isa.OpExtensionModRMReg,
		MinModel:  model,
		Child:     child,
	})
	return child
}

// coprocessor adds an x87 escape opcode. Variants with coprocessor support
// get the table pair that decodes it, the others an escape opcode that skips
// the instruction.
func (b *builder) coprocessor(t *isa.Table, encoding byte) (reg, mem *isa.Table) {
	reg = isa.NewTable(isa.X87RegTableSize, isa.InvalidX87)
	mem = isa.NewTable(isa.X87MemTableSize, isa.InvalidX87)

	if !b.x87 {
		b.set(t, isa.Opcode{
			Encoding:  encoding,
			Kind:      isa.Escape,
			Operation: isa.OpEscape,
			MinModel:  isa.Model8088,
		})
		return reg, mem
	}

	b.set(t, isa.Opcode{
		Encoding:  encoding,
		Kind:      isa.X87Extension,
		Operation: isa.OpExtensionModRMX87,
		MinModel:  isa.Model8088,
		Child:     reg,
		Secondary: mem,
	})
	return reg, mem
}

func normal(model isa.Model, encoding byte, operation isa.Operation, operands ...isa.Operand) isa.Opcode {
	return isa.Opcode{
		Encoding:  encoding,
		Kind:      isa.Normal,
		Operation: operation,
		Operands:  operands,
		MinModel:  model,
	}
}
