package isa

import (
	"fmt"
	"strings"
)

// Kind is the opcode kind, deciding how a table slot is decoded.
type Kind uint8

// Opcode kinds.
const (
	Invalid           Kind = iota
	InvalidX87        // unassigned point of the x87 opcode space
	Normal            // terminal, executable instruction
	SegmentPrefix     // segment override prefix
	OperandSizePrefix // operand size override prefix
	AddressSizePrefix // address size override prefix
	LockPrefix        // lock prefix
	RepPrefix         // rep/repe prefix
	RepNEPrefix       // repne prefix
	Escape            // coprocessor opcode on a CPU without coprocessor support
	Extension         // nested table keyed by the next opcode byte
	ModRMRegExtension // nested table keyed by the ModRM reg field
	X87Extension      // nested table pair for the x87 coprocessor
)

var kindNames = [...]string{
	Invalid:           "Invalid",
	InvalidX87:        "InvalidX87",
	Normal:            "Normal",
	SegmentPrefix:     "SegmentPrefix",
	OperandSizePrefix: "OperandSizePrefix",
	AddressSizePrefix: "AddressSizePrefix",
	LockPrefix:        "LockPrefix",
	RepPrefix:         "RepPrefix",
	RepNEPrefix:       "RepNEPrefix",
	Escape:            "Escape",
	Extension:         "Extension",
	ModRMRegExtension: "ModRMRegExtension",
	X87Extension:      "X87Extension",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsInvalid returns whether the kind marks an unassigned opcode.
func (k Kind) IsInvalid() bool {
	return k == Invalid || k == InvalidX87
}

// IsPrefix returns whether the kind is one of the prefix kinds.
func (k Kind) IsPrefix() bool {
	return k >= SegmentPrefix && k <= RepNEPrefix
}

// IsExtension returns whether the kind introduces nested tables.
func (k Kind) IsExtension() bool {
	return k == Extension || k == ModRMRegExtension || k == X87Extension
}

// Opcode is one slot of an opcode table.
type Opcode struct {
	Encoding  byte // index of the slot in its table
	Kind      Kind
	Operation Operation
	Operands  []Operand
	Condition JumpCondition // empty for unconditional opcodes
	MinModel  Model

	// Child is the nested table of Extension and ModRMRegExtension opcodes,
	// and the table keyed by the ModRM reg field of X87Extension opcodes.
	Child *Table
	// Secondary is the table of X87Extension opcodes keyed by the low six
	// bits of the ModRM byte.
	Secondary *Table
}

// WithOperandSize returns a copy of the opcode with every operand that
// inherits its size from the context set to the given size.
func (o Opcode) WithOperandSize(size OperandSize) Opcode {
	operands := make([]Operand, len(o.Operands))
	for i, operand := range o.Operands {
		if operand.Size == SizeInherit {
			operand.Size = size
		}
		operands[i] = operand
	}
	o.Operands = operands
	return o
}

// String returns a human readable description of the opcode, used as
// comment in generated code.
func (o Opcode) String() string {
	switch o.Kind {
	case Invalid:
		return fmt.Sprintf("Invalid 0x%02X", o.Encoding)
	case InvalidX87:
		return fmt.Sprintf("Invalid X87 0x%02X", o.Encoding)
	case SegmentPrefix:
		if len(o.Operands) > 0 && o.Operands[0].Data != nil {
			return "Prefix " + o.Operands[0].Data.Literal()
		}
		return "Prefix"
	case AddressSizePrefix:
		return "Address-Size Prefix"
	case OperandSizePrefix:
		return "Operand-Size Prefix"
	case LockPrefix:
		return "Lock Prefix"
	case RepPrefix:
		return "Rep Prefix"
	case RepNEPrefix:
		return "RepNE Prefix"
	case Escape:
		return fmt.Sprintf("Escape 0x%02X", o.Encoding)
	case Extension:
		return fmt.Sprintf("Extension 0x%02X", o.Encoding)
	case ModRMRegExtension:
		return fmt.Sprintf("ModRM-Reg-Extension 0x%02X", o.Encoding)
	case X87Extension:
		return fmt.Sprintf("X87 Extension 0x%02X", o.Encoding)
	}

	var b strings.Builder
	b.WriteString(o.Operation.Mnemonic())
	for i, operand := range o.Operands {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(operand.Text)
	}
	return b.String()
}

// Mnemonic returns the operation name without the identifier prefix.
func (op Operation) Mnemonic() string {
	return strings.TrimPrefix(string(op), "Operation_")
}
