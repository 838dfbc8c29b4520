// Package isatest provides small opcode table hierarchies for tests.
package isatest

import "github.com/retroenv/x86tablegen/internal/isa"

// Operands used by the fixtures.
var (
	Eb = isa.Operand{Text: "Eb", Size: isa.Size8, Mode: isa.ModeModRMRM}
	Ev = isa.Operand{Text: "Ev", Size: isa.SizeInherit, Mode: isa.ModeModRMRM}
	Gb = isa.Operand{Text: "Gb", Size: isa.Size8, Mode: isa.ModeModRMReg}
	Gv = isa.Operand{Text: "Gv", Size: isa.SizeInherit, Mode: isa.ModeModRMReg}
	Ib = isa.Operand{Text: "Ib", Size: isa.Size8, Mode: isa.ModeImmediate}
	Iw = isa.Operand{Text: "Iw", Size: isa.Size16, Mode: isa.ModeImmediate}
	Jb = isa.Operand{Text: "Jb", Size: isa.Size8, Mode: isa.ModeRelative}
	Md = isa.Operand{Text: "Md", Size: isa.Size32, Mode: isa.ModeModRMRM}
	AL = isa.Operand{Text: "AL", Size: isa.Size8, Mode: isa.ModeRegister, Data: isa.Reg8AL}
	ES = isa.Operand{Text: "ES", Size: isa.Size16, Mode: isa.ModeSegmentRegister, Data: isa.SegmentES}

	ST0 = isa.Operand{Text: "ST(0)", Size: isa.Size80, Mode: isa.ModeFPRegister, Data: isa.Constant(0)}
	ST1 = isa.Operand{Text: "ST(1)", Size: isa.Size80, Mode: isa.ModeFPRegister, Data: isa.Constant(1)}
)

// Hierarchy is a base table with the tables that it references.
type Hierarchy struct {
	Base     *isa.Table
	Extended *isa.Table // 0x0F
	Group    *isa.Table // 0x80
	X87Reg   *isa.Table // 0xD9, keyed by the ModRM reg field
	X87Mem   *isa.Table // 0xD9, keyed by the low six bits of the ModRM byte
}

// New returns a hierarchy that contains every opcode kind:
//
//	00    ADD Eb, Gb
//	0F    extension: A2 CPUID, AF IMUL Gv, Ev, 80 Jcc Jb (overflow)
//	26    ES segment prefix
//	66/67 operand and address size prefixes
//	70    Jcc Jb (overflow)
//	80    group: /0 ADD Eb, Ib, /7 CMP Eb, Ib
//	88    MOV Eb, Gb
//	8A    MOV Gb, Eb
//	B0    MOV AL, Ib
//	C8    ENTER Iw, Ib
//	D9    x87: /0 FLD Md, C9 FXCH ST(1), E8 FLD1
//	DB    escape
//	F0    lock, F2 repne, F3 rep prefixes
func New() Hierarchy {
	h := Hierarchy{
		Base:     isa.NewTable(isa.OpcodeTableSize, isa.Invalid),
		Extended: isa.NewTable(isa.OpcodeTableSize, isa.Invalid),
		Group:    isa.NewTable(isa.ModRMExtensionTableSize, isa.Invalid),
		X87Reg:   isa.NewTable(isa.X87RegTableSize, isa.InvalidX87),
		X87Mem:   isa.NewTable(isa.X87MemTableSize, isa.InvalidX87),
	}

	mustSet(h.Base, normal(0x00, isa.OpADD, Eb, Gb))
	mustSet(h.Base, isa.Opcode{Encoding: 0x0F, Kind: isa.Extension, Operation: isa.OpExtension, Child: h.Extended})
	mustSet(h.Base, isa.Opcode{Encoding: 0x26, Kind: isa.SegmentPrefix, Operation: isa.OpSegmentPrefix, Operands: []isa.Operand{ES}})
	mustSet(h.Base, isa.Opcode{Encoding: 0x66, Kind: isa.OperandSizePrefix, Operation: isa.OpOperandSizePrefix})
	mustSet(h.Base, isa.Opcode{Encoding: 0x67, Kind: isa.AddressSizePrefix, Operation: isa.OpAddressSizePrefix})
	mustSet(h.Base, conditional(0x70, isa.OpJcc, isa.CondOverflow, Jb))
	mustSet(h.Base, isa.Opcode{Encoding: 0x80, Kind: isa.ModRMRegExtension, Operation: isa.OpExtensionModRMReg, Child: h.Group})
	mustSet(h.Base, normal(0x88, isa.OpMOV, Eb, Gb))
	mustSet(h.Base, normal(0x8A, isa.OpMOV, Gb, Eb))
	mustSet(h.Base, normal(0xB0, isa.OpMOV, AL, Ib))
	mustSet(h.Base, normal(0xC8, isa.OpENTER, Iw, Ib))
	mustSet(h.Base, isa.Opcode{
		Encoding:  0xD9,
		Kind:      isa.X87Extension,
		Operation: isa.OpExtensionModRMX87,
		Child:     h.X87Reg,
		Secondary: h.X87Mem,
	})
	mustSet(h.Base, isa.Opcode{Encoding: 0xDB, Kind: isa.Escape, Operation: isa.OpEscape})
	mustSet(h.Base, isa.Opcode{Encoding: 0xF0, Kind: isa.LockPrefix, Operation: isa.OpLockPrefix})
	mustSet(h.Base, isa.Opcode{Encoding: 0xF2, Kind: isa.RepNEPrefix, Operation: isa.OpRepNEPrefix})
	mustSet(h.Base, isa.Opcode{Encoding: 0xF3, Kind: isa.RepPrefix, Operation: isa.OpRepPrefix})

	mustSet(h.Extended, normal(0xA2, isa.OpCPUID))
	mustSet(h.Extended, normal(0xAF, isa.OpIMUL, Gv, Ev))
	mustSet(h.Extended, conditional(0x80, isa.OpJcc, isa.CondOverflow, Jb))

	mustSet(h.Group, normal(0, isa.OpADD, Eb, Ib))
	mustSet(h.Group, normal(7, isa.OpCMP, Eb, Ib))

	mustSet(h.X87Reg, normal(0, isa.OpFLD, Md))
	mustSet(h.X87Mem, normal(0x09, isa.OpFXCH, ST1))
	mustSet(h.X87Mem, normal(0x28, isa.OpFLD1))
	return h
}

func normal(encoding byte, operation isa.Operation, operands ...isa.Operand) isa.Opcode {
	return isa.Opcode{
		Encoding:  encoding,
		Kind:      isa.Normal,
		Operation: operation,
		Operands:  operands,
	}
}

func conditional(encoding byte, operation isa.Operation, cond isa.JumpCondition, operands ...isa.Operand) isa.Opcode {
	op := normal(encoding, operation, operands...)
	op.Condition = cond
	return op
}

func mustSet(t *isa.Table, op isa.Opcode) {
	if err := t.Set(op); err != nil {
		panic(err)
	}
}
