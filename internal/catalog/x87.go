package catalog

import "github.com/retroenv/x86tablegen/internal/isa"

// x87Arithmetic are the operations of the memory forms of 0xD8, 0xDA, 0xDC
// and 0xDE in ModRM reg field order.
var x87Arithmetic = [8]isa.Operation{
	isa.OpFADD, isa.OpFMUL, isa.OpFCOM, isa.OpFCOMP, isa.OpFSUB, isa.OpFSUBR, isa.OpFDIV, isa.OpFDIVR,
}

var x87IntegerArithmetic = [8]isa.Operation{
	isa.OpFIADD, isa.OpFIMUL, isa.OpFICOM, isa.OpFICOMP, isa.OpFISUB, isa.OpFISUBR, isa.OpFIDIV, isa.OpFIDIVR,
}

// x87Tables adds the coprocessor escape opcodes 0xD8-0xDF. Each of them has a
// table for memory operands keyed by the ModRM reg field and a table for
// register operands keyed by the low six bits of the ModRM byte.
func (b *builder) x87Tables(t *isa.Table) {
	b.x87D8(b.coprocessor(t, 0xD8))
	b.x87D9(b.coprocessor(t, 0xD9))
	b.x87DA(b.coprocessor(t, 0xDA))
	b.x87DB(b.coprocessor(t, 0xDB))
	b.x87DC(b.coprocessor(t, 0xDC))
	b.x87DD(b.coprocessor(t, 0xDD))
	b.x87DE(b.coprocessor(t, 0xDE))
	b.x87DF(b.coprocessor(t, 0xDF))
}

// stackRow adds the eight register forms of an operation starting at the
// given low six bits value, ST(i) being encoded in the ModRM r/m field.
func (b *builder) stackRow(model isa.Model, t *isa.Table, start byte, operation isa.Operation,
	operands func(i int) []isa.Operand) {

	for i := range 8 {
		b.since(model, t, start+byte(i), operation, operands(i)...)
	}
}

func stackOnly(i int) []isa.Operand {
	return []isa.Operand{st(i)}
}

func stackToTop(i int) []isa.Operand {
	return []isa.Operand{st0, st(i)}
}

func topToStack(i int) []isa.Operand {
	return []isa.Operand{st(i), st0}
}

func (b *builder) x87D8(reg, mem *isa.Table) {
	for i, operation := range x87Arithmetic {
		b.normal(reg, byte(i), operation, md)
	}
	b.stackRow(isa.Model8088, mem, 0x00, isa.OpFADD, stackToTop)
	b.stackRow(isa.Model8088, mem, 0x08, isa.OpFMUL, stackToTop)
	b.stackRow(isa.Model8088, mem, 0x10, isa.OpFCOM, stackOnly)
	b.stackRow(isa.Model8088, mem, 0x18, isa.OpFCOMP, stackOnly)
	b.stackRow(isa.Model8088, mem, 0x20, isa.OpFSUB, stackToTop)
	b.stackRow(isa.Model8088, mem, 0x28, isa.OpFSUBR, stackToTop)
	b.stackRow(isa.Model8088, mem, 0x30, isa.OpFDIV, stackToTop)
	b.stackRow(isa.Model8088, mem, 0x38, isa.OpFDIVR, stackToTop)
}

func (b *builder) x87D9(reg, mem *isa.Table) {
	b.normal(reg, 0, isa.OpFLD, md)
	b.normal(reg, 2, isa.OpFST, md)
	b.normal(reg, 3, isa.OpFSTP, md)
	b.normal(reg, 4, isa.OpFLDENV, m)
	b.normal(reg, 5, isa.OpFLDCW, mw)
	b.normal(reg, 6, isa.OpFNSTENV, m)
	b.normal(reg, 7, isa.OpFNSTCW, mw)

	b.stackRow(isa.Model8088, mem, 0x00, isa.OpFLD, stackOnly)
	b.stackRow(isa.Model8088, mem, 0x08, isa.OpFXCH, stackOnly)

	fixed := []struct {
		encoding  byte
		operation isa.Operation
		model     isa.Model
	}{
		{0x10, isa.OpFNOP, isa.Model8088},
		{0x20, isa.OpFCHS, isa.Model8088},
		{0x21, isa.OpFABS, isa.Model8088},
		{0x24, isa.OpFTST, isa.Model8088},
		{0x25, isa.OpFXAM, isa.Model8088},
		{0x28, isa.OpFLD1, isa.Model8088},
		{0x29, isa.OpFLDL2T, isa.Model8088},
		{0x2A, isa.OpFLDL2E, isa.Model8088},
		{0x2B, isa.OpFLDPI, isa.Model8088},
		{0x2C, isa.OpFLDLG2, isa.Model8088},
		{0x2D, isa.OpFLDLN2, isa.Model8088},
		{0x2E, isa.OpFLDZ, isa.Model8088},
		{0x30, isa.OpF2XM1, isa.Model8088},
		{0x31, isa.OpFYL2X, isa.Model8088},
		{0x32, isa.OpFPTAN, isa.Model8088},
		{0x33, isa.OpFPATAN, isa.Model8088},
		{0x34, isa.OpFXTRACT, isa.Model8088},
		{0x35, isa.OpFPREM1, isa.Model386},
		{0x36, isa.OpFDECSTP, isa.Model8088},
		{0x37, isa.OpFINCSTP, isa.Model8088},
		{0x38, isa.OpFPREM, isa.Model8088},
		{0x39, isa.OpFYL2XP1, isa.Model8088},
		{0x3A, isa.OpFSQRT, isa.Model8088},
		{0x3B, isa.OpFSINCOS, isa.Model386},
		{0x3C, isa.OpFRNDINT, isa.Model8088},
		{0x3D, isa.OpFSCALE, isa.Model8088},
		{0x3E, isa.OpFSIN, isa.Model386},
		{0x3F, isa.OpFCOS, isa.Model386},
	}
	for _, op := range fixed {
		b.since(op.model, mem, op.encoding, op.operation)
	}
}

func (b *builder) x87DA(reg, mem *isa.Table) {
	for i, operation := range x87IntegerArithmetic {
		b.normal(reg, byte(i), operation, md)
	}
	b.since(isa.Model386, mem, 0x29, isa.OpFUCOMPP)
}

func (b *builder) x87DB(reg, mem *isa.Table) {
	b.normal(reg, 0, isa.OpFILD, md)
	b.normal(reg, 2, isa.OpFIST, md)
	b.normal(reg, 3, isa.OpFISTP, md)
	b.normal(reg, 5, isa.OpFLD, mt)
	b.normal(reg, 7, isa.OpFSTP, mt)

	b.normal(mem, 0x20, isa.OpFNENI)
	b.normal(mem, 0x21, isa.OpFNDISI)
	b.normal(mem, 0x22, isa.OpFNCLEX)
	b.normal(mem, 0x23, isa.OpFNINIT)
	b.since(isa.Model386, mem, 0x24, isa.OpFSETPM)
}

func (b *builder) x87DC(reg, mem *isa.Table) {
	for i, operation := range x87Arithmetic {
		b.normal(reg, byte(i), operation, mq)
	}
	b.stackRow(isa.Model8088, mem, 0x00, isa.OpFADD, topToStack)
	b.stackRow(isa.Model8088, mem, 0x08, isa.OpFMUL, topToStack)
	b.stackRow(isa.Model8088, mem, 0x10, isa.OpFCOM, stackOnly)
	b.stackRow(isa.Model8088, mem, 0x18, isa.OpFCOMP, stackOnly)
	// the register forms swap the reversed and the normal subtract and
	// divide compared to 0xD8
	b.stackRow(isa.Model8088, mem, 0x20, isa.OpFSUBR, topToStack)
	b.stackRow(isa.Model8088, mem, 0x28, isa.OpFSUB, topToStack)
	b.stackRow(isa.Model8088, mem, 0x30, isa.OpFDIVR, topToStack)
	b.stackRow(isa.Model8088, mem, 0x38, isa.OpFDIV, topToStack)
}

func (b *builder) x87DD(reg, mem *isa.Table) {
	b.normal(reg, 0, isa.OpFLD, mq)
	b.normal(reg, 2, isa.OpFST, mq)
	b.normal(reg, 3, isa.OpFSTP, mq)
	b.normal(reg, 4, isa.OpFRSTOR, m)
	b.normal(reg, 6, isa.OpFNSAVE, m)
	b.normal(reg, 7, isa.OpFNSTSW, mw)

	b.stackRow(isa.Model8088, mem, 0x00, isa.OpFFREE, stackOnly)
	b.stackRow(isa.Model8088, mem, 0x10, isa.OpFST, stackOnly)
	b.stackRow(isa.Model8088, mem, 0x18, isa.OpFSTP, stackOnly)
	b.stackRow(isa.Model386, mem, 0x20, isa.OpFUCOM, stackOnly)
	b.stackRow(isa.Model386, mem, 0x28, isa.OpFUCOMP, stackOnly)
}

func (b *builder) x87DE(reg, mem *isa.Table) {
	for i, operation := range x87IntegerArithmetic {
		b.normal(reg, byte(i), operation, mw)
	}
	b.stackRow(isa.Model8088, mem, 0x00, isa.OpFADDP, topToStack)
	b.stackRow(isa.Model8088, mem, 0x08, isa.OpFMULP, topToStack)
	b.normal(mem, 0x19, isa.OpFCOMPP)
	b.stackRow(isa.Model8088, mem, 0x20, isa.OpFSUBRP, topToStack)
	b.stackRow(isa.Model8088, mem, 0x28, isa.OpFSUBP, topToStack)
	b.stackRow(isa.Model8088, mem, 0x30, isa.OpFDIVRP, topToStack)
	b.stackRow(isa.Model8088, mem, 0x38, isa.OpFDIVP, topToStack)
}

func (b *builder) x87DF(reg, mem *isa.Table) {
	b.normal(reg, 0, isa.OpFILD, mw)
	b.normal(reg, 2, isa.OpFIST, mw)
	b.normal(reg, 3, isa.OpFISTP, mw)
	b.normal(reg, 4, isa.OpFBLD, mt)
	b.normal(reg, 5, isa.OpFILD, mq)
	b.normal(reg, 6, isa.OpFBSTP, mt)
	b.normal(reg, 7, isa.OpFISTP, mq)

	b.normal(mem, 0x20, isa.OpFNSTSW, isa.Operand{Text: "AX", Size: isa.Size16, Mode: isa.ModeRegister, Data: isa.Reg16AX})
}
