package catalog

import "github.com/retroenv/x86tablegen/internal/isa"

// aluOperations are the operations of the opcode rows 0x00-0x3F and of the
// immediate groups 0x80-0x83, in encoding order.
var aluOperations = [8]isa.Operation{
	isa.OpADD, isa.OpOR, isa.OpADC, isa.OpSBB, isa.OpAND, isa.OpSUB, isa.OpXOR, isa.OpCMP,
}

// shiftOperations are the operations of the shift groups 0xC0, 0xC1 and 0xD0-0xD3.
var shiftOperations = [8]isa.Operation{
	isa.OpROL, isa.OpROR, isa.OpRCL, isa.OpRCR, isa.OpSHL, isa.OpSHR, isa.OpSAL, isa.OpSAR,
}

// conditions are the jump conditions in the order of the condition code
// encoding used by Jcc, SETcc and CMOVcc.
var conditions = [16]isa.JumpCondition{
	isa.CondOverflow, isa.CondNotOverflow, isa.CondBelow, isa.CondAboveOrEqual,
	isa.CondEqual, isa.CondNotEqual, isa.CondBelowOrEqual, isa.CondAbove,
	isa.CondSign, isa.CondNotSign, isa.CondParity, isa.CondNotParity,
	isa.CondLess, isa.CondGreaterOrEqual, isa.CondLessOrEqual, isa.CondGreater,
}

func (b *builder) baseTable() *isa.Table {
	t := isa.NewTable(isa.OpcodeTableSize, isa.Invalid)

	b.aluRows(t)
	b.segmentOpcodes(t)

	b.normal(t, 0x27, isa.OpDAA)
	b.normal(t, 0x2F, isa.OpDAS)
	b.normal(t, 0x37, isa.OpAAA)
	b.normal(t, 0x3F, isa.OpAAS)

	for i := range 8 {
		enc := byte(i)
		b.normal(t, 0x40+enc, isa.OpINC, regByIndexV(i))
		b.normal(t, 0x48+enc, isa.OpDEC, regByIndexV(i))
		b.normal(t, 0x50+enc, isa.OpPUSH, regByIndexV(i))
		b.normal(t, 0x58+enc, isa.OpPOP, regByIndexV(i))
	}

	b.since(isa.Model80188, t, 0x60, isa.OpPUSHA)
	b.since(isa.Model80188, t, 0x61, isa.OpPOPA)
	b.since(isa.Model80188, t, 0x62, isa.OpBOUND, gv, ma)
	b.since(isa.Model386, t, 0x63, isa.OpARPL, ew, gw)
	b.prefix(isa.Model386, t, 0x66, isa.OperandSizePrefix, isa.OpOperandSizePrefix)
	b.prefix(isa.Model386, t, 0x67, isa.AddressSizePrefix, isa.OpAddressSizePrefix)
	b.since(isa.Model80188, t, 0x68, isa.OpPUSH, iv)
	b.since(isa.Model80188, t, 0x69, isa.OpIMUL, gv, ev, iv)
	b.since(isa.Model80188, t, 0x6A, isa.OpPUSH, ib)
	b.since(isa.Model80188, t, 0x6B, isa.OpIMUL, gv, ev, ib)
	b.since(isa.Model80188, t, 0x6C, isa.OpINS, yb, dx)
	b.since(isa.Model80188, t, 0x6D, isa.OpINS, yv, dx)
	b.since(isa.Model80188, t, 0x6E, isa.OpOUTS, dx, xb)
	b.since(isa.Model80188, t, 0x6F, isa.OpOUTS, dx, xv)

	for i, cond := range conditions {
		b.conditional(isa.Model8088, t, 0x70+byte(i), isa.OpJcc, cond, jb)
	}

	b.immediateGroups(t)

	b.normal(t, 0x84, isa.OpTEST, eb, gb)
	b.normal(t, 0x85, isa.OpTEST, ev, gv)
	b.normal(t, 0x86, isa.OpXCHG, eb, gb)
	b.normal(t, 0x87, isa.OpXCHG, ev, gv)
	b.normal(t, 0x88, isa.OpMOV, eb, gb)
	b.normal(t, 0x89, isa.OpMOV, ev, gv)
	b.normal(t, 0x8A, isa.OpMOV, gb, eb)
	b.normal(t, 0x8B, isa.OpMOV, gv, ev)
	b.normal(t, 0x8C, isa.OpMOVSreg, ew, sw)
	b.normal(t, 0x8D, isa.OpLEA, gv, m)
	b.normal(t, 0x8E, isa.OpMOVSreg, sw, ew)
	b.normal(t, 0x8F, isa.OpPOP, ev)

	b.normal(t, 0x90, isa.OpNOP)
	for i := 1; i < 8; i++ {
		b.normal(t, 0x90+byte(i), isa.OpXCHG, regByIndexV(i), eAX)
	}

	b.normal(t, 0x98, isa.OpCBW)
	b.normal(t, 0x99, isa.OpCWD)
	b.normal(t, 0x9A, isa.OpCALLFar, ap)
	b.normal(t, 0x9B, isa.OpWAIT)
	b.normal(t, 0x9C, isa.OpPUSHF)
	b.normal(t, 0x9D, isa.OpPOPF)
	b.normal(t, 0x9E, isa.OpSAHF)
	b.normal(t, 0x9F, isa.OpLAHF)

	b.normal(t, 0xA0, isa.OpMOV, al, ob)
	b.normal(t, 0xA1, isa.OpMOV, eAX, ov)
	b.normal(t, 0xA2, isa.OpMOV, ob, al)
	b.normal(t, 0xA3, isa.OpMOV, ov, eAX)
	b.normal(t, 0xA4, isa.OpMOVS, yb, xb)
	b.normal(t, 0xA5, isa.OpMOVS, yv, xv)
	b.normal(t, 0xA6, isa.OpCMPS, xb, yb)
	b.normal(t, 0xA7, isa.OpCMPS, xv, yv)
	b.normal(t, 0xA8, isa.OpTEST, al, ib)
	b.normal(t, 0xA9, isa.OpTEST, eAX, iv)
	b.normal(t, 0xAA, isa.OpSTOS, yb, al)
	b.normal(t, 0xAB, isa.OpSTOS, yv, eAX)
	b.normal(t, 0xAC, isa.OpLODS, al, xb)
	b.normal(t, 0xAD, isa.OpLODS, eAX, xv)
	b.normal(t, 0xAE, isa.OpSCAS, al, yb)
	b.normal(t, 0xAF, isa.OpSCAS, eAX, yv)

	for i := range 8 {
		b.normal(t, 0xB0+byte(i), isa.OpMOV, regByIndex8(i), ib)
		b.normal(t, 0xB8+byte(i), isa.OpMOV, regByIndexV(i), iv)
	}

	b.shiftGroups(t)

	b.normal(t, 0xC2, isa.OpRETNear, iw)
	b.normal(t, 0xC3, isa.OpRETNear)
	b.normal(t, 0xC4, isa.OpLES, gv, mp)
	b.normal(t, 0xC5, isa.OpLDS, gv, mp)
	b.normal(t, 0xC6, isa.OpMOV, eb, ib)
	b.normal(t, 0xC7, isa.OpMOV, ev, iv)
	b.since(isa.Model80188, t, 0xC8, isa.OpENTER, iw, ib2)
	b.since(isa.Model80188, t, 0xC9, isa.OpLEAVE)
	b.normal(t, 0xCA, isa.OpRETFar, iw)
	b.normal(t, 0xCB, isa.OpRETFar)
	b.normal(t, 0xCC, isa.OpINT3)
	b.normal(t, 0xCD, isa.OpINT, ib)
	b.normal(t, 0xCE, isa.OpINTO)
	b.normal(t, 0xCF, isa.OpIRET)

	b.normal(t, 0xD4, isa.OpAAM, ib)
	b.normal(t, 0xD5, isa.OpAAD, ib)
	b.normal(t, 0xD6, isa.OpSALC)
	b.normal(t, 0xD7, isa.OpXLAT)

	b.x87Tables(t)

	b.conditional(isa.Model8088, t, 0xE0, isa.OpLOOP, isa.CondNotEqual, jb)
	b.conditional(isa.Model8088, t, 0xE1, isa.OpLOOP, isa.CondEqual, jb)
	b.conditional(isa.Model8088, t, 0xE2, isa.OpLOOP, isa.CondAlways, jb)
	b.conditional(isa.Model8088, t, 0xE3, isa.OpJcc, isa.CondCXZero, jb)
	b.normal(t, 0xE4, isa.OpIN, al, ib)
	b.normal(t, 0xE5, isa.OpIN, eAX, ib)
	b.normal(t, 0xE6, isa.OpOUT, ib, al)
	b.normal(t, 0xE7, isa.OpOUT, ib, eAX)
	b.normal(t, 0xE8, isa.OpCALLNear, jv)
	b.normal(t, 0xE9, isa.OpJMPNear, jv)
	b.normal(t, 0xEA, isa.OpJMPFar, ap)
	b.normal(t, 0xEB, isa.OpJMPNear, jb)
	b.normal(t, 0xEC, isa.OpIN, al, dx)
	b.normal(t, 0xED, isa.OpIN, eAX, dx)
	b.normal(t, 0xEE, isa.OpOUT, dx, al)
	b.normal(t, 0xEF, isa.OpOUT, dx, eAX)

	b.prefix(isa.Model8088, t, 0xF0, isa.LockPrefix, isa.OpLockPrefix)
	b.prefix(isa.Model8088, t, 0xF2, isa.RepNEPrefix, isa.OpRepNEPrefix)
	b.prefix(isa.Model8088, t, 0xF3, isa.RepPrefix, isa.OpRepPrefix)
	b.normal(t, 0xF4, isa.OpHLT)
	b.normal(t, 0xF5, isa.OpCMC)
	b.unaryGroups(t)
	b.normal(t, 0xF8, isa.OpCLC)
	b.normal(t, 0xF9, isa.OpSTC)
	b.normal(t, 0xFA, isa.OpCLI)
	b.normal(t, 0xFB, isa.OpSTI)
	b.normal(t, 0xFC, isa.OpCLD)
	b.normal(t, 0xFD, isa.OpSTD)

	if b.supports(isa.Model386) {
		b.extendedTable(t)
	} else {
		// only the 8086 decodes 0x0F as POP CS, later models use it as escape
		// to the two byte opcode table
		b.normal(t, 0x0F, isa.OpPOPSreg, sreg(isa.SegmentCS))
	}

	return t
}

// aluRows adds the six opcodes of each of the eight ALU rows 0x00-0x3F.
func (b *builder) aluRows(t *isa.Table) {
	for i, operation := range aluOperations {
		row := byte(i) * 8
		b.normal(t, row+0, operation, eb, gb)
		b.normal(t, row+1, operation, ev, gv)
		b.normal(t, row+2, operation, gb, eb)
		b.normal(t, row+3, operation, gv, ev)
		b.normal(t, row+4, operation, al, ib)
		b.normal(t, row+5, operation, eAX, iv)
	}
}

// segmentOpcodes adds the segment register push, pop and override prefix
// opcodes.
func (b *builder) segmentOpcodes(t *isa.Table) {
	b.normal(t, 0x06, isa.OpPUSHSreg, sreg(isa.SegmentES))
	b.normal(t, 0x07, isa.OpPOPSreg, sreg(isa.SegmentES))
	b.normal(t, 0x0E, isa.OpPUSHSreg, sreg(isa.SegmentCS))
	b.normal(t, 0x16, isa.OpPUSHSreg, sreg(isa.SegmentSS))
	b.normal(t, 0x17, isa.OpPOPSreg, sreg(isa.SegmentSS))
	b.normal(t, 0x1E, isa.OpPUSHSreg, sreg(isa.SegmentDS))
	b.normal(t, 0x1F, isa.OpPOPSreg, sreg(isa.SegmentDS))

	overrides := []struct {
		encoding byte
		segment  isa.Segment
		model    isa.Model
	}{
		{0x26, isa.SegmentES, isa.Model8088},
		{0x2E, isa.SegmentCS, isa.Model8088},
		{0x36, isa.SegmentSS, isa.Model8088},
		{0x3E, isa.SegmentDS, isa.Model8088},
		{0x64, isa.SegmentFS, isa.Model386},
		{0x65, isa.SegmentGS, isa.Model386},
	}
	for _, override := range overrides {
		b.prefix(override.model, t, override.encoding, isa.SegmentPrefix, isa.OpSegmentPrefix, sreg(override.segment))
	}
}

// immediateGroups adds the ALU groups 0x80-0x83 with an immediate source.
func (b *builder) immediateGroups(t *isa.Table) {
	shapes := []struct {
		encoding byte
		dst, src isa.Operand
	}{
		{0x80, eb, ib},
		{0x81, ev, iv},
		{0x82, eb, ib},
		{0x83, ev, ib},
	}
	for _, shape := range shapes {
		g := b.group(isa.Model8088, t, shape.encoding)
		for reg, operation := range aluOperations {
			b.normal(g, byte(reg), operation, shape.dst, shape.src)
		}
	}
}

// shiftGroups adds the rotate and shift groups.
func (b *builder) shiftGroups(t *isa.Table) {
	shapes := []struct {
		encoding byte
		model    isa.Model
		dst, src isa.Operand
	}{
		{0xC0, isa.Model80188, eb, ib},
		{0xC1, isa.Model80188, ev, ib},
		{0xD0, isa.Model8088, eb, one},
		{0xD1, isa.Model8088, ev, one},
		{0xD2, isa.Model8088, eb, cl},
		{0xD3, isa.Model8088, ev, cl},
	}
	for _, shape := range shapes {
		if !b.supports(shape.model) {
			continue
		}
		g := b.group(shape.model, t, shape.encoding)
		for reg, operation := range shiftOperations {
			b.since(shape.model, g, byte(reg), operation, shape.dst, shape.src)
		}
	}
}

// unaryGroups adds the groups 0xF6, 0xF7, 0xFE and 0xFF.
func (b *builder) unaryGroups(t *isa.Table) {
	for _, shape := range []struct {
		encoding byte
		operand  isa.Operand
		imm      isa.Operand
	}{
		{0xF6, eb, ib},
		{0xF7, ev, iv},
	} {
		g := b.group(isa.Model8088, t, shape.encoding)
		b.normal(g, 0, isa.OpTEST, shape.operand, shape.imm)
		b.normal(g, 1, isa.OpTEST, shape.operand, shape.imm)
		b.normal(g, 2, isa.OpNOT, shape.operand)
		b.normal(g, 3, isa.OpNEG, shape.operand)
		b.normal(g, 4, isa.OpMUL, shape.operand)
		b.normal(g, 5, isa.OpIMUL, shape.operand)
		b.normal(g, 6, isa.OpDIV, shape.operand)
		b.normal(g, 7, isa.OpIDIV, shape.operand)
	}

	g := b.group(isa.Model8088, t, 0xFE)
	b.normal(g, 0, isa.OpINC, eb)
	b.normal(g, 1, isa.OpDEC, eb)

	g = b.group(isa.Model8088, t, 0xFF)
	b.normal(g, 0, isa.OpINC, ev)
	b.normal(g, 1, isa.OpDEC, ev)
	b.normal(g, 2, isa.OpCALLNear, ev)
	b.normal(g, 3, isa.OpCALLFar, mp)
	b.normal(g, 4, isa.OpJMPNear, ev)
	b.normal(g, 5, isa.OpJMPFar, mp)
	b.normal(g, 6, isa.OpPUSH, ev)
}
