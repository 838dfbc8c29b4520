package catalog

import "github.com/retroenv/x86tablegen/internal/isa"

// Operand shorthands following the Intel opcode map notation: the upper case
// letter is the addressing method, the lower case letters the operand size.

func modrmRM(text string, size isa.OperandSize) isa.Operand {
	return isa.Operand{Text: text, Size: size, Mode: isa.ModeModRMRM}
}

func modrmReg(text string, size isa.OperandSize) isa.Operand {
	return isa.Operand{Text: text, Size: size, Mode: isa.ModeModRMReg}
}

func immediate(text string, size isa.OperandSize) isa.Operand {
	return isa.Operand{Text: text, Size: size, Mode: isa.ModeImmediate}
}

func relative(text string, size isa.OperandSize) isa.Operand {
	return isa.Operand{Text: text, Size: size, Mode: isa.ModeRelative}
}

var (
	eb = modrmRM("Eb", isa.Size8)
	ew = modrmRM("Ew", isa.Size16)
	ed = modrmRM("Ed", isa.Size32)
	ev = modrmRM("Ev", isa.SizeInherit)
	m  = modrmRM("M", isa.SizeInherit)
	mp = modrmRM("Mp", isa.SizeInherit)
	ma = modrmRM("Ma", isa.SizeInherit)
	mw = modrmRM("Mw", isa.Size16)
	md = modrmRM("Md", isa.Size32)
	mq = modrmRM("Mq", isa.Size64)
	mt = modrmRM("Mt", isa.Size80)

	gb = modrmReg("Gb", isa.Size8)
	gw = modrmReg("Gw", isa.Size16)
	gv = modrmReg("Gv", isa.SizeInherit)

	ib  = immediate("Ib", isa.Size8)
	iw  = immediate("Iw", isa.Size16)
	iv  = immediate("Iv", isa.SizeInherit)
	ib2 = isa.Operand{Text: "Ib", Size: isa.Size8, Mode: isa.ModeImmediate2}

	jb = relative("Jb", isa.Size8)
	jv = relative("Jv", isa.SizeInherit)

	ob = isa.Operand{Text: "Ob", Size: isa.Size8, Mode: isa.ModeMemory}
	ov = isa.Operand{Text: "Ov", Size: isa.SizeInherit, Mode: isa.ModeMemory}
	ap = isa.Operand{Text: "Ap", Size: isa.SizeInherit, Mode: isa.ModeFarAddress}

	sw = isa.Operand{Text: "Sw", Size: isa.Size16, Mode: isa.ModeModRMSegmentRegister}
	cd = isa.Operand{Text: "Cd", Size: isa.Size32, Mode: isa.ModeModRMControlRegister}
	dd = isa.Operand{Text: "Dd", Size: isa.Size32, Mode: isa.ModeModRMDebugRegister}
	td = isa.Operand{Text: "Td", Size: isa.Size32, Mode: isa.ModeModRMTestRegister}
	rd = modrmRM("Rd", isa.Size32)

	one = isa.Operand{Text: "1", Size: isa.Size8, Mode: isa.ModeConstant, Data: isa.Constant(1)}
	cl  = reg8("CL", isa.Reg8CL)
	al  = reg8("AL", isa.Reg8AL)
	dx  = isa.Operand{Text: "DX", Size: isa.Size16, Mode: isa.ModeRegister, Data: isa.Reg16DX}
	eAX = regV("eAX", isa.Reg32EAX)

	xb = isa.Operand{Text: "Xb", Size: isa.Size8, Mode: isa.ModeRegisterIndirect, Data: isa.Reg32ESI}
	xv = isa.Operand{Text: "Xv", Size: isa.SizeInherit, Mode: isa.ModeRegisterIndirect, Data: isa.Reg32ESI}
	yb = isa.Operand{Text: "Yb", Size: isa.Size8, Mode: isa.ModeRegisterIndirect, Data: isa.Reg32EDI}
	yv = isa.Operand{Text: "Yv", Size: isa.SizeInherit, Mode: isa.ModeRegisterIndirect, Data: isa.Reg32EDI}

	st0 = st(0)
)

var reg8s = [8]isa.Reg8{
	isa.Reg8AL, isa.Reg8CL, isa.Reg8DL, isa.Reg8BL,
	isa.Reg8AH, isa.Reg8CH, isa.Reg8DH, isa.Reg8BH,
}

var reg32s = [8]isa.Reg32{
	isa.Reg32EAX, isa.Reg32ECX, isa.Reg32EDX, isa.Reg32EBX,
	isa.Reg32ESP, isa.Reg32EBP, isa.Reg32ESI, isa.Reg32EDI,
}

var segments = [6]isa.Segment{
	isa.SegmentES, isa.SegmentCS, isa.SegmentSS, isa.SegmentDS, isa.SegmentFS, isa.SegmentGS,
}

func reg8(text string, reg isa.Reg8) isa.Operand {
	return isa.Operand{Text: text, Size: isa.Size8, Mode: isa.ModeRegister, Data: reg}
}

// regV is a general purpose register of the current operand size, named by
// its 32 bit register.
func regV(text string, reg isa.Reg32) isa.Operand {
	return isa.Operand{Text: text, Size: isa.SizeInherit, Mode: isa.ModeRegister, Data: reg}
}

func regByIndex8(index int) isa.Operand {
	reg := reg8s[index]
	return reg8(reg.Literal()[len("Reg8_"):], reg)
}

func regByIndexV(index int) isa.Operand {
	reg := reg32s[index]
	return regV("e"+reg.Literal()[len("Reg32_E"):], reg)
}

func regByIndex32(index int) isa.Operand {
	reg := reg32s[index]
	return isa.Operand{Text: reg.Literal()[len("Reg32_"):], Size: isa.Size32, Mode: isa.ModeRegister, Data: reg}
}

func sreg(seg isa.Segment) isa.Operand {
	return isa.Operand{
		Text: seg.Literal()[len("Segment_"):],
		Size: isa.Size16,
		Mode: isa.ModeSegmentRegister,
		Data: seg,
	}
}

// st is the floating point stack register ST(i).
func st(index int) isa.Operand {
	text := "ST(" + isa.Constant(index).Literal() + ")"
	return isa.Operand{Text: text, Size: isa.Size80, Mode: isa.ModeFPRegister, Data: isa.Constant(index)}
}
