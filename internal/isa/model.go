// Package isa contains the vocabulary of the x86 encoding model: registers,
// operations, operand modes and sizes, jump conditions and the opcode tables
// built from them.
//
// Every enumerated value carries the exact identifier that is written into the
// generated C++ sources, so the string values of the constants in this package
// are part of the generated artifacts and must not be renamed.
package isa

import "strconv"

// Model is a CPU model, ordered from the earliest to the latest.
type Model uint8

// CPU models.
const (
	Model8088 Model = iota
	Model8086
	ModelV20
	ModelV30
	Model80188
	Model80186
	Model386
	Model486
	ModelPentium
)

var modelNames = [...]string{
	Model8088:    "Model_8088",
	Model8086:    "Model_8086",
	ModelV20:     "Model_V20",
	ModelV30:     "Model_V30",
	Model80188:   "Model_80188",
	Model80186:   "Model_80186",
	Model386:     "Model_386",
	Model486:     "Model_486",
	ModelPentium: "Model_Pentium",
}

func (m Model) String() string {
	if int(m) < len(modelNames) {
		return modelNames[m]
	}
	return "Model_Unknown"
}

// Payload is the mode specific data of an operand, for example a concrete
// register, a jump condition or an immediate literal.
type Payload interface {
	// Literal returns the identifier or number written into generated code.
	Literal() string
}

// Reg8 is an 8 bit general purpose register.
type Reg8 string

// 8 bit registers.
const (
	Reg8AL Reg8 = "Reg8_AL"
	Reg8CL Reg8 = "Reg8_CL"
	Reg8DL Reg8 = "Reg8_DL"
	Reg8BL Reg8 = "Reg8_BL"
	Reg8AH Reg8 = "Reg8_AH"
	Reg8CH Reg8 = "Reg8_CH"
	Reg8DH Reg8 = "Reg8_DH"
	Reg8BH Reg8 = "Reg8_BH"
)

// Literal implements Payload.
func (r Reg8) Literal() string { return string(r) }

// Reg16 is a 16 bit register.
type Reg16 string

// 16 bit registers.
const (
	Reg16AX    Reg16 = "Reg16_AX"
	Reg16CX    Reg16 = "Reg16_CX"
	Reg16DX    Reg16 = "Reg16_DX"
	Reg16BX    Reg16 = "Reg16_BX"
	Reg16SP    Reg16 = "Reg16_SP"
	Reg16BP    Reg16 = "Reg16_BP"
	Reg16SI    Reg16 = "Reg16_SI"
	Reg16DI    Reg16 = "Reg16_DI"
	Reg16IP    Reg16 = "Reg16_IP"
	Reg16FLAGS Reg16 = "Reg16_FLAGS"
)

// Literal implements Payload.
func (r Reg16) Literal() string { return string(r) }

// Reg32 is a 32 bit register, including the control, debug and test registers.
type Reg32 string

// 32 bit registers.
const (
	Reg32EAX    Reg32 = "Reg32_EAX"
	Reg32ECX    Reg32 = "Reg32_ECX"
	Reg32EDX    Reg32 = "Reg32_EDX"
	Reg32EBX    Reg32 = "Reg32_EBX"
	Reg32ESP    Reg32 = "Reg32_ESP"
	Reg32EBP    Reg32 = "Reg32_EBP"
	Reg32ESI    Reg32 = "Reg32_ESI"
	Reg32EDI    Reg32 = "Reg32_EDI"
	Reg32EIP    Reg32 = "Reg32_EIP"
	Reg32EFLAGS Reg32 = "Reg32_EFLAGS"
	Reg32CR0    Reg32 = "Reg32_CR0"
	Reg32CR2    Reg32 = "Reg32_CR2"
	Reg32CR3    Reg32 = "Reg32_CR3"
	Reg32CR4    Reg32 = "Reg32_CR4"
	Reg32DR0    Reg32 = "Reg32_DR0"
	Reg32DR1    Reg32 = "Reg32_DR1"
	Reg32DR2    Reg32 = "Reg32_DR2"
	Reg32DR3    Reg32 = "Reg32_DR3"
	Reg32DR4    Reg32 = "Reg32_DR4"
	Reg32DR5    Reg32 = "Reg32_DR5"
	Reg32DR6    Reg32 = "Reg32_DR6"
	Reg32DR7    Reg32 = "Reg32_DR7"
	Reg32TR3    Reg32 = "Reg32_TR3"
	Reg32TR4    Reg32 = "Reg32_TR4"
	Reg32TR5    Reg32 = "Reg32_TR5"
	Reg32TR6    Reg32 = "Reg32_TR6"
	Reg32TR7    Reg32 = "Reg32_TR7"
)

// Literal implements Payload.
func (r Reg32) Literal() string { return string(r) }

// Segment is a segment register.
type Segment string

// Segment registers.
const (
	SegmentES Segment = "Segment_ES"
	SegmentCS Segment = "Segment_CS"
	SegmentSS Segment = "Segment_SS"
	SegmentDS Segment = "Segment_DS"
	SegmentFS Segment = "Segment_FS"
	SegmentGS Segment = "Segment_GS"
)

// Literal implements Payload.
func (s Segment) Literal() string { return string(s) }

// Constant is an immediate literal payload, used for fixed operands like the
// shift count 1 or the index of a floating point stack register.
type Constant int

// Literal implements Payload.
func (c Constant) Literal() string { return strconv.Itoa(int(c)) }
