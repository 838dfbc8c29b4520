package isa

import "fmt"

// OperandSize is the size class of an operand.
type OperandSize string

// Operand sizes. SizeInherit takes the size from the decoding context, for
// example the current operand size attribute.
const (
	Size8       OperandSize = "OperandSize_8"
	Size16      OperandSize = "OperandSize_16"
	Size32      OperandSize = "OperandSize_32"
	Size64      OperandSize = "OperandSize_64"
	Size80      OperandSize = "OperandSize_80"
	SizeInherit OperandSize = "OperandSize_Count"
)

// OperandMode is the addressing mode of an operand.
type OperandMode string

// Operand addressing modes.
const (
	ModeNone                 OperandMode = "OperandMode_None"
	ModeConstant             OperandMode = "OperandMode_Constant"
	ModeRegister             OperandMode = "OperandMode_Register"
	ModeRegisterIndirect     OperandMode = "OperandMode_RegisterIndirect"
	ModeSegmentRegister      OperandMode = "OperandMode_SegmentRegister"
	ModeImmediate            OperandMode = "OperandMode_Immediate"
	ModeImmediate2           OperandMode = "OperandMode_Immediate2"
	ModeRelative             OperandMode = "OperandMode_Relative"
	ModeMemory               OperandMode = "OperandMode_Memory"
	ModeFarAddress           OperandMode = "OperandMode_FarAddress"
	ModeModRMReg             OperandMode = "OperandMode_ModRM_Reg"
	ModeModRMRM              OperandMode = "OperandMode_ModRM_RM"
	ModeModRMSegmentRegister OperandMode = "OperandMode_ModRM_SegmentReg"
	ModeModRMControlRegister OperandMode = "OperandMode_ModRM_ControlRegister"
	ModeModRMDebugRegister   OperandMode = "OperandMode_ModRM_DebugRegister"
	ModeModRMTestRegister    OperandMode = "OperandMode_ModRM_TestRegister"
	ModeFPRegister           OperandMode = "OperandMode_FPRegister"
	ModeJumpCondition        OperandMode = "OperandMode_JumpCondition"
)

// NeedsModRM returns whether decoding an operand of this mode requires the
// ModRM byte.
func (m OperandMode) NeedsModRM() bool {
	switch m {
	case ModeModRMReg, ModeModRMRM, ModeModRMSegmentRegister,
		ModeModRMControlRegister, ModeModRMDebugRegister, ModeModRMTestRegister:
		return true
	default:
		return false
	}
}

// HasEncodedBytes returns whether an operand of this mode is followed by
// bytes in the instruction stream that have to be fetched before execution:
// immediates, displacements, direct addresses and the displacement of a
// ModRM memory operand.
func (m OperandMode) HasEncodedBytes() bool {
	switch m {
	case ModeImmediate, ModeImmediate2, ModeRelative, ModeMemory, ModeFarAddress, ModeModRMRM:
		return true
	default:
		return false
	}
}

// JumpCondition is the condition of a conditional jump, set, move or loop.
type JumpCondition string

// Jump conditions.
const (
	CondAlways         JumpCondition = "JumpCondition_Always"
	CondOverflow       JumpCondition = "JumpCondition_Overflow"
	CondNotOverflow    JumpCondition = "JumpCondition_NotOverflow"
	CondSign           JumpCondition = "JumpCondition_Sign"
	CondNotSign        JumpCondition = "JumpCondition_NotSign"
	CondEqual          JumpCondition = "JumpCondition_Equal"
	CondNotEqual       JumpCondition = "JumpCondition_NotEqual"
	CondBelow          JumpCondition = "JumpCondition_Below"
	CondAboveOrEqual   JumpCondition = "JumpCondition_AboveOrEqual"
	CondBelowOrEqual   JumpCondition = "JumpCondition_BelowOrEqual"
	CondAbove          JumpCondition = "JumpCondition_Above"
	CondLess           JumpCondition = "JumpCondition_Less"
	CondGreaterOrEqual JumpCondition = "JumpCondition_GreaterOrEqual"
	CondLessOrEqual    JumpCondition = "JumpCondition_LessOrEqual"
	CondGreater        JumpCondition = "JumpCondition_Greater"
	CondParity         JumpCondition = "JumpCondition_Parity"
	CondNotParity      JumpCondition = "JumpCondition_NotParity"
	CondCXZero         JumpCondition = "JumpCondition_CXZero"
)

// Literal implements Payload.
func (c JumpCondition) Literal() string { return string(c) }

// Operand describes one operand of an instruction variant.
type Operand struct {
	Text string // display text, for example "Eb" or "AL"
	Size OperandSize
	Mode OperandMode
	Data Payload // nil if the mode does not need a payload
}

// TemplateValue returns the operand as the size, mode and payload triple
// used both as table initializer and as handler template arguments.
func (o Operand) TemplateValue() string {
	data := "0"
	if o.Data != nil {
		data = o.Data.Literal()
	}
	return fmt.Sprintf("%s, %s, %s", o.Size, o.Mode, data)
}

// conditionOperand is the synthetic leading operand that carries the jump
// condition of a conditional opcode.
func conditionOperand(cond JumpCondition) Operand {
	return Operand{
		Text: "cc",
		Size: SizeInherit,
		Mode: ModeJumpCondition,
		Data: cond,
	}
}
