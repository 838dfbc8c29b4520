package isa

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSpecialization(t *testing.T) {
	jb := Operand{Text: "Jb", Size: Size8, Mode: ModeRelative}
	op := Opcode{Kind: Normal, Operation: OpJcc, Condition: CondEqual, Operands: []Operand{jb}}
	spec := op.Specialization()

	assert.Equal(t, "<JumpCondition_Equal, OperandSize_8, OperandMode_Relative, 0>", spec.TemplateArguments())
	assert.Equal(t, "Interpreter::Execute_Operation_Jcc<JumpCondition_Equal, OperandSize_8, OperandMode_Relative, 0>",
		spec.Handler("Interpreter::"))

	operands := spec.TableOperands()
	assert.Len(t, operands, 2)
	assert.Equal(t, ModeJumpCondition, operands[0].Mode)
	assert.Equal(t, SizeInherit, operands[0].Size)
	assert.Equal(t, "JumpCondition_Equal", operands[0].Data.Literal())
	assert.Equal(t, ModeRelative, operands[1].Mode)

	plain := Opcode{Kind: Normal, Operation: OpHLT}.Specialization()
	assert.Equal(t, "", plain.TemplateArguments())
	assert.Equal(t, "Execute_Operation_HLT", plain.Handler(""))
	assert.Len(t, plain.TableOperands(), 0)
}

func TestHandlers(t *testing.T) {
	handlers := NewHandlers()

	movEbGb := Opcode{Kind: Normal, Operation: OpMOV, Operands: []Operand{testEb, {Text: "Gb", Size: Size8, Mode: ModeModRMReg}}}
	movGbEb := Opcode{Kind: Normal, Operation: OpMOV, Operands: []Operand{{Text: "Gb", Size: Size8, Mode: ModeModRMReg}, testEb}}
	// display texts do not take part in the specialization
	renamed := movEbGb
	renamed.Operands = []Operand{{Text: "r/m8", Size: Size8, Mode: ModeModRMRM}, {Text: "r8", Size: Size8, Mode: ModeModRMReg}}

	assert.True(t, handlers.Add(movEbGb.Specialization()))
	assert.True(t, handlers.Add(movGbEb.Specialization()))
	assert.False(t, handlers.Add(renamed.Specialization()))
	assert.Equal(t, 2, handlers.Len())
}
