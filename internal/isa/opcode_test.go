package isa

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

var (
	testEb = Operand{Text: "Eb", Size: Size8, Mode: ModeModRMRM}
	testGv = Operand{Text: "Gv", Size: SizeInherit, Mode: ModeModRMReg}
	testEv = Operand{Text: "Ev", Size: SizeInherit, Mode: ModeModRMRM}
	testIb = Operand{Text: "Ib", Size: Size8, Mode: ModeImmediate}
	testES = Operand{Text: "ES", Size: Size16, Mode: ModeSegmentRegister, Data: SegmentES}
)

func TestOpcodeString(t *testing.T) {
	tests := []struct {
		op   Opcode
		want string
	}{
		{Opcode{Encoding: 0x0F, Kind: Invalid}, "Invalid 0x0F"},
		{Opcode{Encoding: 0x3A, Kind: InvalidX87}, "Invalid X87 0x3A"},
		{Opcode{Encoding: 0x26, Kind: SegmentPrefix, Operands: []Operand{testES}}, "Prefix Segment_ES"},
		{Opcode{Kind: AddressSizePrefix}, "Address-Size Prefix"},
		{Opcode{Kind: OperandSizePrefix}, "Operand-Size Prefix"},
		{Opcode{Kind: LockPrefix}, "Lock Prefix"},
		{Opcode{Kind: RepPrefix}, "Rep Prefix"},
		{Opcode{Kind: RepNEPrefix}, "RepNE Prefix"},
		{Opcode{Encoding: 0xD8, Kind: Escape}, "Escape 0xD8"},
		{Opcode{Encoding: 0x0F, Kind: Extension}, "Extension 0x0F"},
		{Opcode{Encoding: 0x80, Kind: ModRMRegExtension}, "ModRM-Reg-Extension 0x80"},
		{Opcode{Encoding: 0xD9, Kind: X87Extension}, "X87 Extension 0xD9"},
		{Opcode{Kind: Normal, Operation: OpCPUID}, "CPUID"},
		{Opcode{Kind: Normal, Operation: OpADD, Operands: []Operand{testEb, testIb}}, "ADD Eb, Ib"},
		{Opcode{Kind: Normal, Operation: OpPOPSreg, Operands: []Operand{testES}}, "POP_Sreg ES"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.String())
		})
	}
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, Invalid.IsInvalid())
	assert.True(t, InvalidX87.IsInvalid())
	assert.False(t, Normal.IsInvalid())

	for _, kind := range []Kind{SegmentPrefix, OperandSizePrefix, AddressSizePrefix, LockPrefix, RepPrefix, RepNEPrefix} {
		assert.True(t, kind.IsPrefix())
		assert.False(t, kind.IsExtension())
	}
	assert.False(t, Escape.IsPrefix())

	for _, kind := range []Kind{Extension, ModRMRegExtension, X87Extension} {
		assert.True(t, kind.IsExtension())
	}
	assert.False(t, Escape.IsExtension())

	assert.Equal(t, "X87Extension", X87Extension.String())
	assert.Equal(t, "Kind(200)", Kind(200).String())
}

func TestWithOperandSize(t *testing.T) {
	op := Opcode{Kind: Normal, Operation: OpIMUL, Operands: []Operand{testGv, testEv, testIb}}

	sized := op.WithOperandSize(Size16)
	assert.Equal(t, Size16, sized.Operands[0].Size)
	assert.Equal(t, Size16, sized.Operands[1].Size)
	assert.Equal(t, Size8, sized.Operands[2].Size)

	// the receiver is not modified
	assert.Equal(t, SizeInherit, op.Operands[0].Size)
}

func TestModelString(t *testing.T) {
	assert.Equal(t, "Model_8088", Model8088.String())
	assert.Equal(t, "Model_Pentium", ModelPentium.String())
	assert.True(t, Model80186 < Model386)
}

func TestOperandModes(t *testing.T) {
	tests := []struct {
		mode        OperandMode
		modrm       bool
		encodedByte bool
	}{
		{ModeModRMRM, true, true},
		{ModeModRMReg, true, false},
		{ModeModRMSegmentRegister, true, false},
		{ModeModRMControlRegister, true, false},
		{ModeImmediate, false, true},
		{ModeImmediate2, false, true},
		{ModeRelative, false, true},
		{ModeMemory, false, true},
		{ModeFarAddress, false, true},
		{ModeRegister, false, false},
		{ModeConstant, false, false},
		{ModeFPRegister, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.modrm, tt.mode.NeedsModRM())
			assert.Equal(t, tt.encodedByte, tt.mode.HasEncodedBytes())
		})
	}
}

func TestOperandTemplateValue(t *testing.T) {
	assert.Equal(t, "OperandSize_8, OperandMode_ModRM_RM, 0", testEb.TemplateValue())
	assert.Equal(t, "OperandSize_16, OperandMode_SegmentRegister, Segment_ES", testES.TemplateValue())

	one := Operand{Size: Size8, Mode: ModeConstant, Data: Constant(1)}
	assert.Equal(t, "OperandSize_8, OperandMode_Constant, 1", one.TemplateValue())
}
