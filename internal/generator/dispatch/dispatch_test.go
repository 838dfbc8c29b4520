package dispatch

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/x86tablegen/internal/catalog"
	"github.com/retroenv/x86tablegen/internal/discovery"
	"github.com/retroenv/x86tablegen/internal/isa"
	"github.com/retroenv/x86tablegen/internal/isa/isatest"
	"github.com/retroenv/x86tablegen/internal/variant"
	"github.com/retroenv/x86tablegen/internal/writer"
)

func generate(t *testing.T, v variant.Variant, base *isa.Table) (string, *Generator) {
	t.Helper()

	cfg, err := v.Config()
	assert.NoError(t, err)
	tables, err := discovery.Discover(base)
	assert.NoError(t, err)

	var buf bytes.Buffer
	w := writer.New(&buf)
	gen := New(log.NewTestLogger(t), cfg, tables)
	assert.NoError(t, gen.Generate(w))
	assert.NoError(t, w.Close())
	return buf.String(), gen
}

func block(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestGenerateDispatchFrame(t *testing.T) {
	h := isatest.New()
	output, _ := generate(t, variant.CPU8086, h.Base)

	assert.True(t, strings.HasPrefix(output, block(
		"// clang-format off",
		"",
		"void CPU_8086::Instructions::DispatchInstruction(CPU* cpu)",
		"{",
		"  for (;;)",
		"  {",
		"    u8 opcode = cpu->FetchInstructionByte();",
		"    switch (opcode)",
		"    {",
		"      case 0x00: // ADD Eb, Gb",
	)))
	assert.True(t, strings.HasSuffix(output, block(
		"    }",
		"    // If we hit here, it means the opcode is invalid, as all other switch cases continue",
		"    RaiseInvalidOpcode(cpu);",
		"    return;",
		"  }",
		"}",
		"",
		"// clang-format on",
	)))

	assert.False(t, strings.Contains(output, "case 0x01:"))
}

func TestGenerateDispatchNormal(t *testing.T) {
	h := isatest.New()
	output, _ := generate(t, variant.CPU8086, h.Base)

	tests := []struct {
		name string
		want string
	}{
		{
			name: "modrm fetched once",
			want: block(
				"      case 0x00: // ADD Eb, Gb",
				"        FetchModRM(cpu); // fetch modrm for operand 0 (OperandMode_ModRM_RM)",
				"        FetchImmediate<OperandSize_8, OperandMode_ModRM_RM, 0>(cpu); // fetch immediate for operand 0 (OperandMode_ModRM_RM)",
				"        Execute_Operation_ADD<OperandSize_8, OperandMode_ModRM_RM, 0, OperandSize_8, OperandMode_ModRM_Reg, 0>(cpu);",
				"        return;",
			),
		},
		{
			name: "modrm fetched for second operand",
			want: block(
				"      case 0x8A: // MOV Gb, Eb",
				"        FetchModRM(cpu); // fetch modrm for operand 0 (OperandMode_ModRM_Reg)",
				"        FetchImmediate<OperandSize_8, OperandMode_ModRM_RM, 0>(cpu); // fetch immediate for operand 1 (OperandMode_ModRM_RM)",
				"        Execute_Operation_MOV<OperandSize_8, OperandMode_ModRM_Reg, 0, OperandSize_8, OperandMode_ModRM_RM, 0>(cpu);",
				"        return;",
			),
		},
		{
			name: "register and immediate",
			want: block(
				"      case 0xB0: // MOV AL, Ib",
				"        FetchImmediate<OperandSize_8, OperandMode_Immediate, 0>(cpu); // fetch immediate for operand 1 (OperandMode_Immediate)",
				"        Execute_Operation_MOV<OperandSize_8, OperandMode_Register, Reg8_AL, OperandSize_8, OperandMode_Immediate, 0>(cpu);",
				"        return;",
			),
		},
		{
			name: "immediates in operand order",
			want: block(
				"      case 0xC8: // ENTER Iw, Ib",
				"        FetchImmediate<OperandSize_16, OperandMode_Immediate, 0>(cpu); // fetch immediate for operand 0 (OperandMode_Immediate)",
				"        FetchImmediate<OperandSize_8, OperandMode_Immediate, 0>(cpu); // fetch immediate for operand 1 (OperandMode_Immediate)",
				"        Execute_Operation_ENTER<OperandSize_16, OperandMode_Immediate, 0, OperandSize_8, OperandMode_Immediate, 0>(cpu);",
				"        return;",
			),
		},
		{
			name: "jump condition",
			want: block(
				"      case 0x70: // Jcc Jb",
				"        FetchImmediate<OperandSize_8, OperandMode_Relative, 0>(cpu); // fetch immediate for operand 0 (OperandMode_Relative)",
				"        Execute_Operation_Jcc<JumpCondition_Overflow, OperandSize_8, OperandMode_Relative, 0>(cpu);",
				"        return;",
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, output, tt.want)
		})
	}
}

func TestGenerateDispatchPrefixes(t *testing.T) {
	h := isatest.New()
	output, _ := generate(t, variant.CPU8086, h.Base)

	assert.Contains(t, output, block(
		"      case 0x26: // Prefix Segment_ES",
		"        cpu->idata.segment = Segment_ES;",
		"        cpu->idata.has_segment_override = true;",
		"        continue;",
		"      case 0x66: // Operand-Size Prefix",
		"        cpu->idata.operand_size = (cpu->m_current_operand_size == OperandSize_16) ? OperandSize_32 : OperandSize_16;",
		"        continue;",
		"      case 0x67: // Address-Size Prefix",
		"        cpu->idata.address_size = (cpu->m_current_address_size == AddressSize_16) ? AddressSize_32 : AddressSize_16;",
		"        continue;",
	))
	assert.Contains(t, output, block(
		"      case 0xF0: // Lock Prefix",
		"        cpu->idata.has_lock = true;",
		"        continue;",
		"      case 0xF2: // RepNE Prefix",
		"        cpu->idata.has_rep = true;",
		"        cpu->idata.has_repne = true;",
		"        continue;",
		"      case 0xF3: // Rep Prefix",
		"        cpu->idata.has_rep = true;",
		"        continue;",
	))
}

func TestGenerateDispatchExtensions(t *testing.T) {
	h := isatest.New()
	output, _ := generate(t, variant.CPU8086, h.Base)

	assert.Contains(t, output, block(
		"      case 0x0F: // Extension 0x0F",
		"      {",
		"        opcode = cpu->FetchInstructionByte();",
		"        switch (opcode)",
		"        {",
		"          case 0x80: // Jcc Jb",
		"            FetchImmediate<OperandSize_8, OperandMode_Relative, 0>(cpu); // fetch immediate for operand 0 (OperandMode_Relative)",
		"            Execute_Operation_Jcc<JumpCondition_Overflow, OperandSize_8, OperandMode_Relative, 0>(cpu);",
		"            return;",
		"          case 0xA2: // CPUID",
		"            Execute_Operation_CPUID(cpu);",
		"            return;",
		"          case 0xAF: // IMUL Gv, Ev",
		"            FetchModRM(cpu); // fetch modrm for operand 0 (OperandMode_ModRM_Reg)",
		"            FetchImmediate<OperandSize_Count, OperandMode_ModRM_RM, 0>(cpu); // fetch immediate for operand 1 (OperandMode_ModRM_RM)",
		"            Execute_Operation_IMUL<OperandSize_Count, OperandMode_ModRM_Reg, 0, OperandSize_Count, OperandMode_ModRM_RM, 0>(cpu);",
		"            return;",
		"        }",
		"      }",
		"      break;",
	))

	// the group fetches the ModRM byte, its opcodes reuse it
	assert.Contains(t, output, block(
		"      case 0x80: // ModRM-Reg-Extension 0x80",
		"      {",
		"        FetchModRM(cpu); // fetch modrm for extension",
		"        switch (cpu->idata.GetModRM_Reg() & 0x07)",
		"        {",
		"          case 0x00: // ADD Eb, Ib",
		"            FetchImmediate<OperandSize_8, OperandMode_ModRM_RM, 0>(cpu); // fetch immediate for operand 0 (OperandMode_ModRM_RM)",
		"            FetchImmediate<OperandSize_8, OperandMode_Immediate, 0>(cpu); // fetch immediate for operand 1 (OperandMode_Immediate)",
		"            Execute_Operation_ADD<OperandSize_8, OperandMode_ModRM_RM, 0, OperandSize_8, OperandMode_Immediate, 0>(cpu);",
		"            return;",
		"          case 0x07: // CMP Eb, Ib",
	))
}

func TestGenerateDispatchX87(t *testing.T) {
	h := isatest.New()
	output, _ := generate(t, variant.X86, h.Base)

	assert.Contains(t, output, block(
		"      case 0xD9: // X87 Extension 0xD9",
		"      {",
		"        FetchModRM(cpu); // fetch modrm for X87 extension",
		"        if (!cpu->idata.ModRM_RM_IsReg())",
		"        {",
		"          // prefix_D9_reg",
		"          switch (cpu->idata.GetModRM_Reg() & 0x07) // reg",
		"          {",
		"            case 0x00: // FLD Md",
		"              FetchImmediate<OperandSize_32, OperandMode_ModRM_RM, 0>(cpu); // fetch immediate for operand 0 (OperandMode_ModRM_RM)",
		"              Interpreter::Execute_Operation_FLD<OperandSize_32, OperandMode_ModRM_RM, 0>(cpu);",
		"              return;",
		"            default:",
		"              FetchImmediate<OperandSize_Count, OperandMode_ModRM_RM, 0>(cpu);",
		"              Interpreter::StartX87Instruction(cpu);",
		"              return;",
		"          }",
		"        }",
		"        else",
		"        {",
		"          // prefix_D9_mem",
		"          switch (cpu->idata.modrm & 0x3F) // mem",
		"          {",
		"            case 0x09: // FXCH ST(1)",
		"              Interpreter::Execute_Operation_FXCH<OperandSize_80, OperandMode_FPRegister, 1>(cpu);",
		"              return;",
		"            case 0x28: // FLD1",
		"              Interpreter::Execute_Operation_FLD1(cpu);",
		"              return;",
		"            default:",
		"              FetchImmediate<OperandSize_Count, OperandMode_ModRM_RM, 0>(cpu);",
		"              Interpreter::StartX87Instruction(cpu);",
		"              return;",
		"          }",
		"        }",
		"      }",
	))

	assert.Contains(t, output, block(
		"      case 0xDB: // Escape 0xDB",
		"      {",
		"        FetchModRM(cpu); // fetch modrm for X87 extension",
		"        FetchImmediate<OperandSize_16, OperandMode_ModRM_RM, 0>(cpu);",
		"        return;",
		"      }",
	))
}

func TestGenerateDispatchMissingTable(t *testing.T) {
	h := isatest.New()
	cfg, err := variant.X86.Config()
	assert.NoError(t, err)
	tables, err := discovery.Discover(h.Base)
	assert.NoError(t, err)

	assert.NoError(t, h.Base.Set(isa.Opcode{
		Encoding:  0x80,
		Kind:      isa.ModRMRegExtension,
		Operation: isa.OpExtensionModRMReg,
		Child:     isa.NewTable(isa.ModRMExtensionTableSize, isa.Invalid),
	}))

	var buf bytes.Buffer
	gen := New(log.NewTestLogger(t), cfg, tables)
	err = gen.Generate(writer.New(&buf))
	assert.True(t, errors.Is(err, isa.ErrMissingTable))
	assert.ErrorContains(t, err, "prefix_80")
}

// TestGenerateDispatchCatalogs checks properties of the generated code for
// the full catalogs: a handler call is always the last statement before a
// return and no case fetches the ModRM byte twice.
func TestGenerateDispatchCatalogs(t *testing.T) {
	for _, v := range variant.All() {
		t.Run(string(v), func(t *testing.T) {
			cat, err := catalog.Load(v)
			assert.NoError(t, err)
			output, gen := generate(t, v, cat.Base)
			assert.True(t, gen.Handlers().Len() > 50)

			lines := strings.Split(output, "\n")
			modrmFetches := 0
			for i, line := range lines {
				trimmed := strings.TrimSpace(line)
				switch {
				case strings.HasPrefix(trimmed, "case "), trimmed == "default:":
					modrmFetches = 0

				case strings.HasPrefix(trimmed, "FetchModRM(cpu); // fetch modrm for operand"):
					modrmFetches++
					assert.Equal(t, 1, modrmFetches)

				case strings.Contains(trimmed, "Execute_"):
					assert.Equal(t, "return;", strings.TrimSpace(lines[i+1]))
				}
			}

			if v == variant.CPU8086 {
				assert.False(t, strings.Contains(output, "X87 Extension"))
				assert.Contains(t, output, "case 0xD8: // Escape 0xD8")
				assert.Contains(t, output, "case 0x0F: // POP_Sreg CS")
			} else {
				assert.Contains(t, output, "case 0xD8: // X87 Extension 0xD8")
				assert.Contains(t, output, "case 0x0F: // Extension 0x0F")
				assert.False(t, strings.Contains(output, "Escape"))
			}
		})
	}
}

func TestGenerateDispatchIdempotent(t *testing.T) {
	cat, err := catalog.Load(variant.X86)
	assert.NoError(t, err)

	first, _ := generate(t, variant.X86, cat.Base)
	second, _ := generate(t, variant.X86, cat.Base)
	assert.Equal(t, first, second)
}
