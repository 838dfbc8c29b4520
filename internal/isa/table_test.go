package isa

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewTable(t *testing.T) {
	table := NewTable(X87MemTableSize, InvalidX87)
	assert.Equal(t, 64, table.Len())

	for i, op := range table.Entries() {
		assert.Equal(t, byte(i), op.Encoding)
		assert.Equal(t, InvalidX87, op.Kind)
		assert.Equal(t, OpInvalid, op.Operation)
	}

	assert.NoError(t, table.Set(Opcode{Encoding: 0x3F, Kind: Normal, Operation: OpFCOS}))
	assert.Equal(t, OpFCOS, table.Entry(0x3F).Operation)
	assert.Error(t, table.Set(Opcode{Encoding: 0x40, Kind: Normal, Operation: OpFCOS}))
}

func TestSizeClass(t *testing.T) {
	assert.Equal(t, 256, SizeOpcodeTable.Len())
	assert.Equal(t, 8, SizeModRMExtensionTable.Len())
	assert.Equal(t, 72, SizeX87ExtensionTable.Len())
	assert.Equal(t, "OPCODE_TABLE_SIZE", SizeOpcodeTable.Constant())
	assert.Equal(t, "MODRM_EXTENSION_OPCODE_TABLE_SIZE", SizeModRMExtensionTable.String())
	assert.Equal(t, "X87_EXTENSION_OPCODE_TABLE_SIZE", SizeX87ExtensionTable.Constant())
}

func TestCheckChildren(t *testing.T) {
	group := NewTable(ModRMExtensionTableSize, Invalid)
	reg := NewTable(X87RegTableSize, InvalidX87)
	mem := NewTable(X87MemTableSize, InvalidX87)

	tests := []struct {
		name    string
		op      Opcode
		wantErr string
	}{
		{
			name: "normal",
			op:   Opcode{Encoding: 0x90, Kind: Normal, Operation: OpNOP},
		},
		{
			name: "group",
			op:   Opcode{Encoding: 0x80, Kind: ModRMRegExtension, Operation: OpExtensionModRMReg, Child: group},
		},
		{
			name: "x87 pair",
			op:   Opcode{Encoding: 0xD8, Kind: X87Extension, Operation: OpExtensionModRMX87, Child: reg, Secondary: mem},
		},
		{
			name:    "missing extension table",
			op:      Opcode{Encoding: 0x0F, Kind: Extension, Operation: OpExtension},
			wantErr: "Extension 0x0F",
		},
		{
			name:    "extension with group sized table",
			op:      Opcode{Encoding: 0x0F, Kind: Extension, Operation: OpExtension, Child: group},
			wantErr: "size 8 instead of 256",
		},
		{
			name:    "missing x87 half",
			op:      Opcode{Encoding: 0xD9, Kind: X87Extension, Operation: OpExtensionModRMX87, Child: reg},
			wantErr: "X87 Extension 0xD9",
		},
		{
			name:    "swapped x87 halves",
			op:      Opcode{Encoding: 0xDA, Kind: X87Extension, Operation: OpExtensionModRMX87, Child: mem, Secondary: reg},
			wantErr: "size 64 instead of 8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op.CheckChildren()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrMissingTable))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
