package generator

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/x86tablegen/internal/discovery"
	"github.com/retroenv/x86tablegen/internal/isa/isatest"
	"github.com/retroenv/x86tablegen/internal/variant"
	"github.com/retroenv/x86tablegen/internal/writer"
)

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	cfg, err := variant.X86.Config()
	assert.NoError(t, err)
	tables, err := discovery.Discover(isatest.New().Base)
	assert.NoError(t, err)

	tests := []struct {
		artifact Artifact
		contains string
	}{
		{artifact: DecodeTable, contains: "CPU_X86::Decoder::base[OPCODE_TABLE_SIZE] ="},
		{artifact: Dispatch, contains: "void CPU_X86::InterpreterBackend::Dispatch(CPU* cpu)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.artifact), func(t *testing.T) {
			gen, err := New(tt.artifact, logger, cfg, tables)
			assert.NoError(t, err)

			var buf bytes.Buffer
			w := writer.New(&buf)
			assert.NoError(t, gen.Generate(w))
			assert.NoError(t, w.Close())

			assert.Contains(t, buf.String(), tt.contains)
			assert.Equal(t, 13, gen.Handlers().Len())
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		_, err := New(Artifact("header"), logger, cfg, tables)
		assert.ErrorContains(t, err, "unsupported artifact 'header'")
	})
}
