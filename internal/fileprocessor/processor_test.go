package fileprocessor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/x86tablegen/internal/options"
)

func TestProcess(t *testing.T) {
	logger := log.NewTestLogger(t)
	ctx := context.Background()

	t.Run("writes both artifacts", func(t *testing.T) {
		dir := t.TempDir()
		opts := options.Program{
			Positional: options.Positional{Variant: "X86"},
			Parameters: options.Parameters{
				Decoder:  filepath.Join(dir, "decoder_tables.inl"),
				Dispatch: filepath.Join(dir, "dispatch.inl"),
			},
			Flags: options.Flags{Verify: true, Quiet: true},
		}
		assert.NoError(t, Process(ctx, logger, opts))

		for _, name := range []string{opts.Decoder, opts.Dispatch} {
			data, err := os.ReadFile(name)
			assert.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(data), "// clang-format off"))
		}
	})

	t.Run("unsupported variant creates no output", func(t *testing.T) {
		decoder := filepath.Join(t.TempDir(), "decoder_tables.inl")
		opts := options.Program{
			Positional: options.Positional{Variant: "z80"},
			Parameters: options.Parameters{Decoder: decoder},
		}
		err := Process(ctx, logger, opts)
		assert.ErrorContains(t, err, "z80")

		_, statErr := os.Stat(decoder)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("output directory does not exist", func(t *testing.T) {
		opts := options.Program{
			Positional: options.Positional{Variant: "8086"},
			Parameters: options.Parameters{Decoder: filepath.Join(t.TempDir(), "missing", "decoder_tables.inl")},
		}
		err := Process(ctx, logger, opts)
		assert.ErrorContains(t, err, "creating output file")
	})
}

func TestCreateOutput(t *testing.T) {
	t.Run("console", func(t *testing.T) {
		for _, name := range []string{"", StdoutName} {
			out, err := CreateOutput(name)
			assert.NoError(t, err)
			_, ok := out.(*nopCloser)
			assert.True(t, ok)
			assert.NoError(t, out.Close())
		}
	})

	t.Run("file", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "out.inl")
		out, err := CreateOutput(name)
		assert.NoError(t, err)
		_, err = out.Write([]byte("test"))
		assert.NoError(t, err)
		assert.NoError(t, out.Close())

		data, err := os.ReadFile(name)
		assert.NoError(t, err)
		assert.Equal(t, "test", string(data))
	})
}

func TestNopCloser(t *testing.T) {
	var buf bytes.Buffer
	nc := &nopCloser{&buf}

	n, err := nc.Write([]byte("test"))
	assert.NoError(t, err)
	assert.Equal(t, 4, n)

	assert.NoError(t, nc.Close())
	assert.Equal(t, "test", buf.String())
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)

	// should not panic in either mode
	PrintBanner(logger, options.Program{}, "1.0.0", "abcdef1234567", "2026-01-01")
	PrintBanner(logger, options.Program{Flags: options.Flags{Quiet: true}}, "dev", "", "")
}
