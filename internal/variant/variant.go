// Package variant contains the supported instruction set variants and the
// literals that the generated code uses for them.
package variant

import (
	"errors"
	"fmt"
	"strings"
)

// Variant selects an instruction set and the emulator backend that consumes
// the generated code.
type Variant string

// Supported variants.
const (
	CPU8086 Variant = "8086"
	X86     Variant = "x86"
)

// ErrUnsupported is returned for an unknown variant selector.
var ErrUnsupported = errors.New("unsupported variant")

// All returns the supported variants.
func All() []Variant {
	return []Variant{CPU8086, X86}
}

// Parse returns the variant for the given selector.
func Parse(s string) (Variant, error) {
	v := Variant(strings.ToLower(s))
	switch v {
	case CPU8086, X86:
		return v, nil
	default:
		return "", fmt.Errorf("%w: '%s', valid variants: %s, %s", ErrUnsupported, s, CPU8086, X86)
	}
}

// Config contains the identifiers that the emulator backend of a variant
// expects in the generated code.
type Config struct {
	// TableDeclaration precedes the name of every decode table.
	TableDeclaration string
	// InterpreterPointer adds a handler reference to every decode table entry.
	InterpreterPointer bool
	// DispatchFunction is the qualified name of the dispatch routine.
	DispatchFunction string
	// HandlerPrefix is the scope of the execution handlers called by the
	// dispatch routine.
	HandlerPrefix string
}

// Config returns the backend configuration of the variant.
func (v Variant) Config() (Config, error) {
	switch v {
	case CPU8086:
		return Config{
			TableDeclaration: "const CPU_8086::Decoder::TableEntry CPU_8086::Decoder::",
			DispatchFunction: "CPU_8086::Instructions::DispatchInstruction",
		}, nil

	case X86:
		return Config{
			TableDeclaration:   "const CPU_X86::Decoder::TableEntry CPU_X86::Decoder::",
			InterpreterPointer: true,
			DispatchFunction:   "CPU_X86::InterpreterBackend::Dispatch",
			HandlerPrefix:      "Interpreter::",
		}, nil

	default:
		return Config{}, fmt.Errorf("%w: '%s'", ErrUnsupported, v)
	}
}
