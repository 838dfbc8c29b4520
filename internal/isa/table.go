package isa

import (
	"errors"
	"fmt"
)

// Table sizes.
const (
	OpcodeTableSize         = 256
	ModRMExtensionTableSize = 8
	X87RegTableSize         = 8  // keyed by the ModRM reg field
	X87MemTableSize         = 64 // keyed by the low six bits of the ModRM byte
)

// ErrMissingTable is returned when an extension opcode does not reference
// the nested table that its kind requires.
var ErrMissingTable = errors.New("missing extension table")

// SizeClass is the declared size class of a generated table.
type SizeClass uint8

// Size classes.
const (
	SizeOpcodeTable SizeClass = iota + 1
	SizeModRMExtensionTable
	SizeX87ExtensionTable // reg field table followed by the low six bits table
)

// Len returns the number of slots of a table of this size class.
func (c SizeClass) Len() int {
	switch c {
	case SizeOpcodeTable:
		return OpcodeTableSize
	case SizeModRMExtensionTable:
		return ModRMExtensionTableSize
	case SizeX87ExtensionTable:
		return X87RegTableSize + X87MemTableSize
	default:
		return 0
	}
}

// Constant returns the identifier of the size constant in generated code.
func (c SizeClass) Constant() string {
	switch c {
	case SizeOpcodeTable:
		return "OPCODE_TABLE_SIZE"
	case SizeModRMExtensionTable:
		return "MODRM_EXTENSION_OPCODE_TABLE_SIZE"
	case SizeX87ExtensionTable:
		return "X87_EXTENSION_OPCODE_TABLE_SIZE"
	default:
		return "INVALID_TABLE_SIZE"
	}
}

func (c SizeClass) String() string {
	return c.Constant()
}

// Table maps the byte values 0 to size-1 to opcodes.
type Table struct {
	entries []Opcode
}

// NewTable returns a table of the given size with every slot set to an
// opcode of the given invalid kind.
func NewTable(size int, invalid Kind) *Table {
	t := &Table{
		entries: make([]Opcode, size),
	}
	for i := range t.entries {
		t.entries[i] = Opcode{
			Encoding:  byte(i),
			Kind:      invalid,
			Operation: OpInvalid,
		}
	}
	return t
}

// Len returns the number of slots of the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entry returns the opcode at the given slot.
func (t *Table) Entry(index int) Opcode {
	return t.entries[index]
}

// Entries returns all slots in ascending byte order. The returned slice
// must not be modified.
func (t *Table) Entries() []Opcode {
	return t.entries
}

// Set stores the opcode in the slot given by its encoding.
func (t *Table) Set(op Opcode) error {
	if int(op.Encoding) >= len(t.entries) {
		return fmt.Errorf("encoding 0x%02X exceeds table size %d", op.Encoding, len(t.entries))
	}
	t.entries[op.Encoding] = op
	return nil
}

// Catalog is the opcode table hierarchy of one instruction set variant.
type Catalog struct {
	Name string
	Base *Table
}

// CheckChildren returns an error if an extension opcode does not reference
// the nested tables required by its kind.
func (o Opcode) CheckChildren() error {
	switch o.Kind {
	case Extension:
		return checkChild(o, o.Child, OpcodeTableSize)
	case ModRMRegExtension:
		return checkChild(o, o.Child, ModRMExtensionTableSize)
	case X87Extension:
		if err := checkChild(o, o.Child, X87RegTableSize); err != nil {
			return err
		}
		return checkChild(o, o.Secondary, X87MemTableSize)
	default:
		return nil
	}
}

func checkChild(o Opcode, child *Table, size int) error {
	if child == nil {
		return fmt.Errorf("%w: %s", ErrMissingTable, o)
	}
	if child.Len() != size {
		return fmt.Errorf("%w: %s references a table of size %d instead of %d",
			ErrMissingTable, o, child.Len(), size)
	}
	return nil
}
