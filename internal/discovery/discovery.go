// Package discovery walks an opcode table hierarchy and names every table
// by the path of opcode bytes that leads to it.
package discovery

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/set"
	"github.com/retroenv/x86tablegen/internal/isa"
)

// BaseName is the name of the root table in generated code.
const BaseName = "base"

var (
	// ErrSharedTable is returned when a table is reachable through more than
	// one extension opcode.
	ErrSharedTable = errors.New("table is referenced by multiple extensions")
	// ErrNestedExtension is returned when an x87 table contains an extension.
	ErrNestedExtension = errors.New("extension inside x87 table")
)

// Entry is one discovered table.
type Entry struct {
	Path      string // hex encoded opcode bytes from the root, empty for the root
	Name      string // identifier of the table in generated code
	Class     isa.SizeClass
	Table     *isa.Table
	Secondary *isa.Table // low six bits table of an x87 pair, nil otherwise
}

// Tables is the pre-order list of all tables of a hierarchy.
type Tables struct {
	entries []Entry
	byPath  map[string]int
}

// Entries returns the discovered tables in pre-order.
func (t *Tables) Entries() []Entry {
	return t.entries
}

// Len returns the number of discovered tables.
func (t *Tables) Len() int {
	return len(t.entries)
}

// Lookup returns the table with the given path.
func (t *Tables) Lookup(path string) (Entry, bool) {
	i, ok := t.byPath[path]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// ChildPath returns the path of the table that the opcode with the given
// encoding in the table at parent leads to.
func ChildPath(parent string, encoding byte) string {
	return fmt.Sprintf("%s%02X", parent, encoding)
}

// TableName returns the generated code identifier of the table with the
// given path.
func TableName(path string) string {
	if path == "" {
		return BaseName
	}
	return "prefix_" + path
}

type walker struct {
	tables *Tables
	paths  set.Set[string]
	seen   set.Set[*isa.Table]
}

// Discover walks the hierarchy below base depth first and returns all tables
// in pre-order, the root first. Tables of an opcode are visited in ascending
// byte order.
func Discover(base *isa.Table) (*Tables, error) {
	if base == nil || base.Len() != isa.OpcodeTableSize {
		return nil, fmt.Errorf("%w: invalid base table", isa.ErrMissingTable)
	}

	w := &walker{
		tables: &Tables{
			byPath: map[string]int{},
		},
		paths: set.New[string](),
		seen:  set.New[*isa.Table](),
	}
	if err := w.add(Entry{Path: "", Class: isa.SizeOpcodeTable, Table: base}); err != nil {
		return nil, err
	}
	if err := w.walk(base, ""); err != nil {
		return nil, err
	}
	return w.tables, nil
}

func (w *walker) walk(table *isa.Table, path string) error {
	for _, op := range table.Entries() {
		if !op.Kind.IsExtension() {
			continue
		}
		if err := op.CheckChildren(); err != nil {
			return fmt.Errorf("table '%s': %w", TableName(path), err)
		}

		childPath := ChildPath(path, op.Encoding)
		entry := Entry{
			Path:  childPath,
			Name:  TableName(childPath),
			Table: op.Child,
		}

		switch op.Kind {
		case isa.Extension:
			entry.Class = isa.SizeOpcodeTable
		case isa.ModRMRegExtension:
			entry.Class = isa.SizeModRMExtensionTable
		case isa.X87Extension:
			entry.Class = isa.SizeX87ExtensionTable
			entry.Secondary = op.Secondary
		}

		if err := w.add(entry); err != nil {
			return err
		}

		if op.Kind == isa.X87Extension {
			if err := checkX87Table(entry.Name, op.Child); err != nil {
				return err
			}
			if err := checkX87Table(entry.Name, op.Secondary); err != nil {
				return err
			}
			continue
		}
		if err := w.walk(op.Child, childPath); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) add(entry Entry) error {
	entry.Name = TableName(entry.Path)

	if w.paths.Contains(entry.Path) {
		return fmt.Errorf("duplicate table path '%s'", entry.Path)
	}
	for _, table := range []*isa.Table{entry.Table, entry.Secondary} {
		if table == nil {
			continue
		}
		if w.seen.Contains(table) {
			return fmt.Errorf("%w: '%s'", ErrSharedTable, entry.Name)
		}
		w.seen.Add(table)
	}
	w.paths.Add(entry.Path)

	w.tables.byPath[entry.Path] = len(w.tables.entries)
	w.tables.entries = append(w.tables.entries, entry)
	return nil
}

// checkX87Table returns an error if one of the x87 table halves introduces a
// further table, the generated code has no way to reach it.
func checkX87Table(name string, table *isa.Table) error {
	for _, op := range table.Entries() {
		if op.Kind.IsExtension() {
			return fmt.Errorf("%w: '%s' slot 0x%02X", ErrNestedExtension, name, op.Encoding)
		}
	}
	return nil
}
