package isa

import (
	"strings"

	"github.com/retroenv/retrogolib/set"
)

// Specialization identifies the execution handler variant of a normal
// opcode: its operation, jump condition and operand shapes. Two opcodes with
// the same operation but different operand shapes use different
// specializations.
type Specialization struct {
	Operation Operation
	Condition JumpCondition
	Operands  []Operand
}

// Specialization returns the handler specialization of the opcode.
func (o Opcode) Specialization() Specialization {
	return Specialization{
		Operation: o.Operation,
		Condition: o.Condition,
		Operands:  o.Operands,
	}
}

// TemplateArguments returns the template argument list of the handler,
// including the angle brackets, or an empty string for handlers without
// arguments.
func (s Specialization) TemplateArguments() string {
	args := make([]string, 0, len(s.Operands)+1)
	if s.Condition != "" {
		args = append(args, string(s.Condition))
	}
	for _, operand := range s.Operands {
		args = append(args, operand.TemplateValue())
	}
	if len(args) == 0 {
		return ""
	}
	return "<" + strings.Join(args, ", ") + ">"
}

// Handler returns the name of the handler, prefixed by the given scope.
func (s Specialization) Handler(scope string) string {
	return scope + "Execute_" + string(s.Operation) + s.TemplateArguments()
}

// Key returns a string that is unique for every distinct specialization.
func (s Specialization) Key() string {
	return s.Handler("")
}

// TableOperands returns the operand descriptors stored in a decode table
// entry, with the jump condition as synthetic leading operand.
func (s Specialization) TableOperands() []Operand {
	if s.Condition == "" {
		return s.Operands
	}
	operands := make([]Operand, 0, len(s.Operands)+1)
	operands = append(operands, conditionOperand(s.Condition))
	return append(operands, s.Operands...)
}

// Handlers collects the distinct handler specializations that generated code
// references.
type Handlers struct {
	keys set.Set[string]
}

// NewHandlers returns an empty handler registry.
func NewHandlers() *Handlers {
	return &Handlers{
		keys: set.New[string](),
	}
}

// Add registers the specialization and returns whether it was not known yet.
func (h *Handlers) Add(s Specialization) bool {
	key := s.Key()
	if h.keys.Contains(key) {
		return false
	}
	h.keys.Add(key)
	return true
}

// Len returns the number of distinct specializations.
func (h *Handlers) Len() int {
	return h.keys.Size()
}
