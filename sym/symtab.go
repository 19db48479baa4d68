package sym

import (
	"fmt"

	"github.com/voxl-lang/vasm/text"
)

// Symbol tables for assembler symbols: code labels, %const names, imported
// names. Tables are attached to scopes; scopes link back to a parent,
// forming a tree (one scope per imported source unit).

// --- Symbols ----------------------------------------------------------

// Kind classifies an assembler symbol.
type Kind int8

// Pre-defined symbol kinds.
const (
	Undefined Kind = iota
	Label          // identifier followed by ':'
	Const          // defined via %const
	Imported       // brought in via %import
)

func (k Kind) String() string {
	switch k {
	case Label:
		return "label"
	case Const:
		return "const"
	case Imported:
		return "imported"
	}
	return "undefined"
}

// Symbol is one named assembler entity. Def is the source range of its
// defining occurrence, so tooling can point back at the definition.
type Symbol struct {
	name  string
	Knd   Kind
	Def   text.Range
	UData interface{} // user data, e.g. a resolved constant value
}

// NewSymbol creates a new symbol.
func NewSymbol(nm string) *Symbol {
	return &Symbol{name: nm}
}

// WithKind sets the kind of a symbol. Use as
//
//    s := NewSymbol("MAIN").WithKind(Label)
//
func (s *Symbol) WithKind(k Kind) *Symbol {
	s.Knd = k
	return s
}

// WithDef records the defining occurrence of a symbol.
func (s *Symbol) WithDef(r text.Range) *Symbol {
	s.Def = r
	return s
}

// Name gets the symbol's name.
func (s *Symbol) Name() string {
	return s.name
}

// String is a debug Stringer for symbols.
func (s *Symbol) String() string {
	return fmt.Sprintf("<%s '%s'>", s.Knd, s.name)
}

// === Symbol Tables =========================================================

// Table is a symbol table to store assembler symbols (map-like semantics).
type Table struct {
	Symbols      map[string]*Symbol
	createSymbol func(string) *Symbol
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{
		Symbols:      make(map[string]*Symbol),
		createSymbol: NewSymbol,
	}
}

// Resolve checks for a symbol in the table. Returns a symbol or nil.
func (t *Table) Resolve(name string) *Symbol {
	return t.Symbols[name]
}

// ResolveOrDefine finds a symbol in the table, inserting a new one if not
// found. Returns the symbol and a flag signalling whether it had already
// been present.
func (t *Table) ResolveOrDefine(name string) (*Symbol, bool) {
	if len(name) == 0 {
		return nil, false
	}
	found := true
	s := t.Resolve(name)
	if s == nil { // if not already there, insert it
		s, _ = t.Define(name)
		found = false
	}
	return s, found
}

// Define creates a new symbol and stores it into the table. The name may
// not be empty. Overwrites an existing symbol with this name, if any.
// Returns the new symbol and the previously stored one (or nil).
func (t *Table) Define(name string) (*Symbol, *Symbol) {
	if len(name) == 0 {
		return nil, nil
	}
	s := t.createSymbol(name)
	old := t.Insert(s)
	return s, old
}

// Insert inserts a pre-created symbol. Returns the previously stored symbol
// under this name, if any.
func (t *Table) Insert(s *Symbol) *Symbol {
	old := t.Resolve(s.name)
	t.Symbols[s.name] = s
	return old
}

// Size counts the symbols in a table.
func (t *Table) Size() int {
	return len(t.Symbols)
}

// Each iterates over each symbol in the table, executing a mapper function.
func (t *Table) Each(mapper func(string, *Symbol)) {
	for k, v := range t.Symbols {
		mapper(k, v)
	}
}

// === Scopes ================================================================

// Scope is a named scope which may contain symbol definitions. Scopes link
// back to a parent scope, forming a tree; the assembler opens one scope per
// imported source unit.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *Table
}

// NewScope creates a new scope.
func NewScope(nm string, parent *Scope) *Scope {
	return &Scope{
		Name:   nm,
		Parent: parent,
		symtab: NewTable(),
	}
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Symbols returns the symbol table of a scope.
func (s *Scope) Symbols() *Table {
	return s.symtab
}

// Define defines a symbol in the scope. Returns the new symbol and the
// previously stored one under this name, if any.
func (s *Scope) Define(name string) (*Symbol, *Symbol) {
	return s.symtab.Define(name)
}

// Resolve finds a symbol, walking the scope tree towards the root. Returns
// the symbol (or nil) and the scope it was found in.
func (s *Scope) Resolve(name string) (*Symbol, *Scope) {
	smb := s.symtab.Resolve(name)
	if smb != nil {
		return smb, s
	}
	for s.Parent != nil {
		s = s.Parent
		smb, _ = s.Resolve(name)
		if smb != nil {
			return smb, s
		}
	}
	return smb, nil
}
