package sym

import (
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable()
	if table == nil {
		t.Error("no symbol table created")
	}
}

func TestNewSymbol(t *testing.T) {
	table := NewTable()
	s, _ := table.Define("MAIN")
	if s == nil {
		t.Fatal("no symbol created for table")
	}
	s.UData = 5
	if s.UData != 5 {
		t.Errorf("UData does not work")
	}
}

func TestSymbolKind(t *testing.T) {
	s := NewSymbol("MAIN").WithKind(Label)
	if s.Knd != Label {
		t.Errorf("expected a label, got %v", s.Knd)
	}
	if s.String() != "<label 'MAIN'>" {
		t.Errorf("unexpected Stringer output: %s", s)
	}
}

func TestTwoSymbolsDistinct(t *testing.T) {
	table := NewTable()
	s1, _ := table.Define("loop")
	s2, _ := table.Define("done")
	if s1 == s2 {
		t.Error("2 symbols with equal identity")
	}
	if table.Size() != 2 {
		t.Errorf("expected 2 symbols, got %d", table.Size())
	}
}

func TestResolve(t *testing.T) {
	table := NewTable()
	s, _ := table.Define("loop")
	if found := table.Resolve(s.Name()); found == nil {
		t.Error("cannot find stored symbol in table")
	}
}

func TestResolveOrDefine(t *testing.T) {
	table := NewTable()
	s, _ := table.Define("loop")
	if _, found := table.ResolveOrDefine(s.Name()); !found {
		t.Error("cannot find stored symbol in table")
	}
	if _, found := table.ResolveOrDefine("fresh"); found {
		t.Error("expected 'fresh' to be newly defined")
	}
}

func TestRedefineReplaces(t *testing.T) {
	table := NewTable()
	s, _ := table.Define("loop")
	if _, old := table.Define("loop"); old != s {
		t.Error("symbol should have been replaced")
	}
}

func TestScopeUpsearch(t *testing.T) {
	parent := NewScope("main.vs", nil)
	scope := NewScope("lib.vs", parent)
	parent.Define("MAX")
	if s, in := scope.Resolve("MAX"); s != nil {
		t.Logf("found symbol '%s' in scope %s, ok", s.Name(), in)
	} else {
		t.Fail()
	}
	if s, _ := scope.Resolve("MISSING"); s != nil {
		t.Error("resolved a symbol that was never defined")
	}
}
