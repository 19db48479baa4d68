package lexmach

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/voxl-lang/vasm"
)

var inputStrings = []string{
	"ldi 52, $r0",
	"call MAIN",
	"%repeat MAIN",
	"ldi 52 #trailing $$$",
	"0x2abc 0b101 0i-7 0u9",
}

var tokenCounts = []int{4, 2, 2, 2, 4}

func TestCoarseScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vasm.lexer")
	defer teardown()
	//
	adapter, err := NewAdapter()
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		scanner, err := adapter.Scanner(input)
		if err != nil {
			t.Error(err)
			continue
		}
		token := scanner.NextToken()
		count := 0
		for token.TokType() != EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = scanner.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestCoarseClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vasm.lexer")
	defer teardown()
	//
	adapter, err := NewAdapter()
	if err != nil {
		t.Fatal(err)
	}
	scanner, err := adapter.Scanner("%const MAX , : $r0 42")
	if err != nil {
		t.Fatal(err)
	}
	expected := []struct {
		kind   int
		lexeme string
	}{
		{int(Directive), "%const"},
		{int(Ident), "MAX"},
		{int(Comma), ","},
		{int(Colon), ":"},
		{int(Register), "$r0"},
		{int(Number), "42"},
	}
	for i, exp := range expected {
		token := scanner.NextToken()
		if int(token.TokType()) != exp.kind || token.Lexeme() != exp.lexeme {
			t.Errorf("token #%d: expected (%d, %q), got (%d, %q)",
				i, exp.kind, exp.lexeme, token.TokType(), token.Lexeme())
		}
	}
	if token := scanner.NextToken(); token.TokType() != EOF {
		t.Errorf("expected EOF, got %v", token.TokType())
	}
}

func TestCoarseTokenNames(t *testing.T) {
	cases := []struct {
		kind vasm.TokType
		name string
	}{
		{EOF, "EOF"},
		{Comma, "Comma"},
		{Colon, "Colon"},
		{Directive, "Directive"},
		{Register, "Register"},
		{Number, "Number"},
		{Ident, "Ident"},
	}
	for _, tc := range cases {
		if name := TokName(tc.kind); name != tc.name {
			t.Errorf("class %d: expected %q, got %q", tc.kind, tc.name, name)
		}
	}
	if name := TokName(vasm.TokType(99)); name != "Class(99)" {
		t.Errorf("unexpected rendering for unknown class: %q", name)
	}
}
