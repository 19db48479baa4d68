package lexer

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/voxl-lang/vasm/text"
)

func TestStream(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vasm.lexer")
	defer teardown()
	//
	tokens, _ := lex(t, text.NewRegistry(), "ldi 52, $r0")
	s := NewStream(tokens)
	count := 0
	for tok := s.NextToken(); tok.TokType() != EOF; tok = s.NextToken() {
		t.Logf(" %4d | %15s | @%5d", tok.TokType(), tok.Lexeme(), tok.Span().From())
		count++
	}
	if count != 4 {
		t.Errorf("expected the stream to deliver 4 tokens, got %d", count)
	}
	// a drained stream stays at EOF
	if tok := s.NextToken(); tok.TokType() != EOF {
		t.Errorf("expected EOF after drain, got %v", tok.TokType())
	}
}

func TestStreamRetriever(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vasm.lexer")
	defer teardown()
	//
	tokens, _ := lex(t, text.NewRegistry(), "ldi 52, $r0")
	retrieve := NewStream(tokens).Retriever()
	if tok := retrieve(9); tok == nil || tok.Lexeme() != "r0" {
		t.Errorf("expected the retriever to find 'r0' at offset 9, got %v", tok)
	}
	if tok := retrieve(99); tok != nil {
		t.Errorf("expected no token past the input, got %v", tok)
	}
}

func TestStreamTokenAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vasm.lexer")
	defer teardown()
	//
	tokens, _ := lex(t, text.NewRegistry(), "ldi 52, $r0")
	s := NewStream(tokens)
	tok := s.TokenAt(4) // inside "52"
	if tok == nil || tok.Lexeme() != "52" {
		t.Errorf("expected the token at offset 4 to be '52', got %v", tok)
	}
	if gap := s.TokenAt(3); gap != nil { // the blank between 'ldi' and '52'
		t.Errorf("expected no token at offset 3, got %v", gap)
	}
}
