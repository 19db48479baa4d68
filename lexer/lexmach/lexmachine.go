package lexmach

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/voxl-lang/vasm"
	"github.com/voxl-lang/vasm/lexer"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter: a coarse, error-tolerant scanner over the assembly
// token shapes, for tooling that wants token classes without the exact
// failure semantics of the real lexer (highlighting, token counting). The
// semantic core stays in package lexer.

// tracer traces with key 'vasm.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("vasm.lexer")
}

// Coarse token classes. Punctuation classes reuse the character code.
const (
	EOF       vasm.TokType = -1
	Comma     vasm.TokType = ','
	Colon     vasm.TokType = ':'
	Directive vasm.TokType = 10
	Register  vasm.TokType = 11
	Number    vasm.TokType = 12
	Ident     vasm.TokType = 13
)

// TokName is a TokTypeStringer for the coarse token classes.
var TokName vasm.TokTypeStringer = func(tt vasm.TokType) string {
	switch tt {
	case EOF:
		return "EOF"
	case Comma:
		return "Comma"
	case Colon:
		return "Colon"
	case Directive:
		return "Directive"
	case Register:
		return "Register"
	case Number:
		return "Number"
	case Ident:
		return "Ident"
	}
	return fmt.Sprintf("Class(%d)", int(tt))
}

// Adapter wraps a compiled lexmachine DFA over the assembly token shapes.
type Adapter struct {
	Lexer *lexmachine.Lexer
}

// NewAdapter creates a new lexmachine adapter. It will return an error if
// compiling the DFA failed.
func NewAdapter() (*Adapter, error) {
	adapter := &Adapter{}
	adapter.Lexer = lexmachine.NewLexer()
	adapter.Lexer.Add([]byte(`\#[^\n]*\n?`), Skip) // skip comments
	adapter.Lexer.Add([]byte(`%([a-z]|[A-Z]|_)+`), MakeToken("DIRECTIVE", int(Directive)))
	adapter.Lexer.Add([]byte(`\$([a-z]|[A-Z]|[0-9])+`), MakeToken("REGISTER", int(Register)))
	adapter.Lexer.Add([]byte(`0x([0-9]|[a-f]|[A-F])+`), MakeToken("NUMBER", int(Number)))
	adapter.Lexer.Add([]byte(`0b(0|1)+`), MakeToken("NUMBER", int(Number)))
	adapter.Lexer.Add([]byte(`0i\-?[0-9]+`), MakeToken("NUMBER", int(Number)))
	adapter.Lexer.Add([]byte(`0u[0-9]+`), MakeToken("NUMBER", int(Number)))
	adapter.Lexer.Add([]byte(`\-?[0-9]+`), MakeToken("NUMBER", int(Number)))
	adapter.Lexer.Add([]byte(`([a-z]|[A-Z]|_)+`), MakeToken("IDENT", int(Ident)))
	adapter.Lexer.Add([]byte(`,`), MakeToken(",", int(Comma)))
	adapter.Lexer.Add([]byte(`:`), MakeToken(":", int(Colon)))
	adapter.Lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement
// the lexer.Tokenizer interface.
func (lm *Adapter) Scanner(input string) (*Scanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &Scanner{}, err
	}
	return &Scanner{s, logError}, nil
}

// Scanner is a scanner type for lexmachine scanners, implementing the
// lexer.Tokenizer interface.
type Scanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ lexer.Tokenizer = (*Scanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Unscannable input is
// reported through the error handler and skipped, not surfaced as a
// failure.
func (lms *Scanner) NextToken() vasm.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return coarseToken{kind: EOF}
	}
	token := tok.(*lexmachine.Token)
	return coarseToken{
		kind:   vasm.TokType(token.Type),
		lexeme: string(token.Lexeme),
		span:   vasm.Span{uint64(token.StartColumn), uint64(token.EndColumn)},
	}
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// coarseToken carries no file handle; spans are plain input offsets.
type coarseToken struct {
	kind   vasm.TokType
	lexeme string
	span   vasm.Span
}

func (t coarseToken) TokType() vasm.TokType { return t.kind }
func (t coarseToken) Lexeme() string        { return t.lexeme }
func (t coarseToken) Value() interface{}    { return nil }
func (t coarseToken) Span() vasm.Span       { return t.span }
