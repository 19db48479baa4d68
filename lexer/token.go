package lexer

import (
	"fmt"

	"github.com/voxl-lang/vasm"
	"github.com/voxl-lang/vasm/isa"
	"github.com/voxl-lang/vasm/text"
)

// TokenType classifies a lexeme. The vocabulary is closed: punctuation,
// registers, opcodes, identifiers, integer literals and one type per
// assembler directive.
type TokenType int

const (
	Comma TokenType = iota + 1 // ','
	Colon                      // ':'
	Register                   // '$'-introduced machine register
	Opcode                     // identifier resolved against the mnemonic table
	Identifier                 // any other identifier
	UnsignedIntegerLiteral
	SignedIntegerLiteral
	Repeat    // %repeat
	EndRepeat // %end_repeat
	If        // %if
	Else      // %else
	Endif     // %endif
	Import    // %import
	Constant  // %const
)

func (tt TokenType) String() string {
	switch tt {
	case Comma:
		return "Comma"
	case Colon:
		return "Colon"
	case Register:
		return "Register"
	case Opcode:
		return "Opcode"
	case Identifier:
		return "Identifier"
	case UnsignedIntegerLiteral:
		return "UnsignedIntegerLiteral"
	case SignedIntegerLiteral:
		return "SignedIntegerLiteral"
	case Repeat:
		return "Repeat"
	case EndRepeat:
		return "EndRepeat"
	case If:
		return "If"
	case Else:
		return "Else"
	case Endif:
		return "Endif"
	case Import:
		return "Import"
	case Constant:
		return "Constant"
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// directives is the closed set of directive keywords, mapped to their token
// types. Recognition happens here; execution is a later stage's business.
var directives = map[string]TokenType{
	"repeat":     Repeat,
	"end_repeat": EndRepeat,
	"if":         If,
	"else":       Else,
	"endif":      Endif,
	"import":     Import,
	"const":      Constant,
}

// MatchDirective resolves a directive keyword (without the '%' sigil) to its
// token type.
func MatchDirective(keyword string) (TokenType, bool) {
	tt, ok := directives[keyword]
	return tt, ok
}

// --- Tokens ----------------------------------------------------------------

// Token is a classified lexeme: a token type plus the source range the
// lexeme was consumed from. Token types carrying a payload (registers,
// opcodes, integer literals) store it in Val.
type Token struct {
	Type  TokenType
	Range text.Range
	Val   interface{} // isa.Register, isa.Opcode, uint64 or int64
}

var _ vasm.Token = Token{}

// TokType is part of the vasm.Token interface.
func (t Token) TokType() vasm.TokType {
	return vasm.TokType(t.Type)
}

// Lexeme re-slices the source substring the token was produced from.
func (t Token) Lexeme() string {
	return t.Range.Text()
}

// Value is part of the vasm.Token interface.
func (t Token) Value() interface{} {
	return t.Val
}

// Span is part of the vasm.Token interface.
func (t Token) Span() vasm.Span {
	return t.Range.Span()
}

// Reg returns the payload of a Register token.
func (t Token) Reg() isa.Register {
	r, _ := t.Val.(isa.Register)
	return r
}

// Op returns the payload of an Opcode token.
func (t Token) Op() isa.Opcode {
	op, _ := t.Val.(isa.Opcode)
	return op
}

// Uint returns the payload of an UnsignedIntegerLiteral token.
func (t Token) Uint() uint64 {
	n, _ := t.Val.(uint64)
	return n
}

// Int returns the payload of a SignedIntegerLiteral token.
func (t Token) Int() int64 {
	n, _ := t.Val.(int64)
	return n
}

func (t Token) String() string {
	if t.Val != nil {
		return fmt.Sprintf("%s(%v)%s", t.Type, t.Val, t.Range)
	}
	return fmt.Sprintf("%s%s", t.Type, t.Range)
}
