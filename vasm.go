package vasm

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. The lexer package defines the
// concrete token vocabulary of the assembler; scanners for other small
// languages may define their own.
type TokType int

// TokTypeStringer is a type to be provided by a scanner/parser combination to
// be able to print out token categories.
type TokTypeStringer func(TokType) string

// Tokens represent input tokens. They are produced by a scanner and reflect
// terminals of the assembly language.
//
// An example would be a token for an unsigned integer literal:
//
//    TokType = UnsignedIntegerLiteral  // identifier for this kind of tokens
//    Lexeme  = "0x2abc"                // lexeme as it appeared in the input
//    Value   = 10940                   // is a uint64 value
//    Span    = 67…73                   // occupied positions 67–73 of the input
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// TokenRetriever is a type for getting tokens at an input position.
// Most scanner/parser combinations will keep track of input tokens. However,
// this is not a must. Factoring it out into a type helps model this
// design-decision.
type TokenRetriever func(uint64) Token

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. A span
// denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
