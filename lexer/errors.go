package lexer

import (
	"fmt"

	"github.com/voxl-lang/vasm/text"
)

// ErrorCode enumerates the closed set of lexing failure modes. Lexing is
// strictly fail-fast: the first failure terminates the run, and exactly one
// of these codes describes it.
type ErrorCode int

const (
	UnexpectedCharacter ErrorCode = iota + 1
	EmptyIdentifier
	InvalidHexLiteral
	InvalidBinaryLiteral
	UnexpectedSecondDecimalPoint // reserved for future float support
	InvalidFloatLiteral
	InvalidUnsignedIntegerLiteral
	InvalidSignedIntegerLiteral
	InvalidRegister
	ExpectedRegisterFoundEOF
	UnknownDirective
)

func (c ErrorCode) String() string {
	switch c {
	case UnexpectedCharacter:
		return "unexpected character"
	case EmptyIdentifier:
		return "empty identifier"
	case InvalidHexLiteral:
		return "invalid hex literal"
	case InvalidBinaryLiteral:
		return "invalid binary literal"
	case UnexpectedSecondDecimalPoint:
		return "unexpected second decimal point"
	case InvalidFloatLiteral:
		return "invalid float literal"
	case InvalidUnsignedIntegerLiteral:
		return "invalid unsigned integer literal"
	case InvalidSignedIntegerLiteral:
		return "invalid signed integer literal"
	case InvalidRegister:
		return "invalid register"
	case ExpectedRegisterFoundEOF:
		return "expected register, found end of input"
	case UnknownDirective:
		return "unknown directive"
	}
	return fmt.Sprintf("error(%d)", int(c))
}

// Error is a structured lexing failure: a code plus the source range it
// covers. Position-only failure modes carry a zero-width range. The range
// holds enough data for a caller to render a precise source pointer without
// re-scanning; rendering itself is a caller's business.
type Error struct {
	Code  ErrorCode
	Char  rune // set for UnexpectedCharacter only
	Range text.Range
}

// Pos returns the position the error points at.
func (e *Error) Pos() text.Position {
	return e.Range.Start
}

func (e *Error) Error() string {
	if e.Code == UnexpectedCharacter {
		return fmt.Sprintf("%s %q at %s", e.Code, e.Char, e.Range.Start)
	}
	if !e.Range.IsEmpty() {
		return fmt.Sprintf("%s '%s' at %s", e.Code, e.Range.Text(), e.Range.Start)
	}
	return fmt.Sprintf("%s at %s", e.Code, e.Range.Start)
}

// errChar builds an UnexpectedCharacter error at a position.
func errChar(c rune, pos text.Position, file *text.FileInfo) *Error {
	return &Error{Code: UnexpectedCharacter, Char: c, Range: text.NewRange(pos, pos, file)}
}

// errAt builds a position-only error with a zero-width range.
func errAt(code ErrorCode, pos text.Position, file *text.FileInfo) *Error {
	return &Error{Code: code, Range: text.NewRange(pos, pos, file)}
}

// errOver builds an error covering a range of consumed input.
func errOver(code ErrorCode, r text.Range) *Error {
	return &Error{Code: code, Range: r}
}
