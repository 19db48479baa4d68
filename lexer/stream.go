package lexer

import (
	"github.com/voxl-lang/vasm"
)

// EOF is the token type a Stream returns once the token vector is
// exhausted.
const EOF vasm.TokType = -1

// Tokenizer is a scanner interface: anything that hands out tokens one at a
// time. Stream implements it over an exactly-lexed token vector; the
// lexmach sub-package implements it as a coarse, error-tolerant scanner.
type Tokenizer interface {
	NextToken() vasm.Token
}

var _ Tokenizer = (*Stream)(nil)

// Stream adapts a lexed token vector to a NextToken-style scanner surface,
// for parsers that want to pull tokens one at a time instead of indexing the
// vector.
type Stream struct {
	tokens []Token
	pos    int
}

// NewStream creates a stream over an ordered token vector, as returned by
// Tokenize.
func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// NextToken returns the next token, or an EOF token once the vector is
// exhausted.
func (s *Stream) NextToken() vasm.Token {
	if s.pos >= len(s.tokens) {
		return eofToken{}
	}
	t := s.tokens[s.pos]
	s.pos++
	return t
}

// Retriever exposes the stream's token vector as a vasm.TokenRetriever, for
// tooling that maps input offsets back to tokens.
func (s *Stream) Retriever() vasm.TokenRetriever {
	return s.TokenAt
}

// TokenAt returns the token covering the given input offset, or nil.
func (s *Stream) TokenAt(pos uint64) vasm.Token {
	for _, t := range s.tokens {
		if t.Span().From() <= pos && pos < t.Span().To() {
			return t
		}
	}
	return nil
}

type eofToken struct{}

func (eofToken) TokType() vasm.TokType { return EOF }
func (eofToken) Lexeme() string        { return "" }
func (eofToken) Value() interface{}    { return nil }
func (eofToken) Span() vasm.Span       { return vasm.Span{} }
