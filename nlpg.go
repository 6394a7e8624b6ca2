package nlpg

import (
	"fmt"
	"iter"
	"reflect"
)

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Package scanner defines the categories
// used by the default tokenizers, but applications are free to define their own.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language.
//
// An example would be a token for a run of plain words between two markers:
//
//    TokType = Unit                // identifier for this kind of tokens
//    Lexeme  = "Tweety can fly"    // lexeme how it appeared in the input stream
//    Value   = Text{...}           // the words of the unit
//    Span    = 0…3                 // covers words 0, 1 and 2 of the input
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() any
	Span() Span
}

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

// IsNull is a predicate: is s the zero span? Tokens created without input,
// e.g. during generation, carry a null span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

// String returns a span as (x…y).
func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Engines ---------------------------------------------------------------

// Engine is the common interface of the parsing strategies of this module.
//
// Parse enumerates every derivation of the token sequence from rule start. Each
// derivation is yielded as (value, nil). If no derivation exists at all, a single
// (nil, *ParseError) is yielded. Grammar defects are yielded as an error and end
// the enumeration.
//
// Reverse enumerates every token sequence which parses to value, using the same
// grammar backwards.
//
// Both sequences are lazy: clients may stop early by breaking out of the range-loop.
type Engine interface {
	Parse(start string, tokens []Token) iter.Seq2[any, error]
	Reverse(start string, value any) iter.Seq2[[]Token, error]
}

// ParseError is reported if a parse does not produce any result. Position is the
// furthest input position any branch of the search did reach, Token is the token
// at this position (nil at the end of input).
type ParseError struct {
	Position int
	Token    Token
}

func (e *ParseError) Error() string {
	if e.Token == nil {
		return fmt.Sprintf("no possible parse: unexpected end of input at position %d", e.Position)
	}
	if span := e.Token.Span(); !span.IsNull() {
		return fmt.Sprintf("no possible parse at position %d: %q %v", e.Position, e.Token.Lexeme(), span)
	}
	return fmt.Sprintf("no possible parse at position %d: %q", e.Position, e.Token.Lexeme())
}

// All collects a sequence produced by an engine. It stops at the first error.
func All[V any](seq iter.Seq2[V, error]) ([]V, error) {
	var values []V
	for v, err := range seq {
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
	return values, nil
}

// IsAbsent is a predicate: does v denote "no value"? This is true for nil and for
// typed nil pointers, maps, interfaces, functions and channels. Nil slices are not
// absent, they are empty lists.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Lexemes is a helper to extract the lexemes from a token sequence.
func Lexemes(tokens []Token) []string {
	l := make([]string, len(tokens))
	for i, t := range tokens {
		l[i] = t.Lexeme()
	}
	return l
}
