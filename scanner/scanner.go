/*
Package scanner defines an interface for scanners to be used with the engines
of this module, together with a default tokenizer.

Natural language sentences are tokenized with respect to a set of markers, i.e.
the literal words of a grammar ("because", "and", "."). Every marker becomes a
token of its own; runs of other words between markers are grouped into units:

    markers:  because, .
    input:    Tweety can fly because Tweety is a bird .
    tokens:   [Tweety can fly] because [Tweety is a bird] .

Two tokenizer implementations are provided: (1) a simple whitespace-splitting
tokenizer, and (2) an adapter for lexmachine, living in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"strings"

	"github.com/npillmayer/nlpg"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nlpg.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("nlpg.scanner")
}

// Token categories produced by the tokenizers of this package.
const (
	EOF    nlpg.TokType = -1
	Marker nlpg.TokType = 1 // a literal word of a grammar
	Word   nlpg.TokType = 2 // any other word
	Unit   nlpg.TokType = 3 // a run of words between markers
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() nlpg.Token
	SetErrorHandler(func(error))
}

// DefaultTokenizer is a default implementation, splitting input at white space.
// Create one with MarkerTokenizer.
type DefaultTokenizer struct {
	words   []string
	pos     int
	markers map[string]bool
	Error   func(error) // error handler
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// MarkerTokenizer creates a tokenizer which splits text at white space. Words
// contained in markers are reported as Marker tokens, all other words as Word tokens.
func MarkerTokenizer(markers []string, text string) *DefaultTokenizer {
	t := &DefaultTokenizer{
		words:   strings.Fields(text),
		markers: make(map[string]bool, len(markers)),
		Error:   logError,
	}
	for _, m := range markers {
		t.markers[m] = true
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() nlpg.Token {
	if t.pos >= len(t.words) {
		tracer().Debugf("DefaultTokenizer reached end of input")
		return MakeDefaultToken(EOF, "", nlpg.Span{uint64(t.pos), uint64(t.pos)})
	}
	w := t.words[t.pos]
	span := nlpg.Span{uint64(t.pos), uint64(t.pos + 1)}
	t.pos++
	if t.markers[w] {
		return MakeDefaultToken(Marker, w, span)
	}
	return MakeDefaultToken(Word, w, span)
}

// --- Units -----------------------------------------------------------------

// Text is the value of a Unit token: a run of words between markers.
type Text struct {
	Words []string
}

func (t Text) String() string {
	return strings.Join(t.Words, " ")
}

// Units reads all tokens from a tokenizer and groups runs of consecutive Word
// tokens into Unit tokens. Marker tokens are passed through.
func Units(t Tokenizer) []nlpg.Token {
	var tokens []nlpg.Token
	var unit []string
	var span nlpg.Span
	flush := func() {
		if len(unit) > 0 {
			tokens = append(tokens, MakeUnit(Text{Words: unit}, span))
			unit = nil
		}
	}
	for token := t.NextToken(); token.TokType() != EOF; token = t.NextToken() {
		if token.TokType() == Word {
			if len(unit) == 0 {
				span = token.Span()
			} else {
				span = span.Extend(token.Span())
			}
			unit = append(unit, token.Lexeme())
			continue
		}
		flush()
		tokens = append(tokens, token)
	}
	flush()
	tracer().Debugf("input split into %d tokens", len(tokens))
	return tokens
}

// Tokenize splits text into tokens, honouring markers, and groups the words
// between markers into units.
func Tokenize(markers []string, text string) []nlpg.Token {
	return Units(MarkerTokenizer(markers, text))
}

// Words creates a token sequence from words. Every word will be a marker token.
// This is mainly useful for tests and for grammars consisting of literals only.
func Words(words ...string) []nlpg.Token {
	tokens := make([]nlpg.Token, len(words))
	for i, w := range words {
		tokens[i] = MakeDefaultToken(Marker, w, nlpg.Span{uint64(i), uint64(i + 1)})
	}
	return tokens
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// tokenizers as well as for tokens produced by generation.
type DefaultToken struct {
	kind   nlpg.TokType
	lexeme string
	Val    interface{}
	span   nlpg.Span
}

func MakeDefaultToken(typ nlpg.TokType, lexeme string, span nlpg.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

// MakeMarker creates a marker token without a span.
func MakeMarker(word string) DefaultToken {
	return DefaultToken{kind: Marker, lexeme: word}
}

// MakeUnit creates a unit token for text.
func MakeUnit(text Text, span nlpg.Span) DefaultToken {
	return DefaultToken{kind: Unit, lexeme: text.String(), Val: text, span: span}
}

func (t DefaultToken) TokType() nlpg.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() nlpg.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == Unit {
		return fmt.Sprintf("[%s]", t.lexeme)
	}
	return t.lexeme
}

// --- Unit terminal ---------------------------------------------------------

// UnitMatcher is a matcher for custom terminals (see grammar.Terminal), matching
// Unit tokens. It consumes a unit into its Text value and reverses a Text value
// into a Unit token.
type UnitMatcher struct{}

// UnitTerminal returns a matcher for Unit tokens.
func UnitTerminal() UnitMatcher {
	return UnitMatcher{}
}

// Test is part of the grammar.Matcher interface.
func (UnitMatcher) Test(token nlpg.Token) bool {
	return token != nil && token.TokType() == Unit
}

// Consume is part of the grammar.Matcher interface.
func (UnitMatcher) Consume(token nlpg.Token) interface{} {
	if text, ok := token.Value().(Text); ok {
		return text
	}
	return Text{Words: strings.Fields(token.Lexeme())}
}

// Reverse is part of the grammar.Matcher interface.
func (UnitMatcher) Reverse(v interface{}) (nlpg.Token, bool) {
	text, ok := v.(Text)
	if !ok || len(text.Words) == 0 {
		return nil, false
	}
	return MakeUnit(text, nlpg.Span{}), true
}

func (UnitMatcher) String() string {
	return "unit"
}
