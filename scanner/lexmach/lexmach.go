/*
Package lexmach provides a marker tokenizer built on lexmachine.

The tokenizer has the same contract as scanner.MarkerTokenizer: input is split
at white space, markers are reported as scanner.Marker tokens and all other words
as scanner.Word tokens. Other than the default tokenizer, markers consisting of
punctuation need not be separated from the surrounding words:

    markers:  because, .
    input:    Tweety can fly because Tweety is a bird.
    tokens:   Tweety can fly because Tweety is a bird .

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach

import (
	"strings"
	"unicode"

	"github.com/npillmayer/nlpg"
	"github.com/npillmayer/nlpg/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'nlpg.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("nlpg.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer   *lexmachine.Lexer
	markers []string
}

// NewMarkerAdapter creates a new lexmachine adapter for a set of markers.
// Markers are added to the lexer before the generic word pattern, thus a
// marker wins over a word of the same length.
//
// NewMarkerAdapter will return an error if compiling the DFA failed.
func NewMarkerAdapter(markers []string) (*LMAdapter, error) {
	adapter := &LMAdapter{
		Lexer:   lexmachine.NewLexer(),
		markers: markers,
	}
	for _, m := range markers {
		if m == "" {
			continue
		}
		adapter.Lexer.Add([]byte(quote(m)), MakeToken(m, int(scanner.Marker)))
	}
	adapter.Lexer.Add([]byte(`[^ \t\r\n\.,;:!\?\(\)]+`), MakeToken("word", int(scanner.Word)))
	adapter.Lexer.Add([]byte(`[\.,;:!\?\(\)]`), MakeToken("punct", int(scanner.Word)))
	adapter.Lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// quote escapes every ASCII character of a marker which is not a letter or digit.
func quote(marker string) string {
	var b strings.Builder
	for _, r := range marker {
		if r < unicode.MaxASCII && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Markers returns the markers the adapter has been compiled for.
func (lm *LMAdapter) Markers() []string {
	return lm.markers
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// Tokenize splits input into marker tokens and units, see scanner.Units.
func (lm *LMAdapter) Tokenize(input string) ([]nlpg.Token, error) {
	s, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	return scanner.Units(s), nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	count   uint64 // number of tokens delivered
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
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

// NextToken is part of the Tokenizer interface. Token spans count words, not
// bytes, in the same way as scanner.MarkerTokenizer does.
func (lms *LMScanner) NextToken() nlpg.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", nlpg.Span{lms.count, lms.count})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %d at column %d: %q", token.Type, token.StartColumn, token.Lexeme)
	span := nlpg.Span{lms.count, lms.count + 1}
	lms.count++
	return scanner.MakeDefaultToken(nlpg.TokType(token.Type), string(token.Lexeme), span)
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
