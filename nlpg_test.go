package nlpg

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type word struct {
	lexeme string
	span   Span
}

func (w word) TokType() TokType { return 0 }
func (w word) Lexeme() string { return w.lexeme }
func (w word) Value() any { return w.lexeme }
func (w word) Span() Span { return w.span }

func TestParseErrorMessage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nlpg.engine")
	defer teardown()
	//
	for _, c := range []struct {
		err      *ParseError
		expected string
	}{
		{&ParseError{Position: 3}, "no possible parse: unexpected end of input at position 3"},
		{&ParseError{Position: 1, Token: word{"bird", Span{}}}, `no possible parse at position 1: "bird"`},
		{&ParseError{Position: 1, Token: word{"bird", Span{4, 5}}}, `no possible parse at position 1: "bird" (4…5)`},
	} {
		if msg := c.err.Error(); msg != c.expected {
			t.Errorf("expected %q, have %q", c.expected, msg)
		}
	}
}

func TestSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nlpg.engine")
	defer teardown()
	//
	if !(Span{}).IsNull() || (Span{0, 1}).IsNull() {
		t.Errorf("only the zero span should be null")
	}
	s := Span{2, 4}.Extend(Span{1, 3})
	if s != (Span{1, 4}) || s.Len() != 3 {
		t.Errorf("expected (1…4) of length 3, have %v", s)
	}
}
