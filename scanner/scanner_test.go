package scanner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/nlpg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var markers = []string{"because", "and", "."}

func TestMarkerTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nlpg.scanner")
	defer teardown()
	//
	sc := MarkerTokenizer(markers, "Tweety can fly because  Tweety is a bird .")
	var types []nlpg.TokType
	var lexemes []string
	for token := sc.NextToken(); token.TokType() != EOF; token = sc.NextToken() {
		t.Logf(" %4d | %15s | %v", token.TokType(), token.Lexeme(), token.Span())
		types = append(types, token.TokType())
		lexemes = append(lexemes, token.Lexeme())
	}
	expected := []nlpg.TokType{Word, Word, Word, Marker, Word, Word, Word, Word, Marker}
	if diff := cmp.Diff(expected, types); diff != "" {
		t.Errorf("unexpected token types (-want +got):\n%s", diff)
	}
	if lexemes[3] != "because" || lexemes[8] != "." {
		t.Errorf("unexpected lexemes %v", lexemes)
	}
}

func TestUnits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nlpg.scanner")
	defer teardown()
	//
	tokens := Tokenize(markers, "Tweety can fly because Tweety is a bird and birds fly .")
	if diff := cmp.Diff([]string{"Tweety can fly", "because", "Tweety is a bird", "and", "birds fly", "."},
		nlpg.Lexemes(tokens)); diff != "" {
		t.Fatalf("unexpected tokens (-want +got):\n%s", diff)
	}
	if tokens[0].TokType() != Unit || tokens[1].TokType() != Marker {
		t.Errorf("expected unit followed by marker, have %v", tokens[:2])
	}
	if tokens[2].Span() != (nlpg.Span{4, 8}) {
		t.Errorf("expected second unit to span words 4…8, is %v", tokens[2].Span())
	}
	text, ok := tokens[2].Value().(Text)
	if !ok || len(text.Words) != 4 {
		t.Errorf("expected unit value to be Text of 4 words, is %#v", tokens[2].Value())
	}
}

func TestUnitsEmptyInput(t *testing.T) {
	if tokens := Tokenize(markers, "   "); len(tokens) != 0 {
		t.Errorf("expected no tokens, have %v", tokens)
	}
	tokens := Tokenize(markers, "because")
	if len(tokens) != 1 || tokens[0].TokType() != Marker {
		t.Errorf("expected a single marker token, have %v", tokens)
	}
}

func TestWords(t *testing.T) {
	tokens := Words("A", "because", "B")
	if diff := cmp.Diff([]string{"A", "because", "B"}, nlpg.Lexemes(tokens)); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}
	if tokens[2].Span() != (nlpg.Span{2, 3}) {
		t.Errorf("unexpected span %v", tokens[2].Span())
	}
}

func TestUnitTerminal(t *testing.T) {
	m := UnitTerminal()
	unit := Tokenize(nil, "Tweety can fly")[0]
	if !m.Test(unit) {
		t.Fatalf("unit terminal should accept %v", unit)
	}
	if m.Test(MakeMarker("because")) {
		t.Errorf("unit terminal should not accept a marker")
	}
	v := m.Consume(unit)
	if diff := cmp.Diff(Text{Words: []string{"Tweety", "can", "fly"}}, v); diff != "" {
		t.Errorf("unexpected unit value (-want +got):\n%s", diff)
	}
	tok, ok := m.Reverse(v)
	if !ok || tok.Lexeme() != "Tweety can fly" || tok.TokType() != Unit {
		t.Errorf("unexpected reverse token %v", tok)
	}
	if _, ok := m.Reverse("Tweety"); ok {
		t.Errorf("unit terminal should not reverse a plain string")
	}
	if _, ok := m.Reverse(Text{}); ok {
		t.Errorf("unit terminal should not reverse an empty text")
	}
}
