package grammar

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/nlpg/binding"
	"github.com/npillmayer/nlpg/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func argumentGrammar(t *testing.T) *Ruleset {
	b := NewBuilder("Arguments")
	b.LHS("argument").N("claim").N("support").Bind(binding.List(0, 1))
	b.LHS("support").L("because").N("claim").Bind(binding.Slot(1))
	b.LHS("support").Epsilon(binding.Empty())
	b.LHS("claim").L("A").Bind(binding.Slot(0))
	b.LHS("claim").T("unit", scanner.UnitTerminal()).Bind(binding.Slot(0))
	b.LHS("orphan").L("unused", ".").Bind(binding.Empty())
	rs, err := b.Ruleset()
	if err != nil {
		t.Fatal(err)
	}
	return rs
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nlpg.grammar")
	defer teardown()
	//
	rs := argumentGrammar(t)
	rs.Dump()
	if rs.Size() != 6 {
		t.Errorf("expected 6 rules, have %d", rs.Size())
	}
	alts, err := rs.Alternatives("claim")
	if err != nil || len(alts) != 2 {
		t.Fatalf("expected 2 alternatives for claim, have %v (%v)", alts, err)
	}
	if alts[0].Serial != 3 || alts[1].Serial != 4 {
		t.Errorf("alternatives out of order: %v", alts)
	}
	if r := rs.Rule(2); r == nil || !r.IsEpsilon() || r.Name != "support" {
		t.Errorf("expected rule 2 to be the empty support rule, is %v", r)
	}
	if s := rs.Rule(1).String(); s != `[support] ::= ["because" claim]` {
		t.Errorf("unexpected rule string %s", s)
	}
	if s := rs.Rule(4).String(); s != `[claim] ::= [<unit>]` {
		t.Errorf("unexpected rule string %s", s)
	}
}

func TestViews(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nlpg.grammar")
	defer teardown()
	//
	rs := argumentGrammar(t)
	if diff := cmp.Diff([]string{"argument", "claim", "orphan", "support"}, rs.Defined()); diff != "" {
		t.Errorf("unexpected defined names (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"claim", "support"}, rs.Referenced()); diff != "" {
		t.Errorf("unexpected referenced names (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{".", "A", "because", "unused"}, rs.Markers()); diff != "" {
		t.Errorf("unexpected markers (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"orphan"}, rs.Unreachable("argument")); diff != "" {
		t.Errorf("unexpected unreachable names (-want +got):\n%s", diff)
	}
	if len(rs.MissingReferences()) != 0 {
		t.Errorf("expected no missing references, have %v", rs.MissingReferences())
	}
}

func TestUndefined(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nlpg.grammar")
	defer teardown()
	//
	rs := argumentGrammar(t)
	_, err := rs.Alternatives("warrant")
	var undef *UndefinedRuleError
	if !errors.As(err, &undef) || undef.Name != "warrant" {
		t.Errorf("expected undefined rule error for warrant, have %v", err)
	}
	b := NewBuilder("Broken")
	b.LHS("argument").N("claim").N("warrant").Bind(binding.List(0, 1))
	b.LHS("claim").L("A").Bind(binding.Slot(0))
	_, err = b.Ruleset()
	var incomplete *IncompleteGrammarError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected incomplete grammar error, have %v", err)
	}
	if diff := cmp.Diff([]string{"warrant"}, incomplete.Missing); diff != "" {
		t.Errorf("unexpected missing names (-want +got):\n%s", diff)
	}
}

func TestLiteral(t *testing.T) {
	lit := Literal{Word: "because"}
	if !lit.Test(scanner.MakeMarker("because")) || lit.Test(scanner.MakeMarker("since")) {
		t.Errorf("literal should accept exactly its word")
	}
	if lit.Test(nil) {
		t.Errorf("literal should not accept end of input")
	}
	if v := lit.Consume(scanner.MakeMarker("because")); v != "because" {
		t.Errorf("literal should consume to its lexeme, have %v", v)
	}
	for _, v := range []interface{}{nil, "because", scanner.MakeMarker("because")} {
		tok, ok := lit.Reverse(v)
		if !ok || tok.Lexeme() != "because" || tok.TokType() != scanner.Marker {
			t.Errorf("literal should reverse %#v to a marker", v)
		}
	}
	for _, v := range []interface{}{"since", scanner.MakeMarker("since"), 42} {
		if _, ok := lit.Reverse(v); ok {
			t.Errorf("literal should reject bound value %#v", v)
		}
	}
}

func TestMatcherOf(t *testing.T) {
	if _, ok := MatcherOf(Ref{Name: "claim"}); ok {
		t.Errorf("references have no matcher")
	}
	m, ok := MatcherOf(Terminal{Name: "unit", Matcher: scanner.UnitTerminal()})
	if !ok || !m.Test(scanner.Tokenize(nil, "some words")[0]) {
		t.Errorf("expected the unit matcher of a custom terminal")
	}
	if m, ok = MatcherOf(Literal{Word: "A"}); !ok || !m.Test(scanner.MakeMarker("A")) {
		t.Errorf("literals are matchers")
	}
}
