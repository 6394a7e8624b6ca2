/*
Package grammar implements the grammar model: symbols, rules and rulesets.

Building a Grammar

Grammars are specified using a builder object. Clients add rules, consisting
of references to other rules, literal words and custom terminals. Every rule
carries a binder, which converts between the values matched by the rule's
symbols and a domain value (see package binding).
Grammars may contain epsilon-productions.

Example:

    b := grammar.NewBuilder("Arguments")
    b.LHS("argument").N("claim").N("support").Bind(binding.Struct(Argument{}, ...))
    b.LHS("support").L("because").N("claim").Bind(binding.Slot(1))
    b.LHS("support").Epsilon(binding.Empty())
    b.LHS("claim").T("unit", scanner.UnitTerminal()).Bind(binding.Slot(0))
    rs, err := b.Ruleset()

This results in the following grammar:

    rs.Dump()

    0: [argument] ::= [claim support]        ⇒ Struct(Argument, …)
    1: [support] ::= ["because" claim]       ⇒ Slot(1)
    2: [support] ::= []                      ⇒ Empty()
    3: [claim] ::= [<unit>]                  ⇒ Slot(0)

Rules with the same name are alternatives. Engines explore alternatives in
the order of declaration.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"fmt"

	"github.com/npillmayer/nlpg"
	"github.com/npillmayer/nlpg/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nlpg.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("nlpg.grammar")
}

// Symbol is a symbol on the right hand side of a rule. The set of symbols is
// closed: Literal, Ref and Terminal are the only implementations.
type Symbol interface {
	String() string
	isSymbol()
}

// Matcher is the interface for terminal symbols. Literal implements it, and
// custom terminals delegate to a client-supplied Matcher.
type Matcher interface {
	// Test is a predicate: does the token match?
	Test(nlpg.Token) bool
	// Consume converts a matching token into a value.
	Consume(nlpg.Token) interface{}
	// Reverse converts a value back into a token. It returns false if the value
	// could not have been produced by Consume.
	Reverse(interface{}) (nlpg.Token, bool)
}

// MatcherOf returns the matcher of a terminal symbol, or false for references.
func MatcherOf(sym Symbol) (Matcher, bool) {
	switch s := sym.(type) {
	case Literal:
		return s, true
	case Terminal:
		return s.Matcher, true
	}
	return nil, false
}

// --- Literals --------------------------------------------------------------

// Literal is a fixed word, matching tokens with exactly this lexeme.
type Literal struct {
	Word string
}

func (Literal) isSymbol() {}

func (l Literal) String() string {
	return fmt.Sprintf("%q", l.Word)
}

// Test is part of interface Matcher.
func (l Literal) Test(token nlpg.Token) bool {
	return token != nil && token.Lexeme() == l.Word
}

// Consume is part of interface Matcher. A literal consumes to its lexeme.
func (l Literal) Consume(token nlpg.Token) interface{} {
	return token.Lexeme()
}

// Reverse is part of interface Matcher. It produces a marker token for the
// literal's word. If v is bound, it has to be the word itself or a token with
// the word as its lexeme.
func (l Literal) Reverse(v interface{}) (nlpg.Token, bool) {
	if !nlpg.IsAbsent(v) {
		switch x := v.(type) {
		case string:
			if x != l.Word {
				return nil, false
			}
		case nlpg.Token:
			if x.Lexeme() != l.Word {
				return nil, false
			}
		default:
			return nil, false
		}
	}
	return scanner.MakeMarker(l.Word), true
}

// --- References ------------------------------------------------------------

// Ref is a reference to a non-terminal, i.e. to all rules of a given name.
type Ref struct {
	Name string
}

func (Ref) isSymbol() {}

func (r Ref) String() string {
	return r.Name
}

// --- Custom terminals ------------------------------------------------------

// Terminal is a custom terminal symbol, delegating token matching to a Matcher.
// Name is used for display only: terminals of equal name with different
// matchers are distinct symbols, e.g. part-of-speech tags:
//
//    b.LHS("noun").T("tag", Tag("NN")).Bind(binding.Slot(0))
//    b.LHS("verb").T("tag", Tag("VB")).Bind(binding.Slot(0))
//
type Terminal struct {
	Name string
	Matcher
}

func (Terminal) isSymbol() {}

func (t Terminal) String() string {
	return "<" + t.Name + ">"
}

// Errors -------------------------------------------------------------------

// UndefinedRuleError is returned for references to rules which do not exist.
type UndefinedRuleError struct {
	Name string
}

func (e *UndefinedRuleError) Error() string {
	return fmt.Sprintf("grammar: no rule named %q", e.Name)
}

// IncompleteGrammarError is returned by Validate for grammars with references
// to undefined rules.
type IncompleteGrammarError struct {
	Grammar string
	Missing []string
}

func (e *IncompleteGrammarError) Error() string {
	return fmt.Sprintf("grammar %q is incomplete, undefined rules: %v", e.Grammar, e.Missing)
}
