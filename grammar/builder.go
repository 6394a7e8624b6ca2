package grammar

import (
	"github.com/npillmayer/nlpg/binding"
)

// Builder is a helper type to construct grammars. Rules are started with LHS()
// and closed with Bind() or Epsilon().
//
//    b := grammar.NewBuilder("G")
//    b.LHS("argument").N("claim").L("because").N("claim").Bind(binding.List(0, 2))
//    b.LHS("claim").L("A").Bind(binding.Slot(0))
//    rs, err := b.Ruleset()
//
type Builder struct {
	name  string
	rules []*Rule
}

// NewBuilder creates a grammar builder for a grammar with a given name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// RuleBuilder collects the right hand side of a rule.
type RuleBuilder struct {
	gb      *Builder
	name    string
	symbols []Symbol
}

// LHS starts a new rule for non-terminal name.
func (b *Builder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{gb: b, name: name}
}

// N appends a reference to non-terminal name.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.symbols = append(rb.symbols, Ref{Name: name})
	return rb
}

// L appends literals, one per word.
func (rb *RuleBuilder) L(words ...string) *RuleBuilder {
	for _, w := range words {
		rb.symbols = append(rb.symbols, Literal{Word: w})
	}
	return rb
}

// T appends a custom terminal. The terminal is identified by its matcher, see
// Terminal.
func (rb *RuleBuilder) T(name string, m Matcher) *RuleBuilder {
	rb.symbols = append(rb.symbols, Terminal{Name: name, Matcher: m})
	return rb
}

// Bind closes a rule with a binder and adds it to the grammar.
func (rb *RuleBuilder) Bind(b binding.Binder) *Rule {
	r := NewRule(rb.name, rb.symbols, b)
	rb.gb.rules = append(rb.gb.rules, r)
	return r
}

// Epsilon closes an empty rule with a binder and adds it to the grammar.
// Symbols appended before are discarded.
func (rb *RuleBuilder) Epsilon(b binding.Binder) *Rule {
	rb.symbols = nil
	return rb.Bind(b)
}

// Ruleset returns the grammar, after checking it for references to undefined
// rules (see Ruleset.Validate).
func (b *Builder) Ruleset() (*Ruleset, error) {
	rs := NewRuleset(b.name, b.rules...)
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return rs, nil
}
