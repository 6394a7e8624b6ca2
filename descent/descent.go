/*
Package descent implements a recursive-descent engine for grammars of package
grammar, working in both directions.

Parse enumerates every derivation of a token sequence. Alternatives are tried in
order of declaration, symbols left to right, and the search backtracks after
each derivation found. There is no memoization of shared sub-derivations: a
binder will fire once for every derivation explored, and worst case running time
is exponential in the length of the input.

Reverse runs the grammar backwards. It destructures a domain value with the
binders of the rules and enumerates every token sequence which would parse to
this value.

Both directions are lazy: results are produced on demand by a range-loop over
the returned sequence.

    engine, err := descent.NewEngine(rules)
    for value, err := range engine.Parse("argument", tokens) {
        ...
    }

Left-recursive grammars will recurse without bounds, unless option
PruneLeftRecursion is set.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package descent

import (
	"fmt"
	"iter"

	"github.com/npillmayer/nlpg"
	"github.com/npillmayer/nlpg/grammar"
	"github.com/npillmayer/nlpg/sparse"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nlpg.engine'.
func tracer() tracing.Trace {
	return tracing.Select("nlpg.engine")
}

// Engine is a recursive-descent engine. It is safe for concurrent use.
type Engine struct {
	rules              *grammar.Ruleset
	pruneLeftRecursion bool
}

var _ nlpg.Engine = (*Engine)(nil)

// Option configures an engine.
type Option func(e *Engine)

// PruneLeftRecursion will curtail the re-entry of a rule at an unchanged input
// position: a rule may be active at a position at most once more than there are
// tokens left. This makes left-recursive grammars terminate. Grammars with
// cycles of empty rules may lose derivations.
func PruneLeftRecursion(b bool) Option {
	return func(e *Engine) {
		e.pruneLeftRecursion = b
	}
}

// NewEngine creates an engine for a ruleset. It returns an error if the ruleset
// references undefined rules.
func NewEngine(rs *grammar.Ruleset, opts ...Option) (*Engine, error) {
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{rules: rs}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Ruleset returns the grammar of the engine.
func (e *Engine) Ruleset() *grammar.Ruleset {
	return e.rules
}

// --- Parsing ---------------------------------------------------------------

// Parse enumerates all values for derivations of start which consume all
// tokens. If there is none, a single *nlpg.ParseError is yielded.
func (e *Engine) Parse(start string, tokens []nlpg.Token) iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		tracer().Debugf("descent: parsing %d tokens as %q", len(tokens), start)
		p := &parse{
			rules:  e.rules,
			tokens: tokens,
			prune:  e.pruneLeftRecursion,
		}
		if p.prune {
			p.active = make(map[activation]int)
		}
		found, stopped := 0, false
		p.name(start, 0, func(v any, next int) bool {
			if next != len(tokens) {
				return true
			}
			found++
			if !yield(v, nil) {
				stopped = true
				return false
			}
			return true
		})
		switch {
		case p.err != nil:
			yield(nil, p.err)
		case found == 0 && !stopped:
			yield(nil, p.parseError())
		default:
			tracer().Debugf("descent: %d derivation(s) for %q", found, start)
		}
	}
}

// continuation receives a value together with the input position after it.
// Returning false stops the search.
type continuation func(v any, next int) bool

type activation struct {
	name string
	pos  int
}

// parse holds the state of a single call to Parse.
type parse struct {
	rules    *grammar.Ruleset
	tokens   []nlpg.Token
	furthest int
	err      error
	prune    bool
	active   map[activation]int
}

func (p *parse) fail(err error) bool {
	p.err = nlpg.Defect(err)
	return false
}

func (p *parse) parseError() *nlpg.ParseError {
	perr := &nlpg.ParseError{Position: p.furthest}
	if p.furthest < len(p.tokens) {
		perr.Token = p.tokens[p.furthest]
	}
	return perr
}

// name derives non-terminal name from input position pos, trying all
// alternatives in order.
func (p *parse) name(name string, pos int, k continuation) bool {
	alts, err := p.rules.Alternatives(name)
	if err != nil {
		return p.fail(err)
	}
	if p.prune {
		key := activation{name, pos}
		if p.active[key] > len(p.tokens)-pos {
			tracer().Debugf("descent: pruning re-entry of %s at %d", name, pos)
			return true
		}
		p.active[key]++
		defer func() { p.active[key]-- }()
		inner := k
		k = func(v any, next int) bool { // the rule is done, it no longer counts as active
			p.active[key]--
			ok := inner(v, next)
			p.active[key]++
			return ok
		}
	}
	for _, r := range alts {
		if !p.rule(r, pos, k) {
			return false
		}
	}
	return true
}

func (p *parse) rule(r *grammar.Rule, pos int, k continuation) bool {
	return p.symbols(r.Symbols(), 0, pos, nil, func(args []any, next int) bool {
		v, err := r.Binder().Build(args)
		if err != nil {
			return p.fail(fmt.Errorf("rule %d %v: %w", r.Serial, r, err))
		}
		return k(v, next)
	})
}

// symbols matches syms[i:] from input position pos, collecting values in args.
func (p *parse) symbols(syms []grammar.Symbol, i int, pos int, args []any,
	k func(args []any, next int) bool) bool {
	//
	if i == len(syms) {
		return k(args, pos)
	}
	if ref, ok := syms[i].(grammar.Ref); ok {
		return p.name(ref.Name, pos, func(v any, next int) bool {
			return p.symbols(syms, i+1, next, append(args[:len(args):len(args)], v), k)
		})
	}
	m, _ := grammar.MatcherOf(syms[i])
	if pos >= len(p.tokens) || !m.Test(p.tokens[pos]) {
		return true
	}
	if pos+1 > p.furthest {
		p.furthest = pos + 1
	}
	v := m.Consume(p.tokens[pos])
	return p.symbols(syms, i+1, pos+1, append(args[:len(args):len(args)], v), k)
}

// --- Generation ------------------------------------------------------------

// Reverse enumerates all token sequences which parse to value when derived from
// start. Tokens are created by the matchers of terminal symbols; they carry no
// span.
func (e *Engine) Reverse(start string, value any) iter.Seq2[[]nlpg.Token, error] {
	return Reverse(e.rules, start, value)
}

// Reverse runs a ruleset backwards, see Engine.Reverse. It is exported for
// engines with a different parsing strategy, but the same grammar.
func Reverse(rs *grammar.Ruleset, start string, value any) iter.Seq2[[]nlpg.Token, error] {
	return func(yield func([]nlpg.Token, error) bool) {
		tracer().Debugf("descent: generating %q from %v", start, value)
		g := &generation{rules: rs}
		g.name(start, value, func(tokens []nlpg.Token) bool {
			return yield(tokens, nil)
		})
		if g.err != nil {
			yield(nil, g.err)
		}
	}
}

// generation holds the state of a single call to Reverse.
type generation struct {
	rules *grammar.Ruleset
	err   error
}

func (g *generation) fail(err error) bool {
	g.err = nlpg.Defect(err)
	return false
}

func (g *generation) name(name string, v any, k func([]nlpg.Token) bool) bool {
	alts, err := g.rules.Alternatives(name)
	if err != nil {
		return g.fail(err)
	}
	for _, r := range alts {
		flat, ok, err := r.Binder().Destructure(v)
		if err != nil {
			return g.fail(fmt.Errorf("rule %d %v: %w", r.Serial, r, err))
		}
		if !ok || flat.Len() > r.Len() {
			continue
		}
		if !g.symbols(r.Symbols(), 0, flat, nil, k) {
			return false
		}
	}
	return true
}

// symbols generates syms[i:], with values taken from the destructured slots.
func (g *generation) symbols(syms []grammar.Symbol, i int, slots *sparse.Slots,
	acc []nlpg.Token, k func([]nlpg.Token) bool) bool {
	//
	if i == len(syms) {
		return k(acc)
	}
	v, _ := slots.Get(i)
	if ref, ok := syms[i].(grammar.Ref); ok {
		return g.name(ref.Name, v, func(part []nlpg.Token) bool {
			return g.symbols(syms, i+1, slots, append(acc[:len(acc):len(acc)], part...), k)
		})
	}
	m, _ := grammar.MatcherOf(syms[i])
	token, ok := m.Reverse(v)
	if !ok {
		return true
	}
	return g.symbols(syms, i+1, slots, append(acc[:len(acc):len(acc)], token), k)
}
