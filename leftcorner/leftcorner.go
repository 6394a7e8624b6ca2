/*
Package leftcorner implements a left-corner engine for grammars of package
grammar.

The engine works bottom-up on a stack of frames. A frame is a partially
recognized rule. Starting from an empty stack, configurations
(stack, input position) are explored depth first with these transitions:

■ scan: consume a token and push a completed frame for it.

■ predict: a completed frame for rule R is the left corner of every rule whose
first symbol (after a prefix of possibly empty symbols) is R. Replace it with a
frame for such a rule.

■ complete: a completed frame is what the frame beneath it expects. Advance the
frame beneath.

■ epsilon: the top frame expects a symbol which may derive the empty sequence.
Advance it with an empty derivation.

Scans and predictions are filtered by the left-corner relation: a new frame
for rule R is admitted only if R may be the left corner of what the frame beneath
expects (or of the start symbol, for an empty stack).

Before use, the engine transforms a grammar: every terminal symbol embedded in a
rule is replaced by a reference to a helper rule consisting of just the
terminal. Custom terminals share a helper only if both name and matcher are
equal. The grammar itself is left untouched; generation works on the
original rules (see descent.Reverse).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package leftcorner

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/nlpg"
	"github.com/npillmayer/nlpg/binding"
	"github.com/npillmayer/nlpg/descent"
	"github.com/npillmayer/nlpg/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nlpg.engine'.
func tracer() tracing.Trace {
	return tracing.Select("nlpg.engine")
}

// rule is a rule of the transformed grammar. Its right hand side consists of
// references only. Helper rules for terminals have an empty right hand side and
// a matcher.
type rule struct {
	name    string
	rhs     []string
	binder  binding.Binder
	matcher grammar.Matcher
	orig    *grammar.Rule // nil for helper rules
}

func (r *rule) String() string {
	if r.orig != nil {
		return r.orig.String()
	}
	return fmt.Sprintf("[%s] ::= (terminal)", r.name)
}

// leftCorner denotes rule r having symbol name at position at, preceded by
// possibly empty symbols only.
type leftCorner struct {
	r  *rule
	at int
}

// Engine is a left-corner engine. It is safe for concurrent use.
type Engine struct {
	rules   *grammar.Ruleset
	byName  map[string][]*rule
	ordered []*rule                 // rules of the grammar, then helper rules
	helpers []*rule                 // terminal rules
	corners map[string][]leftCorner // name → rules it is a left corner of
	closure map[string]*hashset.Set // name → reflexive-transitive left corners
	empty   map[string][]any        // values of empty derivations, for nullable names
}

var _ nlpg.Engine = (*Engine)(nil)

// NewEngine creates an engine for a ruleset. It returns an error if the ruleset
// references undefined rules or if a binder fails for an empty derivation.
func NewEngine(rs *grammar.Ruleset) (*Engine, error) {
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		rules:   rs,
		byName:  make(map[string][]*rule),
		corners: make(map[string][]leftCorner),
		closure: make(map[string]*hashset.Set),
		empty:   make(map[string][]any),
	}
	e.flatten()
	for name := range e.byName {
		values, err := e.emptyDerivations(name, map[string]bool{})
		if err != nil {
			return nil, err
		}
		if len(values) > 0 {
			e.empty[name] = values
		}
	}
	e.computeLeftCorners()
	tracer().Debugf("left-corner engine for %q: %d helper rules, %d nullable names",
		rs.Name, len(e.helpers), len(e.empty))
	return e, nil
}

// flatten replaces terminals embedded in rules by references to helper rules.
// There is one helper rule per distinct terminal.
func (e *Engine) flatten() {
	helperFor := make(map[helperKey]*rule)
	for _, r := range e.rules.Rules() {
		fr := &rule{name: r.Name, binder: r.Binder(), orig: r}
		for _, sym := range r.Symbols() {
			if ref, ok := sym.(grammar.Ref); ok {
				fr.rhs = append(fr.rhs, ref.Name)
				continue
			}
			m, _ := grammar.MatcherOf(sym)
			key, shared := keyOf(sym, m)
			h, exists := helperFor[key]
			if !exists || !shared {
				h = &rule{name: e.helperName(sym), binder: binding.Slot(0), matcher: m}
				e.helpers = append(e.helpers, h)
				if shared {
					helperFor[key] = h
				}
			}
			fr.rhs = append(fr.rhs, h.name)
		}
		e.byName[r.Name] = append(e.byName[r.Name], fr)
		e.ordered = append(e.ordered, fr)
	}
	for _, h := range e.helpers {
		e.byName[h.name] = []*rule{h}
		e.ordered = append(e.ordered, h)
	}
}

// helperKey identifies a terminal: literals by their word, custom terminals by
// name and matcher.
type helperKey struct {
	name    string
	matcher grammar.Matcher
}

// keyOf returns the key of a terminal symbol and whether terminals with the same
// key may share a helper rule. Matchers of non-comparable values never share.
func keyOf(sym grammar.Symbol, m grammar.Matcher) (helperKey, bool) {
	if _, ok := sym.(grammar.Literal); ok {
		return helperKey{name: sym.String()}, true
	}
	if !reflect.ValueOf(m).Comparable() {
		return helperKey{}, false
	}
	return helperKey{name: sym.String(), matcher: m}, true
}

// helperName derives a unique rule name for a new helper of a terminal symbol.
// Distinct custom terminals of equal name are numbered.
func (e *Engine) helperName(sym grammar.Symbol) string {
	name := "#" + sym.String()
	n := 1
	for _, h := range e.helpers {
		if h.name == name || strings.HasPrefix(h.name, name+"/") {
			n++
		}
	}
	if n > 1 {
		name = fmt.Sprintf("%s/%d", name, n)
	}
	return name
}

// emptyDerivations collects the values of all derivations of the empty
// sequence from name. Derivations re-entering a name are skipped.
func (e *Engine) emptyDerivations(name string, visiting map[string]bool) ([]any, error) {
	if visiting[name] {
		return nil, nil
	}
	visiting[name] = true
	defer delete(visiting, name)
	var values []any
	for _, r := range e.byName[name] {
		if r.matcher != nil {
			continue
		}
		argsList := [][]any{nil}
		for _, sym := range r.rhs {
			sub, err := e.emptyDerivations(sym, visiting)
			if err != nil {
				return nil, err
			}
			argsList = product(argsList, sub)
		}
		for _, args := range argsList {
			v, err := r.binder.Build(args)
			if err != nil {
				return nil, fmt.Errorf("empty derivation of rule %v: %w", r, err)
			}
			values = append(values, v)
		}
	}
	return values, nil
}

// product extends every argument list with every value.
func product(argsList [][]any, values []any) [][]any {
	var result [][]any
	for _, args := range argsList {
		for _, v := range values {
			result = append(result, append(args[:len(args):len(args)], v))
		}
	}
	return result
}

func (e *Engine) nullable(name string) bool {
	return len(e.empty[name]) > 0
}

// computeLeftCorners sets up the left-corner relation and its closure.
func (e *Engine) computeLeftCorners() {
	direct := make(map[string][]string)
	for _, r := range e.ordered {
		for j, sym := range r.rhs {
			e.corners[sym] = append(e.corners[sym], leftCorner{r: r, at: j})
			direct[r.name] = append(direct[r.name], sym)
			if !e.nullable(sym) {
				break
			}
		}
	}
	for name := range e.byName {
		set := hashset.New()
		var visit func(string)
		visit = func(n string) {
			if set.Contains(n) {
				return
			}
			set.Add(n)
			for _, c := range direct[n] {
				visit(c)
			}
		}
		visit(name)
		e.closure[name] = set
	}
}

// isLeftCorner is a predicate: may name be the left corner of expected?
func (e *Engine) isLeftCorner(name, expected string) bool {
	set, ok := e.closure[expected]
	return ok && set.Contains(name)
}

// Ruleset returns the grammar of the engine.
func (e *Engine) Ruleset() *grammar.Ruleset {
	return e.rules
}

// Reverse enumerates all token sequences which parse to value when derived from
// start. It works on the original grammar, in the same way as the
// recursive-descent engine.
func (e *Engine) Reverse(start string, value any) iter.Seq2[[]nlpg.Token, error] {
	return descent.Reverse(e.rules, start, value)
}
