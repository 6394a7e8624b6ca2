package grammar

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/nlpg/binding"
)

// Rule is a type for rules of a grammar. Rules are immutable after creation.
type Rule struct {
	Name    string // left hand side
	Serial  int    // order of declaration within a ruleset
	symbols []Symbol
	binder  binding.Binder
}

// NewRule creates a rule. The rule's serial number is set when the rule is
// added to a ruleset.
func NewRule(name string, symbols []Symbol, b binding.Binder) *Rule {
	if b == nil {
		b = binding.Empty()
	}
	return &Rule{
		Name:    name,
		Serial:  -1,
		symbols: append([]Symbol(nil), symbols...),
		binder:  b,
	}
}

// Symbols returns the right hand side of a rule. Clients must not modify it.
func (r *Rule) Symbols() []Symbol {
	return r.symbols
}

// Binder returns the binder of a rule.
func (r *Rule) Binder() binding.Binder {
	return r.binder
}

// Len returns the number of symbols on the right hand side of a rule.
func (r *Rule) Len() int {
	return len(r.symbols)
}

// IsEpsilon is a predicate: is this an epsilon-rule?
func (r *Rule) IsEpsilon() bool {
	return len(r.symbols) == 0
}

func (r *Rule) String() string {
	return fmt.Sprintf("[%s] ::= %v", r.Name, symbolsString(r.symbols))
}

func symbolsString(syms []Symbol) string {
	s := make([]string, len(syms))
	for i, sym := range syms {
		s[i] = sym.String()
	}
	return "[" + strings.Join(s, " ") + "]"
}

// --- Rulesets --------------------------------------------------------------

// Ruleset is a grammar: a set of rules, where rules of the same name are
// alternatives. A ruleset is immutable and may be shared between engines.
type Ruleset struct {
	Name   string
	rules  []*Rule
	byName map[string][]*Rule
}

// NewRuleset creates a ruleset. Rules are numbered in order. Rules must not be
// shared between rulesets.
func NewRuleset(name string, rules ...*Rule) *Ruleset {
	rs := &Ruleset{
		Name:   name,
		byName: make(map[string][]*Rule),
	}
	for i, r := range rules {
		r.Serial = i
		rs.rules = append(rs.rules, r)
		rs.byName[r.Name] = append(rs.byName[r.Name], r)
	}
	return rs
}

// Alternatives returns the rules for name, in order of declaration.
func (rs *Ruleset) Alternatives(name string) ([]*Rule, error) {
	alts, ok := rs.byName[name]
	if !ok {
		return nil, &UndefinedRuleError{Name: name}
	}
	return alts, nil
}

// Rules returns all rules of the ruleset, in order of declaration.
func (rs *Ruleset) Rules() []*Rule {
	return rs.rules
}

// Rule returns the rule with serial number no.
func (rs *Ruleset) Rule(no int) *Rule {
	if no < 0 || no >= len(rs.rules) {
		return nil
	}
	return rs.rules[no]
}

// Size returns the number of rules.
func (rs *Ruleset) Size() int {
	return len(rs.rules)
}

// IsDefined is a predicate: is there at least one rule for name?
func (rs *Ruleset) IsDefined(name string) bool {
	_, ok := rs.byName[name]
	return ok
}

// Defined returns the names of all rules, sorted.
func (rs *Ruleset) Defined() []string {
	names := treeset.NewWithStringComparator()
	for _, r := range rs.rules {
		names.Add(r.Name)
	}
	return toStrings(names)
}

// Referenced returns the names of all non-terminals referenced by any rule, sorted.
func (rs *Ruleset) Referenced() []string {
	names := treeset.NewWithStringComparator()
	rs.eachSymbol(func(sym Symbol) {
		if ref, ok := sym.(Ref); ok {
			names.Add(ref.Name)
		}
	})
	return toStrings(names)
}

// MissingReferences returns the names of referenced, but undefined rules, sorted.
func (rs *Ruleset) MissingReferences() []string {
	missing := treeset.NewWithStringComparator()
	for _, name := range rs.Referenced() {
		if !rs.IsDefined(name) {
			missing.Add(name)
		}
	}
	return toStrings(missing)
}

// Markers returns the words of all literals of the grammar, sorted. Markers are
// the input for tokenizers (see package scanner).
func (rs *Ruleset) Markers() []string {
	words := treeset.NewWithStringComparator()
	rs.eachSymbol(func(sym Symbol) {
		if lit, ok := sym.(Literal); ok {
			words.Add(lit.Word)
		}
	})
	return toStrings(words)
}

// Unreachable returns the names of all rules which cannot be reached from
// start, sorted.
func (rs *Ruleset) Unreachable(start string) []string {
	reached := treeset.NewWithStringComparator()
	var visit func(string)
	visit = func(name string) {
		if reached.Contains(name) {
			return
		}
		reached.Add(name)
		for _, r := range rs.byName[name] {
			for _, sym := range r.symbols {
				if ref, ok := sym.(Ref); ok {
					visit(ref.Name)
				}
			}
		}
	}
	visit(start)
	unreachable := treeset.NewWithStringComparator()
	for _, r := range rs.rules {
		if !reached.Contains(r.Name) {
			unreachable.Add(r.Name)
		}
	}
	return toStrings(unreachable)
}

// Validate checks a ruleset for references to undefined rules.
// It returns an *IncompleteGrammarError if there are any.
func (rs *Ruleset) Validate() error {
	if missing := rs.MissingReferences(); len(missing) > 0 {
		tracer().Errorf("grammar %q references undefined rules %v", rs.Name, missing)
		return &IncompleteGrammarError{Grammar: rs.Name, Missing: missing}
	}
	return nil
}

// Dump is a debugging helper, tracing all rules with their binders.
func (rs *Ruleset) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", rs.Name)
	for _, r := range rs.rules {
		tracer().Debugf("%3d: %-40s ⇒ %s", r.Serial, r.String(), r.binder)
	}
	tracer().Debugf("-------------------------------------------------------")
}

func (rs *Ruleset) eachSymbol(f func(Symbol)) {
	for _, r := range rs.rules {
		for _, sym := range r.symbols {
			f(sym)
		}
	}
}

func toStrings(set *treeset.Set) []string {
	s := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		s = append(s, v.(string))
	}
	return s
}
