package leftcorner

import (
	"fmt"
	"iter"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/nlpg"
)

// frame is a partially recognized rule. Frames are immutable.
type frame struct {
	rule  *rule
	dot   int   // number of symbols recognized
	args  []any // values of recognized symbols
	value any   // result of the binder, for completed frames
}

func (f *frame) complete() bool {
	return f.dot == len(f.rule.rhs)
}

// expects returns the name of the next symbol of an incomplete frame.
func (f *frame) expects() string {
	return f.rule.rhs[f.dot]
}

func (f *frame) String() string {
	return fmt.Sprintf("%s•%d", f.rule.name, f.dot)
}

// stack is an immutable stack of frames. All frames but the top one are incomplete.
type stack struct {
	top   *frame
	below *stack
	size  int
}

func (s *stack) push(f *frame) *stack {
	if s == nil {
		return &stack{top: f, size: 1}
	}
	return &stack{top: f, below: s, size: s.size + 1}
}

func (s *stack) depth() int {
	if s == nil {
		return 0
	}
	return s.size
}

// config is a configuration of the automaton: a stack of frames and the
// position of the next input token.
type config struct {
	stack *stack
	pos   int
}

// advance creates a new frame from f, with one more symbol recognized. If the new
// frame is complete, its binder is invoked.
func advance(f *frame, v any) (*frame, error) {
	g := &frame{
		rule: f.rule,
		dot:  f.dot + 1,
		args: append(f.args[:len(f.args):len(f.args)], v),
	}
	return g, g.build()
}

func (f *frame) build() error {
	if !f.complete() {
		return nil
	}
	v, err := f.rule.binder.Build(f.args)
	if err != nil {
		return fmt.Errorf("rule %v: %w", f.rule, err)
	}
	f.value = v
	return nil
}

// Parse enumerates all values for derivations of start which consume all
// tokens. If there is none, a single *nlpg.ParseError is yielded.
func (e *Engine) Parse(start string, tokens []nlpg.Token) iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		tracer().Debugf("left-corner: parsing %d tokens as %q", len(tokens), start)
		if _, ok := e.byName[start]; !ok {
			_, err := e.rules.Alternatives(start)
			yield(nil, nlpg.Defect(err))
			return
		}
		p := &parse{Engine: e, start: start, tokens: tokens}
		found := 0
		if len(tokens) == 0 {
			for _, v := range e.empty[start] {
				found++
				if !yield(v, nil) {
					return
				}
			}
		}
		agenda := arraystack.New()
		agenda.Push(config{})
		for !agenda.Empty() {
			c, _ := agenda.Pop()
			cfg := c.(config)
			if cfg.pos > p.furthest {
				p.furthest = cfg.pos
			}
			if p.isGoal(cfg) {
				found++
				if !yield(cfg.stack.top.value, nil) {
					return
				}
			}
			next, err := p.successors(cfg)
			if err != nil {
				yield(nil, nlpg.Defect(err))
				return
			}
			for i := len(next) - 1; i >= 0; i-- { // explore in order of generation
				agenda.Push(next[i])
			}
		}
		if found == 0 {
			perr := &nlpg.ParseError{Position: p.furthest}
			if p.furthest < len(tokens) {
				perr.Token = tokens[p.furthest]
			}
			yield(nil, perr)
			return
		}
		tracer().Debugf("left-corner: %d derivation(s) for %q", found, start)
	}
}

// parse holds the state of a single call to Parse.
type parse struct {
	*Engine
	start    string
	tokens   []nlpg.Token
	furthest int
}

// isGoal is a predicate: is cfg a single completed frame for the start symbol,
// with all input consumed?
func (p *parse) isGoal(cfg config) bool {
	return cfg.pos == len(p.tokens) && cfg.stack.depth() == 1 &&
		cfg.stack.top.complete() && cfg.stack.top.rule.name == p.start
}

// expected returns the name a new frame on top of s has to be a left corner of.
func (p *parse) expected(s *stack) string {
	if s == nil {
		return p.start
	}
	return s.top.expects()
}

// successors applies all transitions to a configuration.
func (p *parse) successors(cfg config) ([]config, error) {
	var next []config
	s := cfg.stack
	if s == nil || !s.top.complete() {
		next = append(next, p.scan(cfg)...)
		if s != nil {
			c, err := p.epsilon(cfg)
			if err != nil {
				return nil, err
			}
			next = append(next, c...)
		}
		return next, nil
	}
	c, err := p.predict(cfg)
	if err != nil {
		return nil, err
	}
	next = append(next, c...)
	if s.below != nil && s.below.top.expects() == s.top.rule.name {
		f, err := advance(s.below.top, s.top.value)
		if err != nil {
			return nil, err
		}
		next = append(next, config{stack: s.below.below.push(f), pos: cfg.pos})
	}
	return next, nil
}

// scan consumes the next token with every terminal rule accepting it.
func (p *parse) scan(cfg config) []config {
	if cfg.pos >= len(p.tokens) {
		return nil
	}
	token := p.tokens[cfg.pos]
	expected := p.expected(cfg.stack)
	var next []config
	for _, h := range p.helpers {
		if !h.matcher.Test(token) || !p.isLeftCorner(h.name, expected) {
			continue
		}
		v, err := h.binder.Build([]any{h.matcher.Consume(token)})
		if err != nil {
			continue // Slot(0) cannot fail
		}
		f := &frame{rule: h, value: v}
		next = append(next, config{stack: cfg.stack.push(f), pos: cfg.pos + 1})
	}
	return next
}

// predict replaces a completed top frame by frames for the rules it is a left
// corner of. Symbols preceding it in such a rule derive the empty sequence.
func (p *parse) predict(cfg config) ([]config, error) {
	s := cfg.stack
	expected := p.expected(s.below)
	var next []config
	for _, lc := range p.corners[s.top.rule.name] {
		if !p.isLeftCorner(lc.r.name, expected) {
			continue
		}
		prefixes := [][]any{nil}
		for _, sym := range lc.r.rhs[:lc.at] {
			prefixes = product(prefixes, p.empty[sym])
		}
		for _, args := range prefixes {
			f, err := advance(&frame{rule: lc.r, dot: lc.at, args: args}, s.top.value)
			if err != nil {
				return nil, err
			}
			next = append(next, config{stack: s.below.push(f), pos: cfg.pos})
		}
	}
	return next, nil
}

// epsilon advances an incomplete top frame over a symbol deriving the empty
// sequence, once for every empty derivation.
func (p *parse) epsilon(cfg config) ([]config, error) {
	top := cfg.stack.top
	var next []config
	for _, v := range p.empty[top.expects()] {
		f, err := advance(top, v)
		if err != nil {
			return nil, err
		}
		next = append(next, config{stack: cfg.stack.below.push(f), pos: cfg.pos})
	}
	return next, nil
}
