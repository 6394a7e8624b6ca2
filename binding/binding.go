/*
Package binding implements binders, which convert between the positional values
matched by a grammar rule and a typed domain value.

Every rule of a grammar carries a binder. Binders work in two directions:

■ Build receives the values matched by the symbols of a rule (one value per symbol,
literals included) and creates a domain value from them. It is used by parsers.

■ Destructure receives a domain value and tries to split it up into positional
values again. If the value is not shaped like the output of the binder,
Destructure signals NoMatch by returning false. It is used by generators.

The following binders are available:

    Struct(Argument{}, At("Claim", 0), At("Support", 1))   // builds a struct value
    Struct(&Claim{}, Const("ID", "A"))                     // builds a pointer to a struct
    Slot(1)                                                // passes through position 1
    List(0).WithTail(2)                                    // [args[0]] + args[2]...
    Empty()                                                // builds nil

For every binder b and every argument vector v accepted by b,
Destructure(Build(v)) reproduces v at the positions b.Positions().

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package binding

import (
	"fmt"
	"sort"

	"github.com/npillmayer/nlpg"
	"github.com/npillmayer/nlpg/sparse"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nlpg.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("nlpg.grammar")
}

// Binder is the type for the binding protocol. The set of binders is closed:
// *StructBinder, *SlotBinder, *ListBinder and *EmptyBinder are the only
// implementations.
type Binder interface {
	// Build creates a domain value from positional arguments. An error denotes
	// a defect of the grammar (e.g., too few arguments).
	Build(args []interface{}) (interface{}, error)
	// Destructure splits a domain value into positional arguments.
	// It returns false if v is not shaped like this binder's output (NoMatch).
	// An error denotes a defect of the binder.
	Destructure(v interface{}) (*sparse.Slots, bool, error)
	// Positions returns the argument positions this binder reads, in ascending order.
	Positions() []int
	String() string
	isBinder()
}

// BuildError is returned by Build for argument vectors not matching a binder.
type BuildError struct {
	Binder string
	Reason string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("binding: cannot build %s: %s", e.Binder, e.Reason)
}

func arg(b Binder, args []interface{}, pos int) (interface{}, error) {
	if pos < 0 || pos >= len(args) {
		return nil, &BuildError{
			Binder: b.String(),
			Reason: fmt.Sprintf("not enough arguments for position %d (have %d)", pos, len(args)),
		}
	}
	return args[pos], nil
}

func sortedUnique(positions []int) []int {
	sort.Ints(positions)
	out := positions[:0]
	for i, p := range positions {
		if i == 0 || p != positions[i-1] {
			out = append(out, p)
		}
	}
	return out
}

// --- Slot ------------------------------------------------------------------

// SlotBinder passes through the value at a single position.
type SlotBinder struct {
	pos int
}

// Slot creates a binder which passes through the value at position pos.
func Slot(pos int) *SlotBinder {
	return &SlotBinder{pos: pos}
}

func (b *SlotBinder) isBinder() {}

// Build is part of interface Binder.
func (b *SlotBinder) Build(args []interface{}) (interface{}, error) {
	return arg(b, args, b.pos)
}

// Destructure is part of interface Binder. It matches every value.
func (b *SlotBinder) Destructure(v interface{}) (*sparse.Slots, bool, error) {
	flat := sparse.New()
	if err := flat.Set(b.pos, v); err != nil {
		return nil, false, err
	}
	return flat, true, nil
}

// Positions is part of interface Binder.
func (b *SlotBinder) Positions() []int {
	return []int{b.pos}
}

func (b *SlotBinder) String() string {
	return fmt.Sprintf("Slot(%d)", b.pos)
}

// --- Empty -----------------------------------------------------------------

// EmptyBinder builds nil.
type EmptyBinder struct{}

// Empty creates a binder for rules which do not produce a value, e.g. optional
// parts of a sentence which are not present.
func Empty() *EmptyBinder {
	return &EmptyBinder{}
}

func (b *EmptyBinder) isBinder() {}

// Build is part of interface Binder.
func (b *EmptyBinder) Build(args []interface{}) (interface{}, error) {
	return nil, nil
}

// Destructure is part of interface Binder. It matches absent values only.
func (b *EmptyBinder) Destructure(v interface{}) (*sparse.Slots, bool, error) {
	if !nlpg.IsAbsent(v) {
		return nil, false, nil
	}
	return sparse.New(), true, nil
}

// Positions is part of interface Binder.
func (b *EmptyBinder) Positions() []int {
	return nil
}

func (b *EmptyBinder) String() string {
	return "Empty()"
}
