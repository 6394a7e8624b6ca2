package binding

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/nlpg/sparse"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type Claim struct {
	ID string
}

type Argument struct {
	Claim   *Claim
	Support *Claim
}

type Prop struct {
	Subject []string
	Verb    string
	Object  string
}

// roundTrip checks that Destructure(Build(args)) reproduces args at b.Positions().
func roundTrip(t *testing.T, b Binder, args ...interface{}) {
	t.Helper()
	v, err := b.Build(args)
	if err != nil {
		t.Fatalf("%s: build failed: %v", b, err)
	}
	flat, ok, err := b.Destructure(v)
	if err != nil || !ok {
		t.Fatalf("%s: cannot destructure its own output %v (%v)", b, v, err)
	}
	for _, p := range b.Positions() {
		got, _ := flat.Get(p)
		if diff := cmp.Diff(normalize(args[p]), normalize(got)); diff != "" {
			t.Errorf("%s: position %d differs (-want +got):\n%s", b, p, diff)
		}
	}
}

// lists are rebuilt as []interface{}, so compare element-wise
func normalize(v interface{}) interface{} {
	if s, ok := v.([]string); ok {
		l := make([]interface{}, len(s))
		for i, x := range s {
			l[i] = x
		}
		return l
	}
	return v
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nlpg.grammar")
	defer teardown()
	//
	roundTrip(t, Slot(1), "because", &Claim{"B"})
	roundTrip(t, Empty())
	roundTrip(t, List())
	roundTrip(t, List(0), "x")
	roundTrip(t, List(0, 2), "x", "and", "y")
	roundTrip(t, List(0).WithTail(2), "x", "and", []interface{}{"y", "z"})
	roundTrip(t, List(0).WithTail(2), "x", "and", []interface{}{})
	roundTrip(t, Struct(&Argument{}, At("Claim", 0), At("Support", 2)), &Claim{"A"}, "because", &Claim{"B"})
	roundTrip(t, Struct(Argument{}, At("Claim", 0)), &Claim{"A"})
	roundTrip(t, Struct(Prop{}, Nested("Subject", List(0, 2)), At("Verb", 1), Const("Object", "red")),
		"the", "is", "bird")
}

func TestStructBuild(t *testing.T) {
	b := Struct(&Argument{}, At("Claim", 0), At("Support", 1))
	v, err := b.Build([]interface{}{&Claim{"A"}, nil})
	if err != nil {
		t.Fatal(err)
	}
	expected := &Argument{Claim: &Claim{"A"}}
	if diff := cmp.Diff(expected, v); diff != "" {
		t.Errorf("unexpected build result (-want +got):\n%s", diff)
	}
	c, err := Struct(Claim{}, Const("ID", "A")).Build(nil)
	if err != nil || c != (Claim{"A"}) {
		t.Errorf("expected Claim{A}, got %v (%v)", c, err)
	}
}

func TestStructListConversion(t *testing.T) {
	b := Struct(Prop{}, At("Subject", 0))
	v, err := b.Build([]interface{}{[]interface{}{"the", "bird"}})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Prop{Subject: []string{"the", "bird"}}, v); diff != "" {
		t.Errorf("unexpected build result (-want +got):\n%s", diff)
	}
}

func TestBuildErrors(t *testing.T) {
	var berr *BuildError
	if _, err := Slot(2).Build([]interface{}{"a"}); !errors.As(err, &berr) {
		t.Errorf("expected build error for missing argument, got %v", err)
	}
	if _, err := Struct(Claim{}, At("ID", 0)).Build([]interface{}{42}); !errors.As(err, &berr) {
		t.Errorf("expected build error for int into string field, got %v", err)
	}
	if _, err := List(0).WithTail(1).Build([]interface{}{"a", "b"}); !errors.As(err, &berr) {
		t.Errorf("expected build error for non-list tail, got %v", err)
	}
}

func TestNoMatch(t *testing.T) {
	for i, c := range []struct {
		b Binder
		v interface{}
	}{
		{Struct(Claim{}, Const("ID", "A")), Claim{"B"}},
		{Struct(Claim{}, Const("ID", "A")), &Claim{"A"}}, // pointer vs. value
		{Struct(&Claim{}, Const("ID", "A")), (*Claim)(nil)},
		{Struct(&Claim{}), "A"},
		{Struct(&Claim{}), nil},
		{Empty(), &Claim{"A"}},
		{List(), []interface{}{"a"}},
		{List(0), []interface{}{}},
		{List(0, 1), []interface{}{"a"}},
		{List(0, 1).WithTail(3), []interface{}{"a"}},
		{List(0), "a"},
		{List(0), nil},
	} {
		flat, ok, err := c.b.Destructure(c.v)
		if err != nil {
			t.Errorf("case %d: NoMatch expected, got error %v", i, err)
		}
		if ok {
			t.Errorf("case %d: %s should not match %v, got %v", i, c.b, c.v, flat)
		}
	}
}

func TestEmptyMatchesAbsent(t *testing.T) {
	for _, v := range []interface{}{nil, (*Claim)(nil)} {
		flat, ok, err := Empty().Destructure(v)
		if err != nil || !ok || flat.Len() != 0 {
			t.Errorf("Empty() should match %#v", v)
		}
	}
}

func TestListAcceptsTypedSlices(t *testing.T) {
	flat, ok, err := List(0).WithTail(1).Destructure([]string{"a", "b", "c"})
	if err != nil || !ok {
		t.Fatalf("list binder should match []string")
	}
	rest, _ := flat.Get(1)
	if diff := cmp.Diff([]interface{}{"b", "c"}, rest); diff != "" {
		t.Errorf("unexpected tail (-want +got):\n%s", diff)
	}
}

func TestDuplicatePositionIsDefect(t *testing.T) {
	b := Struct(Prop{}, At("Verb", 0), At("Object", 0))
	_, _, err := b.Destructure(Prop{Verb: "is", Object: "red"})
	var dup *sparse.DuplicateSlotWriteError
	if !errors.As(err, &dup) {
		t.Errorf("expected duplicate slot write, got %v", err)
	}
	n := Struct(Prop{}, Nested("Subject", List(0)), At("Verb", 0))
	_, _, err = n.Destructure(Prop{Subject: []string{"x"}, Verb: "is"})
	if err == nil {
		t.Errorf("expected overlapping nested positions to be reported")
	}
}

func TestPositions(t *testing.T) {
	b := Struct(Prop{}, Nested("Subject", List(0, 2)), At("Verb", 1), Const("Object", "x"))
	if diff := cmp.Diff([]int{0, 1, 2}, b.Positions()); diff != "" {
		t.Errorf("unexpected positions (-want +got):\n%s", diff)
	}
	if b.String() != `Struct(Prop, Subject=List(0,2), Verb=1, Object="x")` {
		t.Errorf("unexpected string %s", b)
	}
}

func TestStructPanicsOnUnknownField(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Struct to panic for unknown field")
		}
	}()
	Struct(Claim{}, At("Name", 0))
}
