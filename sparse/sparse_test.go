package sparse

import (
	"errors"
	"testing"
)

func TestSetGet(t *testing.T) {
	S := New()
	if err := S.Set(3, "x"); err != nil {
		t.Fatal(err)
	}
	if S.Len() != 4 {
		t.Errorf("expected length to be 4, is %d", S.Len())
	}
	if v, ok := S.Get(3); !ok || v != "x" {
		t.Errorf("expected slot 3 to hold 'x', is %v", v)
	}
	if _, ok := S.Get(1); ok {
		t.Errorf("expected slot 1 to be empty, isn't")
	}
	if _, ok := S.Get(10); ok {
		t.Errorf("expected slot 10 to be empty, isn't")
	}
}

func TestOrdering(t *testing.T) {
	S := New()
	S.Set(5, 5)
	S.Set(1, 1)
	S.Set(3, 3)
	filled := S.Filled()
	if len(filled) != 3 || filled[0] != 1 || filled[1] != 3 || filled[2] != 5 {
		t.Errorf("expected filled positions [1 3 5], are %v", filled)
	}
	if S.String() != "[0:_ 1:1 2:_ 3:3 4:_ 5:5]" {
		t.Errorf("unexpected string representation %s", S)
	}
}

func TestWriteOnce(t *testing.T) {
	S := New()
	S.Set(0, "a")
	err := S.Set(0, "b")
	var dup *DuplicateSlotWriteError
	if !errors.As(err, &dup) {
		t.Fatalf("expected a duplicate slot write error, got %v", err)
	}
	if dup.Index != 0 {
		t.Errorf("expected error for slot 0, got slot %d", dup.Index)
	}
	if v, _ := S.Get(0); v != "a" {
		t.Errorf("slot 0 has been overwritten with %v", v)
	}
}

func TestAbsentWrite(t *testing.T) {
	S := New()
	if err := S.Set(2, nil); err != nil {
		t.Fatal(err)
	}
	if S.Len() != 3 || S.Count() != 0 {
		t.Errorf("expected length 3 and no filled slot, have %d/%d", S.Len(), S.Count())
	}
	var p *int
	if err := S.Set(1, p); err != nil {
		t.Fatal(err)
	}
	if err := S.Set(1, 7); err != nil {
		t.Errorf("absent value should not occupy slot 1: %v", err)
	}
}

func TestUnion(t *testing.T) {
	a := Of("a", nil, "c")
	b := New()
	b.Set(1, "b")
	b.Set(4, "e")
	u, err := Union(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if u.Len() != 5 || u.Count() != 4 {
		t.Errorf("expected union of length 5 with 4 values, is %s", u)
	}
	for i, x := range []string{"a", "b", "c"} {
		if v, _ := u.Get(i); v != x {
			t.Errorf("expected slot %d to hold %q, is %v", i, x, v)
		}
	}
	if a.Count() != 2 || b.Count() != 2 {
		t.Errorf("union modified its operands")
	}
}

func TestUnionOverlap(t *testing.T) {
	a := Of("a", "b")
	b := New()
	b.Set(1, "b")
	_, err := Union(a, b)
	var overlap *OverlapError
	if !errors.As(err, &overlap) || overlap.Index != 1 {
		t.Errorf("expected overlap at slot 1, got %v", err)
	}
}

func TestUnionEmpty(t *testing.T) {
	u, err := Union(New(), nil)
	if err != nil || u.Len() != 0 {
		t.Errorf("expected empty union, got %v / %v", u, err)
	}
}
