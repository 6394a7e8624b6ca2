package binding

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/npillmayer/nlpg"
	"github.com/npillmayer/nlpg/sparse"
)

// ListBinder builds a list from a fixed number of head positions and an optional
// tail position, holding the remainder of the list.
type ListBinder struct {
	heads   []int
	tail    int
	hasTail bool
}

// List creates a binder for lists. The head positions are collected in order
// into a list. With no positions at all, List builds an empty list.
//
//    List()             // []
//    List(0)            // [args[0]]
//    List(0, 2)         // [args[0], args[2]]
//
// Lists are built as []interface{}. Destructure will accept slices and arrays
// of any element type.
func List(heads ...int) *ListBinder {
	return &ListBinder{heads: append([]int(nil), heads...)}
}

// WithTail returns a copy of the binder, which appends the elements of a list at
// position pos to the head elements:
//
//    List(0).WithTail(2)  // [args[0]] + args[2]
//
func (b *ListBinder) WithTail(pos int) *ListBinder {
	return &ListBinder{heads: b.heads, tail: pos, hasTail: true}
}

func (b *ListBinder) isBinder() {}

// Build is part of interface Binder. An absent tail is treated as an empty list.
func (b *ListBinder) Build(args []interface{}) (interface{}, error) {
	list := make([]interface{}, 0, len(b.heads))
	for _, h := range b.heads {
		v, err := arg(b, args, h)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	if !b.hasTail {
		return list, nil
	}
	t, err := arg(b, args, b.tail)
	if err != nil {
		return nil, err
	}
	if nlpg.IsAbsent(t) {
		return list, nil
	}
	rest := reflect.ValueOf(t)
	if rest.Kind() != reflect.Slice && rest.Kind() != reflect.Array {
		return nil, &BuildError{
			Binder: b.String(),
			Reason: fmt.Sprintf("tail at position %d is not a list: %T", b.tail, t),
		}
	}
	for i := 0; i < rest.Len(); i++ {
		list = append(list, rest.Index(i).Interface())
	}
	return list, nil
}

// Destructure is part of interface Binder.
//
// Without a tail, v has to have exactly as many elements as there are head
// positions. With a tail, v has to have at least as many elements as there are
// head positions; the remainder (which may be empty) is bound to the tail
// position.
func (b *ListBinder) Destructure(v interface{}) (*sparse.Slots, bool, error) {
	if v == nil {
		return nil, false, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false, nil
	}
	n := rv.Len()
	if n < len(b.heads) || !b.hasTail && n != len(b.heads) {
		return nil, false, nil
	}
	flat := sparse.New()
	for k, h := range b.heads {
		if err := flat.Set(h, rv.Index(k).Interface()); err != nil {
			return nil, false, err
		}
	}
	if b.hasTail {
		rest := make([]interface{}, 0, n-len(b.heads))
		for i := len(b.heads); i < n; i++ {
			rest = append(rest, rv.Index(i).Interface())
		}
		if err := flat.Set(b.tail, rest); err != nil {
			return nil, false, err
		}
	}
	return flat, true, nil
}

// Positions is part of interface Binder.
func (b *ListBinder) Positions() []int {
	p := append([]int(nil), b.heads...)
	if b.hasTail {
		p = append(p, b.tail)
	}
	return sortedUnique(p)
}

func (b *ListBinder) String() string {
	h := make([]string, len(b.heads))
	for i, x := range b.heads {
		h[i] = fmt.Sprintf("%d", x)
	}
	if b.hasTail {
		return fmt.Sprintf("List(%s | %d)", strings.Join(h, ","), b.tail)
	}
	return fmt.Sprintf("List(%s)", strings.Join(h, ","))
}
