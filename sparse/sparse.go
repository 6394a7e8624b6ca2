/*
Package sparse implements a simple type for sparse positional value lists.
It is used during generation, where binders destructure a domain value into
the positional arguments of a rule. Some positions will not receive a value
(think of literals), others have to be written exactly once.

This implementation stores (index, value) pairs ordered by index, similar to
the COO algorithm (a.k.a. triplet-encoding) for sparse matrices.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/nlpg"
)

// Slots is a type for a positional list of values with holes. Construct with
//
//     S := sparse.New()
//
// Now
//
//     S.Set(2, "x")           // set a value, S.Len() is now 3
//     v, ok := S.Get(2)       // returns "x", true
//     v, ok = S.Get(0)        // returns nil, false
//     err := S.Set(2, "y")    // returns a *DuplicateSlotWriteError
//
// Values cannot be deleted or overwritten. Writing an absent value (see
// nlpg.IsAbsent) extends the list, but does not fill the position.
type Slots struct {
	entries []entry
	length  int
}

// Values to store
type entry struct {
	index int
	value any
}

// New creates an empty positional list.
func New() *Slots {
	return &Slots{}
}

// Of creates a positional list from a vector of values. Absent values are holes.
// Of never fails, as every position is written once.
func Of(values ...any) *Slots {
	s := New()
	for i, v := range values {
		s.Set(i, v)
	}
	return s
}

// Len returns the length of the list, i.e. the highest position written plus 1.
func (s *Slots) Len() int {
	if s == nil {
		return 0
	}
	return s.length
}

// Count returns the number of filled positions.
func (s *Slots) Count() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Filled returns the filled positions in ascending order.
func (s *Slots) Filled() []int {
	if s == nil {
		return nil
	}
	f := make([]int, len(s.entries))
	for k, e := range s.entries {
		f[k] = e.index
	}
	return f
}

// Get returns the value at position i, together with a flag telling if position
// i is filled.
func (s *Slots) Get(i int) (any, bool) {
	if s == nil {
		return nil, false
	}
	for _, e := range s.entries {
		if !e.storedLeftOf(i) { // have skipped all lesser indices
			if e.index == i {
				return e.value, true
			}
			break
		}
	}
	return nil, false
}

// Set writes a value at position i. Every position may be filled only once;
// trying to fill a position twice is a defect and will return a
// *DuplicateSlotWriteError.
func (s *Slots) Set(i int, value any) error {
	if i < 0 {
		return fmt.Errorf("sparse: negative slot index %d", i)
	}
	if i >= s.length {
		s.length = i + 1
	}
	if nlpg.IsAbsent(value) {
		return nil
	}
	at := 0 // will be position of new value
	for _, e := range s.entries {
		if !e.storedLeftOf(i) { // have skipped all lesser indices
			if e.index == i { // value already present
				return &DuplicateSlotWriteError{Index: i, Present: e.value, Value: value}
			}
			break // no old value present
		}
		at++
	}
	enew := entry{index: i, value: value}
	// the following 3 lines have to work for k being the right edge of v or not
	s.entries = append(s.entries, enew)    // make room
	copy(s.entries[at+1:], s.entries[at:]) // copy remainder values one index to right
	s.entries[at] = enew                   // if not append-case: insert new entry
	return nil
}

// Union merges two positional lists into a new one. The filled positions of
// a and b have to be disjoint, otherwise an *OverlapError is returned.
// Union never overwrites a value. Neither a nor b will be modified.
func Union(a, b *Slots) (*Slots, error) {
	u := &Slots{length: max(a.Len(), b.Len())}
	u.entries = make([]entry, 0, a.Count()+b.Count())
	var i, j int
	for i < a.Count() || j < b.Count() {
		switch {
		case j == b.Count():
			u.entries = append(u.entries, a.entries[i])
			i++
		case i == a.Count():
			u.entries = append(u.entries, b.entries[j])
			j++
		case a.entries[i].index < b.entries[j].index:
			u.entries = append(u.entries, a.entries[i])
			i++
		case a.entries[i].index > b.entries[j].index:
			u.entries = append(u.entries, b.entries[j])
			j++
		default:
			return nil, &OverlapError{Index: a.entries[i].index}
		}
	}
	return u, nil
}

func (e entry) storedLeftOf(i int) bool {
	return e.index < i
}

func (s *Slots) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if v, ok := s.Get(i); ok {
			b.WriteString(fmt.Sprintf("%d:%v", i, v))
		} else {
			b.WriteString(fmt.Sprintf("%d:_", i))
		}
	}
	b.WriteString("]")
	return b.String()
}

// --- Errors ----------------------------------------------------------------

// DuplicateSlotWriteError is returned when writing to a position which already
// holds a value. It indicates a defect in a binder or a grammar, not a parse failure.
type DuplicateSlotWriteError struct {
	Index   int
	Present any
	Value   any
}

func (e *DuplicateSlotWriteError) Error() string {
	return fmt.Sprintf("sparse: slot %d already holds %v, cannot write %v", e.Index, e.Present, e.Value)
}

// OverlapError is returned by Union if both operands fill the same position.
type OverlapError struct {
	Index int
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("sparse: cannot merge, slot %d is filled in both operands", e.Index)
}
