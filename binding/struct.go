package binding

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/npillmayer/nlpg"
	"github.com/npillmayer/nlpg/sparse"
)

type fieldKind int8

const (
	atField fieldKind = iota
	constField
	nestedField
)

// Field binds a struct field, see At, Const and Nested.
type Field struct {
	name   string
	kind   fieldKind
	pos    int
	value  interface{}
	binder Binder
	index  int // index of the struct field, set by Struct()
}

// At binds struct field name to the argument at position pos.
func At(name string, pos int) Field {
	return Field{name: name, kind: atField, pos: pos}
}

// Const binds struct field name to a constant value. Build will set the field
// unconditionally, Destructure will fail to match if the field holds a
// different value.
func Const(name string, value interface{}) Field {
	return Field{name: name, kind: constField, value: value}
}

// Nested binds struct field name to the output of another binder, operating on
// the same arguments. For example
//
//    Struct(Prop{}, Nested("Subject", List(0, 2)), At("Object", 1))
//
// will collect arguments 0 and 2 into a list for field Subject.
func Nested(name string, b Binder) Field {
	return Field{name: name, kind: nestedField, binder: b}
}

func (f Field) String() string {
	switch f.kind {
	case atField:
		return fmt.Sprintf("%s=%d", f.name, f.pos)
	case constField:
		return fmt.Sprintf("%s=%q", f.name, fmt.Sprint(f.value))
	}
	return fmt.Sprintf("%s=%s", f.name, f.binder)
}

// StructBinder builds struct values (or pointers to struct values).
type StructBinder struct {
	typ     reflect.Type // struct type
	pointer bool         // build pointers to structs?
	fields  []Field
}

// Struct creates a binder for struct values. prototype is a (zero) value of the
// struct type to build. If prototype is a pointer to a struct, the binder will
// build pointers.
//
// Fields not mentioned will be left as zero values by Build and are not
// inspected by Destructure.
//
// Struct panics if prototype is not a struct or if a field is not an exported
// field of the struct. As grammars are set up at program start, this is
// considered a programming error.
func Struct(prototype interface{}, fields ...Field) *StructBinder {
	b := &StructBinder{typ: reflect.TypeOf(prototype)}
	if b.typ == nil {
		panic("binding: struct prototype must not be nil")
	}
	if b.typ.Kind() == reflect.Ptr {
		b.pointer = true
		b.typ = b.typ.Elem()
	}
	if b.typ.Kind() != reflect.Struct {
		panic(fmt.Sprintf("binding: struct prototype expected, have %T", prototype))
	}
	for _, f := range fields {
		sf, ok := b.typ.FieldByName(f.name)
		if !ok || len(sf.Index) != 1 || !sf.IsExported() {
			panic(fmt.Sprintf("binding: %s has no exported field %q", b.typ, f.name))
		}
		f.index = sf.Index[0]
		if f.kind == constField { // normalize constants to the field's type
			c := reflect.New(sf.Type).Elem()
			if err := assign(c, f.value); err != nil {
				panic(fmt.Sprintf("binding: constant for %s.%s: %v", b.typ, f.name, err))
			}
			f.value = c.Interface()
		}
		b.fields = append(b.fields, f)
	}
	return b
}

func (b *StructBinder) isBinder() {}

// Build is part of interface Binder.
func (b *StructBinder) Build(args []interface{}) (interface{}, error) {
	rv := reflect.New(b.typ).Elem()
	for _, f := range b.fields {
		var v interface{}
		var err error
		switch f.kind {
		case atField:
			v, err = arg(b, args, f.pos)
		case constField:
			v = f.value
		case nestedField:
			v, err = f.binder.Build(args)
		}
		if err != nil {
			return nil, err
		}
		if err = assign(rv.Field(f.index), v); err != nil {
			return nil, &BuildError{
				Binder: b.String(),
				Reason: fmt.Sprintf("field %s: %v", f.name, err),
			}
		}
	}
	if b.pointer {
		return rv.Addr().Interface(), nil
	}
	return rv.Interface(), nil
}

// Destructure is part of interface Binder. v has to be of the exact type of the
// prototype given to Struct, and all constant fields must match.
func (b *StructBinder) Destructure(v interface{}) (*sparse.Slots, bool, error) {
	if v == nil {
		return nil, false, nil
	}
	rv := reflect.ValueOf(v)
	if b.pointer {
		if rv.Kind() != reflect.Ptr || rv.Type().Elem() != b.typ || rv.IsNil() {
			return nil, false, nil
		}
		rv = rv.Elem()
	} else if rv.Type() != b.typ {
		return nil, false, nil
	}
	flat := sparse.New()
	for _, f := range b.fields {
		fv := rv.Field(f.index).Interface()
		switch f.kind {
		case atField:
			if err := flat.Set(f.pos, fv); err != nil {
				return nil, false, err
			}
		case constField:
			if !reflect.DeepEqual(fv, f.value) {
				return nil, false, nil
			}
		case nestedField:
			sub, ok, err := f.binder.Destructure(fv)
			if err != nil || !ok {
				return nil, false, err
			}
			if flat, err = sparse.Union(flat, sub); err != nil {
				return nil, false, err
			}
		}
	}
	tracer().Debugf("%s destructured %v", b, flat)
	return flat, true, nil
}

// Positions is part of interface Binder.
func (b *StructBinder) Positions() []int {
	var p []int
	for _, f := range b.fields {
		switch f.kind {
		case atField:
			p = append(p, f.pos)
		case nestedField:
			p = append(p, f.binder.Positions()...)
		}
	}
	return sortedUnique(p)
}

func (b *StructBinder) String() string {
	f := make([]string, len(b.fields))
	for i, x := range b.fields {
		f[i] = x.String()
	}
	name := b.typ.Name()
	if b.pointer {
		name = "*" + name
	}
	return fmt.Sprintf("Struct(%s, %s)", name, strings.Join(f, ", "))
}

// assign sets dst to v. Absent values set dst to its zero value. Lists are
// converted element-wise, e.g. from []interface{} to []Claim.
func assign(dst reflect.Value, v interface{}) error {
	if nlpg.IsAbsent(v) {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	src := reflect.ValueOf(v)
	if src.Type().AssignableTo(dst.Type()) {
		dst.Set(src)
		return nil
	}
	if dst.Kind() == reflect.Slice && (src.Kind() == reflect.Slice || src.Kind() == reflect.Array) {
		list := reflect.MakeSlice(dst.Type(), src.Len(), src.Len())
		for i := 0; i < src.Len(); i++ {
			if err := assign(list.Index(i), src.Index(i).Interface()); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
		dst.Set(list)
		return nil
	}
	if src.Kind() == dst.Kind() && src.Type().ConvertibleTo(dst.Type()) {
		dst.Set(src.Convert(dst.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", v, dst.Type())
}
