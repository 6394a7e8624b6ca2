package main

import (
	"fmt"
	"reflect"

	"github.com/pterm/pterm"
)

// printTree renders a parse result as a tree.
func printTree(label string, v any) {
	pterm.Println(label)
	ll := leveled(typeLabel(v), reflect.ValueOf(v), pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d", len(ll))
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

// leveled flattens a value into a leveled list, one item per struct field or
// slice element. Values implementing fmt.Stringer are leaves.
func leveled(label string, v reflect.Value, ll pterm.LeveledList, level int) pterm.LeveledList {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return append(ll, pterm.LeveledListItem{Level: level, Text: label + ": nil"})
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return append(ll, pterm.LeveledListItem{Level: level, Text: label + ": nil"})
	}
	if v.CanInterface() {
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return append(ll, pterm.LeveledListItem{Level: level, Text: label + ": " + s.String()})
		}
	}
	switch v.Kind() {
	case reflect.Struct:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: label})
		for i := 0; i < v.NumField(); i++ {
			field := v.Type().Field(i)
			if !field.IsExported() {
				continue
			}
			if field.Anonymous { // promote fields of embedded structs
				if sub := leveled(field.Name, v.Field(i), nil, level); len(sub) > 1 {
					ll = append(ll, sub[1:]...)
					continue
				}
			}
			ll = leveled(field.Name, v.Field(i), ll, level+1)
		}
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return ll
		}
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: fmt.Sprintf("%s [%d]", label, v.Len())})
		for i := 0; i < v.Len(); i++ {
			ll = leveled(fmt.Sprintf("#%d", i+1), v.Index(i), ll, level+1)
		}
	default:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: fmt.Sprintf("%s: %v", label, v.Interface())})
	}
	return ll
}

func typeLabel(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
