// Package clone produces deep copies of arbitrary values through reflection.
// It backs the deep-copy element policy of the vector package.
package clone

import "reflect"

// Value returns a deep copy of value. Pointers, maps, slices and arrays are
// duplicated recursively; unexported struct fields are copied shallowly since
// reflection cannot set them on the clone individually.
//
// References that repeat inside value map to a single copy, so shared and
// cyclic graphs keep their shape in the result.
func Value[T any](value T) T {
	rv := reflect.ValueOf(&value).Elem()
	out := reflect.New(rv.Type()).Elem()
	c := copier{seen: make(map[reference]reflect.Value)}
	out.Set(c.clone(rv))
	return out.Interface().(T)
}

// reference identifies a pointer, map or slice header already copied. Length
// is part of the key because subslices of one array share an address.
type reference struct {
	addr uintptr
	typ  reflect.Type
	len  int
}

type copier struct {
	seen map[reference]reflect.Value
}

func (c copier) lookup(v reflect.Value, n int) (reference, reflect.Value, bool) {
	ref := reference{addr: v.Pointer(), typ: v.Type(), len: n}
	done, ok := c.seen[ref]
	return ref, done, ok
}

func (c copier) clone(v reflect.Value) reflect.Value {
	if !v.IsValid() {
		return v
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		ref, done, ok := c.lookup(v, 0)
		if ok {
			return done
		}
		out := reflect.New(v.Type().Elem())
		c.seen[ref] = out
		out.Elem().Set(c.clone(v.Elem()))
		return out
	case reflect.Interface:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		elem := c.clone(v.Elem())
		if !elem.IsValid() {
			return reflect.Zero(v.Type())
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(elem)
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for i := 0; i < v.NumField(); i++ {
			field := out.Field(i)
			if !field.CanSet() {
				continue
			}
			field.Set(c.clone(v.Field(i)))
		}
		return out
	case reflect.Map:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		ref, done, ok := c.lookup(v, 0)
		if ok {
			return done
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		c.seen[ref] = out
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), c.clone(iter.Value()))
		}
		return out
	case reflect.Slice:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		if v.Len() == 0 {
			return out
		}
		ref, done, ok := c.lookup(v, v.Len())
		if ok {
			return done
		}
		c.seen[ref] = out
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(c.clone(v.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(c.clone(v.Index(i)))
		}
		return out
	default:
		return v
	}
}
