package partial

import (
	"fmt"
	"reflect"

	"partial-generator/optional"
)

// Partial is a record of type R whose fields are individually present or
// absent. The zero Partial is all-absent for every schema.
//
// Partial has value semantics: methods never modify the receiver and return
// a new Partial instead.
type Partial[R any] struct {
	values []optional.Value[any]
}

// get returns the i-th field; a zero Partial reads as all-absent.
func (p Partial[R]) get(i int) optional.Value[any] {
	if i >= len(p.values) {
		return optional.None[any]()
	}

	return p.values[i]
}

// with returns a copy of p sized for n fields with field i replaced.
func (p Partial[R]) with(n, i int, v optional.Value[any]) Partial[R] {
	values := make([]optional.Value[any], n)
	copy(values, p.values)
	values[i] = v

	return Partial[R]{values: values}
}

// New returns an all-absent partial record.
func (s *Schema[R]) New() Partial[R] {
	return Partial[R]{values: make([]optional.Value[any], len(s.fields))}
}

// Get returns the value of f and whether it is present.
func (s *Schema[R]) Get(p Partial[R], f Field) (any, bool) {
	if !s.owns(f) {
		return nil, false
	}

	return p.get(f.ordinal).Get()
}

// Has reports whether f is present in p.
func (s *Schema[R]) Has(p Partial[R], f Field) bool {
	return s.owns(f) && p.get(f.ordinal).IsPresent()
}

// Set returns a copy of p with f present and holding v.
// v must be assignable to the field's type; nil is accepted for nilable types.
func (s *Schema[R]) Set(p Partial[R], f Field, v any) (Partial[R], error) {
	if !s.owns(f) {
		return p, &UnknownFieldError{Given: f.name}
	}

	typ := s.types[f.ordinal]

	if v == nil {
		switch typ.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			v = reflect.Zero(typ).Interface()
		default:
			return p, fmt.Errorf("partial: field %s of type %s cannot hold nil", f.name, typ)
		}
	} else if vt := reflect.TypeOf(v); !vt.AssignableTo(typ) {
		return p, fmt.Errorf("partial: field %s of type %s cannot hold %s", f.name, typ, vt)
	}

	return p.with(len(s.fields), f.ordinal, optional.Some(v)), nil
}

// SetByName is Set addressed by original field name.
func (s *Schema[R]) SetByName(p Partial[R], name string, v any) (Partial[R], error) {
	f, err := s.FieldByName(name)
	if err != nil {
		return p, err
	}

	return s.Set(p, f, v)
}

// Unset returns a copy of p with f absent.
func (s *Schema[R]) Unset(p Partial[R], f Field) Partial[R] {
	if !s.owns(f) {
		return p
	}

	return p.with(len(s.fields), f.ordinal, optional.None[any]())
}

// Apply overwrites the fields of base that are present in p and keeps the rest.
func (s *Schema[R]) Apply(p Partial[R], base R) R {
	rv := reflect.ValueOf(&base).Elem()

	for i := range s.fields {
		if v, ok := p.get(i).Get(); ok {
			rv.Field(s.index[i]).Set(s.valueOf(i, v))
		}
	}

	return base
}

// MissingFields returns the absent fields of p in schema order.
func (s *Schema[R]) MissingFields(p Partial[R]) []Field {
	var missing []Field

	for i, f := range s.fields {
		if !p.get(i).IsPresent() {
			missing = append(missing, f)
		}
	}

	return missing
}

// CheckComplete returns nil when every field of p is present, and a
// *MissingFieldsError listing every absent field otherwise.
func (s *Schema[R]) CheckComplete(p Partial[R]) error {
	if missing := s.MissingFields(p); len(missing) > 0 {
		return &MissingFieldsError{Missing: missing}
	}

	return nil
}

// Merge combines two partial records field by field. On a clash (both
// present) other wins when preferOtherOnClash is set, p wins otherwise.
func (s *Schema[R]) Merge(p, other Partial[R], preferOtherOnClash bool) Partial[R] {
	out := s.New()
	for i := range s.fields {
		out.values[i] = optional.Merge(p.get(i), other.get(i), preferOtherOnClash)
	}

	return out
}

// FromFull returns a partial record with every field present.
func (s *Schema[R]) FromFull(r R) Partial[R] {
	rv := reflect.ValueOf(r)

	out := s.New()
	for i := range s.fields {
		out.values[i] = optional.Some(rv.Field(s.index[i]).Interface())
	}

	return out
}

// TryIntoFull converts p into a record. It fails with a *MissingFieldsError
// listing every absent field, not only the first one.
func (s *Schema[R]) TryIntoFull(p Partial[R]) (R, error) {
	var r R

	if err := s.CheckComplete(p); err != nil {
		return r, err
	}

	return s.Apply(p, r), nil
}

// valueOf converts a stored value into a reflect.Value of field i's type.
func (s *Schema[R]) valueOf(i int, v any) reflect.Value {
	if v == nil {
		return reflect.Zero(s.types[i])
	}

	return reflect.ValueOf(v)
}
