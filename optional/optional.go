// Package optional provides a two-state present/absent value.
//
// Generated partial records hold one Value per field. There is no third
// "null" state: a Value is either present with a value or absent.
package optional

import "fmt"

// Value holds a T that is either present or absent.
// The zero Value is absent.
type Value[T any] struct {
	value   T
	present bool
}

// Some returns a present Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether a value is held.
func (o Value[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the held value, or def when absent.
func (o Value[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}

	return def
}

// Merge resolves one field of two partial records.
//
//	self    | other   | result
//	absent  | absent  | absent
//	absent  | present | other
//	present | absent  | self
//	present | present | other if preferOther, else self
func Merge[T any](self, other Value[T], preferOther bool) Value[T] {
	if other.present && (preferOther || !self.present) {
		return other
	}

	return self
}

// String renders "Some(v)" or "None".
func (o Value[T]) String() string {
	if !o.present {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}
