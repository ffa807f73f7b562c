package helpers

import "fmt"

type Optional[T any] struct {
	_hasValue bool
	_t        T
}

func Some[T any](t T) Optional[T] {
	return Optional[T]{true, t}
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsEmpty() bool {
	return !o._hasValue
}

func (o Optional[T]) HasValue() bool {
	return o._hasValue
}

func (o Optional[T]) Value() T {
	return o._t
}

func (o Optional[T]) ValueOr(fallback T) T {
	if o._hasValue {
		return o._t
	}
	return fallback
}

func (o Optional[T]) String() string {
	if o._hasValue {
		return fmt.Sprint(o._t)
	}
	return "-"
}
