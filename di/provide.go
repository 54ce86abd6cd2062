package di

import "reflect"

// Provide0 registers a zero-argument constructor for T. T is a leaf: resolving
// it never recurses.
func Provide0[T any](r *Registry, ctor func() T) error {
	if ctor == nil {
		return NilFactoryError{Type: reflect.TypeFor[T]()}
	}
	return provide[T](r, func(*Resolver) (T, error) { return ctor(), nil }, nil)
}

// Provide1 registers a constructor for T with one dependency. The parameter
// type is resolved before ctor runs and is recorded for Validate.
func Provide1[T, A any](r *Registry, ctor func(A) T) error {
	if ctor == nil {
		return NilFactoryError{Type: reflect.TypeFor[T]()}
	}
	return provide[T](r, func(res *Resolver) (T, error) {
		var zero T
		a, err := Resolve[A](res)
		if err != nil {
			return zero, err
		}
		return ctor(a), nil
	}, []reflect.Type{reflect.TypeFor[A]()})
}

// Provide2 registers a constructor for T with two dependencies, resolved left to right.
func Provide2[T, A, B any](r *Registry, ctor func(A, B) T) error {
	if ctor == nil {
		return NilFactoryError{Type: reflect.TypeFor[T]()}
	}
	return provide[T](r, func(res *Resolver) (T, error) {
		var zero T
		a, err := Resolve[A](res)
		if err != nil {
			return zero, err
		}
		b, err := Resolve[B](res)
		if err != nil {
			return zero, err
		}
		return ctor(a, b), nil
	}, []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()})
}

// Provide3 registers a constructor for T with three dependencies, resolved left to right.
func Provide3[T, A, B, C any](r *Registry, ctor func(A, B, C) T) error {
	if ctor == nil {
		return NilFactoryError{Type: reflect.TypeFor[T]()}
	}
	return provide[T](r, func(res *Resolver) (T, error) {
		var zero T
		a, err := Resolve[A](res)
		if err != nil {
			return zero, err
		}
		b, err := Resolve[B](res)
		if err != nil {
			return zero, err
		}
		c, err := Resolve[C](res)
		if err != nil {
			return zero, err
		}
		return ctor(a, b, c), nil
	}, []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()})
}

// MustProvide0 is Provide0 that panics on error.
func MustProvide0[T any](r *Registry, ctor func() T) {
	if err := Provide0(r, ctor); err != nil {
		panic(err)
	}
}

// MustProvide1 is Provide1 that panics on error.
func MustProvide1[T, A any](r *Registry, ctor func(A) T) {
	if err := Provide1(r, ctor); err != nil {
		panic(err)
	}
}

// MustProvide2 is Provide2 that panics on error.
func MustProvide2[T, A, B any](r *Registry, ctor func(A, B) T) {
	if err := Provide2(r, ctor); err != nil {
		panic(err)
	}
}

// MustProvide3 is Provide3 that panics on error.
func MustProvide3[T, A, B, C any](r *Registry, ctor func(A, B, C) T) {
	if err := Provide3(r, ctor); err != nil {
		panic(err)
	}
}
