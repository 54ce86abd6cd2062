package di

import (
	"reflect"

	"go.uber.org/zap"
)

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger makes the resolver log each resolution step at debug level.
func WithLogger(log *zap.Logger) ResolverOption {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// Resolver builds instances from a Registry.
//
// Factories receive the resolver that is running them and call Resolve on it
// for their own dependencies, which is how the resolver tracks the current
// resolution path and detects cycles.
type Resolver struct {
	reg  *Registry
	log  *zap.Logger
	path []reflect.Type
}

// NewResolver returns a resolver over reg.
func NewResolver(reg *Registry, opts ...ResolverOption) *Resolver {
	r := &Resolver{reg: reg, log: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Registry returns the registry the resolver reads from.
func (r *Resolver) Registry() *Registry { return r.reg }

// Path returns a copy of the types currently being resolved, root first.
// It is empty outside of a Resolve call.
func (r *Resolver) Path() []reflect.Type { return clonePath(r.path) }

// Resolve builds a T.
//
// If T is a bound contract, its implementation is resolved and converted to T.
// Otherwise T's factory is run. Every call constructs a new instance graph.
// Concrete types are never built implicitly: they too need a Provide factory.
//
// Resolve fails with:
//   - UnresolvableDependencyError if T (or a dependency) has no binding or factory
//   - CircularDependencyError if T is already being resolved on the current path
//   - ConstructionError if a factory returned an error
//
// On failure the zero T is returned; there are no partial results.
func Resolve[T any](r *Resolver) (T, error) {
	var zero T
	v, err := r.ResolveType(reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}
	if v == nil {
		// a factory or binding produced a nil interface value
		return zero, nil
	}
	return v.(T), nil
}

// MustResolve is Resolve that panics on error.
func MustResolve[T any](r *Resolver) T {
	v, err := Resolve[T](r)
	if err != nil {
		panic(err)
	}
	return v
}

// ResolveType is the untyped form of Resolve.
func (r *Resolver) ResolveType(t reflect.Type) (any, error) {
	if r == nil || r.reg == nil {
		return nil, ErrNilRegistry
	}

	for _, inProgress := range r.path {
		if inProgress == t {
			err := CircularDependencyError{Path: cycleFrom(r.path, t)}
			r.log.Debug("di: cycle detected", zap.String("path", joinPath(err.Path)))
			return nil, err
		}
	}

	requiredBy := clonePath(r.path)
	r.path = append(r.path, t)
	defer func() { r.path = r.path[:len(r.path)-1] }()

	if b, ok := r.reg.bindings[t]; ok {
		r.log.Debug("di: resolving contract",
			zap.Stringer("contract", t),
			zap.Stringer("implementation", b.impl),
			zap.Int("depth", len(requiredBy)),
		)
		impl, err := r.ResolveType(b.impl)
		if err != nil {
			return nil, err
		}
		return b.cast(impl), nil
	}

	if f, ok := r.reg.factories[t]; ok {
		r.log.Debug("di: constructing", zap.Stringer("type", t), zap.Int("depth", len(requiredBy)))
		v, err := f.build(r)
		if err != nil {
			if isResolveError(err) {
				return nil, err
			}
			return nil, ConstructionError{Type: t, Err: err}
		}
		return v, nil
	}

	return nil, UnresolvableDependencyError{Type: t, Path: requiredBy}
}
