package di

import (
	"fmt"
	"reflect"
	"strings"
)

// OverwritePolicy decides what happens when a contract or factory type is
// registered twice.
type OverwritePolicy int

const (
	// OverwriteError rejects the second registration with a RegistrationError.
	OverwriteError OverwritePolicy = iota
	// OverwriteReplace keeps the last registration (last write wins).
	OverwriteReplace
	// OverwriteIgnore keeps the first registration and drops later ones silently.
	OverwriteIgnore
)

// String returns the policy name as accepted by ParseOverwritePolicy.
func (p OverwritePolicy) String() string {
	switch p {
	case OverwriteReplace:
		return "overwrite"
	case OverwriteIgnore:
		return "ignore"
	default:
		return "error"
	}
}

// ParseOverwritePolicy parses "error", "overwrite" or "ignore" (case-insensitive).
// An empty string yields OverwriteError.
func ParseOverwritePolicy(s string) (OverwritePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "error":
		return OverwriteError, nil
	case "overwrite":
		return OverwriteReplace, nil
	case "ignore":
		return OverwriteIgnore, nil
	default:
		return OverwriteError, fmt.Errorf("di: unknown overwrite policy %q (want error|overwrite|ignore)", s)
	}
}

// Option configures a Registry.
type Option func(*Registry)

// WithOverwritePolicy sets the duplicate registration policy. The default is OverwriteError.
func WithOverwritePolicy(p OverwritePolicy) Option {
	return func(r *Registry) { r.policy = p }
}

// Factory builds a T. Dependencies are obtained from the resolver it receives:
//
//	func(r *di.Resolver) (*Messenger, error) {
//		enc, err := di.Resolve[Encryptor](r)
//		if err != nil {
//			return nil, err
//		}
//		return NewMessenger(enc), nil
//	}
type Factory[T any] func(r *Resolver) (T, error)

type binding struct {
	contract reflect.Type
	impl     reflect.Type
	cast     func(any) any
}

type factory struct {
	typ   reflect.Type
	deps  []reflect.Type
	build func(*Resolver) (any, error)
}

// Binding is a read-only view of one contract -> implementation registration.
type Binding struct {
	Contract       reflect.Type
	Implementation reflect.Type
}

// String renders the binding as "contract -> implementation".
func (b Binding) String() string {
	return typeName(b.Contract) + " -> " + typeName(b.Implementation)
}

// Registry stores contract bindings and type factories.
//
// It is a plain value owned by the composition root: construct it, populate it,
// hand it to NewResolver, discard it. There is no global registry.
type Registry struct {
	policy    OverwritePolicy
	bindings  map[reflect.Type]binding
	factories map[reflect.Type]factory
	order     []reflect.Type
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		bindings:  make(map[reflect.Type]binding),
		factories: make(map[reflect.Type]factory),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Policy returns the registry's overwrite policy.
func (r *Registry) Policy() OverwritePolicy { return r.policy }

// Register records that requests for contract C are satisfied by implementation I.
//
// as converts an I into a C. It is almost always the identity, written so the
// compiler checks that I satisfies C:
//
//	di.Register(reg, func(e *HeadEncryptor) Encryptor { return e })
//
// I itself must be resolvable (via Provide or another binding) when C is resolved.
//
// Register fails with:
//   - ErrNilRegistry if r is nil
//   - ErrNotInterface if C is not an interface type
//   - NilFactoryError if as is nil
//   - RegistrationError if C is already bound and the policy is OverwriteError
func Register[C any, I any](r *Registry, as func(I) C) error {
	contract := reflect.TypeFor[C]()
	if r == nil {
		return ErrNilRegistry
	}
	if contract.Kind() != reflect.Interface {
		return fmt.Errorf("%w: %s", ErrNotInterface, contract)
	}
	if as == nil {
		return NilFactoryError{Type: contract}
	}
	return r.bind(binding{
		contract: contract,
		impl:     reflect.TypeFor[I](),
		cast: func(v any) any {
			impl, _ := v.(I)
			return as(impl)
		},
	})
}

// MustRegister is Register that panics on error. Useful in composition roots
// where a wiring mistake should stop the program.
func MustRegister[C any, I any](r *Registry, as func(I) C) {
	if err := Register(r, as); err != nil {
		panic(err)
	}
}

// Provide registers the factory used to construct T.
//
// T may be a concrete type or an interface. An interface T that is already
// bound with Register counts as a duplicate registration of that contract.
func Provide[T any](r *Registry, f Factory[T]) error {
	return provide(r, f, nil)
}

// MustProvide is Provide that panics on error.
func MustProvide[T any](r *Registry, f Factory[T]) {
	if err := Provide(r, f); err != nil {
		panic(err)
	}
}

func provide[T any](r *Registry, f Factory[T], deps []reflect.Type) error {
	typ := reflect.TypeFor[T]()
	if r == nil {
		return ErrNilRegistry
	}
	if f == nil {
		return NilFactoryError{Type: typ}
	}
	return r.addFactory(factory{
		typ:  typ,
		deps: deps,
		build: func(res *Resolver) (any, error) {
			return f(res)
		},
	})
}

// admit applies the overwrite policy for key. It reports whether the incoming
// registration should be stored.
func (r *Registry) admit(key, existing, incoming reflect.Type, exists bool) (bool, error) {
	if !exists {
		r.order = append(r.order, key)
		return true, nil
	}
	switch r.policy {
	case OverwriteReplace:
		return true, nil
	case OverwriteIgnore:
		return false, nil
	default:
		return false, RegistrationError{Contract: key, Existing: existing, Implementation: incoming}
	}
}

// bind and addFactory share one key space: a binding and a factory for the
// same interface are two registrations of one contract and go through admit
// together. The stored registration is the only one kept for the key.
func (r *Registry) bind(b binding) error {
	existing, bound := r.bindings[b.contract]
	_, provided := r.factories[b.contract]
	store, err := r.admit(b.contract, existing.impl, b.impl, bound || provided)
	if err != nil || !store {
		return err
	}
	delete(r.factories, b.contract)
	r.bindings[b.contract] = b
	return nil
}

func (r *Registry) addFactory(f factory) error {
	existing, bound := r.bindings[f.typ]
	_, provided := r.factories[f.typ]
	store, err := r.admit(f.typ, existing.impl, f.typ, bound || provided)
	if err != nil || !store {
		return err
	}
	delete(r.bindings, f.typ)
	r.factories[f.typ] = f
	return nil
}

// Lookup returns the implementation type bound to contract.
//
// It fails with UnregisteredContractError if contract has no binding. Factories
// registered directly for contract are not bindings and do not satisfy Lookup.
func (r *Registry) Lookup(contract reflect.Type) (reflect.Type, error) {
	if r == nil {
		return nil, ErrNilRegistry
	}
	b, ok := r.bindings[contract]
	if !ok {
		return nil, UnregisteredContractError{Contract: contract}
	}
	return b.impl, nil
}

// LookupFor is Lookup keyed by the type parameter C.
func LookupFor[C any](r *Registry) (reflect.Type, error) {
	return r.Lookup(reflect.TypeFor[C]())
}

// Has reports whether t has a binding or a factory.
func (r *Registry) Has(t reflect.Type) bool {
	if r == nil {
		return false
	}
	_, bound := r.bindings[t]
	_, provided := r.factories[t]
	return bound || provided
}

// Bindings returns the contract bindings in registration order.
func (r *Registry) Bindings() []Binding {
	if r == nil {
		return nil
	}
	out := make([]Binding, 0, len(r.bindings))
	for _, t := range r.order {
		if b, ok := r.bindings[t]; ok {
			out = append(out, Binding{Contract: b.contract, Implementation: b.impl})
		}
	}
	return out
}

// Types returns every registered type (bound contracts and factory types) in
// registration order.
func (r *Registry) Types() []reflect.Type {
	if r == nil {
		return nil
	}
	out := make([]reflect.Type, len(r.order))
	copy(out, r.order)
	return out
}

// Dependencies returns the statically declared dependencies of t.
//
// A bound contract depends on its implementation. A factory registered with
// Provide1..Provide3 depends on its parameter types; Provide and Provide0
// factories declare none. ok is false if t is not registered.
func (r *Registry) Dependencies(t reflect.Type) (deps []reflect.Type, ok bool) {
	if r == nil {
		return nil, false
	}
	if b, bound := r.bindings[t]; bound {
		return []reflect.Type{b.impl}, true
	}
	if f, provided := r.factories[t]; provided {
		out := make([]reflect.Type, len(f.deps))
		copy(out, f.deps)
		return out, true
	}
	return nil, false
}

// Validate walks the declared dependency graph of every registered type
// without constructing anything.
//
// It returns UnresolvableDependencyError for a declared dependency that is not
// registered and CircularDependencyError for a cycle. Dependencies a Factory
// resolves dynamically are only checked at Resolve time.
func (r *Registry) Validate() error {
	if r == nil {
		return ErrNilRegistry
	}

	const (
		visiting = 1
		done     = 2
	)
	state := make(map[reflect.Type]int, len(r.order))
	var path []reflect.Type

	var visit func(t reflect.Type) error
	visit = func(t reflect.Type) error {
		switch state[t] {
		case done:
			return nil
		case visiting:
			return CircularDependencyError{Path: cycleFrom(path, t)}
		}

		deps, ok := r.Dependencies(t)
		if !ok {
			return UnresolvableDependencyError{Type: t, Path: clonePath(path)}
		}

		state[t] = visiting
		path = append(path, t)
		for _, dep := range deps {
			if err := visit(dep); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[t] = done
		return nil
	}

	for _, t := range r.order {
		if err := visit(t); err != nil {
			return err
		}
	}
	return nil
}

func clonePath(path []reflect.Type) []reflect.Type {
	if len(path) == 0 {
		return nil
	}
	out := make([]reflect.Type, len(path))
	copy(out, path)
	return out
}

// cycleFrom returns the segment of path starting at t, closed with t again.
func cycleFrom(path []reflect.Type, t reflect.Type) []reflect.Type {
	for i := range path {
		if path[i] == t {
			cycle := make([]reflect.Type, 0, len(path)-i+1)
			cycle = append(cycle, path[i:]...)
			return append(cycle, t)
		}
	}
	return []reflect.Type{t, t}
}
