package di

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
)

var (
	// ErrNilRegistry is returned when a registration or resolver is given a nil *Registry.
	ErrNilRegistry = errors.New("di: nil registry")

	// ErrNotInterface is returned by Register when the contract type is not an interface.
	ErrNotInterface = errors.New("di: contract must be an interface type")
)

// typeName renders a type for error messages. A nil type renders as "<nil>".
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func joinPath(path []reflect.Type) string {
	parts := make([]string, len(path))
	for i, t := range path {
		parts[i] = typeName(t)
	}
	return strings.Join(parts, " -> ")
}

// RegistrationError is returned when a contract (or a factory type) is already
// registered and the registry's OverwritePolicy is OverwriteError.
type RegistrationError struct {
	// Contract is the contract (or factory) type being registered.
	Contract reflect.Type
	// Existing is the implementation bound to Contract. It is nil when the
	// existing registration is a factory.
	Existing reflect.Type
	// Implementation is the implementation that was rejected.
	Implementation reflect.Type
}

// Error implements the error interface.
func (e RegistrationError) Error() string {
	if e.Existing == nil {
		// Example: di: factory for "*messenger.Messenger" already registered
		return "di: factory for " + strconv.Quote(typeName(e.Contract)) + " already registered"
	}
	// Example: di: contract "messenger.Encryptor" already registered to "*messenger.HeadEncryptor"
	return "di: contract " + strconv.Quote(typeName(e.Contract)) +
		" already registered to " + strconv.Quote(typeName(e.Existing))
}

// UnregisteredContractError is returned by Lookup when no implementation is
// bound to the contract.
type UnregisteredContractError struct{ Contract reflect.Type }

// Error implements the error interface.
func (e UnregisteredContractError) Error() string {
	return "di: contract " + strconv.Quote(typeName(e.Contract)) + " not registered"
}

// UnresolvableDependencyError is returned when a requested type has neither a
// binding nor a factory.
type UnresolvableDependencyError struct {
	// Type is the type that could not be resolved.
	Type reflect.Type
	// Path is the chain of types that led to the request, root first.
	// It is empty when Type was requested directly.
	Path []reflect.Type
}

// Error implements the error interface.
func (e UnresolvableDependencyError) Error() string {
	msg := "di: no binding or factory for " + strconv.Quote(typeName(e.Type))
	if len(e.Path) > 0 {
		msg += " (required by " + joinPath(e.Path) + ")"
	}
	return msg
}

// CircularDependencyError is returned when resolution revisits a type that is
// already being resolved on the current path.
type CircularDependencyError struct {
	// Path is the cycle, starting and ending with the repeated type.
	Path []reflect.Type
}

// Error implements the error interface.
func (e CircularDependencyError) Error() string {
	if len(e.Path) == 0 {
		return "di: circular dependency detected"
	}
	return "di: circular dependency detected: " + joinPath(e.Path)
}

// ConstructionError wraps an error returned by a factory.
type ConstructionError struct {
	Type reflect.Type
	Err  error
}

// Error implements the error interface.
func (e ConstructionError) Error() string {
	return "di: construct " + strconv.Quote(typeName(e.Type)) + ": " + e.Err.Error()
}

// Unwrap returns the factory error.
func (e ConstructionError) Unwrap() error { return e.Err }

// NilFactoryError is returned when Provide or Register receives a nil function.
type NilFactoryError struct{ Type reflect.Type }

// Error implements the error interface.
func (e NilFactoryError) Error() string {
	return "di: nil factory for " + strconv.Quote(typeName(e.Type))
}

// isResolveError reports whether err already carries resolution context, so
// the resolver does not wrap it a second time on the way up.
func isResolveError(err error) bool {
	var (
		unresolvable UnresolvableDependencyError
		circular     CircularDependencyError
		construction ConstructionError
	)
	return errors.As(err, &unresolvable) ||
		errors.As(err, &circular) ||
		errors.As(err, &construction)
}
