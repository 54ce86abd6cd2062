// Package di provides a small, explicit, type-keyed dependency injection container.
//
// It has two parts:
//
//   - Registry: stores contract -> implementation bindings (Register) and the
//     factories that know how to construct a type (Provide, Provide0..Provide3).
//   - Resolver: builds a requested type by following bindings and running
//     factories, resolving each factory's dependencies through the same resolver.
//
// Design goals:
//   - No reflection-based construction: every type is built by a factory you
//     register. reflect.Type is used only as the registry key and for messages.
//   - Compile-time checked bindings: Register takes a conversion func(I) C, so
//     an implementation that does not satisfy its contract does not compile.
//   - Fail fast: duplicate registrations are rejected by default and cycles are
//     detected on the resolution path instead of recursing forever. A binding
//     and a factory for the same interface count as duplicates.
//   - Fresh graphs: there are no lifetimes or caches; every Resolve builds new
//     instances all the way down.
//
// A Registry and its Resolver are not safe for concurrent use. Serialize access
// externally if you need to share them.
//
// Example:
//
//	type Greeter interface{ Greet() string }
//
//	type english struct{}
//
//	func (english) Greet() string { return "hello" }
//
//	type Host struct{ g Greeter }
//
//	func NewHost(g Greeter) *Host { return &Host{g: g} }
//
//	reg := di.NewRegistry()
//	di.MustProvide0(reg, func() english { return english{} })
//	di.MustRegister(reg, func(e english) Greeter { return e })
//	di.MustProvide1(reg, NewHost)
//
//	h, err := di.Resolve[*Host](di.NewResolver(reg))
//
// Import
//
//	"github.com/sghaida/odic/di"
package di
