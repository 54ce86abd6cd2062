// Package odic is an explicit, type-keyed dependency injection container and
// a small messenger application wired with it.
//
// The repository is organised as:
//
//   - di: Registry (contract -> implementation bindings, factories, overwrite
//     policy, static Validate) and Resolver (recursive construction with
//     cycle detection, no caching)
//   - messenger: the Encryptor / Logger / Clock contracts, their
//     implementations, the Messenger consumer and its container wiring
//   - config, logging: YAML + environment configuration and the zap logger
//   - cmd/messenger: the CLI composition root (dispatch, bindings)
//   - examples/*: runnable walkthroughs of wiring and of every container error
//
// The container never constructs a type through reflection. Each type is built
// by a factory registered for it, and bindings carry a compiler-checked
// conversion from implementation to contract.
package odic
