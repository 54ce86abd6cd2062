// Package messenger is the consumer side of the container: a Messenger that
// encrypts and logs messages through injected Encryptor and Logger contracts.
//
// Register wires the whole graph into a di.Registry:
//
//	reg := di.NewRegistry()
//	if err := messenger.Register(reg, messenger.Options{Out: os.Stdout}); err != nil {
//		return err
//	}
//	m, err := di.Resolve[*messenger.Messenger](di.NewResolver(reg))
package messenger
