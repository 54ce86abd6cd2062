package di_test

import (
	"errors"
	"testing"

	"github.com/sghaida/odic/di"
	"pgregory.net/rapid"
)

// TestProperty_OverwritePolicy checks, for any sequence of Encryptor
// registrations, which implementation ends up bound and how many registrations
// were rejected.
func TestProperty_OverwritePolicy(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		policy := rapid.SampledFrom([]di.OverwritePolicy{
			di.OverwriteError, di.OverwriteReplace, di.OverwriteIgnore,
		}).Draw(rt, "policy")
		// true registers the upper encryptor, false the reverse one
		seq := rapid.SliceOfN(rapid.Bool(), 1, 20).Draw(rt, "registrations")

		r := di.NewRegistry(di.WithOverwritePolicy(policy))
		di.MustProvide0(r, func() *upperEncryptor { return &upperEncryptor{} })
		di.MustProvide0(r, func() *reverseEncryptor { return &reverseEncryptor{} })

		rejected := 0
		for _, upper := range seq {
			var err error
			if upper {
				err = di.Register(r, asUpper)
			} else {
				err = di.Register(r, asReverse)
			}
			if err != nil {
				var regErr di.RegistrationError
				if !errors.As(err, &regErr) {
					rt.Fatalf("unexpected error type %T: %v", err, err)
				}
				rejected++
			}
		}

		wantUpper := seq[0]
		wantRejected := 0
		switch policy {
		case di.OverwriteReplace:
			wantUpper = seq[len(seq)-1]
		case di.OverwriteError:
			wantRejected = len(seq) - 1
		}
		if rejected != wantRejected {
			rt.Fatalf("rejected %d registrations, want %d", rejected, wantRejected)
		}

		impl, err := di.LookupFor[Encryptor](r)
		if err != nil {
			rt.Fatalf("lookup: %v", err)
		}
		if (impl == upperType) != wantUpper {
			rt.Fatalf("bound %s, want upper=%v", impl, wantUpper)
		}

		enc, err := di.Resolve[Encryptor](di.NewResolver(r))
		if err != nil {
			rt.Fatalf("resolve: %v", err)
		}
		if _, isUpper := enc.(*upperEncryptor); isUpper != wantUpper {
			rt.Fatalf("resolved %T, want upper=%v", enc, wantUpper)
		}
		if n := len(r.Bindings()); n != 1 {
			rt.Fatalf("got %d bindings, want 1", n)
		}
	})
}

// TestProperty_ResolveBuildsFreshGraph checks that n Resolve calls run every
// constructor in the graph exactly n times.
func TestProperty_ResolveBuildsFreshGraph(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 50).Draw(rt, "calls")

		encBuilt, sinkBuilt := 0, 0
		r := di.NewRegistry()
		di.MustProvide0(r, func() *upperEncryptor {
			encBuilt++
			return &upperEncryptor{}
		})
		di.MustProvide0(r, func() *memorySink {
			sinkBuilt++
			return &memorySink{}
		})
		di.MustRegister(r, asUpper)
		di.MustRegister(r, asMemory)
		di.MustProvide2(r, NewConsumer)

		res := di.NewResolver(r)
		seen := make(map[*Consumer]struct{}, n)
		for i := 0; i < n; i++ {
			c, err := di.Resolve[*Consumer](res)
			if err != nil {
				rt.Fatalf("resolve #%d: %v", i, err)
			}
			seen[c] = struct{}{}
		}

		if len(seen) != n || encBuilt != n || sinkBuilt != n {
			rt.Fatalf("calls=%d distinct=%d encBuilt=%d sinkBuilt=%d", n, len(seen), encBuilt, sinkBuilt)
		}
	})
}

// TestProperty_UnregisteredAlwaysUnresolvable checks that resolving an
// unregistered type fails the same way whatever else is registered.
func TestProperty_UnregisteredAlwaysUnresolvable(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		r := di.NewRegistry()
		if rapid.Bool().Draw(rt, "withEncryptor") {
			di.MustProvide0(r, func() *upperEncryptor { return &upperEncryptor{} })
			di.MustRegister(r, asUpper)
		}
		if rapid.Bool().Draw(rt, "withSink") {
			di.MustProvide0(r, func() *memorySink { return &memorySink{} })
			di.MustRegister(r, asMemory)
		}
		if rapid.Bool().Draw(rt, "withConsumer") {
			di.MustProvide2(r, NewConsumer)
		}

		_, err := di.Resolve[*unregistered](di.NewResolver(r))
		var ud di.UnresolvableDependencyError
		if !errors.As(err, &ud) {
			rt.Fatalf("got %v, want UnresolvableDependencyError", err)
		}
	})
}
