package di_test

import (
	"errors"
	"fmt"

	"github.com/sghaida/odic/di"
)

func Example() {
	reg := di.NewRegistry()

	// Leaves.
	di.MustProvide0(reg, func() *upperEncryptor { return &upperEncryptor{} })
	di.MustProvide0(reg, func() *memorySink { return &memorySink{} })

	// Contracts.
	di.MustRegister(reg, func(e *upperEncryptor) Encryptor { return e })
	di.MustRegister(reg, func(s *memorySink) Sink { return s })

	// Root.
	di.MustProvide2(reg, NewConsumer)

	for _, b := range reg.Bindings() {
		fmt.Println(b)
	}

	c, err := di.Resolve[*Consumer](di.NewResolver(reg))
	if err != nil {
		panic(err)
	}
	c.Send("raw message")
	fmt.Println(c.Sink.(*memorySink).lines[0])

	// Output:
	// di_test.Encryptor -> *di_test.upperEncryptor
	// di_test.Sink -> *di_test.memorySink
	// RAW MESSAGE
}

func ExampleRegistry_Validate() {
	reg := di.NewRegistry()
	di.MustRegister(reg, func(a *alphaImpl) alpha { return a })
	di.MustProvide1(reg, func(b beta) *alphaImpl { return &alphaImpl{b: b} })
	di.MustRegister(reg, func(b *betaImpl) beta { return b })
	di.MustProvide1(reg, func(a alpha) *betaImpl { return &betaImpl{a: a} })

	err := reg.Validate()
	var ce di.CircularDependencyError
	fmt.Println(errors.As(err, &ce), len(ce.Path))

	// Output:
	// true 5
}
