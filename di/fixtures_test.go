package di_test

import (
	"strings"
)

//
// -----------------------------------------------------------------------------
// Test contracts and implementations
// -----------------------------------------------------------------------------

type Encryptor interface {
	Encrypt(msg string) string
}

type Sink interface {
	Log(msg string)
}

// upperEncryptor is the first implementation used in overwrite tests.
type upperEncryptor struct{}

func (upperEncryptor) Encrypt(msg string) string { return strings.ToUpper(msg) }

// reverseEncryptor is the second implementation used in overwrite tests.
type reverseEncryptor struct{}

func (reverseEncryptor) Encrypt(msg string) string {
	r := []rune(msg)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

type memorySink struct {
	lines []string
}

func (s *memorySink) Log(msg string) { s.lines = append(s.lines, msg) }

// Consumer depends on both contracts, like a message dispatcher.
type Consumer struct {
	Enc  Encryptor
	Sink Sink
}

func NewConsumer(enc Encryptor, sink Sink) *Consumer {
	return &Consumer{Enc: enc, Sink: sink}
}

func (c *Consumer) Send(msg string) { c.Sink.Log(c.Enc.Encrypt(msg)) }

// alpha and beta depend on each other through their implementations.
type alpha interface{ Alpha() }

type beta interface{ Beta() }

type alphaImpl struct{ b beta }

func (*alphaImpl) Alpha() {}

type betaImpl struct{ a alpha }

func (*betaImpl) Beta() {}

// unregistered is never registered anywhere.
type unregistered struct{}
