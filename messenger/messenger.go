package messenger

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrScriptedContent is returned by Dispatch for content that is already
	// scripted. Nothing is encrypted or logged.
	ErrScriptedContent = errors.New("messenger: message content is scripted, no encryption needed")

	// ErrNilMessage is returned by Dispatch for a nil message.
	ErrNilMessage = errors.New("messenger: nil message")
)

// Messenger encrypts messages and logs the result.
type Messenger struct {
	enc   Encryptor
	log   Logger
	clock Clock
}

// NewMessenger returns a Messenger over the given collaborators.
func NewMessenger(enc Encryptor, log Logger, clock Clock) *Messenger {
	return &Messenger{enc: enc, log: log, clock: clock}
}

// Dispatch encrypts msg.Content and logs it.
//
// Scripted messages are rejected before the encryptor is called. High priority
// messages get PriorityDetails stamped with today's UTC date. msg.ID is
// assigned if unset.
func (m *Messenger) Dispatch(msg *Message) error {
	if msg == nil {
		return ErrNilMessage
	}
	if msg.Scripted {
		return ErrScriptedContent
	}

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.Priority == PriorityHigh {
		msg.PriorityDetails = &PriorityDetails{Timestamp: today(m.clock)}
	}

	encrypted := m.enc.Encrypt(msg.Content)
	m.log.Log("Encrypted message: " + encrypted)
	return nil
}
