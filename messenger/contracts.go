package messenger

import "time"

// Encryptor turns message content into its encrypted form.
type Encryptor interface {
	Encrypt(content string) string
}

// Logger writes a line to an output sink.
type Logger interface {
	Log(msg string)
}

// Clock tells the time. It lets tests pin the date stamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// today returns the current UTC date at midnight.
func today(c Clock) time.Time {
	now := c.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
