package messenger_test

import (
	"time"

	"github.com/sghaida/odic/messenger"
)

// fixedNow is 2026-10-19 15:04:05 in UTC+2, i.e. 13:04:05 UTC on the same day.
var fixedNow = time.Date(2026, 10, 19, 15, 4, 5, 0, time.FixedZone("UTC+2", 2*60*60))

var fixedClock = messenger.ClockFunc(func() time.Time { return fixedNow })

var fixedDay = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

// countingEncryptor records the content it was asked to encrypt.
type countingEncryptor struct {
	calls []string
}

func (e *countingEncryptor) Encrypt(content string) string {
	e.calls = append(e.calls, content)
	return "enc(" + content + ")"
}

// recordingLogger keeps every logged line.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Log(msg string) { l.lines = append(l.lines, msg) }
