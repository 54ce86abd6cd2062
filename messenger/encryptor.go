package messenger

import (
	"fmt"
	"io"
)

// DefaultDateLayout is the layout HeadEncryptor stamps content with when none is configured.
const DefaultDateLayout = "2006-01-02"

// HeadEncryptor stamps content with the current UTC date: "content_2006-01-02".
type HeadEncryptor struct {
	clock  Clock
	out    io.Writer
	layout string
}

// NewHeadEncryptor returns a HeadEncryptor that announces its work on out.
// An empty layout means DefaultDateLayout.
func NewHeadEncryptor(clock Clock, out io.Writer, layout string) *HeadEncryptor {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return &HeadEncryptor{clock: clock, out: out, layout: layout}
}

func (e *HeadEncryptor) Encrypt(content string) string {
	_, _ = fmt.Fprintln(e.out, "Encrypting message...")
	return content + "_" + today(e.clock).Format(e.layout)
}
