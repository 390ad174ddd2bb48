package io

import (
	"fmt"
	"io"
	"iter"
)

// Console prints each byte sent to it as a decimal number on its own line.
type Console struct {
	Output io.Writer

	Lines int // Count of lines written since the last Rewind.
}

var _ Channel = (*Console)(nil)

// Rewind resets the line counter. Output already written stays written.
func (cc *Console) Rewind() {
	cc.Lines = 0
}

// Receive yields nothing: the console has no keyboard.
func (cc *Console) Receive() iter.Seq[uint8] {
	return func(yield func(value uint8) bool) {}
}

// Send writes the value in decimal, newline-terminated.
func (cc *Console) Send(value uint8) (err error) {
	if cc.Output == nil {
		err = ErrChannelOutput
		return
	}

	_, err = fmt.Fprintf(cc.Output, "%d\n", value)
	if err != nil {
		return
	}

	cc.Lines++

	return
}
