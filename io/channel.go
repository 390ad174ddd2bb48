// Package io provides the I/O channels of the LS-8 emulator. Rom holds the
// program image the machine boots from, Console prints what PRN sends it,
// and Temporary captures output in a bounded FIFO.
package io

import (
	"iter"
)

// Channel defines the interface for all I/O channels in the LS-8 system.
// Channels operate at the byte level.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields bytes from the channel.
	Receive() iter.Seq[uint8]
	// Send writes a single byte to the channel.
	Send(value uint8) error
}
