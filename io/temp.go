package io

import (
	"iter"
)

// Temporary is a fixed capacity byte FIFO. It can stand in for the
// console when output should be captured rather than printed.
// Capacity may change while bytes are queued; they are kept.
type Temporary struct {
	Capacity int // Capacity in bytes.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []uint8
}

var _ Channel = (*Temporary)(nil)

// Rewind empties the FIFO.
func (temp *Temporary) Rewind() {
	temp.ReadIndex = 0
	temp.WriteIndex = 0
	temp.Size = 0
	temp.Data = make([]uint8, temp.Capacity)
}

// Receive drains the FIFO, oldest byte first.
func (temp *Temporary) Receive() iter.Seq[uint8] {
	return func(yield func(value uint8) bool) {
		for temp.Size > 0 {
			value := temp.Data[temp.ReadIndex]
			temp.ReadIndex++
			if temp.ReadIndex == len(temp.Data) {
				temp.ReadIndex = 0
			}
			temp.Size--
			if !yield(value) {
				return
			}
		}
	}
}

// Send queues a byte.
// Returns ErrChannelFull if the FIFO has reached capacity.
func (temp *Temporary) Send(value uint8) (err error) {
	if temp.Size >= temp.Capacity {
		err = ErrChannelFull
		return
	}
	if len(temp.Data) != temp.Capacity {
		temp.resize()
	}

	temp.Data[temp.WriteIndex] = value

	temp.WriteIndex++
	if temp.WriteIndex == len(temp.Data) {
		temp.WriteIndex = 0
	}
	temp.Size++

	return
}

// resize moves the queued bytes, oldest first, into a buffer of the
// current capacity. The caller ensures they fit.
func (temp *Temporary) resize() {
	data := make([]uint8, temp.Capacity)
	for n := range temp.Size {
		data[n] = temp.Data[(temp.ReadIndex+n)%len(temp.Data)]
	}

	temp.Data = data
	temp.ReadIndex = 0
	temp.WriteIndex = temp.Size % temp.Capacity
}
