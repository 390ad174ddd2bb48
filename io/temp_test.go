package io

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemporary(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 3}
	temp.Rewind()

	assert.NoError(temp.Send(1))
	assert.NoError(temp.Send(2))
	assert.NoError(temp.Send(3))
	assert.ErrorIs(temp.Send(4), ErrChannelFull)

	assert.Equal([]uint8{1, 2, 3}, slices.Collect(temp.Receive()))
	assert.Equal(0, temp.Size)

	// Wrap around the end of the buffer.
	assert.NoError(temp.Send(5))
	assert.NoError(temp.Send(6))
	for value := range temp.Receive() {
		assert.Equal(uint8(5), value)
		break
	}
	assert.NoError(temp.Send(7))
	assert.NoError(temp.Send(8))
	assert.Equal([]uint8{6, 7, 8}, slices.Collect(temp.Receive()))
}

func TestTemporary_Unrewound(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 2}
	assert.NoError(temp.Send(9))
	assert.Equal([]uint8{9}, slices.Collect(temp.Receive()))

	empty := &Temporary{}
	assert.ErrorIs(empty.Send(1), ErrChannelFull)
}

func TestTemporary_Rewind(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 2}
	temp.Rewind()
	assert.NoError(temp.Send(1))

	temp.Rewind()
	assert.Equal(0, temp.Size)
	assert.Empty(slices.Collect(temp.Receive()))
}

func TestTemporary_Capacity(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 2}
	temp.Rewind()
	assert.NoError(temp.Send(1))
	assert.NoError(temp.Send(2))
	assert.ErrorIs(temp.Send(3), ErrChannelFull)

	// Growing keeps what is queued.
	temp.Capacity = 4
	assert.NoError(temp.Send(3))
	assert.Equal([]uint8{1, 2, 3}, slices.Collect(temp.Receive()))

	// So does growing a wrapped buffer.
	temp.Capacity = 3
	temp.Rewind()
	for value := range uint8(3) {
		assert.NoError(temp.Send(value + 1))
	}
	for value := range temp.Receive() {
		assert.Equal(uint8(1), value)
		break
	}
	assert.NoError(temp.Send(4))
	temp.Capacity = 5
	assert.NoError(temp.Send(5))
	assert.Equal([]uint8{2, 3, 4, 5}, slices.Collect(temp.Receive()))

	// Shrinking keeps it too, while it still fits.
	assert.NoError(temp.Send(6))
	temp.Capacity = 2
	assert.NoError(temp.Send(7))
	assert.ErrorIs(temp.Send(8), ErrChannelFull)
	assert.Equal([]uint8{6, 7}, slices.Collect(temp.Receive()))
}
