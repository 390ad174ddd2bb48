package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_Send(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	console := &Console{Output: out}

	for _, value := range []uint8{0, 8, 72, 255} {
		assert.NoError(console.Send(value))
	}

	assert.Equal("0\n8\n72\n255\n", out.String())
	assert.Equal(4, console.Lines)

	console.Rewind()
	assert.Equal(0, console.Lines)
	assert.Equal("0\n8\n72\n255\n", out.String())
}

func TestConsole_Receive(t *testing.T) {
	assert := assert.New(t)

	console := &Console{}

	count := 0
	for range console.Receive() {
		count++
	}
	assert.Equal(0, count)
}

func TestConsole_NoOutput(t *testing.T) {
	assert := assert.New(t)

	console := &Console{}
	assert.ErrorIs(console.Send(1), ErrChannelOutput)
	assert.Equal(0, console.Lines)
}
