package io

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRom_Receive(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []uint8{0x82, 0x00, 0x08}}

	var data []uint8
	for value := range rom.Receive() {
		data = append(data, value)
	}
	assert.Equal([]uint8{0x82, 0x00, 0x08}, data)

	// Rewind does not consume the image.
	rom.Rewind()
	data = data[:0]
	for value := range rom.Receive() {
		data = append(data, value)
	}
	assert.Equal([]uint8{0x82, 0x00, 0x08}, data)
}

func TestRom_Receive_EarlyStop(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []uint8{1, 2, 3, 4}}

	count := 0
	for range rom.Receive() {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(2, count)
}

func TestRom_Send(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{}
	assert.ErrorIs(rom.Send(0x12), ErrChannelReadOnly)
	assert.Empty(rom.Data)
}

func TestRom_Parse(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"# print8.ls8",
		"",
		"10000010 # LDI R0,8",
		"00000000",
		"  00001000  ",
		"01000111 # PRN R0",
		"00000000",
		"\t",
		"00000001 # HLT",
	}

	rom := &Rom{}
	err := rom.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal([]uint8{0x82, 0x00, 0x08, 0x47, 0x00, 0x01}, rom.Data)

	err = rom.Parse(strings.NewReader("# nothing here\n\n"))
	assert.NoError(err)
	assert.Empty(rom.Data)
}

func TestRom_Parse_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		text   string
		lineno int
	}){
		{"decimal", "00000001\n12", 2},
		{"nine_bits", "100000000", 1},
		{"word", "# one\n\nHLT # halt", 3},
		{"split", "0000 0001", 1},
	}

	for _, entry := range table {
		rom := &Rom{Data: []uint8{0xaa}}
		err := rom.Parse(strings.NewReader(entry.text))
		assert.ErrorIs(err, ErrParseByte, entry.name)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}

		// A failed parse leaves the old image in place.
		assert.Equal([]uint8{0xaa}, rom.Data, entry.name)
	}
}

func TestRom_ReadFile(t *testing.T) {
	assert := assert.New(t)

	name := filepath.Join(t.TempDir(), "hlt.ls8")
	err := os.WriteFile(name, []byte("00000001 # HLT\n"), 0o644)
	assert.NoError(err)

	rom := &Rom{}
	err = rom.ReadFile(name)
	assert.NoError(err)
	assert.Equal([]uint8{0x01}, rom.Data)
}

func TestRom_ReadFile_NotFound(t *testing.T) {
	assert := assert.New(t)

	name := filepath.Join(t.TempDir(), "missing.ls8")

	rom := &Rom{}
	err := rom.ReadFile(name)
	assert.ErrorIs(err, fs.ErrNotExist)
	assert.Equal(ErrProgramNotFound(name), err)
	assert.Equal(name+" Not Found", err.Error())
}
