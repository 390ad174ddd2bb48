package io

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
	"strconv"
	"strings"
)

// ROM_COMMENT starts a comment that runs to the end of the line.
const ROM_COMMENT = "#"

// Rom is the program image the machine boots from.
type Rom struct {
	Data []uint8
}

var _ Channel = (*Rom)(nil)

// Rewind is a no-op; every Receive starts at the first byte.
func (rc *Rom) Rewind() {
}

// Receive yields the program image in address order.
func (rc *Rom) Receive() iter.Seq[uint8] {
	return func(yield func(value uint8) bool) {
		for _, data := range rc.Data {
			if !yield(data) {
				return
			}
		}
	}
}

func (rc *Rom) Send(value uint8) error {
	return ErrChannelReadOnly
}

// Parse replaces the image with the bytes of a text program.
//
// Each line holds one binary literal, optionally followed by a '#'
// comment. Blank and comment-only lines are skipped.
func (rc *Rom) Parse(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var data []uint8
	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		num, _, _ := strings.Cut(text, ROM_COMMENT)
		num = strings.TrimSpace(num)
		if len(num) == 0 {
			continue
		}

		var value uint64
		value, err = strconv.ParseUint(num, 2, 8)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: ErrParseByte}
			return
		}

		data = append(data, uint8(value))
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	rc.Data = data

	return
}

// ReadFile parses the named program file into the image.
func (rc *Rom) ReadFile(name string) (err error) {
	inf, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		err = ErrProgramNotFound(name)
		return
	}
	if err != nil {
		return
	}
	defer inf.Close()

	err = rc.Parse(inf)

	return
}
