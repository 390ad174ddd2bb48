package io

import (
	"errors"
	"io/fs"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull     = errors.New(f("channel full"))
	ErrChannelReadOnly = errors.New(f("channel read only"))
	ErrChannelOutput   = errors.New(f("channel has no output"))

	// Program image errors
	ErrParseByte = errors.New(f("not an 8-bit binary value"))
)

// ErrProgramNotFound is returned when a program file does not exist.
type ErrProgramNotFound string

func (err ErrProgramNotFound) Error() string {
	return f("%v Not Found", string(err))
}

func (err ErrProgramNotFound) Is(target error) bool {
	return target == fs.ErrNotExist
}

// ErrSyntax locates a malformed line in a program image.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
