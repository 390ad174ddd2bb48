package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Opcode represents a line of assembled code with its source location and
// generated bytes.
type Opcode struct {
	LineNo    int
	Addr      int
	Words     []string
	Bytes     []uint8
	LinkLabel string
}

type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

func (prog *Program) Debug(addr uint8) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(addr) >= op.Addr && int(addr) < op.Addr+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(addr) - op.Addr,
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program, from address 0.
func (prog *Program) Binary() (bins []uint8) {
	for addr, data := range prog.Codes() {
		for len(bins) < addr {
			bins = append(bins, 0)
		}
		bins = append(bins, data)
	}

	return
}

func (prog *Program) Codes() iter.Seq2[int, uint8] {
	return func(yield func(addr int, data uint8) bool) {
		for _, op := range prog.Opcodes {
			for n, data := range op.Bytes {
				if !yield(op.Addr+n, data) {
					return
				}
			}
		}
	}
}

// WriteTo writes the program as a text image, one binary byte per line,
// with the source of each opcode as a comment.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	out := bufio.NewWriter(w)

	var count int
	for _, op := range prog.Opcodes {
		for i, data := range op.Bytes {
			if i == 0 {
				count, err = fmt.Fprintf(out, "%08b # %02X: %v\n", data, op.Addr, strings.Join(op.Words, " "))
			} else {
				count, err = fmt.Fprintf(out, "%08b\n", data)
			}
			n += int64(count)
			if err != nil {
				return
			}
		}
	}

	err = out.Flush()

	return
}
