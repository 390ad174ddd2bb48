package cpu

// Flags is the comparison state set by CMP.
// Only Equal is consumed by the branch instructions.
type Flags struct {
	Equal   bool
	Less    bool
	Greater bool
}

// String renders the flags as "LGE", with '-' for each clear flag.
func (fl Flags) String() string {
	text := []byte("---")
	if fl.Less {
		text[0] = 'L'
	}
	if fl.Greater {
		text[1] = 'G'
	}
	if fl.Equal {
		text[2] = 'E'
	}
	return string(text)
}

// Alu performs an ALU operation on two register values.
//
// ADD and MUL return the result modulo 256, and zero flags.
// CMP returns 'a' unchanged, and the comparison flags.
func Alu(code Code, a, b uint8) (out uint8, flags Flags, err error) {
	switch code {
	case OP_ADD:
		out = a + b
	case OP_MUL:
		out = a * b
	case OP_CMP:
		out = a
		flags = Flags{
			Equal:   a == b,
			Less:    a < b,
			Greater: a > b,
		}
	default:
		err = ErrAluUnsupported
	}

	return
}
