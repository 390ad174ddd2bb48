package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlu_Commutative(t *testing.T) {
	assert := assert.New(t)

	for a := range 256 {
		for b := range 256 {
			for _, code := range []Code{OP_ADD, OP_MUL} {
				ab, _, err := Alu(code, uint8(a), uint8(b))
				assert.NoError(err)
				ba, _, err := Alu(code, uint8(b), uint8(a))
				assert.NoError(err)
				if ab != ba {
					t.Fatalf("%v %d %d: %d != %d", code, a, b, ab, ba)
				}
			}
		}
	}
}

func TestAlu_Wrap(t *testing.T) {
	assert := assert.New(t)

	out, flags, err := Alu(OP_ADD, 200, 100)
	assert.NoError(err)
	assert.Equal(uint8(44), out)
	assert.Equal(Flags{}, flags)

	out, _, err = Alu(OP_MUL, 8, 9)
	assert.NoError(err)
	assert.Equal(uint8(72), out)

	out, _, err = Alu(OP_MUL, 200, 2)
	assert.NoError(err)
	assert.Equal(uint8(144), out)
}

func TestAlu_Cmp(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		a, b  uint8
		flags Flags
		str   string
	}){
		{5, 5, Flags{Equal: true}, "--E"},
		{5, 7, Flags{Less: true}, "L--"},
		{7, 5, Flags{Greater: true}, "-G-"},
		{0, 255, Flags{Less: true}, "L--"},
	}

	for _, entry := range table {
		out, flags, err := Alu(OP_CMP, entry.a, entry.b)
		assert.NoError(err)
		assert.Equal(entry.a, out)
		assert.Equal(entry.flags, flags)
		assert.Equal(entry.str, flags.String())
	}
}

func TestAlu_Unsupported(t *testing.T) {
	assert := assert.New(t)

	for _, code := range []Code{OP_HLT, OP_LDI, OP_JEQ, Code(0xff)} {
		_, _, err := Alu(code, 1, 2)
		assert.ErrorIs(err, ErrAluUnsupported, code.String())
	}
}
