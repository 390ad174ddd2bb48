package cpu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/io"
)

func FuzzCpu(f *testing.F) {
	for code := range codeArgs {
		f.Add(uint8(code), uint8(0), uint8(1), uint8(0))
		f.Add(uint8(code), uint8(7), uint8(8), uint8(1))
	}
	f.Add(uint8(0), uint8(0xff), uint8(0xff), uint8(2))
	f.Add(uint8(0xff), uint8(0xff), uint8(0xff), uint8(2))

	f.Fuzz(func(t *testing.T, opcode uint8, a uint8, b uint8, policy uint8) {
		assert := assert.New(t)

		cpu := NewCpu()
		cpu.Unknown = UnknownPolicy(policy % 3)
		cpu.SetChannel(CHANNEL_ID_ROM, &io.Rom{Data: []uint8{opcode, a, b}})
		cpu.SetChannel(CHANNEL_ID_CONSOLE, &io.Console{Output: &bytes.Buffer{}})
		for n := range REGISTER_COUNT - 1 {
			cpu.Register[n] = uint8(0x11 * (n + 1))
		}

		err := cpu.Reset(CHANNEL_ID_ROM)
		assert.NoError(err)

		inst := cpu.Fetch()
		err = cpu.Tick()
		if err != nil {
			assert.Equal(uint8(0), cpu.Pc)
			assert.Equal(0, cpu.Ticks)
			assert.True(errors.Is(err, ErrOpcode(inst)))
			assert.True(errors.Is(err, ErrOpcodeUnknown) ||
				errors.Is(err, ErrRegisterInvalid), err.Error())
			return
		}

		assert.Equal(1, cpu.Ticks)

		switch {
		case cpu.Halted:
			assert.Equal(OP_HLT, inst.Code)
		case inst.Code.SetsPc():
		case inst.Code.Valid(), cpu.Unknown == UNKNOWN_SKIP:
			assert.Equal(inst.Length(), cpu.Pc)
		case cpu.Unknown == UNKNOWN_SPIN:
			assert.Equal(uint8(0), cpu.Pc)
		default:
			t.Fatalf("unknown opcode %v executed", inst)
		}
	})
}
