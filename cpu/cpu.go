package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/io"
)

// Channel is an I/O channel interface.
type Channel io.Channel

const (
	REGISTER_COUNT = 8   // Number of general purpose registers.
	MEMORY_SIZE    = 256 // Bytes of memory.
)

// CodeChannel is an I/O channel index type.
type CodeChannel int

const (
	CHANNEL_ID_ROM     = CodeChannel(0) // Boot image.
	CHANNEL_ID_CONSOLE = CodeChannel(1) // PRN output.
	CHANNEL_ID_COUNT   = 2
)

// UnknownPolicy selects what Execute does with an opcode outside the
// instruction set.
type UnknownPolicy int

const (
	UNKNOWN_FAULT = UnknownPolicy(0) // Fail the instruction.
	UNKNOWN_SKIP  = UnknownPolicy(1) // Warn, and skip the encoded length.
	UNKNOWN_SPIN  = UnknownPolicy(2) // Warn, and leave the PC in place.
)

var _cpu_defines = map[string]string{
	"REG_SP":      fmt.Sprintf("%v", REG_SP),
	"STACK_BASE":  fmt.Sprintf("0x%x", STACK_BASE),
	"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
}

// Cpu is the simulation context for the LS-8.
type Cpu struct {
	Verbose bool          // Set to enable verbose logging.
	Unknown UnknownPolicy // Handling of unknown opcodes.

	Pc       uint8                 // Address of the next instruction.
	Register [REGISTER_COUNT]uint8 // Register bank. R7 is the stack pointer.
	Memory   [MEMORY_SIZE]uint8    // Program and stack memory.
	Flags    Flags                 // Comparison flags set by CMP.
	Halted   bool                  // Set by HLT.

	Ticks int // Instructions executed since reset.

	channel [CHANNEL_ID_COUNT]Channel // IO channels.
}

// NewCpu creates a new CPU in its reset state, with no channels attached.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.clear()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 6s: %02X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 6s: %v\n", "flags", cpu.Flags)
	text += fmt.Sprintf("% 6s: %v\n", "halted", cpu.Halted)
	for n, val := range cpu.Register {
		name := fmt.Sprintf("r%d", n)
		if n == REG_SP {
			name = "sp"
		}
		text += fmt.Sprintf("% 6s: %02X\n", name, val)
	}

	return
}

// Trace renders the PC, the fetch window, and the register bank on one line.
func (cpu *Cpu) Trace() (text string) {
	pc := cpu.Pc
	text = fmt.Sprintf("TRACE: %02X | %02X %02X %02X |",
		pc, cpu.Memory[pc], cpu.Memory[pc+1], cpu.Memory[pc+2])

	for _, val := range cpu.Register {
		text += fmt.Sprintf(" %02X", val)
	}

	return
}

// clear sets the registers, memory and flags to their power-on values.
func (cpu *Cpu) clear() {
	clear(cpu.Register[:])
	clear(cpu.Memory[:])
	cpu.Register[REG_SP] = STACK_BASE
	cpu.Pc = 0
	cpu.Flags = Flags{}
	cpu.Halted = false
	cpu.Ticks = 0
}

// Reset the CPU state.
// - Clears the registers, flags and memory.
// - Sets SP to STACK_BASE, and the PC to 0.
// - Rewinds all IO channels.
// - Copies the boot channel into memory, starting at address 0.
func (cpu *Cpu) Reset(boot CodeChannel) (err error) {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.clear()

	for _, channel := range cpu.channel {
		if channel == nil {
			continue
		}
		channel.Rewind()
	}

	rom, err := cpu.GetChannel(boot)
	if err != nil {
		return
	}

	addr := 0
	for value := range rom.Receive() {
		if addr >= MEMORY_SIZE {
			err = ErrProgramTooLarge
			return
		}
		cpu.Memory[addr] = value
		addr++
	}

	if cpu.Verbose {
		log.Printf("cpu: boot %d bytes from channel %v", addr, boot)
	}

	return
}

// SetChannel sets a channel index to a channel simulation model.
func (cpu *Cpu) SetChannel(index CodeChannel, channel Channel) {
	cpu.channel[int(index)] = channel
}

// GetChannel gets the channel simulation model by index.
func (cpu *Cpu) GetChannel(ch CodeChannel) (channel Channel, err error) {
	index := int(ch)
	if index < 0 || index >= len(cpu.channel) || cpu.channel[index] == nil {
		err = ErrChannelInvalid
		return
	}

	channel = cpu.channel[index]
	return
}

// Fetch reads the three byte window at the PC.
// Addresses wrap at the end of memory.
func (cpu *Cpu) Fetch() Instruction {
	pc := cpu.Pc
	return Decode([3]uint8{cpu.Memory[pc], cpu.Memory[pc+1], cpu.Memory[pc+2]})
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	if cpu.Verbose {
		log.Print(cpu.Trace())
	}

	err = cpu.Execute(cpu.Fetch())

	return
}

// register returns the register selected by an operand byte.
func (cpu *Cpu) register(index uint8) (reg *uint8, err error) {
	if int(index) >= len(cpu.Register) {
		err = ErrRegisterInvalid
		return
	}

	reg = &cpu.Register[index]
	return
}

// Execute executes a single decoded instruction.
// On error, the PC is left at the failing instruction.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(inst), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%02x: %v", cpu.Pc, inst)
	}

	next_pc := cpu.Pc + inst.Length()

	code := inst.Code

	// Operand registers, resolved as the instruction needs them.
	var a, b *uint8

	switch code {
	case OP_HLT:
		cpu.Halted = true
	case OP_LDI:
		a, err = cpu.register(inst.A)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		*a = inst.B
	case OP_PRN:
		a, err = cpu.register(inst.A)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		var console Channel
		console, err = cpu.GetChannel(CHANNEL_ID_CONSOLE)
		if err != nil {
			return
		}
		err = console.Send(*a)
		if err != nil {
			return
		}
	case OP_ADD, OP_MUL, OP_CMP:
		a, err = cpu.register(inst.A)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		b, err = cpu.register(inst.B)
		if err != nil {
			err = errors.Join(ErrOpcodeArg2, err)
			return
		}
		var out uint8
		var flags Flags
		out, flags, err = Alu(code, *a, *b)
		if err != nil {
			return
		}
		if code == OP_CMP {
			cpu.Flags = flags
		} else {
			*a = out
		}
	case OP_PUSH:
		a, err = cpu.register(inst.A)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		cpu.Push(*a)
	case OP_POP:
		a, err = cpu.register(inst.A)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		*a = cpu.Pop()
	case OP_CALL:
		a, err = cpu.register(inst.A)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		// The target is read after the push, so CALL R7 jumps to the
		// new stack top.
		cpu.Push(next_pc)
		next_pc = *a
	case OP_RET:
		next_pc = cpu.Pop()
	case OP_JMP, OP_JEQ, OP_JNE:
		taken := code == OP_JMP ||
			(code == OP_JEQ && cpu.Flags.Equal) ||
			(code == OP_JNE && !cpu.Flags.Equal)
		if !taken {
			break
		}
		a, err = cpu.register(inst.A)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		next_pc = *a
	default:
		switch cpu.Unknown {
		case UNKNOWN_SKIP:
			log.Printf("%s", f("cpu: %02x: unknown opcode %08b, skipping %d bytes", cpu.Pc, uint8(code), inst.Length()))
		case UNKNOWN_SPIN:
			log.Printf("%s", f("cpu: %02x: unknown opcode %08b", cpu.Pc, uint8(code)))
			next_pc = cpu.Pc
		default:
			err = ErrOpcodeUnknown
			return
		}
	}

	cpu.Pc = next_pc
	cpu.Ticks += 1

	return
}
