package cpu

// The stack lives in memory, below STACK_BASE, and grows down.
// Addresses wrap: pushing with SP at 0x00 writes to 0xFF.
const (
	REG_SP     = 7    // Stack pointer register.
	STACK_BASE = 0xF4 // Initial stack pointer.
)

// Push decrements SP, then stores the value at SP.
func (cpu *Cpu) Push(value uint8) {
	cpu.Register[REG_SP]--
	cpu.Memory[cpu.Register[REG_SP]] = value
}

// Pop loads the value at SP, then increments SP.
func (cpu *Cpu) Pop() (value uint8) {
	value = cpu.Peek()
	cpu.Register[REG_SP]++
	return
}

// Peek returns the value at SP.
func (cpu *Cpu) Peek() (value uint8) {
	return cpu.Memory[cpu.Register[REG_SP]]
}

// Depth returns the number of bytes pushed below STACK_BASE.
// It is negative if more has been popped than pushed.
func (cpu *Cpu) Depth() int {
	return int(STACK_BASE) - int(cpu.Register[REG_SP])
}
