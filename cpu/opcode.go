package cpu

import (
	"fmt"
	"strings"
)

// Code is an LS-8 opcode.
//
// The opcode byte describes itself:
//
//	AABCDDDD
//	AA:   number of operands (0-2)
//	B:    1 if the ALU performs the operation
//	C:    1 if the instruction sets the PC
//	DDDD: instruction identifier
type Code uint8

//go:generate go tool stringer -linecomment -type=Code
const (
	OP_HLT  = Code(0b0000_0001) // HLT
	OP_RET  = Code(0b0001_0001) // RET
	OP_PUSH = Code(0b0100_0101) // PUSH
	OP_POP  = Code(0b0100_0110) // POP
	OP_PRN  = Code(0b0100_0111) // PRN
	OP_CALL = Code(0b0101_0000) // CALL
	OP_JMP  = Code(0b0101_0100) // JMP
	OP_JEQ  = Code(0b0101_0101) // JEQ
	OP_JNE  = Code(0b0101_0110) // JNE
	OP_LDI  = Code(0b1000_0010) // LDI
	OP_ADD  = Code(0b1010_0000) // ADD
	OP_MUL  = Code(0b1010_0010) // MUL
	OP_CMP  = Code(0b1010_0111) // CMP
)

const (
	CODE_OPERANDS_SHIFT = 6
	CODE_ALU            = Code(0b0010_0000)
	CODE_SETS_PC        = Code(0b0001_0000)
)

// CodeArg is the kind of an operand byte.
type CodeArg int

const (
	ARG_REG = CodeArg(0) // Register index.
	ARG_IMM = CodeArg(1) // 8-bit immediate value.
)

// codeArgs is the operand layout of every known opcode.
var codeArgs = map[Code][]CodeArg{
	OP_HLT:  nil,
	OP_RET:  nil,
	OP_PUSH: {ARG_REG},
	OP_POP:  {ARG_REG},
	OP_PRN:  {ARG_REG},
	OP_CALL: {ARG_REG},
	OP_JMP:  {ARG_REG},
	OP_JEQ:  {ARG_REG},
	OP_JNE:  {ARG_REG},
	OP_LDI:  {ARG_REG, ARG_IMM},
	OP_ADD:  {ARG_REG, ARG_REG},
	OP_MUL:  {ARG_REG, ARG_REG},
	OP_CMP:  {ARG_REG, ARG_REG},
}

// Valid returns true if the code is part of the instruction set.
func (code Code) Valid() bool {
	_, ok := codeArgs[code]
	return ok
}

// Args returns the operand layout of the code.
func (code Code) Args() []CodeArg {
	return codeArgs[code]
}

// Operands returns the operand count encoded in the opcode.
func (code Code) Operands() int {
	return int(code >> CODE_OPERANDS_SHIFT)
}

// Length returns the instruction length in bytes, including the opcode.
func (code Code) Length() uint8 {
	return uint8(code.Operands()) + 1
}

// IsAlu returns true if the ALU performs the operation.
func (code Code) IsAlu() bool {
	return (code & CODE_ALU) != 0
}

// SetsPc returns true if the instruction may transfer control.
func (code Code) SetsPc() bool {
	return (code & CODE_SETS_PC) != 0
}

// Instruction is a decoded fetch window: the opcode and the two bytes that
// follow it, whether or not the opcode uses them.
type Instruction struct {
	Code Code
	A    uint8
	B    uint8
}

// Decode decodes a three byte fetch window.
func Decode(window [3]uint8) Instruction {
	return Instruction{
		Code: Code(window[0]),
		A:    window[1],
		B:    window[2],
	}
}

// Length returns the number of bytes the instruction occupies.
func (inst Instruction) Length() uint8 {
	return inst.Code.Length()
}

// String returns the assembly language representation of the instruction.
func (inst Instruction) String() string {
	if !inst.Code.Valid() {
		return fmt.Sprintf("%v %02X %02X", inst.Code, inst.A, inst.B)
	}

	operands := [2]uint8{inst.A, inst.B}
	var args []string
	for n, arg := range inst.Code.Args() {
		switch arg {
		case ARG_REG:
			args = append(args, fmt.Sprintf("R%d", operands[n]))
		case ARG_IMM:
			args = append(args, fmt.Sprintf("%d", operands[n]))
		}
	}

	if len(args) == 0 {
		return inst.Code.String()
	}

	return inst.Code.String() + " " + strings.Join(args, ",")
}
