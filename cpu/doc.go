// Package cpu implements the microprocessor and assembler for the LS-8 system.
//
// The CPU consists of a program counter (PC), eight 8-bit general-purpose
// registers (R0-R7, with R7 as the stack pointer), 256 bytes of memory
// shared by program and stack, an ALU, and comparison flags. Each tick
// fetches a three byte window at the PC, decodes it, and executes it.
//
// The assembler provides an assembly language for the LS-8 instruction set,
// supporting macros, labels, equates, and compile-time expression evaluation.
package cpu
