// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

var unknownMap = map[string]cpu.UnknownPolicy{
	"fault": cpu.UNKNOWN_FAULT,
	"skip":  cpu.UNKNOWN_SKIP,
	"spin":  cpu.UNKNOWN_SPIN,
}

func main() {
	var compile string
	var save bool
	var output string
	var unknown string
	var maxTicks int
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.BoolVar(&save, "s", false, "Save assembled .ls8 listing, do not execute")
	flag.StringVar(&output, "o", "-", "Listing output")
	flag.StringVar(&unknown, "u", "fault", "Unknown opcode policy: fault, skip or spin")
	flag.IntVar(&maxTicks, "m", 0, "Maximum instructions to execute (0 is unlimited)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode, traces every instruction")

	flag.Parse()

	// Timestamps only help someone watching a terminal.
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		log.SetFlags(0)
	}

	policy, ok := unknownMap[unknown]
	if !ok {
		log.Fatalf("%v: Unknown opcode policy: %v", os.Args[0], unknown)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Cpu.Unknown = policy
	emu.MaxTicks = maxTicks
	emu.Console.Output = os.Stdout

	if len(compile) != 0 {
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}

		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for equ, value := range emu.Defines() {
			asm.Predefine(equ, value)
		}
		emu.Program, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		if save {
			ouf := os.Stdout
			if output != "-" {
				ouf, err = os.Create(output)
				if err != nil {
					log.Fatalf("%v: %v", output, err)
				}
				defer ouf.Close()
			}
			_, err = emu.Program.WriteTo(ouf)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
			return
		}
	} else {
		if flag.NArg() != 1 {
			log.Fatalf("usage: %v [flags] program.ls8", os.Args[0])
		}

		err := emu.Rom.ReadFile(flag.Arg(0))
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "%v: %v\n", os.Args[0], err)
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("%v: %v", flag.Arg(0), err)
		}
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()
	if err != nil {
		log.Fatal(err)
	}
}
