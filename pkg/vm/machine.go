// Package vm implements the fetch/decode/execute loop over the
// Synacor-class ISA (package isa) and the mutable Machine state it
// operates on.
package vm

import (
	"io"

	"github.com/oisee/synacorvm/pkg/isa"
)

// RunState is the Executor's state machine (spec §4.3): Running or
// Halted, with no other stable states.
type RunState uint8

const (
	Running RunState = iota
	Halted
)

// TraceSink receives one disassembled line per decoded instruction.
// package trace's Tracer implements this; vm never imports trace
// directly so the dependency only runs one way.
type TraceSink interface {
	Emit(line string)
}

// InputSource refills Machine.Stdin when the guest's IN instruction
// finds it empty. It returns suspended=true when a meta-command ran
// instead of producing guest bytes (spec §4.4); the caller must then
// rewind the program counter and requeue "look\n" (spec §4.3).
// package ioshell's Channel implements this.
type InputSource interface {
	Refill(m *Machine) (suspended bool, err error)
}

// Machine is the full mutable VM state (spec §3).
type Machine struct {
	Mem   [isa.MemSize]uint16
	Reg   [isa.NumRegisters]uint16
	Stack []uint16
	PC    uint16
	Stdin []byte

	State RunState

	Tracer TraceSink
	Input  InputSource
	Stdout io.Writer // defaults to os.Stdout when nil
}

// New constructs a Machine from a program image: successive
// little-endian 16-bit words are copied into memory starting at
// address 0; remaining memory stays zero (spec §3 Lifecycle).
func New(image []byte) (*Machine, error) {
	if len(image) > isa.MemSize*2 {
		return nil, ErrImageTooLarge
	}
	m := &Machine{State: Running}
	for i := 0; i+1 < len(image); i += 2 {
		m.Mem[i/2] = uint16(image[i]) | uint16(image[i+1])<<8
	}
	if len(image)%2 == 1 {
		m.Mem[len(image)/2] = uint16(image[len(image)-1])
	}
	return m, nil
}

// PushStack appends v to the stack (spec §4.3 PUSH/CALL).
func (m *Machine) PushStack(v uint16) {
	m.Stack = append(m.Stack, v)
}

// PopStack removes and returns the top of the stack. ok is false when
// the stack was empty (spec §3: "the stack never goes negative").
func (m *Machine) PopStack() (v uint16, ok bool) {
	if len(m.Stack) == 0 {
		return 0, false
	}
	v = m.Stack[len(m.Stack)-1]
	m.Stack = m.Stack[:len(m.Stack)-1]
	return v, true
}

// ReadLocation reads the current value stored at a Location.
func (m *Machine) ReadLocation(loc isa.Location) uint16 {
	if loc.Kind == isa.LocationRegister {
		return m.Reg[loc.Reg]
	}
	return m.Mem[loc.Addr]
}

// WriteLocation stores raw into a Location. raw must already be
// reduced to [0, isa.MemSize) by the caller (spec §3 invariant).
func (m *Machine) WriteLocation(loc isa.Location, raw uint16) {
	if loc.Kind == isa.LocationRegister {
		m.Reg[loc.Reg] = raw
		return
	}
	m.Mem[loc.Addr] = raw
}

// PopStdin pops one byte off the front of the pending input queue.
func (m *Machine) PopStdin() (b byte, ok bool) {
	if len(m.Stdin) == 0 {
		return 0, false
	}
	b = m.Stdin[0]
	m.Stdin = m.Stdin[1:]
	return b, true
}

// trace emits one disassembled line if a tracer is attached.
func (m *Machine) trace(ins isa.Instruction) {
	if m.Tracer != nil {
		m.Tracer.Emit(ins.Disassemble())
	}
}
