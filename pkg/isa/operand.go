// Package isa defines the Synacor-class instruction set: the raw-word
// classification rules, the operand model, and the opcode catalog. It
// has no notion of a running machine — that lives in package vm.
package isa

import "fmt"

// NumRegisters is the number of general-purpose registers.
const NumRegisters = 8

// MemSize is the number of addressable words.
const MemSize = 1 << 15 // 32768

// registerBase is the first raw cell value that names a register.
const registerBase = MemSize

// Register names one of the eight general-purpose registers.
type Register uint8

// NewRegister validates a raw cell as a register reference.
func NewRegister(raw uint16) (Register, error) {
	if raw < registerBase || raw > registerBase+NumRegisters-1 {
		return 0, fmt.Errorf("%w: %d is not a register", ErrDecode, raw)
	}
	return Register(raw - registerBase), nil
}

func (r Register) String() string { return fmt.Sprintf("r%d", uint8(r)) }

// Address names a memory index in [0, MemSize).
type Address uint16

// NewAddress validates a raw cell as an address.
func NewAddress(raw uint16) (Address, error) {
	if raw >= MemSize {
		return 0, fmt.Errorf("%w: %d is not a valid address", ErrDecode, raw)
	}
	return Address(raw), nil
}

func (a Address) String() string { return fmt.Sprintf("%04x", uint16(a)) }

// Literal is a 15-bit data value.
type Literal uint16

// NewLiteral validates a raw cell as a literal.
func NewLiteral(raw uint16) (Literal, error) {
	if raw >= MemSize {
		return 0, fmt.Errorf("%w: %d is not a valid literal", ErrDecode, raw)
	}
	return Literal(raw), nil
}

func (l Literal) String() string { return fmt.Sprintf("%#x", uint16(l)) }

// ValueKind tags which variant a Value holds.
type ValueKind uint8

const (
	// ValueLiteral means Value.Lit is the resolved operand.
	ValueLiteral ValueKind = iota
	// ValueRegister means Value.Reg names the register to read.
	ValueRegister
)

// Value is a decoder-time operand that supplies a literal: either a bare
// literal, or a register whose contents are read as a literal.
type Value struct {
	Kind ValueKind
	Lit  Literal
	Reg  Register
}

// NewValue classifies a raw cell into a Value.
func NewValue(raw uint16) (Value, error) {
	if raw < MemSize {
		return Value{Kind: ValueLiteral, Lit: Literal(raw)}, nil
	}
	if reg, err := NewRegister(raw); err == nil {
		return Value{Kind: ValueRegister, Reg: reg}, nil
	}
	return Value{}, fmt.Errorf("%w: %d is not a value operand", ErrDecode, raw)
}

func (v Value) String() string {
	if v.Kind == ValueRegister {
		return v.Reg.String()
	}
	return v.Lit.String()
}

// LocationKind tags which variant a Location holds.
type LocationKind uint8

const (
	// LocationAddress means Location.Addr names a memory cell.
	LocationAddress LocationKind = iota
	// LocationRegister means Location.Reg names a register.
	LocationRegister
)

// Location is a decoder-time operand that names a destination or an
// indirect address: either a memory Address or a Register.
type Location struct {
	Kind LocationKind
	Addr Address
	Reg  Register
}

// NewLocation classifies a raw cell into a Location.
func NewLocation(raw uint16) (Location, error) {
	if raw < MemSize {
		return Location{Kind: LocationAddress, Addr: Address(raw)}, nil
	}
	if reg, err := NewRegister(raw); err == nil {
		return Location{Kind: LocationRegister, Reg: reg}, nil
	}
	return Location{}, fmt.Errorf("%w: %d is not a location operand", ErrDecode, raw)
}

func (l Location) String() string {
	if l.Kind == LocationRegister {
		return l.Reg.String()
	}
	return l.Addr.String()
}
