package isa

import (
	"fmt"
	"strings"
)

// Operand is a single decoded operand slot. Its Kind says which field
// is meaningful, matching the OperandKind the catalog declared for
// that slot:
//
//	OperandRegister          -> Reg
//	OperandValue             -> Lit (already resolved: if the raw cell
//	                             named a register, its contents were
//	                             read at decode time)
//	OperandLocation          -> either Addr or Reg, per LocKind
//	OperandLocationAsAddress -> Addr (resolved at decode time, even if
//	                             the raw cell named a register)
type Operand struct {
	Kind    OperandKind
	Reg     Register
	Addr    Address
	Lit     Literal
	LocKind LocationKind
}

// AsLocation rebuilds the Location this operand was decoded from. Valid
// only when Kind is OperandLocation.
func (o Operand) AsLocation() Location {
	if o.LocKind == LocationRegister {
		return Location{Kind: LocationRegister, Reg: o.Reg}
	}
	return Location{Kind: LocationAddress, Addr: o.Addr}
}

func (o Operand) String() string {
	switch o.Kind {
	case OperandRegister:
		return o.Reg.String()
	case OperandValue:
		return o.Lit.String()
	case OperandLocationAsAddress:
		return o.Addr.String()
	case OperandLocation:
		return o.AsLocation().String()
	default:
		return "?"
	}
}

// Instruction is one fully-decoded instruction: the opcode plus its
// resolved operands, and the address of its opcode cell (for
// disassembly and tracing).
type Instruction struct {
	Op       OpCode
	Addr     Address // address of the opcode cell itself
	Operands [3]Operand
}

// Disassemble renders the instruction the way spec.md §4.2 requires:
// "AAAAAA    mnemonic  ops..." with the address of the opcode cell in
// six-digit hex.
func (ins Instruction) Disassemble() string {
	info := Catalog[ins.Op]
	var ops []string
	for i := 0; i < info.Arity; i++ {
		ops = append(ops, ins.Operands[i].String())
	}
	line := fmt.Sprintf("%06x    %-4s", uint16(ins.Addr), info.Mnemonic)
	if len(ops) > 0 {
		line += "  " + strings.Join(ops, " ")
	}
	return line
}
