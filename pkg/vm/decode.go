package vm

import (
	"fmt"

	"github.com/oisee/synacorvm/pkg/isa"
)

// readCell returns the raw word at addr and does not advance anything;
// callers track their own read cursor explicitly, never pre-reading
// beyond what the opcode's arity specifies (spec §4.2). addr is always
// a validated Address by construction (spec §3 invariant), so no
// masking or bounds check happens here.
func (m *Machine) readCell(addr uint16) uint16 {
	return m.Mem[addr]
}

// Decode reads the instruction starting at m.PC, advances m.PC past
// every cell it consumes, and returns the fully-resolved Instruction.
func (m *Machine) Decode() (isa.Instruction, error) {
	opcodeAddr := m.PC
	raw := m.readCell(m.PC)
	m.PC++

	if raw >= uint16(isa.OpCodeCount) {
		return isa.Instruction{}, fmt.Errorf("%w: %d at address %#04x", ErrBadOpcode, raw, opcodeAddr)
	}
	op := isa.OpCode(raw)
	info := isa.Catalog[op]

	ins := isa.Instruction{Op: op, Addr: isa.Address(opcodeAddr)}
	for i := 0; i < info.Arity; i++ {
		cell := m.readCell(m.PC)
		m.PC++

		operand, err := m.decodeOperand(info.Operands[i], cell)
		if err != nil {
			return isa.Instruction{}, fmt.Errorf("%w (opcode %s at %#04x)", err, info.Mnemonic, opcodeAddr)
		}
		ins.Operands[i] = operand
	}

	m.trace(ins)
	return ins, nil
}

// decodeOperand classifies one raw cell according to the operand kind
// the catalog declares for its slot, resolving Value operands to a
// Literal immediately and Location-as-address operands to an Address
// immediately, per spec §4.2.
func (m *Machine) decodeOperand(kind isa.OperandKind, cell uint16) (isa.Operand, error) {
	switch kind {
	case isa.OperandRegister:
		reg, err := isa.NewRegister(cell)
		if err != nil {
			return isa.Operand{}, err
		}
		return isa.Operand{Kind: kind, Reg: reg}, nil

	case isa.OperandValue:
		v, err := isa.NewValue(cell)
		if err != nil {
			return isa.Operand{}, err
		}
		lit := v.Lit
		if v.Kind == isa.ValueRegister {
			lit = isa.Literal(m.Reg[v.Reg])
		}
		return isa.Operand{Kind: kind, Lit: lit}, nil

	case isa.OperandLocation:
		loc, err := isa.NewLocation(cell)
		if err != nil {
			return isa.Operand{}, err
		}
		return isa.Operand{Kind: kind, LocKind: loc.Kind, Addr: loc.Addr, Reg: loc.Reg}, nil

	case isa.OperandLocationAsAddress:
		loc, err := isa.NewLocation(cell)
		if err != nil {
			return isa.Operand{}, err
		}
		raw := uint16(loc.Addr)
		if loc.Kind == isa.LocationRegister {
			raw = m.Reg[loc.Reg]
		}
		addr, err := isa.NewAddress(raw)
		if err != nil {
			return isa.Operand{}, err
		}
		return isa.Operand{Kind: kind, Addr: addr}, nil

	default:
		return isa.Operand{}, fmt.Errorf("%w: opcode has unused operand slot", isa.ErrDecode)
	}
}
