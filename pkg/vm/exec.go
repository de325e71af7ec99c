package vm

import (
	"fmt"
	"os"

	"github.com/oisee/synacorvm/pkg/isa"
)

// modulus is the reduction applied to every arithmetic result (spec §3).
const modulus = uint32(isa.MemSize)

// handler executes one decoded instruction against m.
type handler func(m *Machine, ins isa.Instruction) error

// handlers is the opcode jump table (spec §9: "a table-driven
// interpreter ... is acceptable and likely faster than nested pattern
// matching"), grounded on the teacher's own per-opcode switch but
// generalized to an array of functions since this ISA's 22 opcodes are
// densely and stably numbered.
var handlers = [isa.OpCodeCount]handler{
	isa.HALT: func(m *Machine, ins isa.Instruction) error { return errHalted },

	isa.SET: func(m *Machine, ins isa.Instruction) error {
		m.Reg[ins.Operands[0].Reg] = uint16(ins.Operands[1].Lit)
		return nil
	},

	isa.PUSH: func(m *Machine, ins isa.Instruction) error {
		m.PushStack(uint16(ins.Operands[0].Lit))
		return nil
	},

	isa.POP: func(m *Machine, ins isa.Instruction) error {
		v, ok := m.PopStack()
		if !ok {
			return ErrStackUnderflow
		}
		m.WriteLocation(ins.Operands[0].AsLocation(), v)
		return nil
	},

	isa.EQ: func(m *Machine, ins isa.Instruction) error {
		v := boolWord(ins.Operands[1].Lit == ins.Operands[2].Lit)
		m.WriteLocation(ins.Operands[0].AsLocation(), v)
		return nil
	},

	isa.GT: func(m *Machine, ins isa.Instruction) error {
		v := boolWord(ins.Operands[1].Lit > ins.Operands[2].Lit)
		m.WriteLocation(ins.Operands[0].AsLocation(), v)
		return nil
	},

	isa.JMP: func(m *Machine, ins isa.Instruction) error {
		m.PC = uint16(ins.Operands[0].Addr)
		return nil
	},

	isa.JT: func(m *Machine, ins isa.Instruction) error {
		if ins.Operands[0].Lit != 0 {
			m.PC = uint16(ins.Operands[1].Addr)
		}
		return nil
	},

	isa.JF: func(m *Machine, ins isa.Instruction) error {
		if ins.Operands[0].Lit == 0 {
			m.PC = uint16(ins.Operands[1].Addr)
		}
		return nil
	},

	isa.ADD: func(m *Machine, ins isa.Instruction) error {
		sum := (uint32(ins.Operands[1].Lit) + uint32(ins.Operands[2].Lit)) % modulus
		m.WriteLocation(ins.Operands[0].AsLocation(), uint16(sum))
		return nil
	},

	isa.MULT: func(m *Machine, ins isa.Instruction) error {
		prod := (uint32(ins.Operands[1].Lit) * uint32(ins.Operands[2].Lit)) % modulus
		m.WriteLocation(ins.Operands[0].AsLocation(), uint16(prod))
		return nil
	},

	isa.MOD: func(m *Machine, ins isa.Instruction) error {
		b := ins.Operands[2].Lit
		if b == 0 {
			return ErrDivideByZero
		}
		rem := ins.Operands[1].Lit % b
		m.WriteLocation(ins.Operands[0].AsLocation(), uint16(rem))
		return nil
	},

	isa.AND: func(m *Machine, ins isa.Instruction) error {
		v := uint16(ins.Operands[1].Lit) & uint16(ins.Operands[2].Lit)
		m.WriteLocation(ins.Operands[0].AsLocation(), v)
		return nil
	},

	isa.OR: func(m *Machine, ins isa.Instruction) error {
		v := uint16(ins.Operands[1].Lit) | uint16(ins.Operands[2].Lit)
		m.WriteLocation(ins.Operands[0].AsLocation(), v)
		return nil
	},

	isa.NOT: func(m *Machine, ins isa.Instruction) error {
		v := (^uint16(ins.Operands[1].Lit)) & 0x7FFF
		m.WriteLocation(ins.Operands[0].AsLocation(), v)
		return nil
	},

	isa.RMEM: func(m *Machine, ins isa.Instruction) error {
		v := m.Mem[ins.Operands[1].Addr]
		m.WriteLocation(ins.Operands[0].AsLocation(), v)
		return nil
	},

	isa.WMEM: func(m *Machine, ins isa.Instruction) error {
		m.Mem[ins.Operands[0].Addr] = uint16(ins.Operands[1].Lit)
		return nil
	},

	isa.CALL: func(m *Machine, ins isa.Instruction) error {
		m.PushStack(m.PC)
		m.PC = uint16(ins.Operands[0].Addr)
		return nil
	},

	isa.RET: func(m *Machine, ins isa.Instruction) error {
		dest, ok := m.PopStack()
		if !ok {
			// spec §7/§9: RET from an empty stack is a clean halt, not
			// an error, matching the original challenge's behavior.
			return errHalted
		}
		m.PC = dest
		return nil
	},

	isa.OUT: func(m *Machine, ins isa.Instruction) error {
		w := m.Stdout
		if w == nil {
			w = os.Stdout
		}
		_, err := w.Write([]byte{byte(ins.Operands[0].Lit)})
		return err
	},

	isa.IN: func(m *Machine, ins isa.Instruction) error {
		b, ok, err := m.nextInputByte()
		if err != nil {
			return err
		}
		if !ok {
			// Meta-command consumed the line instead of producing guest
			// bytes: rewind past the opcode+operand and requeue a
			// synthetic "look\n" so the guest re-observes its
			// surroundings (spec §4.3).
			m.PC -= 2
			m.Stdin = append([]byte("look\n"), m.Stdin...)
			return nil
		}
		m.WriteLocation(ins.Operands[0].AsLocation(), uint16(b))
		return nil
	},

	isa.NOOP: func(m *Machine, ins isa.Instruction) error { return nil },
}

func boolWord(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

// nextInputByte pops a byte from the stdin queue, refilling it via the
// configured InputSource when empty. ok is false when refilling ran a
// meta-command instead of producing bytes.
func (m *Machine) nextInputByte() (b byte, ok bool, err error) {
	if b, ok = m.PopStdin(); ok {
		return b, true, nil
	}
	if m.Input == nil {
		return 0, false, fmt.Errorf("vm: input exhausted with no input source configured")
	}
	suspended, err := m.Input.Refill(m)
	if err != nil {
		return 0, false, err
	}
	if suspended {
		return 0, false, nil
	}
	b, ok = m.PopStdin()
	if !ok {
		return 0, false, fmt.Errorf("vm: input source refilled no bytes")
	}
	return b, true, nil
}

// Step decodes and executes exactly one instruction. It returns
// errHalted-derived nil with m.State set to Halted when the guest
// halts cleanly (HALT or RET-from-empty-stack); any other non-nil
// error is fatal and guest-visible (spec §7).
func (m *Machine) Step() error {
	if m.State == Halted {
		return nil
	}

	m.applyPatch()

	ins, err := m.Decode()
	if err != nil {
		return err
	}

	h := handlers[ins.Op]
	if err := h(m, ins); err != nil {
		if err == errHalted {
			m.State = Halted
			return nil
		}
		return err
	}
	return nil
}

// Run drives the decode-execute loop until the machine halts or a
// fatal error occurs. maxCycles bounds the number of Step calls; 0
// means unbounded.
func (m *Machine) Run(maxCycles int) error {
	for cycles := 0; m.State == Running; cycles++ {
		if maxCycles > 0 && cycles >= maxCycles {
			return nil
		}
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}
