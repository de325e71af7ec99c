package vm

import (
	"errors"
	"testing"

	"github.com/oisee/synacorvm/pkg/isa"
)

func TestDecodeInvalidRegisterOperand(t *testing.T) {
	m := newMachine(uint16(isa.SET), 32780, 5)
	_, err := m.Decode()
	if !errors.Is(err, isa.ErrDecode) {
		t.Errorf("Decode() = %v, want wrapped isa.ErrDecode", err)
	}
}

func TestDecodeAdvancesPCPastOperands(t *testing.T) {
	m := newMachine(uint16(isa.ADD), regBase, 1, 2)
	ins, err := m.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if m.PC != 4 {
		t.Errorf("PC after Decode = %d, want 4", m.PC)
	}
	if ins.Op != isa.ADD {
		t.Errorf("decoded op = %v, want ADD", ins.Op)
	}
}

func TestDecodeDoesNotRunThePatchHook(t *testing.T) {
	m := newMachine(uint16(isa.NOOP))
	m.PC = patchPC
	m.Reg[patchTriggerR] = patchTriggerV
	if _, err := m.Decode(); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if m.Mem[patchPC] == patchRetOp {
		t.Error("Decode() alone should not apply the patch hook; only Step() should")
	}
}
