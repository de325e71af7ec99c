package vm

import "testing"

func TestApplyPatchFiresOnTriggerCondition(t *testing.T) {
	m := newMachine()
	m.PC = patchPC
	m.Reg[patchTriggerR] = patchTriggerV
	m.Mem[patchPC] = 0xBEEF // whatever the guest originally had there

	if err := m.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	if m.Mem[patchPC] != patchRetOp {
		t.Errorf("Mem[patchPC] = %#x, want patched RET (%#x)", m.Mem[patchPC], patchRetOp)
	}
	if m.Reg[0] != patchR0Value {
		t.Errorf("Reg[0] = %d, want %d", m.Reg[0], patchR0Value)
	}
	if m.Reg[patchTriggerR] != patchR7Value {
		t.Errorf("Reg[7] = %#x, want %#x", m.Reg[patchTriggerR], patchR7Value)
	}
}

func TestApplyPatchDoesNotFireOutsideTriggerCondition(t *testing.T) {
	m := newMachine()
	m.PC = patchPC
	m.Reg[patchTriggerR] = 0 // not the trigger value
	m.Mem[patchPC] = uint16(0) // HALT, so Step terminates cleanly either way

	if err := m.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.Mem[patchPC] == patchRetOp {
		t.Error("patch should not fire when register 7 doesn't hold the trigger value")
	}
}
