package vm

import (
	"fmt"
	"os"
)

// Patch hook constants (spec §4.7). Kept together, and checked in
// exactly one place, per spec §9's design note: "do not scatter the
// knowledge of magic addresses across multiple components."
const (
	patchPC       = 0x178B
	patchTriggerR = 7
	patchTriggerV = 1
	patchRetOp    = uint16(18) // RET
	patchR0Value  = 6
	patchR7Value  = 0x6486
)

// applyPatch fires before each fetch (spec §4.7): if the program
// counter is about to execute the guest's expensive recursive check
// with register 7 primed to run it, overwrite that cell with a bare
// RET and hand back the precomputed answer instead of letting the
// guest spend minutes recursing.
func (m *Machine) applyPatch() {
	if m.PC == patchPC && m.Reg[patchTriggerR] == patchTriggerV {
		m.Mem[patchPC] = patchRetOp
		m.Reg[0] = patchR0Value
		m.Reg[patchTriggerR] = patchR7Value
		const notice = "hacking..."
		if m.Tracer != nil {
			m.Tracer.Emit(notice)
		} else {
			fmt.Fprintln(os.Stderr, notice)
		}
	}
}
