package vm

import "errors"

// Error taxonomy (spec §7). Decode and address errors wrap isa.ErrDecode
// where they originate from operand classification; the rest are
// Machine-level sentinels.
var (
	// ErrImageTooLarge is fatal at load: the program file exceeds the
	// 32768-word address space.
	ErrImageTooLarge = errors.New("vm: program image exceeds 32768 words")

	// ErrStackUnderflow is returned by PopStack's caller context when
	// POP (not RET) finds an empty stack. Fatal.
	ErrStackUnderflow = errors.New("vm: pop from empty stack")

	// ErrDivideByZero is MOD's divisor being zero. Unspecified by the
	// ISA reference; spec.md §9 resolves this as fatal.
	ErrDivideByZero = errors.New("vm: mod by zero")

	// ErrBadOpcode is a fatal decode error: the opcode cell is outside
	// [0, 21].
	ErrBadOpcode = errors.New("vm: invalid opcode")

	// errHalted is returned internally by RET-from-empty-stack and HALT
	// to unwind the run loop cleanly; it is not a reported error.
	errHalted = errors.New("vm: halted")
)
