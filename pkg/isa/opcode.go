package isa

// OpCode identifies one of the 22 instructions.
type OpCode uint8

const (
	HALT OpCode = iota
	SET
	PUSH
	POP
	EQ
	GT
	JMP
	JT
	JF
	ADD
	MULT
	MOD
	AND
	OR
	NOT
	RMEM
	WMEM
	CALL
	RET
	OUT
	IN
	NOOP
	// OpCodeCount is the number of valid opcodes.
	OpCodeCount
)

// OperandKind tags the shape of one operand slot in the catalog.
type OperandKind uint8

const (
	// OperandNone marks an unused slot.
	OperandNone OperandKind = iota
	// OperandRegister is a raw cell that must classify as a Register.
	OperandRegister
	// OperandValue is a raw cell classified and resolved to a Literal.
	OperandValue
	// OperandLocation is a raw cell classified as a Location, carried
	// through unresolved (destination operands).
	OperandLocation
	// OperandLocationAsAddress is a raw cell classified as a Location
	// and then immediately resolved to an Address (jump/call/memory
	// targets, per spec §4.2).
	OperandLocationAsAddress
)

// Info is the static metadata for one opcode: its mnemonic and the
// ordered shape of its operands.
type Info struct {
	Mnemonic string
	Operands [3]OperandKind
	Arity    int
}

// Catalog holds one Info per opcode, indexed by OpCode. This mirrors
// the instruction table in spec.md §6 exactly: arity and operand kinds
// are fixed per opcode and read left to right.
var Catalog = [OpCodeCount]Info{
	HALT: {Mnemonic: "halt", Arity: 0},
	SET:  {Mnemonic: "set", Arity: 2, Operands: [3]OperandKind{OperandRegister, OperandValue}},
	PUSH: {Mnemonic: "push", Arity: 1, Operands: [3]OperandKind{OperandValue}},
	POP:  {Mnemonic: "pop", Arity: 1, Operands: [3]OperandKind{OperandLocation}},
	EQ:   {Mnemonic: "eq", Arity: 3, Operands: [3]OperandKind{OperandLocation, OperandValue, OperandValue}},
	GT:   {Mnemonic: "gt", Arity: 3, Operands: [3]OperandKind{OperandLocation, OperandValue, OperandValue}},
	JMP:  {Mnemonic: "jmp", Arity: 1, Operands: [3]OperandKind{OperandLocationAsAddress}},
	JT:   {Mnemonic: "jt", Arity: 2, Operands: [3]OperandKind{OperandValue, OperandLocationAsAddress}},
	JF:   {Mnemonic: "jf", Arity: 2, Operands: [3]OperandKind{OperandValue, OperandLocationAsAddress}},
	ADD:  {Mnemonic: "add", Arity: 3, Operands: [3]OperandKind{OperandLocation, OperandValue, OperandValue}},
	MULT: {Mnemonic: "mult", Arity: 3, Operands: [3]OperandKind{OperandLocation, OperandValue, OperandValue}},
	MOD:  {Mnemonic: "mod", Arity: 3, Operands: [3]OperandKind{OperandLocation, OperandValue, OperandValue}},
	AND:  {Mnemonic: "and", Arity: 3, Operands: [3]OperandKind{OperandLocation, OperandValue, OperandValue}},
	OR:   {Mnemonic: "or", Arity: 3, Operands: [3]OperandKind{OperandLocation, OperandValue, OperandValue}},
	NOT:  {Mnemonic: "not", Arity: 2, Operands: [3]OperandKind{OperandLocation, OperandValue}},
	RMEM: {Mnemonic: "rmem", Arity: 2, Operands: [3]OperandKind{OperandLocation, OperandLocationAsAddress}},
	WMEM: {Mnemonic: "wmem", Arity: 2, Operands: [3]OperandKind{OperandLocationAsAddress, OperandValue}},
	CALL: {Mnemonic: "call", Arity: 1, Operands: [3]OperandKind{OperandLocationAsAddress}},
	RET:  {Mnemonic: "ret", Arity: 0},
	OUT:  {Mnemonic: "out", Arity: 1, Operands: [3]OperandKind{OperandValue}},
	IN:   {Mnemonic: "in", Arity: 1, Operands: [3]OperandKind{OperandLocation}},
	NOOP: {Mnemonic: "noop", Arity: 0},
}

// Valid reports whether op is one of the 22 defined opcodes.
func (op OpCode) Valid() bool { return op < OpCodeCount }
