/*
Package isa defines the instruction-set vocabulary of the voxl virtual
machine, as far as the assembler frontend needs it: the mnemonic→opcode
table and the register naming scheme.

The lexer resolves underscore-free identifier runs against the mnemonic
table; everything else in the frontend treats opcodes and registers as
opaque values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 The vasm authors

*/
package isa

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
)

// Opcode is the numeric code of one VM instruction.
type Opcode uint8

// The instruction set, grouped by function. Codes are part of the VM's wire
// format and must not be renumbered.
const (
	NOP  Opcode = 0x00
	HALT Opcode = 0x01
	LD   Opcode = 0x02
	LDI  Opcode = 0x03
	ST   Opcode = 0x04
	MOV  Opcode = 0x05
	PUSH Opcode = 0x06
	POP  Opcode = 0x07

	ADD Opcode = 0x10
	SUB Opcode = 0x11
	MUL Opcode = 0x12
	DIV Opcode = 0x13
	MOD Opcode = 0x14
	NEG Opcode = 0x15
	INC Opcode = 0x16
	DEC Opcode = 0x17

	AND Opcode = 0x20
	OR  Opcode = 0x21
	XOR Opcode = 0x22
	NOT Opcode = 0x23
	SHL Opcode = 0x24
	SHR Opcode = 0x25

	CMP Opcode = 0x30
	EQ  Opcode = 0x31
	NEQ Opcode = 0x32
	LT  Opcode = 0x33
	GT  Opcode = 0x34
	LEQ Opcode = 0x35
	GEQ Opcode = 0x36

	JMP  Opcode = 0x40
	JEQ  Opcode = 0x41
	JNE  Opcode = 0x42
	CALL Opcode = 0x43
	RET  Opcode = 0x44
	JLT  Opcode = 0x45
	JGT  Opcode = 0x46

	MALLOC Opcode = 0x50
	FREE   Opcode = 0x51

	SYSCALL Opcode = 0x60
	OUT     Opcode = 0x61
	IN      Opcode = 0x62
)

// mnemonics maps assembly spellings to opcodes. A treemap keeps the table
// iterable in sorted mnemonic order, which the CLI relies on for listings.
var mnemonics = treemap.NewWithStringComparator()

// names is the reverse mapping, for printing.
var names = make(map[Opcode]string)

func init() {
	for _, ins := range []struct {
		name string
		code Opcode
	}{
		{"nop", NOP}, {"halt", HALT}, {"ld", LD}, {"ldi", LDI},
		{"st", ST}, {"mov", MOV}, {"push", PUSH}, {"pop", POP},
		{"add", ADD}, {"sub", SUB}, {"mul", MUL}, {"div", DIV},
		{"mod", MOD}, {"neg", NEG}, {"inc", INC}, {"dec", DEC},
		{"and", AND}, {"or", OR}, {"xor", XOR}, {"not", NOT},
		{"shl", SHL}, {"shr", SHR},
		{"cmp", CMP}, {"eq", EQ}, {"neq", NEQ}, {"lt", LT},
		{"gt", GT}, {"leq", LEQ}, {"geq", GEQ},
		{"jmp", JMP}, {"jeq", JEQ}, {"jne", JNE}, {"call", CALL},
		{"ret", RET}, {"jlt", JLT}, {"jgt", JGT},
		{"malloc", MALLOC}, {"free", FREE},
		{"syscall", SYSCALL}, {"out", OUT}, {"in", IN},
	} {
		mnemonics.Put(ins.name, ins.code)
		names[ins.code] = ins.name
	}
}

// Lookup resolves an assembly mnemonic to its opcode. Mnemonics are
// all-lowercase and contain no underscores; callers need not pre-filter,
// unknown spellings simply miss.
func Lookup(mnemonic string) (Opcode, bool) {
	v, ok := mnemonics.Get(mnemonic)
	if !ok {
		return 0, false
	}
	return v.(Opcode), true
}

// EachMnemonic calls v for every known instruction, in sorted mnemonic
// order.
func EachMnemonic(v func(mnemonic string, code Opcode)) {
	mnemonics.Each(func(key interface{}, value interface{}) {
		v(key.(string), value.(Opcode))
	})
}

// Count returns the number of instructions in the table.
func Count() int {
	return mnemonics.Size()
}

// String prints an opcode as its mnemonic, if it has one.
func (op Opcode) String() string {
	if name, ok := names[op]; ok {
		return name
	}
	return fmt.Sprintf("op(0x%02x)", uint8(op))
}
