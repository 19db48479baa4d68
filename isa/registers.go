package isa

import "fmt"

// Register is the ordinal of one machine register. The ordinal scheme is
// fixed by the VM: the six named registers come first, then the ten
// positional ones.
type Register uint8

const (
	RSP Register = iota // stack pointer
	RFP                 // frame pointer
	ROU                 // output register
	RFL                 // frame limit
	RRA                 // return register a
	RRB                 // return register b
	R0
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
)

// NumRegisters is the size of the register file.
const NumRegisters = 16

// registerSuffixes maps the two-letter spelling after '$r' to a named
// register. The mapping is injective and total over the recognized set.
var registerSuffixes = map[string]Register{
	"sp": RSP,
	"fp": RFP,
	"ou": ROU,
	"fl": RFL,
	"ra": RRA,
	"rb": RRB,
}

// SuffixRegister resolves the two-letter suffix of a named register
// ("sp", "fp", …).
func SuffixRegister(suffix string) (Register, bool) {
	r, ok := registerSuffixes[suffix]
	return r, ok
}

// AdmissibleSuffixStart reports whether c can open a named-register suffix.
// The lexer uses this to distinguish a truncated named register (end of
// input) from a plainly invalid one.
func AdmissibleSuffixStart(c rune) bool {
	switch c {
	case 'f', 's', 'o', 'r':
		return true
	}
	return false
}

// PositionalRegister maps a decimal digit 0–9 to its register.
func PositionalRegister(digit int) Register {
	return R0 + Register(digit)
}

// String prints the assembly spelling of the register, without the '$'
// sigil.
func (r Register) String() string {
	switch r {
	case RSP:
		return "rsp"
	case RFP:
		return "rfp"
	case ROU:
		return "rou"
	case RFL:
		return "rfl"
	case RRA:
		return "rra"
	case RRB:
		return "rrb"
	}
	if r >= R0 && r <= R9 {
		return fmt.Sprintf("r%d", r-R0)
	}
	return fmt.Sprintf("reg(%d)", uint8(r))
}
