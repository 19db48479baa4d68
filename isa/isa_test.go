package isa

import (
	"testing"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		mnemonic string
		code     Opcode
	}{
		{"ldi", 0x03},
		{"call", 0x43},
		{"malloc", MALLOC},
		{"halt", HALT},
	}
	for _, tc := range cases {
		code, ok := Lookup(tc.mnemonic)
		if !ok {
			t.Errorf("mnemonic %q not found", tc.mnemonic)
			continue
		}
		if code != tc.code {
			t.Errorf("%q: expected 0x%02x, got 0x%02x", tc.mnemonic, uint8(tc.code), uint8(code))
		}
	}
}

func TestLookupMiss(t *testing.T) {
	for _, name := range []string{"", "MAIN", "bogus", "end_repeat"} {
		if _, ok := Lookup(name); ok {
			t.Errorf("expected %q to miss the mnemonic table", name)
		}
	}
}

func TestMnemonicsSorted(t *testing.T) {
	prev := ""
	count := 0
	EachMnemonic(func(mnemonic string, code Opcode) {
		if mnemonic <= prev {
			t.Errorf("mnemonic %q out of order after %q", mnemonic, prev)
		}
		prev = mnemonic
		count++
	})
	if count != Count() {
		t.Errorf("iterated %d mnemonics, table holds %d", count, Count())
	}
}

func TestOpcodeNames(t *testing.T) {
	if LDI.String() != "ldi" {
		t.Errorf("expected 'ldi', got %q", LDI.String())
	}
	if Opcode(0xff).String() != "op(0xff)" {
		t.Errorf("unexpected rendering for unknown opcode: %q", Opcode(0xff).String())
	}
}

func TestRegisterOrdinals(t *testing.T) {
	// the ordinal scheme is fixed: named registers first, then positional
	if RSP != 0 || RFP != 1 || ROU != 2 || RFL != 3 || RRA != 4 || RRB != 5 {
		t.Error("named register ordinals shifted")
	}
	if R0 != 6 || R9 != 15 {
		t.Error("positional register ordinals shifted")
	}
}

func TestSuffixMappingInjective(t *testing.T) {
	suffixes := []string{"sp", "fp", "ou", "fl", "ra", "rb"}
	seen := make(map[Register]string)
	for _, s := range suffixes {
		r, ok := SuffixRegister(s)
		if !ok {
			t.Errorf("suffix %q not recognized", s)
			continue
		}
		if prev, dup := seen[r]; dup {
			t.Errorf("suffixes %q and %q collide on %v", prev, s, r)
		}
		seen[r] = s
	}
	if _, ok := SuffixRegister("xy"); ok {
		t.Error("expected 'xy' to be rejected")
	}
}

func TestAdmissibleSuffixStart(t *testing.T) {
	for _, c := range "fsor" {
		if !AdmissibleSuffixStart(c) {
			t.Errorf("expected %q to open a suffix", c)
		}
	}
	for _, c := range "abpz0" {
		if AdmissibleSuffixStart(c) {
			t.Errorf("expected %q to be rejected", c)
		}
	}
}

func TestPositionalRegisters(t *testing.T) {
	for d := 0; d <= 9; d++ {
		r := PositionalRegister(d)
		if r < R0 || r > R9 {
			t.Errorf("digit %d maps outside R0…R9: %v", d, r)
		}
		if want := "r" + string(rune('0'+d)); r.String() != want {
			t.Errorf("expected %q, got %q", want, r.String())
		}
	}
}

func TestRegisterStrings(t *testing.T) {
	if RSP.String() != "rsp" || RRB.String() != "rrb" {
		t.Error("named register spellings wrong")
	}
}
