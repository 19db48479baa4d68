package text

import (
	"testing"
)

func TestRegistryHandsOutHandles(t *testing.T) {
	reg := NewRegistry()
	f := reg.Add("main.vs", "ldi 52, $r0\n")
	if f == nil || f.Name() != "main.vs" {
		t.Fatal("no usable handle for registered file")
	}
	if f.Content() != "ldi 52, $r0\n" {
		t.Errorf("handle does not return the registered text")
	}
}

func TestRegistryDedup(t *testing.T) {
	reg := NewRegistry()
	f1 := reg.Add("main.vs", "ldi 52, $r0\n")
	f2 := reg.Add("main.vs", "ldi 52, $r0\n")
	if f1 != f2 {
		t.Error("expected identical registrations to share one handle")
	}
	if reg.Len() != 1 {
		t.Errorf("expected 1 registered file, got %d", reg.Len())
	}
	f3 := reg.Add("main.vs", "halt\n")
	if f3 == f1 {
		t.Error("expected different content to get a fresh handle")
	}
	if reg.Len() != 2 {
		t.Errorf("expected 2 registered files, got %d", reg.Len())
	}
}

func TestRangeText(t *testing.T) {
	reg := NewRegistry()
	f := reg.Add("main.vs", "ldi 52, $r0")
	r := NewRange(NewPosition(4, 0, 4), NewPosition(6, 0, 6), f)
	if r.Text() != "52" {
		t.Errorf("expected range to cover '52', covers %q", r.Text())
	}
	if r.Len() != 2 || r.IsEmpty() {
		t.Errorf("expected a 2-char range, got %d", r.Len())
	}
	if r.Span().From() != 4 || r.Span().To() != 6 {
		t.Errorf("unexpected span %s", r.Span())
	}
}

func TestRangeTextRuneIndexed(t *testing.T) {
	// offsets are character offsets, not bytes
	reg := NewRegistry()
	f := reg.Add("uni.vs", "αβγ δ")
	r := NewRange(NewPosition(4, 0, 4), NewPosition(5, 0, 5), f)
	if r.Text() != "δ" {
		t.Errorf("expected range to cover 'δ', covers %q", r.Text())
	}
}

func TestFileLine(t *testing.T) {
	reg := NewRegistry()
	f := reg.Add("main.vs", "ldi 52\ncall MAIN\nhalt")
	lines := []string{"ldi 52", "call MAIN", "halt"}
	for row, expected := range lines {
		if line := f.Line(row); line != expected {
			t.Errorf("row %d: expected %q, got %q", row, expected, line)
		}
	}
	if line := f.Line(3); line != "" {
		t.Errorf("expected no row 3, got %q", line)
	}
}

func TestZeroWidthRange(t *testing.T) {
	reg := NewRegistry()
	f := reg.Add("main.vs", "x")
	r := NewRange(NewPosition(1, 0, 1), NewPosition(1, 0, 1), f)
	if !r.IsEmpty() || r.Text() != "" {
		t.Errorf("expected an empty range, got %q", r.Text())
	}
}
