/*
Package text provides the source-coordinate model of the assembler frontend:
positions, ranges and a registry which owns the contents of source files and
hands out shared, read-only file handles.

Every token and every diagnostic produced by the frontend carries a Range,
i.e. a pair of positions plus the handle of the file the positions point
into. Ranges never own text themselves; they re-slice the registered file
content on demand.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 The vasm authors

*/
package text

import (
	"fmt"

	"github.com/voxl-lang/vasm"
)

// --- Positions -------------------------------------------------------------

// Position is a zero-based source coordinate: an absolute offset into the
// decoded character sequence, plus row and column. The column resets at each
// line break.
type Position struct {
	Offset int
	Row    int
	Col    int
}

// NewPosition creates a position from its three coordinates.
func NewPosition(offset, row, col int) Position {
	return Position{Offset: offset, Row: row, Col: col}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// --- Ranges ----------------------------------------------------------------

// Range is a half-open interval of source positions, stamped with the handle
// of the file it points into. The end position is exclusive. A range must
// span a single line: column arithmetic assumes no embedded newline.
type Range struct {
	Start Position
	End   Position
	File  *FileInfo
}

// NewRange creates a range from a start position, an (exclusive) end
// position and a file handle.
func NewRange(start, end Position, file *FileInfo) Range {
	return Range{Start: start, End: end, File: file}
}

// Len returns the number of characters the range covers.
func (r Range) Len() int {
	return r.End.Offset - r.Start.Offset
}

// IsEmpty is true for zero-width ranges, as used by position-only
// diagnostics.
func (r Range) IsEmpty() bool {
	return r.Len() == 0
}

// Text re-slices the registered file content covered by the range.
func (r Range) Text() string {
	if r.File == nil {
		return ""
	}
	return r.File.Slice(r.Start.Offset, r.End.Offset)
}

// Span projects the range onto a plain offset span.
func (r Range) Span() vasm.Span {
	return vasm.Span{uint64(r.Start.Offset), uint64(r.End.Offset)}
}

func (r Range) String() string {
	name := ""
	if r.File != nil {
		name = r.File.Name()
	}
	return fmt.Sprintf("%s[%s…%s]", name, r.Start, r.End)
}
