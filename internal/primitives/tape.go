package primitives

import (
	"strings"
)

// band is a double-ended sequence of cells addressed by a logical index.
// Cells at index >= 0 live in right, cells at index < 0 live in left
// (left[0] is cell -1). Growing either end is an append, so already
// written cells never move.
type band struct {
	left  []Symbol
	right []Symbol
}

func (b *band) min() int {
	return -len(b.left)
}

func (b *band) max() int {
	return len(b.right) - 1
}

func (b *band) len() int {
	return len(b.left) + len(b.right)
}

func (b *band) at(i int) Symbol {
	if i >= 0 {
		return b.right[i]
	}
	return b.left[-i-1]
}

func (b *band) set(i int, sym Symbol) {
	if i >= 0 {
		b.right[i] = sym
		return
	}
	b.left[-i-1] = sym
}

func (b *band) pushFront(sym Symbol) {
	b.left = append(b.left, sym)
}

func (b *band) pushBack(sym Symbol) {
	b.right = append(b.right, sym)
}

// Tape is a logically bi-infinite tape. Only the visited window (the band)
// is materialised; every other cell holds the default symbol.
type Tape struct {
	blank  Symbol
	cells  band
	cursor int // logical index into cells
}

// NewTape creates a tape whose band is cells and whose head sits on
// cells[cursor]. An empty band is materialised as a single blank cell.
// NewTape panics if cursor is outside the band.
func NewTape(blank Symbol, cells []Symbol, cursor int) Tape {
	right := append(make([]Symbol, 0, len(cells)+1), cells...)
	if len(right) == 0 {
		right = append(right, blank)
	}
	if cursor < 0 || cursor >= len(right) {
		panic("tape cursor outside band")
	}
	return Tape{
		blank:  blank,
		cells:  band{right: right},
		cursor: cursor,
	}
}

// TapeFromString creates a tape from the runes of s.
func TapeFromString(blank Symbol, s string, cursor int) Tape {
	runes := []rune(s)
	cells := make([]Symbol, len(runes))
	for i, r := range runes {
		cells[i] = Symbol(r)
	}
	return NewTape(blank, cells, cursor)
}

// Clone returns an independent copy; mutating the copy never affects t.
func (t Tape) Clone() Tape {
	return Tape{
		blank: t.blank,
		cells: band{
			left:  append([]Symbol(nil), t.cells.left...),
			right: append([]Symbol(nil), t.cells.right...),
		},
		cursor: t.cursor,
	}
}

// Default returns the blank symbol used to fill newly visited cells.
func (t *Tape) Default() Symbol {
	return t.blank
}

// Position returns the head position as an index into Symbols().
func (t *Tape) Position() int {
	return t.cursor - t.cells.min()
}

// Len returns the number of materialised cells.
func (t *Tape) Len() int {
	return t.cells.len()
}

// Read returns the symbol under the head.
func (t *Tape) Read() Symbol {
	return t.cells.at(t.cursor)
}

// Write replaces the symbol under the head.
func (t *Tape) Write(sym Symbol) {
	t.cells.set(t.cursor, sym)
}

// Move shifts the head one cell, materialising a blank cell when the head
// leaves the band.
func (t *Tape) Move(d Direction) {
	switch d {
	case Left:
		if t.cursor == t.cells.min() {
			t.cells.pushFront(t.blank)
		}
		t.cursor--
	case Right:
		t.cursor++
		if t.cursor > t.cells.max() {
			t.cells.pushBack(t.blank)
		}
	}
}

// Symbols returns the band from its leftmost to its rightmost cell.
func (t *Tape) Symbols() []Symbol {
	out := make([]Symbol, 0, t.cells.len())
	for i := len(t.cells.left) - 1; i >= 0; i-- {
		out = append(out, t.cells.left[i])
	}
	return append(out, t.cells.right...)
}

// String renders the band as concatenated symbols, without a head marker.
func (t Tape) String() string {
	var sb strings.Builder
	sb.Grow(t.cells.len())
	for _, sym := range t.Symbols() {
		sb.WriteRune(rune(sym))
	}
	return sb.String()
}

// Marked renders the band with the head cell wrapped in brackets, in the
// same notation the description language uses for initial tapes.
func (t Tape) Marked() string {
	var sb strings.Builder
	pos := t.Position()
	for i, sym := range t.Symbols() {
		if i == pos {
			sb.WriteByte('[')
			sb.WriteRune(rune(sym))
			sb.WriteByte(']')
			continue
		}
		sb.WriteRune(rune(sym))
	}
	return sb.String()
}
