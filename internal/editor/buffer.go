package editor

import "slices"

// Row is one line of text. chars is the stored text; render is its display
// form with tabs expanded, rebuilt by the Buffer after every change to chars.
type Row struct {
	chars  []byte
	render []byte
}

// Chars returns the stored bytes of the row. Callers must not modify them.
func (r *Row) Chars() []byte { return r.chars }

// Render returns the display form of the row.
func (r *Row) Render() []byte { return r.render }

// Len returns the number of stored bytes.
func (r *Row) Len() int { return len(r.chars) }

// Buffer holds the document as an ordered list of rows. Every mutation
// re-renders the affected row and bumps Dirty.
type Buffer struct {
	rows    []*Row
	tabStop int
	Dirty   int
}

func NewBuffer(tabStop int) *Buffer {
	if tabStop < 1 {
		tabStop = 1
	}
	return &Buffer{tabStop: tabStop}
}

// NumRows returns the number of rows.
func (b *Buffer) NumRows() int {
	return len(b.rows)
}

// Row returns the row at index at, or nil if there is none.
func (b *Buffer) Row(at int) *Row {
	if at < 0 || at >= len(b.rows) {
		return nil
	}
	return b.rows[at]
}

// RowLen returns the stored length of a row, or 0 for a missing row.
func (b *Buffer) RowLen(at int) int {
	if r := b.Row(at); r != nil {
		return r.Len()
	}
	return 0
}

func (b *Buffer) update(r *Row) {
	r.render = expandTabs(r.render[:0], r.chars, b.tabStop)
}

// InsertRow inserts a row holding a copy of s at index at, clamped to
// [0, NumRows()].
func (b *Buffer) InsertRow(at int, s []byte) {
	at = clamp(at, 0, len(b.rows))
	r := &Row{chars: append([]byte(nil), s...)}
	b.update(r)
	b.rows = slices.Insert(b.rows, at, r)
	b.Dirty++
}

// DeleteRow removes the row at index at. Missing rows are ignored.
func (b *Buffer) DeleteRow(at int) {
	if b.Row(at) == nil {
		return
	}
	b.rows = slices.Delete(b.rows, at, at+1)
	b.Dirty++
}

// InsertChar inserts c into a row before column at, clamped to the row.
func (b *Buffer) InsertChar(row, at int, c byte) {
	r := b.Row(row)
	if r == nil {
		return
	}
	at = clamp(at, 0, len(r.chars))
	r.chars = slices.Insert(r.chars, at, c)
	b.update(r)
	b.Dirty++
}

// DeleteChar removes the byte at column at of a row. Out-of-range columns
// are ignored.
func (b *Buffer) DeleteChar(row, at int) {
	r := b.Row(row)
	if r == nil || at < 0 || at >= len(r.chars) {
		return
	}
	r.chars = slices.Delete(r.chars, at, at+1)
	b.update(r)
	b.Dirty++
}

// AppendBytes appends s to the end of a row.
func (b *Buffer) AppendBytes(row int, s []byte) {
	r := b.Row(row)
	if r == nil {
		return
	}
	r.chars = append(r.chars, s...)
	b.update(r)
	b.Dirty++
}

// SplitRow moves everything from column at onwards into a new row below.
func (b *Buffer) SplitRow(row, at int) {
	r := b.Row(row)
	if r == nil {
		return
	}
	at = clamp(at, 0, len(r.chars))
	b.InsertRow(row+1, r.chars[at:])
	r.chars = r.chars[:at]
	b.update(r)
	b.Dirty++
}

// Text joins all rows into the bytes written to disk, one newline per row.
func (b *Buffer) Text() []byte {
	n := 0
	for _, r := range b.rows {
		n += len(r.chars) + 1
	}
	out := make([]byte, 0, n)
	for _, r := range b.rows {
		out = append(out, r.chars...)
		out = append(out, '\n')
	}
	return out
}

// RenderCol maps a stored column of a row to its rendered column.
func (b *Buffer) RenderCol(row, rawCol int) int {
	r := b.Row(row)
	if r == nil {
		return 0
	}
	return RawToRenderCol(r.chars, rawCol, b.tabStop)
}

// RawCol maps a rendered column of a row back to a stored column.
func (b *Buffer) RawCol(row, renderCol int) int {
	r := b.Row(row)
	if r == nil {
		return 0
	}
	return RenderToRawCol(r.chars, renderCol, b.tabStop)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
