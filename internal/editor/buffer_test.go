package editor

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func rowsOf(b *Buffer) []string {
	rows := make([]string, b.NumRows())
	for i := range rows {
		rows[i] = string(b.Row(i).Chars())
	}
	return rows
}

func bufferWith(rows ...string) *Buffer {
	b := NewBuffer(8)
	for _, r := range rows {
		b.InsertRow(b.NumRows(), []byte(r))
	}
	b.Dirty = 0
	return b
}

func TestNewBuffer(t *testing.T) {
	b := NewBuffer(8)
	if b.NumRows() != 0 {
		t.Errorf("new buffer should have no rows, got %d", b.NumRows())
	}
	if b.Dirty != 0 {
		t.Error("new buffer should not be dirty")
	}
	if b.Row(0) != nil {
		t.Error("Row(0) on empty buffer should be nil")
	}
}

func TestInsertRowClamps(t *testing.T) {
	b := NewBuffer(8)
	b.InsertRow(5, []byte("b"))
	b.InsertRow(-3, []byte("a"))
	if diff := cmp.Diff([]string{"a", "b"}, rowsOf(b)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if b.Dirty != 2 {
		t.Errorf("Dirty = %d, want 2", b.Dirty)
	}
}

func TestInsertRowCopies(t *testing.T) {
	b := NewBuffer(8)
	s := []byte("abc")
	b.InsertRow(0, s)
	s[0] = 'x'
	if got := string(b.Row(0).Chars()); got != "abc" {
		t.Errorf("row aliases caller's slice: %q", got)
	}
}

func TestDeleteRow(t *testing.T) {
	b := bufferWith("a", "b", "c")
	b.DeleteRow(1)
	if diff := cmp.Diff([]string{"a", "c"}, rowsOf(b)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	dirty := b.Dirty
	b.DeleteRow(5)
	b.DeleteRow(-1)
	if b.NumRows() != 2 || b.Dirty != dirty {
		t.Errorf("out-of-range delete changed the buffer: %v, dirty %d", rowsOf(b), b.Dirty)
	}
}

func TestInsertChar(t *testing.T) {
	b := bufferWith("hello")

	b.InsertChar(0, 0, 'H')
	if got := string(b.Row(0).Chars()); got != "Hhello" {
		t.Errorf("insert at 0: %q", got)
	}
	b.InsertChar(0, 100, '!')
	if got := string(b.Row(0).Chars()); got != "Hhello!" {
		t.Errorf("insert past end: %q", got)
	}
	b.InsertChar(0, -1, '<')
	if got := string(b.Row(0).Chars()); got != "<Hhello!" {
		t.Errorf("insert before start: %q", got)
	}
	b.InsertChar(3, 0, 'x')
	if b.NumRows() != 1 {
		t.Errorf("insert on missing row created rows: %v", rowsOf(b))
	}
	if b.Dirty != 3 {
		t.Errorf("Dirty = %d, want 3", b.Dirty)
	}
}

func TestDeleteChar(t *testing.T) {
	b := bufferWith("hello")

	b.DeleteChar(0, 4)
	if got := string(b.Row(0).Chars()); got != "hell" {
		t.Errorf("delete last: %q", got)
	}
	b.DeleteChar(0, 0)
	if got := string(b.Row(0).Chars()); got != "ell" {
		t.Errorf("delete first: %q", got)
	}
	dirty := b.Dirty
	b.DeleteChar(0, 3)
	b.DeleteChar(0, -1)
	b.DeleteChar(1, 0)
	if got := string(b.Row(0).Chars()); got != "ell" || b.Dirty != dirty {
		t.Errorf("out-of-range delete changed the row: %q, dirty %d", got, b.Dirty)
	}
}

func TestAppendBytes(t *testing.T) {
	b := bufferWith("foo")
	b.AppendBytes(0, []byte("\tbar"))
	if got := string(b.Row(0).Chars()); got != "foo\tbar" {
		t.Errorf("append: %q", got)
	}
	if got := string(b.Row(0).Render()); got != "foo     bar" {
		t.Errorf("render after append: %q", got)
	}
}

func TestSplitRow(t *testing.T) {
	tests := []struct {
		row  string
		at   int
		want []string
	}{
		{"helloworld", 5, []string{"hello", "world"}},
		{"hello", 0, []string{"", "hello"}},
		{"hello", 5, []string{"hello", ""}},
		{"hello", 99, []string{"hello", ""}},
	}
	for _, tc := range tests {
		b := bufferWith(tc.row, "next")
		b.SplitRow(0, tc.at)
		want := append(tc.want, "next")
		if diff := cmp.Diff(want, rowsOf(b)); diff != "" {
			t.Errorf("SplitRow(%q, %d) mismatch (-want +got):\n%s", tc.row, tc.at, diff)
		}
	}
}

func TestSplitRowThenEditKeepsRowsIndependent(t *testing.T) {
	b := bufferWith("abcdef")
	b.SplitRow(0, 3)
	b.InsertChar(0, 3, 'X')
	if diff := cmp.Diff([]string{"abcX", "def"}, rowsOf(b)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderExpandsTabs(t *testing.T) {
	tests := []struct {
		raw     string
		tabStop int
		want    string
	}{
		{"\tx", 8, "        x"},
		{"ab\tc", 8, "ab      c"},
		{"a\tb", 4, "a   b"},
		{"12345678\t9", 8, "12345678        9"},
		{"no tabs", 8, "no tabs"},
		{"", 8, ""},
	}
	for _, tc := range tests {
		b := NewBuffer(tc.tabStop)
		b.InsertRow(0, []byte(tc.raw))
		if got := string(b.Row(0).Render()); got != tc.want {
			t.Errorf("render(%q, %d) = %q, want %q", tc.raw, tc.tabStop, got, tc.want)
		}
	}
}

// After any sequence of edits each row's render must match its text.
func TestRenderNeverStale(t *testing.T) {
	b := bufferWith("start\there", "")
	rng := rand.New(rand.NewSource(1))
	alphabet := []byte("ab\t ")
	for i := 0; i < 500; i++ {
		row := rng.Intn(b.NumRows())
		n := b.RowLen(row)
		switch rng.Intn(4) {
		case 0, 1:
			b.InsertChar(row, rng.Intn(n+1), alphabet[rng.Intn(len(alphabet))])
		case 2:
			b.DeleteChar(row, rng.Intn(n+1))
		case 3:
			if b.NumRows() < 5 {
				b.SplitRow(row, rng.Intn(n+1))
			} else {
				b.AppendBytes(row, []byte("\t"))
			}
		}
		for r := 0; r < b.NumRows(); r++ {
			want := string(expandTabs(nil, b.Row(r).Chars(), 8))
			if got := string(b.Row(r).Render()); got != want {
				t.Fatalf("step %d row %d: render %q, want %q", i, r, got, want)
			}
		}
	}
}

func TestText(t *testing.T) {
	b := bufferWith("a", "", "b\tc")
	if got := string(b.Text()); got != "a\n\nb\tc\n" {
		t.Errorf("Text() = %q", got)
	}
	if got := NewBuffer(8).Text(); len(got) != 0 {
		t.Errorf("empty buffer Text() = %q", got)
	}
}

func TestBufferColumnMapping(t *testing.T) {
	b := bufferWith("a\tb")
	if got := b.RenderCol(0, 2); got != 8 {
		t.Errorf("RenderCol(0, 2) = %d, want 8", got)
	}
	if got := b.RawCol(0, 8); got != 2 {
		t.Errorf("RawCol(0, 8) = %d, want 2", got)
	}
	if got := b.RenderCol(4, 3); got != 0 {
		t.Errorf("RenderCol on missing row = %d, want 0", got)
	}
}
