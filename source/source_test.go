package source

import "testing"

func TestSpanCoverAndContains(t *testing.T) {
	a := Span{File: 1, Start: 2, End: 5}
	b := Span{File: 1, Start: 8, End: 12}

	cover := a.Cover(b)
	if cover.Start != 2 || cover.End != 12 {
		t.Errorf("Cover = %v, want [2,12)", cover)
	}
	if !a.Contains(Span{File: 1, Start: 2, End: 4}) || !a.Contains(a) {
		t.Errorf("Contains should accept nested and identical spans")
	}
	if a.Contains(Span{File: 1, Start: 4, End: 6}) {
		t.Errorf("Contains must reject spans reaching past the end")
	}
	if a.Contains(Span{File: 2, Start: 2, End: 5}) {
		t.Errorf("Contains must reject spans from another file")
	}
	if a.Empty() {
		t.Errorf("non-empty span reported Empty")
	}
	if !(Span{File: 1, Start: 3, End: 3}).Empty() {
		t.Errorf("zero-width span should be Empty")
	}
	if a.Len() != 3 {
		t.Errorf("Len = %d, want 3", a.Len())
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mod.bas", []byte("alpha\nbeta\r\ngamma"))

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{off: 0, line: 1, col: 1},
		{off: 4, line: 1, col: 5},
		{off: 5, line: 1, col: 6},  // the \n belongs to line 1
		{off: 6, line: 2, col: 1},  // 'b'
		{off: 10, line: 2, col: 5}, // the \r before \n
		{off: 12, line: 3, col: 1}, // 'g'
		{off: 17, line: 3, col: 6}, // one past the end
	}
	for _, tc := range cases {
		start, _ := fs.Resolve(Span{File: id, Start: tc.off, End: tc.off})
		if start.Line != tc.line || start.Col != tc.col {
			t.Errorf("Resolve(%d) = %d:%d, want %d:%d", tc.off, start.Line, start.Col, tc.line, tc.col)
		}
	}
}

func TestGetLineTrimsCR(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mod.bas", []byte("alpha\nbeta\r\ngamma"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "alpha" {
		t.Errorf("line 1 = %q, want alpha", got)
	}
	if got := f.GetLine(2); got != "beta" {
		t.Errorf("line 2 = %q, want beta (CR trimmed)", got)
	}
	if got := f.GetLine(3); got != "gamma" {
		t.Errorf("line 3 = %q, want gamma", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("missing line = %q, want empty", got)
	}
}

func TestContentStoredVerbatim(t *testing.T) {
	raw := []byte("\xEF\xBB\xBFOption Explicit\r\n")
	fs := NewFileSet()
	id := fs.AddVirtual("bom.bas", raw)
	f := fs.Get(id)

	if string(f.Content) != string(raw) {
		t.Errorf("content was altered on load")
	}
	if f.Flags&FileHasBOM == 0 {
		t.Errorf("BOM flag not detected")
	}
	if f.Flags&FileHasCRLF == 0 {
		t.Errorf("CRLF flag not detected")
	}
	if f.Flags&FileVirtual == 0 {
		t.Errorf("virtual flag not set by AddVirtual")
	}
}

func TestGetByPathTracksLatest(t *testing.T) {
	fs := NewFileSet()
	fs.Add("dup.bas", []byte("old"), 0)
	id2 := fs.Add("dup.bas", []byte("new"), 0)

	f, ok := fs.GetByPath("dup.bas")
	if !ok {
		t.Fatalf("GetByPath missed an added path")
	}
	if f.ID != id2 || string(f.Content) != "new" {
		t.Errorf("GetByPath returned id %d (%q), want latest %d", f.ID, f.Content, id2)
	}
}
