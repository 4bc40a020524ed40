package diag

import (
	"strings"
	"testing"

	"vb6syntax/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(NewError(SynUnexpectedToken, span(0, 0, 1), "one")) {
		t.Fatalf("first add rejected")
	}
	if !bag.Add(NewError(SynUnexpectedToken, span(0, 1, 2), "two")) {
		t.Fatalf("second add rejected")
	}
	if bag.Add(NewError(SynUnexpectedToken, span(0, 2, 3), "three")) {
		t.Errorf("add past the limit succeeded")
	}
	if !bag.Full() || bag.Len() != 2 {
		t.Errorf("bag state after limit: full=%v len=%d", bag.Full(), bag.Len())
	}
}

func TestBagSortIsDeterministic(t *testing.T) {
	bag := NewBag(8)
	bag.Add(New(SevWarning, SynInfo, span(0, 5, 6), "later"))
	bag.Add(NewError(SynUnexpectedToken, span(0, 1, 2), "early"))
	bag.Add(New(SevInfo, SynInfo, span(0, 1, 2), "early info"))
	bag.Sort()

	items := bag.Items()
	if items[0].Message != "early" {
		t.Errorf("first after sort = %q, want the error at offset 1", items[0].Message)
	}
	if items[1].Message != "early info" {
		t.Errorf("second after sort = %q, want the info at offset 1", items[1].Message)
	}
	if items[2].Message != "later" {
		t.Errorf("third after sort = %q", items[2].Message)
	}
}

func TestBagDedupAndMerge(t *testing.T) {
	a := NewBag(2)
	a.Add(NewError(SynExpectExpression, span(0, 3, 4), "x"))

	b := NewBag(2)
	b.Add(NewError(SynExpectExpression, span(0, 3, 4), "x again"))
	b.Add(NewError(SynExpectThen, span(0, 7, 8), "y"))

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("merge lost items: len = %d", a.Len())
	}
	a.Dedup()
	if a.Len() != 2 {
		t.Errorf("dedup kept %d items, want 2 (same code+span collapses)", a.Len())
	}
	if !a.HasErrors() {
		t.Errorf("merged bag should report errors")
	}
}

func TestReporterShapesDiagnostic(t *testing.T) {
	bag := NewBag(4)
	r := BagReporter{Bag: bag}
	r.Report(SynExpectThen, SevError, span(0, 2, 6), "expected Then",
		[]Note{{Span: span(0, 2, 6), Msg: "skipped to end of line"}})

	if bag.Len() != 1 {
		t.Fatalf("reporter did not store the diagnostic")
	}
	d := bag.Items()[0]
	if d.Code != SynExpectThen || d.Severity != SevError {
		t.Errorf("stored %v %v", d.Code, d.Severity)
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "skipped to end of line" {
		t.Errorf("note lost in transit: %+v", d.Notes)
	}
	if d.Code.String() != "VB2006" {
		t.Errorf("code renders as %q", d.Code.String())
	}
}

func TestPrettyPlainOutput(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("mod.bas", []byte("If x\nEnd If\n"))

	bag := NewBag(4)
	bag.Add(NewError(SynExpectThen, span(id, 3, 4), "expected Then"))

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{Color: false, Context: true})
	out := sb.String()

	if !strings.Contains(out, "mod.bas:1:4: ERROR VB2006: expected Then") {
		t.Errorf("header missing or wrong:\n%s", out)
	}
	if !strings.Contains(out, "If x") {
		t.Errorf("context line missing:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("caret missing:\n%s", out)
	}
}
